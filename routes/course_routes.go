package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studyez/studyez_backend/handlers"
	"github.com/studyez/studyez_backend/middleware"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.Protected())

	courses := api.Group("/courses")
	courses.Post("", handlers.CreateCourse)
	courses.Get("", handlers.ListMyCourses)
	courses.Get("/:courseId", handlers.GetCourse)
	courses.Put("/:courseId", handlers.UpdateCourse)
	courses.Delete("/:courseId", handlers.DeleteCourse)
	courses.Post("/:courseId/restore", handlers.RestoreCourse)

	courses.Post("/:courseId/modules", handlers.CreateModule)
	courses.Get("/:courseId/modules", handlers.ListModules)

	modules := api.Group("/modules")
	modules.Get("/:moduleId", handlers.GetModule)
	modules.Put("/:moduleId", handlers.UpdateModule)
	modules.Delete("/:moduleId", handlers.DeleteModule)
	modules.Post("/:moduleId/simplify", handlers.SimplifyModule)
	modules.Get("/:moduleId/questions", handlers.ListModuleQuestions)

	questions := api.Group("/questions")
	questions.Get("/:questionId", handlers.GetQuestion)
	questions.Delete("/:questionId", handlers.DeleteQuestion)
}
