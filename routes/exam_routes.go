package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studyez/studyez_backend/handlers"
	"github.com/studyez/studyez_backend/middleware"
)

func ExamRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.Protected())

	exams := api.Group("/exams")
	exams.Post("/generate", handlers.GenerateExam)
	exams.Get("/:examId", handlers.GetExam)
	exams.Delete("/:examId", handlers.DeleteExam)

	api.Get("/courses/:courseId/exams", handlers.ListCourseExams)

	runs := api.Group("/exam-runs")
	runs.Get("/start/:examId", handlers.StartExam)
	runs.Post("/submit", handlers.SubmitExam)

	results := api.Group("/exam-results")
	results.Get("", handlers.ListMyResults)
	results.Get("/:resultId", handlers.GetResult)
}
