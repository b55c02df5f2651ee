package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/services"
	"github.com/studyez/studyez_backend/utils"
)

type GenerateExamRequest struct {
	CourseID       uuid.UUID `json:"course_id" validate:"required"`
	TotalQuestions int       `json:"total_questions" validate:"omitempty,min=1,max=200"`
}

func GenerateExam(c *fiber.Ctx) error {
	actorID, role, err := utils.Actor(c)
	if err != nil {
		return err
	}

	var req GenerateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.TotalQuestions == 0 {
		req.TotalQuestions = 20
	}

	exam, err := services.GenerateExam(c.Context(), services.DefaultExamGenerator(), req.CourseID, req.TotalQuestions, actorID, role)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(exam)
}

func GetExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exam id"})
	}

	exam, err := services.GetExam(examID)
	if err != nil {
		return err
	}
	return c.JSON(exam)
}

func ListCourseExams(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	if _, err := loadOwnedCourse(c, courseID, false); err != nil {
		return err
	}

	exams, err := services.GetExamsByCourse(courseID)
	if err != nil {
		return err
	}
	return c.JSON(exams)
}

func DeleteExam(c *fiber.Ctx) error {
	actorID, role, err := utils.Actor(c)
	if err != nil {
		return err
	}

	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exam id"})
	}

	if err := services.DeleteExam(examID, actorID, role); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
