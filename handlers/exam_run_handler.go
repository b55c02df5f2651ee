package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/studyez/studyez_backend/configs"
	"github.com/studyez/studyez_backend/services"
	"github.com/studyez/studyez_backend/utils"
)

type SubmitExamRequest struct {
	ExamID  uuid.UUID                 `json:"exam_id" validate:"required"`
	Answers []services.ExamSubmitItem `json:"answers"`
}

func StartExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("examId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exam id"})
	}

	resp, err := services.StartExam(examID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func SubmitExam(c *fiber.Ctx) error {
	actorID, role, err := utils.Actor(c)
	if err != nil {
		return err
	}

	var req SubmitExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	requireOwnership := config.ConfigBool("SUBMIT_REQUIRE_COURSE_OWNERSHIP")

	result, err := services.SubmitExam(req.ExamID, req.Answers, actorID, role, requireOwnership)
	if err != nil {
		return err
	}

	// Concise summary; graded answers and module scores are available from
	// the results endpoints.
	return c.JSON(fiber.Map{
		"id":              result.ID,
		"exam_id":         result.ExamID,
		"user_id":         result.UserID,
		"overall_score":   result.OverallScore,
		"total_questions": result.TotalQuestions,
		"correct_answers": result.CorrectAnswers,
		"completed_at":    result.CompletedAt,
	})
}
