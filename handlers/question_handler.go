package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/database"
	"github.com/studyez/studyez_backend/models"
	"gorm.io/gorm"
)

func GetQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	var question models.Question
	err = database.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		First(&question, "id = ?", questionID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	if _, err := loadOwnedModule(c, question.ModuleID); err != nil {
		return err
	}
	return c.JSON(question)
}

func ListModuleQuestions(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid module id"})
	}

	if _, err := loadOwnedModule(c, moduleID); err != nil {
		return err
	}

	query := database.DB.Where("module_id = ?", moduleID)

	// Optional ?type= filter takes the strict wire strings only; AI-import
	// aliases are not valid here.
	if typeStr := c.Query("type"); typeStr != "" {
		qt, err := models.ParseQuestionType(typeStr)
		if err != nil {
			return err
		}
		query = query.Where("type = ?", qt)
	}

	var questions []models.Question
	err = query.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		Find(&questions).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list questions"})
	}
	return c.JSON(questions)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question id"})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	if _, err := loadOwnedModule(c, question.ModuleID); err != nil {
		return err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&models.ExamQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, "id = ?", questionID).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
