package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/services"
	"github.com/studyez/studyez_backend/utils"
)

func ListMyResults(c *fiber.Ctx) error {
	actorID, _, err := utils.Actor(c)
	if err != nil {
		return err
	}

	results, err := services.GetResultsForUser(actorID)
	if err != nil {
		return err
	}
	return c.JSON(results)
}

func GetResult(c *fiber.Ctx) error {
	actorID, role, err := utils.Actor(c)
	if err != nil {
		return err
	}

	resultID, err := uuid.Parse(c.Params("resultId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid result id"})
	}

	result, err := services.GetResult(resultID, actorID, role)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
