package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/database"
	"github.com/studyez/studyez_backend/models"
	"github.com/studyez/studyez_backend/services"
	"github.com/studyez/studyez_backend/utils"
)

type ModuleRequest struct {
	Title           string `json:"title" validate:"required"`
	Order           int    `json:"order"`
	OriginalContent string `json:"original_content" validate:"required"`
}

func CreateModule(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	if _, err := loadOwnedCourse(c, courseID, false); err != nil {
		return err
	}

	var req ModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	module := models.Module{
		ID:              uuid.New(),
		CourseID:        courseID,
		Title:           req.Title,
		Order:           req.Order,
		OriginalContent: req.OriginalContent,
	}
	if err := database.DB.Create(&module).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create module"})
	}
	return c.Status(fiber.StatusCreated).JSON(module)
}

func ListModules(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	if _, err := loadOwnedCourse(c, courseID, false); err != nil {
		return err
	}

	var modules []models.Module
	if err := database.DB.Where("course_id = ? AND is_deleted = ?", courseID, false).Order(`"order"`).Find(&modules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list modules"})
	}
	return c.JSON(modules)
}

// loadOwnedModule fetches a module through its course's ownership check.
func loadOwnedModule(c *fiber.Ctx, moduleID uuid.UUID) (*models.Module, error) {
	var module models.Module
	if err := database.DB.First(&module, "id = ? AND is_deleted = ?", moduleID, false).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Module not found")
	}
	if _, err := loadOwnedCourse(c, module.CourseID, false); err != nil {
		return nil, err
	}
	return &module, nil
}

func GetModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid module id"})
	}

	module, err := loadOwnedModule(c, moduleID)
	if err != nil {
		return err
	}
	return c.JSON(module)
}

func UpdateModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid module id"})
	}

	module, err := loadOwnedModule(c, moduleID)
	if err != nil {
		return err
	}

	var req ModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	module.Title = req.Title
	module.Order = req.Order
	module.OriginalContent = req.OriginalContent
	if err := database.DB.Save(module).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update module"})
	}
	return c.JSON(module)
}

// SimplifyModule rewrites the module's original content into simplified
// Markdown and stores it on the module.
func SimplifyModule(c *fiber.Ctx) error {
	actorID, role, err := utils.Actor(c)
	if err != nil {
		return err
	}

	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid module id"})
	}

	module, err := services.SimplifyModule(c.Context(), services.DefaultModuleSimplifier(), moduleID, actorID, role)
	if err != nil {
		return err
	}
	return c.JSON(module)
}

func DeleteModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid module id"})
	}

	module, err := loadOwnedModule(c, moduleID)
	if err != nil {
		return err
	}

	module.IsDeleted = true
	if err := database.DB.Save(module).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete module"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
