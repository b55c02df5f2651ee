package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/database"
	"github.com/studyez/studyez_backend/models"
	"github.com/studyez/studyez_backend/utils"
	"gorm.io/gorm"
)

type CourseRequest struct {
	Name        string  `json:"name" validate:"required"`
	Subject     string  `json:"subject" validate:"required"`
	Description *string `json:"description"`
}

func CreateCourse(c *fiber.Ctx) error {
	actorID, _, err := utils.Actor(c)
	if err != nil {
		return err
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		ID:          uuid.New(),
		UserID:      actorID,
		Name:        req.Name,
		Subject:     req.Subject,
		Description: req.Description,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func ListMyCourses(c *fiber.Ctx) error {
	actorID, _, err := utils.Actor(c)
	if err != nil {
		return err
	}

	var courses []models.Course
	if err := database.DB.Where("user_id = ? AND is_deleted = ?", actorID, false).Order("created_at DESC").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list courses"})
	}
	return c.JSON(courses)
}

// loadOwnedCourse fetches a course and enforces owner-or-admin access.
func loadOwnedCourse(c *fiber.Ctx, courseID uuid.UUID, includeDeleted bool) (*models.Course, error) {
	actorID, role, err := utils.Actor(c)
	if err != nil {
		return nil, err
	}

	query := database.DB.Session(&gorm.Session{})
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var course models.Course
	if err := query.First(&course, "id = ?", courseID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	if err := utils.EnsureOwnerOrAdmin(course.UserID, actorID, utils.IsAdmin(role)); err != nil {
		return nil, err
	}
	return &course, nil
}

func GetCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	course, err := loadOwnedCourse(c, courseID, false)
	if err != nil {
		return err
	}

	if err := database.DB.Where("course_id = ? AND is_deleted = ?", courseID, false).Order(`"order"`).Find(&course.Modules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load modules"})
	}
	return c.JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	course, err := loadOwnedCourse(c, courseID, false)
	if err != nil {
		return err
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course.Name = req.Name
	course.Subject = req.Subject
	course.Description = req.Description
	if err := database.DB.Save(course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}
	return c.JSON(course)
}

// DeleteCourse soft-deletes; the restore endpoint undoes it.
func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	course, err := loadOwnedCourse(c, courseID, false)
	if err != nil {
		return err
	}

	course.IsDeleted = true
	if err := database.DB.Save(course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func RestoreCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	course, err := loadOwnedCourse(c, courseID, true)
	if err != nil {
		return err
	}

	course.IsDeleted = false
	if err := database.DB.Save(course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to restore course"})
	}
	return c.JSON(course)
}
