package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/apperrors"
	"github.com/studyez/studyez_backend/database"
	"github.com/studyez/studyez_backend/models"
	"github.com/studyez/studyez_backend/utils"
	"gorm.io/gorm"
)

// GenerateExam runs the blueprint pipeline for a course: load its modules,
// call the generator, then persist questions, options and exam links in one
// transaction. Only the course owner or an admin may generate.
func GenerateExam(ctx context.Context, gen *ExamGenerator, courseID uuid.UUID, totalQuestions int, actorUserID uuid.UUID, actorRole string) (*models.Exam, error) {
	var course models.Course
	err := database.DB.First(&course, "id = ? AND is_deleted = ?", courseID, false).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.CourseNotFound(courseID)
		}
		return nil, err
	}

	if err := utils.EnsureOwnerOrAdmin(course.UserID, actorUserID, utils.IsAdmin(actorRole)); err != nil {
		return nil, err
	}

	var mods []models.Module
	err = database.DB.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order(`"order"`).
		Find(&mods).Error
	if err != nil {
		return nil, err
	}
	if len(mods) == 0 {
		return nil, apperrors.InvalidExamGeneration("Course has no modules")
	}

	contents := make([]ModuleContent, len(mods))
	for i, m := range mods {
		contents[i] = ModuleContent{Title: m.Title, OriginalContent: m.OriginalContent}
	}

	result, err := gen.Generate(ctx, course.Name, contents, totalQuestions)
	if err != nil {
		return nil, err
	}

	title := result.Title
	if title == "" {
		title = fmt.Sprintf("%s — Exam", course.Name)
	}

	exam := models.Exam{
		ID:        uuid.New(),
		CourseID:  course.ID,
		Title:     title,
		IsActive:  true,
		CreatedBy: actorUserID,
	}

	items := append([]GeneratedExamItem(nil), result.Items...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&exam).Error; err != nil {
			return err
		}

		order := 1
		for _, item := range items {
			qType, ok := models.ParseAIQuestionType(item.Type)
			if !ok {
				return apperrors.Validation("Unknown question type from AI: '%s'", item.Type)
			}

			question := models.Question{
				ID:            uuid.New(),
				ModuleID:      moduleForItem(mods, item.ModuleIndex),
				Type:          qType,
				QuestionText:  strings.TrimSpace(item.QuestionText),
				CorrectAnswer: strings.TrimSpace(item.CorrectAnswer),
				CreatedBy:     actorUserID,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			if qType == models.MultipleChoice && len(item.Options) > 0 {
				options := padOptions(item.Options)
				for i, text := range options {
					opt := models.QuestionOption{
						ID:         uuid.New(),
						QuestionID: question.ID,
						OptionText: text,
						Order:      i + 1,
					}
					if err := tx.Create(&opt).Error; err != nil {
						return err
					}
				}
			}

			link := models.ExamQuestion{
				ID:         uuid.New(),
				ExamID:     exam.ID,
				QuestionID: question.ID,
				Order:      order,
				Points:     1,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
			order++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &exam, nil
}

// moduleForItem resolves a 1-based moduleIndex from the generator into the
// owning module; indexes outside the list fall back to the first module.
func moduleForItem(mods []models.Module, moduleIndex int) uuid.UUID {
	if moduleIndex >= 1 && moduleIndex <= len(mods) {
		return mods[moduleIndex-1].ID
	}
	return mods[0].ID
}

func GetExam(id uuid.UUID) (*models.Exam, error) {
	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ExamNotFound(id)
		}
		return nil, err
	}
	return &exam, nil
}

func GetExamsByCourse(courseID uuid.UUID) ([]models.Exam, error) {
	var exams []models.Exam
	err := database.DB.
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&exams).Error
	return exams, err
}

// DeleteExam removes an exam and its question links. An exam that already has
// results cannot be deleted.
func DeleteExam(id uuid.UUID, actorUserID uuid.UUID, actorRole string) error {
	exam, err := GetExam(id)
	if err != nil {
		return err
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", exam.CourseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.CourseNotFound(exam.CourseID)
		}
		return err
	}
	if err := utils.EnsureOwnerOrAdmin(course.UserID, actorUserID, utils.IsAdmin(actorRole)); err != nil {
		return err
	}

	var results int64
	if err := database.DB.Model(&models.ExamResult{}).Where("exam_id = ?", id).Count(&results).Error; err != nil {
		return err
	}
	if results > 0 {
		return apperrors.Conflict("Exam has results; cannot delete.")
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", id).Delete(&models.ExamQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Exam{}, "id = ?", id).Error
	})
}

// DeactivateExpiredExams flips IsActive off on exams whose ExpiresAt has
// passed. Called from the cron job.
func DeactivateExpiredExams(now time.Time) (int64, error) {
	res := database.DB.Model(&models.Exam{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at < ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
