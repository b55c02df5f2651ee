package services

import (
	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/apperrors"
	"github.com/studyez/studyez_backend/database"
	"github.com/studyez/studyez_backend/models"
	"github.com/studyez/studyez_backend/utils"
	"gorm.io/gorm"
)

func GetResultsForUser(userID uuid.UUID) ([]models.ExamResult, error) {
	var results []models.ExamResult
	err := database.DB.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Preload("ModuleScores").
		Find(&results).Error
	return results, err
}

// GetResult loads one result with its graded answers and module scores.
// Only the result's owner or an admin may read it.
func GetResult(id uuid.UUID, actorUserID uuid.UUID, actorRole string) (*models.ExamResult, error) {
	var result models.ExamResult
	err := database.DB.
		Preload("Answers").
		Preload("ModuleScores").
		First(&result, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ExamResultNotFound(id)
		}
		return nil, err
	}

	if err := utils.EnsureOwnerOrAdmin(result.UserID, actorUserID, utils.IsAdmin(actorRole)); err != nil {
		return nil, err
	}
	return &result, nil
}
