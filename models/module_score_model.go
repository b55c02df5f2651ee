package models

import (
	"time"

	"github.com/google/uuid"
)

// ModuleScore is the per-module breakdown of one exam result. Across a single
// result the QuestionsCount values sum to the result's TotalQuestions.
type ModuleScore struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExamResultID   uuid.UUID `gorm:"type:uuid;not null;index" json:"exam_result_id"`
	ModuleID       uuid.UUID `gorm:"type:uuid;not null" json:"module_id"`
	Score          float64   `gorm:"not null" json:"score"`
	QuestionsCount int       `gorm:"not null" json:"questions_count"`
	CorrectCount   int       `gorm:"not null" json:"correct_count"`

	CreatedAt time.Time `json:"created_at"`
}
