package models

import (
	"time"

	"github.com/google/uuid"
)

// ExamResult owns its answers and module scores: they are written together in
// one transaction and removed with the result.
type ExamResult struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExamID         uuid.UUID `gorm:"type:uuid;not null;index" json:"exam_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OverallScore   float64   `gorm:"not null" json:"overall_score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CorrectAnswers int       `gorm:"not null" json:"correct_answers"`
	CompletedAt    time.Time `gorm:"not null" json:"completed_at"`

	Answers      []ExamResultAnswer `gorm:"foreignKey:ExamResultID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	ModuleScores []ModuleScore      `gorm:"foreignKey:ExamResultID;constraint:OnDelete:CASCADE" json:"module_scores,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
