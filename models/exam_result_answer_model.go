package models

import (
	"time"

	"github.com/google/uuid"
)

// ExamResultAnswer records the grading of one linked question for one submit.
// Exactly one row exists per question in the exam, answered or not.
type ExamResultAnswer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExamResultID uuid.UUID `gorm:"type:uuid;not null;index" json:"exam_result_id"`
	QuestionID   uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	UserAnswer   string    `gorm:"type:text;not null" json:"user_answer"`
	IsCorrect    bool      `gorm:"not null" json:"is_correct"`
	Points       float64   `gorm:"not null;default:0" json:"points"`

	CreatedAt time.Time `json:"created_at"`
}
