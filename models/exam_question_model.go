package models

import (
	"time"

	"github.com/google/uuid"
)

// ExamQuestion links a question into one exam, giving it its presentation
// order and point value there. (ExamID, QuestionID) is unique per exam.
type ExamQuestion struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExamID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exam_question" json:"exam_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exam_question" json:"question_id"`
	Order      int       `gorm:"not null;default:0" json:"order"`
	Points     float64   `gorm:"not null;default:1" json:"points"`

	Question *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
