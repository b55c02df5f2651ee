package models

import (
	"time"

	"github.com/google/uuid"
)

// Question is owned by exactly one module and may be linked to any number of
// exams through ExamQuestion. The grading path never mutates it.
type Question struct {
	ID            uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	ModuleID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"module_id"`
	Type          QuestionType `gorm:"not null" json:"type"`
	QuestionText  string       `gorm:"type:text;not null" json:"question_text"`
	CorrectAnswer string       `gorm:"type:text;not null" json:"-"`
	CreatedBy     uuid.UUID    `gorm:"type:uuid;not null" json:"created_by"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
