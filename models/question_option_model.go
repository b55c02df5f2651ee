package models

import (
	"time"

	"github.com/google/uuid"
)

type QuestionOption struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	OptionText string    `gorm:"type:text;not null" json:"option_text"`
	Order      int       `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}
