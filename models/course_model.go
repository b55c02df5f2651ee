package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Subject     string    `gorm:"size:255;not null" json:"subject"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"is_deleted"`

	Modules []Module `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
	Exams   []Exam   `gorm:"foreignKey:CourseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
