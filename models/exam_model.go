package models

import (
	"time"

	"github.com/google/uuid"
)

type Exam struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CourseID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"course_id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`

	ExamQuestions []ExamQuestion `gorm:"foreignKey:ExamID" json:"-"`
	Results       []ExamResult   `gorm:"foreignKey:ExamID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
