package models

import (
	"time"

	"github.com/google/uuid"
)

// Module is one unit of course content. Questions are owned by modules, which
// makes them the aggregation unit for per-module exam scores.
type Module struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CourseID          uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Order             int       `gorm:"not null;default:0" json:"order"`
	OriginalContent   string    `gorm:"type:text;not null" json:"original_content"`
	SimplifiedContent *string   `gorm:"type:text" json:"simplified_content,omitempty"`
	IsDeleted         bool      `gorm:"not null;default:false" json:"is_deleted"`

	Questions []Question `gorm:"foreignKey:ModuleID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
