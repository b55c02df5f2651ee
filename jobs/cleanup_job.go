package jobs

import (
	"log"
	"time"

	"github.com/studyez/studyez_backend/database"
	"github.com/studyez/studyez_backend/models"
)

const purgeAfter = 30 * 24 * time.Hour

// PurgeSoftDeletedCourses hard-deletes courses that have been soft-deleted
// for longer than the retention window, along with their modules.
func PurgeSoftDeletedCourses() {
	cutoff := time.Now().UTC().Add(-purgeAfter)

	var courses []models.Course
	if err := database.DB.Where("is_deleted = ? AND updated_at < ?", true, cutoff).Find(&courses).Error; err != nil {
		log.Printf("🔥 Failed to load soft-deleted courses: %v", err)
		return
	}

	for _, course := range courses {
		if err := database.DB.Where("course_id = ?", course.ID).Delete(&models.Module{}).Error; err != nil {
			log.Printf("🔥 Failed to purge modules for course %s: %v", course.ID, err)
			continue
		}
		if err := database.DB.Delete(&models.Course{}, "id = ?", course.ID).Error; err != nil {
			log.Printf("🔥 Failed to purge course %s: %v", course.ID, err)
			continue
		}
	}

	if len(courses) > 0 {
		log.Printf("✅ Purged %d soft-deleted course(s).", len(courses))
	}
}
