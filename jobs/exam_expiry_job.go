package jobs

import (
	"log"
	"time"

	"github.com/studyez/studyez_backend/services"
)

// DeactivateExpiredExams closes exams whose expiry has passed so they stop
// appearing startable.
func DeactivateExpiredExams() {
	n, err := services.DeactivateExpiredExams(time.Now().UTC())
	if err != nil {
		log.Printf("🔥 Failed to deactivate expired exams: %v", err)
		return
	}
	if n > 0 {
		log.Printf("✅ Deactivated %d expired exam(s).", n)
	}
}
