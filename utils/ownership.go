package utils

import (
	"strings"

	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/apperrors"
	"github.com/studyez/studyez_backend/models"
)

func IsAdmin(role string) bool {
	return strings.EqualFold(role, models.RoleAdmin)
}

// EnsureOwnerOrAdmin allows the action when the actor owns the resource or is
// an admin; otherwise it returns a forbidden error.
func EnsureOwnerOrAdmin(ownerUserID, actorUserID uuid.UUID, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	if ownerUserID != actorUserID {
		return apperrors.Forbidden("You do not have permission to modify this resource.")
	}
	return nil
}
