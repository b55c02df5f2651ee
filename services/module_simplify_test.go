package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyez/studyez_backend/apperrors"
	"github.com/studyez/studyez_backend/models"
)

type chatCall struct {
	system string
	user   string
}

// simplifierWith replies with replies[i] on the i-th call, repeating the last
// reply when it runs out, and records every call.
func simplifierWith(replies []string, calls *[]chatCall) *ModuleSimplifier {
	return &ModuleSimplifier{
		model: "test-model",
		chat: func(_ context.Context, _ string, messages []ChatMessage) (string, error) {
			var call chatCall
			for _, m := range messages {
				switch m.Role {
				case "system":
					call.system = m.Content
				case "user":
					call.user = m.Content
				}
			}
			*calls = append(*calls, call)

			i := len(*calls) - 1
			if i >= len(replies) {
				i = len(replies) - 1
			}
			return replies[i], nil
		},
	}
}

func TestSimplifyModuleStoresContent(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	_, moduleIDs := seedCourseWithModules(t, db, owner, 1)

	var calls []chatCall
	simp := simplifierWith([]string{"# Simplified\n- one fact"}, &calls)

	module, err := SimplifyModule(context.Background(), simp, moduleIDs[0], owner, models.RoleFree)
	require.NoError(t, err)
	require.NotNil(t, module.SimplifiedContent)
	assert.Equal(t, "# Simplified\n- one fact", *module.SimplifiedContent)

	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].system, "study simplifier")
	assert.Equal(t, "content", calls[0].user)

	var stored models.Module
	require.NoError(t, db.First(&stored, "id = ?", moduleIDs[0]).Error)
	require.NotNil(t, stored.SimplifiedContent)
	assert.Equal(t, "# Simplified\n- one fact", *stored.SimplifiedContent)
}

func TestSimplifyModuleWithoutContent(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	courseID, _ := seedCourseWithModules(t, db, owner, 1)

	blankID := uuid.New()
	require.NoError(t, db.Create(&models.Module{
		ID: blankID, CourseID: courseID, Title: "Blank", Order: 2, OriginalContent: "   ",
	}).Error)

	var calls []chatCall
	simp := simplifierWith([]string{"unused"}, &calls)

	_, err := SimplifyModule(context.Background(), simp, blankID, owner, models.RoleFree)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Empty(t, calls)
}

func TestSimplifyModuleNotFound(t *testing.T) {
	setupTestDB(t)

	var calls []chatCall
	simp := simplifierWith([]string{"unused"}, &calls)

	_, err := SimplifyModule(context.Background(), simp, uuid.New(), uuid.New(), models.RoleFree)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestSimplifyModuleOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := uuid.New()
	_, moduleIDs := seedCourseWithModules(t, db, owner, 1)

	var calls []chatCall
	simp := simplifierWith([]string{"simplified"}, &calls)

	_, err := SimplifyModule(context.Background(), simp, moduleIDs[0], uuid.New(), models.RoleFree)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	assert.Empty(t, calls)

	module, err := SimplifyModule(context.Background(), simp, moduleIDs[0], uuid.New(), models.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, module.SimplifiedContent)
}

func TestSimplifyMergesChunkedContent(t *testing.T) {
	long := strings.Repeat("a", simplifyChunkChars) + "bbb"

	var calls []chatCall
	simp := simplifierWith([]string{"part one", "part two", "merged"}, &calls)

	out, err := simp.Simplify(context.Background(), long)
	require.NoError(t, err)
	assert.Equal(t, "merged", out)

	require.Len(t, calls, 3)
	assert.Len(t, calls[0].user, simplifyChunkChars)
	assert.Equal(t, "bbb", calls[1].user)
	assert.Contains(t, calls[2].system, "Merge sections")
	assert.Equal(t, "part one\n\n---\n\npart two", calls[2].user)
}

func TestSimplifyShortContentSingleCall(t *testing.T) {
	var calls []chatCall
	simp := simplifierWith([]string{"  simplified  "}, &calls)

	out, err := simp.Simplify(context.Background(), "short content")
	require.NoError(t, err)
	assert.Equal(t, "simplified", out)
	assert.Len(t, calls, 1)
}
