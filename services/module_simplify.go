package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/apperrors"
	config "github.com/studyez/studyez_backend/configs"
	"github.com/studyez/studyez_backend/database"
	"github.com/studyez/studyez_backend/models"
	"github.com/studyez/studyez_backend/utils"
	"gorm.io/gorm"
)

// Content longer than this is simplified chunk by chunk and merged afterwards.
const simplifyChunkChars = 8000

const (
	simplifySystemPrompt = "You are a study simplifier. Output clear Markdown with headings/bullets; no external facts."
	mergeSystemPrompt    = "Merge sections into one cohesive Markdown. Remove duplicates; keep concise."
)

// ModuleSimplifier rewrites module content into simplified study Markdown.
// Like the exam generator it never writes to storage.
type ModuleSimplifier struct {
	chat  chatFunc
	model string
}

func NewModuleSimplifier(client *AIClient, model string) *ModuleSimplifier {
	return &ModuleSimplifier{chat: client.Chat, model: model}
}

var defaultSimplifier *ModuleSimplifier

// DefaultModuleSimplifier returns the process-wide simplifier configured from
// the environment.
func DefaultModuleSimplifier() *ModuleSimplifier {
	if defaultSimplifier == nil {
		defaultSimplifier = NewModuleSimplifier(NewAIClientFromEnv(), config.Config("AI_SIMPLIFY_MODEL"))
	}
	return defaultSimplifier
}

// Simplify runs the content through the model one chunk at a time. A single
// chunk is returned as-is; multiple chunks get one extra merge call.
func (s *ModuleSimplifier) Simplify(ctx context.Context, content string) (string, error) {
	chunks := chunkContent(content, simplifyChunkChars)

	parts := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		out, err := s.chat(ctx, s.model, []ChatMessage{
			{Role: "system", Content: simplifySystemPrompt},
			{Role: "user", Content: ch},
		})
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimSpace(out))
	}

	if len(parts) == 1 {
		return parts[0], nil
	}

	return s.chat(ctx, s.model, []ChatMessage{
		{Role: "system", Content: mergeSystemPrompt},
		{Role: "user", Content: strings.Join(parts, "\n\n---\n\n")},
	})
}

func chunkContent(text string, size int) []string {
	chunks := make([]string, 0, len(text)/size+1)
	for len(text) > size {
		chunks = append(chunks, text[:size])
		text = text[size:]
	}
	return append(chunks, text)
}

// SimplifyModule stores a simplified rendition of the module's original
// content. Only the course owner or an admin may simplify, and a module
// without original content is rejected before any AI call.
func SimplifyModule(ctx context.Context, simp *ModuleSimplifier, moduleID uuid.UUID, actorUserID uuid.UUID, actorRole string) (*models.Module, error) {
	var module models.Module
	if err := database.DB.First(&module, "id = ? AND is_deleted = ?", moduleID, false).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ModuleNotFound(moduleID)
		}
		return nil, err
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", module.CourseID).Error; err != nil {
		return nil, err
	}
	if err := utils.EnsureOwnerOrAdmin(course.UserID, actorUserID, utils.IsAdmin(actorRole)); err != nil {
		return nil, err
	}

	if strings.TrimSpace(module.OriginalContent) == "" {
		return nil, apperrors.Validation("Module has no original content to simplify.")
	}

	simplified, err := simp.Simplify(ctx, module.OriginalContent)
	if err != nil {
		return nil, err
	}

	module.SimplifiedContent = &simplified
	if err := database.DB.Save(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}
