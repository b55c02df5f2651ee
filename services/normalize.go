package services

import (
	"strings"

	"github.com/studyez/studyez_backend/models"
)

// NormalizeAnswer canonicalizes an answer string for type-aware comparison.
// Every type is trimmed and case-folded; true/false answers additionally map
// common affirmative/negative tokens onto "true"/"false". Unrecognized tokens
// pass through unchanged so a garbled answer simply fails to match.
func NormalizeAnswer(raw string, t models.QuestionType) string {
	norm := strings.ToLower(strings.TrimSpace(raw))

	if t == models.TrueFalse {
		switch norm {
		case "t", "true", "1", "yes", "y":
			return "true"
		case "f", "false", "0", "no", "n":
			return "false"
		}
	}

	return norm
}

// IsCorrectAnswer grades a submitted answer against the question's correct
// answer: plain equality of the two normalized strings, no partial credit.
func IsCorrectAnswer(q *models.Question, userAnswer string) bool {
	return NormalizeAnswer(q.CorrectAnswer, q.Type) == NormalizeAnswer(userAnswer, q.Type)
}
