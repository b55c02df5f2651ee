package models

import (
	"strings"
	"unicode"

	"github.com/studyez/studyez_backend/apperrors"
)

// QuestionType enumerates the supported exam question kinds. The zero value is
// MultipleChoice; the integer values are what GORM stores.
type QuestionType int

const (
	MultipleChoice QuestionType = iota
	TrueFalse
	ShortAnswer
)

const (
	WireMultipleChoice = "multiple-choice"
	WireTrueFalse      = "true-false"
	WireShortAnswer    = "short-answer"
)

// WireString returns the stable wire representation of t. Unknown values are a
// hard error, never a default.
func (t QuestionType) WireString() (string, error) {
	switch t {
	case MultipleChoice:
		return WireMultipleChoice, nil
	case TrueFalse:
		return WireTrueFalse, nil
	case ShortAnswer:
		return WireShortAnswer, nil
	default:
		return "", apperrors.Validation("Question type '%d' is invalid.", int(t))
	}
}

func (t QuestionType) String() string {
	s, err := t.WireString()
	if err != nil {
		return "unknown"
	}
	return s
}

// ParseQuestionType is the strict client-facing decoder: only the exact wire
// strings are accepted.
func ParseQuestionType(s string) (QuestionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case WireMultipleChoice:
		return MultipleChoice, nil
	case WireTrueFalse:
		return TrueFalse, nil
	case WireShortAnswer:
		return ShortAnswer, nil
	default:
		return 0, apperrors.InvalidQuestionType(s)
	}
}

// ParseAIQuestionType is the alias-tolerant decoder used when importing
// AI-generated items. It reduces the input to its lowercase letters, so
// "multiple-choice", "MultipleChoice" and "mcq" all map to the same type.
// It stays separate from ParseQuestionType: direct wire decoding must not
// accept the aliases.
func ParseAIQuestionType(s string) (QuestionType, bool) {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	switch b.String() {
	case "multiplechoice", "mcq":
		return MultipleChoice, true
	case "truefalse", "tf":
		return TrueFalse, true
	case "shortanswer", "sa":
		return ShortAnswer, true
	default:
		return 0, false
	}
}
