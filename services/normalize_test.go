package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studyez/studyez_backend/models"
)

func TestNormalizeAnswerTrimAndFold(t *testing.T) {
	assert.Equal(t, "paris", NormalizeAnswer(" Paris ", models.ShortAnswer))
	assert.Equal(t, "b", NormalizeAnswer("B", models.MultipleChoice))
	assert.Equal(t, "", NormalizeAnswer("   ", models.ShortAnswer))
}

func TestNormalizeAnswerTrueFalseTokens(t *testing.T) {
	for _, tok := range []string{"t", "true", "1", "yes", "y", "T", " TRUE "} {
		assert.Equal(t, "true", NormalizeAnswer(tok, models.TrueFalse), "token %q", tok)
	}
	for _, tok := range []string{"f", "false", "0", "no", "n", " FALSE "} {
		assert.Equal(t, "false", NormalizeAnswer(tok, models.TrueFalse), "token %q", tok)
	}

	// Unmatched tokens pass through and will simply fail to match.
	assert.Equal(t, "maybe", NormalizeAnswer("maybe", models.TrueFalse))
}

func TestNormalizeAnswerTokensOnlyApplyToTrueFalse(t *testing.T) {
	assert.Equal(t, "y", NormalizeAnswer("y", models.ShortAnswer))
	assert.Equal(t, "1", NormalizeAnswer("1", models.MultipleChoice))
}

func TestNormalizeAnswerIdempotent(t *testing.T) {
	for _, typ := range []models.QuestionType{models.MultipleChoice, models.TrueFalse, models.ShortAnswer} {
		for _, raw := range []string{" Paris ", "T", "no", "MAYBE", ""} {
			once := NormalizeAnswer(raw, typ)
			assert.Equal(t, once, NormalizeAnswer(once, typ), "type %v raw %q", typ, raw)
		}
	}
}

func TestIsCorrectAnswer(t *testing.T) {
	tf := &models.Question{Type: models.TrueFalse, CorrectAnswer: "true"}
	assert.True(t, IsCorrectAnswer(tf, "T"))
	assert.True(t, IsCorrectAnswer(tf, "yes"))
	assert.False(t, IsCorrectAnswer(tf, "maybe"))
	assert.False(t, IsCorrectAnswer(tf, ""))

	sa := &models.Question{Type: models.ShortAnswer, CorrectAnswer: "Paris"}
	assert.True(t, IsCorrectAnswer(sa, " paris "))
	assert.False(t, IsCorrectAnswer(sa, "london"))
}
