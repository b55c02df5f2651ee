package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireStringRoundTrip(t *testing.T) {
	for _, qt := range []QuestionType{MultipleChoice, TrueFalse, ShortAnswer} {
		wire, err := qt.WireString()
		require.NoError(t, err)

		parsed, err := ParseQuestionType(wire)
		require.NoError(t, err)
		assert.Equal(t, qt, parsed)
	}
}

func TestWireStringUnknownValue(t *testing.T) {
	_, err := QuestionType(42).WireString()
	assert.Error(t, err)
}

func TestParseQuestionTypeStrict(t *testing.T) {
	parsed, err := ParseQuestionType("  Multiple-Choice ")
	require.NoError(t, err)
	assert.Equal(t, MultipleChoice, parsed)

	// Aliases are only valid on the AI-import path, never on the wire.
	for _, s := range []string{"mcq", "tf", "sa", "multiplechoice", "MultipleChoice", "unknown", ""} {
		_, err := ParseQuestionType(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseAIQuestionTypeAliases(t *testing.T) {
	cases := map[string]QuestionType{
		"multiple-choice": MultipleChoice,
		"MultipleChoice":  MultipleChoice,
		"mcq":             MultipleChoice,
		"MCQ":             MultipleChoice,
		"true-false":      TrueFalse,
		"true_false":      TrueFalse,
		"tf":              TrueFalse,
		"short-answer":    ShortAnswer,
		"Short Answer":    ShortAnswer,
		"sa":              ShortAnswer,
	}
	for in, want := range cases {
		got, ok := ParseAIQuestionType(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "essay", "123", "m-c-q-x"} {
		_, ok := ParseAIQuestionType(in)
		assert.False(t, ok, "input %q", in)
	}
}
