package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyez/studyez_backend/models"
)

func genItems(wire string, n int) []GeneratedExamItem {
	items := make([]GeneratedExamItem, n)
	for i := range items {
		items[i] = GeneratedExamItem{
			Type:          wire,
			QuestionText:  fmt.Sprintf("%s question %d", wire, i+1),
			CorrectAnswer: "answer",
			Order:         i + 1,
			Points:        3, // deliberately wrong; Rebalance must force 1
		}
	}
	return items
}

func typeCounts(items []GeneratedExamItem) map[string]int {
	counts := map[string]int{}
	for _, it := range items {
		counts[it.Type]++
	}
	return counts
}

func TestRebalanceExactCounts(t *testing.T) {
	pool := append(genItems(models.WireMultipleChoice, 20), genItems(models.WireTrueFalse, 10)...)
	pool = append(pool, genItems(models.WireShortAnswer, 10)...)

	out := Rebalance(pool, 14, 4, 2)
	require.Len(t, out, 20)

	counts := typeCounts(out)
	assert.Equal(t, 14, counts[models.WireMultipleChoice])
	assert.Equal(t, 4, counts[models.WireTrueFalse])
	assert.Equal(t, 2, counts[models.WireShortAnswer])
}

func TestRebalanceTypeOrdering(t *testing.T) {
	// Interleave types so the output ordering is the rebalancer's doing.
	pool := []GeneratedExamItem{
		{Type: models.WireShortAnswer, QuestionText: "sa1", Order: 1},
		{Type: models.WireMultipleChoice, QuestionText: "mcq1", Order: 2},
		{Type: models.WireTrueFalse, QuestionText: "tf1", Order: 3},
		{Type: models.WireMultipleChoice, QuestionText: "mcq2", Order: 4},
	}

	out := Rebalance(pool, 2, 1, 1)
	require.Len(t, out, 4)
	assert.Equal(t, "mcq1", out[0].QuestionText)
	assert.Equal(t, "mcq2", out[1].QuestionText)
	assert.Equal(t, "tf1", out[2].QuestionText)
	assert.Equal(t, "sa1", out[3].QuestionText)
}

func TestRebalancePreservesRelativeOrderWithinType(t *testing.T) {
	pool := append(genItems(models.WireMultipleChoice, 5), genItems(models.WireTrueFalse, 5)...)

	out := Rebalance(pool, 3, 3, 0)
	var mcqTexts []string
	for _, it := range out {
		if it.Type == models.WireMultipleChoice {
			mcqTexts = append(mcqTexts, it.QuestionText)
		}
	}
	assert.Equal(t, []string{
		"multiple-choice question 1",
		"multiple-choice question 2",
		"multiple-choice question 3",
	}, mcqTexts)
}

func TestRebalanceFillsShortfallFromLeftovers(t *testing.T) {
	// Generator over-produced short-answer and under-produced the rest.
	pool := append(genItems(models.WireMultipleChoice, 2), genItems(models.WireShortAnswer, 8)...)

	out := Rebalance(pool, 5, 3, 2)
	require.Len(t, out, 10)

	counts := typeCounts(out)
	assert.Equal(t, 2, counts[models.WireMultipleChoice])
	assert.Equal(t, 8, counts[models.WireShortAnswer])
}

func TestRebalanceShortPoolYieldsShortOutput(t *testing.T) {
	pool := genItems(models.WireTrueFalse, 3)

	out := Rebalance(pool, 5, 3, 2)
	assert.Len(t, out, 3)
}

func TestRebalanceEmptyRequest(t *testing.T) {
	pool := genItems(models.WireMultipleChoice, 5)
	assert.Empty(t, Rebalance(pool, 0, 0, 0))
	assert.Empty(t, Rebalance(nil, 3, 2, 1))
}

func TestRebalanceRenumbersAndForcesPoints(t *testing.T) {
	pool := append(genItems(models.WireShortAnswer, 4), genItems(models.WireMultipleChoice, 4)...)

	out := Rebalance(pool, 3, 0, 2)
	require.Len(t, out, 5)
	for i, it := range out {
		assert.Equal(t, i+1, it.Order)
		assert.Equal(t, 1.0, it.Points)
	}
}
