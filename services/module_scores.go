package services

import (
	"math"

	"github.com/google/uuid"
	"github.com/studyez/studyez_backend/models"
)

// percentScore returns correct/total as a percentage rounded to two decimal
// places, half to even. A zero total scores zero rather than dividing by it.
func percentScore(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(correct) / float64(total) * 100
	return math.RoundToEven(pct*100) / 100
}

// AggregateModuleScores groups already-graded answers by the owning module of
// each linked question and computes per-module totals. It is pure: the caller
// assigns IDs and the ExamResultID before persisting. Output order follows the
// first appearance of each module in the link sequence; no consumer depends on
// it.
func AggregateModuleScores(links []models.ExamQuestion, answers []models.ExamResultAnswer) []models.ModuleScore {
	correctByQuestion := make(map[uuid.UUID]bool, len(answers))
	for _, a := range answers {
		correctByQuestion[a.QuestionID] = a.IsCorrect
	}

	type tally struct {
		count   int
		correct int
	}
	order := make([]uuid.UUID, 0)
	byModule := make(map[uuid.UUID]*tally)

	for _, link := range links {
		q := link.Question
		if q == nil {
			continue
		}
		t, ok := byModule[q.ModuleID]
		if !ok {
			t = &tally{}
			byModule[q.ModuleID] = t
			order = append(order, q.ModuleID)
		}
		t.count++
		if correctByQuestion[link.QuestionID] {
			t.correct++
		}
	}

	scores := make([]models.ModuleScore, 0, len(order))
	for _, moduleID := range order {
		t := byModule[moduleID]
		scores = append(scores, models.ModuleScore{
			ModuleID:       moduleID,
			Score:          percentScore(t.correct, t.count),
			QuestionsCount: t.count,
			CorrectCount:   t.correct,
		})
	}
	return scores
}
