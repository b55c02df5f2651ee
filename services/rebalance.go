package services

import "github.com/studyez/studyez_backend/models"

// Rebalance reshapes AI-generated items to match the requested per-type
// counts. Items are partitioned by type preserving their relative order, up to
// the wanted count is taken from each partition (multiple-choice first, then
// true-false, then short-answer), and any shortfall is filled from the not yet
// selected items in original order regardless of type. The result is truncated
// to the requested total, renumbered 1..N and forced to one point per item.
//
// This is a best-effort repair of unreliable generator output: when the pool
// holds fewer usable items than requested the result is legitimately short,
// and the caller owns any rejection policy.
func Rebalance(items []GeneratedExamItem, wantMCQ, wantTF, wantSA int) []GeneratedExamItem {
	need := wantMCQ + wantTF + wantSA
	selected := make([]bool, len(items))

	take := func(wire string, want int) []int {
		picked := make([]int, 0, want)
		for i, it := range items {
			if len(picked) == want {
				break
			}
			if it.Type == wire {
				picked = append(picked, i)
				selected[i] = true
			}
		}
		return picked
	}

	order := take(models.WireMultipleChoice, wantMCQ)
	order = append(order, take(models.WireTrueFalse, wantTF)...)
	order = append(order, take(models.WireShortAnswer, wantSA)...)

	// Fill any shortfall from the leftovers, original order, any type.
	for i := range items {
		if len(order) >= need {
			break
		}
		if !selected[i] {
			order = append(order, i)
			selected[i] = true
		}
	}

	if len(order) > need {
		order = order[:need]
	}

	out := make([]GeneratedExamItem, len(order))
	for pos, i := range order {
		it := items[i]
		it.Order = pos + 1
		it.Points = 1
		out[pos] = it
	}
	return out
}
