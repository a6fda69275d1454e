package engine

import (
	"sort"

	"github.com/coursecast/grade-service/internal/models"
)

// ApplyDropPolicy removes the configured number of lowest or highest scoring
// items and returns the retained subsequence plus how many were dropped.
//
// The input is the category's non-excused pool with missing items already
// materialized as 0/max. Sorting is stable and ascending by item percentage,
// so ties retain their original import order and the result is deterministic.
// A drop never removes every item: the effective count is capped at n-1.
func ApplyDropPolicy(items []models.GradeItem, policy models.DropPolicy) ([]models.GradeItem, int) {
	if policy.Type != models.DropLowest && policy.Type != models.DropHighest {
		return items, 0
	}
	if policy.Count <= 0 || len(items) == 0 {
		return items, 0
	}

	count := policy.Count
	if count >= len(items) {
		count = len(items) - 1
	}
	if count <= 0 {
		return items, 0
	}

	sorted := make([]models.GradeItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage() < sorted[j].Percentage()
	})

	if policy.Type == models.DropLowest {
		return sorted[count:], count
	}
	return sorted[:len(sorted)-count], count
}
