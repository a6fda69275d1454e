package engine

import (
	"sort"

	"github.com/coursecast/grade-service/internal/models"
)

// WhatIf merges hypothetical scores into a copy of the grade snapshot and
// recalculates. A hypothetical whose assignment name matches an existing item
// in its category overrides that item (and forces it to graded); otherwise a
// new graded item is appended. The input snapshot is never mutated.
func WhatIf(policy *models.GradingPolicy, grades models.GradesByCategory, hypothetical map[string]models.HypotheticalScore) (*models.CalculationResult, error) {
	if err := ValidatePolicy(policy); err != nil {
		return nil, err
	}
	if err := ValidateGrades(grades); err != nil {
		return nil, err
	}
	return calculate(policy, mergeHypothetical(grades, hypothetical)), nil
}

// mergeHypothetical applies hypotheticals in sorted key order so appends land
// in a deterministic sequence regardless of map iteration.
func mergeHypothetical(grades models.GradesByCategory, hypothetical map[string]models.HypotheticalScore) models.GradesByCategory {
	merged := grades.Clone()
	if merged == nil {
		merged = models.GradesByCategory{}
	}

	names := make([]string, 0, len(hypothetical))
	for name := range hypothetical {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		hyp := hypothetical[name]
		if hyp.Category == "" {
			continue
		}

		score := hyp.ScoreEarned
		items := merged[hyp.Category]
		found := false
		for i := range items {
			if items[i].AssignmentName != name {
				continue
			}
			items[i].ScoreEarned = &score
			if hyp.MaxScore != nil {
				items[i].MaxScore = hyp.MaxScore
			} else if items[i].MaxScore == nil {
				items[i].MaxScore = defaultMax()
			}
			items[i].Status = models.StatusGraded
			found = true
			break
		}
		if !found {
			max := hyp.MaxScore
			if max == nil {
				max = defaultMax()
			}
			items = append(items, models.GradeItem{
				AssignmentName: name,
				Category:       hyp.Category,
				ScoreEarned:    &score,
				MaxScore:       max,
				Status:         models.StatusGraded,
			})
		}
		merged[hyp.Category] = items
	}

	return merged
}

func defaultMax() *float64 {
	max := 100.0
	return &max
}
