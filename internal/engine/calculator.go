// Package engine implements the pure grade-computation pipeline: drop
// policies, category aggregation, weighted averaging, letter mapping,
// scenario projection and the needed-score solver. Every entry point takes a
// complete policy+grades snapshot and returns a fresh result; nothing is
// cached or mutated, so concurrent use needs no locking.
package engine

import (
	"fmt"
	"math"

	"github.com/coursecast/grade-service/internal/models"
)

// weightWarningTolerance is how far the summed category weights may stray
// from 100 before a warning is attached to the result.
const weightWarningTolerance = 2.0

// Calculate produces the full grade report for a snapshot. Only categories
// with a computable percentage enter the weighted average; their weights are
// re-normalized so a category with no graded work neither helps nor hurts.
func Calculate(policy *models.GradingPolicy, grades models.GradesByCategory) (*models.CalculationResult, error) {
	if err := ValidatePolicy(policy); err != nil {
		return nil, err
	}
	if err := ValidateGrades(grades); err != nil {
		return nil, err
	}
	return calculate(policy, grades), nil
}

// calculate is the unvalidated pipeline shared by the public entry points,
// which validate the snapshot exactly once.
func calculate(policy *models.GradingPolicy, grades models.GradesByCategory) *models.CalculationResult {
	scale := policy.Scale()

	result := &models.CalculationResult{
		PerCategory: make(map[string]models.CategoryResult, len(policy.Categories)),
		GradeScale:  scale,
	}

	var weightedSum, weightCounted float64
	for _, cat := range policy.Categories {
		catResult := AggregateCategory(grades[cat.Name], cat)
		result.PerCategory[cat.Name] = catResult

		if catResult.Percentage != nil {
			weightedSum += *catResult.Percentage * cat.Weight
			weightCounted += cat.Weight
		}
	}

	result.TotalWeightCounted = round1(weightCounted)
	if weightCounted > 0 {
		overall := round2(weightedSum / weightCounted)
		result.OverallPercentage = &overall
		if buffer := pointsBuffer(weightedSum/weightCounted, scale); buffer != nil {
			rounded := round2(*buffer)
			result.PointsBufferBeforeDrop = &rounded
		}
	}
	result.LetterGrade = LetterFor(result.OverallPercentage, scale)

	if total := policy.TotalWeight(); math.Abs(total-100) > weightWarningTolerance {
		result.WeightWarning = fmt.Sprintf(
			"category weights sum to %.1f%%, not 100%%; computing with re-normalized weights", total)
	}

	return result
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
