package engine

import (
	"fmt"
	"strings"

	"github.com/coursecast/grade-service/internal/models"
)

// solverIterations bounds the binary search. 50 halvings of [0,100] resolve
// far past the reported 0.01 precision.
const solverIterations = 50

// NeededScores finds the minimal uniform score on all remaining work that
// reaches the target letter. The search is well-founded: the overall
// percentage is monotone in the uniform score because weights and max scores
// are non-negative.
//
// No remaining work means there is nothing to solve for; the answer is then
// just whether the current grade already meets the target. A best case below
// the target is reported as unachievable rather than an error.
func NeededScores(policy *models.GradingPolicy, grades models.GradesByCategory, targetLetter string, remaining []models.GradeItem) (*models.NeededScoresResult, error) {
	if err := ValidatePolicy(policy); err != nil {
		return nil, err
	}
	if err := ValidateGrades(grades); err != nil {
		return nil, err
	}

	scale := policy.Scale()
	target, ok := scale[targetLetter]
	if !ok {
		target, ok = scale[strings.ToUpper(targetLetter)]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q is not in the grade scale", ErrUnknownGradeLetter, targetLetter)
	}

	result := &models.NeededScoresResult{
		TargetPercentage:     target,
		PerCategoryNeeded:    map[string]models.CategoryNeed{},
		RemainingAssignments: []models.GradeItem{},
	}

	if remaining == nil {
		remaining = RemainingAssignments(policy, grades)
	}
	if len(remaining) == 0 {
		current := calculate(policy, grades)
		result.CurrentPercentage = current.OverallPercentage
		var pct float64
		if current.OverallPercentage != nil {
			pct = *current.OverallPercentage
		}
		result.IsAchievable = pct >= target
		return result, nil
	}
	result.RemainingAssignments = remaining

	simulate := func(score float64) float64 {
		projected := simulateRemaining(policy, grades, remaining, func(models.GradeItem) float64 { return score })
		if projected.OverallPercentage == nil {
			return 0
		}
		return *projected.OverallPercentage
	}

	best := simulate(100)
	bestRounded := round2(best)
	result.BestPossible = &bestRounded

	if best < target {
		return result, nil
	}

	lo, hi := 0.0, 100.0
	for i := 0; i < solverIterations; i++ {
		mid := (lo + hi) / 2
		if simulate(mid) >= target {
			hi = mid
		} else {
			lo = mid
		}
	}

	required := round2(hi)
	result.RequiredAverage = &required
	result.IsAchievable = true

	for _, cat := range policy.Categories {
		count := 0
		for _, item := range remaining {
			if item.Category == cat.Name {
				count++
			}
		}
		if count > 0 {
			result.PerCategoryNeeded[cat.Name] = models.CategoryNeed{
				RemainingCount:    count,
				RequiredScoreEach: required,
			}
		}
	}

	return result, nil
}
