package engine

import "github.com/coursecast/grade-service/internal/models"

// defaultPaceScore is the assumed performance for current-pace projections
// when nothing has been graded anywhere yet.
const defaultPaceScore = 75.0

// Scenarios projects the grade under three completions of the remaining
// work: everything at 100%, everything at 0%, and everything at the student's
// current pace. Pace is per category (a student cruising in homework but
// struggling on exams is projected accordingly), falling back to the current
// overall for categories with no graded work, then to defaultPaceScore.
//
// Pass nil remaining to derive it from the policy's num_items declarations
// and the snapshot's ungraded/missing items.
func Scenarios(policy *models.GradingPolicy, grades models.GradesByCategory, remaining []models.GradeItem) (*models.ScenarioSet, error) {
	if err := ValidatePolicy(policy); err != nil {
		return nil, err
	}
	if err := ValidateGrades(grades); err != nil {
		return nil, err
	}

	if remaining == nil {
		remaining = RemainingAssignments(policy, grades)
	}
	current := calculate(policy, grades)

	paceFor := func(item models.GradeItem) float64 {
		if catResult, ok := current.PerCategory[item.Category]; ok && catResult.Percentage != nil {
			return *catResult.Percentage
		}
		if current.OverallPercentage != nil {
			return *current.OverallPercentage
		}
		return defaultPaceScore
	}

	best := simulateRemaining(policy, grades, remaining, func(models.GradeItem) float64 { return 100 })
	worst := simulateRemaining(policy, grades, remaining, func(models.GradeItem) float64 { return 0 })
	pace := simulateRemaining(policy, grades, remaining, paceFor)

	paceScore := defaultPaceScore
	if current.OverallPercentage != nil {
		paceScore = round1(*current.OverallPercentage)
	}

	return &models.ScenarioSet{
		BestCase: models.Scenario{
			Letter:           best.LetterGrade,
			Percentage:       best.OverallPercentage,
			ScoreOnRemaining: 100,
		},
		WorstCase: models.Scenario{
			Letter:           worst.LetterGrade,
			Percentage:       worst.OverallPercentage,
			ScoreOnRemaining: 0,
		},
		CurrentPace: models.Scenario{
			Letter:           pace.LetterGrade,
			Percentage:       pace.OverallPercentage,
			ScoreOnRemaining: paceScore,
		},
		RemainingCount: len(remaining),
	}, nil
}

// simulateRemaining scores every remaining item at the given rate (0-100)
// and reruns the pipeline on the union of actual and hypothetical items.
func simulateRemaining(policy *models.GradingPolicy, grades models.GradesByCategory, remaining []models.GradeItem, rate func(models.GradeItem) float64) *models.CalculationResult {
	hypothetical := make(map[string]models.HypotheticalScore, len(remaining))
	for _, item := range remaining {
		max := 100.0
		if item.MaxScore != nil {
			max = *item.MaxScore
		}
		hypothetical[item.AssignmentName] = models.HypotheticalScore{
			ScoreEarned: rate(item) / 100 * max,
			MaxScore:    item.MaxScore,
			Category:    item.Category,
		}
	}
	return calculate(policy, mergeHypothetical(grades, hypothetical))
}
