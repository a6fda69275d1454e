package models

// NoLetterGrade is reported when no percentage is computable (for example,
// nothing has been graded yet).
const NoLetterGrade = "—"

// CategoryResult is the per-category slice of a grade report. Percentage is
// nil when the category has no countable items; such a category contributes
// nothing to the weighted average.
type CategoryResult struct {
	Earned               float64  `json:"earned"`
	Possible             float64  `json:"possible"`
	Percentage           *float64 `json:"percentage"`
	Weight               float64  `json:"weight"`
	WeightedContribution *float64 `json:"weighted_contribution"`
	GradedCount          int      `json:"graded_count"`
	DroppedCount         int      `json:"dropped_count"`
	MissingCount         int      `json:"missing_count"`
	UngradedCount        int      `json:"ungraded_count"`
	ExcusedCount         int      `json:"excused_count"`
}

// CalculationResult is a complete grade report for one policy+grades snapshot.
type CalculationResult struct {
	OverallPercentage *float64 `json:"overall_percentage"`
	LetterGrade       string   `json:"letter_grade"`

	PerCategory map[string]CategoryResult `json:"per_category"`

	// PointsBufferBeforeDrop is how many percentage points the overall grade
	// can fall before the letter drops; nil at the bottom of the scale.
	PointsBufferBeforeDrop *float64 `json:"points_buffer_before_drop"`

	// TotalWeightCounted is the summed weight of categories that actually
	// contributed (had at least one countable item).
	TotalWeightCounted float64 `json:"total_weight_counted"`

	GradeScale map[string]float64 `json:"grade_scale"`

	// WeightWarning is set when the declared weights do not sum to roughly
	// 100. Computation proceeds via re-normalization regardless.
	WeightWarning string `json:"weight_warning,omitempty"`

	Scenarios *ScenarioSet `json:"scenarios,omitempty"`
}

// Scenario is one hypothetical completion of remaining work at a fixed
// assumed performance level.
type Scenario struct {
	Letter           string   `json:"letter"`
	Percentage       *float64 `json:"percentage"`
	ScoreOnRemaining float64  `json:"score_on_remaining"`
}

// ScenarioSet bundles the three standard projections. RemainingCount is the
// total number of remaining (ungraded, missing or not-yet-seen) items across
// all categories.
type ScenarioSet struct {
	BestCase       Scenario `json:"best_case"`
	WorstCase      Scenario `json:"worst_case"`
	CurrentPace    Scenario `json:"current_pace"`
	RemainingCount int      `json:"remaining_count"`
}

// CategoryNeed reports the remaining-item count and required uniform score
// for one category in a needed-scores answer.
type CategoryNeed struct {
	RemainingCount    int     `json:"remaining_count"`
	RequiredScoreEach float64 `json:"required_score_each"`
}

// NeededScoresResult answers "what do I need on the rest of my work to earn
// the target letter". RequiredAverage is nil when the target is already
// satisfied or unreachable; IsAchievable disambiguates.
type NeededScoresResult struct {
	TargetPercentage     float64                 `json:"target_percentage"`
	RequiredAverage      *float64                `json:"required_average"`
	IsAchievable         bool                    `json:"is_achievable"`
	BestPossible         *float64                `json:"best_possible,omitempty"`
	CurrentPercentage    *float64                `json:"current_percentage,omitempty"`
	PerCategoryNeeded    map[string]CategoryNeed `json:"per_category_needed"`
	RemainingAssignments []GradeItem             `json:"remaining_assignments"`
}
