package models

// GradeStatus describes where a single piece of work stands.
type GradeStatus string

const (
	// StatusGraded means a numeric score is present.
	StatusGraded GradeStatus = "graded"
	// StatusMissing means the work was never submitted; it counts as zero
	// earned over full max toward the current grade.
	StatusMissing GradeStatus = "missing"
	// StatusExcused work is removed entirely: it counts toward neither the
	// numerator nor the denominator.
	StatusExcused GradeStatus = "excused"
	// StatusUngraded work is submitted but not yet scored; it is excluded
	// from the current grade and treated as remaining work by projections.
	StatusUngraded GradeStatus = "ungraded"
)

// GradeItem is one row of an imported grade export. ScoreEarned and MaxScore
// are pointers because exports routinely omit them for missing, excused and
// ungraded work.
type GradeItem struct {
	AssignmentName string      `json:"assignment_name" validate:"required"`
	Category       string      `json:"category"`
	ScoreEarned    *float64    `json:"score_earned"`
	MaxScore       *float64    `json:"max_score"`
	Status         GradeStatus `json:"status" validate:"omitempty,grade_status"`
}

// Percentage returns the item's score as a 0-100 percentage, or 0 when the
// max score is absent or non-positive. Used for drop-policy ordering.
func (g GradeItem) Percentage() float64 {
	if g.ScoreEarned == nil || g.MaxScore == nil || *g.MaxScore <= 0 {
		return 0
	}
	return *g.ScoreEarned / *g.MaxScore * 100
}

// GradesByCategory groups grade items under canonical policy category names
// (plus the Uncategorized bucket).
type GradesByCategory map[string][]GradeItem

// Clone returns a deep copy so hypothetical merges never mutate the caller's
// snapshot.
func (g GradesByCategory) Clone() GradesByCategory {
	out := make(GradesByCategory, len(g))
	for name, items := range g {
		copied := make([]GradeItem, len(items))
		copy(copied, items)
		out[name] = copied
	}
	return out
}

// HypotheticalScore is a caller-supplied what-if substitution, keyed by
// assignment name in the request. MaxScore defaults to the existing item's
// max, or 100 for new items.
type HypotheticalScore struct {
	ScoreEarned float64  `json:"score_earned" validate:"min=0"`
	MaxScore    *float64 `json:"max_score"`
	Category    string   `json:"category" validate:"required"`
}
