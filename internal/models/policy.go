package models

// DropType identifies which end of the score distribution a drop policy removes.
type DropType string

const (
	DropNone    DropType = "none"
	DropLowest  DropType = "drop_lowest"
	DropHighest DropType = "drop_highest"
)

// UncategorizedName is the fallback bucket for grade rows whose category label
// cannot be resolved against the policy. It carries no weight and never
// contributes to the overall grade.
const UncategorizedName = "Uncategorized"

// DropPolicy removes a fixed number of lowest or highest scoring items from a
// category before aggregation. A policy never removes every item: at least one
// item is always retained.
type DropPolicy struct {
	Type  DropType `json:"type" validate:"omitempty,drop_type"`
	Count int      `json:"count" validate:"min=0"`
}

// Category is one weighted bucket of a grading policy.
//
// NumItems is the syllabus-declared total number of assignments in the
// category; it is only used to project work that has not appeared in any
// grade export yet.
type Category struct {
	Name       string     `json:"name" validate:"required"`
	Weight     float64    `json:"weight" validate:"min=0,max=100"`
	NumItems   *int       `json:"num_items"`
	DropPolicy DropPolicy `json:"drop_policy"`
}

// GradingPolicy is the immutable course-level grading contract. Categories are
// ordered; their declaration order is the display and report order.
type GradingPolicy struct {
	CourseName string             `json:"course_name"`
	Categories []Category         `json:"categories" validate:"required,min=1,dive"`
	GradeScale map[string]float64 `json:"grade_scale"`
}

// DefaultGradeScale is the scale assumed when a syllabus does not state one.
func DefaultGradeScale() map[string]float64 {
	return map[string]float64{"A": 93, "B": 83, "C": 73, "D": 63, "F": 0}
}

// Scale returns the policy's grade scale, falling back to the default scale
// when the policy does not declare one.
func (p *GradingPolicy) Scale() map[string]float64 {
	if len(p.GradeScale) == 0 {
		return DefaultGradeScale()
	}
	return p.GradeScale
}

// TotalWeight sums the declared category weights. Policies whose weights do
// not sum to 100 are still computable; the calculator re-normalizes.
func (p *GradingPolicy) TotalWeight() float64 {
	var total float64
	for _, c := range p.Categories {
		total += c.Weight
	}
	return total
}

// CategoryNames returns category names in declaration order.
func (p *GradingPolicy) CategoryNames() []string {
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return names
}
