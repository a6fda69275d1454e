package engine

import (
	"fmt"

	"github.com/coursecast/grade-service/internal/models"
)

// ValidatePolicy rejects policies the engine cannot compute against: no
// categories, a negative weight, a negative drop count, or a duplicate
// category name. Weights that do not sum to 100 are deliberately not an
// error; the calculator re-normalizes and reports a warning.
func ValidatePolicy(policy *models.GradingPolicy) error {
	if policy == nil || len(policy.Categories) == 0 {
		return fmt.Errorf("%w: policy has no categories", ErrInvalidPolicy)
	}

	seen := make(map[string]struct{}, len(policy.Categories))
	for _, cat := range policy.Categories {
		if cat.Name == "" {
			return fmt.Errorf("%w: category with empty name", ErrInvalidPolicy)
		}
		if _, dup := seen[cat.Name]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidPolicy, cat.Name)
		}
		seen[cat.Name] = struct{}{}

		if cat.Weight < 0 {
			return fmt.Errorf("%w: category %q has negative weight %.2f", ErrInvalidPolicy, cat.Name, cat.Weight)
		}
		if cat.DropPolicy.Count < 0 {
			return fmt.Errorf("%w: category %q has negative drop count %d", ErrInvalidPolicy, cat.Name, cat.DropPolicy.Count)
		}
	}
	return nil
}

// ValidateGrades rejects items that are internally contradictory: a concrete
// earned score over a max of zero or less is not computable. A nil max with a
// nil score is fine; such items simply never count toward a denominator.
func ValidateGrades(grades models.GradesByCategory) error {
	for _, items := range grades {
		for _, item := range items {
			if item.ScoreEarned != nil && item.MaxScore != nil && *item.MaxScore <= 0 {
				return fmt.Errorf("%w: %q has score %.2f over max_score %.2f",
					ErrInvalidGradeItem, item.AssignmentName, *item.ScoreEarned, *item.MaxScore)
			}
		}
	}
	return nil
}
