package engine

import (
	"fmt"

	"github.com/coursecast/grade-service/internal/models"
)

// RemainingAssignments resolves the open work used by projections, in policy
// category order. Existing ungraded and missing items are remaining (missing
// work counts as zero today but can still be made up); when the category
// declares num_items, synthetic slots top it up to num_items minus the graded
// count, standing in for future work no export has seen yet. Uncategorized
// items carry no weight and are never projected.
func RemainingAssignments(policy *models.GradingPolicy, grades models.GradesByCategory) []models.GradeItem {
	var remaining []models.GradeItem

	for _, cat := range policy.Categories {
		existing := grades[cat.Name]

		var open []models.GradeItem
		graded := 0
		for _, item := range existing {
			switch item.Status {
			case models.StatusUngraded, models.StatusMissing:
				projected := item
				projected.Category = cat.Name
				open = append(open, projected)
			case models.StatusGraded:
				graded++
			}
		}

		if cat.NumItems != nil {
			synthetic := *cat.NumItems - graded - len(open)
			for i := 0; i < synthetic; i++ {
				open = append(open, models.GradeItem{
					AssignmentName: fmt.Sprintf("%s (remaining %d)", cat.Name, i+1),
					Category:       cat.Name,
					MaxScore:       defaultMax(),
					Status:         models.StatusUngraded,
				})
			}
		}

		remaining = append(remaining, open...)
	}

	return remaining
}
