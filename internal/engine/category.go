package engine

import "github.com/coursecast/grade-service/internal/models"

// AggregateCategory computes one category's slice of the report: the drop
// policy is applied to the graded-plus-missing pool, then earned and possible
// points are summed over the retained countable items.
//
// Excused items are removed before anything else and count nowhere. Ungraded
// items are excluded from the current aggregation (projections treat them as
// remaining work). Missing items enter the pool as 0 earned over full max, so
// a drop-lowest policy consumes missing zeros first.
func AggregateCategory(items []models.GradeItem, cat models.Category) models.CategoryResult {
	result := models.CategoryResult{Weight: cat.Weight}

	pool := make([]models.GradeItem, 0, len(items))
	for _, item := range items {
		switch item.Status {
		case models.StatusExcused:
			result.ExcusedCount++
		case models.StatusUngraded:
			result.UngradedCount++
		case models.StatusMissing:
			result.MissingCount++
			zero := 0.0
			materialized := item
			materialized.ScoreEarned = &zero
			pool = append(pool, materialized)
		default:
			if item.ScoreEarned != nil {
				result.GradedCount++
				pool = append(pool, item)
			}
		}
	}

	retained, dropped := ApplyDropPolicy(pool, cat.DropPolicy)
	result.DroppedCount = dropped

	for _, item := range retained {
		if item.ScoreEarned == nil || item.MaxScore == nil || *item.MaxScore <= 0 {
			continue
		}
		result.Earned += *item.ScoreEarned
		result.Possible += *item.MaxScore
	}

	if result.Possible > 0 {
		pct := result.Earned / result.Possible * 100
		result.Percentage = &pct
		contribution := pct * cat.Weight / 100
		result.WeightedContribution = &contribution
	}

	return result
}
