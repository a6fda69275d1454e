package engine

import (
	"sort"

	"github.com/coursecast/grade-service/internal/models"
)

type scaleThreshold struct {
	letter string
	minPct float64
}

// sortedThresholds flattens a grade scale into a descending threshold list.
// Equal thresholds tie-break on the letter so map iteration order can never
// leak into results.
func sortedThresholds(scale map[string]float64) []scaleThreshold {
	thresholds := make([]scaleThreshold, 0, len(scale))
	for letter, minPct := range scale {
		thresholds = append(thresholds, scaleThreshold{letter: letter, minPct: minPct})
	}
	sort.Slice(thresholds, func(i, j int) bool {
		if thresholds[i].minPct != thresholds[j].minPct {
			return thresholds[i].minPct > thresholds[j].minPct
		}
		return thresholds[i].letter < thresholds[j].letter
	})
	return thresholds
}

// LetterFor maps a percentage to the highest letter whose minimum threshold
// it meets. The threshold is an inclusive minimum: exactly 83.0 on a B:83
// scale is a B. A nil percentage has no grade; a percentage below every
// threshold gets the lowest letter on the scale.
func LetterFor(percentage *float64, scale map[string]float64) string {
	if percentage == nil {
		return models.NoLetterGrade
	}
	thresholds := sortedThresholds(scale)
	if len(thresholds) == 0 {
		return models.NoLetterGrade
	}
	for _, t := range thresholds {
		if *percentage >= t.minPct {
			return t.letter
		}
	}
	return thresholds[len(thresholds)-1].letter
}

// pointsBuffer is the distance from the overall percentage down to the
// highest threshold strictly below it, i.e. how far the grade can slip before
// the letter changes. Nil when already at or below the bottom of the scale.
func pointsBuffer(percentage float64, scale map[string]float64) *float64 {
	for _, t := range sortedThresholds(scale) {
		if t.minPct < percentage {
			buffer := percentage - t.minPct
			return &buffer
		}
	}
	return nil
}
