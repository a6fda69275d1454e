package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecast/grade-service/internal/models"
)

func TestScenarios_SynthesizesRemainingFromNumItems(t *testing.T) {
	policy := &models.GradingPolicy{
		Categories: []models.Category{
			{Name: "Homework", Weight: 70},
			{Name: "Exams", Weight: 30, NumItems: iptr(1)},
		},
	}
	grades := models.GradesByCategory{
		"Homework": {gradedItem("hw1", 75, 100)},
	}

	set, err := Scenarios(policy, grades, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, set.RemainingCount)

	require.NotNil(t, set.BestCase.Percentage)
	assert.InDelta(t, 82.5, *set.BestCase.Percentage, 0.001)
	assert.Equal(t, "C", set.BestCase.Letter)
	assert.Equal(t, 100.0, set.BestCase.ScoreOnRemaining)

	require.NotNil(t, set.WorstCase.Percentage)
	assert.InDelta(t, 52.5, *set.WorstCase.Percentage, 0.001)
	assert.Equal(t, "F", set.WorstCase.Letter)
	assert.Equal(t, 0.0, set.WorstCase.ScoreOnRemaining)

	// No exams graded yet, so pace falls back to the current overall.
	require.NotNil(t, set.CurrentPace.Percentage)
	assert.InDelta(t, 75.0, *set.CurrentPace.Percentage, 0.001)
	assert.Equal(t, 75.0, set.CurrentPace.ScoreOnRemaining)
}

func TestScenarios_PaceIsPerCategory(t *testing.T) {
	policy := &models.GradingPolicy{
		Categories: []models.Category{
			{Name: "Homework", Weight: 50},
			{Name: "Exams", Weight: 50},
		},
	}
	grades := models.GradesByCategory{
		"Homework": {gradedItem("hw1", 90, 100)},
		"Exams": {
			gradedItem("mid", 60, 100),
			{AssignmentName: "final", MaxScore: fptr(100), Status: models.StatusUngraded},
		},
	}

	set, err := Scenarios(policy, grades, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, set.RemainingCount)

	// The remaining final is projected at the exam pace of 60%, not the
	// overall 75%.
	require.NotNil(t, set.CurrentPace.Percentage)
	assert.InDelta(t, 75.0, *set.CurrentPace.Percentage, 0.001)

	require.NotNil(t, set.BestCase.Percentage)
	assert.InDelta(t, 85.0, *set.BestCase.Percentage, 0.001)

	require.NotNil(t, set.WorstCase.Percentage)
	assert.InDelta(t, 60.0, *set.WorstCase.Percentage, 0.001)
}

func TestScenarios_NoRemainingWork(t *testing.T) {
	policy := singleCategoryPolicy("Homework", 100, models.DropPolicy{})
	grades := models.GradesByCategory{
		"Homework": {gradedItem("hw1", 92, 100)},
	}

	set, err := Scenarios(policy, grades, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, set.RemainingCount)
	require.NotNil(t, set.BestCase.Percentage)
	require.NotNil(t, set.WorstCase.Percentage)
	assert.InDelta(t, *set.BestCase.Percentage, *set.WorstCase.Percentage, 0.001)
	assert.InDelta(t, 92.0, *set.CurrentPace.Percentage, 0.001)
}

func TestScenarios_NothingGradedUsesDefaultPace(t *testing.T) {
	policy := &models.GradingPolicy{
		Categories: []models.Category{
			{Name: "Homework", Weight: 100, NumItems: iptr(2)},
		},
	}

	set, err := Scenarios(policy, models.GradesByCategory{}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, set.RemainingCount)
	assert.Equal(t, defaultPaceScore, set.CurrentPace.ScoreOnRemaining)
	require.NotNil(t, set.CurrentPace.Percentage)
	assert.InDelta(t, defaultPaceScore, *set.CurrentPace.Percentage, 0.001)
}

func TestRemainingAssignments(t *testing.T) {
	policy := &models.GradingPolicy{
		Categories: []models.Category{
			{Name: "Homework", Weight: 50, NumItems: iptr(4)},
			{Name: "Exams", Weight: 50},
		},
	}
	grades := models.GradesByCategory{
		"Homework": {
			gradedItem("hw1", 90, 100),
			{AssignmentName: "hw2", MaxScore: fptr(100), Status: models.StatusUngraded},
		},
		"Exams": {
			{AssignmentName: "mid", MaxScore: fptr(100), Status: models.StatusMissing},
		},
	}

	remaining := RemainingAssignments(policy, grades)
	require.Len(t, remaining, 4)

	// Existing open items first, then synthetic top-up to num_items.
	assert.Equal(t, "hw2", remaining[0].AssignmentName)
	assert.Equal(t, "Homework (remaining 1)", remaining[1].AssignmentName)
	assert.Equal(t, "Homework (remaining 2)", remaining[2].AssignmentName)
	assert.Equal(t, "mid", remaining[3].AssignmentName)

	for _, item := range remaining[:3] {
		assert.Equal(t, "Homework", item.Category)
	}
	assert.Equal(t, "Exams", remaining[3].Category)
}

func TestRemainingAssignments_NumItemsAlreadySatisfied(t *testing.T) {
	policy := &models.GradingPolicy{
		Categories: []models.Category{
			{Name: "Homework", Weight: 100, NumItems: iptr(2)},
		},
	}
	grades := models.GradesByCategory{
		"Homework": {
			gradedItem("hw1", 90, 100),
			gradedItem("hw2", 85, 100),
			gradedItem("hw3", 70, 100),
		},
	}

	// More items graded than declared: nothing is synthesized.
	remaining := RemainingAssignments(policy, grades)
	assert.Empty(t, remaining)
}
