package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecast/grade-service/internal/models"
)

func solverPolicy() *models.GradingPolicy {
	return &models.GradingPolicy{
		CourseName: "Solver Course",
		Categories: []models.Category{
			{Name: "Homework", Weight: 70},
			{Name: "Exams", Weight: 30, NumItems: iptr(1)},
		},
	}
}

func solverGrades() models.GradesByCategory {
	return models.GradesByCategory{
		"Homework": {gradedItem("hw1", 75, 100)},
	}
}

func TestNeededScores_FindsMinimalUniformScore(t *testing.T) {
	result, err := NeededScores(solverPolicy(), solverGrades(), "C", nil)
	require.NoError(t, err)

	assert.True(t, result.IsAchievable)
	assert.Equal(t, 73.0, result.TargetPercentage)

	// Overall = 0.7*75 + 0.3*x, so x just above 68.3 reaches a rounded 73.
	require.NotNil(t, result.RequiredAverage)
	assert.InDelta(t, 68.32, *result.RequiredAverage, 0.01)

	require.NotNil(t, result.BestPossible)
	assert.InDelta(t, 82.5, *result.BestPossible, 0.001)

	need, ok := result.PerCategoryNeeded["Exams"]
	require.True(t, ok)
	assert.Equal(t, 1, need.RemainingCount)
	assert.InDelta(t, *result.RequiredAverage, need.RequiredScoreEach, 0.001)

	_, hasHomework := result.PerCategoryNeeded["Homework"]
	assert.False(t, hasHomework)
}

func TestNeededScores_RequiredScoreActuallyReachesTarget(t *testing.T) {
	policy := solverPolicy()
	grades := solverGrades()

	result, err := NeededScores(policy, grades, "C", nil)
	require.NoError(t, err)
	require.NotNil(t, result.RequiredAverage)

	projected, err := WhatIf(policy, grades, map[string]models.HypotheticalScore{
		"Exams (remaining 1)": {ScoreEarned: *result.RequiredAverage, Category: "Exams"},
	})
	require.NoError(t, err)
	require.NotNil(t, projected.OverallPercentage)
	assert.GreaterOrEqual(t, *projected.OverallPercentage, result.TargetPercentage)
}

func TestNeededScores_UnachievableTarget(t *testing.T) {
	result, err := NeededScores(solverPolicy(), solverGrades(), "B", nil)
	require.NoError(t, err)

	assert.False(t, result.IsAchievable)
	assert.Nil(t, result.RequiredAverage)
	require.NotNil(t, result.BestPossible)
	assert.InDelta(t, 82.5, *result.BestPossible, 0.001)
}

func TestNeededScores_UnknownLetter(t *testing.T) {
	_, err := NeededScores(solverPolicy(), solverGrades(), "Z", nil)
	assert.ErrorIs(t, err, ErrUnknownGradeLetter)
}

func TestNeededScores_LowercaseLetterAccepted(t *testing.T) {
	result, err := NeededScores(solverPolicy(), solverGrades(), "c", nil)
	require.NoError(t, err)
	assert.Equal(t, 73.0, result.TargetPercentage)
}

func TestNeededScores_NoRemainingWork(t *testing.T) {
	policy := singleCategoryPolicy("Homework", 100, models.DropPolicy{})

	t.Run("target already met", func(t *testing.T) {
		grades := models.GradesByCategory{"Homework": {gradedItem("hw1", 95, 100)}}

		result, err := NeededScores(policy, grades, "A", nil)
		require.NoError(t, err)

		assert.True(t, result.IsAchievable)
		assert.Nil(t, result.RequiredAverage)
		require.NotNil(t, result.CurrentPercentage)
		assert.InDelta(t, 95.0, *result.CurrentPercentage, 0.001)
	})

	t.Run("target already out of reach", func(t *testing.T) {
		grades := models.GradesByCategory{"Homework": {gradedItem("hw1", 60, 100)}}

		result, err := NeededScores(policy, grades, "A", nil)
		require.NoError(t, err)

		assert.False(t, result.IsAchievable)
		assert.Nil(t, result.RequiredAverage)
	})
}

func TestNeededScores_ExplicitRemainingOverride(t *testing.T) {
	policy := &models.GradingPolicy{
		Categories: []models.Category{
			{Name: "Homework", Weight: 100},
		},
	}
	grades := models.GradesByCategory{
		"Homework": {gradedItem("hw1", 80, 100)},
	}
	remaining := []models.GradeItem{
		{AssignmentName: "hw2", Category: "Homework", MaxScore: fptr(100), Status: models.StatusUngraded},
	}

	result, err := NeededScores(policy, grades, "B", remaining)
	require.NoError(t, err)

	// (80 + x) / 200 * 100 >= 83 needs x just above 86.
	assert.True(t, result.IsAchievable)
	require.NotNil(t, result.RequiredAverage)
	assert.InDelta(t, 86.0, *result.RequiredAverage, 0.02)
	assert.Len(t, result.RemainingAssignments, 1)
}
