package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecast/grade-service/internal/models"
)

func TestWhatIf_OverridesExistingItem(t *testing.T) {
	policy := singleCategoryPolicy("Homework", 100, models.DropPolicy{})
	grades := models.GradesByCategory{
		"Homework": {
			gradedItem("hw1", 50, 100),
			gradedItem("hw2", 90, 100),
		},
	}

	result, err := WhatIf(policy, grades, map[string]models.HypotheticalScore{
		"hw1": {ScoreEarned: 100, Category: "Homework"},
	})
	require.NoError(t, err)

	require.NotNil(t, result.OverallPercentage)
	assert.InDelta(t, 95.0, *result.OverallPercentage, 0.001)

	// The snapshot itself stays untouched.
	assert.InDelta(t, 50.0, *grades["Homework"][0].ScoreEarned, 0.001)
}

func TestWhatIf_AppendsNewItemWithDefaultMax(t *testing.T) {
	policy := singleCategoryPolicy("Homework", 100, models.DropPolicy{})
	grades := models.GradesByCategory{
		"Homework": {gradedItem("hw1", 80, 100)},
	}

	result, err := WhatIf(policy, grades, map[string]models.HypotheticalScore{
		"hw2": {ScoreEarned: 100, Category: "Homework"},
	})
	require.NoError(t, err)

	cat := result.PerCategory["Homework"]
	assert.Equal(t, 180.0, cat.Earned)
	assert.Equal(t, 200.0, cat.Possible)
	assert.Len(t, grades["Homework"], 1)
}

func TestWhatIf_ExplicitMaxScore(t *testing.T) {
	policy := singleCategoryPolicy("Exams", 100, models.DropPolicy{})
	grades := models.GradesByCategory{}

	result, err := WhatIf(policy, grades, map[string]models.HypotheticalScore{
		"final": {ScoreEarned: 45, MaxScore: fptr(50), Category: "Exams"},
	})
	require.NoError(t, err)

	require.NotNil(t, result.OverallPercentage)
	assert.InDelta(t, 90.0, *result.OverallPercentage, 0.001)
}

func TestWhatIf_UpgradesMissingToGraded(t *testing.T) {
	policy := singleCategoryPolicy("Homework", 100, models.DropPolicy{})
	grades := models.GradesByCategory{
		"Homework": {
			gradedItem("hw1", 90, 100),
			{AssignmentName: "hw2", MaxScore: fptr(100), Status: models.StatusMissing},
		},
	}

	result, err := WhatIf(policy, grades, map[string]models.HypotheticalScore{
		"hw2": {ScoreEarned: 70, Category: "Homework"},
	})
	require.NoError(t, err)

	cat := result.PerCategory["Homework"]
	assert.Equal(t, 0, cat.MissingCount)
	assert.Equal(t, 160.0, cat.Earned)
	assert.Equal(t, 200.0, cat.Possible)
}

func TestWhatIf_UnknownCategoryIgnored(t *testing.T) {
	policy := singleCategoryPolicy("Homework", 100, models.DropPolicy{})
	grades := models.GradesByCategory{
		"Homework": {gradedItem("hw1", 80, 100)},
	}

	result, err := WhatIf(policy, grades, map[string]models.HypotheticalScore{
		"surprise": {ScoreEarned: 100, Category: "Extra Credit"},
	})
	require.NoError(t, err)

	// Categories outside the policy never reach the weighted average.
	require.NotNil(t, result.OverallPercentage)
	assert.InDelta(t, 80.0, *result.OverallPercentage, 0.001)
}
