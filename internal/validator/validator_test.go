package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/coursecast/grade-service/internal/errors"
	"github.com/coursecast/grade-service/internal/models"
)

func TestValidator_DropTypeTag(t *testing.T) {
	v := New()

	t.Run("valid drop types pass", func(t *testing.T) {
		for _, dt := range []models.DropType{models.DropNone, models.DropLowest, models.DropHighest} {
			err := v.Validate(&models.DropPolicy{Type: dt, Count: 1})
			assert.NoError(t, err, "drop type %q should be valid", dt)
		}
	})

	t.Run("empty drop type passes via omitempty", func(t *testing.T) {
		assert.NoError(t, v.Validate(&models.DropPolicy{}))
	})

	t.Run("unknown drop type fails", func(t *testing.T) {
		err := v.Validate(&models.DropPolicy{Type: "drop_random", Count: 1})
		require.Error(t, err)

		var ve apperrors.ValidationErrors
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve, 1)
		assert.Equal(t, "type", ve[0].Field)
		assert.Equal(t, "drop_type", ve[0].Rule)
	})

	t.Run("negative count fails", func(t *testing.T) {
		err := v.Validate(&models.DropPolicy{Type: models.DropLowest, Count: -1})
		assert.Error(t, err)
	})
}

func TestValidator_GradeStatusTag(t *testing.T) {
	v := New()
	max := 100.0

	t.Run("valid statuses pass", func(t *testing.T) {
		for _, status := range []models.GradeStatus{
			models.StatusGraded, models.StatusMissing, models.StatusExcused, models.StatusUngraded,
		} {
			item := models.GradeItem{AssignmentName: "hw1", MaxScore: &max, Status: status}
			assert.NoError(t, v.Validate(&item))
		}
	})

	t.Run("unknown status fails with json field name", func(t *testing.T) {
		item := models.GradeItem{AssignmentName: "hw1", MaxScore: &max, Status: "late"}
		err := v.Validate(&item)
		require.Error(t, err)

		var ve apperrors.ValidationErrors
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve, 1)
		assert.Equal(t, "status", ve[0].Field)
	})
}

func TestValidator_PolicyStructure(t *testing.T) {
	v := New()

	t.Run("policy without categories fails", func(t *testing.T) {
		err := v.Validate(&models.GradingPolicy{CourseName: "Empty"})
		require.Error(t, err)

		var ve apperrors.ValidationErrors
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "categories", ve[0].Field)
	})

	t.Run("nested category errors surface", func(t *testing.T) {
		err := v.Validate(&models.GradingPolicy{
			Categories: []models.Category{{Name: "", Weight: 50}},
		})
		require.Error(t, err)

		var ve apperrors.ValidationErrors
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "name", ve[0].Field)
	})

	t.Run("weight above 100 fails", func(t *testing.T) {
		err := v.Validate(&models.GradingPolicy{
			Categories: []models.Category{{Name: "Homework", Weight: 150}},
		})
		assert.Error(t, err)
	})
}
