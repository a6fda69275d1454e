package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursecast/grade-service/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func gradedItem(name string, score, max float64) models.GradeItem {
	return models.GradeItem{
		AssignmentName: name,
		ScoreEarned:    fptr(score),
		MaxScore:       fptr(max),
		Status:         models.StatusGraded,
	}
}

func TestApplyDropPolicy(t *testing.T) {
	items := []models.GradeItem{
		gradedItem("hw1", 50, 100),
		gradedItem("hw2", 80, 100),
		gradedItem("hw3", 90, 100),
	}

	t.Run("drop lowest removes worst percentage", func(t *testing.T) {
		retained, dropped := ApplyDropPolicy(items, models.DropPolicy{Type: models.DropLowest, Count: 1})

		assert.Equal(t, 1, dropped)
		assert.Len(t, retained, 2)
		for _, item := range retained {
			assert.NotEqual(t, "hw1", item.AssignmentName)
		}
	})

	t.Run("drop highest removes best percentage", func(t *testing.T) {
		retained, dropped := ApplyDropPolicy(items, models.DropPolicy{Type: models.DropHighest, Count: 1})

		assert.Equal(t, 1, dropped)
		assert.Len(t, retained, 2)
		for _, item := range retained {
			assert.NotEqual(t, "hw3", item.AssignmentName)
		}
	})

	t.Run("none type drops nothing", func(t *testing.T) {
		retained, dropped := ApplyDropPolicy(items, models.DropPolicy{Type: models.DropNone, Count: 2})

		assert.Equal(t, 0, dropped)
		assert.Len(t, retained, 3)
	})

	t.Run("count capped at n minus one", func(t *testing.T) {
		retained, dropped := ApplyDropPolicy(items, models.DropPolicy{Type: models.DropLowest, Count: 10})

		assert.Equal(t, 2, dropped)
		assert.Len(t, retained, 1)
		assert.Equal(t, "hw3", retained[0].AssignmentName)
	})

	t.Run("single item survives any drop", func(t *testing.T) {
		single := []models.GradeItem{gradedItem("only", 10, 100)}
		retained, dropped := ApplyDropPolicy(single, models.DropPolicy{Type: models.DropLowest, Count: 3})

		assert.Equal(t, 0, dropped)
		assert.Len(t, retained, 1)
	})

	t.Run("ties drop earliest item first", func(t *testing.T) {
		tied := []models.GradeItem{
			gradedItem("first", 80, 100),
			gradedItem("second", 80, 100),
			gradedItem("third", 90, 100),
		}
		retained, dropped := ApplyDropPolicy(tied, models.DropPolicy{Type: models.DropLowest, Count: 1})

		assert.Equal(t, 1, dropped)
		names := []string{retained[0].AssignmentName, retained[1].AssignmentName}
		assert.Contains(t, names, "second")
		assert.Contains(t, names, "third")
	})

	t.Run("percentage not raw points decides the order", func(t *testing.T) {
		mixed := []models.GradeItem{
			gradedItem("quiz", 9, 10),   // 90%
			gradedItem("exam", 60, 100), // 60%
		}
		retained, _ := ApplyDropPolicy(mixed, models.DropPolicy{Type: models.DropLowest, Count: 1})

		assert.Len(t, retained, 1)
		assert.Equal(t, "quiz", retained[0].AssignmentName)
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		original := []models.GradeItem{
			gradedItem("b", 90, 100),
			gradedItem("a", 50, 100),
		}
		ApplyDropPolicy(original, models.DropPolicy{Type: models.DropLowest, Count: 1})

		assert.Equal(t, "b", original[0].AssignmentName)
		assert.Equal(t, "a", original[1].AssignmentName)
	})
}
