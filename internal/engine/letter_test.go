package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursecast/grade-service/internal/models"
)

func TestLetterFor(t *testing.T) {
	scale := models.DefaultGradeScale()

	tests := []struct {
		name       string
		percentage *float64
		want       string
	}{
		{"exactly at threshold", fptr(93), "A"},
		{"just below threshold", fptr(92.99), "B"},
		{"mid range", fptr(85), "B"},
		{"bottom letter", fptr(50), "F"},
		{"zero", fptr(0), "F"},
		{"above everything", fptr(104), "A"},
		{"nil percentage", nil, models.NoLetterGrade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LetterFor(tt.percentage, scale))
		})
	}

	t.Run("empty scale has no letter", func(t *testing.T) {
		assert.Equal(t, models.NoLetterGrade, LetterFor(fptr(95), map[string]float64{}))
	})

	t.Run("below every threshold falls to lowest letter", func(t *testing.T) {
		partial := map[string]float64{"Pass": 70, "Fail": 40}
		assert.Equal(t, "Fail", LetterFor(fptr(10), partial))
	})
}

func TestPointsBuffer(t *testing.T) {
	scale := models.DefaultGradeScale()

	t.Run("distance to next lower threshold", func(t *testing.T) {
		buffer := pointsBuffer(85, scale)
		assert.NotNil(t, buffer)
		assert.InDelta(t, 2.0, *buffer, 1e-9)
	})

	t.Run("exactly at threshold measures to the one below", func(t *testing.T) {
		buffer := pointsBuffer(83, scale)
		assert.NotNil(t, buffer)
		assert.InDelta(t, 10.0, *buffer, 1e-9)
	})

	t.Run("at the bottom of the scale there is no buffer", func(t *testing.T) {
		assert.Nil(t, pointsBuffer(0, scale))
	})
}
