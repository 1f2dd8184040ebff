package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsarecall/dsarecall/internal/problem"
)

func TestNextReviewDate(t *testing.T) {
	today := problem.NewDate(2026, 8, 29)

	tests := []struct {
		name        string
		streakLevel int
		outcome     problem.Outcome
		expected    problem.Date
	}{
		{
			name:        "easy at level 1 schedules 2 days out",
			streakLevel: 1,
			outcome:     problem.OutcomeEasy,
			expected:    today.AddDays(2),
		},
		{
			name:        "easy at level 2 schedules 4 days out",
			streakLevel: 2,
			outcome:     problem.OutcomeEasy,
			expected:    today.AddDays(4),
		},
		{
			name:        "easy at level 3 schedules 8 days out",
			streakLevel: 3,
			outcome:     problem.OutcomeEasy,
			expected:    today.AddDays(8),
		},
		{
			name:        "easy at level 10 schedules 1024 days out",
			streakLevel: 10,
			outcome:     problem.OutcomeEasy,
			expected:    today.AddDays(1024),
		},
		{
			name:        "hard always schedules tomorrow",
			streakLevel: 1,
			outcome:     problem.OutcomeHard,
			expected:    today.AddDays(1),
		},
		{
			name:        "hard ignores a high streak level",
			streakLevel: 9,
			outcome:     problem.OutcomeHard,
			expected:    today.AddDays(1),
		},
		{
			name:        "auto-hard behaves like hard",
			streakLevel: 5,
			outcome:     problem.OutcomeAutoHard,
			expected:    today.AddDays(1),
		},
		{
			name:        "easy below the level floor uses the floor",
			streakLevel: 0,
			outcome:     problem.OutcomeEasy,
			expected:    today.AddDays(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReviewDate(tt.streakLevel, tt.outcome, today)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNextReviewDate_ClampsHugeLevels(t *testing.T) {
	today := problem.NewDate(2026, 8, 29)

	clamped := NextReviewDate(maxShift, problem.OutcomeEasy, today)
	beyond := NextReviewDate(maxShift+40, problem.OutcomeEasy, today)

	assert.Equal(t, clamped, beyond)
	assert.True(t, beyond.After(today))
}
