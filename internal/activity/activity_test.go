package activity

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsarecall/dsarecall/internal/database"
	"github.com/dsarecall/dsarecall/internal/problem"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDBActivityRepository_Record_Accumulates(t *testing.T) {
	repo := NewDBActivityRepository(newTestDB(t))
	ctx := context.Background()
	day := problem.NewDate(2026, time.August, 29)

	require.NoError(t, repo.Record(ctx, day, 2))
	require.NoError(t, repo.Record(ctx, day, 3))

	entries, err := repo.Window(ctx, day, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].ProblemsReviewed)
}

func TestDBActivityRepository_Window(t *testing.T) {
	repo := NewDBActivityRepository(newTestDB(t))
	ctx := context.Background()
	today := problem.NewDate(2026, time.August, 29)

	require.NoError(t, repo.Record(ctx, today, 1))
	require.NoError(t, repo.Record(ctx, today.AddDays(-2), 4))
	// Outside a 7 day window.
	require.NoError(t, repo.Record(ctx, today.AddDays(-7), 9))

	entries, err := repo.Window(ctx, today, 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "2026-08-29", entries[0].Date.String())
	assert.Equal(t, 1, entries[0].ProblemsReviewed)
	assert.Equal(t, "2026-08-27", entries[1].Date.String())
	assert.Equal(t, 4, entries[1].ProblemsReviewed)
}

func TestDBActivityRepository_CurrentStreak(t *testing.T) {
	today := problem.NewDate(2026, time.August, 29)

	for name, tc := range map[string]struct {
		recorded []int // offsets in days before today with activity
		want     int
	}{
		"no activity at all":     {recorded: nil, want: 0},
		"today only":             {recorded: []int{0}, want: 1},
		"three consecutive days": {recorded: []int{0, 1, 2}, want: 3},
		"gap breaks the run":     {recorded: []int{0, 1, 3, 4}, want: 2},
		"today missing":          {recorded: []int{1, 2, 3}, want: 0},
	} {
		t.Run(name, func(t *testing.T) {
			repo := NewDBActivityRepository(newTestDB(t))
			ctx := context.Background()
			for _, offset := range tc.recorded {
				require.NoError(t, repo.Record(ctx, today.AddDays(-offset), 1))
			}

			streak, err := repo.CurrentStreak(ctx, today)
			require.NoError(t, err)
			assert.Equal(t, tc.want, streak)
		})
	}
}

func TestDBActivityRepository_CurrentStreak_IgnoresFutureDates(t *testing.T) {
	repo := NewDBActivityRepository(newTestDB(t))
	ctx := context.Background()
	today := problem.NewDate(2026, time.August, 29)

	require.NoError(t, repo.Record(ctx, today, 1))
	require.NoError(t, repo.Record(ctx, today.AddDays(1), 1))

	streak, err := repo.CurrentStreak(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}
