// Package activity maintains the daily review ledger used for
// consecutive-day streak tracking.
package activity

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dsarecall/dsarecall/internal/problem"
)

// Entry is one row of the ledger: how many reviews were recorded on a date.
type Entry struct {
	Date             problem.Date `db:"date"`
	ProblemsReviewed int          `db:"problems_reviewed"`
}

//go:generate mockgen -source=activity.go -destination=../mocks/activity/mock_repository.go -package=mock_activity ActivityRepository

// ActivityRepository defines storage operations for the daily ledger.
type ActivityRepository interface {
	Record(ctx context.Context, date problem.Date, count int) error
	Window(ctx context.Context, today problem.Date, days int) ([]Entry, error)
	CurrentStreak(ctx context.Context, today problem.Date) (int, error)
}

// DBActivityRepository implements ActivityRepository on SQLite.
type DBActivityRepository struct {
	db *sqlx.DB
}

// NewDBActivityRepository creates a new DBActivityRepository.
func NewDBActivityRepository(db *sqlx.DB) *DBActivityRepository {
	return &DBActivityRepository{db: db}
}

// Record adds count to the ledger entry for date, creating the entry when
// none exists. Counters only ever grow; there is no overwrite path.
func (r *DBActivityRepository) Record(ctx context.Context, date problem.Date, count int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO streak_tracker (date, problems_reviewed)
		VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET problems_reviewed = problems_reviewed + excluded.problems_reviewed`,
		date, count,
	)
	if err != nil {
		return fmt.Errorf("record review activity for %s: %w", date, err)
	}
	return nil
}

// Window returns ledger entries for the window [today-days+1, today],
// newest first. Days without an entry are absent from the result.
func (r *DBActivityRepository) Window(ctx context.Context, today problem.Date, days int) ([]Entry, error) {
	start := today.AddDays(-(days - 1))

	var entries []Entry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT date, problems_reviewed
		FROM streak_tracker
		WHERE date BETWEEN ? AND ?
		ORDER BY date DESC`,
		start, today,
	)
	if err != nil {
		return nil, fmt.Errorf("load activity window: %w", err)
	}
	return entries, nil
}

// CurrentStreak returns the number of consecutive calendar days ending at
// today with at least one recorded review. A day with no entry, or an entry
// of zero, ends the walk; an empty or zero today means a streak of 0.
func (r *DBActivityRepository) CurrentStreak(ctx context.Context, today problem.Date) (int, error) {
	var dates []problem.Date
	err := r.db.SelectContext(ctx, &dates, `
		SELECT date
		FROM streak_tracker
		WHERE problems_reviewed > 0 AND date <= ?
		ORDER BY date DESC`,
		today,
	)
	if err != nil {
		return 0, fmt.Errorf("load streak dates: %w", err)
	}

	streak := 0
	expected := today
	for _, d := range dates {
		if !d.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDays(-1)
	}
	return streak, nil
}
