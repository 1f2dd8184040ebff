package problem

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dsarecall/dsarecall/internal/database"
)

// ErrNotFound is returned when an operation references a problem id
// that does not exist.
var ErrNotFound = errors.New("problem not found")

//go:generate mockgen -source=repository.go -destination=../mocks/problem/mock_repository.go -package=mock_problem ProblemRepository

// ProblemRepository defines storage operations for problems.
type ProblemRepository interface {
	Create(ctx context.Context, p *Problem) error
	Find(ctx context.Context, id int64) (*Problem, error)
	FindAll(ctx context.Context) ([]Problem, error)
	FindDue(ctx context.Context, asOf Date) ([]Problem, error)
	FindOverdue(ctx context.Context, asOf Date) ([]Problem, error)
	Update(ctx context.Context, p *Problem) error
	BatchUpdate(ctx context.Context, problems []*Problem) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// DBProblemRepository implements ProblemRepository on SQLite.
type DBProblemRepository struct {
	db *sqlx.DB
}

// NewDBProblemRepository creates a new DBProblemRepository.
func NewDBProblemRepository(db *sqlx.DB) *DBProblemRepository {
	return &DBProblemRepository{db: db}
}

// Create inserts a new problem and assigns its auto-increment id.
func (r *DBProblemRepository) Create(ctx context.Context, p *Problem) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO problems (title, link, approach, code, streak_level, next_review, last_marked, history)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Link, p.Approach, p.Code, p.StreakLevel, p.NextReview, p.LastMarked, p.History,
	)
	if err != nil {
		return fmt.Errorf("insert problem: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get problem insert id: %w", err)
	}
	p.ID = id
	return nil
}

// Find returns the problem with the given id, or ErrNotFound.
func (r *DBProblemRepository) Find(ctx context.Context, id int64) (*Problem, error) {
	var p Problem
	if err := r.db.GetContext(ctx, &p, "SELECT * FROM problems WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("problem %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load problem %d: %w", id, err)
	}
	return &p, nil
}

// FindAll returns all problems ordered by id ascending.
func (r *DBProblemRepository) FindAll(ctx context.Context) ([]Problem, error) {
	var problems []Problem
	if err := r.db.SelectContext(ctx, &problems, "SELECT * FROM problems ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all problems: %w", err)
	}
	return problems, nil
}

// FindDue returns problems whose next review is on or before asOf,
// ordered by next review date ascending. Problems that were never
// scheduled (NULL next_review) are not due.
func (r *DBProblemRepository) FindDue(ctx context.Context, asOf Date) ([]Problem, error) {
	var problems []Problem
	err := r.db.SelectContext(ctx, &problems,
		"SELECT * FROM problems WHERE next_review IS NOT NULL AND next_review <= ? ORDER BY next_review",
		asOf,
	)
	if err != nil {
		return nil, fmt.Errorf("load due problems: %w", err)
	}
	return problems, nil
}

// FindOverdue returns problems whose next review is strictly before asOf,
// excluding problems due exactly on asOf.
func (r *DBProblemRepository) FindOverdue(ctx context.Context, asOf Date) ([]Problem, error) {
	var problems []Problem
	err := r.db.SelectContext(ctx, &problems,
		"SELECT * FROM problems WHERE next_review IS NOT NULL AND next_review < ? ORDER BY next_review",
		asOf,
	)
	if err != nil {
		return nil, fmt.Errorf("load overdue problems: %w", err)
	}
	return problems, nil
}

// Update replaces all mutable fields of the stored problem.
// It returns ErrNotFound when no row has the problem's id.
func (r *DBProblemRepository) Update(ctx context.Context, p *Problem) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE problems
		SET title = ?, link = ?, approach = ?, code = ?,
		    streak_level = ?, next_review = ?, last_marked = ?, history = ?
		WHERE id = ?`,
		p.Title, p.Link, p.Approach, p.Code,
		p.StreakLevel, p.NextReview, p.LastMarked, p.History,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update problem %d: %w", p.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get updated rows for problem %d: %w", p.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("problem %d: %w", p.ID, ErrNotFound)
	}
	return nil
}

// BatchUpdate persists several mutated problems in a single transaction.
// Used by the startup decay pass so a partial write never leaves half the
// overdue set reset.
func (r *DBProblemRepository) BatchUpdate(ctx context.Context, problems []*Problem) error {
	if len(problems) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, p := range problems {
			_, err := tx.ExecContext(ctx, `
				UPDATE problems
				SET title = ?, link = ?, approach = ?, code = ?,
				    streak_level = ?, next_review = ?, last_marked = ?, history = ?
				WHERE id = ?`,
				p.Title, p.Link, p.Approach, p.Code,
				p.StreakLevel, p.NextReview, p.LastMarked, p.History,
				p.ID,
			)
			if err != nil {
				return fmt.Errorf("update problem %d: %w", p.ID, err)
			}
		}
		return nil
	})
}

// Delete removes the problem with the given id.
// It reports whether a row was actually removed.
func (r *DBProblemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM problems WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete problem %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get deleted rows for problem %d: %w", id, err)
	}
	return affected > 0, nil
}
