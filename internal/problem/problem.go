// Package problem defines the practice-item entity and its storage access.
package problem

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Outcome is the result of a single review.
type Outcome string

const (
	// OutcomeEasy means the problem was solved comfortably; the streak grows.
	OutcomeEasy Outcome = "easy"
	// OutcomeHard means the problem needs work; the streak resets.
	OutcomeHard Outcome = "hard"
	// OutcomeAutoHard is a hard reset applied automatically to problems
	// left unreviewed for more than a day past their due date.
	OutcomeAutoHard Outcome = "auto-hard"
)

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeEasy, OutcomeHard, OutcomeAutoHard:
		return true
	}
	return false
}

// ReviewEvent is one entry in a problem's review history.
type ReviewEvent struct {
	Date   Date    `json:"date"`
	Status Outcome `json:"status"`
}

// History is the ordered, append-only review history of a problem.
// It is serialized as a JSON array only at the storage boundary.
type History []ReviewEvent

// Scan implements sql.Scanner. History is advisory data, so a malformed
// stored value decodes to an empty history instead of failing the row.
func (h *History) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*h = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into History", src)
	}

	var events []ReviewEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		*h = nil
		return nil
	}
	*h = events
	return nil
}

// Value implements driver.Valuer, encoding the history as a JSON array.
func (h History) Value() (driver.Value, error) {
	if len(h) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return string(raw), nil
}

// Problem is a single practice item with its spaced-repetition state.
type Problem struct {
	ID          int64    `db:"id"`
	Title       string   `db:"title"`
	Link        string   `db:"link"`
	Approach    string   `db:"approach"`
	Code        string   `db:"code"`
	StreakLevel int      `db:"streak_level"`
	NextReview  NullDate `db:"next_review"`
	LastMarked  NullDate `db:"last_marked"`
	History     History  `db:"history"`
}

// AppendHistory records a review event at the end of the history.
func (p *Problem) AppendHistory(date Date, status Outcome) {
	p.History = append(p.History, ReviewEvent{Date: date, Status: status})
}
