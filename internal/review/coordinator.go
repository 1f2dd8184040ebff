// Package review orchestrates review outcomes: it is the only place a
// problem's scheduling fields are mutated, and it keeps the daily ledger
// in step with persisted reviews.
package review

import (
	"context"
	"fmt"

	"github.com/dsarecall/dsarecall/internal/activity"
	"github.com/dsarecall/dsarecall/internal/problem"
	"github.com/dsarecall/dsarecall/internal/schedule"
)

// Coordinator applies scheduling rules to problems and persists the
// results through the problem and activity repositories.
type Coordinator struct {
	problems problem.ProblemRepository
	activity activity.ActivityRepository
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(problems problem.ProblemRepository, activity activity.ActivityRepository) *Coordinator {
	return &Coordinator{problems: problems, activity: activity}
}

// Initialize sets the scheduling fields of a freshly created problem:
// streak level 1, first review tomorrow, no review history. It is called
// exactly once, before the first persist.
func (c *Coordinator) Initialize(p *problem.Problem, today problem.Date) {
	p.StreakLevel = schedule.InitialStreakLevel
	p.NextReview = problem.SomeDate(today.AddDays(schedule.InitialIntervalDays))
	p.LastMarked = problem.NullDate{}
	p.History = nil
}

// MarkEasy records a successful review: the streak level grows by one and
// the next review moves out to 2^level days from today.
func (c *Coordinator) MarkEasy(p *problem.Problem, today problem.Date) {
	p.StreakLevel++
	p.NextReview = problem.SomeDate(schedule.NextReviewDate(p.StreakLevel, problem.OutcomeEasy, today))
	p.LastMarked = problem.SomeDate(today)
	p.AppendHistory(today, problem.OutcomeEasy)
}

// MarkHard records a failed review: the streak level resets to 1 and the
// next review is tomorrow.
func (c *Coordinator) MarkHard(p *problem.Problem, today problem.Date) {
	p.StreakLevel = schedule.InitialStreakLevel
	p.NextReview = problem.SomeDate(schedule.NextReviewDate(p.StreakLevel, problem.OutcomeHard, today))
	p.LastMarked = problem.SomeDate(today)
	p.AppendHistory(today, problem.OutcomeHard)
}

// CompleteReview applies the outcome to the problem, persists it, and
// records the review in the daily ledger, strictly in that order: a crash
// between the steps can lose a ledger increment but never show one for a
// review that was not persisted.
func (c *Coordinator) CompleteReview(ctx context.Context, p *problem.Problem, outcome problem.Outcome, today problem.Date) error {
	switch outcome {
	case problem.OutcomeEasy:
		c.MarkEasy(p, today)
	case problem.OutcomeHard:
		c.MarkHard(p, today)
	default:
		return fmt.Errorf("outcome %q cannot be recorded interactively", outcome)
	}

	if err := c.problems.Update(ctx, p); err != nil {
		return err
	}
	if err := c.activity.Record(ctx, today, 1); err != nil {
		return err
	}
	return nil
}

// DecayOverdue resets every problem whose next review is more than one day
// in the past, exactly like a hard outcome except that the history entry is
// "auto-hard" and last_marked keeps its old value: the user did not review
// anything, the system decayed it. The whole batch is persisted in one
// transaction. Returns the number of problems decayed.
//
// Run once per process start, before any interaction, so the user is told
// about rotted streaks instead of silently reviewing them.
func (c *Coordinator) DecayOverdue(ctx context.Context, today problem.Date) (int, error) {
	cutoff := today.AddDays(-1)

	overdue, err := c.problems.FindOverdue(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(overdue) == 0 {
		return 0, nil
	}

	decayed := make([]*problem.Problem, 0, len(overdue))
	for i := range overdue {
		p := &overdue[i]
		p.StreakLevel = schedule.InitialStreakLevel
		p.NextReview = problem.SomeDate(schedule.NextReviewDate(p.StreakLevel, problem.OutcomeAutoHard, today))
		p.AppendHistory(today, problem.OutcomeAutoHard)
		decayed = append(decayed, p)
	}

	if err := c.problems.BatchUpdate(ctx, decayed); err != nil {
		return 0, err
	}
	return len(decayed), nil
}
