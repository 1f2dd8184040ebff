// Package statistics derives per-problem review figures from stored state.
package statistics

import "github.com/dsarecall/dsarecall/internal/problem"

// ReviewStatistics summarizes a single problem's review history and
// current schedule.
type ReviewStatistics struct {
	StreakLevel     int
	TotalReviews    int
	EasyReviews     int
	HardReviews     int
	AutoHardReviews int
	LastMarked      problem.NullDate
	NextReview      problem.NullDate
	DaysUntilReview int // negative when overdue, 0 when unscheduled
	IsOverdue       bool
}

// CalculateReviewStatistics computes review statistics for a problem as of
// the given date. Pure; it never touches storage or the clock.
func CalculateReviewStatistics(p *problem.Problem, today problem.Date) ReviewStatistics {
	stats := ReviewStatistics{
		StreakLevel:  p.StreakLevel,
		TotalReviews: len(p.History),
		LastMarked:   p.LastMarked,
		NextReview:   p.NextReview,
	}

	for _, event := range p.History {
		switch event.Status {
		case problem.OutcomeEasy:
			stats.EasyReviews++
		case problem.OutcomeHard:
			stats.HardReviews++
		case problem.OutcomeAutoHard:
			stats.AutoHardReviews++
		}
	}

	if p.NextReview.Valid {
		stats.DaysUntilReview = today.DaysUntil(p.NextReview.Date)
		stats.IsOverdue = stats.DaysUntilReview < 0
	}

	return stats
}
