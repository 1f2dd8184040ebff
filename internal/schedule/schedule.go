// Package schedule computes next-review dates for the streak model.
//
// The model has exactly two outcomes. An easy review doubles the interval
// for every level of the current streak (2^level days); a hard review, or
// an automatic decay, always schedules the next review for tomorrow.
package schedule

import "github.com/dsarecall/dsarecall/internal/problem"

// InitialStreakLevel is the streak level of a new or reset problem.
const InitialStreakLevel = 1

// InitialIntervalDays is the review interval after a hard outcome
// and for a freshly created problem.
const InitialIntervalDays = 1

// maxShift caps the exponent so absurd streak levels cannot overflow
// the day count.
const maxShift = 30

// NextReviewDate returns the date a problem should next be reviewed.
//
// For an easy outcome the interval is 2^streakLevel days, where streakLevel
// is the level after the caller has already incremented it. Hard and
// auto-hard outcomes always reschedule for the day after today, regardless
// of the streak level.
func NextReviewDate(streakLevel int, outcome problem.Outcome, today problem.Date) problem.Date {
	if outcome != problem.OutcomeEasy {
		return today.AddDays(InitialIntervalDays)
	}
	return today.AddDays(intervalDays(streakLevel))
}

func intervalDays(streakLevel int) int {
	if streakLevel < InitialStreakLevel {
		streakLevel = InitialStreakLevel
	}
	if streakLevel > maxShift {
		streakLevel = maxShift
	}
	return 1 << streakLevel
}
