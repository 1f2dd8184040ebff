package cli

import (
	"fmt"
	"io"

	"github.com/dsarecall/dsarecall/internal/problem"
	"github.com/dsarecall/dsarecall/internal/statistics"
)

// RenderProblemTable prints one line per problem with its schedule state.
func RenderProblemTable(w io.Writer, problems []problem.Problem, today problem.Date) {
	if len(problems) == 0 {
		fmt.Fprintln(w, "No problems yet. Add one with: dsarecall add")
		return
	}

	fmt.Fprintf(w, "%-5s %-40s %-7s %-12s %-12s %s\n", "ID", "Title", "Streak", "Next review", "Last marked", "")
	fmt.Fprintf(w, "%-5s %-40s %-7s %-12s %-12s %s\n", "--", "-----", "------", "-----------", "-----------", "")

	for i := range problems {
		p := &problems[i]
		marker := ""
		if p.NextReview.Valid && !p.NextReview.Date.After(today) {
			marker = "due"
			if p.NextReview.Date.Before(today) {
				marker = "overdue"
			}
		}
		fmt.Fprintf(w, "%-5d %-40s %-7d %-12s %-12s %s\n",
			p.ID,
			truncate(p.Title, 40),
			p.StreakLevel,
			formatNullDate(p.NextReview),
			formatNullDate(p.LastMarked),
			marker,
		)
	}
}

// RenderProblemDetail prints a problem with its full review statistics.
func RenderProblemDetail(w io.Writer, p *problem.Problem, today problem.Date) {
	stats := statistics.CalculateReviewStatistics(p, today)

	bold.Fprintf(w, "#%d %s\n", p.ID, p.Title)
	if p.Link != "" {
		fmt.Fprintf(w, "Link:        %s\n", p.Link)
	}
	fmt.Fprintf(w, "Streak:      level %d\n", stats.StreakLevel)
	fmt.Fprintf(w, "Next review: %s", formatNullDate(stats.NextReview))
	if stats.IsOverdue {
		red.Fprintf(w, "  (overdue by %d day(s))", -stats.DaysUntilReview)
	} else if stats.NextReview.Valid && stats.DaysUntilReview > 0 {
		faint.Fprintf(w, "  (in %d day(s))", stats.DaysUntilReview)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Last marked: %s\n", formatNullDate(stats.LastMarked))
	fmt.Fprintf(w, "Reviews:     %d total (%d easy, %d hard, %d auto-hard)\n",
		stats.TotalReviews, stats.EasyReviews, stats.HardReviews, stats.AutoHardReviews)

	if p.Approach != "" {
		bold.Fprintln(w, "\nApproach")
		fmt.Fprintln(w, p.Approach)
	}
	if p.Code != "" {
		bold.Fprintln(w, "\nCode")
		fmt.Fprintln(w, p.Code)
	}
}

func formatNullDate(nd problem.NullDate) string {
	if !nd.Valid {
		return "never"
	}
	return nd.Date.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
