package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dsarecall/dsarecall/internal/activity"
	"github.com/dsarecall/dsarecall/internal/problem"
)

// RunStreakReport prints the current consecutive-day streak and a
// day-by-day activity table for the window ending today.
func RunStreakReport(ctx context.Context, repo activity.ActivityRepository, w io.Writer, today problem.Date, days int) error {
	streak, err := repo.CurrentStreak(ctx, today)
	if err != nil {
		return err
	}
	entries, err := repo.Window(ctx, today, days)
	if err != nil {
		return err
	}

	switch {
	case streak == 0:
		fmt.Fprintln(w, "Current streak: 0 days. Review something today to start one.")
	case streak == 1:
		green.Fprintln(w, "Current streak: 1 day. 🔥")
	default:
		green.Fprintf(w, "Current streak: %d days. 🔥\n", streak)
	}
	fmt.Fprintln(w)

	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.Date.String()] = e.ProblemsReviewed
	}

	fmt.Fprintf(w, "%-12s %-9s\n", "Date", "Reviewed")
	fmt.Fprintf(w, "%-12s %-9s\n", "----", "--------")
	for i := 0; i < days; i++ {
		day := today.AddDays(-i)
		count := counts[day.String()]
		bar := strings.Repeat("■", min(count, 20))
		if count > 0 {
			fmt.Fprintf(w, "%-12s %-9d %s\n", day, count, bar)
		} else {
			faint.Fprintf(w, "%-12s %-9d\n", day, count)
		}
	}
	return nil
}
