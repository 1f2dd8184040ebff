// Package export renders the problem collection as a markdown report.
package export

import (
	"fmt"
	"strings"

	"github.com/dsarecall/dsarecall/internal/problem"
	"github.com/dsarecall/dsarecall/internal/statistics"
)

// BuildMarkdownReport renders all problems into a single markdown document:
// one section per problem with its schedule, streak figures, approach notes
// and code.
func BuildMarkdownReport(problems []problem.Problem, today problem.Date) string {
	var b strings.Builder

	b.WriteString("# DSA Recall problem collection\n\n")
	fmt.Fprintf(&b, "Generated on %s. %d problems.\n", today, len(problems))

	for i := range problems {
		p := &problems[i]
		stats := statistics.CalculateReviewStatistics(p, today)

		fmt.Fprintf(&b, "\n## %d. %s\n\n", p.ID, p.Title)
		if p.Link != "" {
			fmt.Fprintf(&b, "Link: <%s>\n\n", p.Link)
		}

		fmt.Fprintf(&b, "- Streak level: %d\n", stats.StreakLevel)
		b.WriteString("- Next review: " + formatNullDate(stats.NextReview) + "\n")
		b.WriteString("- Last marked: " + formatNullDate(stats.LastMarked) + "\n")
		fmt.Fprintf(&b, "- Reviews: %d total (%d easy, %d hard, %d auto-hard)\n",
			stats.TotalReviews, stats.EasyReviews, stats.HardReviews, stats.AutoHardReviews)
		if stats.IsOverdue {
			b.WriteString("- **Overdue**\n")
		}

		if p.Approach != "" {
			b.WriteString("\n### Approach\n\n")
			b.WriteString(strings.TrimRight(p.Approach, "\n"))
			b.WriteString("\n")
		}
		if p.Code != "" {
			b.WriteString("\n### Code\n\n")
			b.WriteString("```\n")
			b.WriteString(strings.TrimRight(p.Code, "\n"))
			b.WriteString("\n```\n")
		}
	}

	return b.String()
}

func formatNullDate(nd problem.NullDate) string {
	if !nd.Valid {
		return "never"
	}
	return nd.Date.String()
}
