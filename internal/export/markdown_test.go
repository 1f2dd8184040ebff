package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dsarecall/dsarecall/internal/problem"
)

func TestBuildMarkdownReport(t *testing.T) {
	today := problem.NewDate(2026, time.August, 29)

	t.Run("empty collection", func(t *testing.T) {
		got := BuildMarkdownReport(nil, today)
		assert.Contains(t, got, "# DSA Recall problem collection")
		assert.Contains(t, got, "Generated on 2026-08-29. 0 problems.")
	})

	t.Run("renders every problem section", func(t *testing.T) {
		problems := []problem.Problem{
			{
				ID:          1,
				Title:       "Two Sum",
				Link:        "https://leetcode.com/problems/two-sum",
				Approach:    "One pass with a value-to-index map.\n",
				Code:        "def two_sum(nums, target):\n    ...\n",
				StreakLevel: 3,
				NextReview:  problem.SomeDate(today.AddDays(8)),
				LastMarked:  problem.SomeDate(today),
				History: problem.History{
					{Date: today.AddDays(-4), Status: problem.OutcomeHard},
					{Date: today, Status: problem.OutcomeEasy},
				},
			},
			{
				ID:          2,
				Title:       "Rotted Problem",
				StreakLevel: 1,
				NextReview:  problem.SomeDate(today.AddDays(-3)),
			},
		}

		got := BuildMarkdownReport(problems, today)

		assert.Contains(t, got, "## 1. Two Sum")
		assert.Contains(t, got, "Link: <https://leetcode.com/problems/two-sum>")
		assert.Contains(t, got, "- Streak level: 3")
		assert.Contains(t, got, "- Next review: 2026-09-06")
		assert.Contains(t, got, "- Last marked: 2026-08-29")
		assert.Contains(t, got, "- Reviews: 2 total (1 easy, 1 hard, 0 auto-hard)")
		assert.Contains(t, got, "### Approach\n\nOne pass with a value-to-index map.\n")
		assert.Contains(t, got, "```\ndef two_sum(nums, target):\n    ...\n```")

		assert.Contains(t, got, "## 2. Rotted Problem")
		assert.Contains(t, got, "- Last marked: never")
		assert.Contains(t, got, "- **Overdue**")
		// A problem without notes gets no empty sections.
		assert.NotContains(t, got, "## 2. Rotted Problem\n\n### Approach")
	})
}
