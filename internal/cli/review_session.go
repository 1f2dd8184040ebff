package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dsarecall/dsarecall/internal/problem"
	"github.com/dsarecall/dsarecall/internal/review"
)

// errEndSession stops the review loop when the user quits.
var errEndSession = errors.New("end of session")

// ReviewSession walks the user through every problem due today.
type ReviewSession struct {
	coordinator  *review.Coordinator
	problems     problem.ProblemRepository
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
}

// NewReviewSession creates a review session reading commands from in and
// writing to out.
func NewReviewSession(
	coordinator *review.Coordinator,
	problems problem.ProblemRepository,
	in io.Reader,
	out io.Writer,
) *ReviewSession {
	return &ReviewSession{
		coordinator:  coordinator,
		problems:     problems,
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
	}
}

// Run decays overdue problems, then reviews everything due today.
// The decay pass happens before anything is shown so the user never
// reviews a problem whose streak silently rotted.
func (s *ReviewSession) Run(ctx context.Context, today problem.Date) error {
	decayed, err := s.coordinator.DecayOverdue(ctx, today)
	if err != nil {
		return err
	}
	if decayed > 0 {
		yellow.Fprintf(s.stdoutWriter, "%d problem(s) were overdue and reset to streak level 1.\n\n", decayed)
	}

	due, err := s.problems.FindDue(ctx, today)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		fmt.Fprintln(s.stdoutWriter, "Nothing due today. 🎉")
		return nil
	}

	for i := range due {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := s.reviewOne(ctx, &due[i], i+1, len(due), today)
		if errors.Is(err, errEndSession) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(s.stdoutWriter, "\nAll done for today.")
	return nil
}

func (s *ReviewSession) reviewOne(ctx context.Context, p *problem.Problem, index, total int, today problem.Date) error {
	fmt.Fprintln(s.stdoutWriter)
	bold.Fprintf(s.stdoutWriter, "[%d/%d] %s\n", index, total, p.Title)
	if p.Link != "" {
		faint.Fprintf(s.stdoutWriter, "%s\n", p.Link)
	}
	faint.Fprintf(s.stdoutWriter, "streak level %d, due %s\n", p.StreakLevel, formatNullDate(p.NextReview))

	for {
		answer, err := prompt(s.stdoutWriter, s.stdinReader, "(e)asy / (h)ard / (a)pproach / (c)ode / (s)kip / (q)uit")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errEndSession
			}
			return fmt.Errorf("read review command: %w", err)
		}

		switch answer {
		case "e":
			if err := s.coordinator.CompleteReview(ctx, p, problem.OutcomeEasy, today); err != nil {
				return err
			}
			green.Fprintf(s.stdoutWriter, "Easy. Streak level %d, next review %s.\n", p.StreakLevel, formatNullDate(p.NextReview))
			return nil
		case "h":
			if err := s.coordinator.CompleteReview(ctx, p, problem.OutcomeHard, today); err != nil {
				return err
			}
			red.Fprintf(s.stdoutWriter, "Hard. Streak reset, next review %s.\n", formatNullDate(p.NextReview))
			return nil
		case "a":
			s.printSection("approach", p.Approach)
		case "c":
			s.printSection("code", p.Code)
		case "s":
			fmt.Fprintln(s.stdoutWriter, "Skipped.")
			return nil
		case "q":
			return errEndSession
		default:
			fmt.Fprintln(s.stdoutWriter, "Please answer e, h, a, c, s or q.")
		}
	}
}

func (s *ReviewSession) printSection(name, content string) {
	if content == "" {
		faint.Fprintf(s.stdoutWriter, "No %s recorded.\n", name)
		return
	}
	bold.Fprintf(s.stdoutWriter, "--- %s ---\n", name)
	fmt.Fprintln(s.stdoutWriter, content)
}
