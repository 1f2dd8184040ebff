package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// ProblemForm collects problem fields interactively. Validation happens
// here, at the boundary: the store below accepts whatever it is given.
type ProblemForm struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	validate     *validator.Validate
}

// NewProblemForm creates a form reading from in and writing to out.
func NewProblemForm(in io.Reader, out io.Writer) *ProblemForm {
	return &ProblemForm{
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
		validate:     validator.New(),
	}
}

// PromptTitle asks for a title until a non-empty one is given.
func (f *ProblemForm) PromptTitle(current string) (string, error) {
	for {
		label := "Title"
		if current != "" {
			label = fmt.Sprintf("Title [%s]", current)
		}
		answer, err := prompt(f.stdoutWriter, f.stdinReader, label)
		if err != nil {
			return "", fmt.Errorf("read title: %w", err)
		}
		if answer == "" {
			answer = current
		}
		if err := f.validate.Var(answer, "required"); err != nil {
			red.Fprintln(f.stdoutWriter, "A title is required.")
			continue
		}
		return answer, nil
	}
}

// PromptLink asks for an optional link and insists it is a URL when given.
func (f *ProblemForm) PromptLink(current string) (string, error) {
	for {
		label := "Link (optional)"
		if current != "" {
			label = fmt.Sprintf("Link [%s]", current)
		}
		answer, err := prompt(f.stdoutWriter, f.stdinReader, label)
		if err != nil {
			return "", fmt.Errorf("read link: %w", err)
		}
		if answer == "" {
			return current, nil
		}
		if err := f.validate.Var(answer, "url"); err != nil {
			red.Fprintln(f.stdoutWriter, "That does not look like a URL.")
			continue
		}
		return answer, nil
	}
}

// Confirm asks a yes/no question, defaulting to no.
func (f *ProblemForm) Confirm(question string) (bool, error) {
	answer, err := prompt(f.stdoutWriter, f.stdinReader, question+" [y/N]")
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return answer == "y" || answer == "Y", nil
}
