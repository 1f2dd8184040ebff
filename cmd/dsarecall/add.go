package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/dsarecall/dsarecall/internal/activity"
	"github.com/dsarecall/dsarecall/internal/cli"
	"github.com/dsarecall/dsarecall/internal/config"
	"github.com/dsarecall/dsarecall/internal/editor"
	"github.com/dsarecall/dsarecall/internal/problem"
	"github.com/dsarecall/dsarecall/internal/review"
)

func newAddCommand() *cobra.Command {
	var withEditor bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new practice problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDatabase(func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error {
				problems := problem.NewDBProblemRepository(db)
				activities := activity.NewDBActivityRepository(db)
				coordinator := review.NewCoordinator(problems, activities)
				form := cli.NewProblemForm(os.Stdin, os.Stdout)

				title, err := form.PromptTitle("")
				if err != nil {
					return err
				}
				link, err := form.PromptLink("")
				if err != nil {
					return err
				}

				p := &problem.Problem{Title: title, Link: link}

				if withEditor {
					ed := editor.New(cfg.Editor.Command)
					p.Approach, err = editText(ed.EditApproach, "", "approach")
					if err != nil {
						return err
					}
					p.Code, err = editCodeText(ed, "", cfg.Editor.CodeLanguage)
					if err != nil {
						return err
					}
				}

				today := problem.DateOf(time.Now())
				coordinator.Initialize(p, today)
				if err := problems.Create(ctx, p); err != nil {
					return err
				}

				fmt.Printf("Added problem #%d %q. First review: %s.\n", p.ID, p.Title, p.NextReview.Date)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&withEditor, "editor", true, "Open $EDITOR for approach and code")

	return cmd
}

// editText runs one editor round trip; a cancelled edit keeps the
// current text instead of failing the command.
func editText(edit func(string) (string, error), current, field string) (string, error) {
	text, err := edit(current)
	if err != nil {
		if errors.Is(err, editor.ErrCancelled) {
			fmt.Printf("Edit of %s cancelled, keeping previous text.\n", field)
			return current, nil
		}
		return "", err
	}
	return text, nil
}

func editCodeText(ed *editor.Editor, current, language string) (string, error) {
	return editText(func(initial string) (string, error) {
		return ed.EditCode(initial, language)
	}, current, "code")
}
