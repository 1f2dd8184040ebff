package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/dsarecall/dsarecall/internal/cli"
	"github.com/dsarecall/dsarecall/internal/config"
	"github.com/dsarecall/dsarecall/internal/editor"
	"github.com/dsarecall/dsarecall/internal/problem"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDatabase(func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error {
				problems, err := problem.NewDBProblemRepository(db).FindAll(ctx)
				if err != nil {
					return err
				}
				cli.RenderProblemTable(os.Stdout, problems, problem.DateOf(time.Now()))
				return nil
			})
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a problem with its review statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProblemID(args[0])
			if err != nil {
				return err
			}
			return runWithDatabase(func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error {
				p, err := problem.NewDBProblemRepository(db).Find(ctx, id)
				if err != nil {
					return err
				}
				cli.RenderProblemDetail(os.Stdout, p, problem.DateOf(time.Now()))
				return nil
			})
		},
	}
}

func newEditCommand() *cobra.Command {
	var editApproach, editCode bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a problem's title, link, approach or code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProblemID(args[0])
			if err != nil {
				return err
			}
			return runWithDatabase(func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error {
				repo := problem.NewDBProblemRepository(db)
				p, err := repo.Find(ctx, id)
				if err != nil {
					return err
				}

				form := cli.NewProblemForm(os.Stdin, os.Stdout)
				if p.Title, err = form.PromptTitle(p.Title); err != nil {
					return err
				}
				if p.Link, err = form.PromptLink(p.Link); err != nil {
					return err
				}

				if editApproach || editCode {
					ed := editor.New(cfg.Editor.Command)
					if editApproach {
						if p.Approach, err = editText(ed.EditApproach, p.Approach, "approach"); err != nil {
							return err
						}
					}
					if editCode {
						if p.Code, err = editCodeText(ed, p.Code, cfg.Editor.CodeLanguage); err != nil {
							return err
						}
					}
				}

				if err := repo.Update(ctx, p); err != nil {
					return err
				}
				fmt.Printf("Updated problem #%d.\n", p.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&editApproach, "approach", false, "Edit the approach in $EDITOR")
	cmd.Flags().BoolVar(&editCode, "code", false, "Edit the code in $EDITOR")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a problem permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProblemID(args[0])
			if err != nil {
				return err
			}
			return runWithDatabase(func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error {
				repo := problem.NewDBProblemRepository(db)

				if !force {
					p, err := repo.Find(ctx, id)
					if err != nil {
						return err
					}
					form := cli.NewProblemForm(os.Stdin, os.Stdout)
					yes, err := form.Confirm(fmt.Sprintf("Delete #%d %q? This cannot be undone.", p.ID, p.Title))
					if err != nil {
						return err
					}
					if !yes {
						fmt.Println("Aborted.")
						return nil
					}
				}

				deleted, err := repo.Delete(ctx, id)
				if err != nil {
					return err
				}
				if !deleted {
					fmt.Printf("No problem with id %d.\n", id)
					return nil
				}
				fmt.Printf("Deleted problem #%d.\n", id)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

func parseProblemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid problem id %q", arg)
	}
	return id, nil
}
