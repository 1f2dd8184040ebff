package main

import (
	"context"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/dsarecall/dsarecall/internal/activity"
	"github.com/dsarecall/dsarecall/internal/cli"
	"github.com/dsarecall/dsarecall/internal/config"
	"github.com/dsarecall/dsarecall/internal/problem"
	"github.com/dsarecall/dsarecall/internal/review"
)

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Review problems that are due today",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDatabase(func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error {
				problems := problem.NewDBProblemRepository(db)
				activities := activity.NewDBActivityRepository(db)
				coordinator := review.NewCoordinator(problems, activities)

				session := cli.NewReviewSession(coordinator, problems, os.Stdin, os.Stdout)
				return session.Run(ctx, problem.DateOf(time.Now()))
			})
		},
	}
}
