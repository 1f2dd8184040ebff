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
)

func newStreakCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the daily review streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDatabase(func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error {
				window := days
				if window == 0 {
					window = cfg.Review.ActivityWindowDays
				}
				repo := activity.NewDBActivityRepository(db)
				return cli.RunStreakReport(ctx, repo, os.Stdout, problem.DateOf(time.Now()), window)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days of activity to show (default from config)")

	return cmd
}
