package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/dsarecall/dsarecall/internal/bootstrap"
	"github.com/dsarecall/dsarecall/internal/config"
	"github.com/dsarecall/dsarecall/internal/database"
)

var (
	configFile string
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "dsarecall",
		Short:         "Track practice problems and review them on a streak-based schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newAddCommand(),
		newReviewCommand(),
		newListCommand(),
		newShowCommand(),
		newEditCommand(),
		newDeleteCommand(),
		newStreakCommand(),
		newExportCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: debugMode,
		})),
	)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

// runWithDatabase loads configuration, opens the database, and runs fn with
// an interrupt-aware context. The database is closed on the way out, whether
// fn finishes or the user hits Ctrl-C mid-session.
func runWithDatabase(fn func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}

	app := bootstrap.New()
	app.OnShutdown(db.Close)

	return app.Run(context.Background(), func(ctx context.Context) error {
		return fn(ctx, cfg, db)
	})
}
