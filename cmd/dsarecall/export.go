package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/dsarecall/dsarecall/internal/config"
	"github.com/dsarecall/dsarecall/internal/export"
	"github.com/dsarecall/dsarecall/internal/pdf"
	"github.com/dsarecall/dsarecall/internal/problem"
)

func newExportCommand() *cobra.Command {
	var outputPath string
	var toPDF bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the problem collection as a markdown report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDatabase(func(ctx context.Context, cfg *config.Config, db *sqlx.DB) error {
				problems, err := problem.NewDBProblemRepository(db).FindAll(ctx)
				if err != nil {
					return err
				}

				report := export.BuildMarkdownReport(problems, problem.DateOf(time.Now()))
				if err := os.WriteFile(outputPath, []byte(report), 0o644); err != nil {
					return fmt.Errorf("write report %s: %w", outputPath, err)
				}
				fmt.Printf("Wrote %s.\n", outputPath)

				if toPDF {
					pdfPath, err := pdf.RenderFile(outputPath)
					if err != nil {
						return err
					}
					fmt.Printf("Wrote %s.\n", pdfPath)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "dsarecall.md", "Output markdown file")
	cmd.Flags().BoolVar(&toPDF, "pdf", false, "Also render the report to PDF")

	return cmd
}
