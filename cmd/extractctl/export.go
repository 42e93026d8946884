package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readlee/doc-extractor/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the job audit trail to an XLSX workbook",
	RunE:  runExport,
}

var (
	exportOutFile    string
	exportStatuses   []string
	exportDocumentID string
	exportLimit      int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "jobs.xlsx", "Path to write the workbook to")
	exportCmd.Flags().StringSliceVar(&exportStatuses, "status", nil, "Filter by status (pending, processing, completed, failed); repeatable")
	exportCmd.Flags().StringVar(&exportDocumentID, "document-id", "", "Filter by document UUID")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "Maximum rows to export (0 = no limit)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter(exportStatuses, exportDocumentID, exportLimit)
	if err != nil {
		return err
	}

	ctx := context.Background()
	jobs, _, cleanup, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	data, err := export.NewService(jobs, nil).ExportJobsXLSX(ctx, filter)
	if err != nil {
		return fmt.Errorf("export jobs: %w", err)
	}

	if err := os.WriteFile(exportOutFile, data, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %d bytes to %s\n", len(data), exportOutFile)
	return nil
}
