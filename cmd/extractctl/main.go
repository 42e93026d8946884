// Package main provides the extractctl operations CLI for the document
// extraction pipeline: enqueue jobs, inspect the queue, reclaim orphans, and
// export the job audit trail.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/readlee/doc-extractor/internal/repository"
)

var rootCmd = &cobra.Command{
	Use:   "extractctl",
	Short: "Operations CLI for the document extraction pipeline",
	Long:  "extractctl manages the document extraction job queue: enqueue extraction or OCR jobs, list jobs, reclaim orphaned jobs, and export the audit trail to XLSX.",
}

var dbURLFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURLFlag, "db-url", "", "Postgres connection string (defaults to DB_URL env var)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openDB(ctx context.Context) (repository.DocumentJobRepository, repository.DocumentRepository, func(), error) {
	dsn := dbURLFlag
	if dsn == "" {
		dsn = os.Getenv("DB_URL")
	}
	if dsn == "" {
		return nil, nil, nil, fmt.Errorf("database URL is required (set DB_URL or use --db-url)")
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             dsn,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jobs := repository.NewDocumentJobRepository(pool, nil)
	docs := repository.NewDocumentRepository(entc, pool, nil)
	cleanup := func() { repository.Close(entc, pool, nil) }
	return jobs, docs, cleanup, nil
}
