package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/internal/repository"
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue <document-id>",
	Short: "Enqueue an extraction job for a document",
	Long:  "Enqueue a pending extraction job for the given document. Fails if a pending or processing job of the same type already exists for the document.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnqueue,
}

var (
	enqueueJobType     string
	enqueueMaxAttempts int
)

func init() {
	enqueueCmd.Flags().StringVar(&enqueueJobType, "type", string(constants.JobTypeExtraction), "Job type: extraction or ocr")
	enqueueCmd.Flags().IntVar(&enqueueMaxAttempts, "max-attempts", 3, "Attempts before the job is marked failed")

	rootCmd.AddCommand(enqueueCmd)
}

func runEnqueue(cmd *cobra.Command, args []string) error {
	docID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	var jobType constants.JobType
	switch enqueueJobType {
	case string(constants.JobTypeExtraction):
		jobType = constants.JobTypeExtraction
	case string(constants.JobTypeOCR):
		jobType = constants.JobTypeOCR
	default:
		return fmt.Errorf("unknown job type %q (want one of %v)", enqueueJobType, constants.JobTypes)
	}

	ctx := context.Background()
	jobs, docs, cleanup, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := docs.GetByID(ctx, docID); err != nil {
		return fmt.Errorf("document not found: %w", err)
	}

	job, err := jobs.Enqueue(ctx, docID, jobType, enqueueMaxAttempts)
	if err != nil {
		if errors.Is(err, repository.ErrJobAlreadyActive) {
			return fmt.Errorf("an active %s job already exists for document %s", jobType, docID)
		}
		return fmt.Errorf("enqueue failed: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Enqueued %s job %s for document %s\n", job.JobType, job.ID, job.DocumentID)
	return nil
}
