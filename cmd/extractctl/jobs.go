package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/internal/repository"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect and manage the extraction job queue",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List extraction jobs, oldest first",
	RunE:  runJobsList,
}

var jobsReclaimCmd = &cobra.Command{
	Use:   "reclaim",
	Short: "Reset orphaned processing jobs back to pending",
	Long:  "Reset processing jobs whose lock is older than the given age back to pending so another worker can claim them. Use after a worker crash when waiting for lease expiry is not acceptable.",
	RunE:  runJobsReclaim,
}

var (
	listStatuses   []string
	listDocumentID string
	listLimit      int
	reclaimOlder   time.Duration
)

func init() {
	jobsListCmd.Flags().StringSliceVar(&listStatuses, "status", nil, "Filter by status (pending, processing, completed, failed); repeatable")
	jobsListCmd.Flags().StringVar(&listDocumentID, "document-id", "", "Filter by document UUID")
	jobsListCmd.Flags().IntVar(&listLimit, "limit", 50, "Maximum rows to print (0 = no limit)")

	jobsReclaimCmd.Flags().DurationVar(&reclaimOlder, "older-than", 10*time.Minute, "Reclaim processing jobs locked longer ago than this")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsReclaimCmd)
	rootCmd.AddCommand(jobsCmd)
}

func buildFilter(statuses []string, documentID string, limit int) (repository.JobFilter, error) {
	filter := repository.JobFilter{Limit: limit}

	for _, raw := range statuses {
		st := constants.JobStatus(raw)
		switch st {
		case constants.JobStatusPending, constants.JobStatusProcessing,
			constants.JobStatusCompleted, constants.JobStatusFailed:
			filter.Statuses = append(filter.Statuses, st)
		default:
			return filter, fmt.Errorf("unknown status %q", raw)
		}
	}

	if documentID != "" {
		docID, err := uuid.Parse(documentID)
		if err != nil {
			return filter, fmt.Errorf("invalid document id: %w", err)
		}
		filter.DocumentID = &docID
	}
	return filter, nil
}

func runJobsList(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter(listStatuses, listDocumentID, listLimit)
	if err != nil {
		return err
	}

	ctx := context.Background()
	jobs, _, cleanup, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	rows, err := jobs.ListJobs(ctx, filter)
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tDOCUMENT\tTYPE\tSTATUS\tATTEMPTS\tLOCKED BY\tUPDATED")
	for _, j := range rows {
		lockedBy := ""
		if j.LockedBy != nil {
			lockedBy = *j.LockedBy
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\t%s\n",
			j.ID, j.DocumentID, j.JobType, j.Status,
			j.Attempts, j.MaxAttempts, lockedBy,
			j.UpdatedAt.UTC().Format(time.RFC3339))
	}
	return w.Flush()
}

func runJobsReclaim(cmd *cobra.Command, args []string) error {
	if reclaimOlder <= 0 {
		return fmt.Errorf("--older-than must be positive")
	}

	ctx := context.Background()
	jobs, _, cleanup, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	n, err := jobs.ReclaimOrphans(ctx, reclaimOlder)
	if err != nil {
		return fmt.Errorf("reclaim orphans: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Reclaimed %d orphaned job(s)\n", n)
	return nil
}
