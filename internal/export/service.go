package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/readlee/doc-extractor/internal/entity"
	"github.com/readlee/doc-extractor/internal/repository"
)

// JobLister is the slice of the job repository the exporter reads.
type JobLister interface {
	ListJobs(ctx context.Context, filter repository.JobFilter) ([]*entity.DocumentJob, error)
}

// Service is a tiny façade over the job repository that produces XLSX bytes
// of the job audit trail for operators.
type Service struct {
	jobs   JobLister
	logger *slog.Logger
}

func NewService(jobs JobLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) for jobs matching the
// filter, oldest first.
func (s *Service) ExportJobsXLSX(ctx context.Context, filter repository.JobFilter) ([]byte, error) {
	start := time.Now()

	jobs, err := s.jobs.ListJobs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Job ID",
		"Document ID",
		"Job Type",
		"Status",
		"Attempts",
		"Max Attempts",
		"Locked By",
		"Locked At",
		"Last Error",
		"Created At",
		"Updated At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, j := range jobs {
		values := []any{
			j.ID.String(),
			j.DocumentID.String(),
			j.JobType,
			j.Status,
			j.Attempts,
			j.MaxAttempts,
			strOrEmpty(j.LockedBy),
			timeOrEmpty(j.LockedAt),
			strOrEmpty(j.LastError),
			j.CreatedAt.UTC().Format(time.RFC3339),
			j.UpdatedAt.UTC().Format(time.RFC3339),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// drop the default sheet if it is not ours
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("jobs exported", "rows", row-2, "duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
