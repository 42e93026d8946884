package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/internal/entity"
	"github.com/readlee/doc-extractor/internal/repository"
)

type stubLister struct {
	jobs   []*entity.DocumentJob
	err    error
	filter repository.JobFilter
}

func (s *stubLister) ListJobs(_ context.Context, filter repository.JobFilter) ([]*entity.DocumentJob, error) {
	s.filter = filter
	return s.jobs, s.err
}

func TestExportJobsXLSX(t *testing.T) {
	workerID := "worker-a"
	lockedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	lister := &stubLister{jobs: []*entity.DocumentJob{
		{
			ID:          uuid.New(),
			DocumentID:  uuid.New(),
			JobType:     string(constants.JobTypeExtraction),
			Status:      string(constants.JobStatusCompleted),
			Attempts:    1,
			MaxAttempts: 3,
			LockedBy:    &workerID,
			LockedAt:    &lockedAt,
			CreatedAt:   lockedAt.Add(-time.Minute),
			UpdatedAt:   lockedAt,
		},
		{
			ID:          uuid.New(),
			DocumentID:  uuid.New(),
			JobType:     string(constants.JobTypeOCR),
			Status:      string(constants.JobStatusPending),
			Attempts:    0,
			MaxAttempts: 3,
			CreatedAt:   lockedAt,
			UpdatedAt:   lockedAt,
		},
	}}

	svc := NewService(lister, nil)
	data, err := svc.ExportJobsXLSX(context.Background(), repository.JobFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two jobs

	assert.Equal(t, "Job ID", rows[0][0])
	assert.Equal(t, "Status", rows[0][3])

	assert.Equal(t, lister.jobs[0].ID.String(), rows[1][0])
	assert.Equal(t, "completed", rows[1][3])
	assert.Equal(t, "worker-a", rows[1][6])
	assert.Equal(t, "ocr", rows[2][2])
}

func TestExportJobsXLSX_PropagatesFilter(t *testing.T) {
	docID := uuid.New()
	lister := &stubLister{}
	svc := NewService(lister, nil)

	filter := repository.JobFilter{
		DocumentID: &docID,
		Statuses:   []constants.JobStatus{constants.JobStatusFailed},
		Limit:      10,
	}
	_, err := svc.ExportJobsXLSX(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, &docID, lister.filter.DocumentID)
	assert.Equal(t, filter.Statuses, lister.filter.Statuses)
}

func TestExportJobsXLSX_ListerError(t *testing.T) {
	lister := &stubLister{err: errors.New("db down")}
	svc := NewService(lister, nil)

	_, err := svc.ExportJobsXLSX(context.Background(), repository.JobFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
