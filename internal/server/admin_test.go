package server

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/readlee/doc-extractor/constants"
	v1 "github.com/readlee/doc-extractor/gen/proto/extraction/v1"
	"github.com/readlee/doc-extractor/internal/entity"
	"github.com/readlee/doc-extractor/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubJobRepo struct {
	repository.DocumentJobRepository

	enqueued   []*entity.DocumentJob
	enqueueErr error
	listed     []*entity.DocumentJob
	reclaimed  int64
	lastFilter repository.JobFilter
}

func (s *stubJobRepo) Enqueue(_ context.Context, documentID uuid.UUID, jobType constants.JobType, maxAttempts int) (*entity.DocumentJob, error) {
	if s.enqueueErr != nil {
		return nil, s.enqueueErr
	}
	job := &entity.DocumentJob{
		ID:          uuid.New(),
		DocumentID:  documentID,
		JobType:     string(jobType),
		Status:      string(constants.JobStatusPending),
		MaxAttempts: maxAttempts,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.enqueued = append(s.enqueued, job)
	return job, nil
}

func (s *stubJobRepo) ListJobs(_ context.Context, filter repository.JobFilter) ([]*entity.DocumentJob, error) {
	s.lastFilter = filter
	return s.listed, nil
}

func (s *stubJobRepo) ReclaimOrphans(_ context.Context, _ time.Duration) (int64, error) {
	return s.reclaimed, nil
}

type stubDocRepo struct {
	repository.DocumentRepository

	doc    *entity.Document
	getErr error
}

func (s *stubDocRepo) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.doc, nil
}

func TestEnqueueExtraction(t *testing.T) {
	doc := &entity.Document{ID: uuid.New(), Status: string(constants.DocumentStatusUploaded)}
	jobs := &stubJobRepo{}
	svc := NewAdminService(jobs, &stubDocRepo{doc: doc}, 3, testLogger())

	resp, err := svc.EnqueueExtraction(context.Background(), &v1.EnqueueExtractionRequest{
		DocumentId: doc.ID.String(),
	})
	require.NoError(t, err)

	require.Len(t, jobs.enqueued, 1)
	assert.Equal(t, string(constants.JobTypeExtraction), resp.GetJob().GetJobType())
	assert.Equal(t, doc.ID.String(), resp.GetJob().GetDocumentId())
	assert.Equal(t, int32(3), resp.GetJob().GetMaxAttempts())
}

func TestEnqueueExtraction_Validation(t *testing.T) {
	doc := &entity.Document{ID: uuid.New()}
	svc := NewAdminService(&stubJobRepo{}, &stubDocRepo{doc: doc}, 3, testLogger())
	ctx := context.Background()

	t.Run("missing document_id", func(t *testing.T) {
		_, err := svc.EnqueueExtraction(ctx, &v1.EnqueueExtractionRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("malformed document_id", func(t *testing.T) {
		_, err := svc.EnqueueExtraction(ctx, &v1.EnqueueExtractionRequest{DocumentId: "not-a-uuid"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown job type", func(t *testing.T) {
		_, err := svc.EnqueueExtraction(ctx, &v1.EnqueueExtractionRequest{
			DocumentId: doc.ID.String(),
			JobType:    "llm",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("duplicate active job", func(t *testing.T) {
		jobs := &stubJobRepo{enqueueErr: repository.ErrJobAlreadyActive}
		dup := NewAdminService(jobs, &stubDocRepo{doc: doc}, 3, testLogger())
		_, err := dup.EnqueueExtraction(ctx, &v1.EnqueueExtractionRequest{DocumentId: doc.ID.String()})
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})
}

func TestGetDocument(t *testing.T) {
	versions := map[string]any{"textlayer_1_v1_20260314T092653.589": map[string]any{}}
	raw, err := json.Marshal(versions)
	require.NoError(t, err)

	pages := 4
	errMsg := "tesseract: exit status 1"
	doc := &entity.Document{
		ID:           uuid.New(),
		Status:       string(constants.DocumentStatusOCRFailed),
		PageCount:    &pages,
		ErrorMessage: &errMsg,
		OCRVersions:  raw,
	}
	svc := NewAdminService(&stubJobRepo{}, &stubDocRepo{doc: doc}, 3, testLogger())

	resp, err := svc.GetDocument(context.Background(), &v1.GetDocumentRequest{DocumentId: doc.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, "ocr_failed", resp.GetStatus())
	assert.Equal(t, int32(4), resp.GetPageCount())
	assert.Equal(t, errMsg, resp.GetErrorMessage())
	assert.Equal(t, []string{"textlayer_1_v1_20260314T092653.589"}, resp.GetVersionKeys())
}

func TestListJobs(t *testing.T) {
	docID := uuid.New()
	jobs := &stubJobRepo{listed: []*entity.DocumentJob{
		{ID: uuid.New(), DocumentID: docID, JobType: "extraction", Status: "pending"},
	}}
	svc := NewAdminService(jobs, &stubDocRepo{}, 3, testLogger())

	resp, err := svc.ListJobs(context.Background(), &v1.ListJobsRequest{
		Statuses:   []string{"pending", "processing"},
		DocumentId: docID.String(),
		Limit:      25,
	})
	require.NoError(t, err)

	require.Len(t, resp.GetJobs(), 1)
	assert.Equal(t, 25, jobs.lastFilter.Limit)
	require.NotNil(t, jobs.lastFilter.DocumentID)
	assert.Equal(t, docID, *jobs.lastFilter.DocumentID)
	assert.Equal(t, []constants.JobStatus{constants.JobStatusPending, constants.JobStatusProcessing}, jobs.lastFilter.Statuses)

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.ListJobs(context.Background(), &v1.ListJobsRequest{Statuses: []string{"paused"}})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestReclaimOrphans(t *testing.T) {
	jobs := &stubJobRepo{reclaimed: 2}
	svc := NewAdminService(jobs, &stubDocRepo{}, 3, testLogger())

	resp, err := svc.ReclaimOrphans(context.Background(), &v1.ReclaimOrphansRequest{OlderThanSeconds: 600})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.GetReclaimed())

	t.Run("non-positive age rejected", func(t *testing.T) {
		_, err := svc.ReclaimOrphans(context.Background(), &v1.ReclaimOrphansRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
