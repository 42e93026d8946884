package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/readlee/doc-extractor/constants"
	v1 "github.com/readlee/doc-extractor/gen/proto/extraction/v1"
	"github.com/readlee/doc-extractor/internal/entity"
	"github.com/readlee/doc-extractor/internal/repository"
)

type AdminService struct {
	v1.UnimplementedExtractionAdminServiceServer
	jobs        repository.DocumentJobRepository
	docs        repository.DocumentRepository
	maxAttempts int
	logger      *slog.Logger
}

func NewAdminService(jobs repository.DocumentJobRepository, docs repository.DocumentRepository, maxAttempts int, logger *slog.Logger) *AdminService {
	return &AdminService{
		jobs:        jobs,
		docs:        docs,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// EnqueueExtraction implements v1.ExtractionAdminServiceServer
func (s *AdminService) EnqueueExtraction(ctx context.Context, req *v1.EnqueueExtractionRequest) (*v1.EnqueueExtractionResponse, error) {
	did := strings.TrimSpace(req.GetDocumentId())
	if did == "" {
		s.logger.Error("enqueue request missing document_id")
		return nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	docID, err := uuid.Parse(did)
	if err != nil {
		s.logger.Error("invalid document_id format for enqueue", "document_id", did, "error", err)
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	jobType := constants.JobTypeExtraction
	switch strings.TrimSpace(req.GetJobType()) {
	case "", string(constants.JobTypeExtraction):
	case string(constants.JobTypeOCR):
		jobType = constants.JobTypeOCR
	default:
		return nil, status.Errorf(codes.InvalidArgument, "job_type must be one of %v", constants.JobTypes)
	}

	if _, err := s.docs.GetByID(ctx, docID); err != nil {
		s.logger.Error("document not found for enqueue", "document_id", docID, "error", err)
		return nil, status.Error(codes.NotFound, "document not found")
	}

	s.logger.Info("enqueueing extraction job", "document_id", docID, "job_type", jobType)
	job, err := s.jobs.Enqueue(ctx, docID, jobType, s.maxAttempts)
	if err != nil {
		if errors.Is(err, repository.ErrJobAlreadyActive) {
			return nil, status.Error(codes.AlreadyExists, "an active job already exists for this document and job type")
		}
		s.logger.Error("enqueue failed", "document_id", docID, "error", err)
		return nil, status.Error(codes.Internal, "enqueue failed")
	}

	return &v1.EnqueueExtractionResponse{Job: jobToProto(job)}, nil
}

// GetDocument implements v1.ExtractionAdminServiceServer
func (s *AdminService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	docID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "document not found")
	}

	resp := &v1.GetDocumentResponse{
		DocumentId:  doc.ID.String(),
		Status:      doc.Status,
		VersionKeys: doc.VersionKeys(),
		DerivedKeys: doc.DerivedKeys(),
	}
	if doc.PageCount != nil {
		resp.PageCount = int32(*doc.PageCount)
	}
	if doc.ErrorMessage != nil {
		resp.ErrorMessage = *doc.ErrorMessage
	}
	return resp, nil
}

// ListJobs implements v1.ExtractionAdminServiceServer
func (s *AdminService) ListJobs(ctx context.Context, req *v1.ListJobsRequest) (*v1.ListJobsResponse, error) {
	filter := repository.JobFilter{Limit: int(req.GetLimit())}

	for _, raw := range req.GetStatuses() {
		st := constants.JobStatus(strings.TrimSpace(raw))
		switch st {
		case constants.JobStatusPending, constants.JobStatusProcessing,
			constants.JobStatusCompleted, constants.JobStatusFailed:
			filter.Statuses = append(filter.Statuses, st)
		default:
			return nil, status.Errorf(codes.InvalidArgument, "unknown job status %q", raw)
		}
	}

	if did := strings.TrimSpace(req.GetDocumentId()); did != "" {
		docID, err := uuid.Parse(did)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
		}
		filter.DocumentID = &docID
	}

	jobs, err := s.jobs.ListJobs(ctx, filter)
	if err != nil {
		s.logger.Error("list jobs failed", "error", err)
		return nil, status.Error(codes.Internal, "list jobs failed")
	}

	out := make([]*v1.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobToProto(j))
	}
	return &v1.ListJobsResponse{Jobs: out}, nil
}

// ReclaimOrphans implements v1.ExtractionAdminServiceServer
func (s *AdminService) ReclaimOrphans(ctx context.Context, req *v1.ReclaimOrphansRequest) (*v1.ReclaimOrphansResponse, error) {
	secs := req.GetOlderThanSeconds()
	if secs <= 0 {
		return nil, status.Error(codes.InvalidArgument, "older_than_seconds must be positive")
	}

	n, err := s.jobs.ReclaimOrphans(ctx, time.Duration(secs)*time.Second)
	if err != nil {
		s.logger.Error("reclaim orphans failed", "error", err)
		return nil, status.Error(codes.Internal, "reclaim orphans failed")
	}
	s.logger.Info("reclaimed orphaned jobs", "count", n, "older_than_seconds", secs)
	return &v1.ReclaimOrphansResponse{Reclaimed: n}, nil
}

func jobToProto(j *entity.DocumentJob) *v1.Job {
	out := &v1.Job{
		Id:          j.ID.String(),
		DocumentId:  j.DocumentID.String(),
		JobType:     j.JobType,
		Status:      j.Status,
		Attempts:    int32(j.Attempts),
		MaxAttempts: int32(j.MaxAttempts),
		CreatedAt:   j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   j.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if j.LockedBy != nil {
		out.LockedBy = *j.LockedBy
	}
	if j.LockedAt != nil {
		out.LockedAt = j.LockedAt.UTC().Format(time.RFC3339)
	}
	if j.LastError != nil {
		out.LastError = *j.LastError
	}
	return out
}
