package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/gen/ent"
	entdoc "github.com/readlee/doc-extractor/gen/ent/document"
	"github.com/readlee/doc-extractor/internal/entity"
)

// CreateDocumentRequest carries the fields the upload collaborator provides.
type CreateDocumentRequest struct {
	StorageKey  string
	Filename    string
	FileExt     string
	FileSize    int
	ContentHash *string
	Metadata    json.RawMessage
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// Create inserts a new document in status uploading.
	Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error)
	// MarkUploaded confirms the blob is in place (uploading -> uploaded).
	MarkUploaded(ctx context.Context, id uuid.UUID) error
	// MarkProcessing transitions uploaded/pending_ocr -> processing. A no-op
	// when the document is already processing (e.g. a reclaimed job).
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// MarkReady transitions processing -> ready. Idempotent: setting ready
	// twice is harmless by design of the state machine.
	MarkReady(ctx context.Context, id uuid.UUID) error
	// MarkPendingOCR transitions processing -> pending_ocr, signalling that a
	// higher-cost extraction tier is required.
	MarkPendingOCR(ctx context.Context, id uuid.UUID) error
	// MarkExtractionError records a terminal extraction failure.
	MarkExtractionError(ctx context.Context, id uuid.UUID, jobType constants.JobType, message string) error
	// AppendOCRVersion merges a single {key: payload} entry into
	// ocr_versions. A merge, never an overwrite, so a duplicate completion
	// from a reclaimed-then-original worker race yields duplicate evidence
	// rather than lost evidence.
	AppendOCRVersion(ctx context.Context, id uuid.UUID, key string, payload json.RawMessage, pageCount int) error
	// SetDerivedContent merges one named derived representation into
	// derived_content, referencing the version key it was computed from.
	SetDerivedContent(ctx context.Context, id uuid.UUID, name string, entry json.RawMessage) error
}

type documentRepo struct {
	ent    *ent.Client
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, pool: pool, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, fmt.Errorf("get document: %w", err)
	}
	return toDocumentEntity(row), nil
}

func (r *documentRepo) Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error) {
	create := r.ent.Document.Create().
		SetStatus(string(constants.DocumentStatusUploading)).
		SetStorageKey(req.StorageKey).
		SetFilename(req.Filename).
		SetFileExt(constants.NormalizeExt(req.FileExt)).
		SetFileSize(req.FileSize).
		SetNillableContentHash(req.ContentHash)
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "storage_key", req.StorageKey, "error", err)
		return nil, fmt.Errorf("create document: %w", err)
	}
	r.logger.Info("document created", "document_id", row.ID, "storage_key", req.StorageKey)
	return toDocumentEntity(row), nil
}

func (r *documentRepo) MarkUploaded(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, constants.DocumentStatusUploaded,
		constants.DocumentStatusUploading, constants.DocumentStatusUploaded)
}

func (r *documentRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, constants.DocumentStatusProcessing,
		constants.DocumentStatusUploaded, constants.DocumentStatusPendingOCR, constants.DocumentStatusProcessing)
}

func (r *documentRepo) MarkReady(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, constants.DocumentStatusReady,
		constants.DocumentStatusProcessing, constants.DocumentStatusReady)
}

func (r *documentRepo) MarkPendingOCR(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, constants.DocumentStatusPendingOCR,
		constants.DocumentStatusProcessing, constants.DocumentStatusPendingOCR)
}

func (r *documentRepo) MarkExtractionError(ctx context.Context, id uuid.UUID, jobType constants.JobType, message string) error {
	// OCR-tier exhaustion gets its own terminal state so operators can tell
	// "scan could not be read" apart from infrastructure failures.
	target := constants.DocumentStatusError
	if jobType == constants.JobTypeOCR {
		target = constants.DocumentStatusOCRFailed
	}
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusIn(
				string(constants.DocumentStatusProcessing),
				string(target),
			),
		).
		SetStatus(string(target)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document errored", "document_id", id, "error", err)
		return fmt.Errorf("mark document %s: %w", target, err)
	}
	if n == 0 {
		r.logger.Debug("error transition was a no-op", "document_id", id, "target", target)
		return nil
	}
	r.logger.Warn("document errored", "document_id", id, "status", target, "error", message)
	return nil
}

// transition conditionally moves a document into target. Allowed source
// states include the target itself, which makes every transition idempotent
// and safe under duplicate completions. Zero rows matched is a no-op, never
// an error: job state is authoritative and the document write re-derivable.
func (r *documentRepo) transition(ctx context.Context, id uuid.UUID, target constants.DocumentStatus, from ...constants.DocumentStatus) error {
	sources := make([]string, 0, len(from))
	for _, s := range from {
		sources = append(sources, string(s))
	}
	n, err := r.ent.Document.Update().
		Where(entdoc.ID(id), entdoc.StatusIn(sources...)).
		SetStatus(string(target)).
		Save(ctx)
	if err != nil {
		r.logger.Error("document transition failed", "document_id", id, "target", target, "error", err)
		return fmt.Errorf("mark document %s: %w", target, err)
	}
	if n == 0 {
		r.logger.Debug("document transition was a no-op", "document_id", id, "target", target)
		return nil
	}
	r.logger.Info("document status changed", "document_id", id, "status", target)
	return nil
}

func (r *documentRepo) AppendOCRVersion(ctx context.Context, id uuid.UUID, key string, payload json.RawMessage, pageCount int) error {
	wrapped, err := json.Marshal(map[string]json.RawMessage{key: payload})
	if err != nil {
		return fmt.Errorf("wrap version payload: %w", err)
	}
	// JSONB concatenation merges keys server-side in one statement; two
	// workers appending concurrently both land, since version keys are
	// timestamp-suffixed and unique per attempt.
	tag, err := r.pool.Exec(ctx, `
		UPDATE documents SET
			ocr_versions = COALESCE(ocr_versions, '{}'::jsonb) || $2::jsonb,
			page_count   = $3,
			updated_at   = NOW()
		WHERE id = $1`, id, wrapped, pageCount)
	if err != nil {
		r.logger.Error("failed to append ocr version", "document_id", id, "version_key", key, "error", err)
		return fmt.Errorf("append ocr version: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("append ocr version: document %s not found", id)
	}
	r.logger.Info("ocr version appended", "document_id", id, "version_key", key, "page_count", pageCount)
	return nil
}

func (r *documentRepo) SetDerivedContent(ctx context.Context, id uuid.UUID, name string, entry json.RawMessage) error {
	wrapped, err := json.Marshal(map[string]json.RawMessage{name: entry})
	if err != nil {
		return fmt.Errorf("wrap derived entry: %w", err)
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE documents SET
			derived_content = COALESCE(derived_content, '{}'::jsonb) || $2::jsonb,
			updated_at      = NOW()
		WHERE id = $1`, id, wrapped)
	if err != nil {
		r.logger.Error("failed to set derived content", "document_id", id, "name", name, "error", err)
		return fmt.Errorf("set derived content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set derived content: document %s not found", id)
	}
	r.logger.Info("derived content stored", "document_id", id, "name", name)
	return nil
}
