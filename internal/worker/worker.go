package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/internal/entity"
	"github.com/readlee/doc-extractor/internal/extract"
	"github.com/readlee/doc-extractor/internal/quality"
	"github.com/readlee/doc-extractor/internal/repository"
	"github.com/readlee/doc-extractor/internal/storage"
)

// JobStore is the slice of the job repository the worker drives. All
// coordination between worker processes happens through these three calls.
type JobStore interface {
	ClaimNext(ctx context.Context, workerID string, lease time.Duration) (*entity.DocumentJob, error)
	Complete(ctx context.Context, jobID uuid.UUID) (bool, error)
	Fail(ctx context.Context, jobID uuid.UUID, message string) (constants.JobStatus, error)
}

// DocumentStore is the slice of the document repository the worker writes.
type DocumentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkReady(ctx context.Context, id uuid.UUID) error
	MarkPendingOCR(ctx context.Context, id uuid.UUID) error
	MarkExtractionError(ctx context.Context, id uuid.UUID, jobType constants.JobType, message string) error
	AppendOCRVersion(ctx context.Context, id uuid.UUID, key string, payload json.RawMessage, pageCount int) error
	SetDerivedContent(ctx context.Context, id uuid.UUID, name string, entry json.RawMessage) error
}

var _ JobStore = (repository.DocumentJobRepository)(nil)
var _ DocumentStore = (repository.DocumentRepository)(nil)

// Config holds one worker loop's settings.
type Config struct {
	WorkerID        string
	PollInterval    time.Duration
	LeaseDuration   time.Duration
	PipelineVersion string
}

// Worker is a single-threaded poll loop: claim one job, run it to a terminal
// job-store write, repeat. Many workers may run concurrently (in-process or
// as separate OS processes); they coordinate only through the job store's
// atomic conditional updates.
type Worker struct {
	cfg        Config
	jobs       JobStore
	docs       DocumentStore
	blobs      storage.BlobStore
	textEngine extract.Engine
	ocrEngine  extract.Engine
	evaluator  *quality.Evaluator
	logger     *slog.Logger

	now func() time.Time
}

func New(
	cfg Config,
	jobs JobStore,
	docs DocumentStore,
	blobs storage.BlobStore,
	textEngine extract.Engine,
	ocrEngine extract.Engine,
	evaluator *quality.Evaluator,
	logger *slog.Logger,
) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.LeaseDuration <= 0 {
		cfg.LeaseDuration = 10 * time.Minute
	}
	if cfg.PipelineVersion == "" {
		cfg.PipelineVersion = "v1"
	}
	return &Worker{
		cfg:        cfg,
		jobs:       jobs,
		docs:       docs,
		blobs:      blobs,
		textEngine: textEngine,
		ocrEngine:  ocrEngine,
		evaluator:  evaluator,
		logger:     logger.With("worker_id", cfg.WorkerID),
		now:        time.Now,
	}
}

// Run polls until ctx is canceled. Idle ticks sleep for the poll interval;
// there is no busy-wait.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("worker started",
		"poll_interval", w.cfg.PollInterval,
		"lease_duration", w.cfg.LeaseDuration,
		"pipeline_version", w.cfg.PipelineVersion,
	)
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		job, err := w.jobs.ClaimNext(ctx, w.cfg.WorkerID, w.cfg.LeaseDuration)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("worker stopped")
				return
			}
			w.logger.Error("worker.claim.failed", "error", err)
		} else if job != nil {
			w.Process(ctx, job)
			// drained a job; immediately look for the next one
			continue
		}

		select {
		case <-ctx.Done():
			w.logger.Info("worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// Process runs one claimed job through download, extraction, the quality
// gate, and result persistence, ending in exactly one terminal job-store
// write (Complete or Fail).
func (w *Worker) Process(ctx context.Context, job *entity.DocumentJob) {
	log := w.logger.With("job_id", job.ID, "document_id", job.DocumentID, "job_type", job.JobType, "attempt", job.Attempts)

	doc, err := w.docs.GetByID(ctx, job.DocumentID)
	if err != nil {
		w.handleFailure(ctx, log, job, fmt.Errorf("resolve document: %w", err))
		return
	}

	// tier selection happens against the pre-processing status
	engine := w.selectEngine(job, doc)

	if err := w.docs.MarkProcessing(ctx, doc.ID); err != nil {
		w.handleFailure(ctx, log, job, err)
		return
	}

	blob, err := w.blobs.Get(ctx, doc.StorageKey)
	if err != nil {
		w.handleFailure(ctx, log, job, fmt.Errorf("download blob: %w", err))
		return
	}

	res, err := engine.Extract(ctx, blob, doc.FileExt)
	if err != nil {
		w.handleFailure(ctx, log, job, fmt.Errorf("extract (%s): %w", engine.Name(), err))
		return
	}

	sufficient := w.evaluator.IsSufficient(res)
	extractedAt := w.now().UTC()
	key := extract.VersionKey(engine.Name(), engine.Version(), w.cfg.PipelineVersion, extractedAt)

	warnings := res.Warnings
	if !sufficient {
		warnings = append(warnings, fmt.Sprintf("insufficient quality from %s (%d chars over %d pages); escalation required",
			res.Metrics.Method, res.Metrics.CharCount, res.Metrics.TotalPages))
	}
	payload, err := json.Marshal(extract.VersionPayload{
		Engine:          engine.Name(),
		EngineVersion:   engine.Version(),
		PipelineVersion: w.cfg.PipelineVersion,
		ExtractedAt:     extractedAt,
		WorkerID:        w.cfg.WorkerID,
		Pages:           res.Pages,
		Metrics:         res.Metrics,
		Warnings:        warnings,
		Sufficient:      sufficient,
	})
	if err != nil {
		w.handleFailure(ctx, log, job, fmt.Errorf("marshal version payload: %w", err))
		return
	}
	if err := extract.ValidateVersionPayload(payload); err != nil {
		w.handleFailure(ctx, log, job, fmt.Errorf("validate version payload: %w", err))
		return
	}
	if err := w.docs.AppendOCRVersion(ctx, doc.ID, key, payload, res.Metrics.TotalPages); err != nil {
		w.handleFailure(ctx, log, job, err)
		return
	}

	if sufficient {
		// the derived rendering is a convenience; its failure must not fail
		// a job whose evidence is already persisted
		if err := w.storeMarkdown(ctx, doc, key, res); err != nil {
			log.Warn("worker.derive.failed", "version_key", key, "error", err)
		}
		if err := w.docs.MarkReady(ctx, doc.ID); err != nil {
			w.handleFailure(ctx, log, job, err)
			return
		}
	} else {
		// not a job failure: a successful determination that the next tier
		// is required
		if err := w.docs.MarkPendingOCR(ctx, doc.ID); err != nil {
			w.handleFailure(ctx, log, job, err)
			return
		}
	}

	if _, err := w.jobs.Complete(ctx, job.ID); err != nil {
		log.Error("worker.complete.failed", "error", err)
		return
	}
	log.Info("worker.job.done",
		"method", res.Metrics.Method,
		"pages", res.Metrics.TotalPages,
		"chars", res.Metrics.CharCount,
		"sufficient", sufficient,
		"version_key", key,
	)
}

// selectEngine picks the extraction tier. The job type is authoritative: an
// ocr job always runs the OCR engine. For extraction jobs the document status
// and format decide: pending_ocr means the cheap tier already fell short, and
// images carry no text layer at all.
func (w *Worker) selectEngine(job *entity.DocumentJob, doc *entity.Document) extract.Engine {
	if constants.JobType(job.JobType) == constants.JobTypeOCR {
		return w.ocrEngine
	}
	if constants.DocumentStatus(doc.Status) == constants.DocumentStatusPendingOCR {
		return w.ocrEngine
	}
	if constants.MapExtToFormat(doc.FileExt) == constants.IMAGE {
		return w.ocrEngine
	}
	return w.textEngine
}

func (w *Worker) storeMarkdown(ctx context.Context, doc *entity.Document, versionKey string, res extract.Result) error {
	entry, err := json.Marshal(extract.DerivedEntry{
		SourceVersion: versionKey,
		Format:        "markdown",
		Content:       extract.RenderMarkdown(doc.Filename, res.Pages),
		GeneratedAt:   w.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal derived entry: %w", err)
	}
	return w.docs.SetDerivedContent(ctx, doc.ID, "markdown", entry)
}

// handleFailure records the error against the job; when that exhausts
// max_attempts, the failure propagates to the document so operators see the
// last error. Before exhaustion the job simply returns to pending and the
// next claim retries it.
func (w *Worker) handleFailure(ctx context.Context, log *slog.Logger, job *entity.DocumentJob, cause error) {
	log.Error("worker.job.failed", "error", cause)
	status, err := w.jobs.Fail(ctx, job.ID, cause.Error())
	if err != nil {
		log.Error("worker.fail.failed", "error", err)
		return
	}
	if status == constants.JobStatusFailed {
		if err := w.docs.MarkExtractionError(ctx, job.DocumentID, constants.JobType(job.JobType), cause.Error()); err != nil {
			log.Error("worker.document.error_transition_failed", "error", err)
		}
	}
}
