package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/internal/entity"
)

// ErrJobAlreadyActive is returned by Enqueue when a pending or processing job
// already exists for the same (document, job_type). Enforced by a partial
// unique index, so concurrent enqueuers cannot race past the check.
var ErrJobAlreadyActive = errors.New("an active job already exists for this document and job type")

// JobFilter narrows ListJobs.
type JobFilter struct {
	DocumentID *uuid.UUID
	Statuses   []constants.JobStatus
	Limit      int
}

type DocumentJobRepository interface {
	Enqueue(ctx context.Context, documentID uuid.UUID, jobType constants.JobType, maxAttempts int) (*entity.DocumentJob, error)
	// ClaimNext atomically claims the oldest eligible job for workerID.
	// Returns nil, nil when no job is available.
	ClaimNext(ctx context.Context, workerID string, lease time.Duration) (*entity.DocumentJob, error)
	// Complete marks a processing job completed. A no-op (false) when the
	// job is already terminal.
	Complete(ctx context.Context, jobID uuid.UUID) (bool, error)
	// Fail records the error and either re-queues the job or, when attempts
	// have reached max_attempts, marks it failed. Returns the resulting
	// status; a terminal job is left untouched and its status returned.
	Fail(ctx context.Context, jobID uuid.UUID, message string) (constants.JobStatus, error)
	// ReclaimOrphans force-resets processing jobs whose lock is older than
	// olderThan back to pending. Operator safety valve; normal recovery
	// happens claim-side through the lease predicate.
	ReclaimOrphans(ctx context.Context, olderThan time.Duration) (int64, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.DocumentJob, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]*entity.DocumentJob, error)
}

type documentJobRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewDocumentJobRepository returns a job store backed by raw pgx SQL. Every
// state transition is a single conditional UPDATE; there is no
// read-then-write anywhere in the claim protocol.
func NewDocumentJobRepository(pool *pgxpool.Pool, logger *slog.Logger) DocumentJobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentJobRepo{pool: pool, logger: logger}
}

const jobColumns = `id, document_id, job_type, status, attempts, max_attempts,
	locked_by, locked_at, last_error, created_at, updated_at`

func scanJob(row pgx.Row) (*entity.DocumentJob, error) {
	var j entity.DocumentJob
	err := row.Scan(
		&j.ID,
		&j.DocumentID,
		&j.JobType,
		&j.Status,
		&j.Attempts,
		&j.MaxAttempts,
		&j.LockedBy,
		&j.LockedAt,
		&j.LastError,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *documentJobRepo) Enqueue(ctx context.Context, documentID uuid.UUID, jobType constants.JobType, maxAttempts int) (*entity.DocumentJob, error) {
	if maxAttempts < 1 {
		maxAttempts = 3
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO document_jobs (id, document_id, job_type, status, attempts, max_attempts, created_at, updated_at)
		VALUES ($1, $2, $3, 'pending', 0, $4, NOW(), NOW())
		RETURNING `+jobColumns,
		uuid.New(), documentID, string(jobType), maxAttempts)

	job, err := scanJob(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("enqueue rejected: job already active", "document_id", documentID, "job_type", jobType)
			return nil, ErrJobAlreadyActive
		}
		r.logger.Error("enqueue failed", "document_id", documentID, "job_type", jobType, "error", err)
		return nil, fmt.Errorf("enqueue job: %w", err)
	}
	r.logger.Info("job enqueued", "job_id", job.ID, "document_id", documentID, "job_type", jobType)
	return job, nil
}

// claimSQL claims the oldest eligible job in one atomic statement. Eligible
// means pending, or processing with a lock older than the lease, which is an
// orphaned claim left by a crashed worker. FOR UPDATE SKIP LOCKED keeps racing workers
// from blocking on each other: the loser of the race simply sees no row.
const claimSQL = `
WITH candidate AS (
	SELECT id FROM document_jobs
	WHERE status = 'pending'
	   OR (status = 'processing' AND locked_at < NOW() - ($2 * interval '1 second'))
	ORDER BY created_at ASC
	LIMIT 1
	FOR UPDATE SKIP LOCKED
)
UPDATE document_jobs j SET
	status     = 'processing',
	locked_by  = $1,
	locked_at  = NOW(),
	attempts   = attempts + 1,
	updated_at = NOW()
FROM candidate
WHERE j.id = candidate.id
RETURNING j.id, j.document_id, j.job_type, j.status, j.attempts, j.max_attempts,
	j.locked_by, j.locked_at, j.last_error, j.created_at, j.updated_at`

func (r *documentJobRepo) ClaimNext(ctx context.Context, workerID string, lease time.Duration) (*entity.DocumentJob, error) {
	job, err := scanJob(r.pool.QueryRow(ctx, claimSQL, workerID, int64(lease.Seconds())))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim job: %w", err)
	}
	r.logger.Info("job claimed",
		"job_id", job.ID,
		"document_id", job.DocumentID,
		"job_type", job.JobType,
		"worker_id", workerID,
		"attempt", job.Attempts,
	)
	return job, nil
}

func (r *documentJobRepo) Complete(ctx context.Context, jobID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE document_jobs SET
			status     = 'completed',
			locked_by  = NULL,
			locked_at  = NULL,
			updated_at = NOW()
		WHERE id = $1 AND status = 'processing'`, jobID)
	if err != nil {
		r.logger.Error("complete failed", "job_id", jobID, "error", err)
		return false, fmt.Errorf("complete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// already terminal (or reclaimed); idempotent no-op
		r.logger.Debug("complete was a no-op", "job_id", jobID)
		return false, nil
	}
	r.logger.Info("job completed", "job_id", jobID)
	return true, nil
}

func (r *documentJobRepo) Fail(ctx context.Context, jobID uuid.UUID, message string) (constants.JobStatus, error) {
	var status string
	err := r.pool.QueryRow(ctx, `
		UPDATE document_jobs SET
			status     = CASE WHEN attempts >= max_attempts THEN 'failed' ELSE 'pending' END,
			last_error = $2,
			locked_by  = NULL,
			locked_at  = NULL,
			updated_at = NOW()
		WHERE id = $1 AND status = 'processing'
		RETURNING status`, jobID, message).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// already terminal; report the stored status without mutating
			job, getErr := r.GetByID(ctx, jobID)
			if getErr != nil {
				return "", getErr
			}
			r.logger.Debug("fail was a no-op", "job_id", jobID, "status", job.Status)
			return constants.JobStatus(job.Status), nil
		}
		r.logger.Error("fail transition errored", "job_id", jobID, "error", err)
		return "", fmt.Errorf("fail job: %w", err)
	}
	if constants.JobStatus(status) == constants.JobStatusFailed {
		r.logger.Warn("job failed terminally", "job_id", jobID, "error", message)
	} else {
		r.logger.Info("job re-queued after failure", "job_id", jobID, "error", message)
	}
	return constants.JobStatus(status), nil
}

func (r *documentJobRepo) ReclaimOrphans(ctx context.Context, olderThan time.Duration) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE document_jobs SET
			status     = 'pending',
			locked_by  = NULL,
			locked_at  = NULL,
			updated_at = NOW()
		WHERE status = 'processing'
		  AND locked_at < NOW() - ($1 * interval '1 second')`,
		int64(olderThan.Seconds()))
	if err != nil {
		r.logger.Error("orphan reclaim failed", "error", err)
		return 0, fmt.Errorf("reclaim orphans: %w", err)
	}
	if tag.RowsAffected() > 0 {
		r.logger.Info("orphaned jobs reclaimed", "count", tag.RowsAffected())
	}
	return tag.RowsAffected(), nil
}

func (r *documentJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.DocumentJob, error) {
	job, err := scanJob(r.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM document_jobs WHERE id = $1`, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("job %s: %w", jobID, pgx.ErrNoRows)
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

func (r *documentJobRepo) ListJobs(ctx context.Context, filter JobFilter) ([]*entity.DocumentJob, error) {
	q := `SELECT ` + jobColumns + ` FROM document_jobs`
	var args []any
	var where []string
	if filter.DocumentID != nil {
		args = append(args, *filter.DocumentID)
		where = append(where, fmt.Sprintf("document_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		args = append(args, statuses)
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY created_at ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*entity.DocumentJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
