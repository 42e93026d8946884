package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readlee/doc-extractor/constants"
)

// These tests exercise the claim protocol against a real Postgres because
// the semantics under test (SKIP LOCKED, conditional updates, the partial
// unique index) cannot be faked. Set TEST_DATABASE_URL to run them.
const testSchema = `
CREATE TABLE IF NOT EXISTS document_jobs (
	id           uuid PRIMARY KEY,
	document_id  uuid NOT NULL,
	job_type     text NOT NULL,
	status       text NOT NULL DEFAULT 'pending',
	attempts     int  NOT NULL DEFAULT 0,
	max_attempts int  NOT NULL DEFAULT 3,
	locked_by    text,
	locked_at    timestamptz,
	last_error   text,
	created_at   timestamptz NOT NULL DEFAULT now(),
	updated_at   timestamptz NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS document_jobs_active_uniq
	ON document_jobs (document_id, job_type)
	WHERE status IN ('pending', 'processing');
`

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, testSchema)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `DELETE FROM document_jobs`)
	require.NoError(t, err)
	return pool
}

func TestEnqueue_ActiveUniqueness(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)
	ctx := context.Background()
	docID := uuid.New()

	first, err := repo.Enqueue(ctx, docID, constants.JobTypeExtraction, 3)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusPending), first.Status)
	assert.Equal(t, 0, first.Attempts)

	// a second active job of the same type is rejected
	_, err = repo.Enqueue(ctx, docID, constants.JobTypeExtraction, 3)
	assert.ErrorIs(t, err, ErrJobAlreadyActive)

	// a different type is fine
	_, err = repo.Enqueue(ctx, docID, constants.JobTypeOCR, 3)
	require.NoError(t, err)

	// once the first is terminal, the same type can be enqueued again
	claimed, err := repo.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	_, err = repo.Complete(ctx, claimed.ID)
	require.NoError(t, err)

	if claimed.JobType == string(constants.JobTypeExtraction) {
		_, err = repo.Enqueue(ctx, docID, constants.JobTypeExtraction, 3)
		require.NoError(t, err)
	}
}

func TestClaimNext_OldestFirstAndAttempts(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)
	ctx := context.Background()

	older, err := repo.Enqueue(ctx, uuid.New(), constants.JobTypeExtraction, 3)
	require.NoError(t, err)
	// force a strictly older created_at; enqueues inside one test can land
	// on the same clock reading
	_, err = pool.Exec(ctx, `UPDATE document_jobs SET created_at = created_at - interval '1 minute' WHERE id = $1`, older.ID)
	require.NoError(t, err)
	_, err = repo.Enqueue(ctx, uuid.New(), constants.JobTypeExtraction, 3)
	require.NoError(t, err)

	claimed, err := repo.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, older.ID, claimed.ID)
	assert.Equal(t, string(constants.JobStatusProcessing), claimed.Status)
	assert.Equal(t, 1, claimed.Attempts)
	require.NotNil(t, claimed.LockedBy)
	assert.Equal(t, "w1", *claimed.LockedBy)
	assert.NotNil(t, claimed.LockedAt)
}

func TestClaimNext_NoEligibleJobs(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)

	job, err := repo.ClaimNext(context.Background(), "w1", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestClaimNext_ConcurrentClaimersGetDistinctJobs(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)
	ctx := context.Background()

	const jobCount = 5
	for i := 0; i < jobCount; i++ {
		_, err := repo.Enqueue(ctx, uuid.New(), constants.JobTypeExtraction, 3)
		require.NoError(t, err)
	}

	var mu sync.Mutex
	claimed := map[uuid.UUID]string{}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			workerID := string(rune('a' + n))
			for {
				job, err := repo.ClaimNext(ctx, workerID, time.Minute)
				if !assert.NoError(t, err) || job == nil {
					return
				}
				mu.Lock()
				prev, dup := claimed[job.ID]
				claimed[job.ID] = workerID
				mu.Unlock()
				assert.False(t, dup, "job %s claimed by both %s and %s", job.ID, prev, workerID)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, claimed, jobCount)
}

func TestClaimNext_ReclaimsExpiredLease(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)
	ctx := context.Background()

	_, err := repo.Enqueue(ctx, uuid.New(), constants.JobTypeExtraction, 3)
	require.NoError(t, err)

	first, err := repo.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, first)

	// within the lease the job is invisible
	none, err := repo.ClaimNext(ctx, "w2", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, none)

	// age the lock past the lease
	_, err = pool.Exec(ctx, `UPDATE document_jobs SET locked_at = locked_at - interval '10 minutes' WHERE id = $1`, first.ID)
	require.NoError(t, err)

	second, err := repo.ClaimNext(ctx, "w2", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Attempts)
	assert.Equal(t, "w2", *second.LockedBy)
}

func TestComplete_Idempotent(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)
	ctx := context.Background()

	_, err := repo.Enqueue(ctx, uuid.New(), constants.JobTypeExtraction, 3)
	require.NoError(t, err)
	job, err := repo.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, job)

	done, err := repo.Complete(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, done)

	// a second complete attempt is a no-op, not an error
	done, err = repo.Complete(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, done)

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), got.Status)
	assert.Nil(t, got.LockedBy)
	assert.Nil(t, got.LockedAt)
}

func TestFail_RetriesThenFailsTerminally(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)
	ctx := context.Background()

	_, err := repo.Enqueue(ctx, uuid.New(), constants.JobTypeExtraction, 2)
	require.NoError(t, err)

	// attempt 1 fails -> back to pending
	job, err := repo.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, job)
	status, err := repo.Fail(ctx, job.ID, "boom one")
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusPending, status)

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastError)
	assert.Equal(t, "boom one", *got.LastError)
	assert.Nil(t, got.LockedBy)

	// attempt 2 fails -> attempts reached max_attempts -> failed
	job, err = repo.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, 2, job.Attempts)
	status, err = repo.Fail(ctx, job.ID, "boom two")
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, status)

	// failing a terminal job reports the stored status without mutating
	status, err = repo.Fail(ctx, job.ID, "boom three")
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, status)
	got, err = repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "boom two", *got.LastError)

	// terminal jobs are never claimable
	none, err := repo.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestReclaimOrphans(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)
	ctx := context.Background()

	_, err := repo.Enqueue(ctx, uuid.New(), constants.JobTypeExtraction, 3)
	require.NoError(t, err)
	job, err := repo.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, job)

	// a healthy lock is left alone
	n, err := repo.ReclaimOrphans(ctx, time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = pool.Exec(ctx, `UPDATE document_jobs SET locked_at = locked_at - interval '10 minutes' WHERE id = $1`, job.ID)
	require.NoError(t, err)

	n, err = repo.ReclaimOrphans(ctx, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusPending), got.Status)
	assert.Nil(t, got.LockedBy)
}

func TestListJobs_Filters(t *testing.T) {
	pool := testPool(t)
	repo := NewDocumentJobRepository(pool, nil)
	ctx := context.Background()
	docID := uuid.New()

	_, err := repo.Enqueue(ctx, docID, constants.JobTypeExtraction, 3)
	require.NoError(t, err)
	_, err = repo.Enqueue(ctx, uuid.New(), constants.JobTypeExtraction, 3)
	require.NoError(t, err)

	all, err := repo.ListJobs(ctx, JobFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byDoc, err := repo.ListJobs(ctx, JobFilter{DocumentID: &docID})
	require.NoError(t, err)
	require.Len(t, byDoc, 1)
	assert.Equal(t, docID, byDoc[0].DocumentID)

	pending, err := repo.ListJobs(ctx, JobFilter{Statuses: []constants.JobStatus{constants.JobStatusPending}})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	completed, err := repo.ListJobs(ctx, JobFilter{Statuses: []constants.JobStatus{constants.JobStatusCompleted}})
	require.NoError(t, err)
	assert.Empty(t, completed)

	limited, err := repo.ListJobs(ctx, JobFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
