package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readlee/doc-extractor/constants"
	"github.com/readlee/doc-extractor/internal/entity"
	"github.com/readlee/doc-extractor/internal/extract"
	"github.com/readlee/doc-extractor/internal/quality"
)

type stubJobStore struct {
	failStatus constants.JobStatus
	failErr    error

	completed []uuid.UUID
	failures  []string
}

func (s *stubJobStore) ClaimNext(context.Context, string, time.Duration) (*entity.DocumentJob, error) {
	return nil, nil
}

func (s *stubJobStore) Complete(_ context.Context, jobID uuid.UUID) (bool, error) {
	s.completed = append(s.completed, jobID)
	return true, nil
}

func (s *stubJobStore) Fail(_ context.Context, _ uuid.UUID, message string) (constants.JobStatus, error) {
	s.failures = append(s.failures, message)
	if s.failErr != nil {
		return "", s.failErr
	}
	if s.failStatus == "" {
		return constants.JobStatusPending, nil
	}
	return s.failStatus, nil
}

type stubDocStore struct {
	doc    *entity.Document
	getErr error

	statuses       []string
	versions       map[string]json.RawMessage
	derived        map[string]json.RawMessage
	docErrors      []string
	markReadyErr   error
	appendErr      error
	setDerivedErr  error
	markProcessErr error
}

func newStubDocStore(doc *entity.Document) *stubDocStore {
	return &stubDocStore{
		doc:      doc,
		versions: map[string]json.RawMessage{},
		derived:  map[string]json.RawMessage{},
	}
}

func (s *stubDocStore) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.doc, nil
}

func (s *stubDocStore) MarkProcessing(context.Context, uuid.UUID) error {
	if s.markProcessErr != nil {
		return s.markProcessErr
	}
	s.statuses = append(s.statuses, string(constants.DocumentStatusProcessing))
	return nil
}

func (s *stubDocStore) MarkReady(context.Context, uuid.UUID) error {
	if s.markReadyErr != nil {
		return s.markReadyErr
	}
	s.statuses = append(s.statuses, string(constants.DocumentStatusReady))
	return nil
}

func (s *stubDocStore) MarkPendingOCR(context.Context, uuid.UUID) error {
	s.statuses = append(s.statuses, string(constants.DocumentStatusPendingOCR))
	return nil
}

func (s *stubDocStore) MarkExtractionError(_ context.Context, _ uuid.UUID, _ constants.JobType, message string) error {
	s.docErrors = append(s.docErrors, message)
	return nil
}

func (s *stubDocStore) AppendOCRVersion(_ context.Context, _ uuid.UUID, key string, payload json.RawMessage, _ int) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.versions[key] = payload
	return nil
}

func (s *stubDocStore) SetDerivedContent(_ context.Context, _ uuid.UUID, name string, entry json.RawMessage) error {
	if s.setDerivedErr != nil {
		return s.setDerivedErr
	}
	s.derived[name] = entry
	return nil
}

type stubBlobStore struct {
	blob []byte
	err  error
}

func (s *stubBlobStore) Get(context.Context, string) ([]byte, error) { return s.blob, s.err }
func (s *stubBlobStore) Put(context.Context, string, []byte) error   { return nil }
func (s *stubBlobStore) Delete(context.Context, string) error        { return nil }

type stubEngine struct {
	name   string
	result extract.Result
	err    error
	calls  int
}

func (e *stubEngine) Name() string    { return e.name }
func (e *stubEngine) Version() string { return "1" }

func (e *stubEngine) Extract(context.Context, []byte, string) (extract.Result, error) {
	e.calls++
	return e.result, e.err
}

func denseResult(method string, pages int) extract.Result {
	var ps []extract.Page
	for i := 1; i <= pages; i++ {
		ps = append(ps, extract.Page{PageNumber: i, Text: strings.Repeat("content ", 100)})
	}
	text := strings.Repeat("content ", 100*pages)
	return extract.Result{
		Pages:   ps,
		DocText: text,
		Metrics: extract.Metrics{
			TotalPages:      pages,
			CharCount:       800 * pages,
			WhitespaceCount: 100 * pages,
			Method:          method,
		},
	}
}

func sparseResult(method string, pages int) extract.Result {
	return extract.Result{
		Pages:   []extract.Page{{PageNumber: 1, Text: "x"}},
		DocText: "x",
		Metrics: extract.Metrics{
			TotalPages:      pages,
			CharCount:       1,
			WhitespaceCount: 0,
			Method:          method,
		},
	}
}

func testDoc(status, ext string) *entity.Document {
	return &entity.Document{
		ID:         uuid.New(),
		Status:     status,
		StorageKey: "docs/a.pdf",
		Filename:   "a.pdf",
		FileExt:    ext,
	}
}

func testJob(docID uuid.UUID, jobType constants.JobType) *entity.DocumentJob {
	return &entity.DocumentJob{
		ID:          uuid.New(),
		DocumentID:  docID,
		JobType:     string(jobType),
		Status:      string(constants.JobStatusProcessing),
		Attempts:    1,
		MaxAttempts: 3,
	}
}

func newTestWorker(jobs *stubJobStore, docs *stubDocStore, text, ocr extract.Engine) *Worker {
	w := New(Config{WorkerID: "w1", PipelineVersion: "v1"},
		jobs, docs, &stubBlobStore{blob: []byte("%PDF-1.4")},
		text, ocr,
		quality.NewEvaluator(quality.DefaultConfig(), nil), nil)
	w.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	}
	return w
}

func TestProcess_SufficientResultMarksReady(t *testing.T) {
	doc := testDoc(string(constants.DocumentStatusUploaded), "pdf")
	docs := newStubDocStore(doc)
	jobs := &stubJobStore{}
	text := &stubEngine{name: "textlayer", result: denseResult("pdf-text", 2)}
	ocr := &stubEngine{name: "tesseract"}
	w := newTestWorker(jobs, docs, text, ocr)

	job := testJob(doc.ID, constants.JobTypeExtraction)
	w.Process(context.Background(), job)

	assert.Equal(t, 1, text.calls)
	assert.Zero(t, ocr.calls)

	assert.Equal(t, []string{"processing", "ready"}, docs.statuses)
	assert.Equal(t, []uuid.UUID{job.ID}, jobs.completed)
	assert.Empty(t, jobs.failures)

	require.Len(t, docs.versions, 1)
	key := "textlayer_1_v1_20260314T092653.589"
	payload, ok := docs.versions[key]
	require.True(t, ok, "expected version key %s, have %v", key, docs.versions)

	var vp extract.VersionPayload
	require.NoError(t, json.Unmarshal(payload, &vp))
	assert.True(t, vp.Sufficient)
	assert.Equal(t, "w1", vp.WorkerID)
	assert.Equal(t, 2, vp.Metrics.TotalPages)

	require.Contains(t, docs.derived, "markdown")
	var de extract.DerivedEntry
	require.NoError(t, json.Unmarshal(docs.derived["markdown"], &de))
	assert.Equal(t, key, de.SourceVersion)
	assert.Contains(t, de.Content, "## Page 1")
}

func TestProcess_InsufficientResultRoutesToOCR(t *testing.T) {
	doc := testDoc(string(constants.DocumentStatusUploaded), "pdf")
	docs := newStubDocStore(doc)
	jobs := &stubJobStore{}
	text := &stubEngine{name: "textlayer", result: sparseResult("pdf-text", 5)}
	w := newTestWorker(jobs, docs, text, &stubEngine{name: "tesseract"})

	job := testJob(doc.ID, constants.JobTypeExtraction)
	w.Process(context.Background(), job)

	// the job itself succeeded; the document waits for the next tier
	assert.Equal(t, []string{"processing", "pending_ocr"}, docs.statuses)
	assert.Equal(t, []uuid.UUID{job.ID}, jobs.completed)

	require.Len(t, docs.versions, 1)
	for _, payload := range docs.versions {
		var vp extract.VersionPayload
		require.NoError(t, json.Unmarshal(payload, &vp))
		assert.False(t, vp.Sufficient)
		require.NotEmpty(t, vp.Warnings)
		assert.Contains(t, vp.Warnings[len(vp.Warnings)-1], "insufficient quality")
	}
	assert.Empty(t, docs.derived)
}

func TestProcess_EngineErrorRequeuesJob(t *testing.T) {
	doc := testDoc(string(constants.DocumentStatusUploaded), "pdf")
	docs := newStubDocStore(doc)
	jobs := &stubJobStore{failStatus: constants.JobStatusPending}
	text := &stubEngine{name: "textlayer", err: errors.New("pdftotext: exit status 1")}
	w := newTestWorker(jobs, docs, text, &stubEngine{name: "tesseract"})

	w.Process(context.Background(), testJob(doc.ID, constants.JobTypeExtraction))

	require.Len(t, jobs.failures, 1)
	assert.Contains(t, jobs.failures[0], "pdftotext")
	assert.Empty(t, jobs.completed)
	// retries remain; the document must not be marked errored yet
	assert.Empty(t, docs.docErrors)
	assert.Empty(t, docs.versions)
}

func TestProcess_ExhaustedRetriesPropagateToDocument(t *testing.T) {
	doc := testDoc(string(constants.DocumentStatusUploaded), "pdf")
	docs := newStubDocStore(doc)
	jobs := &stubJobStore{failStatus: constants.JobStatusFailed}
	text := &stubEngine{name: "textlayer", err: errors.New("pdftotext: exit status 1")}
	w := newTestWorker(jobs, docs, text, &stubEngine{name: "tesseract"})

	w.Process(context.Background(), testJob(doc.ID, constants.JobTypeExtraction))

	require.Len(t, jobs.failures, 1)
	require.Len(t, docs.docErrors, 1)
	assert.Contains(t, docs.docErrors[0], "pdftotext")
}

func TestProcess_BlobFetchFailureFailsJob(t *testing.T) {
	doc := testDoc(string(constants.DocumentStatusUploaded), "pdf")
	docs := newStubDocStore(doc)
	jobs := &stubJobStore{}
	w := New(Config{WorkerID: "w1"}, jobs, docs,
		&stubBlobStore{err: errors.New("blob missing")},
		&stubEngine{name: "textlayer"}, &stubEngine{name: "tesseract"},
		quality.NewEvaluator(quality.DefaultConfig(), nil), nil)

	w.Process(context.Background(), testJob(doc.ID, constants.JobTypeExtraction))

	require.Len(t, jobs.failures, 1)
	assert.Contains(t, jobs.failures[0], "blob missing")
	assert.Empty(t, jobs.completed)
}

func TestProcess_DerivedFailureDoesNotFailJob(t *testing.T) {
	doc := testDoc(string(constants.DocumentStatusUploaded), "pdf")
	docs := newStubDocStore(doc)
	docs.setDerivedErr = errors.New("jsonb merge failed")
	jobs := &stubJobStore{}
	text := &stubEngine{name: "textlayer", result: denseResult("pdf-text", 1)}
	w := newTestWorker(jobs, docs, text, &stubEngine{name: "tesseract"})

	job := testJob(doc.ID, constants.JobTypeExtraction)
	w.Process(context.Background(), job)

	assert.Equal(t, []string{"processing", "ready"}, docs.statuses)
	assert.Equal(t, []uuid.UUID{job.ID}, jobs.completed)
	assert.Empty(t, jobs.failures)
}

func TestSelectEngine(t *testing.T) {
	text := &stubEngine{name: "textlayer"}
	ocr := &stubEngine{name: "tesseract"}
	w := newTestWorker(&stubJobStore{}, newStubDocStore(nil), text, ocr)

	t.Run("extraction job on uploaded pdf uses text layer", func(t *testing.T) {
		doc := testDoc(string(constants.DocumentStatusUploaded), "pdf")
		got := w.selectEngine(testJob(doc.ID, constants.JobTypeExtraction), doc)
		assert.Same(t, extract.Engine(text), got)
	})

	t.Run("ocr job always uses ocr engine", func(t *testing.T) {
		doc := testDoc(string(constants.DocumentStatusUploaded), "pdf")
		got := w.selectEngine(testJob(doc.ID, constants.JobTypeOCR), doc)
		assert.Same(t, extract.Engine(ocr), got)
	})

	t.Run("pending_ocr document escalates even for extraction jobs", func(t *testing.T) {
		doc := testDoc(string(constants.DocumentStatusPendingOCR), "pdf")
		got := w.selectEngine(testJob(doc.ID, constants.JobTypeExtraction), doc)
		assert.Same(t, extract.Engine(ocr), got)
	})

	t.Run("images have no text layer", func(t *testing.T) {
		doc := testDoc(string(constants.DocumentStatusUploaded), "png")
		got := w.selectEngine(testJob(doc.ID, constants.JobTypeExtraction), doc)
		assert.Same(t, extract.Engine(ocr), got)
	})
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	jobs := &stubJobStore{}
	w := New(Config{WorkerID: "w1", PollInterval: 10 * time.Millisecond},
		jobs, newStubDocStore(nil), &stubBlobStore{},
		&stubEngine{name: "textlayer"}, &stubEngine{name: "tesseract"},
		quality.NewEvaluator(quality.DefaultConfig(), nil), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
