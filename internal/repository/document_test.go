package repository

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readlee/doc-extractor/constants"
)

// These tests exercise the document state machine and JSONB merges against a
// real Postgres. Set TEST_DATABASE_URL to run them.
const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id              uuid PRIMARY KEY,
	status          text NOT NULL DEFAULT 'uploading',
	storage_key     text NOT NULL,
	filename        text NOT NULL,
	file_ext        text NOT NULL,
	file_size       int  NOT NULL DEFAULT 0,
	content_hash    text,
	page_count      int,
	error_message   text,
	metadata        jsonb,
	ocr_versions    jsonb,
	derived_content jsonb,
	created_at      timestamptz NOT NULL DEFAULT now(),
	updated_at      timestamptz NOT NULL DEFAULT now(),
	deleted_at      timestamptz
);
`

func testDocumentRepo(t *testing.T) DocumentRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}

	ctx := context.Background()
	entc, pool, err := Open(ctx, Config{DSN: dsn, DialTimeout: 3 * time.Second}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { Close(entc, pool, nil) })

	_, err = pool.Exec(ctx, documentsSchema)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `DELETE FROM documents`)
	require.NoError(t, err)
	return NewDocumentRepository(entc, pool, nil)
}

func createTestDocument(t *testing.T, repo DocumentRepository) uuid.UUID {
	t.Helper()
	doc, err := repo.Create(context.Background(), CreateDocumentRequest{
		StorageKey: "2026/08/" + uuid.NewString() + ".pdf",
		Filename:   "report.pdf",
		FileExt:    "pdf",
		FileSize:   2048,
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentStatusUploading), doc.Status)
	return doc.ID
}

func documentStatus(t *testing.T, repo DocumentRepository, id uuid.UUID) string {
	t.Helper()
	doc, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return doc.Status
}

func TestDocumentTransitions_ForwardOnly(t *testing.T) {
	repo := testDocumentRepo(t)
	ctx := context.Background()
	id := createTestDocument(t, repo)

	// processing is unreachable straight from uploading
	require.NoError(t, repo.MarkProcessing(ctx, id))
	assert.Equal(t, string(constants.DocumentStatusUploading), documentStatus(t, repo, id))

	require.NoError(t, repo.MarkUploaded(ctx, id))
	assert.Equal(t, string(constants.DocumentStatusUploaded), documentStatus(t, repo, id))

	require.NoError(t, repo.MarkProcessing(ctx, id))
	require.NoError(t, repo.MarkReady(ctx, id))
	assert.Equal(t, string(constants.DocumentStatusReady), documentStatus(t, repo, id))

	// a ready document never moves back to pending_ocr or processing
	require.NoError(t, repo.MarkPendingOCR(ctx, id))
	assert.Equal(t, string(constants.DocumentStatusReady), documentStatus(t, repo, id))
	require.NoError(t, repo.MarkProcessing(ctx, id))
	assert.Equal(t, string(constants.DocumentStatusReady), documentStatus(t, repo, id))
}

func TestMarkReady_Idempotent(t *testing.T) {
	repo := testDocumentRepo(t)
	ctx := context.Background()
	id := createTestDocument(t, repo)

	require.NoError(t, repo.MarkUploaded(ctx, id))
	require.NoError(t, repo.MarkProcessing(ctx, id))
	require.NoError(t, repo.MarkReady(ctx, id))

	// duplicate completion from a reclaimed-then-original worker race
	require.NoError(t, repo.MarkReady(ctx, id))
	assert.Equal(t, string(constants.DocumentStatusReady), documentStatus(t, repo, id))
}

func TestMarkPendingOCR_SignalsEscalation(t *testing.T) {
	repo := testDocumentRepo(t)
	ctx := context.Background()
	id := createTestDocument(t, repo)

	require.NoError(t, repo.MarkUploaded(ctx, id))
	require.NoError(t, repo.MarkProcessing(ctx, id))
	require.NoError(t, repo.MarkPendingOCR(ctx, id))
	assert.Equal(t, string(constants.DocumentStatusPendingOCR), documentStatus(t, repo, id))

	// the OCR tier re-enters processing from pending_ocr
	require.NoError(t, repo.MarkProcessing(ctx, id))
	assert.Equal(t, string(constants.DocumentStatusProcessing), documentStatus(t, repo, id))
}

func TestMarkExtractionError_TerminalStates(t *testing.T) {
	repo := testDocumentRepo(t)
	ctx := context.Background()

	plain := createTestDocument(t, repo)
	require.NoError(t, repo.MarkUploaded(ctx, plain))
	require.NoError(t, repo.MarkProcessing(ctx, plain))
	require.NoError(t, repo.MarkExtractionError(ctx, plain, constants.JobTypeExtraction, "pdftotext exited 1"))
	doc, err := repo.GetByID(ctx, plain)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentStatusError), doc.Status)
	require.NotNil(t, doc.ErrorMessage)
	assert.Equal(t, "pdftotext exited 1", *doc.ErrorMessage)

	scanned := createTestDocument(t, repo)
	require.NoError(t, repo.MarkUploaded(ctx, scanned))
	require.NoError(t, repo.MarkProcessing(ctx, scanned))
	require.NoError(t, repo.MarkExtractionError(ctx, scanned, constants.JobTypeOCR, "no text recognized"))
	assert.Equal(t, string(constants.DocumentStatusOCRFailed), documentStatus(t, repo, scanned))

	// the terminal state does not leak into other documents' transitions
	require.NoError(t, repo.MarkReady(ctx, scanned))
	assert.Equal(t, string(constants.DocumentStatusOCRFailed), documentStatus(t, repo, scanned))
}

func TestAppendOCRVersion_MergesNotOverwrites(t *testing.T) {
	repo := testDocumentRepo(t)
	ctx := context.Background()
	id := createTestDocument(t, repo)

	first := json.RawMessage(`{"engine":"textlayer","char_count":120}`)
	second := json.RawMessage(`{"engine":"tesseract","char_count":900}`)

	require.NoError(t, repo.AppendOCRVersion(ctx, id, "textlayer_1_v1_20260830T100000.000", first, 2))
	require.NoError(t, repo.AppendOCRVersion(ctx, id, "tesseract_5_v1_20260830T101500.000", second, 2))

	doc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"textlayer_1_v1_20260830T100000.000",
		"tesseract_5_v1_20260830T101500.000",
	}, doc.VersionKeys())
	require.NotNil(t, doc.PageCount)
	assert.Equal(t, 2, *doc.PageCount)

	// the earlier entry survives the later merge intact
	var versions map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc.OCRVersions, &versions))
	assert.JSONEq(t, string(first), string(versions["textlayer_1_v1_20260830T100000.000"]))

	// appending to an unknown document is an error, not a silent no-op
	err = repo.AppendOCRVersion(ctx, uuid.New(), "tesseract_5_v1_20260830T102000.000", second, 1)
	assert.Error(t, err)
}

func TestSetDerivedContent_MergesByName(t *testing.T) {
	repo := testDocumentRepo(t)
	ctx := context.Background()
	id := createTestDocument(t, repo)

	md := json.RawMessage(`{"source_version":"textlayer_1_v1_20260830T100000.000","content":"# report"}`)
	txt := json.RawMessage(`{"source_version":"textlayer_1_v1_20260830T100000.000","content":"report"}`)

	require.NoError(t, repo.SetDerivedContent(ctx, id, "markdown", md))
	require.NoError(t, repo.SetDerivedContent(ctx, id, "plaintext", txt))

	doc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"markdown", "plaintext"}, doc.DerivedKeys())

	// re-deriving under the same name replaces only that entry
	md2 := json.RawMessage(`{"source_version":"tesseract_5_v1_20260830T101500.000","content":"# report v2"}`)
	require.NoError(t, repo.SetDerivedContent(ctx, id, "markdown", md2))
	doc, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	var derived map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc.DerivedContent, &derived))
	assert.JSONEq(t, string(md2), string(derived["markdown"]))
	assert.JSONEq(t, string(txt), string(derived["plaintext"]))
}
