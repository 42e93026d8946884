package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDocumentCreate_RejectsUnsupportedExtension(t *testing.T) {
	err := runDocumentCreate(documentCreateCmd, []string{"notes.docx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported file extension "docx"`)
}

func TestRunDocumentCreate_MissingFile(t *testing.T) {
	err := runDocumentCreate(documentCreateCmd, []string{filepath.Join(t.TempDir(), "gone.pdf")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read file")
}

func TestRunDocumentCreate_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	documentStorageRoot = filepath.Join(dir, "blobs")
	t.Cleanup(func() { documentStorageRoot = "" })

	err := runDocumentCreate(documentCreateCmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}
