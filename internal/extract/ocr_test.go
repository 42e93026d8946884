package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rasterRunner fakes the pdftoppm/tesseract pair: pdftoppm drops page images
// at the requested prefix, tesseract returns text derived from the image name.
type rasterRunner struct {
	pageCount    int
	tesseractErr error
}

func (r *rasterRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if strings.Contains(name, "pdftoppm") {
		prefix := args[len(args)-1]
		for i := 1; i <= r.pageCount; i++ {
			path := prefix + "-" + string(rune('0'+i)) + ".png"
			if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	if r.tesseractErr != nil {
		return nil, []byte("tesseract blew up"), r.tesseractErr
	}
	img := filepath.Base(args[0])
	return []byte("decoded text from " + img), nil, nil
}

func TestOCREngine_PDF(t *testing.T) {
	e := NewOCREngine(Config{DPI: 150}, nil)
	e.runner = &rasterRunner{pageCount: 3}

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	require.NoError(t, err)

	require.Len(t, res.Pages, 3)
	assert.Equal(t, "pdf-ocr", res.Metrics.Method)
	for i, p := range res.Pages {
		assert.Equal(t, i+1, p.PageNumber)
		assert.Contains(t, p.Text, "decoded text from page-")
		assert.Greater(t, p.Confidence, float32(0))
	}
}

func TestOCREngine_PDFMaxPages(t *testing.T) {
	e := NewOCREngine(Config{MaxPages: 1}, nil)
	e.runner = &rasterRunner{pageCount: 3}

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Metrics.TotalPages)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "truncated")
}

func TestOCREngine_PDFNoPagesRendered(t *testing.T) {
	e := NewOCREngine(Config{}, nil)
	e.runner = &rasterRunner{pageCount: 0}

	_, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	assert.Error(t, err)
}

func TestOCREngine_Image(t *testing.T) {
	e := NewOCREngine(Config{}, nil)
	e.runner = &rasterRunner{}

	res, err := e.Extract(context.Background(), []byte{0x89, 0x50}, "png")
	require.NoError(t, err)

	require.Len(t, res.Pages, 1)
	assert.Equal(t, "image-ocr", res.Metrics.Method)
	assert.Equal(t, 1, res.Pages[0].PageNumber)
	assert.Contains(t, res.Pages[0].Text, "decoded text")
}

func TestOCREngine_TesseractFailure(t *testing.T) {
	cause := errors.New("exit status 1")
	e := NewOCREngine(Config{}, nil)
	e.runner = &rasterRunner{pageCount: 1, tesseractErr: cause}

	_, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestOCREngine_UnsupportedFormat(t *testing.T) {
	e := NewOCREngine(Config{}, nil)
	e.runner = &rasterRunner{}

	_, err := e.Extract(context.Background(), []byte("hello"), "txt")
	assert.Error(t, err)
}
