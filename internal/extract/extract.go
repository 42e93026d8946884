package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/readlee/doc-extractor/constants"
)

// Page is one page of extracted content.
type Page struct {
	PageNumber int     `json:"page_number"`
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence,omitempty"`
}

// Metrics are aggregate measurements over one extraction run.
type Metrics struct {
	TotalPages      int    `json:"total_pages"`
	CharCount       int    `json:"char_count"`
	WhitespaceCount int    `json:"whitespace_count"`
	RuntimeMs       int64  `json:"runtime_ms"`
	Method          string `json:"method"` // "pdf-text" | "txt" | "pdf-ocr" | "image-ocr"
}

// Result is the output of one engine run over one document blob.
type Result struct {
	Pages    []Page   `json:"pages"`
	DocText  string   `json:"doc_text"`
	Metrics  Metrics  `json:"metrics"`
	Warnings []string `json:"warnings,omitempty"`
}

// Engine is a pluggable extraction strategy. Engines are pure with respect to
// the store: bytes in, result out.
type Engine interface {
	Name() string
	Version() string
	Extract(ctx context.Context, blob []byte, fileExt string) (Result, error)
}

// Config holds extraction tooling settings.
type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit
}

func (c Config) withDefaults() Config {
	if c.Pdftotext == "" {
		c.Pdftotext = "pdftotext"
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.TesseractLang == "" {
		c.TesseractLang = "eng"
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	return c
}

// finishResult fills in the aggregate fields derived from pages.
func finishResult(pages []Page, method string, runtimeMs int64, warnings []string) Result {
	var sb strings.Builder
	for i, p := range pages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(p.Text)
	}
	doc := sb.String()
	return Result{
		Pages:   pages,
		DocText: doc,
		Metrics: Metrics{
			TotalPages:      len(pages),
			CharCount:       len([]rune(doc)),
			WhitespaceCount: countWhitespace(doc),
			RuntimeMs:       runtimeMs,
			Method:          method,
		},
		Warnings: warnings,
	}
}

func countWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// writeTempBlob spills a blob to a temp file so external tools can read it.
// Callers must invoke the returned cleanup.
func writeTempBlob(blob []byte, ext string) (string, func(), error) {
	ext = constants.NormalizeExt(ext)
	f, err := os.CreateTemp("", "dx-blob-*."+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create temp blob: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(blob); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp blob: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp blob: %w", err)
	}
	return path, cleanup, nil
}
