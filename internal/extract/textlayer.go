package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/readlee/doc-extractor/constants"
)

// TextLayerEngine is the cheap, exact tier: it reads the text layer a
// born-digital PDF already carries, or passes plain text through. It never
// rasterizes; scanned documents come back near-empty and are routed to the
// OCR tier by the quality gate.
type TextLayerEngine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewTextLayerEngine(cfg Config, logger *slog.Logger) *TextLayerEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextLayerEngine{cfg: cfg.withDefaults(), runner: execRunner{}, logger: logger}
}

func (e *TextLayerEngine) Name() string    { return "textlayer" }
func (e *TextLayerEngine) Version() string { return "1" }

func (e *TextLayerEngine) Extract(ctx context.Context, blob []byte, fileExt string) (Result, error) {
	start := time.Now()
	format := constants.MapExtToFormat(fileExt)
	e.logger.Debug("starting text-layer extraction", "ext", fileExt, "format", format, "bytes", len(blob))

	switch format {
	case constants.PDF:
		return e.extractPDF(ctx, blob, start)
	case constants.TXT:
		pages := []Page{{PageNumber: 1, Text: string(blob)}}
		return finishResult(pages, "txt", time.Since(start).Milliseconds(), nil), nil
	default:
		return Result{}, fmt.Errorf("text-layer extraction does not support format %q", format)
	}
}

func (e *TextLayerEngine) extractPDF(ctx context.Context, blob []byte, start time.Time) (Result, error) {
	path, cleanup, err := writeTempBlob(blob, "pdf")
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{Warnings: []string{string(errb)}}, fmt.Errorf("pdftotext: %w", err)
	}

	// A form-feed \f is used as page separator by default
	raw := strings.Split(string(out), "\f")
	if n := len(raw); n > 1 && raw[n-1] == "" {
		raw = raw[:n-1] // trailing separator after the last page
	}
	if e.cfg.MaxPages > 0 && len(raw) > e.cfg.MaxPages {
		raw = raw[:e.cfg.MaxPages]
	}
	pages := make([]Page, len(raw))
	for i, text := range raw {
		pages[i] = Page{PageNumber: i + 1, Text: text}
	}
	return finishResult(pages, "pdf-text", time.Since(start).Milliseconds(), nil), nil
}
