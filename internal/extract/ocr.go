package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/readlee/doc-extractor/constants"
)

// OCREngine is the expensive, probabilistic tier: it rasterizes PDF pages and
// runs tesseract over each page image. Images are OCRed directly.
type OCREngine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewOCREngine(cfg Config, logger *slog.Logger) *OCREngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCREngine{cfg: cfg.withDefaults(), runner: execRunner{}, logger: logger}
}

func (e *OCREngine) Name() string    { return "tesseract" }
func (e *OCREngine) Version() string { return "5" }

func (e *OCREngine) Extract(ctx context.Context, blob []byte, fileExt string) (Result, error) {
	start := time.Now()
	format := constants.MapExtToFormat(fileExt)
	e.logger.Debug("starting ocr extraction", "ext", fileExt, "format", format, "bytes", len(blob))

	switch format {
	case constants.PDF:
		return e.extractPDF(ctx, blob, start)
	case constants.IMAGE:
		path, cleanup, err := writeTempBlob(blob, fileExt)
		if err != nil {
			return Result{}, err
		}
		defer cleanup()
		page, warns, err := e.ocrPage(ctx, path, 1)
		if err != nil {
			return Result{Warnings: warns}, err
		}
		return finishResult([]Page{page}, "image-ocr", time.Since(start).Milliseconds(), warns), nil
	default:
		return Result{}, fmt.Errorf("ocr extraction does not support format %q", format)
	}
}

func (e *OCREngine) extractPDF(ctx context.Context, blob []byte, start time.Time) (Result, error) {
	path, cleanup, err := writeTempBlob(blob, "pdf")
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	tmpDir, err := os.MkdirTemp("", "dx-pp-*")
	if err != nil {
		return Result{}, fmt.Errorf("create raster dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove raster dir", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return Result{Warnings: []string{string(errb)}}, fmt.Errorf("pdftoppm: %w", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	var warns []string
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		warns = append(warns, fmt.Sprintf("truncated to first %d of %d pages", e.cfg.MaxPages, len(matches)))
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return Result{Warnings: []string{"pdftoppm produced no images"}}, fmt.Errorf("no pages rendered")
	}

	pages := make([]Page, 0, len(matches))
	for i, img := range matches {
		page, w, err := e.ocrPage(ctx, img, i+1)
		warns = append(warns, w...)
		if err != nil {
			return Result{Warnings: warns}, fmt.Errorf("ocr page %d: %w", i+1, err)
		}
		pages = append(pages, page)
	}
	return finishResult(pages, "pdf-ocr", time.Since(start).Milliseconds(), warns), nil
}

// ocrPage runs tesseract over one image and estimates a confidence for the
// decoded text.
func (e *OCREngine) ocrPage(ctx context.Context, imgPath string, pageNumber int) (Page, []string, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, imgPath, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return Page{}, []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	text := string(out)
	var warns []string
	if msg := strings.TrimSpace(string(errb)); msg != "" && !strings.HasPrefix(msg, "Estimating") {
		warns = append(warns, truncate(msg, 512))
	}
	return Page{
		PageNumber: pageNumber,
		Text:       text,
		Confidence: heuristicConfidence(text),
	}, warns, nil
}

// heuristicConfidence scores decoded text on cheap structural signals: word
// density, average word length in a plausible range, and the share of
// alphanumeric runes.
func heuristicConfidence(txt string) float32 {
	trimmed := strings.TrimSpace(txt)
	if trimmed == "" {
		return 0
	}
	words := strings.Fields(trimmed)
	score := float32(0.2) // base
	if len(words) > 20 {
		score += 0.2
	}
	if avg := float64(len(trimmed)) / float64(len(words)); avg > 3 && avg < 12 {
		score += 0.2
	}
	alnum := 0
	for _, r := range trimmed {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			alnum++
		}
	}
	if float64(alnum)/float64(len([]rune(trimmed))) > 0.6 {
		score += 0.3
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
