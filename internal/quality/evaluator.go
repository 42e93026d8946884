package quality

import (
	"log/slog"

	"github.com/readlee/doc-extractor/internal/extract"
)

// Config holds the acceptance thresholds. All three come from configuration;
// none are hard-coded at call sites.
type Config struct {
	// MinCharCount is the absolute character floor.
	MinCharCount int
	// CharsPerPage scales the floor with document length, so a large
	// document with content on only its first page is not accepted on the
	// strength of that page alone.
	CharsPerPage int
	// MinDensity is the minimum non-whitespace share of extracted text. A
	// genuine text layer sits far above it; metadata-only extraction does not.
	MinDensity float64
}

// DefaultConfig mirrors the documented defaults: 500-char floor, 50 chars per
// page, and a majority of non-whitespace content.
func DefaultConfig() Config {
	return Config{MinCharCount: 500, CharsPerPage: 50, MinDensity: 0.5}
}

// Evaluator is the gate between extraction tiers: it decides whether a result
// is usable or must escalate to a costlier method.
type Evaluator struct {
	cfg    Config
	logger *slog.Logger
}

func NewEvaluator(cfg Config, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinCharCount == 0 && cfg.CharsPerPage == 0 && cfg.MinDensity == 0 {
		cfg = DefaultConfig()
	}
	return &Evaluator{cfg: cfg, logger: logger}
}

// IsSufficient accepts a result when charCount >= max(MinCharCount,
// CharsPerPage*totalPages) and the non-whitespace ratio exceeds MinDensity.
func (e *Evaluator) IsSufficient(res extract.Result) bool {
	floor := e.cfg.MinCharCount
	if scaled := e.cfg.CharsPerPage * res.Metrics.TotalPages; scaled > floor {
		floor = scaled
	}
	chars := res.Metrics.CharCount
	if chars == 0 {
		return false
	}
	if chars < floor {
		e.logger.Debug("quality rejected: below char floor",
			"char_count", chars, "floor", floor, "total_pages", res.Metrics.TotalPages)
		return false
	}
	density := float64(chars-res.Metrics.WhitespaceCount) / float64(chars)
	if density <= e.cfg.MinDensity {
		e.logger.Debug("quality rejected: low density",
			"char_count", chars, "density", density, "min_density", e.cfg.MinDensity)
		return false
	}
	return true
}
