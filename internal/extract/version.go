package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// VersionPayload is the immutable record stored under one version key in a
// document's ocr_versions map. Prior payloads are never rewritten: re-running
// the same engine and version produces a new key, never an overwrite.
type VersionPayload struct {
	Engine          string    `json:"engine"`
	EngineVersion   string    `json:"engine_version"`
	PipelineVersion string    `json:"pipeline_version"`
	ExtractedAt     time.Time `json:"extracted_at"`
	WorkerID        string    `json:"worker_id"`
	Pages           []Page    `json:"pages"`
	Metrics         Metrics   `json:"metrics"`
	Warnings        []string  `json:"warnings,omitempty"`
	Sufficient      bool      `json:"sufficient"`
}

// versionTimeLayout gives millisecond precision, which together with the
// engine identity makes keys unique per attempt.
const versionTimeLayout = "20060102T150405.000"

var keyPartSanitizer = regexp.MustCompile(`[^A-Za-z0-9.-]+`)

// VersionKey builds "{engine}_{engine_version}_{pipeline_version}_{timestamp}".
// Underscores delimit the four parts, so they are stripped from each part.
func VersionKey(engine, engineVersion, pipelineVersion string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s_%s",
		sanitizeKeyPart(engine),
		sanitizeKeyPart(engineVersion),
		sanitizeKeyPart(pipelineVersion),
		at.UTC().Format(versionTimeLayout),
	)
}

func sanitizeKeyPart(s string) string {
	s = keyPartSanitizer.ReplaceAllString(strings.TrimSpace(s), "-")
	if s == "" {
		return "unknown"
	}
	return s
}
