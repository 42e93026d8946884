package extract

import (
	"fmt"
	"strings"
	"time"
)

// DerivedEntry is one derived representation stored in derived_content,
// keyed by representation name and pointing back at the ocr_versions entry it
// was computed from.
type DerivedEntry struct {
	SourceVersion string    `json:"source_version"`
	Format        string    `json:"format"`
	Content       string    `json:"content"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// RenderMarkdown produces a plain markdown rendering of extracted pages:
// a title followed by one section per page.
func RenderMarkdown(title string, pages []Page) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n")
	for _, p := range pages {
		sb.WriteString(fmt.Sprintf("\n## Page %d\n\n", p.PageNumber))
		sb.WriteString(strings.TrimRight(p.Text, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}
