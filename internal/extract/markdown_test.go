package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	pages := []Page{
		{PageNumber: 1, Text: "intro text\n"},
		{PageNumber: 2, Text: "details"},
	}
	md := RenderMarkdown("report.pdf", pages)

	assert.Equal(t, "# report.pdf\n\n## Page 1\n\nintro text\n\n## Page 2\n\ndetails\n", md)
}

func TestRenderMarkdown_NoPages(t *testing.T) {
	assert.Equal(t, "# empty.pdf\n", RenderMarkdown("empty.pdf", nil))
}
