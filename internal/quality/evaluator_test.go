package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readlee/doc-extractor/internal/extract"
)

func result(chars, whitespace, pages int) extract.Result {
	return extract.Result{
		Metrics: extract.Metrics{
			TotalPages:      pages,
			CharCount:       chars,
			WhitespaceCount: whitespace,
		},
	}
}

func TestEvaluator_IsSufficient(t *testing.T) {
	ev := NewEvaluator(DefaultConfig(), nil)

	t.Run("dense single page passes", func(t *testing.T) {
		// 600 chars, 30% whitespace: floor is max(500, 50*1) = 500
		assert.True(t, ev.IsSufficient(result(600, 180, 1)))
	})

	t.Run("below absolute floor", func(t *testing.T) {
		assert.False(t, ev.IsSufficient(result(400, 40, 1)))
	})

	t.Run("empty result", func(t *testing.T) {
		assert.False(t, ev.IsSufficient(result(0, 0, 3)))
	})

	t.Run("per page floor dominates for long documents", func(t *testing.T) {
		// 100 pages raises the floor to 5000; 4999 dense chars must fail
		assert.False(t, ev.IsSufficient(result(4999, 100, 100)))
		assert.True(t, ev.IsSufficient(result(5000, 100, 100)))
	})

	t.Run("exact floor is accepted", func(t *testing.T) {
		assert.True(t, ev.IsSufficient(result(500, 50, 1)))
	})

	t.Run("whitespace padding rejected", func(t *testing.T) {
		// 10000 chars but half whitespace: density 0.5 does not exceed 0.5
		assert.False(t, ev.IsSufficient(result(10000, 5000, 1)))
		// just above the threshold passes
		assert.True(t, ev.IsSufficient(result(10000, 4999, 1)))
	})
}

func TestEvaluator_CustomThresholds(t *testing.T) {
	ev := NewEvaluator(Config{MinCharCount: 10, CharsPerPage: 2, MinDensity: 0.1}, nil)

	assert.True(t, ev.IsSufficient(result(10, 0, 1)))
	assert.False(t, ev.IsSufficient(result(9, 0, 1)))

	// 20 pages raises the floor to 40
	assert.False(t, ev.IsSufficient(result(30, 0, 20)))
	assert.True(t, ev.IsSufficient(result(40, 0, 20)))
}

func TestEvaluator_ZeroConfigFallsBackToDefaults(t *testing.T) {
	ev := NewEvaluator(Config{}, nil)

	text := strings.Repeat("lorem ipsum ", 100) // 1200 chars, ~17% whitespace
	r := result(len(text), 200, 1)
	assert.True(t, ev.IsSufficient(r))
	assert.False(t, ev.IsSufficient(result(100, 0, 1)))
}
