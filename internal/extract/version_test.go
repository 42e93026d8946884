package extract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionKey(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	t.Run("format", func(t *testing.T) {
		key := VersionKey("tesseract", "5", "v1", at)
		assert.Equal(t, "tesseract_5_v1_20260314T092653.589", key)
	})

	t.Run("timestamp is normalized to UTC", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		key := VersionKey("textlayer", "1", "v1", at.In(est))
		assert.Equal(t, "textlayer_1_v1_20260314T092653.589", key)
	})

	t.Run("underscores in parts are sanitized", func(t *testing.T) {
		key := VersionKey("my_engine", "5_beta", "v1", at)
		assert.Equal(t, "my-engine_5-beta_v1_20260314T092653.589", key)
	})

	t.Run("empty part becomes placeholder", func(t *testing.T) {
		key := VersionKey("tesseract", "", "v1", at)
		assert.Equal(t, "tesseract_unknown_v1_20260314T092653.589", key)
	})

	t.Run("keys differ across attempts", func(t *testing.T) {
		a := VersionKey("tesseract", "5", "v1", at)
		b := VersionKey("tesseract", "5", "v1", at.Add(time.Millisecond))
		assert.NotEqual(t, a, b)
	})
}

func TestValidateVersionPayload(t *testing.T) {
	payload := VersionPayload{
		Engine:          "textlayer",
		EngineVersion:   "1",
		PipelineVersion: "v1",
		ExtractedAt:     time.Now().UTC(),
		WorkerID:        "worker-a",
		Pages:           []Page{{PageNumber: 1, Text: "hello"}},
		Metrics: Metrics{
			TotalPages: 1,
			CharCount:  5,
			Method:     "pdf-text",
		},
		Sufficient: true,
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NoError(t, ValidateVersionPayload(raw))

	t.Run("missing engine rejected", func(t *testing.T) {
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		delete(m, "engine")
		bad, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Error(t, ValidateVersionPayload(bad))
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		assert.Error(t, ValidateVersionPayload([]byte("{")))
	})
}
