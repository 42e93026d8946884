package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost:5432/extractor"},
		Worker: WorkerConfig{
			WorkerID:        "host-1",
			Concurrency:     2,
			PollInterval:    5 * time.Second,
			LeaseDuration:   10 * time.Minute,
			MaxAttempts:     3,
			PipelineVersion: "v1",
		},
		Quality: QualityConfig{MinCharCount: 500, CharsPerPage: 50, MinDensity: 0.5},
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/extractor")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/extractor", cfg.Database.DSN)
	assert.Equal(t, 5*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 600*time.Second, cfg.Worker.LeaseDuration)
	assert.Equal(t, 3, cfg.Worker.MaxAttempts)
	assert.Equal(t, "v1", cfg.Worker.PipelineVersion)
	assert.NotEmpty(t, cfg.Worker.WorkerID)
	assert.Equal(t, 500, cfg.Quality.MinCharCount)
	assert.Equal(t, 50, cfg.Quality.CharsPerPage)
	assert.Equal(t, 0.5, cfg.Quality.MinDensity)
	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, "pdftotext", cfg.Extract.Pdftotext)
	assert.Equal(t, 300, cfg.Extract.DPI)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/extractor")
	t.Setenv("POLL_INTERVAL_SECONDS", "2")
	t.Setenv("LEASE_DURATION_SECONDS", "120")
	t.Setenv("MAX_ATTEMPTS", "5")
	t.Setenv("QUALITY_MIN_CHARS", "100")
	t.Setenv("QUALITY_MIN_DENSITY", "0.3")
	t.Setenv("WORKER_CONCURRENCY", "4")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 120*time.Second, cfg.Worker.LeaseDuration)
	assert.Equal(t, 5, cfg.Worker.MaxAttempts)
	assert.Equal(t, 100, cfg.Quality.MinCharCount)
	assert.Equal(t, 0.3, cfg.Quality.MinDensity)
	assert.Equal(t, 4, cfg.Worker.Concurrency)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing dsn", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.DSN = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing worker id", func(t *testing.T) {
		cfg := validConfig()
		cfg.Worker.WorkerID = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero concurrency", func(t *testing.T) {
		cfg := validConfig()
		cfg.Worker.Concurrency = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("lease must exceed poll interval", func(t *testing.T) {
		cfg := validConfig()
		cfg.Worker.LeaseDuration = cfg.Worker.PollInterval
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero max attempts", func(t *testing.T) {
		cfg := validConfig()
		cfg.Worker.MaxAttempts = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("density out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Quality.MinDensity = 1.5
		assert.Error(t, cfg.Validate())
	})
}
