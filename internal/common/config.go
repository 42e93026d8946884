package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Worker   WorkerConfig
	Storage  StorageConfig
	Extract  ExtractConfig
	Quality  QualityConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// WorkerConfig holds worker loop configuration
type WorkerConfig struct {
	// WorkerID identifies the lock owner for claimed jobs. With
	// Concurrency > 1 each loop derives "<WorkerID>#<n>".
	WorkerID        string
	Concurrency     int
	PollInterval    time.Duration
	LeaseDuration   time.Duration
	MaxAttempts     int
	PipelineVersion string
}

// StorageConfig holds object-store configuration
type StorageConfig struct {
	Root string
}

// ExtractConfig holds extraction tooling configuration
type ExtractConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
}

// QualityConfig holds the quality-gate thresholds. These are configuration,
// not constants: all three are overridable through the environment.
type QualityConfig struct {
	MinCharCount int
	CharsPerPage int
	MinDensity   float64
}

// LoadConfig loads configuration from environment variables. If envFile is
// non-empty and exists, it is loaded first (existing env vars win).
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	hostname, _ := os.Hostname()
	defaultWorkerID := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Worker: WorkerConfig{
			WorkerID:        getEnv("WORKER_ID", defaultWorkerID),
			Concurrency:     getEnvAsInt("WORKER_CONCURRENCY", 1),
			PollInterval:    time.Duration(getEnvAsInt("POLL_INTERVAL_SECONDS", 5)) * time.Second,
			LeaseDuration:   time.Duration(getEnvAsInt("LEASE_DURATION_SECONDS", 600)) * time.Second,
			MaxAttempts:     getEnvAsInt("MAX_ATTEMPTS", 3),
			PipelineVersion: getEnv("PIPELINE_VERSION", "v1"),
		},
		Storage: StorageConfig{
			Root: getEnv("STORAGE_ROOT", "./data"),
		},
		Extract: ExtractConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Quality: QualityConfig{
			MinCharCount: getEnvAsInt("QUALITY_MIN_CHARS", 500),
			CharsPerPage: getEnvAsInt("QUALITY_CHARS_PER_PAGE", 50),
			MinDensity:   getEnvAsFloat64("QUALITY_MIN_DENSITY", 0.5),
		},
	}, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Worker.WorkerID == "" {
		return NewAppError("CONFIG_ERROR", "WORKER_ID is required", ErrInvalidInput)
	}
	if c.Worker.Concurrency < 1 {
		return NewAppError("CONFIG_ERROR", "WORKER_CONCURRENCY must be >= 1", ErrInvalidInput)
	}
	if c.Worker.PollInterval < time.Second {
		return NewAppError("CONFIG_ERROR", "POLL_INTERVAL_SECONDS must be >= 1", ErrInvalidInput)
	}
	if c.Worker.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "MAX_ATTEMPTS must be >= 1", ErrInvalidInput)
	}
	// the lease substitutes for cancellation: it must comfortably exceed
	// worst-case extraction latency or healthy work gets reclaimed
	if c.Worker.LeaseDuration <= c.Worker.PollInterval {
		return NewAppError("CONFIG_ERROR", "LEASE_DURATION_SECONDS must exceed the poll interval", ErrInvalidInput)
	}
	if c.Quality.MinCharCount < 0 || c.Quality.CharsPerPage < 0 {
		return NewAppError("CONFIG_ERROR", "quality thresholds must be non-negative", ErrInvalidInput)
	}
	if c.Quality.MinDensity < 0 || c.Quality.MinDensity > 1 {
		return NewAppError("CONFIG_ERROR", "QUALITY_MIN_DENSITY must be within [0,1]", ErrInvalidInput)
	}
	return nil
}
