// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins Origins `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`

	// MaxBodyBytes caps the size of request bodies.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// Academies holds the trust directory client settings.
	Academies AcademiesAPI `envPrefix:"ACADEMIES_API_"`

	// OTelEndpoint is the OTLP/HTTP collector URL. Tracing is disabled when empty.
	OTelEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`

	// Archive configures where generated exports are copied. Disabled when
	// no bucket is set.
	Archive ExportArchive `envPrefix:"EXPORT_ARCHIVE_"`
}

// AcademiesAPI configures the client for the external trust directory.
type AcademiesAPI struct {
	URL     string        `env:"URL,required,notEmpty"`
	Key     string        `env:"KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// ExportArchive configures the S3 bucket that receives export copies.
type ExportArchive struct {
	Bucket string `env:"BUCKET"`
	Prefix string `env:"PREFIX"`
	Region string `env:"REGION" envDefault:"eu-west-2"`
	// Endpoint selects an S3-compatible service instead of AWS.
	Endpoint string `env:"ENDPOINT"`
}

// Enabled reports whether export archiving is configured.
func (a ExportArchive) Enabled() bool { return a.Bucket != "" }

// Origins is a comma-separated list of CORS origins.
type Origins []string

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Origins) UnmarshalText(text []byte) error {
	*o = splitCSV(string(text))
	return nil
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every required variable that is not set.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
