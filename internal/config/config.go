// Package config loads application configuration from the environment.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds settings for the upload server. Every field maps to a
// REPORTSHEET_* environment variable.
type Config struct {
	// Addr is the listen address for the upload server.
	Addr string `default:":8080"`
	// ReadTimeout bounds reading a request body.
	ReadTimeout time.Duration `default:"15s" split_words:"true"`
	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration `default:"30s" split_words:"true"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `default:"10s" split_words:"true"`
	// MaxUploadBytes caps the size of an uploaded workbook (default 20MB).
	MaxUploadBytes int64 `default:"20971520" split_words:"true"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `default:"info" split_words:"true"`
	// LogFormat is text or json.
	LogFormat string `default:"text" split_words:"true"`
}

// Load reads configuration from REPORTSHEET_* environment variables,
// reading a .env file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	var cfg Config
	if err := envconfig.Process("reportsheet", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
