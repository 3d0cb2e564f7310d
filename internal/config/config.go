package config

import (
	"os"
	"strconv"

	"edarec/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Paths     PathConfig
	Annotator AnnotatorConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// PathConfig holds file system paths
type PathConfig struct {
	ResultFile string
}

// AnnotatorConfig holds annotation run settings
type AnnotatorConfig struct {
	Parallelism int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Paths: PathConfig{
			ResultFile: os.Getenv("RESULT_FILE"),
		},
		Annotator: AnnotatorConfig{
			Parallelism: getEnvInt("ANNOTATOR_PARALLELISM", 4),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.Annotator.Parallelism < 1 {
		return errors.ConfigInvalid("ANNOTATOR_PARALLELISM must be >= 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
