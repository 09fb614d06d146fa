package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultApiHost = "http://127.0.0.1:8000/api/"

type Config struct {
	Env            string        `env:"SOCIALNET_ENV"             envDefault:"production"`
	ApiHost        string        `env:"SOCIALNET_API_HOST"        envDefault:"http://127.0.0.1:8000/api/"`
	HomeDir        string        `env:"SOCIALNET_HOME"`
	RequestTimeout time.Duration `env:"SOCIALNET_REQUEST_TIMEOUT" envDefault:"30s"`
	UploadTimeout  time.Duration `env:"SOCIALNET_UPLOAD_TIMEOUT"  envDefault:"5m"`
	LogMaxSizeMB   int           `env:"SOCIALNET_LOG_MAX_SIZE_MB" envDefault:"10"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ApiHost == "" {
		cfg.ApiHost = DefaultApiHost
	}
	// paths are resolved relative to the base endpoint
	if !strings.HasSuffix(cfg.ApiHost, "/") {
		cfg.ApiHost += "/"
	}

	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("SOCIALNET_REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.UploadTimeout <= 0 {
		return nil, fmt.Errorf("SOCIALNET_UPLOAD_TIMEOUT must be positive, got %s", cfg.UploadTimeout)
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
