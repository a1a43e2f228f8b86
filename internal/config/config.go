package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the cheque frontend
type Config struct {
	// Server configuration
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	Port     int    `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Backend configuration
	Backend BackendConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// BackendConfig holds the cheque backend connection configuration
type BackendConfig struct {
	URL     string        `env:"BACKEND_URL" envDefault:"http://localhost:8085/cheques"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"5s"`

	// Zero disables the background reachability monitor
	ProbeInterval time.Duration `env:"BACKEND_PROBE_INTERVAL" envDefault:"0s"`
}

// TimeoutConfig holds HTTP server timeout configuration
type TimeoutConfig struct {
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from an optional .env file and environment variables
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is like Load but reads the given dotenv files instead of .env.
// Missing files are skipped; variables already set in the environment win.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.Port)
	}

	// Validate backend config
	if c.Backend.URL == "" {
		return fmt.Errorf("backend URL is required")
	}
	u, err := url.Parse(c.Backend.URL)
	if err != nil {
		return fmt.Errorf("invalid backend URL %q: %w", c.Backend.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend URL %q: scheme must be http or https", c.Backend.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid backend URL %q: missing host", c.Backend.URL)
	}
	// Endpoint paths are appended to the base, so it must end at the path
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid backend URL %q: query and fragment are not allowed", c.Backend.URL)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend timeout must not be negative")
	}
	if c.Backend.ProbeInterval < 0 {
		return fmt.Errorf("backend probe interval must not be negative")
	}

	if c.Timeouts.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
