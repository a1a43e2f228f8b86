package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HOST", "PORT", "LOG_LEVEL",
	"BACKEND_URL", "BACKEND_TIMEOUT", "BACKEND_PROBE_INTERVAL",
	"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8085/cheques", cfg.Backend.URL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Zero(t, cfg.Backend.ProbeInterval)
	assert.Equal(t, 15*time.Second, cfg.Timeouts.ShutdownTimeout)
	assert.Equal(t, "0.0.0.0:5000", cfg.GetHTTPAddr())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("BACKEND_URL", "http://backend:8085/cheques")
	t.Setenv("BACKEND_TIMEOUT", "2s")
	t.Setenv("BACKEND_PROBE_INTERVAL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://backend:8085/cheques", cfg.Backend.URL)
	assert.Equal(t, 2*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Backend.ProbeInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDotenvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "frontend.env")
	content := "BACKEND_URL=http://cheques.internal/cheques\nLOG_LEVEL=error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "http://cheques.internal/cheques", cfg.Backend.URL)
	// process environment wins over the file
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadMissingDotenvIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := LoadFiles(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadInvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND_TIMEOUT", "soon")

	_, err := LoadFiles()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Host:     "0.0.0.0",
			Port:     5000,
			LogLevel: "info",
			Backend: BackendConfig{
				URL:     "http://localhost:8085/cheques",
				Timeout: 5 * time.Second,
			},
			Timeouts: TimeoutConfig{ShutdownTimeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port too low", mutate: func(c *Config) { c.Port = 0 }, wantErr: "invalid HTTP port"},
		{name: "port too high", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "invalid HTTP port"},
		{name: "empty backend", mutate: func(c *Config) { c.Backend.URL = "" }, wantErr: "backend URL is required"},
		{name: "bad scheme", mutate: func(c *Config) { c.Backend.URL = "ftp://host/cheques" }, wantErr: "scheme must be http or https"},
		{name: "no host", mutate: func(c *Config) { c.Backend.URL = "http:///cheques" }, wantErr: "missing host"},
		{name: "query string", mutate: func(c *Config) { c.Backend.URL = "http://backend/cheques?tenant=a" }, wantErr: "query and fragment"},
		{name: "fragment", mutate: func(c *Config) { c.Backend.URL = "http://backend/cheques#top" }, wantErr: "query and fragment"},
		{name: "negative timeout", mutate: func(c *Config) { c.Backend.Timeout = -time.Second }, wantErr: "backend timeout"},
		{name: "negative probe", mutate: func(c *Config) { c.Backend.ProbeInterval = -time.Second }, wantErr: "probe interval"},
		{name: "zero shutdown", mutate: func(c *Config) { c.Timeouts.ShutdownTimeout = 0 }, wantErr: "shutdown timeout"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
