package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
foursquare:
  client_id: abc
  client_secret: def
  oauth_token: tok
  use_callback: false
  timeout: 10s
  concurrency: 3
filter:
  presets:
    coffee: hasCategory("café") and within(500)
output:
  format: json
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.Foursquare.ClientID)
	assert.Equal(t, "def", cfg.Foursquare.ClientSecret)
	assert.Equal(t, "tok", cfg.Foursquare.OAuthToken)
	assert.False(t, cfg.Foursquare.UseCallback)
	assert.True(t, cfg.Foursquare.SkipNonExistingFields)
	assert.Equal(t, 10*time.Second, cfg.Foursquare.Timeout)
	assert.Equal(t, 3, cfg.Foursquare.Concurrency)
	assert.Equal(t, "20110525", cfg.Foursquare.Version)
	assert.Equal(t, "https://api.foursquare.com/v2/", cfg.Foursquare.BaseURL)
	assert.Equal(t, `hasCategory("café") and within(500)`, cfg.Filter.Presets["coffee"])
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NoError(t, cfg.Foursquare.RequireCredentials())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("FOURSQUARE_CLIENT_ID", "env-id")
	t.Setenv("FOURSQUARE_CLIENT_SECRET", "env-secret")
	t.Setenv("FOURSQUARE_LOGGING_LEVEL", "warn")
	t.Setenv("FOURSQUARE_FOURSQUARE_CONCURRENCY", "8")

	path := writeConfig(t, "foursquare:\n  client_id: file-id\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-id", cfg.Foursquare.ClientID)
	assert.Equal(t, "env-secret", cfg.Foursquare.ClientSecret)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Foursquare.Concurrency)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, "output:\n  format: xml\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format: xml")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Foursquare: FoursquareConfig{
				Version:     "20110525",
				Timeout:     time.Second,
				Concurrency: 1,
			},
			Output:  OutputConfig{Format: FormatTable},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "bad version",
			mutate:  func(c *Config) { c.Foursquare.Version = "2011-05-25" },
			wantErr: "invalid foursquare.version",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Foursquare.Timeout = 0 },
			wantErr: "foursquare.timeout",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Foursquare.Concurrency = 0 },
			wantErr: "foursquare.concurrency",
		},
		{
			name:    "empty preset",
			mutate:  func(c *Config) { c.Filter.Presets = map[string]string{"blank": " "} },
			wantErr: `filter preset "blank" is empty`,
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRequireCredentials(t *testing.T) {
	cfg := FoursquareConfig{ClientID: "id"}
	assert.ErrorIs(t, cfg.RequireCredentials(), ErrMissingCredentials)

	cfg.ClientSecret = "secret"
	assert.NoError(t, cfg.RequireCredentials())
}
