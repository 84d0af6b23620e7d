package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatDump  = "dump"
)

// ErrMissingCredentials is returned by RequireCredentials
var ErrMissingCredentials = errors.New("foursquare.client_id and foursquare.client_secret are required")

// Load loads the configuration. An explicit path must exist; without one the
// standard locations are searched and defaults plus environment are used when
// no file is found. Environment variables use the FOURSQUARE_ prefix with
// dots replaced by underscores, e.g. FOURSQUARE_LOGGING_LEVEL. The API
// credentials can also be given as FOURSQUARE_CLIENT_ID,
// FOURSQUARE_CLIENT_SECRET and FOURSQUARE_OAUTH_TOKEN.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("foursquare")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"client_id", "client_secret", "redirect_url", "oauth_token"} {
		if err := v.BindEnv("foursquare."+key, "FOURSQUARE_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("error binding environment: %w", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".foursquare"))
		}
		v.AddConfigPath("/etc/foursquare/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key is listed so
// that environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("foursquare.client_id", "")
	v.SetDefault("foursquare.client_secret", "")
	v.SetDefault("foursquare.redirect_url", "")
	v.SetDefault("foursquare.oauth_token", "")
	v.SetDefault("foursquare.version", "20110525")
	v.SetDefault("foursquare.use_callback", true)
	v.SetDefault("foursquare.skip_non_existing_fields", true)
	v.SetDefault("foursquare.keep_unrecognized", false)
	v.SetDefault("foursquare.base_url", "https://api.foursquare.com/v2/")
	v.SetDefault("foursquare.timeout", 30*time.Second)
	v.SetDefault("foursquare.concurrency", 5)

	v.SetDefault("filter.presets", map[string]string{})

	v.SetDefault("output.format", FormatTable)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid. Credentials are checked
// separately since offline commands run without them.
func validate(cfg *Config) error {
	if _, err := time.Parse("20060102", cfg.Foursquare.Version); err != nil {
		return fmt.Errorf("invalid foursquare.version: %s (must be YYYYMMDD)", cfg.Foursquare.Version)
	}

	if cfg.Foursquare.Timeout <= 0 {
		return fmt.Errorf("foursquare.timeout must be positive")
	}

	if cfg.Foursquare.Concurrency < 1 {
		return fmt.Errorf("foursquare.concurrency must be at least 1")
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q is empty", name)
		}
	}

	validOutputs := map[string]bool{
		FormatTable: true,
		FormatJSON:  true,
		FormatYAML:  true,
		FormatDump:  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// RequireCredentials checks that the API client credentials are set
func (c *FoursquareConfig) RequireCredentials() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return ErrMissingCredentials
	}
	return nil
}
