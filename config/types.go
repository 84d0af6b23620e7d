package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Foursquare FoursquareConfig `mapstructure:"foursquare"`
	Filter     FilterConfig     `mapstructure:"filter"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// FoursquareConfig holds API credentials and client behaviour
type FoursquareConfig struct {
	ClientID              string        `mapstructure:"client_id"`
	ClientSecret          string        `mapstructure:"client_secret"`
	RedirectURL           string        `mapstructure:"redirect_url"`
	OAuthToken            string        `mapstructure:"oauth_token"`
	Version               string        `mapstructure:"version"`
	UseCallback           bool          `mapstructure:"use_callback"`
	SkipNonExistingFields bool          `mapstructure:"skip_non_existing_fields"`
	KeepUnrecognized      bool          `mapstructure:"keep_unrecognized"`
	BaseURL               string        `mapstructure:"base_url"`
	Timeout               time.Duration `mapstructure:"timeout"`
	Concurrency           int           `mapstructure:"concurrency"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// OutputConfig selects how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
