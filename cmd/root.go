package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/foursquare/config"
	"github.com/s0up4200/foursquare/foursquare"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// Global flags
	outputFormat string
	oauthToken   string
	strict       bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "foursquare",
	Short: "Query the Foursquare v2 API from the command line",
	Long: `foursquare is a CLI for the Foursquare v2 API. It looks up users, checkins
and venues, filters venue lists with expressions and decodes saved API
responses offline.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml or dump")
	rootCmd.PersistentFlags().StringVar(&oauthToken, "token", "", "OAuth token, overrides foursquare.oauth_token")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on response fields with unexpected types")
}

// initializeApp loads the configuration and sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	switch cfg.Output.Format {
	case config.FormatTable, config.FormatJSON, config.FormatYAML, config.FormatDump:
	default:
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}
	if oauthToken != "" {
		cfg.Foursquare.OAuthToken = oauthToken
	}
	if strict {
		cfg.Foursquare.SkipNonExistingFields = false
	}

	logger = setupLogger(cfg.Logging)
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// newClient builds an API client from the loaded configuration
func newClient() (*foursquare.Client, error) {
	fc := cfg.Foursquare
	if err := fc.RequireCredentials(); err != nil {
		return nil, err
	}

	return foursquare.NewClient(fc.ClientID, fc.ClientSecret, fc.RedirectURL, logger,
		foursquare.WithOAuthToken(fc.OAuthToken),
		foursquare.WithVersion(fc.Version),
		foursquare.WithCallback(fc.UseCallback),
		foursquare.WithSkipNonExistingFields(fc.SkipNonExistingFields),
		foursquare.WithKeepUnrecognized(fc.KeepUnrecognized),
		foursquare.WithBaseURL(fc.BaseURL),
		foursquare.WithTimeout(fc.Timeout),
		foursquare.WithConcurrency(fc.Concurrency),
		foursquare.WithUserAgent("foursquare-cli/"+version),
	)
}
