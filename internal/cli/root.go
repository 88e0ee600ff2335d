// Package cli implements the notekeep appearance commands.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/notekeep/notekeep/internal/appearance"
	"github.com/notekeep/notekeep/internal/config"
	"github.com/notekeep/notekeep/internal/logging"
	"github.com/notekeep/notekeep/internal/theme"
)

var (
	configPath     string
	themeFlag      string
	assetsFlag     string
	logLevel       string
	logFormat      string
	jsonOutput     bool
	nonInteractive bool

	appConfig *config.Config

	// appFs is swapped for an in-memory filesystem in tests.
	appFs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:           "notekeep",
	Short:         "Inspect notekeep themes, stylesheets and icons",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/notekeep/config.yaml)")
	flags.StringVar(&themeFlag, "theme", "", "theme: dark, light or auto")
	flags.StringVar(&assetsFlag, "assets", "", "assets directory")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start interactive views")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

// GetConfig returns the loaded configuration, or nil before loading.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

func loadConfig() error {
	cfg, err := config.Load(appFs, configPath)
	if err != nil {
		return err
	}

	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if assetsFlag != "" {
		cfg.AssetsDir = assetsFlag
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cfg.Logging); err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

func newResolver() (*appearance.Resolver, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return appearance.FromConfig(cfg, appFs, logging.Component("appearance"))
}

func parseColorArg(value string) (theme.ColorKey, error) {
	if value == "" {
		return theme.ColorDefault, nil
	}
	return theme.ParseColorKey(value)
}

func cliLogger() zerolog.Logger {
	return logging.Component("cli")
}
