package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/countrytable/internal/config"
	"github.com/rshade/countrytable/internal/country"
	"github.com/rshade/countrytable/internal/logging"
)

// Command annotations read by the root pre-run hook.
const (
	// annotationLogToFile keeps log output off the terminal.
	annotationLogToFile = "countrytable/log-to-file"
	// annotationLenientConfig lets a command run with a broken config file.
	annotationLenientConfig = "countrytable/lenient-config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the countrytable CLI.
// It loads configuration, wires up logging and tracing, and registers the
// list, browse and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "countrytable",
		Short:         "Browse the REST Countries list",
		Long:          "countrytable: filter, sort and page through the countries of the world",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $COUNTRYTABLE_HOME/config.yaml)")
	cmd.PersistentFlags().String("api-url", "", "REST Countries base URL (overrides config and env)")
	cmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout for the country fetch (overrides config and env)")
	cmd.AddCommand(NewListCmd(), NewBrowseCmd(), newConfigCmd())

	return cmd
}

// loadConfig resolves configuration with precedence flags > env > file >
// defaults and validates it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	lenient := isLenient(cmd)

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.Default().ConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !lenient {
			return nil, err
		}
		cmd.PrintErrf("Warning: %v\n", err)
		cfg = config.Default()
		cfg.SetConfigPath(path)
	}

	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}

	if err := cfg.Validate(); err != nil && !lenient {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// isLenient reports whether cmd or one of its parents tolerates bad config.
func isLenient(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationLenientConfig] == "true" {
			return true
		}
	}
	return false
}

// newProvider builds the REST Countries client from configuration.
func newProvider(cmd *cobra.Command, cfg *config.Config) *country.Client {
	client := country.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	client.UserAgent = "countrytable/" + cmd.Root().Version
	return client
}

const rootCmdExample = `  # Print the first page of countries
  countrytable list

  # Countries in Europe, sorted, third page, as JSON
  countrytable list --region europe --sort asc --page 3 --output json

  # Open the interactive table
  countrytable browse

  # Initialize configuration
  countrytable config init

  # Show a configuration value
  countrytable config get api.base_url`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationLenientConfig: "true"},
	}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
