package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/countrytable/internal/config"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Loads the configuration file, applies environment and flag overrides, and
checks that the API base URL is set, the timeout is positive and the display
locale is a valid language tag.`,
		Example: `  # Validate current configuration
  countrytable config validate

  # Validate and show the effective values
  countrytable config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the effective configuration")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path := config.GetGlobalConfig().ConfigPath()

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")
	if verbose {
		cmd.Printf("Configuration file: %s\n", path)
		printConfigValues(cmd, cfg)
	}
	return nil
}
