package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/countrytable/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Example: `  countrytable config get api.base_url
  countrytable config get display.locale`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command. The change is validated
// before it is written.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value",
		Example: `  countrytable config set api.timeout 10s
  countrytable config set display.locale sv`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value.
		RunE: func(cmd *cobra.Command, args []string) error {
			// Start from the file alone so env and flag overrides are not persisted.
			cfg, err := config.LoadFile(config.GetGlobalConfig().ConfigPath())
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("refusing to save invalid configuration: %w", err)
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			logger.Info().Ctx(cmd.Context()).Str("key", args[0]).Msg("configuration updated")
			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printConfigValues(cmd, config.GetGlobalConfig())
			return nil
		},
	}
}

func printConfigValues(cmd *cobra.Command, cfg *config.Config) {
	for _, key := range config.Keys() {
		value, _ := cfg.Get(key)
		cmd.Printf("%s = %s\n", key, value)
	}
}
