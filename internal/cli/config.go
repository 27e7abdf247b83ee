package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Didstopia/ghtag/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging flags, environment variables and
the config file (~/.ghtag.yaml or ./.ghtag.yaml). The token is masked.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the home directory",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	if path := configLoader.ConfigFileUsed(); path != "" {
		log.Debugf("Using config file %s", path)
	}

	data, err := configLoader.Config().YAML()
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, created, err := config.EnsureConfigFile()
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file already exists at %s\n", path)
	}
	return nil
}
