// Package config implements the command that prints the effective configuration.
package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	appConfig "github.com/ticketdesk/ticketdesk/internal/infrastructure/config"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets masked",
		Long:  `Print the configuration after defaults, config file, .env and TICKETDESK_* environment variables are merged.`,
		RunE:  runShow,
	}
	show.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(show)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig.Load(appConfig.Options{ConfigFile: configPath})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, err := yaml.Marshal(cfg.Masked())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
