package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configcmd "github.com/ticketdesk/ticketdesk/internal/interfaces/cli/config"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/cli/migrate"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/cli/server"
	"github.com/ticketdesk/ticketdesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketdesk",
		Short: "Ticketdesk - support ticket API",
		Long:  `Ticketdesk serves the ticket, draft and voice note API, with migration and configuration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		configcmd.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
