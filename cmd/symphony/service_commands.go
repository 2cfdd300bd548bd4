package main

import (
	"github.com/spf13/cobra"

	"symphony/internal/command"
)

func newServiceCommands(ctx *commandContext) []*cobra.Command {
	var daemonize bool
	startCmd := &cobra.Command{
		Use:   "start-service",
		Short: "Start the management service unless it is already running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, command.StartService{Daemonize: daemonize})
		},
	}
	startCmd.Flags().BoolVar(&daemonize, "daemonize", false, "Run the service in the background and return immediately")

	stopCmd := &cobra.Command{
		Use:   "stop-service",
		Short: "Stop the management service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, command.StopService{})
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show management service status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, command.Status{})
		},
	}

	return []*cobra.Command{startCmd, stopCmd, statusCmd}
}
