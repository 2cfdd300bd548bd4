package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"symphony/internal/render"
	"symphony/internal/router"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "symphony",
		Short:         "Control the Symphony model management service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVar(&flags.json, "json", false, "Emit machine-readable JSON output")
	persistent.StringVar(&flags.socket, "socket", "", "Path to the management service socket")
	persistent.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	persistent.StringVar(&flags.logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(newServiceCommands(ctx)...)
	rootCmd.AddCommand(newModelCommands(ctx)...)
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// executeRoot runs root and renders any error the router has not already
// reported, in the output mode selected by --json.
func executeRoot(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err == nil || errors.Is(err, router.ErrReported) || errors.Is(err, context.Canceled) {
		return err
	}
	structured, _ := root.PersistentFlags().GetBool("json")
	if werr := render.New(root.OutOrStdout(), root.ErrOrStderr(), structured).DispatchError(err.Error()); werr != nil {
		return err
	}
	return router.ErrReported
}
