package main

import (
	"github.com/spf13/cobra"

	"symphony/internal/command"
)

func newModelCommands(ctx *commandContext) []*cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list-models",
		Short: "List models known to the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, command.ListModels{})
		},
	}

	var configPath string
	loadCmd := &cobra.Command{
		Use:   "load-model MODEL_NAME",
		Short: "Load a model into the service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, command.LoadModel{
				ModelName:  args[0],
				ConfigPath: command.Optional(configPath),
			})
		},
	}
	loadCmd.Flags().StringVar(&configPath, "config-path", "", "Model configuration file passed to the service")

	unloadCmd := &cobra.Command{
		Use:   "unload-model MODEL_NAME",
		Short: "Unload a model from the service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, command.UnloadModel{ModelName: args[0]})
		},
	}

	var localName string
	var installForce bool
	installCmd := &cobra.Command{
		Use:   "install-model MODEL_NAME",
		Short: "Download and install a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, command.InstallModel{
				ModelName: args[0],
				LocalName: command.Optional(localName),
				Force:     installForce,
			})
		},
	}
	installCmd.Flags().StringVar(&localName, "local-name", "", "Name to install the model under")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Reinstall even if the model is already present")

	var uninstallForce bool
	uninstallCmd := &cobra.Command{
		Use:   "uninstall-model MODEL_NAME",
		Short: "Remove an installed model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, command.UninstallModel{ModelName: args[0], Force: uninstallForce})
		},
	}
	uninstallCmd.Flags().BoolVar(&uninstallForce, "force", false, "Remove the model even if it is loaded")

	return []*cobra.Command{listCmd, loadCmd, unloadCmd, installCmd, uninstallCmd}
}
