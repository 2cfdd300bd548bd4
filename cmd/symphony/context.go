package main

import (
	"context"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"symphony/internal/command"
	"symphony/internal/config"
	"symphony/internal/daemonctl"
	"symphony/internal/ipc"
	"symphony/internal/logging"
	"symphony/internal/render"
	"symphony/internal/router"
)

type globalFlags struct {
	json     bool
	socket   string
	config   string
	logLevel string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if socket := strings.TrimSpace(c.flags.socket); socket != "" {
			expanded, err := config.ExpandPath(socket)
			if err != nil {
				c.configErr = err
				return
			}
			cfg.IPC.SocketPath = expanded
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// run routes one command using the streams and context of cmd.
func (c *commandContext) run(cmd *cobra.Command, target command.Command) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg, c.flags.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	renderer := render.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), c.flags.json)
	dispatcher := ipc.NewDispatcher(cfg.IPC.SocketPath, cfg.DialTimeout(), logger)
	supervisor := daemonctl.New(dispatcher, daemonctl.Options{
		BinaryName:   cfg.Service.BinaryName,
		FallbackPath: cfg.Service.FallbackPath,
		LockPath:     cfg.Service.StartLock,
		Structured:   c.flags.json,
	}, logger, c.supervisorOptions(cmd)...)

	return router.New(dispatcher, supervisor, renderer, logger).Route(commandContextOf(cmd), target)
}

// supervisorOptions wires the child's inherited streams to the command's
// streams so foreground output follows the CLI's own.
func (c *commandContext) supervisorOptions(cmd *cobra.Command) []daemonctl.Option {
	starter := &daemonctl.ExecStarter{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	return []daemonctl.Option{daemonctl.WithStarter(starter)}
}

func commandContextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
