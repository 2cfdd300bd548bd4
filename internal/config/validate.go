package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIPC(); err != nil {
		return err
	}
	if err := c.validateService(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIPC() error {
	if strings.TrimSpace(c.IPC.SocketPath) == "" {
		return errors.New("ipc.socket_path must be set")
	}
	if c.IPC.DialTimeoutSeconds < 0 {
		return errors.New("ipc.dial_timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateService() error {
	if strings.ContainsAny(c.Service.BinaryName, `/\`) {
		return fmt.Errorf("service.binary_name must be a file name, got %q", c.Service.BinaryName)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
