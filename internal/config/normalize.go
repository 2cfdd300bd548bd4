package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeIPC(); err != nil {
		return err
	}
	if err := c.normalizeService(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeIPC() error {
	var err error
	c.IPC.SocketPath = strings.TrimSpace(c.IPC.SocketPath)
	if c.IPC.SocketPath == "" {
		c.IPC.SocketPath = defaultSocketPath
	}
	if c.IPC.SocketPath, err = expandPath(c.IPC.SocketPath); err != nil {
		return fmt.Errorf("ipc.socket_path: %w", err)
	}
	if c.IPC.DialTimeoutSeconds == 0 {
		c.IPC.DialTimeoutSeconds = defaultDialTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeService() error {
	c.Service.BinaryName = strings.TrimSpace(c.Service.BinaryName)
	if c.Service.BinaryName == "" {
		c.Service.BinaryName = defaultBinaryName
	}
	// Kept relative; it resolves against the working directory at start time.
	c.Service.FallbackPath = strings.TrimSpace(c.Service.FallbackPath)
	if c.Service.FallbackPath == "" {
		c.Service.FallbackPath = defaultFallbackPath
	}
	var err error
	c.Service.StartLock = strings.TrimSpace(c.Service.StartLock)
	if c.Service.StartLock, err = expandPath(c.Service.StartLock); err != nil {
		return fmt.Errorf("service.start_lock: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
