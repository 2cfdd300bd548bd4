package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"symphony/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantSocket := filepath.Join(tempHome, ".local", "share", "symphony", "symphony.sock")
	if cfg.IPC.SocketPath != wantSocket {
		t.Fatalf("unexpected socket path: got %q want %q", cfg.IPC.SocketPath, wantSocket)
	}
	if cfg.DialTimeout() != 2*time.Second {
		t.Fatalf("unexpected dial timeout: %s", cfg.DialTimeout())
	}
	if cfg.Service.BinaryName != "symphony-management-service" {
		t.Fatalf("unexpected binary name: %q", cfg.Service.BinaryName)
	}
	if cfg.Service.FallbackPath != "./target/release/symphony-management-service" {
		t.Fatalf("fallback path should stay relative, got %q", cfg.Service.FallbackPath)
	}
	if cfg.Service.StartLock != "" {
		t.Fatalf("expected start lock disabled by default, got %q", cfg.Service.StartLock)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomConfigOverridesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	data := config.Default()
	data.IPC.SocketPath = "~/run/svc.sock"
	data.IPC.DialTimeoutSeconds = 5
	data.Service.BinaryName = "  custom-service  "
	data.Service.StartLock = "~/run/start.lock"
	data.Logging.Level = "DEBUG"
	data.Logging.Format = "JSON"

	encoded, err := toml.Marshal(data)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit path to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.IPC.SocketPath != filepath.Join(tempHome, "run", "svc.sock") {
		t.Fatalf("unexpected socket path: %q", cfg.IPC.SocketPath)
	}
	if cfg.DialTimeout() != 5*time.Second {
		t.Fatalf("unexpected dial timeout: %s", cfg.DialTimeout())
	}
	if cfg.Service.BinaryName != "custom-service" {
		t.Fatalf("expected trimmed binary name, got %q", cfg.Service.BinaryName)
	}
	if cfg.Service.StartLock != filepath.Join(tempHome, "run", "start.lock") {
		t.Fatalf("unexpected start lock: %q", cfg.Service.StartLock)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("expected lower-cased logging settings, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "binary name with separator",
			content: "[service]\nbinary_name = \"bin/svc\"\n",
			wantErr: "service.binary_name",
		},
		{
			name:    "negative dial timeout",
			content: "[ipc]\ndial_timeout_seconds = -1\n",
			wantErr: "ipc.dial_timeout_seconds must not be negative",
		},
		{
			name:    "unknown log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
		{
			name:    "unknown log level",
			content: "[logging]\nlevel = \"trace\"\n",
			wantErr: "logging.level",
		},
		{
			name:    "unknown key",
			content: "[ipc]\nsocket = \"/tmp/x.sock\"\n",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Service.BinaryName != "symphony-management-service" {
		t.Fatalf("unexpected sample binary name: %q", cfg.Service.BinaryName)
	}
}

func TestLoadReportsUnexpandableStartLock(t *testing.T) {
	t.Setenv("HOME", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[ipc]\nsocket_path = \"/tmp/symphony.sock\"\n\n[service]\nstart_lock = \"~/start.lock\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for start lock without a home directory")
	}
	if !strings.Contains(err.Error(), "service.start_lock") {
		t.Fatalf("expected service.start_lock error, got %v", err)
	}
}
