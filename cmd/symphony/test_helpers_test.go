package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"symphony/internal/command"
	"symphony/internal/config"
	"symphony/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	fake       *testsupport.FakeService
}

// setupCLITestEnv writes a config into an isolated HOME. When reply is
// non-nil a fake management service answers on the configured socket.
func setupCLITestEnv(t *testing.T, reply func(command.Command, bool) (string, error), opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t, opts...)
	cfg.Service.BinaryName = "symphony-test-service-absent"
	env := &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfig(t, t.TempDir(), cfg),
	}
	if reply != nil {
		env.fake = testsupport.StartFakeService(t, cfg.IPC.SocketPath, reply)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := executeRoot(context.Background(), cmd)
	return stdout.String(), stderr.String(), err
}

func writeServiceScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symphony-management-service")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write service script: %v", err)
	}
	return path
}

func jsonLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var objs []map[string]any
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %q is not a JSON object: %v", line, err)
		}
		objs = append(objs, obj)
	}
	return objs
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
