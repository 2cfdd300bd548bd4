package daemonctl_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"symphony/internal/daemonctl"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symphony-management-service")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestExecStarterForegroundExitCode(t *testing.T) {
	path := writeScript(t, "echo serving\nexit 3")
	var stdout bytes.Buffer
	starter := &daemonctl.ExecStarter{Stdout: &stdout, Stderr: &stdout}

	proc, err := starter.Start(path, false)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if proc.Pid() <= 0 {
		t.Fatalf("unexpected pid %d", proc.Pid())
	}
	code, err := proc.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if code == nil || *code != 3 {
		t.Fatalf("expected exit code 3, got %v", code)
	}
	if strings.TrimSpace(stdout.String()) != "serving" {
		t.Fatalf("foreground child should inherit stdout, got %q", stdout.String())
	}
}

func TestExecStarterSignalledChildHasNoCode(t *testing.T) {
	path := writeScript(t, "kill -9 $$")
	proc, err := (&daemonctl.ExecStarter{}).Start(path, false)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	code, err := proc.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if code != nil {
		t.Fatalf("expected no exit code for signalled child, got %d", *code)
	}
}

func TestExecStarterDaemonizedDetachesStreams(t *testing.T) {
	path := writeScript(t, "echo leaked\nsleep 5")
	var stdout bytes.Buffer
	starter := &daemonctl.ExecStarter{Stdout: &stdout, Stderr: &stdout}

	proc, err := starter.Start(path, true)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	pid := proc.Pid()
	if err := proc.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	t.Cleanup(func() { _ = syscall.Kill(pid, syscall.SIGKILL) })

	time.Sleep(100 * time.Millisecond)
	if err := syscall.Kill(pid, 0); err != nil {
		t.Fatalf("detached service should still be running: %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("daemonized child must not write to the CLI streams, got %q", stdout.String())
	}
}

func TestExecStarterMissingBinary(t *testing.T) {
	_, err := (&daemonctl.ExecStarter{}).Start(filepath.Join(t.TempDir(), "absent"), true)
	if err == nil {
		t.Fatal("expected spawn error")
	}
}
