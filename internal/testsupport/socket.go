package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SocketPath returns a short Unix socket path inside a per-test directory.
// t.TempDir paths embed the test name and can exceed the sun_path limit.
func SocketPath(t testing.TB) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "sym")
	if err != nil {
		t.Fatalf("mkdir socket dir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.RemoveAll(dir)
	})
	return filepath.Join(dir, "s.sock")
}
