package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"symphony/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose socket lives in a unique temp directory.
// It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.IPC.SocketPath = SocketPath(t)
	cfgVal.IPC.DialTimeoutSeconds = 1

	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStartLock enables the advisory start lock inside the test directory.
func WithStartLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Service.StartLock = filepath.Join(b.baseDir, "start.lock")
	}
}

// WithFallbackPath overrides the fallback daemon binary path.
func WithFallbackPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Service.FallbackPath = path
	}
}

// WriteConfig encodes cfg as TOML into dir and returns the file path.
func WriteConfig(t testing.TB, dir string, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
