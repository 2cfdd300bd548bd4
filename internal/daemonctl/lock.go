package daemonctl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 100 * time.Millisecond

// acquireStartLock takes the advisory start lock, waiting for a concurrent
// start to pass its spawn step. The returned func releases it.
func acquireStartLock(ctx context.Context, path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create start lock directory: %w", err)
	}
	lock := flock.New(path)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire start lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("acquire start lock %s: lock held by another process", path)
	}
	return func() { _ = lock.Unlock() }, nil
}
