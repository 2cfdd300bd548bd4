package daemonctl

import (
	"errors"
	"fmt"
)

// ErrBinaryNotFound matches BinaryNotFoundError via errors.Is.
var ErrBinaryNotFound = errors.New("service binary not found")

// BinaryNotFoundError reports the path that was tried last.
type BinaryNotFoundError struct {
	Name string
	Path string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("Could not find %s binary at: %s", e.Name, e.Path)
}

func (e *BinaryNotFoundError) Is(target error) bool {
	return target == ErrBinaryNotFound
}

// SpawnError wraps the OS error returned while launching the service.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string { return "Failed to start service: " + e.Err.Error() }

func (e *SpawnError) Unwrap() error { return e.Err }

// WaitError wraps an OS failure observing a foreground service. The child's
// actual fate is unknown when this is returned.
type WaitError struct {
	Err error
}

func (e *WaitError) Error() string { return "Failed to wait for service: " + e.Err.Error() }

func (e *WaitError) Unwrap() error { return e.Err }
