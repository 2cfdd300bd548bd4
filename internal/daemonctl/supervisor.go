package daemonctl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"symphony/internal/command"
	"symphony/internal/logging"
)

// Dispatcher is the remote dispatch contract the start protocol probes with.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd command.Command, structured bool) (string, error)
}

// State is a start-protocol state.
type State string

const (
	StateProbing           State = "probing"
	StateAlreadyRunning    State = "already_running"
	StateResolvingBinary   State = "resolving_binary"
	StateBinaryMissing     State = "binary_missing"
	StateSpawning          State = "spawning"
	StateSpawnFailed       State = "spawn_failed"
	StateDetached          State = "detached"
	StateForegroundWaiting State = "foreground_waiting"
	StateExited            State = "exited"
	StateWaitFailed        State = "wait_failed"
)

// Report is emitted for every user-visible success state: AlreadyRunning,
// Detached, ForegroundWaiting and Exited.
type Report struct {
	State    State
	PID      int
	ExitCode *int
}

// ReportFunc receives reports as they happen. ForegroundWaiting arrives
// before Start blocks on the child.
type ReportFunc func(Report)

// Options configures binary resolution and locking.
type Options struct {
	// BinaryName is looked up next to the running executable.
	BinaryName string
	// FallbackPath is assumed when no sibling binary exists.
	FallbackPath string
	// LockPath enables the advisory start lock when non-empty.
	LockPath string
	// Structured is forwarded to the probe request.
	Structured bool
}

// Supervisor runs the start protocol.
type Supervisor struct {
	dispatcher Dispatcher
	opts       Options
	logger     *slog.Logger
	starter    Starter
	executable func() (string, error)
	exists     func(string) bool
}

// Option customizes a Supervisor.
type Option func(*Supervisor)

// WithStarter replaces the process starter.
func WithStarter(s Starter) Option {
	return func(sup *Supervisor) { sup.starter = s }
}

// WithExecutable replaces the lookup of the running executable.
func WithExecutable(fn func() (string, error)) Option {
	return func(sup *Supervisor) { sup.executable = fn }
}

// WithFileCheck replaces the existence check used during binary resolution.
func WithFileCheck(fn func(string) bool) Option {
	return func(sup *Supervisor) { sup.exists = fn }
}

// New builds a supervisor probing through dispatcher.
func New(dispatcher Dispatcher, opts Options, logger *slog.Logger, options ...Option) *Supervisor {
	sup := &Supervisor{
		dispatcher: dispatcher,
		opts:       opts,
		logger:     logging.NewComponentLogger(logger, "daemonctl"),
		starter:    NewExecStarter(),
		executable: os.Executable,
		exists:     fileExists,
	}
	for _, option := range options {
		option(sup)
	}
	return sup
}

// Start runs the start protocol. Success states are delivered through report;
// failures come back as *BinaryNotFoundError, *SpawnError, *WaitError, or a
// lock/context error. A service that already answers is never spawned twice.
func (s *Supervisor) Start(ctx context.Context, daemonize bool, report ReportFunc) error {
	if report == nil {
		report = func(Report) {}
	}

	unlock := func() {}
	if s.opts.LockPath != "" {
		release, err := acquireStartLock(ctx, s.opts.LockPath)
		if err != nil {
			return err
		}
		unlock = release
		s.logger.Debug("start lock acquired", logging.String(logging.FieldPath, s.opts.LockPath))
	}
	locked := true
	releaseLock := func() {
		if locked {
			unlock()
			locked = false
		}
	}
	defer releaseLock()

	s.transition(StateProbing)
	_, probeErr := s.dispatcher.Dispatch(ctx, command.Status{}, s.opts.Structured)
	if probeErr == nil {
		s.transition(StateAlreadyRunning)
		report(Report{State: StateAlreadyRunning})
		return nil
	}
	s.logger.Debug("probe failed", logging.Error(probeErr))
	if err := ctx.Err(); err != nil {
		return err
	}

	s.transition(StateResolvingBinary)
	path := s.ResolveBinary()
	if !s.exists(path) {
		s.transition(StateBinaryMissing, logging.String(logging.FieldPath, path))
		return &BinaryNotFoundError{Name: s.opts.BinaryName, Path: path}
	}

	s.transition(StateSpawning, logging.String(logging.FieldPath, path), logging.Bool("daemonize", daemonize))
	proc, err := s.starter.Start(path, daemonize)
	if err != nil {
		s.transition(StateSpawnFailed, logging.Error(err))
		return &SpawnError{Err: err}
	}
	releaseLock()

	pid := proc.Pid()
	if daemonize {
		if err := proc.Release(); err != nil {
			s.logger.Debug("release process handle", logging.Error(err))
		}
		s.transition(StateDetached, logging.Int(logging.FieldPID, pid))
		report(Report{State: StateDetached, PID: pid})
		return nil
	}

	s.transition(StateForegroundWaiting, logging.Int(logging.FieldPID, pid))
	report(Report{State: StateForegroundWaiting, PID: pid})

	code, err := proc.Wait()
	if err != nil {
		s.transition(StateWaitFailed, logging.Error(err))
		return &WaitError{Err: err}
	}
	s.transition(StateExited)
	report(Report{State: StateExited, ExitCode: code})
	return nil
}

// ResolveBinary returns the sibling binary next to the running executable if
// it exists, otherwise the fallback path whether or not it exists.
func (s *Supervisor) ResolveBinary() string {
	exe, err := s.executable()
	if err != nil {
		s.logger.Debug("resolve executable", logging.Error(err))
		return s.opts.FallbackPath
	}
	candidate := filepath.Join(filepath.Dir(exe), s.opts.BinaryName)
	if s.exists(candidate) {
		return candidate
	}
	return s.opts.FallbackPath
}

func (s *Supervisor) transition(state State, attrs ...logging.Attr) {
	attrs = append([]logging.Attr{logging.String(logging.FieldState, string(state))}, attrs...)
	s.logger.Debug("start protocol", logging.Args(attrs...)...)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
