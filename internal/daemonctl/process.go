package daemonctl

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Process is a spawned service.
type Process interface {
	Pid() int
	// Wait blocks until the process exits. A nil code means the process ended
	// without one, for example when killed by a signal.
	Wait() (code *int, err error)
	// Release gives up any claim on the process so it can outlive the CLI.
	Release() error
}

// Starter launches the service binary at path.
type Starter interface {
	Start(path string, daemonize bool) (Process, error)
}

// StarterFunc adapts a function to Starter.
type StarterFunc func(path string, daemonize bool) (Process, error)

// Start calls f.
func (f StarterFunc) Start(path string, daemonize bool) (Process, error) {
	return f(path, daemonize)
}

// ExecStarter launches the service with os/exec. Foreground children inherit
// the given streams; daemonized children get the null device for all three.
type ExecStarter struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecStarter returns a starter wired to the CLI's own standard streams.
func NewExecStarter() *ExecStarter {
	return &ExecStarter{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Start spawns path without arguments.
func (s *ExecStarter) Start(path string, daemonize bool) (Process, error) {
	cmd := exec.Command(path)
	if !daemonize {
		cmd.Stdin = s.Stdin
		cmd.Stdout = s.Stdout
		cmd.Stderr = s.Stderr
	}
	// Nil streams are connected to the null device by os/exec.
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Wait() (*int, error) {
	err := p.cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
	}
	code := p.cmd.ProcessState.ExitCode()
	if code < 0 {
		return nil, nil
	}
	return &code, nil
}

func (p *execProcess) Release() error {
	return p.cmd.Process.Release()
}
