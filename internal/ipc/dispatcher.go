package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"symphony/internal/command"
	"symphony/internal/logging"
)

// Dispatcher sends commands to the management service listening on a socket.
type Dispatcher struct {
	socketPath  string
	dialTimeout time.Duration
	logger      *slog.Logger
}

// NewDispatcher configures a dispatcher for the given socket.
func NewDispatcher(socketPath string, dialTimeout time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		socketPath:  socketPath,
		dialTimeout: dialTimeout,
		logger:      logging.NewComponentLogger(logger, "ipc"),
	}
}

// Dispatch sends cmd and returns the service's payload. Every failure, from a
// missing socket to an error reported by the service, comes back as one error
// whose text is meant for the user.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd command.Command, structured bool) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	requestID := uuid.NewString()
	logger := d.logger.With(
		logging.String(logging.FieldCommand, string(cmd.Name())),
		logging.String(logging.FieldRequestID, requestID),
	)

	client, err := Dial(d.socketPath, d.dialTimeout)
	if err != nil {
		logger.Debug("dial failed", logging.String(logging.FieldSocket, d.socketPath), logging.Error(err))
		return "", wrapDialError(err, d.socketPath)
	}
	defer client.Close()

	logger.Debug("sending request", logging.Bool("json", structured))
	reply, err := client.Send(ctx, command.NewRequest(cmd, structured, requestID))
	if err != nil {
		logger.Debug("request failed", logging.Error(err))
		return "", err
	}
	if !reply.OK {
		message := strings.TrimSpace(reply.Error)
		if message == "" {
			message = fmt.Sprintf("%s failed without an error message", cmd.Name())
		}
		logger.Debug("service rejected request", logging.String("reason", message))
		return "", errors.New(message)
	}
	logger.Debug("reply received", logging.Int("bytes", len(reply.Payload)))
	return reply.Payload, nil
}

func wrapDialError(err error, socket string) error {
	switch {
	case errors.Is(err, unix.ENOENT) || os.IsNotExist(err):
		return fmt.Errorf("service is not running (socket %s not found)", socket)
	case errors.Is(err, unix.ECONNREFUSED):
		return fmt.Errorf("service refused the connection on %s; verify it is running", socket)
	default:
		return fmt.Errorf("connect to service: %w", err)
	}
}
