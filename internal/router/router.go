package router

import (
	"context"
	"errors"
	"log/slog"

	"symphony/internal/command"
	"symphony/internal/daemonctl"
	"symphony/internal/logging"
	"symphony/internal/render"
)

// ErrReported signals that a failure has already been rendered to the user.
// Callers should exit non-zero without printing it again.
var ErrReported = errors.New("failure reported")

// Dispatcher forwards commands to the management service.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd command.Command, structured bool) (string, error)
}

// Supervisor runs the local start protocol.
type Supervisor interface {
	Start(ctx context.Context, daemonize bool, report daemonctl.ReportFunc) error
}

// Router pairs a dispatcher and a supervisor with one renderer.
type Router struct {
	dispatcher Dispatcher
	supervisor Supervisor
	renderer   *render.Renderer
	logger     *slog.Logger
}

// New builds a router.
func New(dispatcher Dispatcher, supervisor Supervisor, renderer *render.Renderer, logger *slog.Logger) *Router {
	return &Router{
		dispatcher: dispatcher,
		supervisor: supervisor,
		renderer:   renderer,
		logger:     logging.NewComponentLogger(logger, "router"),
	}
}

// Route handles cmd and renders the result. It returns ErrReported for any
// failure it has rendered, and a plain error only when writing output fails.
func (r *Router) Route(ctx context.Context, cmd command.Command) error {
	r.logger.Debug("routing command", logging.String(logging.FieldCommand, string(cmd.Name())))
	if start, ok := cmd.(command.StartService); ok {
		return r.start(ctx, start)
	}
	return r.dispatch(ctx, cmd)
}

func (r *Router) start(ctx context.Context, cmd command.StartService) error {
	var renderErr error
	err := r.supervisor.Start(ctx, cmd.Daemonize, func(report daemonctl.Report) {
		if renderErr != nil {
			return
		}
		renderErr = r.renderer.Outcome(outcomeFor(report))
	})
	if renderErr != nil {
		return renderErr
	}
	if err != nil {
		r.logger.Debug("start failed", logging.Error(err))
		if werr := r.renderer.SupervisorError(err.Error()); werr != nil {
			return werr
		}
		return ErrReported
	}
	return nil
}

func (r *Router) dispatch(ctx context.Context, cmd command.Command) error {
	payload, err := r.dispatcher.Dispatch(ctx, cmd, r.renderer.Structured())
	if err != nil {
		r.logger.Debug("dispatch failed", logging.String(logging.FieldCommand, string(cmd.Name())), logging.Error(err))
		if werr := r.renderer.DispatchError(err.Error()); werr != nil {
			return werr
		}
		return ErrReported
	}
	return r.renderer.Response(payload)
}

func outcomeFor(report daemonctl.Report) render.Outcome {
	switch report.State {
	case daemonctl.StateAlreadyRunning:
		return render.Outcome{Status: render.StatusAlreadyRunning}
	case daemonctl.StateDetached:
		return render.Outcome{Status: render.StatusStarted, PID: report.PID}
	case daemonctl.StateForegroundWaiting:
		return render.Outcome{Status: render.StatusStarting, PID: report.PID}
	default:
		return render.Outcome{Status: render.StatusExited, ExitCode: report.ExitCode}
	}
}
