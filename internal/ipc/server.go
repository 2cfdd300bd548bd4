package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"symphony/internal/command"
	"symphony/internal/logging"
)

// Handler executes commands on the service side.
type Handler interface {
	Handle(ctx context.Context, cmd command.Command, structured bool) (string, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, cmd command.Command, structured bool) (string, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, cmd command.Command, structured bool) (string, error) {
	return f(ctx, cmd, structured)
}

// Server exposes a Handler via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, handler Handler, logger *slog.Logger) (*Server, error) {
	if handler == nil {
		return nil, errors.New("ipc server requires handler")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	rpcServer := rpc.NewServer()
	srv := &service{handler: handler, logger: logger, ctx: serverCtx}
	if err := rpcServer.RegisterName("Symphony", srv); err != nil {
		cancel()
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	return &Server{
		path:      path,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
		conns:     make(map[net.Conn]struct{}),
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String(logging.FieldSocket, s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				if errors.Is(err, net.ErrClosed) {
					return
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			if !s.track(conn) {
				_ = conn.Close()
				return
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				defer s.untrack(c)
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server, drops open client connections, and removes the
// socket file. It still waits for in-flight handler calls to return.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.mu.Lock()
	s.closed = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket", logging.String(logging.FieldSocket, s.path), logging.Error(err))
	}
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

type service struct {
	handler Handler
	logger  *slog.Logger
	ctx     context.Context
}

// Dispatch is the single RPC endpoint. Handler failures travel inside the
// reply so the client sees the service's own message.
func (s *service) Dispatch(req command.Request, reply *command.Reply) error {
	cmd, err := req.Decode()
	if err != nil {
		*reply = command.Reply{Error: err.Error()}
		return nil
	}
	payload, err := s.handler.Handle(s.ctx, cmd, req.JSON)
	if err != nil {
		s.logger.Debug("command failed",
			logging.String(logging.FieldCommand, string(req.Command)),
			logging.String(logging.FieldRequestID, req.RequestID),
			logging.Error(err))
		*reply = command.Reply{Error: err.Error()}
		return nil
	}
	*reply = command.Reply{OK: true, Payload: payload}
	return nil
}
