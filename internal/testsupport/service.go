package testsupport

import (
	"context"
	"sync"
	"testing"

	"symphony/internal/command"
	"symphony/internal/ipc"
	"symphony/internal/logging"
)

// Call records one command received by a FakeService.
type Call struct {
	Command    command.Command
	Structured bool
}

// FakeService is an in-process management service answering on a real socket.
type FakeService struct {
	mu    sync.Mutex
	calls []Call
	reply func(command.Command, bool) (string, error)
}

// StartFakeService serves reply on socketPath until the test ends.
func StartFakeService(t testing.TB, socketPath string, reply func(command.Command, bool) (string, error)) *FakeService {
	t.Helper()

	fake := &FakeService{reply: reply}
	ctx, cancel := context.WithCancel(context.Background())
	srv, err := ipc.NewServer(ctx, socketPath, ipc.HandlerFunc(fake.handle), logging.NewNop())
	if err != nil {
		cancel()
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return fake
}

func (f *FakeService) handle(_ context.Context, cmd command.Command, structured bool) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Command: cmd, Structured: structured})
	f.mu.Unlock()
	return f.reply(cmd, structured)
}

// Calls returns a copy of the commands received so far.
func (f *FakeService) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}
