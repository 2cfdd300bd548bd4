package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"symphony/internal/command"
)

const dispatchMethod = "Symphony.Dispatch"

// Client provides RPC access to the management service.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path. The timeout
// bounds only the connect step.
func Dial(path string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	conn, err := net.DialTimeout("unix", path, timeout)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		err := c.conn.Close()
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err
	}
	return nil
}

// Send delivers req and waits for the reply. There is no deadline beyond ctx:
// a service that never answers keeps Send blocked until ctx is done.
func (c *Client) Send(ctx context.Context, req command.Request) (*command.Reply, error) {
	var reply command.Reply
	call := c.client.Go(dispatchMethod, req, &reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		_ = c.Close()
		return nil, ctx.Err()
	case done := <-call.Done:
		if done.Error != nil {
			return nil, fmt.Errorf("%s request: %w", req.Command, done.Error)
		}
	}
	return &reply, nil
}
