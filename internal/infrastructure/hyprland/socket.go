// Package hyprland talks to the Hyprland compositor over its request socket.
package hyprland

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"
)

const (
	signatureEnv = "HYPRLAND_INSTANCE_SIGNATURE"
	runtimeEnv   = "XDG_RUNTIME_DIR"
	socketName   = ".socket.sock"

	// DefaultTimeout bounds a single request round trip.
	DefaultTimeout = 500 * time.Millisecond

	maxReplySize = 1 << 20
)

// ErrNoInstance is returned when no Hyprland instance can be located.
var ErrNoInstance = errors.New("hyprland instance not found (is HYPRLAND_INSTANCE_SIGNATURE set?)")

// SocketPath locates the request socket of the running instance.
// Newer Hyprland versions live under $XDG_RUNTIME_DIR/hypr, older ones under /tmp/hypr.
func SocketPath(getenv func(string) string) (string, error) {
	sig := getenv(signatureEnv)
	if sig == "" {
		return "", ErrNoInstance
	}

	var candidates []string
	if runtime := getenv(runtimeEnv); runtime != "" {
		candidates = append(candidates, filepath.Join(runtime, "hypr", sig, socketName))
	}
	candidates = append(candidates, filepath.Join(os.TempDir(), "hypr", sig, socketName))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no socket at %v", ErrNoInstance, candidates)
}

// Client sends one request per connection, the way hyprctl does.
type Client struct {
	path    string
	timeout time.Duration
	dialer  net.Dialer
}

// NewClient creates a client for the socket at path.
func NewClient(path string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{path: path, timeout: timeout}
}

// Path returns the socket path.
func (c *Client) Path() string {
	return c.path
}

// Request writes cmd and returns the full reply.
func (c *Client) Request(ctx context.Context, cmd string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(ctx, "unix", c.path)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", c.path, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set deadline: %w", err)
		}
	}

	if _, err := io.WriteString(conn, cmd); err != nil {
		return nil, fmt.Errorf("write %q: %w", cmd, err)
	}

	reply, err := io.ReadAll(io.LimitReader(conn, maxReplySize))
	if err != nil {
		return nil, fmt.Errorf("read reply to %q: %w", cmd, err)
	}
	return reply, nil
}
