// Package ydotool moves the cursor through the ydotool uinput client.
package ydotool

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/domain/entity"
	"github.com/bnema/hyprwarp/internal/logging"
)

// DefaultBinary is looked up on PATH when no explicit path is configured.
const DefaultBinary = "ydotool"

// ErrDaemonSocketMissing is returned by Check when ydotoold does not appear to run.
var ErrDaemonSocketMissing = errors.New("ydotoold socket not found")

// Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Compile-time interface checks.
var (
	_ port.CursorMover    = (*Mover)(nil)
	_ port.BackendChecker = (*Mover)(nil)
)

// Mover issues relative pointer motion via "ydotool mousemove".
type Mover struct {
	binary   string
	run      Runner
	lookPath func(string) (string, error)
	getenv   func(string) string
	stat     func(string) (os.FileInfo, error)
}

// Option configures a Mover.
type Option func(*Mover)

// WithRunner replaces command execution.
func WithRunner(run Runner) Option {
	return func(m *Mover) { m.run = run }
}

// WithLookPath replaces PATH resolution.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(m *Mover) { m.lookPath = fn }
}

// WithEnv replaces environment lookups used to locate the daemon socket.
func WithEnv(fn func(string) string) Option {
	return func(m *Mover) { m.getenv = fn }
}

// WithStat replaces file existence checks used to locate the daemon socket.
func WithStat(fn func(string) (os.FileInfo, error)) Option {
	return func(m *Mover) { m.stat = fn }
}

// NewMover creates a mover for the given binary (DefaultBinary when empty).
func NewMover(binary string, opts ...Option) *Mover {
	if binary == "" {
		binary = DefaultBinary
	}
	m := &Mover{
		binary:   binary,
		run:      execRunner,
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
		stat:     os.Stat,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name identifies the backend in diagnostics.
func (m *Mover) Name() string {
	return "ydotool"
}

// MoveMode reports that ydotool moves relative to the current position.
func (m *Mover) MoveMode() port.MoveMode {
	return port.MoveRelative
}

// MoveCursor moves the cursor by v.
func (m *Mover) MoveCursor(ctx context.Context, v entity.Point) error {
	args := []string{"mousemove", "-x", strconv.Itoa(v.X), "-y", strconv.Itoa(v.Y)}
	out, err := m.run(ctx, m.binary, args...)
	if err != nil {
		output := strings.TrimSpace(string(out))
		if output != "" {
			return fmt.Errorf("%s %s: %w: %s", m.binary, strings.Join(args, " "), err, output)
		}
		return fmt.Errorf("%s %s: %w", m.binary, strings.Join(args, " "), err)
	}
	logging.FromContext(ctx).Trace().Int("dx", v.X).Int("dy", v.Y).Msg("ydotool: moved")
	return nil
}

// Check verifies the binary resolves and the daemon socket exists.
func (m *Mover) Check(ctx context.Context) error {
	path, err := m.lookPath(m.binary)
	if err != nil {
		return fmt.Errorf("%s: %w", m.binary, err)
	}

	socket, ok := m.daemonSocket()
	if !ok {
		return ErrDaemonSocketMissing
	}
	logging.FromContext(ctx).Debug().Str("binary", path).Str("socket", socket).Msg("ydotool: available")
	return nil
}

// daemonSocket follows ydotool's lookup: $YDOTOOL_SOCKET, then the runtime dir, then /tmp.
func (m *Mover) daemonSocket() (string, bool) {
	var candidates []string
	if s := m.getenv("YDOTOOL_SOCKET"); s != "" {
		candidates = append(candidates, s)
	}
	if dir := m.getenv("XDG_RUNTIME_DIR"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, ".ydotool_socket"))
	}
	candidates = append(candidates, "/tmp/.ydotool_socket")

	for _, c := range candidates {
		if _, err := m.stat(c); err == nil {
			return c, true
		}
	}
	return "", false
}
