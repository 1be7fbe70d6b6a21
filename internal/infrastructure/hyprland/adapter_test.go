package hyprland

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/domain/entity"
)

const monitorsReply = `[
  {"id":0,"name":"DP-1","width":2560,"height":1440,"x":0,"y":0,"scale":1.0,"transform":0,"disabled":false},
  {"id":1,"name":"HDMI-A-1","width":3840,"height":2160,"x":2560,"y":0,"scale":2.0,"transform":0,"disabled":false},
  {"id":2,"name":"eDP-1","width":1920,"height":1080,"x":0,"y":1440,"scale":1.0,"transform":1,"disabled":false},
  {"id":3,"name":"DP-2","width":1920,"height":1080,"x":9000,"y":0,"scale":1.0,"transform":0,"disabled":true}
]`

// fakeCompositor answers requests on a unix socket from a fixed table.
type fakeCompositor struct {
	mu       sync.Mutex
	replies  map[string]string
	requests []string
}

func (f *fakeCompositor) serve(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "h.sock")
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			buf := make([]byte, 512)
			n, _ := conn.Read(buf)
			req := string(buf[:n])

			f.mu.Lock()
			f.requests = append(f.requests, req)
			reply, ok := f.replies[req]
			f.mu.Unlock()
			if !ok {
				reply = "unknown request"
			}
			_, _ = conn.Write([]byte(reply))
			_ = conn.Close()
		}
	}()
	return path
}

func (f *fakeCompositor) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func newTestAdapter(t *testing.T, replies map[string]string) (*Adapter, *fakeCompositor) {
	t.Helper()
	fake := &fakeCompositor{replies: replies}
	path := fake.serve(t)
	return NewAdapter(NewClient(path, time.Second)), fake
}

func TestParseMonitors(t *testing.T) {
	outputs, err := parseMonitors([]byte(monitorsReply))
	require.NoError(t, err)

	assert.Equal(t, []entity.Output{
		{Name: "DP-1", X: 0, Y: 0, Width: 2560, Height: 1440},
		{Name: "HDMI-A-1", X: 2560, Y: 0, Width: 1920, Height: 1080},
		{Name: "eDP-1", X: 0, Y: 1440, Width: 1080, Height: 1920},
	}, outputs)
}

func TestParseMonitors_Invalid(t *testing.T) {
	_, err := parseMonitors([]byte("not json"))
	assert.ErrorIs(t, err, errInvalidJSON)

	_, err = parseMonitors([]byte(`{"name":"DP-1"}`))
	assert.ErrorIs(t, err, errInvalidJSON)

	_, err = parseMonitors([]byte(`[{"width":10,"height":10}]`))
	assert.ErrorIs(t, err, errInvalidJSON)
}

func TestParseCursor(t *testing.T) {
	p, err := parseCursor([]byte(`{"x": 1919, "y": 540}`))
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 1919, Y: 540}, p)

	_, err = parseCursor([]byte(`{"x": 10}`))
	assert.ErrorIs(t, err, errInvalidJSON)
}

func TestParseVersion(t *testing.T) {
	v, err := parseVersion([]byte(`{"branch":"main","commit":"abc123","tag":"v0.45.2"}`))
	require.NoError(t, err)
	assert.Equal(t, "v0.45.2", v)

	v, err = parseVersion([]byte(`{"commit":"abc123"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc123", v)

	_, err = parseVersion([]byte(`{}`))
	assert.Error(t, err)
}

func TestAdapter_CursorPosition(t *testing.T) {
	adapter, _ := newTestAdapter(t, map[string]string{
		"j/cursorpos": `{"x": 2560, "y": 300}`,
	})

	p, err := adapter.CursorPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 2560, Y: 300}, p)
}

func TestAdapter_Outputs(t *testing.T) {
	adapter, _ := newTestAdapter(t, map[string]string{"j/monitors": monitorsReply})

	outputs, err := adapter.Outputs(context.Background())
	require.NoError(t, err)
	assert.Len(t, outputs, 3)
}

func TestAdapter_MoveCursor(t *testing.T) {
	adapter, fake := newTestAdapter(t, map[string]string{
		"dispatch movecursor 2560 300": "ok",
	})

	assert.Equal(t, port.MoveAbsolute, adapter.MoveMode())
	require.NoError(t, adapter.MoveCursor(context.Background(), entity.Point{X: 2560, Y: 300}))
	assert.Equal(t, []string{"dispatch movecursor 2560 300"}, fake.seen())

	err := adapter.MoveCursor(context.Background(), entity.Point{X: 1, Y: 1})
	assert.ErrorContains(t, err, "dispatch rejected")
}

func TestAdapter_Check(t *testing.T) {
	adapter, _ := newTestAdapter(t, map[string]string{
		"j/version": `{"tag":"v0.45.2"}`,
	})

	assert.Equal(t, "hyprland", adapter.Name())
	require.NoError(t, adapter.Check(context.Background()))
}

func TestAdapter_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".socket.sock")
	assert.Equal(t, path, NewAdapter(NewClient(path, time.Second)).Path())
}

func TestClient_DialFailure(t *testing.T) {
	client := NewClient(filepath.Join(t.TempDir(), "missing.sock"), 50*time.Millisecond)
	_, err := client.Request(context.Background(), "j/cursorpos")
	assert.Error(t, err)
}

func TestSocketPath(t *testing.T) {
	runtime := t.TempDir()
	sockDir := filepath.Join(runtime, "hypr", "abc")
	require.NoError(t, os.MkdirAll(sockDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sockDir, ".socket.sock"), nil, 0o600))

	env := map[string]string{
		"HYPRLAND_INSTANCE_SIGNATURE": "abc",
		"XDG_RUNTIME_DIR":             runtime,
	}

	t.Run("finds socket under runtime dir", func(t *testing.T) {
		path, err := SocketPath(func(k string) string { return env[k] })
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(sockDir, ".socket.sock"), path)
	})

	t.Run("missing signature", func(t *testing.T) {
		_, err := SocketPath(func(string) string { return "" })
		assert.ErrorIs(t, err, ErrNoInstance)
	})

	t.Run("unknown instance", func(t *testing.T) {
		_, err := SocketPath(func(k string) string {
			if k == "HYPRLAND_INSTANCE_SIGNATURE" {
				return "does-not-exist"
			}
			return env[k]
		})
		assert.ErrorIs(t, err, ErrNoInstance)
	})
}
