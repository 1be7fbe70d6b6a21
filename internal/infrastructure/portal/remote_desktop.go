// Package portal moves the cursor through the XDG Desktop Portal RemoteDesktop interface.
package portal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/domain/entity"
	"github.com/bnema/hyprwarp/internal/logging"
)

const (
	portalDest         = "org.freedesktop.portal.Desktop"
	portalPath         = "/org/freedesktop/portal/desktop"
	remoteDesktopIface = "org.freedesktop.portal.RemoteDesktop"
	requestIface       = "org.freedesktop.portal.Request"
	sessionIface       = "org.freedesktop.portal.Session"

	// Pointer bit of the RemoteDesktop device type mask.
	devicePointer = 2

	// StartTimeout bounds the session handshake, which waits on a user consent dialog.
	StartTimeout = 2 * time.Minute
)

var (
	// ErrRequestCancelled is returned when the user dismisses the consent dialog.
	ErrRequestCancelled = errors.New("portal request cancelled by user")
	// ErrPointerUnsupported is returned when the portal cannot emulate a pointer.
	ErrPointerUnsupported = errors.New("portal does not offer pointer devices")
)

// Compile-time interface checks.
var (
	_ port.CursorMover    = (*RemoteDesktopMover)(nil)
	_ port.BackendChecker = (*RemoteDesktopMover)(nil)
)

var tokenCounter atomic.Uint64

// RemoteDesktopMover emits relative pointer motion on a RemoteDesktop session.
// The session is opened once; opening it shows the compositor's consent dialog.
type RemoteDesktopMover struct {
	mu      sync.Mutex
	conn    *dbus.Conn
	session dbus.ObjectPath
}

// NewRemoteDesktopMover creates a mover. No D-Bus traffic happens until Open or MoveCursor.
func NewRemoteDesktopMover() *RemoteDesktopMover {
	return &RemoteDesktopMover{}
}

// Name identifies the backend in diagnostics.
func (m *RemoteDesktopMover) Name() string {
	return "portal"
}

// MoveMode reports that NotifyPointerMotion takes deltas.
func (m *RemoteDesktopMover) MoveMode() port.MoveMode {
	return port.MoveRelative
}

// Open connects to the session bus and runs the CreateSession, SelectDevices and
// Start handshake. Calling it again on an open mover is a no-op.
func (m *RemoteDesktopMover) Open(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openLocked(ctx)
}

func (m *RemoteDesktopMover) openLocked(ctx context.Context) error {
	if m.session != "" {
		return nil
	}
	log := logging.FromContext(ctx)

	if m.conn == nil {
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("connect session bus: %w", err)
		}
		m.conn = conn
	}

	ctx, cancel := context.WithTimeout(ctx, StartTimeout)
	defer cancel()

	token := nextToken()
	results, err := m.request(ctx, "CreateSession", token, map[string]dbus.Variant{
		"handle_token":         dbus.MakeVariant(token),
		"session_handle_token": dbus.MakeVariant(nextToken()),
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	session, err := sessionHandle(results)
	if err != nil {
		return err
	}

	token = nextToken()
	if _, err := m.request(ctx, "SelectDevices", token, session, map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
		"types":        dbus.MakeVariant(uint32(devicePointer)),
	}); err != nil {
		m.closeSession(session)
		return fmt.Errorf("select devices: %w", err)
	}

	token = nextToken()
	results, err = m.request(ctx, "Start", token, session, "", map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
	})
	if err != nil {
		m.closeSession(session)
		return fmt.Errorf("start session: %w", err)
	}
	if devices, ok := results["devices"]; ok {
		if bits, ok := devices.Value().(uint32); ok && bits&devicePointer == 0 {
			m.closeSession(session)
			return ErrPointerUnsupported
		}
	}

	m.session = session
	log.Info().Str("session", string(session)).Msg("portal: remote desktop session started")
	return nil
}

// MoveCursor moves the pointer by v, opening the session first if needed.
func (m *RemoteDesktopMover) MoveCursor(ctx context.Context, v entity.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.openLocked(ctx); err != nil {
		return err
	}
	return m.portal().CallWithContext(ctx, remoteDesktopIface+".NotifyPointerMotion", 0,
		m.session,
		map[string]dbus.Variant{},
		float64(v.X),
		float64(v.Y),
	).Err
}

// Check verifies the portal is reachable and offers pointer devices.
func (m *RemoteDesktopMover) Check(ctx context.Context) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(portalDest, portalPath)

	var version uint32
	if err := obj.CallWithContext(ctx, "org.freedesktop.DBus.Properties.Get", 0,
		remoteDesktopIface, "version").Store(&version); err != nil {
		return fmt.Errorf("remote desktop portal unavailable: %w", err)
	}

	var types uint32
	if err := obj.CallWithContext(ctx, "org.freedesktop.DBus.Properties.Get", 0,
		remoteDesktopIface, "AvailableDeviceTypes").Store(&types); err != nil {
		return fmt.Errorf("read device types: %w", err)
	}
	if types&devicePointer == 0 {
		return ErrPointerUnsupported
	}

	logging.FromContext(ctx).Debug().Uint32("version", version).Uint32("device_types", types).Msg("portal: available")
	return nil
}

// Close ends the session and releases the bus connection.
func (m *RemoteDesktopMover) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != "" {
		m.closeSession(m.session)
		m.session = ""
	}
	if m.conn != nil {
		err := m.conn.Close()
		m.conn = nil
		return err
	}
	return nil
}

func (m *RemoteDesktopMover) portal() dbus.BusObject {
	return m.conn.Object(portalDest, portalPath)
}

func (m *RemoteDesktopMover) closeSession(session dbus.ObjectPath) {
	_ = m.conn.Object(portalDest, session).Call(sessionIface+".Close", 0).Err
}

// request calls a portal method that answers through a Request object and waits
// for its Response signal. The match is installed before the call so a fast
// portal cannot answer before we listen.
func (m *RemoteDesktopMover) request(ctx context.Context, method, token string, args ...any) (map[string]dbus.Variant, error) {
	names := m.conn.Names()
	if len(names) == 0 {
		return nil, errors.New("no unique bus name")
	}
	expected := requestPath(names[0], token)

	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, expected,
	)
	if err := m.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		return nil, fmt.Errorf("add signal match: %w", err)
	}

	signals := make(chan *dbus.Signal, 4)
	m.conn.Signal(signals)
	defer func() {
		m.conn.RemoveSignal(signals)
		_ = m.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	var handle dbus.ObjectPath
	if err := m.portal().CallWithContext(ctx, remoteDesktopIface+"."+method, 0, args...).Store(&handle); err != nil {
		return nil, err
	}

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return nil, errors.New("bus connection closed")
			}
			if sig.Name != requestIface+".Response" {
				continue
			}
			if sig.Path != expected && sig.Path != handle {
				continue
			}
			return decodeResponse(sig.Body)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// requestPath builds the object path the portal uses for a request token.
func requestPath(uniqueName, token string) dbus.ObjectPath {
	sender := strings.ReplaceAll(strings.TrimPrefix(uniqueName, ":"), ".", "_")
	return dbus.ObjectPath(portalPath + "/request/" + sender + "/" + token)
}

func decodeResponse(body []any) (map[string]dbus.Variant, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("malformed response: %d values", len(body))
	}
	code, ok := body[0].(uint32)
	if !ok {
		return nil, fmt.Errorf("malformed response code %T", body[0])
	}
	results, _ := body[1].(map[string]dbus.Variant)

	switch code {
	case 0:
		return results, nil
	case 1:
		return nil, ErrRequestCancelled
	default:
		return nil, fmt.Errorf("portal request failed with code %d", code)
	}
}

func sessionHandle(results map[string]dbus.Variant) (dbus.ObjectPath, error) {
	v, ok := results["session_handle"]
	if !ok {
		return "", errors.New("response has no session_handle")
	}
	switch h := v.Value().(type) {
	case string:
		return dbus.ObjectPath(h), nil
	case dbus.ObjectPath:
		return h, nil
	default:
		return "", fmt.Errorf("unexpected session_handle type %T", h)
	}
}

func nextToken() string {
	return fmt.Sprintf("hyprwarp%d", tokenCounter.Add(1))
}
