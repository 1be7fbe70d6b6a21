package portal

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprwarp/internal/application/port"
)

func TestRequestPath(t *testing.T) {
	got := requestPath(":1.42", "hyprwarp7")
	assert.Equal(t, dbus.ObjectPath("/org/freedesktop/portal/desktop/request/1_42/hyprwarp7"), got)
	assert.True(t, got.IsValid())
}

func TestDecodeResponse(t *testing.T) {
	results := map[string]dbus.Variant{"session_handle": dbus.MakeVariant("/org/freedesktop/portal/desktop/session/1_42/s1")}

	got, err := decodeResponse([]any{uint32(0), results})
	require.NoError(t, err)
	assert.Equal(t, results, got)

	_, err = decodeResponse([]any{uint32(1), map[string]dbus.Variant{}})
	assert.ErrorIs(t, err, ErrRequestCancelled)

	_, err = decodeResponse([]any{uint32(2), map[string]dbus.Variant{}})
	assert.ErrorContains(t, err, "code 2")

	_, err = decodeResponse([]any{uint32(0)})
	assert.Error(t, err)

	_, err = decodeResponse([]any{"0", map[string]dbus.Variant{}})
	assert.Error(t, err)
}

func TestSessionHandle(t *testing.T) {
	h, err := sessionHandle(map[string]dbus.Variant{
		"session_handle": dbus.MakeVariant("/org/freedesktop/portal/desktop/session/1_42/s1"),
	})
	require.NoError(t, err)
	assert.Equal(t, dbus.ObjectPath("/org/freedesktop/portal/desktop/session/1_42/s1"), h)

	h, err = sessionHandle(map[string]dbus.Variant{
		"session_handle": dbus.MakeVariant(dbus.ObjectPath("/s2")),
	})
	require.NoError(t, err)
	assert.Equal(t, dbus.ObjectPath("/s2"), h)

	_, err = sessionHandle(map[string]dbus.Variant{})
	assert.Error(t, err)
}

func TestTokensAreUnique(t *testing.T) {
	a, b := nextToken(), nextToken()
	assert.NotEqual(t, a, b)
}

func TestRemoteDesktopMover_Identity(t *testing.T) {
	m := NewRemoteDesktopMover()
	assert.Equal(t, "portal", m.Name())
	assert.Equal(t, port.MoveRelative, m.MoveMode())
	assert.NoError(t, m.Close())
}
