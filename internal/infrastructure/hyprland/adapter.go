package hyprland

import (
	"context"
	"fmt"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/domain/entity"
	"github.com/bnema/hyprwarp/internal/logging"
)

// Compile-time interface checks.
var (
	_ port.CursorReader     = (*Adapter)(nil)
	_ port.OutputEnumerator = (*Adapter)(nil)
	_ port.CursorMover      = (*Adapter)(nil)
	_ port.BackendChecker   = (*Adapter)(nil)
)

// Adapter exposes the compositor as reader, enumerator and absolute mover.
type Adapter struct {
	client *Client
}

// NewAdapter wraps a socket client.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// Name identifies the backend in diagnostics.
func (a *Adapter) Name() string {
	return "hyprland"
}

// Path returns the request socket the adapter talks to.
func (a *Adapter) Path() string {
	return a.client.Path()
}

// CursorPosition returns the global cursor position.
func (a *Adapter) CursorPosition(ctx context.Context) (entity.Point, error) {
	reply, err := a.client.Request(ctx, "j/cursorpos")
	if err != nil {
		return entity.Point{}, err
	}
	return parseCursor(reply)
}

// Outputs returns the enabled monitors in layout coordinates.
func (a *Adapter) Outputs(ctx context.Context) ([]entity.Output, error) {
	reply, err := a.client.Request(ctx, "j/monitors")
	if err != nil {
		return nil, err
	}
	outputs, err := parseMonitors(reply)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Int("count", len(outputs)).Msg("hyprland: monitors enumerated")
	return outputs, nil
}

// MoveMode reports that movecursor takes absolute coordinates.
func (a *Adapter) MoveMode() port.MoveMode {
	return port.MoveAbsolute
}

// MoveCursor places the cursor at v through the movecursor dispatcher.
func (a *Adapter) MoveCursor(ctx context.Context, v entity.Point) error {
	reply, err := a.client.Request(ctx, fmt.Sprintf("dispatch movecursor %d %d", v.X, v.Y))
	if err != nil {
		return err
	}
	return checkDispatch(reply)
}

// Version returns the compositor release tag.
func (a *Adapter) Version(ctx context.Context) (string, error) {
	reply, err := a.client.Request(ctx, "j/version")
	if err != nil {
		return "", err
	}
	return parseVersion(reply)
}

// Check verifies the socket answers a version request.
func (a *Adapter) Check(ctx context.Context) error {
	version, err := a.Version(ctx)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("version", version).Str("socket", a.client.Path()).Msg("hyprland: reachable")
	return nil
}
