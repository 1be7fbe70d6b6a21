// Package port defines interfaces for external dependencies.
package port

import (
	"context"

	"github.com/bnema/hyprwarp/internal/domain/entity"
)

// CursorReader samples the pointer position.
type CursorReader interface {
	// CursorPosition returns the cursor location in virtual desktop coordinates.
	CursorPosition(ctx context.Context) (entity.Point, error)
}

// OutputEnumerator lists the current display layout.
type OutputEnumerator interface {
	// Outputs returns active outputs in compositor order.
	// Disabled outputs must not be returned.
	Outputs(ctx context.Context) ([]entity.Output, error)
}

// MoveMode tells which form of motion a CursorMover expects.
type MoveMode string

const (
	// MoveAbsolute movers take the target point.
	MoveAbsolute MoveMode = "absolute"
	// MoveRelative movers take the delta from the current position.
	MoveRelative MoveMode = "relative"
)

// CursorMover relocates the pointer.
type CursorMover interface {
	// MoveMode reports whether MoveCursor expects a target or a delta.
	MoveMode() MoveMode

	// MoveCursor moves the pointer. v is the absolute target for MoveAbsolute
	// movers and the delta for MoveRelative movers.
	MoveCursor(ctx context.Context, v entity.Point) error
}

// BackendChecker checks that a capability backend is usable.
type BackendChecker interface {
	Name() string
	Check(ctx context.Context) error
}
