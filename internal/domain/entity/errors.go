package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContainingOutput means the cursor is outside every known output.
	ErrNoContainingOutput = errors.New("cursor outside all known outputs")
	// ErrNoBorderTouch means the cursor is inside an output but not on one of its edges.
	ErrNoBorderTouch = errors.New("cursor not on an output border")
	// ErrNoAdjacentOutput means a border was touched but no output lies in that direction.
	ErrNoAdjacentOutput = errors.New("no adjacent output in direction")

	ErrInvalidOutput   = errors.New("invalid output")
	ErrDuplicateOutput = errors.New("duplicate output name")
)

// CapabilityError wraps a failure of an external display/input capability.
type CapabilityError struct {
	Op  string // "read cursor", "enumerate outputs", "move cursor"
	Err error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}
