package entity

import "strings"

// Side is a single edge of an output.
type Side string

const (
	SideUp    Side = "up"
	SideDown  Side = "down"
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// AllSides lists every side in resolution order.
var AllSides = []Side{SideUp, SideDown, SideLeft, SideRight}

// Direction is a set of independent edge flags. A point on a corner sets two of them.
type Direction struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// DirectionOf returns a set holding the given sides.
func DirectionOf(sides ...Side) Direction {
	var d Direction
	for _, s := range sides {
		switch s {
		case SideUp:
			d.Up = true
		case SideDown:
			d.Down = true
		case SideLeft:
			d.Left = true
		case SideRight:
			d.Right = true
		}
	}
	return d
}

// Has reports whether side is in the set.
func (d Direction) Has(side Side) bool {
	switch side {
	case SideUp:
		return d.Up
	case SideDown:
		return d.Down
	case SideLeft:
		return d.Left
	case SideRight:
		return d.Right
	default:
		return false
	}
}

// Sides returns the set flags ordered Up, Down, Left, Right.
func (d Direction) Sides() []Side {
	sides := make([]Side, 0, len(AllSides))
	for _, s := range AllSides {
		if d.Has(s) {
			sides = append(sides, s)
		}
	}
	return sides
}

// Count returns the number of flags set.
func (d Direction) Count() int {
	return len(d.Sides())
}

// IsEmpty reports whether no flag is set.
func (d Direction) IsEmpty() bool {
	return !d.Up && !d.Down && !d.Left && !d.Right
}

func (d Direction) String() string {
	if d.IsEmpty() {
		return "none"
	}
	sides := d.Sides()
	parts := make([]string, len(sides))
	for i, s := range sides {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}
