// Package entity defines domain entities for output layouts and cursor warping.
package entity

import "fmt"

// Point is a cursor location in the shared virtual desktop coordinate space.
type Point struct {
	X, Y int
}

// Sub returns the delta that moves q onto p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Output represents a display as an axis-aligned rectangle in virtual desktop coordinates.
type Output struct {
	Name   string
	X, Y   int // Top-left corner
	Width  int
	Height int
}

// Right returns the x coordinate of the right edge.
func (o Output) Right() int {
	return o.X + o.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (o Output) Bottom() int {
	return o.Y + o.Height
}

// Contains reports whether p lies inside the output. Edges and corners count as inside,
// which lets the border check fire while the cursor is still within the output.
func (o Output) Contains(p Point) bool {
	return p.X >= o.X && p.X <= o.Right() && p.Y >= o.Y && p.Y <= o.Bottom()
}

// BorderDirections returns the set of edges p lies exactly on.
func (o Output) BorderDirections(p Point) Direction {
	inHorizontalSpan := p.X >= o.X && p.X <= o.Right()
	inVerticalSpan := p.Y >= o.Y && p.Y <= o.Bottom()

	return Direction{
		Up:    p.Y == o.Y && inHorizontalSpan,
		Down:  p.Y == o.Bottom() && inHorizontalSpan,
		Left:  p.X == o.X && inVerticalSpan,
		Right: p.X == o.Right() && inVerticalSpan,
	}
}

// Overlaps reports whether the interiors of o and other intersect.
// Outputs sharing only an edge do not overlap.
func (o Output) Overlaps(other Output) bool {
	return o.X < other.Right() && other.X < o.Right() &&
		o.Y < other.Bottom() && other.Y < o.Bottom()
}

// Validate checks the output can take part in a layout.
func (o Output) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidOutput)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %s has size %dx%d", ErrInvalidOutput, o.Name, o.Width, o.Height)
	}
	return nil
}

func (o Output) String() string {
	return fmt.Sprintf("%s %dx%d+%d+%d", o.Name, o.Width, o.Height, o.X, o.Y)
}
