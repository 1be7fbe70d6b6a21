// Package layout holds the snapshot of display outputs and the geometric queries over it.
package layout

import (
	"fmt"

	"github.com/bnema/hyprwarp/internal/domain/entity"
)

// Options tunes neighbor selection.
type Options struct {
	// LooseVertical widens Up/Down candidates from outputs whose facing edge is
	// on or beyond the border (Up: Bottom <= y, Down: Y >= y) to any output
	// whose far edge is (Up: Y <= y, Down: Bottom >= y). Side-by-side outputs
	// then qualify vertically, so a cursor on a top or bottom edge can jump
	// sideways. Left/Right always compare facing edges.
	LooseVertical bool
}

// Registry is an ordered collection of outputs. It is filled during setup and
// only queried afterwards.
type Registry struct {
	outputs []entity.Output
	opts    Options
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	return &Registry{opts: opts}
}

// Add appends an output. Names must be unique and sizes positive.
func (r *Registry) Add(output entity.Output) error {
	if err := output.Validate(); err != nil {
		return err
	}
	for _, existing := range r.outputs {
		if existing.Name == output.Name {
			return fmt.Errorf("%w: %s", entity.ErrDuplicateOutput, output.Name)
		}
	}
	r.outputs = append(r.outputs, output)
	return nil
}

// Outputs returns a copy of the registered outputs in registration order.
func (r *Registry) Outputs() []entity.Output {
	out := make([]entity.Output, len(r.outputs))
	copy(out, r.outputs)
	return out
}

// Len returns the number of registered outputs.
func (r *Registry) Len() int {
	return len(r.outputs)
}

// FindContaining returns the first output, in registration order, that contains p.
func (r *Registry) FindContaining(p entity.Point) (entity.Output, bool) {
	for _, o := range r.outputs {
		if o.Contains(p) {
			return o, true
		}
	}
	return entity.Output{}, false
}

// FindClosestInDirection returns the closest output in the given direction from p,
// skipping the output named exclude. Ties go to the first registered output since
// the best candidate is only replaced on strict improvement.
func (r *Registry) FindClosestInDirection(side entity.Side, p entity.Point, exclude string) (entity.Output, bool) {
	var best *entity.Output

	for i := range r.outputs {
		candidate := &r.outputs[i]
		if candidate.Name == exclude {
			continue
		}
		if !r.admissible(side, *candidate, p) {
			continue
		}
		if best == nil || closer(side, *candidate, *best) {
			best = candidate
		}
	}

	if best == nil {
		return entity.Output{}, false
	}
	return *best, true
}

func (r *Registry) admissible(side entity.Side, o entity.Output, p entity.Point) bool {
	switch side {
	case entity.SideUp:
		if r.opts.LooseVertical {
			return o.Y <= p.Y
		}
		return o.Bottom() <= p.Y
	case entity.SideDown:
		if r.opts.LooseVertical {
			return o.Bottom() >= p.Y
		}
		return o.Y >= p.Y
	case entity.SideLeft:
		return o.Right() <= p.X
	case entity.SideRight:
		return o.X >= p.X
	default:
		return false
	}
}

// closer reports whether a strictly beats b for the given side.
func closer(side entity.Side, a, b entity.Output) bool {
	switch side {
	case entity.SideUp:
		return a.Y > b.Y
	case entity.SideDown:
		return a.Bottom() < b.Bottom()
	case entity.SideLeft:
		return a.Right() > b.Right()
	case entity.SideRight:
		return a.X < b.X
	default:
		return false
	}
}

// Overlap is a pair of outputs whose interiors intersect.
type Overlap struct {
	First, Second entity.Output
}

// Overlaps lists every pair of overlapping outputs. Neighbor selection assumes
// there are none.
func (r *Registry) Overlaps() []Overlap {
	var overlaps []Overlap
	for i := 0; i < len(r.outputs); i++ {
		for j := i + 1; j < len(r.outputs); j++ {
			if r.outputs[i].Overlaps(r.outputs[j]) {
				overlaps = append(overlaps, Overlap{First: r.outputs[i], Second: r.outputs[j]})
			}
		}
	}
	return overlaps
}
