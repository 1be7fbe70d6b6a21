// Package warp computes where the cursor lands when it crosses onto an adjacent output.
package warp

import (
	"fmt"

	"github.com/bnema/hyprwarp/internal/domain/entity"
	"github.com/bnema/hyprwarp/internal/domain/layout"
)

// Plan describes a single warp.
type Plan struct {
	Side     entity.Side
	From     entity.Output
	Neighbor entity.Output
	Origin   entity.Point
	Target   entity.Point
}

// Delta returns the relative motion from the origin to the target.
func (p Plan) Delta() entity.Point {
	return p.Target.Sub(p.Origin)
}

// Planner selects neighbors from a registry and computes landing points.
type Planner struct {
	registry *layout.Registry
}

// NewPlanner creates a planner over the given registry.
func NewPlanner(registry *layout.Registry) *Planner {
	return &Planner{registry: registry}
}

// Plan resolves the touched border of current into a warp. Sides are tried in the
// order Up, Down, Left, Right and the first one with a neighbor wins, so a corner
// never mixes two directions. Returns entity.ErrNoAdjacentOutput when no side has one.
func (p *Planner) Plan(current entity.Output, point entity.Point, dir entity.Direction) (Plan, error) {
	if dir.IsEmpty() {
		return Plan{}, entity.ErrNoBorderTouch
	}

	for _, side := range dir.Sides() {
		neighbor, ok := p.registry.FindClosestInDirection(side, point, current.Name)
		if !ok {
			continue
		}
		return Plan{
			Side:     side,
			From:     current,
			Neighbor: neighbor,
			Origin:   point,
			Target:   Land(side, neighbor, point),
		}, nil
	}

	return Plan{}, fmt.Errorf("%w: %s from %s", entity.ErrNoAdjacentOutput, dir, current.Name)
}

// Land returns the point on the facing edge of neighbor for a move toward side.
// The perpendicular coordinate is kept unless it falls outside the neighbor's span,
// in which case it is pinned to the nearest edge point.
func Land(side entity.Side, neighbor entity.Output, p entity.Point) entity.Point {
	switch side {
	case entity.SideUp:
		return entity.Point{X: clamp(p.X, neighbor.X, neighbor.Right()), Y: neighbor.Bottom()}
	case entity.SideDown:
		return entity.Point{X: clamp(p.X, neighbor.X, neighbor.Right()), Y: neighbor.Y}
	case entity.SideLeft:
		return entity.Point{X: neighbor.Right(), Y: clamp(p.Y, neighbor.Y, neighbor.Bottom())}
	case entity.SideRight:
		return entity.Point{X: neighbor.X, Y: clamp(p.Y, neighbor.Y, neighbor.Bottom())}
	default:
		return p
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
