package usecase

import (
	"context"
	"errors"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/domain/entity"
	"github.com/bnema/hyprwarp/internal/domain/layout"
	"github.com/bnema/hyprwarp/internal/domain/warp"
	"github.com/bnema/hyprwarp/internal/logging"
)

// WarpOutcome classifies what a tick did.
type WarpOutcome string

const (
	WarpOutcomeUnchanged          WarpOutcome = "unchanged"
	WarpOutcomeNoContainingOutput WarpOutcome = "no_containing_output"
	WarpOutcomeNoBorderTouch      WarpOutcome = "no_border_touch"
	WarpOutcomeNoAdjacentOutput   WarpOutcome = "no_adjacent_output"
	WarpOutcomeAlreadyAtTarget    WarpOutcome = "already_at_target"
	WarpOutcomeWarped             WarpOutcome = "warped"
	WarpOutcomeReadFailed         WarpOutcome = "read_failed"
	WarpOutcomeMoveFailed         WarpOutcome = "move_failed"
)

// WarpTickOutput describes a single tick.
type WarpTickOutput struct {
	Outcome   WarpOutcome
	Point     entity.Point
	Output    entity.Output // zero unless the point is inside an output
	Direction entity.Direction
	Plan      *warp.Plan
	// Reason holds the sentinel for non-fatal outcomes (entity.ErrNoBorderTouch, ...).
	Reason error
}

// WarpCursorUseCase runs one step of the poll state machine: sample the cursor,
// and when it moved onto a border, warp it to the adjacent output.
// It owns the last seen point and is not safe for concurrent use.
type WarpCursorUseCase struct {
	reader   port.CursorReader
	mover    port.CursorMover
	registry *layout.Registry
	planner  *warp.Planner

	last   entity.Point
	primed bool
}

// NewWarpCursorUseCase creates a new use case over a loaded registry.
func NewWarpCursorUseCase(
	reader port.CursorReader,
	mover port.CursorMover,
	registry *layout.Registry,
) *WarpCursorUseCase {
	return &WarpCursorUseCase{
		reader:   reader,
		mover:    mover,
		registry: registry,
		planner:  warp.NewPlanner(registry),
	}
}

// LastPoint returns the cached cursor position and whether one was sampled yet.
func (uc *WarpCursorUseCase) LastPoint() (entity.Point, bool) {
	return uc.last, uc.primed
}

// Tick samples the cursor once. The returned error is non-nil only for capability
// failures (read or move), wrapped in *entity.CapabilityError; the output is always set.
// The first successful sample only primes the cache.
func (uc *WarpCursorUseCase) Tick(ctx context.Context) (*WarpTickOutput, error) {
	log := logging.FromContext(ctx)

	point, err := uc.reader.CursorPosition(ctx)
	if err != nil {
		return &WarpTickOutput{Outcome: WarpOutcomeReadFailed},
			&entity.CapabilityError{Op: "read cursor", Err: err}
	}

	out := &WarpTickOutput{Outcome: WarpOutcomeUnchanged, Point: point}

	if !uc.primed {
		uc.last = point
		uc.primed = true
		return out, nil
	}
	if point == uc.last {
		return out, nil
	}
	uc.last = point

	current, ok := uc.registry.FindContaining(point)
	if !ok {
		out.Outcome = WarpOutcomeNoContainingOutput
		out.Reason = entity.ErrNoContainingOutput
		log.Debug().Stringer("point", point).Str("outcome", string(out.Outcome)).Msg("cursor outside all known outputs")
		return out, nil
	}
	out.Output = current
	ctx = logging.WithOutput(ctx, current.Name)
	log = logging.FromContext(ctx)

	dir := current.BorderDirections(point)
	out.Direction = dir
	if dir.IsEmpty() {
		out.Outcome = WarpOutcomeNoBorderTouch
		out.Reason = entity.ErrNoBorderTouch
		return out, nil
	}

	plan, err := uc.planner.Plan(current, point, dir)
	if err != nil {
		out.Outcome = WarpOutcomeNoAdjacentOutput
		out.Reason = entity.ErrNoAdjacentOutput
		if !errors.Is(err, entity.ErrNoAdjacentOutput) {
			out.Reason = err
		}
		log.Debug().
			Stringer("point", point).
			Stringer("direction", dir).
			Bool("corner", dir.Count() > 1).
			Str("outcome", string(out.Outcome)).
			Msg("no adjacent output")
		return out, nil
	}
	out.Plan = &plan

	if plan.Target == point {
		out.Outcome = WarpOutcomeAlreadyAtTarget
		return out, nil
	}

	if err := uc.move(ctx, plan); err != nil {
		out.Outcome = WarpOutcomeMoveFailed
		return out, &entity.CapabilityError{Op: "move cursor", Err: err}
	}

	uc.last = plan.Target
	out.Outcome = WarpOutcomeWarped
	log.Info().
		Str("from", current.Name).
		Str("to", plan.Neighbor.Name).
		Str("side", string(plan.Side)).
		Stringer("origin", plan.Origin).
		Stringer("target", plan.Target).
		Msg("cursor warped")
	return out, nil
}

// move hands the mover the form of motion it expects.
func (uc *WarpCursorUseCase) move(ctx context.Context, plan warp.Plan) error {
	if uc.mover.MoveMode() == port.MoveRelative {
		return uc.mover.MoveCursor(ctx, plan.Delta())
	}
	return uc.mover.MoveCursor(ctx, plan.Target)
}
