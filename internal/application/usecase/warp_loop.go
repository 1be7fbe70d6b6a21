package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/bnema/hyprwarp/internal/logging"
)

// WarpLoopUseCase drives WarpCursorUseCase at a fixed poll interval.
type WarpLoopUseCase struct {
	warp     *WarpCursorUseCase
	interval atomic.Int64
}

// NewWarpLoopUseCase creates a new loop with the given poll interval.
func NewWarpLoopUseCase(warp *WarpCursorUseCase, interval time.Duration) *WarpLoopUseCase {
	uc := &WarpLoopUseCase{warp: warp}
	uc.interval.Store(int64(interval))
	return uc
}

// SetInterval changes the poll interval. Safe to call while Run is active;
// the new value applies from the next wait.
func (uc *WarpLoopUseCase) SetInterval(d time.Duration) {
	uc.interval.Store(int64(d))
}

// Interval returns the current poll interval.
func (uc *WarpLoopUseCase) Interval() time.Duration {
	return time.Duration(uc.interval.Load())
}

// RunWarpLoopInput contains parameters for the loop.
type RunWarpLoopInput struct {
	// MaxTicks stops the loop after that many ticks. Zero means run until cancelled.
	MaxTicks int
	// StopOnReadError makes a cursor read failure end the loop.
	StopOnReadError bool
	// OnTick, when set, receives every tick result.
	OnTick func(*WarpTickOutput)
}

// RunWarpLoopOutput summarises a finished loop.
type RunWarpLoopOutput struct {
	Ticks    int
	Outcomes map[WarpOutcome]int
}

// Warps returns the number of successful warps.
func (o *RunWarpLoopOutput) Warps() int {
	return o.Outcomes[WarpOutcomeWarped]
}

// Run polls until ctx is cancelled or MaxTicks is reached. Cancellation is a
// normal stop and returns a nil error. Move failures are logged and the loop
// continues; read failures do the same unless StopOnReadError is set.
func (uc *WarpLoopUseCase) Run(ctx context.Context, input RunWarpLoopInput) (*RunWarpLoopOutput, error) {
	log := logging.FromContext(ctx)
	result := &RunWarpLoopOutput{Outcomes: make(map[WarpOutcome]int)}

	log.Debug().
		Dur("interval", uc.Interval()).
		Int("max_ticks", input.MaxTicks).
		Msg("warp loop started")

	for {
		if ctx.Err() != nil {
			return result, nil
		}

		out, err := uc.warp.Tick(ctx)
		result.Ticks++
		result.Outcomes[out.Outcome]++
		if input.OnTick != nil {
			input.OnTick(out)
		}

		if err != nil {
			if ctx.Err() != nil {
				return result, nil
			}
			if out.Outcome == WarpOutcomeReadFailed && input.StopOnReadError {
				log.Error().Err(err).Msg("cursor read failed, stopping")
				return result, err
			}
			log.Warn().Err(err).Str("outcome", string(out.Outcome)).Msg("tick failed")
		}

		if input.MaxTicks > 0 && result.Ticks >= input.MaxTicks {
			log.Debug().Int("ticks", result.Ticks).Msg("warp loop reached tick limit")
			return result, nil
		}

		if err := sleepContext(ctx, uc.Interval()); err != nil {
			return result, nil
		}
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsCancellation reports whether err comes from a cancelled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
