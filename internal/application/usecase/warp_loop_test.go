package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/application/port/mocks"
	"github.com/bnema/hyprwarp/internal/domain/entity"
)

func TestWarpLoop_StopsAtMaxTicks(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader,
		entity.Point{X: 50, Y: 50},
		entity.Point{X: 100, Y: 50},
		entity.Point{X: 200, Y: 50},
		entity.Point{X: 250, Y: 50},
	)
	mover.EXPECT().MoveMode().Return(port.MoveAbsolute).Once()
	mover.EXPECT().MoveCursor(mock.Anything, entity.Point{X: 200, Y: 50}).Return(nil).Once()

	loop := NewWarpLoopUseCase(NewWarpCursorUseCase(reader, mover, gappedLayout(t)), 0)

	var seen []WarpOutcome
	out, err := loop.Run(context.Background(), RunWarpLoopInput{
		MaxTicks: 4,
		OnTick:   func(o *WarpTickOutput) { seen = append(seen, o.Outcome) },
	})
	require.NoError(t, err)

	assert.Equal(t, 4, out.Ticks)
	assert.Equal(t, 1, out.Warps())
	assert.Equal(t, []WarpOutcome{
		WarpOutcomeUnchanged,
		WarpOutcomeWarped,
		WarpOutcomeUnchanged,
		WarpOutcomeNoBorderTouch,
	}, seen)
}

func TestWarpLoop_ReadFailureContinuesByDefault(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	reader.EXPECT().CursorPosition(mock.Anything).Return(entity.Point{}, errors.New("timeout")).Once()
	expectPoints(reader, entity.Point{X: 10, Y: 10})

	loop := NewWarpLoopUseCase(NewWarpCursorUseCase(reader, mover, gappedLayout(t)), 0)
	out, err := loop.Run(context.Background(), RunWarpLoopInput{MaxTicks: 2})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Outcomes[WarpOutcomeReadFailed])
	assert.Equal(t, 1, out.Outcomes[WarpOutcomeUnchanged])
}

func TestWarpLoop_StopOnReadError(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	reader.EXPECT().CursorPosition(mock.Anything).Return(entity.Point{}, errors.New("timeout")).Once()

	loop := NewWarpLoopUseCase(NewWarpCursorUseCase(reader, mover, gappedLayout(t)), 0)
	out, err := loop.Run(context.Background(), RunWarpLoopInput{MaxTicks: 5, StopOnReadError: true})

	require.Error(t, err)
	var capErr *entity.CapabilityError
	assert.ErrorAs(t, err, &capErr)
	assert.Equal(t, 1, out.Ticks)
}

func TestWarpLoop_MoveFailureContinues(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader, entity.Point{X: 50, Y: 50}, entity.Point{X: 100, Y: 50}, entity.Point{X: 100, Y: 50})
	mover.EXPECT().MoveMode().Return(port.MoveAbsolute)
	mover.EXPECT().MoveCursor(mock.Anything, mock.Anything).Return(errors.New("denied")).Once()

	loop := NewWarpLoopUseCase(NewWarpCursorUseCase(reader, mover, gappedLayout(t)), 0)
	out, err := loop.Run(context.Background(), RunWarpLoopInput{MaxTicks: 3, StopOnReadError: true})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Outcomes[WarpOutcomeMoveFailed])
	assert.Equal(t, 3, out.Ticks)
}

func TestWarpLoop_CancelledContextStopsCleanly(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := NewWarpLoopUseCase(NewWarpCursorUseCase(reader, mover, gappedLayout(t)), time.Hour)
	out, err := loop.Run(ctx, RunWarpLoopInput{})

	require.NoError(t, err)
	assert.Zero(t, out.Ticks)
}

func TestWarpLoop_CancelDuringWait(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)

	ctx, cancel := context.WithCancel(context.Background())
	reader.EXPECT().CursorPosition(mock.Anything).
		RunAndReturn(func(context.Context) (entity.Point, error) {
			cancel()
			return entity.Point{X: 1, Y: 1}, nil
		}).Once()

	loop := NewWarpLoopUseCase(NewWarpCursorUseCase(reader, mover, gappedLayout(t)), time.Hour)

	done := make(chan struct{})
	var out *RunWarpLoopOutput
	go func() {
		defer close(done)
		out, _ = loop.Run(ctx, RunWarpLoopInput{})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after cancellation")
	}
	assert.Equal(t, 1, out.Ticks)
}

func TestWarpLoop_SetInterval(t *testing.T) {
	loop := NewWarpLoopUseCase(nil, 100*time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, loop.Interval())

	loop.SetInterval(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, loop.Interval())
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), 0))
	require.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, IsCancellation(sleepContext(ctx, time.Hour)))
	assert.True(t, IsCancellation(sleepContext(ctx, 0)))
}
