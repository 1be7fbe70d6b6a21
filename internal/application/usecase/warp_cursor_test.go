package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/application/port/mocks"
	"github.com/bnema/hyprwarp/internal/domain/entity"
	"github.com/bnema/hyprwarp/internal/domain/layout"
	"github.com/bnema/hyprwarp/internal/logging"
)

// gappedLayout has a 100px hole between A and B so a warp always moves the cursor.
func gappedLayout(t *testing.T) *layout.Registry {
	t.Helper()
	r := layout.NewRegistry(layout.Options{})
	require.NoError(t, r.Add(entity.Output{Name: "A", X: 0, Y: 0, Width: 100, Height: 100}))
	require.NoError(t, r.Add(entity.Output{Name: "B", X: 200, Y: 0, Width: 100, Height: 100}))
	return r
}

func expectPoints(reader *mocks.MockCursorReader, points ...entity.Point) {
	for _, p := range points {
		reader.EXPECT().CursorPosition(mock.Anything).Return(p, nil).Once()
	}
}

func tickN(t *testing.T, uc *WarpCursorUseCase, n int) *WarpTickOutput {
	t.Helper()
	var out *WarpTickOutput
	for range n {
		var err error
		out, err = uc.Tick(context.Background())
		require.NoError(t, err)
	}
	return out
}

func TestWarpCursor_FirstSamplePrimesOnly(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader, entity.Point{X: 100, Y: 50})

	uc := NewWarpCursorUseCase(reader, mover, gappedLayout(t))
	out := tickN(t, uc, 1)

	assert.Equal(t, WarpOutcomeUnchanged, out.Outcome)
	last, primed := uc.LastPoint()
	assert.True(t, primed)
	assert.Equal(t, entity.Point{X: 100, Y: 50}, last)
}

func TestWarpCursor_UnchangedPositionOnlyReads(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	p := entity.Point{X: 100, Y: 50}
	expectPoints(reader, p, p, p)

	uc := NewWarpCursorUseCase(reader, mover, gappedLayout(t))
	for range 3 {
		out, err := uc.Tick(context.Background())
		require.NoError(t, err)
		assert.Equal(t, WarpOutcomeUnchanged, out.Outcome)
	}
	mover.AssertNotCalled(t, "MoveCursor", mock.Anything, mock.Anything)
	mover.AssertNotCalled(t, "MoveMode")
}

func TestWarpCursor_WarpsAbsolute(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader, entity.Point{X: 50, Y: 50}, entity.Point{X: 100, Y: 40})
	mover.EXPECT().MoveMode().Return(port.MoveAbsolute)
	mover.EXPECT().MoveCursor(mock.Anything, entity.Point{X: 200, Y: 40}).Return(nil).Once()

	uc := NewWarpCursorUseCase(reader, mover, gappedLayout(t))
	out := tickN(t, uc, 2)

	assert.Equal(t, WarpOutcomeWarped, out.Outcome)
	require.NotNil(t, out.Plan)
	assert.Equal(t, "B", out.Plan.Neighbor.Name)
	assert.Equal(t, entity.SideRight, out.Plan.Side)

	last, _ := uc.LastPoint()
	assert.Equal(t, entity.Point{X: 200, Y: 40}, last)
}

func TestWarpCursor_WarpsRelative(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader, entity.Point{X: 250, Y: 10}, entity.Point{X: 200, Y: 10})
	mover.EXPECT().MoveMode().Return(port.MoveRelative)
	mover.EXPECT().MoveCursor(mock.Anything, entity.Point{X: -100, Y: 0}).Return(nil).Once()

	uc := NewWarpCursorUseCase(reader, mover, gappedLayout(t))
	out := tickN(t, uc, 2)

	assert.Equal(t, WarpOutcomeWarped, out.Outcome)
	assert.Equal(t, entity.SideLeft, out.Plan.Side)
	assert.Equal(t, entity.Point{X: 100, Y: 10}, out.Plan.Target)
}

func TestWarpCursor_WarpedTargetDoesNotRetrigger(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	// After the warp the compositor reports the cursor at the target.
	expectPoints(reader,
		entity.Point{X: 50, Y: 50},
		entity.Point{X: 100, Y: 50},
		entity.Point{X: 200, Y: 50},
	)
	mover.EXPECT().MoveMode().Return(port.MoveAbsolute).Once()
	mover.EXPECT().MoveCursor(mock.Anything, entity.Point{X: 200, Y: 50}).Return(nil).Once()

	uc := NewWarpCursorUseCase(reader, mover, gappedLayout(t))
	out := tickN(t, uc, 3)

	assert.Equal(t, WarpOutcomeUnchanged, out.Outcome)
}

func TestWarpCursor_NonFatalOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		point   entity.Point
		outcome WarpOutcome
		reason  error
	}{
		{"in the gap", entity.Point{X: 150, Y: 50}, WarpOutcomeNoContainingOutput, entity.ErrNoContainingOutput},
		{"interior", entity.Point{X: 50, Y: 60}, WarpOutcomeNoBorderTouch, entity.ErrNoBorderTouch},
		{"right edge of rightmost", entity.Point{X: 300, Y: 50}, WarpOutcomeNoAdjacentOutput, entity.ErrNoAdjacentOutput},
		{"left edge of leftmost", entity.Point{X: 0, Y: 30}, WarpOutcomeNoAdjacentOutput, entity.ErrNoAdjacentOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := mocks.NewMockCursorReader(t)
			mover := mocks.NewMockCursorMover(t)
			expectPoints(reader, entity.Point{X: 60, Y: 60}, tt.point)

			uc := NewWarpCursorUseCase(reader, mover, gappedLayout(t))
			out := tickN(t, uc, 2)

			assert.Equal(t, tt.outcome, out.Outcome)
			assert.ErrorIs(t, out.Reason, tt.reason)
			mover.AssertNotCalled(t, "MoveCursor", mock.Anything, mock.Anything)
		})
	}
}

func TestWarpCursor_SharedEdgeIsAlreadyAtTarget(t *testing.T) {
	r := layout.NewRegistry(layout.Options{})
	require.NoError(t, r.Add(entity.Output{Name: "A", X: 0, Y: 0, Width: 100, Height: 100}))
	require.NoError(t, r.Add(entity.Output{Name: "B", X: 100, Y: 0, Width: 100, Height: 100}))

	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader, entity.Point{X: 50, Y: 50}, entity.Point{X: 100, Y: 50})

	uc := NewWarpCursorUseCase(reader, mover, r)
	out := tickN(t, uc, 2)

	assert.Equal(t, WarpOutcomeAlreadyAtTarget, out.Outcome)
	assert.Equal(t, entity.Point{X: 100, Y: 50}, out.Plan.Target)
	mover.AssertNotCalled(t, "MoveCursor", mock.Anything, mock.Anything)
}

func TestWarpCursor_TopEdgeBesideNeighborStays(t *testing.T) {
	r := layout.NewRegistry(layout.Options{})
	require.NoError(t, r.Add(entity.Output{Name: "A", X: 0, Y: 0, Width: 100, Height: 100}))
	require.NoError(t, r.Add(entity.Output{Name: "B", X: 100, Y: 0, Width: 100, Height: 100}))

	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader, entity.Point{X: 50, Y: 50}, entity.Point{X: 50, Y: 0})

	uc := NewWarpCursorUseCase(reader, mover, r)
	out := tickN(t, uc, 2)

	assert.Equal(t, WarpOutcomeNoAdjacentOutput, out.Outcome)
	assert.Equal(t, entity.Direction{Up: true}, out.Direction)
	assert.Nil(t, out.Plan)
	mover.AssertNotCalled(t, "MoveCursor", mock.Anything, mock.Anything)
}

func TestWarpCursor_LogsCornerWithoutNeighbor(t *testing.T) {
	r := layout.NewRegistry(layout.Options{})
	require.NoError(t, r.Add(entity.Output{Name: "A", X: 0, Y: 0, Width: 100, Height: 100}))

	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader, entity.Point{X: 50, Y: 50}, entity.Point{X: 0, Y: 0})

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))

	uc := NewWarpCursorUseCase(reader, mover, r)
	var out *WarpTickOutput
	for range 2 {
		var err error
		out, err = uc.Tick(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, WarpOutcomeNoAdjacentOutput, out.Outcome)
	assert.Contains(t, buf.String(), `"corner":true`)
}

func TestWarpCursor_ReadFailure(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	reader.EXPECT().CursorPosition(mock.Anything).Return(entity.Point{}, errors.New("socket closed")).Once()

	uc := NewWarpCursorUseCase(reader, mover, gappedLayout(t))
	out, err := uc.Tick(context.Background())

	require.Error(t, err)
	assert.Equal(t, WarpOutcomeReadFailed, out.Outcome)
	var capErr *entity.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "read cursor", capErr.Op)

	_, primed := uc.LastPoint()
	assert.False(t, primed)
}

func TestWarpCursor_MoveFailure(t *testing.T) {
	reader := mocks.NewMockCursorReader(t)
	mover := mocks.NewMockCursorMover(t)
	expectPoints(reader, entity.Point{X: 50, Y: 50}, entity.Point{X: 100, Y: 50})
	mover.EXPECT().MoveMode().Return(port.MoveAbsolute)
	mover.EXPECT().MoveCursor(mock.Anything, mock.Anything).Return(errors.New("ydotoold not running")).Once()

	uc := NewWarpCursorUseCase(reader, mover, gappedLayout(t))
	_, err := uc.Tick(context.Background())
	require.NoError(t, err)
	out, err := uc.Tick(context.Background())

	require.Error(t, err)
	assert.Equal(t, WarpOutcomeMoveFailed, out.Outcome)
	var capErr *entity.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "move cursor", capErr.Op)

	last, _ := uc.LastPoint()
	assert.Equal(t, entity.Point{X: 100, Y: 50}, last)
}
