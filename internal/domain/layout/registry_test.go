package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprwarp/internal/domain/entity"
)

func newTestRegistry(t *testing.T, opts Options, outputs ...entity.Output) *Registry {
	t.Helper()
	r := NewRegistry(opts)
	for _, o := range outputs {
		require.NoError(t, r.Add(o))
	}
	return r
}

func TestRegistry_AddRejectsInvalidAndDuplicates(t *testing.T) {
	r := NewRegistry(Options{})

	require.NoError(t, r.Add(entity.Output{Name: "DP-1", Width: 100, Height: 100}))
	require.ErrorIs(t, r.Add(entity.Output{Name: "DP-1", X: 100, Width: 100, Height: 100}), entity.ErrDuplicateOutput)
	require.ErrorIs(t, r.Add(entity.Output{Name: "DP-2", Width: -1, Height: 100}), entity.ErrInvalidOutput)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_OutputsReturnsCopy(t *testing.T) {
	r := newTestRegistry(t, Options{}, entity.Output{Name: "DP-1", Width: 100, Height: 100})

	outputs := r.Outputs()
	outputs[0].Name = "changed"

	assert.Equal(t, "DP-1", r.Outputs()[0].Name)
}

func TestRegistry_FindContaining(t *testing.T) {
	a := entity.Output{Name: "A", X: 0, Y: 0, Width: 100, Height: 100}
	c := entity.Output{Name: "C", X: 0, Y: 100, Width: 100, Height: 100}
	r := newTestRegistry(t, Options{}, a, c)

	got, ok := r.FindContaining(entity.Point{X: 50, Y: 150})
	require.True(t, ok)
	assert.Equal(t, "C", got.Name)

	// Shared edge: first registered output wins.
	got, ok = r.FindContaining(entity.Point{X: 50, Y: 100})
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, entity.Direction{Down: true}, got.BorderDirections(entity.Point{X: 50, Y: 100}))

	_, ok = r.FindContaining(entity.Point{X: 500, Y: 500})
	assert.False(t, ok)
}

func TestRegistry_FindClosestInDirection(t *testing.T) {
	// Layout:
	//        [top]
	// [left] [center] [right] [far]
	//        [bottom]
	center := entity.Output{Name: "center", X: 0, Y: 0, Width: 100, Height: 100}
	top := entity.Output{Name: "top", X: 0, Y: -100, Width: 100, Height: 100}
	bottom := entity.Output{Name: "bottom", X: 0, Y: 100, Width: 100, Height: 100}
	left := entity.Output{Name: "left", X: -100, Y: 0, Width: 100, Height: 100}
	right := entity.Output{Name: "right", X: 100, Y: 0, Width: 100, Height: 100}
	far := entity.Output{Name: "far", X: 200, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name    string
		outputs []entity.Output
		side    entity.Side
		point   entity.Point
		want    string
		wantOK  bool
	}{
		{
			name:    "right picks smallest x",
			outputs: []entity.Output{center, far, right},
			side:    entity.SideRight,
			point:   entity.Point{X: 100, Y: 50},
			want:    "right",
			wantOK:  true,
		},
		{
			name:    "left picks largest right edge",
			outputs: []entity.Output{center, left},
			side:    entity.SideLeft,
			point:   entity.Point{X: 0, Y: 50},
			want:    "left",
			wantOK:  true,
		},
		{
			name:    "up picks largest y",
			outputs: []entity.Output{center, top},
			side:    entity.SideUp,
			point:   entity.Point{X: 50, Y: 0},
			want:    "top",
			wantOK:  true,
		},
		{
			name:    "down picks smallest bottom",
			outputs: []entity.Output{center, bottom},
			side:    entity.SideDown,
			point:   entity.Point{X: 50, Y: 100},
			want:    "bottom",
			wantOK:  true,
		},
		{
			name:    "nothing to the right",
			outputs: []entity.Output{left, center},
			side:    entity.SideRight,
			point:   entity.Point{X: 100, Y: 50},
			wantOK:  false,
		},
		{
			name:    "unknown side",
			outputs: []entity.Output{center, right},
			side:    entity.Side("diagonal"),
			point:   entity.Point{X: 100, Y: 50},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t, Options{}, tt.outputs...)

			got, ok := r.FindClosestInDirection(tt.side, tt.point, "center")
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Name)
			}
		})
	}
}

func TestRegistry_FindClosestInDirectionTieGoesToFirstRegistered(t *testing.T) {
	current := entity.Output{Name: "current", X: 0, Y: 0, Width: 100, Height: 200}
	upper := entity.Output{Name: "upper", X: 100, Y: 0, Width: 100, Height: 100}
	lower := entity.Output{Name: "lower", X: 100, Y: 100, Width: 100, Height: 100}

	r := newTestRegistry(t, Options{}, current, upper, lower)
	got, ok := r.FindClosestInDirection(entity.SideRight, entity.Point{X: 100, Y: 150}, "current")
	require.True(t, ok)
	assert.Equal(t, "upper", got.Name)

	r = newTestRegistry(t, Options{}, current, lower, upper)
	got, ok = r.FindClosestInDirection(entity.SideRight, entity.Point{X: 100, Y: 150}, "current")
	require.True(t, ok)
	assert.Equal(t, "lower", got.Name)
}

func TestRegistry_FindClosestInDirectionExcludesCurrent(t *testing.T) {
	only := entity.Output{Name: "eDP-1", X: 0, Y: 0, Width: 100, Height: 100}
	r := newTestRegistry(t, Options{}, only)

	for _, side := range entity.AllSides {
		_, ok := r.FindClosestInDirection(side, entity.Point{X: 0, Y: 0}, "eDP-1")
		assert.False(t, ok, "side %s", side)
	}

	got, ok := r.FindClosestInDirection(entity.SideUp, entity.Point{X: 50, Y: 0}, "")
	require.True(t, ok, "without exclusion the output is its own candidate")
	assert.Equal(t, "eDP-1", got.Name)
}

func TestRegistry_VerticalNeighborsMustFaceTheBorder(t *testing.T) {
	a := entity.Output{Name: "A", X: 0, Y: 0, Width: 100, Height: 100}
	b := entity.Output{Name: "B", X: 100, Y: 0, Width: 100, Height: 100}
	above := entity.Output{Name: "above", X: 0, Y: -100, Width: 100, Height: 100}

	r := newTestRegistry(t, Options{}, a, b)
	_, ok := r.FindClosestInDirection(entity.SideUp, entity.Point{X: 50, Y: 0}, "A")
	assert.False(t, ok, "an output beside A is not above it")
	_, ok = r.FindClosestInDirection(entity.SideDown, entity.Point{X: 50, Y: 100}, "A")
	assert.False(t, ok, "an output beside A is not below it")

	r = newTestRegistry(t, Options{}, a, b, above)
	got, ok := r.FindClosestInDirection(entity.SideUp, entity.Point{X: 50, Y: 0}, "A")
	require.True(t, ok)
	assert.Equal(t, "above", got.Name)
}

func TestRegistry_LooseVertical(t *testing.T) {
	a := entity.Output{Name: "A", X: 0, Y: 0, Width: 100, Height: 100}
	b := entity.Output{Name: "B", X: 100, Y: 0, Width: 100, Height: 100}

	r := newTestRegistry(t, Options{LooseVertical: true}, a, b)
	got, ok := r.FindClosestInDirection(entity.SideUp, entity.Point{X: 50, Y: 0}, "A")
	require.True(t, ok)
	assert.Equal(t, "B", got.Name, "top edge at the same height is admissible")

	got, ok = r.FindClosestInDirection(entity.SideDown, entity.Point{X: 50, Y: 100}, "A")
	require.True(t, ok)
	assert.Equal(t, "B", got.Name)
}

func TestRegistry_Overlaps(t *testing.T) {
	r := newTestRegistry(t, Options{},
		entity.Output{Name: "A", X: 0, Y: 0, Width: 100, Height: 100},
		entity.Output{Name: "B", X: 100, Y: 0, Width: 100, Height: 100},
		entity.Output{Name: "mirror", X: 50, Y: 0, Width: 100, Height: 100},
	)

	overlaps := r.Overlaps()
	require.Len(t, overlaps, 2)
	assert.Equal(t, "A", overlaps[0].First.Name)
	assert.Equal(t, "mirror", overlaps[0].Second.Name)
	assert.Equal(t, "B", overlaps[1].First.Name)
	assert.Equal(t, "mirror", overlaps[1].Second.Name)
}
