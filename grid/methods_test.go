package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tacticai/fieldmap/geom"
)

func newTestGrid(t *testing.T) *BaseGrid {
	t.Helper()
	g, err := NewBaseGrid(10, 10)
	require.NoError(t, err)
	for i := range g.Cells {
		g.Cells[i] = 1
	}
	return g
}

func TestNewBaseGridRejectsBadDimensions(t *testing.T) {
	_, err := NewBaseGrid(0, 5)
	require.ErrorIs(t, err, ErrEmptyDimensions)
}

func TestNewBaseGridFromRejectsMismatchedCells(t *testing.T) {
	_, err := NewBaseGridFrom(3, 3, make([]byte, 8))
	require.ErrorIs(t, err, ErrCellCountMismatch)
}

func TestPointToIndexRoundTrip(t *testing.T) {
	g := newTestGrid(t)
	for j := 0; j < g.Height; j++ {
		for i := 0; i < g.Width; i++ {
			cell := geom.NewGridPoint(i, j)
			idx := g.PointToIndex(cell.Center())
			require.Equal(t, cell, g.IndexToPoint(idx))
		}
	}
}

func TestGetValueAfterSetValues(t *testing.T) {
	g := newTestGrid(t)
	idx := g.PointToIndex(geom.NewPoint2(2.5, 3.5))
	g.SetValues([]int{idx}, 0)
	require.Equal(t, byte(0), g.GetValue(geom.NewPoint2(2.5, 3.5)))
}

func TestAllEqualAndCount(t *testing.T) {
	g := newTestGrid(t)
	indices := []int{0, 1, 2, 3}
	require.True(t, g.AllEqual(indices, 1))
	require.Equal(t, 4, g.Count(indices))

	g.SetValues([]int{1}, 5)
	require.False(t, g.AllEqual(indices, 1))
	require.Equal(t, 8, g.Count(indices))
}

func TestOutOfBoundsIndexPanics(t *testing.T) {
	g := newTestGrid(t)
	require.Panics(t, func() { g.IndexToPoint(1000) })
	require.Panics(t, func() { g.SetValues([]int{-1}, 1) })
}
