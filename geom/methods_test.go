package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceToIsSymmetric(t *testing.T) {
	a := NewPoint2(1.5, -2.25)
	b := NewPoint2(-7, 4.5)
	require.InDelta(t, a.DistanceTo(b), b.DistanceTo(a), 1e-12)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	a := NewPoint2(3, 4)
	once := a.Normalize()
	twice := once.Normalize()
	require.InDelta(t, once.X, twice.X, 1e-12)
	require.InDelta(t, once.Y, twice.Y, 1e-12)
	require.InDelta(t, 1.0, once.Length(), 1e-12)
}

func TestNormalizeZeroVector(t *testing.T) {
	z := NewPoint2(0, 0)
	require.Equal(t, z, z.Normalize())
}

func TestOctileDistance(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Point2
		expected float64
	}{
		{"pure cardinal", NewPoint2(0, 0), NewPoint2(5, 0), 5},
		{"pure diagonal", NewPoint2(0, 0), NewPoint2(3, 3), 3 * math.Sqrt2},
		{"mixed", NewPoint2(0, 0), NewPoint2(4, 1), 3 + math.Sqrt2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.expected, tc.a.OctileDistanceTo(tc.b), 1e-9)
		})
	}
}

func TestTowardsZeroDistanceGuard(t *testing.T) {
	a := NewPoint2(2, 2)
	require.Equal(t, a, Towards(a, a, 10))
}

func TestTowardsMovesExactDistanceNoClamp(t *testing.T) {
	a := NewPoint2(0, 0)
	b := NewPoint2(10, 0)
	got := Towards(a, b, 15)
	require.InDelta(t, 15, got.X, 1e-9)
	require.InDelta(t, 0, got.Y, 1e-9)
}

func TestFloorCeilAndCellCenterConvention(t *testing.T) {
	p := NewPoint2(3.7, -1.2)
	require.Equal(t, NewGridPoint(3, -2), p.Floor())
	require.Equal(t, NewGridPoint(4, -1), p.Ceil())

	cell := NewGridPoint(3, -2)
	require.Equal(t, NewPoint2(3.5, -1.5), cell.Center())
	require.Equal(t, NewPoint2(3, -2), cell.Corner())
}

func TestRectangleWidthHeightAndContains(t *testing.T) {
	r := NewRectangle(NewGridPoint(2, 3), NewGridPoint(5, 7))
	require.Equal(t, 4, r.Width())
	require.Equal(t, 5, r.Height())
	require.True(t, r.Contains(NewGridPoint(2, 3)))
	require.True(t, r.Contains(NewGridPoint(5, 7)))
	require.False(t, r.Contains(NewGridPoint(6, 3)))
	require.False(t, r.Contains(NewGridPoint(2, 2)))
}
