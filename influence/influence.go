package influence

import (
	"fmt"
	"math"

	"github.com/tacticai/fieldmap/geom"
	"github.com/tacticai/fieldmap/grid"
)

// allocField allocates an n-element float64 slice, recovering from a
// make() panic (invalid size / allocator failure) and reporting it as
// ErrAllocation instead of crashing the process. This is the only
// allocation in the package that can be surfaced to a caller; every
// allocation inside a search collapses failure into "no result"
// instead (see pathfind.go).
func allocField(n int) (buf []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	buf = make([]float64, n)
	return buf, nil
}

// FromGrid allocates a W*H field and initializes it from base: a
// blocked base cell (0) becomes +Inf, a passable one becomes 1.0.
// Returns ErrAllocation if the field buffer could not be allocated.
func FromGrid(base *grid.BaseGrid) (*InfluenceMap, error) {
	field, err := allocField(base.Width * base.Height)
	if err != nil {
		return nil, err
	}
	im := &InfluenceMap{Width: base.Width, Height: base.Height, Field: field}
	im.fill(base)
	return im, nil
}

// Reset rebuilds im in place from base, which must have identical
// dimensions. Panics on a dimension mismatch: this is a precondition
// violation, not a recoverable error.
func (im *InfluenceMap) Reset(base *grid.BaseGrid) {
	if base.Width != im.Width || base.Height != im.Height {
		panic(fmt.Sprintf("influence: Reset dimension mismatch: map is %dx%d, base is %dx%d",
			im.Width, im.Height, base.Width, base.Height))
	}
	im.fill(base)
}

func (im *InfluenceMap) fill(base *grid.BaseGrid) {
	for i, b := range base.Cells {
		im.Field[i] = fromValue(b)
	}
}

// index maps (x, y) to its row-major offset into Field.
func (im *InfluenceMap) index(x, y int) int {
	return x + y*im.Width
}

// cellCenter returns the Point2 center of the cell at row-major index i.
func (im *InfluenceMap) cellCenter(i int) geom.Point2 {
	return geom.GridPoint{X: i % im.Width, Y: i / im.Width}.Center()
}

// stampBounds computes the integer cell bounding box of a disc of the
// given radius around center, clipped to the field's dimensions.
func (im *InfluenceMap) stampBounds(center geom.Point2, radius float64) (minX, minY, maxX, maxY int) {
	minX = int(center.X - radius)
	minY = int(center.Y - radius)
	maxX = int(center.X + radius)
	maxY = int(center.Y + radius)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > im.Width-1 {
		maxX = im.Width - 1
	}
	if maxY > im.Height-1 {
		maxY = im.Height - 1
	}
	return minX, minY, maxX, maxY
}

// AddInfluence stamps a filled disc of the given radius around center.
// Cells whose center lies strictly within radius of center (dist^2 <
// radius^2; rim-aligned centers are excluded) are written: decay.Kind
// DecayNone adds amount uniformly, DecayLinear interpolates between
// amount at the center and decay.EndAmount at the rim. After the write,
// every touched non-wall cell is clamped to be >= 1.0. +Inf cells in the
// bounding box are written too (the arithmetic collapses back to +Inf)
// rather than special-cased out, matching the reference behavior.
func (im *InfluenceMap) AddInfluence(center geom.Point2, radius, amount float64, decay Decay) {
	minX, minY, maxX, maxY := im.stampBounds(center, radius)
	radiusSq := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cellCenter := geom.GridPoint{X: x, Y: y}.Center()
			distSq := cellCenter.SquaredDistanceTo(center)
			if distSq >= radiusSq {
				continue
			}
			idx := im.index(x, y)
			delta := amount
			if decay.Kind == DecayLinear {
				t := 0.0
				if radius > 0 {
					t = math.Sqrt(distSq) / radius
				}
				delta = (1-t)*amount + t*decay.EndAmount
			}
			v := im.Field[idx] + delta
			if v < 1.0 {
				v = 1.0
			}
			im.Field[idx] = v
		}
	}
}

// AddInfluenceHollow stamps an annulus: AddInfluence(center, radius,
// amount, decay) followed by AddInfluence(center, hollowRadius, -amount,
// NoDecay()), so cells strictly inside hollowRadius receive zero net
// contribution before the final >= 1.0 clamp.
func (im *InfluenceMap) AddInfluenceHollow(center geom.Point2, radius, hollowRadius, amount float64, decay Decay) {
	im.AddInfluence(center, radius, amount, decay)
	im.AddInfluence(center, hollowRadius, -amount, NoDecay())
}
