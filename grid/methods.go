package grid

import (
	"fmt"

	"github.com/tacticai/fieldmap/geom"
)

// InBounds reports whether (x, y) lies within the grid.
func (g *BaseGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x, y) to its row-major offset into Cells. Panics if the
// coordinates are out of bounds: out-of-range access is a precondition
// violation, not a recoverable error.
func (g *BaseGrid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) out of bounds for %dx%d grid", x, y, g.Width, g.Height))
	}
	return x + y*g.Width
}

// PointToIndex maps a Point2 to its cell's row-major index, flooring
// both coordinates. Panics if the resulting cell is out of bounds.
func (g *BaseGrid) PointToIndex(p geom.Point2) int {
	c := p.Floor()
	return g.index(c.X, c.Y)
}

// IndexToPoint returns the integer cell corner (not the center) for a
// row-major index. Panics if idx is out of range.
func (g *BaseGrid) IndexToPoint(idx int) geom.GridPoint {
	if idx < 0 || idx >= len(g.Cells) {
		panic(fmt.Sprintf("grid: index %d out of range for %d cells", idx, len(g.Cells)))
	}
	return geom.GridPoint{X: idx % g.Width, Y: idx / g.Width}
}

// GetValue returns the terrain byte at the cell containing p. Panics if
// p falls outside the grid.
func (g *BaseGrid) GetValue(p geom.Point2) byte {
	return g.Cells[g.PointToIndex(p)]
}

// SetValues sets Cells[i] = v for every index in indices. Panics if any
// index is out of range.
func (g *BaseGrid) SetValues(indices []int, v byte) {
	for _, i := range indices {
		if i < 0 || i >= len(g.Cells) {
			panic(fmt.Sprintf("grid: index %d out of range for %d cells", i, len(g.Cells)))
		}
		g.Cells[i] = v
	}
}

// AllEqual reports whether every cell named by indices equals v. Panics
// if any index is out of range.
func (g *BaseGrid) AllEqual(indices []int, v byte) bool {
	for _, i := range indices {
		if i < 0 || i >= len(g.Cells) {
			panic(fmt.Sprintf("grid: index %d out of range for %d cells", i, len(g.Cells)))
		}
		if g.Cells[i] != v {
			return false
		}
	}
	return true
}

// Count sums the byte values named by indices, interpreted as unsigned.
// Panics if any index is out of range.
func (g *BaseGrid) Count(indices []int) int {
	total := 0
	for _, i := range indices {
		if i < 0 || i >= len(g.Cells) {
			panic(fmt.Sprintf("grid: index %d out of range for %d cells", i, len(g.Cells)))
		}
		total += int(g.Cells[i])
	}
	return total
}
