package geom

// Point2 is a 2D point with floating-point coordinates. All influence and
// safe-spot geometry is measured against cell centers of this type; grid
// indexing always floors a Point2 to a GridPoint.
type Point2 struct {
	X, Y float64
}

// NewPoint2 builds a Point2 from its coordinates.
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// GridPoint is an integer cell coordinate.
type GridPoint struct {
	X, Y int
}

// NewGridPoint builds a GridPoint from its coordinates.
func NewGridPoint(x, y int) GridPoint {
	return GridPoint{X: x, Y: y}
}

// Corner returns the bottom-left corner of the cell, i.e. (X, Y) itself
// reinterpreted as a Point2. Use Center for the point fieldmap actually
// surfaces to callers; Corner exists for index<->point round-tripping.
func (g GridPoint) Corner() Point2 {
	return Point2{X: float64(g.X), Y: float64(g.Y)}
}

// Center returns the cell-center convention point (X+0.5, Y+0.5).
func (g GridPoint) Center() Point2 {
	return Point2{X: float64(g.X) + 0.5, Y: float64(g.Y) + 0.5}
}

// Rectangle is an inclusive axis-aligned bounding box defined by its
// bottom-left corner P0 and top-right corner P1, both grid points.
type Rectangle struct {
	P0, P1 GridPoint
}

// NewRectangle builds a Rectangle from its bottom-left and top-right
// corners.
func NewRectangle(p0, p1 GridPoint) Rectangle {
	return Rectangle{P0: p0, P1: p1}
}

// Width returns p1.X - p0.X + 1, the inclusive cell count along X.
func (r Rectangle) Width() int {
	return r.P1.X - r.P0.X + 1
}

// Height returns p1.Y - p0.Y + 1, the inclusive cell count along Y.
func (r Rectangle) Height() int {
	return r.P1.Y - r.P0.Y + 1
}

// Contains reports whether p lies within the rectangle, inclusive of
// both corners.
func (r Rectangle) Contains(p GridPoint) bool {
	return p.X >= r.P0.X && p.X <= r.P1.X && p.Y >= r.P0.Y && p.Y <= r.P1.Y
}
