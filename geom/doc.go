// Package geom provides the 2D primitives shared by grid and influence:
// a floating-point point, an integer grid coordinate, and an inclusive
// axis-aligned rectangle.
//
// Cell-center convention: integer cell (i, j) occupies the unit square
// [i, i+1) x [j, j+1); its center is (i+0.5, j+0.5). Every point that
// fieldmap surfaces as "the position of a cell" uses that center, never
// the corner. GridPoint.Corner and GridPoint.Center both exist so callers
// can tell, at the type level, which convention a value follows.
package geom
