// Package grid provides BaseGrid, the fixed-size row-major byte field
// that represents terrain passability: 0 means blocked, any positive
// value is passable (tests in this repo use 1). influence.FromGrid and
// Reset map every positive value to 1.0, so the magnitude of a passable
// value does not change A* costs.
//
// BaseGrid is the external collaborator the rest of this module builds
// on: it owns no influence or pathfinding logic, only storage, point<->
// index conversion, and the bulk edits the test scenarios rely on
// (influence.FromGrid/Reset read Cells directly).
package grid
