// Package fieldmap is a 2D grid influence map with weighted A* pathfinding,
// built for real-time strategy game AI that needs to re-evaluate spatial
// danger/value and re-plan a path every simulation tick.
//
// What is fieldmap?
//
//	A single-threaded, zero-I/O library that brings together:
//
//	  • A row-major terrain grid: passable weight or impassable wall
//	  • An influence field derived from it, stamped each tick with
//	    threat radii, support auras, and other dynamic sources
//	  • A weighted A* search over that field, tuned for being invoked
//	    hundreds of times per tick and for large-unit footprints
//
// Why fieldmap?
//
//   - Deterministic  — every query is synchronous and depends only on
//     its inputs and the map's current state; no goroutines, no I/O
//   - Cheap to re-run — searches allocate only their own transient state
//     and release it before returning
//   - Tuned for AI, not for correctness proofs — a first-reached
//     predecessor policy trades optimality for speed; see the influence
//     package docs for the rationale
//
// Under the hood, the module is organized under three subpackages:
//
//	geom/      — Point2, GridPoint, Rectangle and their arithmetic
//	grid/      — BaseGrid, the external terrain source
//	influence/ — InfluenceMap: stamping, safe-spot queries, A*
//
// Quick usage sketch:
//
//	base, _ := grid.NewBaseGridFrom(w, h, terrainBytes)
//	im, err := influence.FromGrid(base)
//	im.AddInfluence(threatCenter, 4, 10, influence.NoDecay())
//	res, ok := im.PathfindDirection(unitPos, goalPos, false)
//
//	go get github.com/tacticai/fieldmap/influence
package fieldmap
