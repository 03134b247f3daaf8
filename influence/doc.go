// Package influence implements the influence map: a per-cell float64
// field derived from a grid.BaseGrid, mutated by stamping dynamic
// influence sources, and searched by a weighted A* tuned for being
// invoked hundreds of times per simulation tick.
//
// Overview:
//
//   - FromGrid/Reset build the field from terrain: a blocked base cell
//     becomes +Inf (a permanent wall for this map instance) and a
//     passable one becomes 1.0.
//   - AddInfluence/AddInfluenceHollow stamp a disc or annulus of extra
//     value, with an optional linear radial decay, never lowering a
//     passable cell below 1.0 and never un-walling a +Inf cell.
//   - FindClosestSafeSpot scans a disc for a low-value cell: a cell
//     replaces the current best only if its value is no higher and it
//     is strictly closer to the query point.
//   - PathfindPath/PathfindDirection run A* over the field: cardinal
//     moves cost 1, diagonal moves cost sqrt(2), both scaled by the
//     destination cell's field value, with an octile-distance
//     heuristic and a fixed eight-neighbor admissibility rule that
//     forbids cutting corners and, for large units, forbids squeezing
//     through one-cell gaps.
//
// First-reached, not best-cost: once a cell is first discovered during
// a search, its predecessor is never revisited even if a cheaper route
// is found later. Because cost varies with the field, this is not
// cost-optimal in general — on a uniform field the octile heuristic
// still discovers cells along a near-optimal route, and on a stamped
// field the resulting detours read as "route around the danger," which
// is the intended behavior here, not a bug to fix. Switching to a
// best-cost relaxation policy will change path lengths on stamped
// fields; treat that as a deliberate, re-baselined change, not a drop-in
// improvement.
//
// Allocation failures during a search (and an unreachable goal, and a
// goal cell that is a wall) all collapse into a single "no result"
// outcome from PathfindPath/PathfindDirection: callers cannot tell "no
// path exists" from "ran out of memory mid-search" and are expected to
// fall back identically either way (skip this tick, try again next
// tick). FromGrid surfaces an allocation failure as an error instead,
// since construction happens far less often than a search.
package influence
