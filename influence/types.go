package influence

import (
	"math"

	"github.com/tacticai/fieldmap/geom"
)

// InfluenceMap is a row-major W*H field of float64 weights, built from a
// grid.BaseGrid and mutated by influence stamps. A cell initialized from
// a blocked base cell holds +Inf for the lifetime of this instance;
// a stamp leaves +Inf cells at +Inf, and they are always treated as
// walls. Every other cell holds >= 1.0 after any stamp touches it.
type InfluenceMap struct {
	Width, Height int
	Field         []float64
}

// DecayKind selects how a stamped value varies with distance from the
// source center. It is a closed variant: extension points (exponential,
// Gaussian falloff, ...) should be additional DecayKind values handled
// by AddInfluence, not an open interface.
type DecayKind int

const (
	// DecayNone adds a uniform amount everywhere inside the stamp disc.
	DecayNone DecayKind = iota
	// DecayLinear interpolates linearly from Amount at the center to
	// EndAmount at the stamp's rim.
	DecayLinear
)

// Decay describes how an influence stamp's value falls off with
// distance from its center.
type Decay struct {
	Kind      DecayKind
	EndAmount float64
}

// NoDecay returns a Decay that adds a uniform amount across the disc.
func NoDecay() Decay {
	return Decay{Kind: DecayNone}
}

// LinearDecay returns a Decay that interpolates linearly down to
// endAmount at the stamp's rim.
func LinearDecay(endAmount float64) Decay {
	return Decay{Kind: DecayLinear, EndAmount: endAmount}
}

// PathResult is the compact (path length, next point) record returned
// by PathfindDirection for hot-loop use: NextPoint is the cell center of
// the path element four steps back from goal (element PathLen-5 of
// PathfindPath's list), or start's immediate successor if the path is
// shorter than five steps.
type PathResult struct {
	PathLen   int
	NextPoint geom.Point2
}

// isWall reports whether v marks an impassable cell. +Inf ± a finite
// amount stays +Inf, so any arithmetic performed on a wall cell during
// a stamp leaves it a wall regardless.
func isWall(v float64) bool {
	return math.IsInf(v, 1)
}

// fromValue maps a base grid byte to its initial field value: +Inf for
// 0 (blocked), 1.0 for any positive value.
func fromValue(base byte) float64 {
	if base == 0 {
		return math.Inf(1)
	}
	return 1.0
}
