package influence

import (
	"fmt"

	"github.com/tacticai/fieldmap/geom"
)

// pointIndex floors p to its cell and returns that cell's row-major
// index. Panics if the cell falls outside the map: out-of-range access
// is a precondition violation, not a recoverable error.
func (im *InfluenceMap) pointIndex(p geom.Point2) int {
	c := p.Floor()
	if c.X < 0 || c.X >= im.Width || c.Y < 0 || c.Y >= im.Height {
		panic(fmt.Sprintf("influence: point %v floors to (%d,%d), out of bounds for %dx%d map",
			p, c.X, c.Y, im.Width, im.Height))
	}
	return im.index(c.X, c.Y)
}

// PathfindPath runs A* from start to goal and returns a fresh list of
// cell centers from start's immediate successor through goal itself
// (start's own cell is never included; goal's cell is the last
// element). large selects the large-unit neighbor-admissibility rule.
// Returns ok=false if the goal is unreachable (including when the goal
// cell is a wall, and when the search could not allocate its transient
// state).
func (im *InfluenceMap) PathfindPath(start, goal geom.Point2, large bool) (path []geom.Point2, ok bool) {
	startIdx := im.pointIndex(start)
	goalIdx := im.pointIndex(goal)

	if startIdx == goalIdx {
		return []geom.Point2{}, true
	}

	cameFrom, reached := im.runAStar(startIdx, goalIdx, large)
	if !reached {
		return nil, false
	}

	pathLen := cameFrom[goalIdx].pathLen
	path = make([]geom.Point2, pathLen)
	idx := goalIdx
	for i := pathLen - 1; i >= 0; i-- {
		path[i] = im.cellCenter(idx)
		idx = cameFrom[idx].prev
	}
	return path, true
}

// PathfindDirection runs the same search as PathfindPath but returns
// only the compact (path length, next point) pair a caller re-planning
// every tick actually needs: NextPoint is the cell center of the path
// element four steps back from goal (element pathLen-5 of the list
// PathfindPath returns, which is the fifth step from start on a
// nine-step path), or start's immediate successor if the path is shorter
// than five steps. It computes this without materializing the full path,
// walking back at most four predecessor links from goal instead of
// pathLen of them.
func (im *InfluenceMap) PathfindDirection(start, goal geom.Point2, large bool) (PathResult, bool) {
	startIdx := im.pointIndex(start)
	goalIdx := im.pointIndex(goal)

	if startIdx == goalIdx {
		return PathResult{PathLen: 0, NextPoint: im.cellCenter(goalIdx)}, true
	}

	cameFrom, reached := im.runAStar(startIdx, goalIdx, large)
	if !reached {
		return PathResult{}, false
	}

	pathLen := cameFrom[goalIdx].pathLen
	targetDepth := pathLen - 4
	if targetDepth < 1 {
		targetDepth = 1
	}

	idx := goalIdx
	for depth := pathLen; depth > targetDepth; depth-- {
		idx = cameFrom[idx].prev
	}

	return PathResult{PathLen: pathLen, NextPoint: im.cellCenter(idx)}, true
}
