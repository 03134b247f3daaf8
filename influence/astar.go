package influence

import (
	"container/heap"
	"math"

	"github.com/kelindar/bitmap"
)

// cameFromEntry records, for a discovered cell, the cell it was first
// reached from and that cell's distance (in steps) from start. Once
// written at discovery time it is never updated: this is a first-
// reached, not best-cost, predecessor policy (see package docs).
type cameFromEntry struct {
	prev    int
	pathLen int
}

// openItem is one entry of the A* open queue: a cell index ordered by
// g(n) + h(n).
type openItem struct {
	index    int
	priority float64
}

// openQueue is a container/heap min-heap of openItem, ordered by
// ascending priority. Because a cell is pushed at most once (marked
// discovered at push time, see runAStar), there is no lazy-deletion or
// decrease-key bookkeeping to do here, unlike a general Dijkstra/A*
// that may re-relax a node.
type openQueue []openItem

func (q openQueue) Len() int            { return len(q) }
func (q openQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q openQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *openQueue) Push(x interface{}) { *q = append(*q, x.(openItem)) }
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// neighborWallFlags reports, for each of the eight neighbors of (x, y),
// whether that neighbor lies inside the grid and is not a wall. Out of
// bounds counts as a wall for the purposes of corner-cut and large-unit
// gap checks.
func (im *InfluenceMap) neighborWallFlags(x, y int) (nw, n, ne, w, e, sw, s, se bool) {
	passable := func(nx, ny int) bool {
		if nx < 0 || nx >= im.Width || ny < 0 || ny >= im.Height {
			return false
		}
		return !isWall(im.Field[im.index(nx, ny)])
	}
	nw = passable(x-1, y-1)
	n = passable(x, y-1)
	ne = passable(x+1, y-1)
	w = passable(x-1, y)
	e = passable(x+1, y)
	sw = passable(x-1, y+1)
	s = passable(x, y+1)
	se = passable(x+1, y+1)
	return
}

// neighborCandidate is an admissible neighbor found by neighbors: idx is
// its row-major index, cost is its cardinal/diagonal move cost (1 or
// sqrt(2)), to be scaled by the destination cell's field value.
type neighborCandidate struct {
	idx  int
	cost float64
}

// neighbors enumerates the admissible neighbors of (x, y) in the fixed
// order SW, S, SE, W, E, NW, N, NE, applying:
//
//  1. in-bounds and non-wall for the neighbor itself;
//  2. for a diagonal, both flanking cardinal cells must also be
//     non-wall (no cutting across a wall corner);
//  3. for a cardinal, when large is true, at least one of its two
//     flanking diagonals (sharing its axis) must be non-wall (no
//     slipping through a one-cell gap).
//
// Diagonals are not further constrained by large beyond rule 2.
func (im *InfluenceMap) neighbors(x, y int, large bool) []neighborCandidate {
	nw, n, ne, w, e, sw, s, se := im.neighborWallFlags(x, y)

	var out [8]neighborCandidate
	count := 0
	add := func(nx, ny int, cost float64, admissible bool) {
		if !admissible {
			return
		}
		out[count] = neighborCandidate{idx: im.index(nx, ny), cost: cost}
		count++
	}

	const diag = math.Sqrt2
	add(x-1, y+1, diag, sw && s && w)
	add(x, y+1, 1, s && (!large || sw || se))
	add(x+1, y+1, diag, se && s && e)
	add(x-1, y, 1, w && (!large || nw || sw))
	add(x+1, y, 1, e && (!large || ne || se))
	add(x-1, y-1, diag, nw && n && w)
	add(x, y-1, 1, n && (!large || nw || ne))
	add(x+1, y-1, diag, ne && n && e)

	return out[:count]
}

// runAStar searches from startIdx to goalIdx over im.Field. It returns
// a flat cameFrom array sized Width*Height (valid only at indices on the
// discovered frontier — ultimately, only at indices on the winning
// path) and reports whether goalIdx was reached. Any failure to
// allocate the search's transient state collapses into reached=false,
// same as an unreachable goal (see package docs).
func (im *InfluenceMap) runAStar(startIdx, goalIdx int, large bool) (cameFrom []cameFromEntry, reached bool) {
	defer func() {
		if recover() != nil {
			cameFrom = nil
			reached = false
		}
	}()

	n := im.Width * im.Height
	cameFrom = make([]cameFromEntry, n)
	gScore := make([]float64, n)

	var discovered bitmap.Bitmap
	discovered.Grow(uint32(n - 1))

	goal := im.cellCenter(goalIdx)

	open := make(openQueue, 0, 64)
	heap.Init(&open)
	heap.Push(&open, openItem{index: startIdx, priority: im.cellCenter(startIdx).OctileDistanceTo(goal)})
	gScore[startIdx] = 0

	for open.Len() > 0 {
		cur := heap.Pop(&open).(openItem)
		if cur.index == goalIdx {
			return cameFrom, true
		}

		x, y := cur.index%im.Width, cur.index/im.Width
		curG := gScore[cur.index]
		curLen := 0
		if cur.index != startIdx {
			curLen = cameFrom[cur.index].pathLen
		}

		for _, nb := range im.neighbors(x, y, large) {
			if nb.idx == startIdx || discovered.Contains(uint32(nb.idx)) {
				continue
			}
			g := curG + nb.cost*im.Field[nb.idx]
			gScore[nb.idx] = g
			cameFrom[nb.idx] = cameFromEntry{prev: cur.index, pathLen: curLen + 1}
			discovered.Set(uint32(nb.idx))

			h := im.cellCenter(nb.idx).OctileDistanceTo(goal)
			heap.Push(&open, openItem{index: nb.idx, priority: g + h})
		}
	}

	return nil, false
}
