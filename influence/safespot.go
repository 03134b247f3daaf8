package influence

import "github.com/tacticai/fieldmap/geom"

// FindClosestSafeSpot returns the center of a low-value cell among cells
// whose center lies strictly within radius of pos and which are not a
// wall, chosen by the replacement rule below. The bounding box is
// clipped the same way AddInfluence clips its stamp.
//
// The tie-break is intentionally asymmetric: a candidate replaces the
// current best only when its value is <= the best's (not <) and its
// squared distance is < the best's (not <=). Two cells with identical
// value and identical distance therefore cannot displace each other,
// and the scan order below (x outer, y inner) decides the winner. A cell
// of lower value that is not closer than the current best does not
// replace it either, so the result is not always the minimum-value cell.
//
// Returns ok=false if no cell in the scanned box is both in-radius and
// non-wall.
func (im *InfluenceMap) FindClosestSafeSpot(pos geom.Point2, radius float64) (center geom.Point2, ok bool) {
	minX, minY, maxX, maxY := im.stampBounds(pos, radius)
	radiusSq := radius * radius

	var best geom.Point2
	var bestVal, bestDist float64
	found := false

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			idx := im.index(x, y)
			v := im.Field[idx]
			if isWall(v) {
				continue
			}
			c := geom.GridPoint{X: x, Y: y}.Center()
			d := c.SquaredDistanceTo(pos)
			if d >= radiusSq {
				continue
			}
			if !found || (v <= bestVal && d < bestDist) {
				found = true
				bestVal = v
				bestDist = d
				best = c
			}
		}
	}

	return best, found
}
