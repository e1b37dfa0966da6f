package navigation

import (
	"math"

	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/parameter"
)

// HasLineOfSight samples points at fixed sub-cell intervals along the
// segment (x1,y1)-(x2,y2) and reports whether every sample lands on an
// Open cell. Both endpoints are sampled.
func HasLineOfSight(m *maze.Model, x1, y1, x2, y2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Sqrt(dx*dx + dy*dy)

	steps := int(length/parameter.LineOfSightStep) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if m.CellAt(x1+dx*t, y1+dy*t) != maze.CellOpen {
			return false
		}
	}
	return true
}

// DistanceToTarget compares cheaply when possible: when both query
// points have clear sight to the reference point, Euclidean distance is
// a valid proxy and no BFS runs. Otherwise it falls back to the cached
// path distance, which is the only correct measure inside a maze.
// The returned values are only meaningful relative to each other.
func DistanceToTarget(m *maze.Model, cache *DistanceCache, x1, y1, x2, y2 float64, target maze.Point) (d1, d2 float64) {
	tx := float64(target.X) + 0.5
	ty := float64(target.Y) + 0.5

	if HasLineOfSight(m, x1, y1, tx, ty) && HasLineOfSight(m, x2, y2, tx, ty) {
		dx1, dy1 := tx-x1, ty-y1
		dx2, dy2 := tx-x2, ty-y2
		return math.Sqrt(dx1*dx1 + dy1*dy1), math.Sqrt(dx2*dx2 + dy2*dy2)
	}

	c1 := maze.Point{X: int(math.Floor(x1)), Y: int(math.Floor(y1))}
	c2 := maze.Point{X: int(math.Floor(x2)), Y: int(math.Floor(y2))}
	return float64(cache.Distance(m, c1, target)), float64(cache.Distance(m, c2, target))
}
