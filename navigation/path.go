package navigation

import (
	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/parameter"
)

// Unreachable is returned when no path exists between two cells.
// Callers must treat it as "maximal distance", never as an error.
const Unreachable = 1<<30 - 1

// PathDistance runs a breadth-first search over 4-connected Open cells
// and returns the shortest path length in grid steps, or Unreachable.
func PathDistance(m *maze.Model, a, b maze.Point) int {
	if a == b {
		if m.IsOpen(a.X, a.Y) {
			return 0
		}
		return Unreachable
	}
	if !m.IsOpen(a.X, a.Y) || !m.IsOpen(b.X, b.Y) {
		return Unreachable
	}

	type node struct {
		p    maze.Point
		dist int
	}

	visited := make(map[maze.Point]bool, 64)
	visited[a] = true
	queue := []node{{a, 0}}

	dirs := [4]maze.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range dirs {
			next := maze.Point{X: curr.p.X + d.X, Y: curr.p.Y + d.Y}
			if next == b {
				return curr.dist + 1
			}
			if visited[next] || !m.IsOpen(next.X, next.Y) {
				continue
			}
			visited[next] = true
			queue = append(queue, node{next, curr.dist + 1})
		}
	}

	return Unreachable
}

type pairKey struct {
	a, b maze.Point
}

// DistanceCache memoizes PathDistance results for a single maze.
// Cached keys reference a specific grid, so the owner must call
// Invalidate whenever the maze is regenerated. When the entry count
// exceeds capacity the oldest entries are bulk-evicted.
type DistanceCache struct {
	capacity int
	entries  map[pairKey]int
	order    []pairKey // Insertion order, oldest first
}

// NewDistanceCache creates a cache holding up to capacity entries.
func NewDistanceCache(capacity int) *DistanceCache {
	if capacity < 1 {
		capacity = parameter.PathCacheCapacity
	}
	return &DistanceCache{
		capacity: capacity,
		entries:  make(map[pairKey]int, capacity),
	}
}

// Distance returns the memoized BFS distance between two cells.
func (c *DistanceCache) Distance(m *maze.Model, a, b maze.Point) int {
	key := pairKey{a, b}
	if d, ok := c.entries[key]; ok {
		return d
	}

	d := PathDistance(m, a, b)

	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = d
	c.order = append(c.order, key)
	return d
}

// Len returns the current entry count.
func (c *DistanceCache) Len() int {
	return len(c.entries)
}

// Invalidate drops every entry. Must be called on maze regeneration.
func (c *DistanceCache) Invalidate() {
	clear(c.entries)
	c.order = c.order[:0]
}

func (c *DistanceCache) evictOldest() {
	n := int(float64(len(c.order)) * parameter.PathCacheEvictFraction)
	if n < 1 {
		n = 1
	}
	for _, key := range c.order[:n] {
		delete(c.entries, key)
	}
	c.order = append(c.order[:0], c.order[n:]...)
}
