package maze

import (
	"math/rand"

	"github.com/lixenwraith/maze-warden/parameter"
)

// Config controls a single generation
type Config struct {
	Width, Height int // Rounded to odd, minimum 3
	PadCount      int // Recharge pads to place (best effort)
}

// Generate creates a perfect maze, places the exit and recharge pads.
// The rng handle is the only randomness source, so a fixed seed
// reproduces the grid, exit and pad set exactly.
func Generate(cfg Config, rng *rand.Rand) *Model {
	cols := ensureOdd(cfg.Width)
	rows := ensureOdd(cfg.Height)

	m := &Model{
		Width:  cols,
		Height: rows,
		Start:  Point{1, 1},
		grid:   make([]Cell, cols*rows),
	}

	carve(m, rng)
	placeExit(m)
	placePads(m, cfg.PadCount, rng)

	return m
}

// carve runs an iterative randomized depth-first backtracker over the
// odd-coordinate room lattice. The walk carves a spanning tree, so any
// two Open cells are connected by exactly one path.
func carve(m *Model, rng *rand.Rand) {
	start := m.Start
	m.grid[start.Y*m.Width+start.X] = CellOpen

	stack := []Point{start}
	dirs := [4]Point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		advanced := false
		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave the outer ring of walls intact
			if nx <= 0 || nx >= m.Width-1 || ny <= 0 || ny >= m.Height-1 {
				continue
			}
			if m.grid[ny*m.Width+nx] != CellWall {
				continue
			}

			// Carve the connecting corridor cell and the neighbor room
			m.grid[(curr.Y+d.Y/2)*m.Width+(curr.X+d.X/2)] = CellOpen
			m.grid[ny*m.Width+nx] = CellOpen
			stack = append(stack, Point{nx, ny})
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// placeExit picks the Open room cell farthest from the start by squared
// Euclidean distance, then marks the first still-Wall neighbor (north,
// east, south, west order) as the exit door. The Euclidean farthest cell
// is a heuristic, not the exact farthest-by-path-distance cell; the two
// correlate in a spanning tree but can disagree.
func placeExit(m *Model) {
	best := m.Start
	bestDist := -1
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if m.grid[y*m.Width+x] != CellOpen {
				continue
			}
			dx := x - m.Start.X
			dy := y - m.Start.Y
			if d := dx*dx + dy*dy; d > bestDist {
				bestDist = d
				best = Point{x, y}
			}
		}
	}
	m.ExitRoom = best

	doorDirs := [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for _, d := range doorDirs {
		nx, ny := best.X+d.X, best.Y+d.Y
		if nx < 0 || ny < 0 || nx >= m.Width || ny >= m.Height {
			continue
		}
		if m.grid[ny*m.Width+nx] == CellWall {
			m.grid[ny*m.Width+nx] = CellExitDoor
			m.ExitDoor = Point{nx, ny}
			return
		}
	}

	// Every neighbor already carved; the door coincides with the room
	m.grid[best.Y*m.Width+best.X] = CellExitDoor
	m.ExitDoor = best
}

// placePads samples up to count room cells far enough from both the
// start and the exit, without replacement.
func placePads(m *Model, count int, rng *rand.Rand) {
	if count <= 0 {
		return
	}

	minStartSq := parameter.PadMinStartDistance * parameter.PadMinStartDistance
	minExitSq := parameter.PadMinExitDistance * parameter.PadMinExitDistance

	var candidates []Point
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if m.grid[y*m.Width+x] != CellOpen {
				continue
			}
			sdx, sdy := float64(x-m.Start.X), float64(y-m.Start.Y)
			edx, edy := float64(x-m.ExitRoom.X), float64(y-m.ExitRoom.Y)
			if sdx*sdx+sdy*sdy > minStartSq && edx*edx+edy*edy > minExitSq {
				candidates = append(candidates, Point{x, y})
			}
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if count > len(candidates) {
		count = len(candidates)
	}
	m.Pads = append([]Point(nil), candidates[:count]...)
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
