package maze

import "math"

// Cell classifies a single grid cell
type Cell uint8

const (
	CellWall Cell = iota
	CellOpen
	CellExitDoor
)

// Point is an integer grid coordinate
type Point struct {
	X, Y int
}

// Model is the immutable per-round maze: grid, exit descriptor and
// recharge pad placements. It is created once by Generate and read-only
// until the round restarts.
type Model struct {
	Width, Height int

	// Start is the carve origin and player spawn room
	Start Point

	// ExitRoom is the Open room cell the exit door is attached to
	ExitRoom Point

	// ExitDoor is the single CellExitDoor cell; it equals ExitRoom when no
	// adjacent wall qualified during placement
	ExitDoor Point

	// Pads are recharge pad room cells
	Pads []Point

	grid []Cell // Row-major, len = Width*Height
}

// At returns the cell at integer grid coordinates.
// Out-of-bounds coordinates read as Wall, which keeps every boundary
// check in the renderer and collision code branch-free.
func (m *Model) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return CellWall
	}
	return m.grid[y*m.Width+x]
}

// CellAt returns the cell containing an arbitrary world-space point.
func (m *Model) CellAt(x, y float64) Cell {
	return m.At(int(math.Floor(x)), int(math.Floor(y)))
}

// IsOpen reports whether the cell at grid coordinates is walkable.
func (m *Model) IsOpen(x, y int) bool {
	return m.At(x, y) == CellOpen
}

// OpenRooms returns every Open cell on the odd-coordinate room lattice.
func (m *Model) OpenRooms() []Point {
	rooms := make([]Point, 0, (m.Width/2)*(m.Height/2))
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if m.grid[y*m.Width+x] == CellOpen {
				rooms = append(rooms, Point{x, y})
			}
		}
	}
	return rooms
}
