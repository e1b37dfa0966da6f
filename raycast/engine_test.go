package raycast

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/maze-warden/core"
	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/parameter"
)

func testMaze(t *testing.T, seed int64) *maze.Model {
	t.Helper()
	return maze.Generate(maze.Config{Width: 15, Height: 15}, rand.New(rand.NewSource(seed)))
}

func startCenter(m *maze.Model) (float64, float64) {
	return float64(m.Start.X) + 0.5, float64(m.Start.Y) + 0.5
}

func TestCastRayHitSemantics(t *testing.T) {
	m := testMaze(t, 7)
	ox, oy := startCenter(m)

	for i := 0; i < 360; i++ {
		angle := float64(i) * math.Pi / 180
		hit, ok := CastRay(m, ox, oy, angle, parameter.MaxRenderDepth)
		if !ok {
			continue
		}
		if hit.Distance > parameter.MaxRenderDepth {
			t.Fatalf("angle %d: hit beyond max depth: %v", i, hit.Distance)
		}
		if hit.Cell != maze.CellWall && hit.Cell != maze.CellExitDoor {
			t.Fatalf("angle %d: hit cell type %v", i, hit.Cell)
		}
		if got := m.CellAt(hit.X, hit.Y); got != hit.Cell {
			t.Fatalf("angle %d: hit point cell %v does not match record %v", i, got, hit.Cell)
		}
	}
}

func TestCastRayAlwaysHitsInClosedMaze(t *testing.T) {
	// The outer wall ring is never carved, so with sufficient depth a
	// ray from inside always terminates on a wall
	m := testMaze(t, 7)
	ox, oy := startCenter(m)

	for i := 0; i < 64; i++ {
		angle := float64(i) * math.Pi / 32
		if _, ok := CastRay(m, ox, oy, angle, 1000); !ok {
			t.Fatalf("ray at angle %v escaped the maze", angle)
		}
	}
}

func TestCastRayMissWithinOpenCell(t *testing.T) {
	m := testMaze(t, 7)
	ox, oy := startCenter(m)

	// From a cell center, no wall is closer than half a cell
	if _, ok := CastRay(m, ox, oy, 0.3, 0.3); ok {
		t.Fatal("ray hit inside the origin cell")
	}
}

func TestRenderColumnsGeometry(t *testing.T) {
	m := testMaze(t, 7)
	ox, oy := startCenter(m)
	cam := core.Pose{X: ox, Y: oy, Heading: 0.7}

	const width, height = 80, 24
	cols := RenderColumns(m, cam, width, height)

	if len(cols) != width {
		t.Fatalf("column count: got %d, want %d", len(cols), width)
	}

	for i, col := range cols {
		if !col.Hit {
			continue
		}
		if col.WallHeight < 1 || col.WallHeight > height {
			t.Errorf("col %d: wall height %d outside [1,%d]", i, col.WallHeight, height)
		}
		if col.WallTop != (height-col.WallHeight)/2 {
			t.Errorf("col %d: wall not vertically centered", i)
		}
		if col.Brightness < parameter.FogMinBrightness || col.Brightness > 1 {
			t.Errorf("col %d: brightness %v out of range", i, col.Brightness)
		}
		if col.TexU < 0 || col.TexU >= 1 {
			t.Errorf("col %d: texture coordinate %v out of [0,1)", i, col.TexU)
		}
		if col.Cell == maze.CellExitDoor && col.Texture != TextureDoor {
			t.Errorf("col %d: door hit without door texture", i)
		}
	}
}

func TestRenderColumnsFisheyeCorrection(t *testing.T) {
	m := testMaze(t, 7)
	ox, oy := startCenter(m)
	cam := core.Pose{X: ox, Y: oy, Heading: 1.1}

	const width, height = 81, 24
	cols := RenderColumns(m, cam, width, height)

	center := cols[width/2]
	if !center.Hit {
		t.Skip("center ray found no wall within depth")
	}

	raw, ok := CastRay(m, ox, oy, cam.Heading, parameter.MaxRenderDepth)
	if !ok {
		t.Fatal("direct ray missed where the column hit")
	}

	// The center column's angular offset is half a column width, so its
	// corrected distance stays within a step of the raw heading ray
	if diff := math.Abs(center.Distance - raw.Distance); diff > 3*parameter.RayStep {
		t.Fatalf("fisheye correction off at center: column %v vs ray %v", center.Distance, raw.Distance)
	}
}

func TestTextureCoordFollowsWallFace(t *testing.T) {
	// A hit flush on a vertical face carries the y fraction; a hit on a
	// horizontal face carries the x fraction
	vertical := Hit{X: 3.001, Y: 5.37}
	if got := textureCoord(vertical); math.Abs(got-0.37) > 1e-9 {
		t.Fatalf("vertical face coordinate: got %v, want 0.37", got)
	}

	horizontal := Hit{X: 3.37, Y: 5.999}
	if got := textureCoord(horizontal); math.Abs(got-0.37) > 1e-9 {
		t.Fatalf("horizontal face coordinate: got %v, want 0.37", got)
	}
}
