package raycast

import (
	"math"
	"testing"

	"github.com/lixenwraith/maze-warden/core"
	"github.com/lixenwraith/maze-warden/maze"
)

func TestProjectBillboardBehindCameraCulled(t *testing.T) {
	m := testMaze(t, 7)
	ox, oy := startCenter(m)
	cam := core.Pose{X: ox, Y: oy, Heading: 0} // Facing +x

	if _, ok := ProjectBillboard(m, ox-1, oy, 0.3, cam, 80, 24, false); ok {
		t.Fatal("entity behind the camera was not culled")
	}
}

func TestProjectBillboardCenterAhead(t *testing.T) {
	m := testMaze(t, 7)
	ox, oy := startCenter(m)
	cam := core.Pose{X: ox, Y: oy, Heading: 0}

	// Entity a little ahead inside the same open cell
	sp, ok := ProjectBillboard(m, ox+0.3, oy, 0.3, cam, 80, 24, true)
	if !ok {
		t.Fatal("entity directly ahead was culled")
	}
	if math.Abs(sp.ScreenX-40) > 1 {
		t.Fatalf("entity dead ahead should project to screen center, got %v", sp.ScreenX)
	}
	if sp.ScreenY != 12 {
		t.Fatalf("billboard should be vertically centered, got %v", sp.ScreenY)
	}
	if sp.Alpha <= 0 || sp.Alpha > 1 {
		t.Fatalf("alpha %v out of range", sp.Alpha)
	}
	if sp.HalfSize <= 0 {
		t.Fatalf("half size %v not positive", sp.HalfSize)
	}
}

func TestProjectBillboardOccludedByWall(t *testing.T) {
	m := testMaze(t, 7)
	ox, oy := startCenter(m)

	// Find a neighboring room whose connecting corridor was left as wall
	dirs := [4]maze.Point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}
	var target maze.Point
	found := false
	for _, d := range dirs {
		corridor := maze.Point{X: m.Start.X + d.X/2, Y: m.Start.Y + d.Y/2}
		room := maze.Point{X: m.Start.X + d.X, Y: m.Start.Y + d.Y}
		if m.At(corridor.X, corridor.Y) == maze.CellWall && m.IsOpen(room.X, room.Y) {
			target = room
			found = true
			break
		}
	}
	if !found {
		t.Skip("start room has no walled-off neighbor in this seed")
	}

	tx := float64(target.X) + 0.5
	ty := float64(target.Y) + 0.5
	cam := core.Pose{X: ox, Y: oy, Heading: math.Atan2(ty-oy, tx-ox)}

	if _, ok := ProjectBillboard(m, tx, ty, 0.3, cam, 80, 24, true); ok {
		t.Fatal("entity behind a wall was not occluded")
	}

	// The exit marker path skips the occlusion ray and always projects
	if _, ok := ProjectBillboard(m, tx, ty, 0.3, cam, 80, 24, false); !ok {
		t.Fatal("occlusion-exempt projection was culled")
	}
}

func TestProjectBillboardAlphaFadesWithDistance(t *testing.T) {
	m := testMaze(t, 7)
	ox, oy := startCenter(m)
	cam := core.Pose{X: ox, Y: oy, Heading: 0}

	near, okNear := ProjectBillboard(m, ox+0.2, oy, 0.3, cam, 80, 24, false)
	far, okFar := ProjectBillboard(m, ox+6, oy, 0.3, cam, 80, 24, false)
	if !okNear || !okFar {
		t.Fatal("projection culled unexpectedly")
	}
	if near.Alpha < far.Alpha {
		t.Fatalf("alpha should not increase with distance: near %v, far %v", near.Alpha, far.Alpha)
	}
	if near.HalfSize <= far.HalfSize {
		t.Fatalf("size should shrink with distance: near %v, far %v", near.HalfSize, far.HalfSize)
	}
}
