package raycast

import (
	"math"

	"github.com/lixenwraith/maze-warden/core"
	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/parameter"
	"github.com/lixenwraith/maze-warden/vmath"
)

// Hit is a single ray-wall intersection
type Hit struct {
	Distance float64 // Euclidean distance from the ray origin
	X, Y     float64 // World-space hit point
	Cell     maze.Cell
}

// Texture identifies the wall texture for a column
type Texture uint8

const (
	TextureWallA Texture = iota
	TextureWallB
	TextureDoor
)

// Column is the per-screen-column output of RenderColumns. A column
// with Hit == false fell beyond the render depth and draws as void.
type Column struct {
	Hit        bool
	Distance   float64 // Fisheye-corrected distance
	WallTop    int     // First wall pixel row (vertically centered)
	WallHeight int     // Wall span in pixels, clipped to viewport height
	Brightness float64 // Distance fog factor in [FogMinBrightness, 1]
	Texture    Texture
	TexU       float64 // Horizontal texture coordinate in [0, 1)
	Cell       maze.Cell
}

// CastRay marches from (originX, originY) along angle in fixed steps
// until it lands on a Wall or ExitDoor cell, or exceeds maxDepth.
func CastRay(m *maze.Model, originX, originY, angle, maxDepth float64) (Hit, bool) {
	sin, cos := math.Sincos(angle)

	for dist := parameter.RayStep; dist <= maxDepth; dist += parameter.RayStep {
		x := originX + cos*dist
		y := originY + sin*dist

		switch c := m.CellAt(x, y); c {
		case maze.CellWall, maze.CellExitDoor:
			return Hit{Distance: dist, X: x, Y: y, Cell: c}, true
		}
	}

	return Hit{}, false
}

// RenderColumns casts one ray per viewport column across the field of
// view and post-processes each hit into drawable wall geometry.
func RenderColumns(m *maze.Model, cam core.Pose, width, height int) []Column {
	cols := make([]Column, width)
	if width <= 0 || height <= 0 {
		return cols
	}

	halfFOV := parameter.FieldOfView / 2

	for i := range cols {
		// Linear interpolation across the FOV, centered on the heading
		offset := -halfFOV + parameter.FieldOfView*(float64(i)+0.5)/float64(width)
		hit, ok := CastRay(m, cam.X, cam.Y, cam.Heading+offset, parameter.MaxRenderDepth)
		if !ok {
			continue
		}

		// Fisheye correction: project the ray distance onto the view axis
		corrected := hit.Distance * math.Cos(offset)
		if corrected < parameter.MinCorrectedDistance {
			corrected = parameter.MinCorrectedDistance
		}

		wallHeight := int(float64(height) / corrected)
		if wallHeight > height {
			wallHeight = height
		}

		cols[i] = Column{
			Hit:        true,
			Distance:   corrected,
			WallTop:    (height - wallHeight) / 2,
			WallHeight: wallHeight,
			Brightness: fogFactor(corrected),
			Texture:    textureFor(hit),
			TexU:       textureCoord(hit),
			Cell:       hit.Cell,
		}
	}

	return cols
}

// fogFactor derives a distance-based brightness in [FogMinBrightness, 1].
func fogFactor(dist float64) float64 {
	if dist <= parameter.FogFullBrightDistance {
		return 1.0
	}
	t := (dist - parameter.FogFullBrightDistance) /
		(parameter.MaxRenderDepth - parameter.FogFullBrightDistance)
	return vmath.Clamp(1.0-t, parameter.FogMinBrightness, 1.0)
}

// textureFor alternates the two wall textures by the parity of the hit
// cell's coordinates; doors always use the door texture.
func textureFor(h Hit) Texture {
	if h.Cell == maze.CellExitDoor {
		return TextureDoor
	}
	if (int(math.Floor(h.X))+int(math.Floor(h.Y)))%2 == 0 {
		return TextureWallA
	}
	return TextureWallB
}

// textureCoord picks the horizontal texture coordinate from the
// fractional part of whichever axis is farther from a cell boundary.
// The axis closest to an integer is the wall face the ray entered
// through, so the other axis runs along that face.
func textureCoord(h Hit) float64 {
	fx := h.X - math.Floor(h.X)
	fy := h.Y - math.Floor(h.Y)

	distX := math.Min(fx, 1-fx)
	distY := math.Min(fy, 1-fy)

	if distX < distY {
		return fy // Vertical face, texture runs along y
	}
	return fx // Horizontal face, texture runs along x
}
