package raycast

import (
	"math"

	"github.com/lixenwraith/maze-warden/core"
	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/parameter"
	"github.com/lixenwraith/maze-warden/vmath"
)

// Sprite is the screen-space projection of a point entity
type Sprite struct {
	ScreenX  float64 // Horizontal center in pixels
	ScreenY  float64 // Vertical center in pixels
	HalfSize float64 // Projected half extent in pixels
	Distance float64
	Alpha    float64 // Opacity in [BillboardMinAlpha, 1]
}

// ProjectBillboard projects a point entity as a camera-facing sprite.
// It returns false when the entity is behind the camera, beyond the
// render depth, or (when occlude is set) hidden behind a wall. The exit
// marker sits in the wall plane, so its callers pass occlude=false.
func ProjectBillboard(m *maze.Model, worldX, worldY, radius float64, cam core.Pose, width, height int, occlude bool) (Sprite, bool) {
	dx := worldX - cam.X
	dy := worldY - cam.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > parameter.MaxRenderDepth {
		return Sprite{}, false
	}

	rel := vmath.NormalizeAngle(math.Atan2(dy, dx) - cam.Heading)

	// Cull anything outside the forward half-plane; tan() diverges there
	if rel <= -math.Pi/2 || rel >= math.Pi/2 {
		return Sprite{}, false
	}

	if occlude {
		if hit, ok := CastRay(m, cam.X, cam.Y, cam.Heading+rel, dist); ok && hit.Distance < dist {
			return Sprite{}, false
		}
	}

	halfFOV := parameter.FieldOfView / 2
	screenX := (0.5 + 0.5*math.Tan(rel)/math.Tan(halfFOV)) * float64(width)

	halfSize := float64(height) / math.Max(dist, parameter.MinCorrectedDistance) * radius

	alpha := 1.0
	if dist > parameter.BillboardNearAlphaDistance {
		t := (dist - parameter.BillboardNearAlphaDistance) /
			(parameter.MaxRenderDepth - parameter.BillboardNearAlphaDistance)
		alpha = vmath.Clamp(1.0-t, parameter.BillboardMinAlpha, 1.0)
	}

	return Sprite{
		ScreenX:  screenX,
		ScreenY:  float64(height) / 2,
		HalfSize: halfSize,
		Distance: dist,
		Alpha:    alpha,
	}, true
}
