package parameter

import "math"

// Raycasting
const (
	// FieldOfView is the horizontal camera FOV in radians
	FieldOfView = math.Pi / 3

	// RayStep is the fixed march increment along a ray in cells
	RayStep = 0.02

	// MaxRenderDepth is how far a ray travels before giving up (cells)
	MaxRenderDepth = 16.0

	// MinCorrectedDistance clamps the fisheye-corrected distance to avoid
	// the wall-height singularity when a hit is on top of the camera
	MinCorrectedDistance = 0.05
)

// Fog / Brightness
const (
	// FogFullBrightDistance is the distance (cells) within which walls are
	// rendered at full brightness
	FogFullBrightDistance = 1.5

	// FogMinBrightness is the brightness floor at MaxRenderDepth
	FogMinBrightness = 0.1
)

// Billboards
const (
	// BillboardNearAlphaDistance is the distance (cells) at or below which
	// a billboard is fully opaque
	BillboardNearAlphaDistance = 2.0

	// BillboardMinAlpha is the opacity floor at MaxRenderDepth
	BillboardMinAlpha = 0.15
)
