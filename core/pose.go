package core

// Pose is a continuous position with heading, shared by the camera, the
// player, and creatures. Coordinates are in cell-sized world units.
type Pose struct {
	X, Y    float64
	Heading float64 // Radians
	Radius  float64 // Collision radius in cells
}
