package parameter

import "time"

// Creature Steering
const (
	// CreatureBaseSpeed is the normal creature velocity in cells/sec
	CreatureBaseSpeed = 1.6

	// CreatureChaseRadius is the distance (cells) below which a creature
	// steers directly toward the player instead of wandering
	CreatureChaseRadius = 4.0

	// CreatureContactRadius is the distance (cells) below which contact
	// pushback resolution triggers
	CreatureContactRadius = 0.6

	// CreatureWanderJitter is the half-angle (radians) of random heading
	// drift applied per second while wandering
	CreatureWanderJitter = 2.4

	// CreatureRadius is the collision radius of a creature in cells
	CreatureRadius = 0.3

	// CreatureSpawnMinStartDistance is the minimum Euclidean distance
	// (cells) between a spawn cell and the player start
	CreatureSpawnMinStartDistance = 5.0
)

// Behavioral States
const (
	// StunnedDuration is how long a creature stays stunned
	StunnedDuration = 2 * time.Second

	// SlowedDuration is how long a creature stays slowed
	SlowedDuration = 4 * time.Second

	// SlowedSpeedMultiplier is the speed fraction while slowed
	SlowedSpeedMultiplier = 0.35

	// TranquilizedDuration is how long a creature stays tranquilized
	TranquilizedDuration = 6 * time.Second
)

// Contact Pushback
const (
	// PushbackDistance is the base displacement magnitude (cells) applied
	// to the player on contact, before scale shrinking
	PushbackDistance = 1.2

	// PushbackScaleStep is the decrement applied to the displacement scale
	// on each failed placement attempt
	PushbackScaleStep = 0.2

	// PushbackMinScale is the smallest displacement scale tried before the
	// tick gives up and applies no displacement
	PushbackMinScale = 0.2

	// SmartPushMinStartDistance is the path distance (grid steps) from the
	// start below which smart push falls back to radial push
	SmartPushMinStartDistance = 4
)
