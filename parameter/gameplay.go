package parameter

import "time"

// Session / Tick
const (
	// MaxFrameDelta clamps a single simulation step after a stall so the
	// world never jumps a large interval in one tick
	MaxFrameDelta = 100 * time.Millisecond

	// DefaultCreatureCount is the number of creatures spawned per round
	DefaultCreatureCount = 3
)

// Player
const (
	// PlayerMoveSpeed is forward/backward velocity in cells/sec
	PlayerMoveSpeed = 2.4

	// PlayerTurnSpeed is heading change in radians/sec
	PlayerTurnSpeed = 2.8

	// PlayerRadius is the player collision radius in cells
	PlayerRadius = 0.25
)

// Energy
const (
	// EnergyMax is the full energy meter value
	EnergyMax = 100.0

	// EnergyContactDrain is energy lost per creature contact
	EnergyContactDrain = 10.0

	// EnergyPadRechargeRate is energy gained per second while standing on
	// a recharge pad
	EnergyPadRechargeRate = 25.0

	// PadRadius is the pickup radius of a recharge pad in cells
	PadRadius = 0.5
)
