package creature

import (
	"time"

	"github.com/lixenwraith/maze-warden/parameter"
)

// StateKind tags a creature's behavioral state. Speed multiplier and
// duration are derived from the tag, so a tranquilized creature with
// nonzero speed cannot be represented.
type StateKind uint8

const (
	StateIdle StateKind = iota
	StateStunned
	StateSlowed
	StateTranquilized
)

// SpeedMultiplier returns the movement speed fraction for the state.
func (k StateKind) SpeedMultiplier() float64 {
	switch k {
	case StateStunned, StateTranquilized:
		return 0
	case StateSlowed:
		return parameter.SlowedSpeedMultiplier
	default:
		return 1
	}
}

// Duration returns how long the state lasts before auto-reverting to
// Idle. Idle itself never expires.
func (k StateKind) Duration() time.Duration {
	switch k {
	case StateStunned:
		return parameter.StunnedDuration
	case StateSlowed:
		return parameter.SlowedDuration
	case StateTranquilized:
		return parameter.TranquilizedDuration
	default:
		return 0
	}
}

func (k StateKind) String() string {
	names := [...]string{"idle", "stunned", "slowed", "tranquilized"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Creature is a non-hostile obstructing entity with a continuous
// position and a timed behavioral state.
type Creature struct {
	X, Y    float64
	Heading float64 // Radians

	state      StateKind
	stateSince time.Duration // Simulation time at state entry
}

// State returns the current behavioral state after expiry handling.
func (c *Creature) State() StateKind {
	return c.state
}

// SetState enters a behavioral state at the given simulation time.
func (c *Creature) SetState(k StateKind, now time.Duration) {
	c.state = k
	c.stateSince = now
}

// tickState reverts an expired timed state back to Idle.
func (c *Creature) tickState(now time.Duration) {
	if c.state == StateIdle {
		return
	}
	if now-c.stateSince >= c.state.Duration() {
		c.state = StateIdle
	}
}
