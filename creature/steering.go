package creature

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/maze-warden/core"
	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/navigation"
	"github.com/lixenwraith/maze-warden/parameter"
	"github.com/lixenwraith/maze-warden/vmath"
)

// ContactFunc is notified on creature-player contact with the creature
// position and whether the resolution pulled the player backward.
type ContactFunc func(x, y float64, pull bool)

// Steering drives per-tick creature behavior: state expiry, wander or
// chase movement with sliding collision, and contact pushback.
type Steering struct {
	// SmartPush redirects push displacement toward the maze start when
	// the player is not already near it by path distance
	SmartPush bool

	cache *navigation.DistanceCache
	rng   *rand.Rand
}

// NewSteering creates a steering driver sharing the session's distance
// cache and rng.
func NewSteering(cache *navigation.DistanceCache, rng *rand.Rand) *Steering {
	return &Steering{cache: cache, rng: rng}
}

// Update advances every creature by dt of simulation time. The player
// pose is mutated in place when contact pushback resolves.
func (s *Steering) Update(m *maze.Model, creatures []*Creature, player *core.Pose, now time.Duration, dt time.Duration, onContact ContactFunc) {
	dtSec := dt.Seconds()

	for _, c := range creatures {
		c.tickState(now)

		dist := vmath.Dist(c.X, c.Y, player.X, player.Y)

		s.steer(c, player, dist, dtSec)
		s.move(m, c, dtSec)

		if vmath.Dist(c.X, c.Y, player.X, player.Y) < parameter.CreatureContactRadius {
			pull := s.resolveContact(m, c, player)
			if onContact != nil {
				onContact(c.X, c.Y, pull)
			}
		}
	}
}

// steer picks the creature heading: direct chase inside the chase
// radius, random wander drift otherwise. Tranquilized creatures never
// chase.
func (s *Steering) steer(c *Creature, player *core.Pose, dist, dtSec float64) {
	if dist < parameter.CreatureChaseRadius && c.state != StateTranquilized {
		c.Heading = math.Atan2(player.Y-c.Y, player.X-c.X)
		return
	}
	c.Heading += (s.rng.Float64()*2 - 1) * parameter.CreatureWanderJitter * dtSec
}

// move applies velocity per axis, committing each axis only if its
// destination cell is Open (sliding collision).
func (s *Steering) move(m *maze.Model, c *Creature, dtSec float64) {
	step := parameter.CreatureBaseSpeed * c.state.SpeedMultiplier() * dtSec
	if step == 0 {
		return
	}

	sin, cos := math.Sincos(c.Heading)
	if nx := c.X + cos*step; m.CellAt(nx, c.Y) == maze.CellOpen {
		c.X = nx
	}
	if ny := c.Y + sin*step; m.CellAt(c.X, ny) == maze.CellOpen {
		c.Y = ny
	}
}

// resolveContact decides pull versus push by comparing player and
// creature path distance to the exit, then displaces the player at the
// first shrinking scale whose destination is Open on both axes.
// Contact punishes being ahead: a player strictly closer to the exit is
// pulled back toward the creature.
func (s *Steering) resolveContact(m *maze.Model, c *Creature, player *core.Pose) bool {
	playerDist, creatureDist := navigation.DistanceToTarget(
		m, s.cache, player.X, player.Y, c.X, c.Y, m.ExitRoom)

	pull := playerDist < creatureDist

	var dirX, dirY float64
	if pull {
		dirX, dirY = vmath.Normalize2D(c.X-player.X, c.Y-player.Y)
	} else if s.SmartPush && !s.nearStart(m, player) {
		startX := float64(m.Start.X) + 0.5
		startY := float64(m.Start.Y) + 0.5
		dirX, dirY = vmath.Normalize2D(startX-player.X, startY-player.Y)
	} else {
		dirX, dirY = vmath.Normalize2D(player.X-c.X, player.Y-c.Y)
	}

	for scale := 1.0; scale >= parameter.PushbackMinScale-1e-9; scale -= parameter.PushbackScaleStep {
		nx := player.X + dirX*parameter.PushbackDistance*scale
		ny := player.Y + dirY*parameter.PushbackDistance*scale

		if m.CellAt(nx, player.Y) == maze.CellOpen && m.CellAt(player.X, ny) == maze.CellOpen &&
			m.CellAt(nx, ny) == maze.CellOpen {
			player.X = nx
			player.Y = ny
			break
		}
	}
	// No scale fit: zero displacement this tick, retried on next contact

	return pull
}

func (s *Steering) nearStart(m *maze.Model, player *core.Pose) bool {
	cell := maze.Point{X: int(math.Floor(player.X)), Y: int(math.Floor(player.Y))}
	d := s.cache.Distance(m, cell, m.Start)
	return d < parameter.SmartPushMinStartDistance
}
