package game

import (
	"math"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-warden/core"
	"github.com/lixenwraith/maze-warden/creature"
	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/navigation"
	"github.com/lixenwraith/maze-warden/parameter"
)

// Config controls a session round
type Config struct {
	Width, Height int
	PadCount      int
	CreatureCount int
	SmartPush     bool

	// Seed drives generation, pad placement and creature spawns; the
	// same seed reproduces all three. Zero picks a time-based seed.
	Seed int64
}

// Session owns one round of the game: the maze, the player pose, the
// creature list and the shared path distance cache. Everything runs on
// the single simulation thread, one Update per display tick.
type Session struct {
	Maze      *maze.Model
	Player    core.Pose
	Creatures []*creature.Creature
	Energy    float64
	Won       bool

	// OnContact receives creature contact notifications for external
	// feedback (effects, audio)
	OnContact creature.ContactFunc

	cfg      Config
	rng      *rand.Rand
	cache    *navigation.DistanceCache
	steering *creature.Steering
	now      time.Duration // Accumulated simulation time
}

// NewSession creates a session and generates the first round.
func NewSession(cfg Config) *Session {
	if cfg.Width == 0 {
		cfg.Width = parameter.MazeDefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = parameter.MazeDefaultHeight
	}
	if cfg.PadCount == 0 {
		cfg.PadCount = parameter.MazeDefaultPadCount
	}
	if cfg.CreatureCount == 0 {
		cfg.CreatureCount = parameter.DefaultCreatureCount
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:   cfg,
		cache: navigation.NewDistanceCache(parameter.PathCacheCapacity),
	}
	s.Restart()
	return s
}

// Restart discards the current round and generates a new one. Cached
// path distances reference the old grid, so the cache is invalidated
// before anything can query it against the new maze.
func (s *Session) Restart() {
	s.rng = rand.New(rand.NewSource(s.cfg.Seed))

	started := time.Now()
	s.Maze = maze.Generate(maze.Config{
		Width:    s.cfg.Width,
		Height:   s.cfg.Height,
		PadCount: s.cfg.PadCount,
	}, s.rng)

	if elapsed := time.Since(started); elapsed > parameter.GenerateBudget {
		log.WithFields(log.Fields{
			"width":   s.Maze.Width,
			"height":  s.Maze.Height,
			"elapsed": elapsed,
		}).Warn("maze generation exceeded time budget")
	}

	s.cache.Invalidate()
	s.Creatures = creature.Spawn(s.Maze, s.cfg.CreatureCount, s.rng)
	s.steering = creature.NewSteering(s.cache, s.rng)
	s.steering.SmartPush = s.cfg.SmartPush

	s.Player = core.Pose{
		X:      float64(s.Maze.Start.X) + 0.5,
		Y:      float64(s.Maze.Start.Y) + 0.5,
		Radius: parameter.PlayerRadius,
	}
	s.Energy = parameter.EnergyMax
	s.Won = false
	s.now = 0

	log.WithFields(log.Fields{
		"width":     s.Maze.Width,
		"height":    s.Maze.Height,
		"pads":      len(s.Maze.Pads),
		"creatures": len(s.Creatures),
		"seed":      s.cfg.Seed,
	}).Info("round started")
}

// Update advances the simulation by dt, clamped so a stalled frame
// never produces a large jump.
func (s *Session) Update(dt time.Duration) {
	if s.Won {
		return
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	s.now += dt

	s.steering.Update(s.Maze, s.Creatures, &s.Player, s.now, dt, s.handleContact)
	s.rechargeOnPad(dt)
	s.checkWin()
}

// Move applies player input for one tick: turn is -1..1 steering, walk
// is -1..1 forward/backward. Movement slides along walls per axis.
func (s *Session) Move(walk, turn float64, dt time.Duration) {
	if s.Won {
		return
	}
	dtSec := dt.Seconds()
	s.Player.Heading += turn * parameter.PlayerTurnSpeed * dtSec

	step := walk * parameter.PlayerMoveSpeed * dtSec
	if step == 0 {
		return
	}

	sin, cos := math.Sincos(s.Player.Heading)
	if nx := s.Player.X + cos*step; s.walkable(nx, s.Player.Y) {
		s.Player.X = nx
	}
	if ny := s.Player.Y + sin*step; s.walkable(s.Player.X, ny) {
		s.Player.Y = ny
	}
}

// Now returns accumulated simulation time, the clock behavioral states
// are stamped against.
func (s *Session) Now() time.Duration {
	return s.now
}

// PathDistance exposes the cached BFS distance for difficulty tooling.
func (s *Session) PathDistance(x1, y1, x2, y2 float64) int {
	a := maze.Point{X: int(math.Floor(x1)), Y: int(math.Floor(y1))}
	b := maze.Point{X: int(math.Floor(x2)), Y: int(math.Floor(y2))}
	return s.cache.Distance(s.Maze, a, b)
}

// walkable permits Open cells and, uniquely for the player, the exit
// door cell so the round can end by stepping into it.
func (s *Session) walkable(x, y float64) bool {
	switch s.Maze.CellAt(x, y) {
	case maze.CellOpen, maze.CellExitDoor:
		return true
	}
	return false
}

func (s *Session) handleContact(x, y float64, pull bool) {
	s.Energy -= parameter.EnergyContactDrain
	if s.Energy < 0 {
		s.Energy = 0
	}
	if s.OnContact != nil {
		s.OnContact(x, y, pull)
	}
}

func (s *Session) rechargeOnPad(dt time.Duration) {
	for _, pad := range s.Maze.Pads {
		px := float64(pad.X) + 0.5
		py := float64(pad.Y) + 0.5
		dx := s.Player.X - px
		dy := s.Player.Y - py
		if dx*dx+dy*dy <= parameter.PadRadius*parameter.PadRadius {
			s.Energy += parameter.EnergyPadRechargeRate * dt.Seconds()
			if s.Energy > parameter.EnergyMax {
				s.Energy = parameter.EnergyMax
			}
			return
		}
	}
}

func (s *Session) checkWin() {
	if s.Maze.CellAt(s.Player.X, s.Player.Y) == maze.CellExitDoor {
		s.Won = true
		log.Info("round won")
	}
}
