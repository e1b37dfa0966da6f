package creature

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/parameter"
)

// Spawn places up to count creatures on random Open room cells,
// rejecting cells too close to the start. The rng handle is the only
// randomness source, so spawns are reproducible alongside generation.
func Spawn(m *maze.Model, count int, rng *rand.Rand) []*Creature {
	if count <= 0 {
		return nil
	}

	minSq := parameter.CreatureSpawnMinStartDistance * parameter.CreatureSpawnMinStartDistance

	var candidates []maze.Point
	for _, room := range m.OpenRooms() {
		dx := float64(room.X - m.Start.X)
		dy := float64(room.Y - m.Start.Y)
		if dx*dx+dy*dy >= minSq {
			candidates = append(candidates, room)
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if count > len(candidates) {
		count = len(candidates)
	}

	creatures := make([]*Creature, 0, count)
	for _, room := range candidates[:count] {
		creatures = append(creatures, &Creature{
			X:       float64(room.X) + 0.5,
			Y:       float64(room.Y) + 0.5,
			Heading: rng.Float64() * 2 * math.Pi,
		})
	}
	return creatures
}
