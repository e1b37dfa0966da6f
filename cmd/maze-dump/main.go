package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze-warden/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE WARDEN GRID GENERATOR ===")

		w := getInt(reader, "Width [odd preferred] (default 31): ", 31)
		h := getInt(reader, "Height [odd preferred] (default 31): ", 31)
		pads := getInt(reader, "Recharge pads (default 3): ", 3)
		seed := getInt(reader, "Seed (0 = random): ", 0)

		s := int64(seed)
		if s == 0 {
			s = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(s))

		fmt.Println("\nGenerating...")
		startT := time.Now()
		m := maze.Generate(maze.Config{Width: w, Height: h, PadCount: pads}, rng)
		dur := time.Since(startT)

		fmt.Printf("Done in %v (seed %d)\n", dur, s)
		fmt.Printf("Grid Dimensions: %dx%d\n", m.Width, m.Height)
		fmt.Printf("Exit Room: (%d,%d)  Door: (%d,%d)  Pads: %d\n",
			m.ExitRoom.X, m.ExitRoom.Y, m.ExitDoor.X, m.ExitDoor.Y, len(m.Pads))

		draw(m)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(m *maze.Model) {
	padMap := make(map[maze.Point]bool)
	for _, p := range m.Pads {
		padMap[p] = true
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := maze.Point{X: x, Y: y}

			switch {
			case p == m.Start:
				fmt.Print("S")
			case p == m.ExitDoor:
				fmt.Print("E")
			case padMap[p]:
				fmt.Print("+")
			case m.At(x, y) == maze.CellWall:
				fmt.Print("█")
			default:
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
