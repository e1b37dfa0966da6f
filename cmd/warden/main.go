package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-warden/game"
	"github.com/lixenwraith/maze-warden/maze"
	"github.com/lixenwraith/maze-warden/raycast"
)

const (
	frameInterval = 33 * time.Millisecond // ~30 FPS
	keyImpulse    = 150 * time.Millisecond

	creatureRadius = 0.35
	padRadius      = 0.25
	markerRadius   = 0.3
)

// Game owns the screen and the session and drives the tick loop
type Game struct {
	screen        tcell.Screen
	session       *game.Session
	cfg           game.Config
	width, height int

	lastTick  time.Time
	audioInit bool

	// Contact feedback latched by the session callback, drained on draw
	contactFlash int
}

func NewGame(cfg game.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:   screen,
		session:  game.NewSession(cfg),
		cfg:      cfg,
		lastTick: time.Now(),
	}
	g.width, g.height = screen.Size()

	g.session.OnContact = g.onContact

	if err := g.initAudio(); err != nil {
		// Non-fatal, game can run without sound
		log.WithError(err).Warn("audio initialization failed")
	}

	return g, nil
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) playTone(freq float64, dur time.Duration) {
	if !g.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, _ := generators.SineTone(sampleRate, freq)
	speaker.Play(beep.Take(sampleRate.N(dur), sine))
}

func (g *Game) onContact(x, y float64, pull bool) {
	g.contactFlash = 3
	if pull {
		g.playTone(220, 80*time.Millisecond)
	} else {
		g.playTone(440, 60*time.Millisecond)
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyUp || ev.Rune() == 'w':
			g.session.Move(1, 0, keyImpulse)
		case ev.Key() == tcell.KeyDown || ev.Rune() == 's':
			g.session.Move(-1, 0, keyImpulse)
		case ev.Key() == tcell.KeyLeft || ev.Rune() == 'a':
			g.session.Move(0, -1, keyImpulse)
		case ev.Key() == tcell.KeyRight || ev.Rune() == 'd':
			g.session.Move(0, 1, keyImpulse)
		case ev.Rune() == 'r':
			if g.cfg.Seed != 0 {
				// Explicit seed: replay the identical round
				g.session.Restart()
			} else {
				g.session = game.NewSession(g.cfg)
				g.session.OnContact = g.onContact
			}
		}

	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(g.lastTick)
			g.lastTick = now

			won := g.session.Won
			g.session.Update(dt)
			if !won && g.session.Won {
				g.playTone(880, 300*time.Millisecond)
			}

			g.draw()
		}
	}
}

func (g *Game) draw() {
	g.screen.Clear()

	viewHeight := g.height - 1 // Bottom row is the status bar
	if viewHeight < 1 {
		viewHeight = 1
	}

	s := g.session
	cols := raycast.RenderColumns(s.Maze, s.Player, g.width, viewHeight)

	for x, col := range cols {
		if !col.Hit {
			continue
		}
		style := wallStyle(col)
		ch := wallRune(col)
		for y := col.WallTop; y < col.WallTop+col.WallHeight && y < viewHeight; y++ {
			g.screen.SetContent(x, y, ch, nil, style)
		}
	}

	g.drawBillboards(cols, viewHeight)
	g.drawStatus()
	g.screen.Show()
}

func (g *Game) drawBillboards(cols []raycast.Column, viewHeight int) {
	s := g.session

	// Exit marker sits in the wall plane and is never occlusion-culled
	ex := float64(s.Maze.ExitDoor.X) + 0.5
	ey := float64(s.Maze.ExitDoor.Y) + 0.5
	g.drawSprite(cols, viewHeight, ex, ey, markerRadius, '◊', tcell.ColorYellow, false)

	for _, pad := range s.Maze.Pads {
		px := float64(pad.X) + 0.5
		py := float64(pad.Y) + 0.5
		g.drawSprite(cols, viewHeight, px, py, padRadius, '+', tcell.ColorGreen, true)
	}

	for _, c := range s.Creatures {
		g.drawSprite(cols, viewHeight, c.X, c.Y, creatureRadius, '@', tcell.ColorRed, true)
	}
}

func (g *Game) drawSprite(cols []raycast.Column, viewHeight int, x, y, radius float64, ch rune, color tcell.Color, occlude bool) {
	sp, ok := raycast.ProjectBillboard(g.session.Maze, x, y, radius, g.session.Player, g.width, viewHeight, occlude)
	if !ok {
		return
	}

	style := tcell.StyleDefault.Foreground(color)
	if sp.Alpha < 0.5 {
		style = style.Dim(true)
	}

	half := int(sp.HalfSize)
	if half < 1 {
		half = 1
	}
	cx := int(sp.ScreenX)
	cy := int(sp.ScreenY)

	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			px, py := cx+dx, cy+dy
			if px < 0 || px >= g.width || py < 0 || py >= viewHeight {
				continue
			}
			// Per-column depth test against the wall geometry
			if cols[px].Hit && cols[px].Distance < sp.Distance {
				continue
			}
			g.screen.SetContent(px, py, ch, nil, style)
		}
	}
}

func (g *Game) drawStatus() {
	s := g.session

	status := fmt.Sprintf(" energy %3.0f │ dist to exit %d │ wasd/arrows move, r restart, esc quit",
		s.Energy,
		s.PathDistance(s.Player.X, s.Player.Y,
			float64(s.Maze.ExitRoom.X)+0.5, float64(s.Maze.ExitRoom.Y)+0.5))
	if s.Won {
		status = " you escaped! press r for a new round, esc to quit"
	}

	style := tcell.StyleDefault
	if g.contactFlash > 0 {
		g.contactFlash--
		style = style.Foreground(tcell.ColorRed).Bold(true)
	}

	row := g.height - 1
	for i, ch := range status {
		if i >= g.width {
			break
		}
		g.screen.SetContent(i, row, ch, nil, style)
	}
}

func wallStyle(col raycast.Column) tcell.Style {
	var color tcell.Color
	switch col.Texture {
	case raycast.TextureDoor:
		color = tcell.ColorYellow
	case raycast.TextureWallA:
		color = tcell.ColorTeal
	default:
		color = tcell.ColorNavy
	}

	style := tcell.StyleDefault.Foreground(color)
	if col.Brightness < 0.4 {
		style = style.Dim(true)
	}
	return style
}

func wallRune(col raycast.Column) rune {
	switch {
	case col.Cell == maze.CellExitDoor:
		return '║'
	case col.Brightness > 0.75:
		return '█'
	case col.Brightness > 0.5:
		return '▓'
	case col.Brightness > 0.25:
		return '▒'
	default:
		return '░'
	}
}

func (g *Game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	var (
		width     int
		height    int
		pads      int
		creatures int
		seed      int64
		smartPush bool
		logPath   string
	)

	flag.IntVar(&width, "width", 0, "Maze width in cells (0 = default)")
	flag.IntVar(&height, "height", 0, "Maze height in cells (0 = default)")
	flag.IntVar(&pads, "pads", 0, "Recharge pad count (0 = default)")
	flag.IntVar(&creatures, "creatures", 0, "Creature count (0 = default)")
	flag.Int64Var(&seed, "seed", 0, "Generation seed (0 = random); fixed seeds reproduce the round")
	flag.BoolVar(&smartPush, "smart-push", true, "Push toward the maze start instead of radially")
	flag.StringVar(&logPath, "log", "", "Write logs to file (default: discard, keeps the screen clean)")
	flag.Parse()

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	g, err := NewGame(game.Config{
		Width:         width,
		Height:        height,
		PadCount:      pads,
		CreatureCount: creatures,
		Seed:          seed,
		SmartPush:     smartPush,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}
