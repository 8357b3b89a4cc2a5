// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/brawler/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      time.Duration

	// Between-tick work such as config reloads, run before each Update
	pending chan func(scene.Scene)
}

// New creates a new Game with the given initial scene, stepping it at tps
// ticks per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      time.Second / time.Duration(tps),
		pending: make(chan func(scene.Scene), 8),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.drain()

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the tick length used for updates.
func (g *Game) SetDT(dt time.Duration) {
	g.dt = dt
}

// DT returns the tick length used for updates.
func (g *Game) DT() time.Duration {
	return g.dt
}

// Post queues fn to run on the game goroutine before the next Update.
// It is safe to call from any goroutine and blocks while the queue is full.
func (g *Game) Post(fn func(current scene.Scene)) {
	g.pending <- fn
}

// Close runs the current scene's OnExit.
func (g *Game) Close() {
	g.current.OnExit()
}

func (g *Game) drain() {
	for {
		select {
		case fn := <-g.pending:
			fn(g.current)
		default:
			return
		}
	}
}
