// Command arena-tty runs the brawler arena in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

type app struct {
	screen tcell.Screen
	world  *system.World
	keys   *keys
	sound  *sound
	tick   time.Duration
	hits   int
}

func newApp(screen tcell.Screen, cfg *config.GameConfig, arena *config.ArenaConfig, snd *sound) (*app, error) {
	tuning := cfg.Tuning
	world, err := system.NewWorld(&tuning, arena)
	if err != nil {
		return nil, err
	}

	a := &app{
		screen: screen,
		world:  world,
		keys:   newKeys(),
		sound:  snd,
		tick:   cfg.Display.TickInterval(),
	}
	world.OnHit = func(*entity.Target) {
		a.hits++
		a.sound.hit(a.world.Snapshot().ComboHit)
	}
	return a, nil
}

// step advances the world one tick and redraws
func (a *app) step(now time.Time) {
	a.world.Step(a.keys.poll(now), a.tick)
	render(a.screen, a.world.Snapshot(), a.hits)
	a.screen.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a.keys.handle(ev, time.Now())
				if a.keys.quit {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		case now := <-ticker.C:
			a.step(now)
		}
	}
}

func main() {
	configDir := flag.String("config", "", "Config directory (defaults to built-in tuning and arena)")
	arenaName := flag.String("arena", "training", "Arena to load from arenas/<name>.yaml when -config is set")
	mute := flag.Bool("mute", false, "Disable sound")
	logFile := flag.String("log", "", "Write log output to this file")
	flag.Parse()

	sessionOut, closeLog, err := sessionLog(*logFile)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	cfg, arena, err := loadConfig(*configDir, *arenaName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	log.SetOutput(sessionOut)

	snd := newSound(*mute)
	a, err := newApp(screen, cfg, arena, snd)
	if err != nil {
		snd.close()
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create world: %v", err)
	}

	a.run()

	snd.close()
	screen.Fini()
	log.SetOutput(os.Stderr)
	log.Printf("Session over: %d hits", a.hits)
}

// sessionLog returns where log output goes while the screen is up. tcell
// draws on the same tty as stderr, so without a file the output is dropped.
func sessionLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// loadConfig reads dir when given, otherwise the built-in defaults, then
// overlays BRAWLER_* environment variables
func loadConfig(dir, arenaName string) (*config.GameConfig, *config.ArenaConfig, error) {
	cfg := &config.GameConfig{
		Display: config.DefaultDisplay(),
		Tuning:  config.Default(),
	}
	arena := config.DefaultArena()
	arenaCfg := &arena

	if dir != "" {
		loader := config.NewLoader(dir)
		loaded, err := loader.LoadAll()
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		if arenaCfg, err = loader.LoadArena(arenaName); err != nil {
			return nil, nil, err
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, arenaCfg, nil
}
