package main

import (
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/brawler/internal/application/game"
	"github.com/younwookim/brawler/internal/application/replay"
	"github.com/younwookim/brawler/internal/application/scene"
	"github.com/younwookim/brawler/internal/application/scene/arena"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded set")
	arenaName := flag.String("arena", "training", "Arena to load from arenas/<name>.yaml")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	watchFlag := flag.Bool("watch", false, "Reload tuning.yaml when it changes (requires -config)")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loadConfig(loader)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// A replay carries its own arena and tick rate
	var source arena.InputSource = arena.KeyboardSource{}
	name := *arenaName
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		name = data.Arena
		cfg.Display.Framerate = data.TickRate
		source = arena.NewReplaySource(replay.NewReplayer(*data))
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(data.Frames))
	}

	arenaCfg, err := loader.LoadArena(name)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	tuning := cfg.Tuning
	world, err := system.NewWorld(&tuning, arenaCfg)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}

	scn := arena.New(world, cfg.Display, source)
	if *recordFlag != "" {
		scn.Record(*recordFlag)
	}

	g := game.New(scn, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate)
	defer g.Close()

	if *watchFlag {
		if *configDir == "" {
			log.Printf("-watch needs -config; hot reload disabled")
		} else {
			stop := watchTuning(loader, g)
			defer stop()
		}
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Brawler: " + arenaCfg.Name)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadConfig loads YAML and overlays BRAWLER_* environment variables
func loadConfig(loader *config.Loader) (*config.GameConfig, error) {
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// watchTuning reloads tuning.yaml into the running scene whenever it changes
func watchTuning(loader *config.Loader, g *game.Game) func() {
	w, err := config.NewWatcher(loader.BasePath())
	if err != nil {
		log.Printf("Failed to watch %s: %v", loader.BasePath(), err)
		return func() {}
	}
	log.Printf("Watching %s for tuning changes", loader.BasePath())

	go func() {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(path) != "tuning.yaml" {
					continue
				}
				cfg, err := loadConfig(loader)
				if err != nil {
					log.Printf("Ignoring %s: %v", path, err)
					continue
				}
				g.Post(func(current scene.Scene) {
					if a, ok := current.(*arena.Arena); ok {
						if err := a.Reload(cfg.Tuning); err != nil {
							log.Printf("Failed to reload tuning: %v", err)
						}
					}
				})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher: %v", err)
			}
		}
	}()

	return func() {
		if err := w.Close(); err != nil {
			log.Printf("Failed to close watcher: %v", err)
		}
	}
}
