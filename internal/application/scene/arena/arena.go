// Package arena provides the scene where the character fights training
// dummies.
package arena

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/brawler/internal/application/replay"
	"github.com/younwookim/brawler/internal/application/scene"
	"github.com/younwookim/brawler/internal/application/state"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// Arena is the gameplay scene. It owns no rules of its own: input goes to
// the World and the World's Snapshot is drawn.
type Arena struct {
	world   *system.World
	display config.DisplayConfig
	source  InputSource

	// Feedback
	shake float64
	rng   *rand.Rand
	hits  int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	finished bool
}

// New creates an Arena scene over world, reading input from source.
func New(world *system.World, display config.DisplayConfig, source InputSource) *Arena {
	a := &Arena{
		world:   world,
		display: display,
		source:  source,
		rng:     rand.New(rand.NewSource(1)),
	}

	world.OnScreenShake = func(intensity float64) {
		a.shake = intensity
	}
	world.OnHit = func(t *entity.Target) {
		a.hits++
	}

	return a
}

// Record enables input recording. An empty filename saves under a
// generated name.
func (a *Arena) Record(filename string) {
	a.recorder = replay.NewRecorder(a.world.Arena().ID, a.display.Framerate)
	a.recordFilename = filename
	log.Printf("Recording enabled: %s", filename)
}

// Reload applies new tuning to the running session
func (a *Arena) Reload(t config.Tuning) error {
	if err := a.world.Reload(t); err != nil {
		return err
	}
	log.Printf("Tuning reloaded")
	return nil
}

// World returns the simulated session
func (a *Arena) World() *system.World {
	return a.world
}

// Update proceeds the session by one tick (implements scene.Scene)
func (a *Arena) Update(dt time.Duration) (scene.Scene, error) {
	if a.finished {
		return nil, ebiten.Termination
	}

	if s, ok := a.source.(saveRequester); ok && s.SaveRequested() {
		a.saveRecording()
	}

	input, ok := a.source.Poll()
	if !ok {
		log.Printf("Input finished at frame %d", a.world.Snapshot().Frame)
		a.finished = true
		return nil, ebiten.Termination
	}

	if a.recorder != nil {
		a.recorder.RecordFrame(input)
	}

	a.world.Step(input, dt)

	if !a.world.Paused() {
		a.shake *= a.world.Tuning().Feedback.ScreenShake.Decay
		if a.shake < 0.1 {
			a.shake = 0
		}
	}

	return nil, nil // nil = stay on this scene
}

// OnEnter implements scene.Scene
func (a *Arena) OnEnter() {
	arena := a.world.Arena()
	log.Printf("Entering arena %q (%d targets)", arena.ID, len(arena.Targets))
}

// OnExit saves any recording in progress (implements scene.Scene)
func (a *Arena) OnExit() {
	if a.recorder != nil && a.recorder.FrameCount() > 0 {
		a.saveRecording()
		a.recorder.Stop()
	}
}

// Hits returns how many strikes landed this session
func (a *Arena) Hits() int {
	return a.hits
}

// saveRecording saves the current recording to file
func (a *Arena) saveRecording() {
	if a.recorder == nil {
		return
	}

	filename := a.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := a.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, a.recorder.FrameCount())
	}
}

func (a *Arena) status(snap system.Snapshot) string {
	s := fmt.Sprintf("%s  combo %d/%d  hits %d", snap.State, snap.ComboHit, state.MaxComboHits, a.hits)
	if src, ok := a.source.(*ReplaySource); ok {
		cur, total := src.Progress()
		s += fmt.Sprintf("  replay %d/%d", cur, total)
	}
	return s
}
