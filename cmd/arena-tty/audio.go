package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// sound plays short tones on combat events. It stays silent when the
// speaker could not be opened.
type sound struct {
	enabled bool
}

func newSound(mute bool) *sound {
	if mute {
		return &sound{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the arena runs without sound
		log.Printf("Audio initialization failed: %v", err)
		return &sound{}
	}
	return &sound{enabled: true}
}

// hitTone rises with each strike of the combo
func hitTone(comboHit int) float64 {
	if comboHit < 1 {
		comboHit = 1
	}
	return 440 * (1 + 0.25*float64(comboHit-1))
}

// hit plays the strike tone for the given combo step
func (s *sound) hit(comboHit int) {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, hitTone(comboHit))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

func (s *sound) close() {
	if s.enabled {
		speaker.Close()
	}
}
