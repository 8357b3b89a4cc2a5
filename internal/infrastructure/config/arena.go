package config

import "fmt"

// ArenaConfig is the root config for arena YAML files
type ArenaConfig struct {
	ID      string              `yaml:"id"`
	Name    string              `yaml:"name"`
	Size    ArenaSizeConfig     `yaml:"size"`
	Spawn   PositionConfig      `yaml:"spawn"`
	Heading float64             `yaml:"heading"` // degrees, 0 faces +Z
	Damping float64             `yaml:"damping"` // fraction of target velocity kept per second
	Targets []TargetSpawnConfig `yaml:"targets"`
}

type ArenaSizeConfig struct {
	Width float64 `yaml:"width"` // X extent in meters
	Depth float64 `yaml:"depth"` // Z extent in meters
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

type TargetSpawnConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
}

// DefaultArena returns a small arena with three training dummies.
func DefaultArena() ArenaConfig {
	return ArenaConfig{
		ID:      "training",
		Name:    "Training Yard",
		Size:    ArenaSizeConfig{Width: 14, Depth: 10},
		Spawn:   PositionConfig{X: 0, Z: -2},
		Damping: 0.2,
		Targets: []TargetSpawnConfig{
			{Name: "dummy-left", X: -3, Z: 1.5, Radius: 0.5, Mass: 1},
			{Name: "dummy-center", X: 0, Z: 0, Radius: 0.5, Mass: 1},
			{Name: "dummy-right", X: 3, Z: 1.5, Radius: 0.5, Mass: 2},
		},
	}
}

// Validate checks that the arena is large enough to hold every target.
func (a *ArenaConfig) Validate() error {
	if a.Size.Width <= 0 || a.Size.Depth <= 0 {
		return fmt.Errorf("arena %s: size must be positive, got %vx%v", a.ID, a.Size.Width, a.Size.Depth)
	}
	if a.Damping < 0 || a.Damping > 1 {
		return fmt.Errorf("arena %s: damping must be within [0,1], got %v", a.ID, a.Damping)
	}
	for i, t := range a.Targets {
		if t.Radius <= 0 || t.Mass <= 0 {
			return fmt.Errorf("arena %s: target %d (%s) needs positive radius and mass", a.ID, i, t.Name)
		}
	}
	return nil
}
