package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display DisplayConfig
	Tuning  Tuning
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadDisplay loads display.yaml over DefaultDisplay
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	cfg := DefaultDisplay()
	if err := l.decode("display.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadTuning loads tuning.yaml over Default and validates the result
func (l *Loader) LoadTuning() (*Tuning, error) {
	cfg := Default()
	if err := l.decode("tuning.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadArena loads an arena YAML file
func (l *Loader) LoadArena(name string) (*ArenaConfig, error) {
	path := "arenas/" + name + ".yaml"
	var cfg ArenaConfig
	if err := l.decode(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (display, tuning)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: *display,
		Tuning:  *tuning,
	}, nil
}

func (l *Loader) decode(path string, out any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
