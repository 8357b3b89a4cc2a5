package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment override, e.g. BRAWLER_COMBO_WINDOW=1s.
const EnvPrefix = "BRAWLER_"

// ApplyEnv overlays environment variables onto cfg and revalidates the tuning.
func ApplyEnv(cfg *GameConfig) error {
	return applyEnv(cfg, env.Options{Prefix: EnvPrefix})
}

func applyEnv(cfg *GameConfig, opts env.Options) error {
	displayOpts := opts
	displayOpts.Prefix = opts.Prefix + "DISPLAY_"
	if err := env.ParseWithOptions(&cfg.Display, displayOpts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.ParseWithOptions(&cfg.Tuning, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return fmt.Errorf("invalid tuning from env: %w", err)
	}
	return nil
}
