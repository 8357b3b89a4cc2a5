package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

func TestEmbeddedConfigsLoad(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	cfg, err := loadConfig(loader)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg.Tuning)

	for _, name := range []string{"training", "pillars"} {
		arenaCfg, err := loader.LoadArena(name)
		require.NoError(t, err, name)

		tuning := cfg.Tuning
		_, err = system.NewWorld(&tuning, arenaCfg)
		assert.NoError(t, err, name)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("BRAWLER_SPIN_COOLDOWN", "2s")
	t.Setenv("BRAWLER_DISPLAY_FRAMERATE", "120")

	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loadConfig(loader)
	require.NoError(t, err)

	assert.Equal(t, "2s", cfg.Tuning.Spin.Cooldown.String())
	assert.Equal(t, 120, cfg.Display.Framerate)
}

func TestNewLoader_Directory(t *testing.T) {
	loader, err := newLoader("configs")
	require.NoError(t, err)
	assert.Equal(t, "configs", loader.BasePath())

	_, err = loader.LoadArena("training")
	assert.NoError(t, err)
}
