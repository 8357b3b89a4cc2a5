package system

import (
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// LoadArena spawns the arena's targets into the physics and combat systems
func LoadArena(cfg *config.ArenaConfig, physics *PhysicsSystem, combat *CombatSystem) []*entity.Target {
	targets := make([]*entity.Target, 0, len(cfg.Targets))
	for i, spawn := range cfg.Targets {
		t := entity.NewTarget(entity.EntityID(i+1), spawn.Name, spawn.X, spawn.Z, spawn.Radius, spawn.Mass)
		physics.AddTarget(t)
		combat.AddTarget(t)
		targets = append(targets, t)
	}
	return targets
}
