package level

import (
	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/entity"
	"github.com/vovakirdan/sancho-bros/internal/registry"
)

// EnemyFactory builds an enemy from its definition.
type EnemyFactory func(def EnemyDef, cfg *config.GameConfig, em *audio.Emitter) *entity.Polocho

// PowerupFactory builds a collectible from its definition.
type PowerupFactory func(def PowerupDef, cfg *config.GameConfig) *entity.GoldenArepa

// BossFactory builds a boss from its definition.
type BossFactory func(def BossDef, cfg *config.GameConfig, em *audio.Emitter) *entity.CorruptionBoss

// Type registries consulted by Validate and FromDefinition.
var (
	Enemies  = registry.New[EnemyFactory]("enemy")
	Powerups = registry.New[PowerupFactory]("powerup")
	Bosses   = registry.New[BossFactory]("boss")
)

func init() {
	Enemies.Register(defaultEnemyType, func(def EnemyDef, cfg *config.GameConfig, em *audio.Emitter) *entity.Polocho {
		patrol := cfg.Enemy.PatrolDistance
		if def.PatrolDistance != nil {
			patrol = *def.PatrolDistance
		}
		return entity.NewPolocho(def.SpawnX, def.SpawnY, patrol, cfg, em)
	})

	Powerups.Register(defaultPowerupType, func(def PowerupDef, cfg *config.GameConfig) *entity.GoldenArepa {
		return entity.NewGoldenArepa(def.X, def.Y, &cfg.Powerup)
	})

	Bosses.Register(defaultBossType, func(def BossDef, cfg *config.GameConfig, em *audio.Emitter) *entity.CorruptionBoss {
		return entity.NewCorruptionBoss(def.SpawnX, def.SpawnY, cfg, em)
	})
}
