package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the built-in tuning used when no YAML can be read.
func Default() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
		},
		Physics: PhysicsConfig{
			Gravity:            0.8,
			TerminalVelocity:   20,
			JumpVelocity:       -15,
			JumpCutoffVelocity: -3,
		},
		Player: PlayerConfig{
			Width:                   40,
			Height:                  60,
			Speed:                   5,
			StartingLives:           3,
			InvulnerabilityDuration: 60,
			BlinkInterval:           5,
			KnockbackDistance:       50,
			KnockbackBounce:         -5,
			StompBounce:             -8,
			ShootAnimation:          12,
		},
		Enemy: EnemyConfig{
			Width:          40,
			Height:         40,
			Speed:          2,
			PatrolDistance: 150,
			SquashDuration: 15,
			SquashWidth:    1.5,
			SquashHeight:   0.25,
			LookAhead:      5,
		},
		Boss: BossConfig{
			Width:                200,
			Height:               240,
			MaxHealth:            20,
			Speed:                2,
			PatrolDistance:       200,
			InvulnerableDuration: 30,
			HitFlashDuration:     20,
			ThrowInterval:        90,
			ProjectileCount:      8,
		},
		Laser: LaserConfig{
			Width:      20,
			Height:     6,
			Speed:      10,
			Cooldown:   15,
			CullMargin: 100,
		},
		Mermelada: ProjectileConfig{
			Width:      20,
			Height:     20,
			Speed:      5,
			CullTop:    700,
			CullMargin: 100,
		},
		Powerup: PowerupConfig{
			Width:      50,
			Height:     50,
			Duration:   600,
			Warning:    180,
			Amplitude:  10,
			FloatSpeed: 0.05,
		},
		Goal: GoalConfig{
			Width:  40,
			Height: 80,
		},
		Scoring: ScoringConfig{
			Stomp:      100,
			LaserKill:  100,
			Powerup:    200,
			BossHit:    500,
			BossDefeat: 5000,
		},
		Session: SessionConfig{
			LevelCount:         5,
			DeathDelay:         90,
			LevelCompleteDelay: 120,
			GameOverInputDelay: 60,
			BannerFadeIn:       30,
			BannerHold:         120,
			BannerFadeOut:      30,
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultGameYAML
}
