// Package config provides YAML-based tuning configuration and difficulty
// presets for the platformer simulation.
package config

import "fmt"

// GameConfig holds every tunable constant of the simulation.
// Values are in pixels and frames unless noted otherwise.
type GameConfig struct {
	Window    WindowConfig     `yaml:"window"`
	Physics   PhysicsConfig    `yaml:"physics"`
	Player    PlayerConfig     `yaml:"player"`
	Enemy     EnemyConfig      `yaml:"enemy"`
	Boss      BossConfig       `yaml:"boss"`
	Laser     LaserConfig      `yaml:"laser"`
	Mermelada ProjectileConfig `yaml:"mermelada"`
	Powerup   PowerupConfig    `yaml:"powerup"`
	Goal      GoalConfig       `yaml:"goal"`
	Scoring   ScoringConfig    `yaml:"scoring"`
	Session   SessionConfig    `yaml:"session"`
}

// WindowConfig is the logical viewport the world is laid out for.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// PhysicsConfig is shared by every moving body.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	TerminalVelocity   float64 `yaml:"terminal_velocity"`
	JumpVelocity       float64 `yaml:"jump_velocity"`
	JumpCutoffVelocity float64 `yaml:"jump_cutoff_velocity"`
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	Width                   float64 `yaml:"width"`
	Height                  float64 `yaml:"height"`
	Speed                   float64 `yaml:"speed"`
	StartingLives           int     `yaml:"starting_lives"`
	InvulnerabilityDuration int     `yaml:"invulnerability_duration"`
	BlinkInterval           int     `yaml:"blink_interval"`
	KnockbackDistance       float64 `yaml:"knockback_distance"`
	KnockbackBounce         float64 `yaml:"knockback_bounce"`
	StompBounce             float64 `yaml:"stomp_bounce"`
	ShootAnimation          int     `yaml:"shoot_animation"`
}

// EnemyConfig defines the patrolling enemy.
type EnemyConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	PatrolDistance float64 `yaml:"patrol_distance"`
	SquashDuration int     `yaml:"squash_duration"`
	SquashWidth    float64 `yaml:"squash_width_scale"`
	SquashHeight   float64 `yaml:"squash_height_scale"`
	LookAhead      float64 `yaml:"look_ahead_factor"`
}

// BossConfig defines the final-level boss.
type BossConfig struct {
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	MaxHealth            int     `yaml:"max_health"`
	Speed                float64 `yaml:"speed"`
	PatrolDistance       float64 `yaml:"patrol_distance"`
	InvulnerableDuration int     `yaml:"invulnerable_duration"`
	HitFlashDuration     int     `yaml:"hit_flash_duration"`
	ThrowInterval        int     `yaml:"throw_interval"`
	ProjectileCount      int     `yaml:"projectile_count"`
}

// LaserConfig defines the player's projectile.
type LaserConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Cooldown   int     `yaml:"cooldown"`
	CullMargin float64 `yaml:"cull_margin"`
}

// ProjectileConfig defines the boss projectile.
type ProjectileConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	CullTop    float64 `yaml:"cull_top"`
	CullMargin float64 `yaml:"cull_margin"`
}

// PowerupConfig defines the floating collectible.
type PowerupConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Duration   int     `yaml:"duration"`
	Warning    int     `yaml:"warning"`
	Amplitude  float64 `yaml:"amplitude"`
	FloatSpeed float64 `yaml:"float_speed"`
}

// GoalConfig holds the default goal size used when a level omits it.
type GoalConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringConfig lists points awarded per event.
type ScoringConfig struct {
	Stomp      int `yaml:"stomp"`
	LaserKill  int `yaml:"laser_kill"`
	Powerup    int `yaml:"powerup"`
	BossHit    int `yaml:"boss_hit"`
	BossDefeat int `yaml:"boss_defeat"`
}

// SessionConfig holds session-level timers and the campaign length.
type SessionConfig struct {
	LevelCount         int `yaml:"level_count"`
	DeathDelay         int `yaml:"death_delay"`
	LevelCompleteDelay int `yaml:"level_complete_delay"`
	GameOverInputDelay int `yaml:"game_over_input_delay"`
	BannerFadeIn       int `yaml:"banner_fade_in"`
	BannerHold         int `yaml:"banner_hold"`
	BannerFadeOut      int `yaml:"banner_fade_out"`
}

// Validate rejects values the simulation cannot run with.
func (c GameConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("config: fps must be positive, got %d", c.Window.FPS)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("config: terminal_velocity must be positive, got %v", c.Physics.TerminalVelocity)
	case c.Physics.JumpVelocity >= 0:
		return fmt.Errorf("config: jump_velocity must be negative, got %v", c.Physics.JumpVelocity)
	case c.Player.StartingLives <= 0:
		return fmt.Errorf("config: starting_lives must be positive, got %d", c.Player.StartingLives)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive")
	case c.Boss.MaxHealth <= 0:
		return fmt.Errorf("config: boss max_health must be positive, got %d", c.Boss.MaxHealth)
	case c.Session.LevelCount <= 0:
		return fmt.Errorf("config: level_count must be positive, got %d", c.Session.LevelCount)
	}
	return nil
}
