package entity

import (
	"math"

	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
)

// CorruptionBoss is the final-level boss. It patrols, falls like any other
// body and periodically throws a ring of mermeladas. Health only goes down;
// at zero the boss is defeated for good and stays on screen inert.
type CorruptionBoss struct {
	Body
	Health    int
	MaxHealth int
	Direction int

	PatrolLeft  float64
	PatrolRight float64

	invulnerable core.Timer
	hitFlash     core.Timer
	throw        core.Timer
	defeated     bool

	cfg   *config.GameConfig
	audio *audio.Emitter
}

// NewCorruptionBoss creates the boss with its bottom-left corner at (x, y).
func NewCorruptionBoss(x, y float64, cfg *config.GameConfig, em *audio.Emitter) *CorruptionBoss {
	b := &CorruptionBoss{
		Body:         Body{Rect: core.NewRect(0, 0, cfg.Boss.Width, cfg.Boss.Height)},
		Health:       cfg.Boss.MaxHealth,
		MaxHealth:    cfg.Boss.MaxHealth,
		Direction:    1,
		PatrolLeft:   x - cfg.Boss.PatrolDistance,
		PatrolRight:  x + cfg.Boss.PatrolDistance,
		invulnerable: core.NewTimer(cfg.Boss.InvulnerableDuration),
		hitFlash:     core.NewTimer(cfg.Boss.HitFlashDuration),
		throw:        core.NewTimer(cfg.Boss.ThrowInterval),
		cfg:          cfg,
		audio:        em,
	}
	b.Rect.SetBottomLeft(x, y)
	return b
}

// Update advances the boss one tick. A defeated boss does nothing.
func (b *CorruptionBoss) Update(platforms []Platform) {
	if b.defeated {
		return
	}
	b.hitFlash.Tick()
	b.invulnerable.Tick()

	b.Rect.X += b.cfg.Boss.Speed * float64(b.Direction)
	if b.Rect.Left() <= b.PatrolLeft {
		b.Direction = 1
		b.Rect.SetLeft(b.PatrolLeft)
	} else if b.Rect.Right() >= b.PatrolRight {
		b.Direction = -1
		b.Rect.SetRight(b.PatrolRight)
	}

	b.Fall(b.cfg.Physics, platforms)
	b.throw.Tick()
}

// TakeDamage removes amount health unless the boss is invulnerable or
// already defeated. Returns true if damage was dealt.
func (b *CorruptionBoss) TakeDamage(amount int) bool {
	if b.defeated || b.invulnerable.Active() {
		return false
	}
	b.Health -= amount
	b.hitFlash.Start()
	b.invulnerable.Start()
	b.audio.Emit(audio.SoundBossHit)

	if b.Health <= 0 {
		b.Health = 0
		b.defeated = true
		b.audio.Emit(audio.SoundBossDefeat)
	}
	return true
}

// CanThrow reports whether the throw cooldown has elapsed.
func (b *CorruptionBoss) CanThrow() bool {
	return !b.defeated && b.throw.Done()
}

// Throw launches ProjectileCount mermeladas evenly spread over a full
// circle from the boss center and restarts the cooldown.
// Returns nil when the boss cannot throw yet.
func (b *CorruptionBoss) Throw() []*Mermelada {
	if !b.CanThrow() {
		return nil
	}
	b.throw.Start()

	n := b.cfg.Boss.ProjectileCount
	cx, cy := b.Rect.CenterX(), b.Rect.CenterY()
	out := make([]*Mermelada, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		out = append(out, NewMermelada(cx, cy, angle, &b.cfg.Mermelada))
	}
	return out
}

// Defeated reports whether health has reached zero.
func (b *CorruptionBoss) Defeated() bool { return b.defeated }

// Invulnerable reports whether hits are currently ignored.
func (b *CorruptionBoss) Invulnerable() bool { return b.invulnerable.Active() }

// HitFlash reports whether the hurt flash should be drawn.
func (b *CorruptionBoss) HitFlash() bool { return b.hitFlash.Active() }

// HealthFraction returns health as a 0..1 fraction for a health bar.
func (b *CorruptionBoss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

// ThrowCooldown returns ticks until the next throw.
func (b *CorruptionBoss) ThrowCooldown() int { return b.throw.Remaining() }

// Animation returns the renderer key.
func (b *CorruptionBoss) Animation() Animation {
	switch {
	case b.defeated:
		return AnimDefeated
	case b.hitFlash.Active():
		return AnimHit
	default:
		return AnimWalk
	}
}
