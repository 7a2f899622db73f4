package entity

import (
	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
)

// Player is the controllable character.
type Player struct {
	Body
	Lives  int
	Facing int // -1 left, +1 right

	walking bool
	visible bool
	blink   int

	invulnerable core.Timer
	powerup      core.Timer
	cooldown     core.Timer
	shooting     core.Timer

	cfg   *config.GameConfig
	audio *audio.Emitter
}

// NewPlayer creates a player with its top-left corner at (x, y).
func NewPlayer(x, y float64, cfg *config.GameConfig, em *audio.Emitter) *Player {
	return &Player{
		Body:         Body{Rect: core.NewRect(x, y, cfg.Player.Width, cfg.Player.Height)},
		Lives:        cfg.Player.StartingLives,
		Facing:       1,
		visible:      true,
		invulnerable: core.NewTimer(cfg.Player.InvulnerabilityDuration),
		powerup:      core.NewTimer(cfg.Powerup.Duration),
		cooldown:     core.NewTimer(cfg.Laser.Cooldown),
		shooting:     core.NewTimer(cfg.Player.ShootAnimation),
		cfg:          cfg,
		audio:        em,
	}
}

// Update advances the player one tick: walk, resolve walls, clamp to the
// level, jump, cut the jump short, fall, then tick every timer.
func (p *Player) Update(in core.InputFrame, platforms []Platform, levelWidth float64) {
	phys := p.cfg.Physics

	dx := 0.0
	p.walking = false
	if in.Held(core.ActionLeft) {
		dx -= p.cfg.Player.Speed
		p.Facing = -1
		p.walking = true
	}
	if in.Held(core.ActionRight) {
		dx += p.cfg.Player.Speed
		p.Facing = 1
		p.walking = true
	}

	p.MoveHorizontal(dx, platforms)
	p.ClampToLevel(levelWidth)

	if in.Pressed(core.ActionJump) && p.Grounded {
		p.VelocityY = phys.JumpVelocity
		p.Grounded = false
		p.audio.Emit(audio.SoundJump)
	}
	if !in.Held(core.ActionJump) && p.VelocityY < phys.JumpCutoffVelocity {
		p.VelocityY = phys.JumpCutoffVelocity
	}

	p.Fall(phys, platforms)
	p.tickTimers()
}

func (p *Player) tickTimers() {
	if p.invulnerable.Active() {
		p.blink++
		if p.blink >= p.cfg.Player.BlinkInterval {
			p.visible = !p.visible
			p.blink = 0
		}
		if p.invulnerable.Tick() {
			p.visible = true
			p.blink = 0
		}
	}
	p.powerup.Tick()
	p.cooldown.Tick()
	p.shooting.Tick()
}

// TakeDamage costs one life and starts the invulnerability window, pushing
// the player knockbackDir * distance horizontally with a small bounce.
// It is a no-op while invulnerable. Returns true if a life was lost.
func (p *Player) TakeDamage(knockbackDir int) bool {
	if p.invulnerable.Active() {
		return false
	}
	p.Lives--
	p.invulnerable.Start()
	p.blink = 0
	if knockbackDir != 0 {
		p.Rect.X += float64(knockbackDir) * p.cfg.Player.KnockbackDistance
		p.VelocityY = p.cfg.Player.KnockbackBounce
	}
	p.audio.Emit(audio.SoundDamage)
	return true
}

// LoseLife removes a life regardless of invulnerability (pit falls).
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
	p.audio.Emit(audio.SoundDamage)
}

// Respawn moves the player back to (x, y) and clears vertical motion.
func (p *Player) Respawn(x, y float64) {
	p.Rect.X = x
	p.Rect.Y = y
	p.VelocityY = 0
	p.Grounded = false
}

// Bounce applies the stomp rebound.
func (p *Player) Bounce() {
	p.VelocityY = p.cfg.Player.StompBounce
}

// CollectPowerup enters (or refreshes) the powered-up state.
func (p *Player) CollectPowerup() {
	p.powerup.Start()
	p.audio.Emit(audio.SoundPowerup)
}

// CanShoot reports whether a laser can be fired this tick.
func (p *Player) CanShoot() bool {
	return p.PoweredUp() && p.cooldown.Done()
}

// Shoot fires a laser from the player's center in the facing direction.
// Returns false when the player is not powered up or still cooling down.
func (p *Player) Shoot() (*Laser, bool) {
	if !p.CanShoot() {
		return nil, false
	}
	p.cooldown.Start()
	p.shooting.Start()
	p.audio.Emit(audio.SoundLaser)
	return NewLaser(p.Rect.CenterX(), p.Rect.CenterY(), p.Facing, &p.cfg.Laser), true
}

// Invulnerable reports whether contact damage is currently ignored.
func (p *Player) Invulnerable() bool { return p.invulnerable.Active() }

// InvulnerableRemaining returns ticks left in the invulnerability window.
func (p *Player) InvulnerableRemaining() int { return p.invulnerable.Remaining() }

// PoweredUp reports whether the player can shoot.
func (p *Player) PoweredUp() bool { return p.powerup.Active() }

// PowerupRemaining returns ticks left of the power-up.
func (p *Player) PowerupRemaining() int { return p.powerup.Remaining() }

// ShootCooldown returns ticks until the next shot.
func (p *Player) ShootCooldown() int { return p.cooldown.Remaining() }

// PowerupWarning is true during the last stretch of the power-up.
func (p *Player) PowerupWarning() bool {
	return p.PoweredUp() && p.powerup.Remaining() < p.cfg.Powerup.Warning
}

// AuraVisible reports whether the power-up aura should be drawn this tick.
// During the warning stretch it flashes 10 ticks on, 10 off.
func (p *Player) AuraVisible() bool {
	if !p.PoweredUp() {
		return false
	}
	if p.PowerupWarning() && p.powerup.Remaining()%20 < 10 {
		return false
	}
	return true
}

// Visible is false on the "off" phase of the invulnerability blink.
func (p *Player) Visible() bool { return p.visible }

// Walking reports whether horizontal input moved the player this tick.
func (p *Player) Walking() bool { return p.walking }

// Animation returns the renderer key. Shooting wins over airborne, which
// wins over walking.
func (p *Player) Animation() Animation {
	switch {
	case p.shooting.Active():
		return AnimShoot
	case !p.Grounded && p.VelocityY < 0:
		return AnimJump
	case !p.Grounded:
		return AnimFall
	case p.walking:
		return AnimWalk
	default:
		return AnimIdle
	}
}
