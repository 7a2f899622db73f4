package entity

import (
	"math"

	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
)

// Laser is the player's horizontal shot.
type Laser struct {
	Rect      core.Rect
	Direction int
	Speed     float64
	Active    bool

	margin float64
}

// NewLaser creates a laser centered at (cx, cy) travelling in direction.
func NewLaser(cx, cy float64, direction int, cfg *config.LaserConfig) *Laser {
	r := core.NewRect(0, 0, cfg.Width, cfg.Height)
	r.SetCenterX(cx)
	r.SetCenterY(cy)
	return &Laser{
		Rect:      r,
		Direction: direction,
		Speed:     cfg.Speed,
		Active:    true,
		margin:    cfg.CullMargin,
	}
}

// Update moves the laser and deactivates it once it is well outside the level.
func (l *Laser) Update(levelWidth float64) {
	if !l.Active {
		return
	}
	l.Rect = l.Rect.Translate(l.Speed*float64(l.Direction), 0)
	if l.Rect.Right() < -l.margin || l.Rect.Left() > levelWidth+l.margin {
		l.Active = false
	}
}

// Mermelada is the boss projectile: constant speed along a fixed angle,
// no gravity.
type Mermelada struct {
	Rect   core.Rect
	VX, VY float64
	Active bool

	cullTop float64
	margin  float64
}

// NewMermelada creates a projectile centered at (cx, cy) heading along
// angle (radians, screen coordinates).
func NewMermelada(cx, cy, angle float64, cfg *config.ProjectileConfig) *Mermelada {
	r := core.NewRect(0, 0, cfg.Width, cfg.Height)
	r.SetCenterX(cx)
	r.SetCenterY(cy)
	return &Mermelada{
		Rect:    r,
		VX:      math.Cos(angle) * cfg.Speed,
		VY:      math.Sin(angle) * cfg.Speed,
		Active:  true,
		cullTop: cfg.CullTop,
		margin:  cfg.CullMargin,
	}
}

// Update moves the projectile and deactivates it when out of range.
func (m *Mermelada) Update(levelWidth float64) {
	if !m.Active {
		return
	}
	m.Rect = m.Rect.Translate(m.VX, m.VY)
	if m.Rect.Top() > m.cullTop || m.Rect.Bottom() < -m.margin ||
		m.Rect.Right() < -m.margin || m.Rect.Left() > levelWidth+m.margin {
		m.Active = false
	}
}
