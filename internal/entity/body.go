package entity

import (
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
)

// Body is the moving-body capability shared by the player, enemies and the boss.
// Grounded is re-derived by every vertical pass and never carried over.
type Body struct {
	Rect      core.Rect
	VelocityY float64
	Grounded  bool
}

// MoveHorizontal displaces the body by dx and resolves side collisions.
// A platform pushes the body out through the side its center is on; platforms
// are checked in order and the last overlapping one wins.
// Returns true if any platform snapped the body.
func (b *Body) MoveHorizontal(dx float64, platforms []Platform) bool {
	b.Rect.X += dx
	snapped := false
	for i := range platforms {
		p := platforms[i].Rect
		if !b.Rect.Intersects(p) {
			continue
		}
		if b.Rect.Right() > p.Left() && b.Rect.CenterX() < p.CenterX() {
			b.Rect.SetRight(p.Left())
			snapped = true
		} else if b.Rect.Left() < p.Right() && b.Rect.CenterX() > p.CenterX() {
			b.Rect.SetLeft(p.Right())
			snapped = true
		}
	}
	return snapped
}

// ClampToLevel keeps the body inside [0, levelWidth] horizontally.
func (b *Body) ClampToLevel(levelWidth float64) {
	if b.Rect.Left() < 0 {
		b.Rect.SetLeft(0)
	}
	if b.Rect.Right() > levelWidth {
		b.Rect.SetRight(levelWidth)
	}
}

// ApplyGravity integrates one tick of gravity and clamps the result to
// [JumpVelocity, TerminalVelocity].
func (b *Body) ApplyGravity(phys config.PhysicsConfig) {
	b.VelocityY = core.ClampF(b.VelocityY+phys.Gravity, phys.JumpVelocity, phys.TerminalVelocity)
}

// MoveVertical applies the vertical velocity and resolves floor and ceiling
// collisions. Landing zeroes the velocity and grounds the body; hitting a
// ceiling only zeroes the velocity.
func (b *Body) MoveVertical(platforms []Platform) {
	b.Rect.Y += b.VelocityY
	b.Grounded = false
	for i := range platforms {
		p := platforms[i].Rect
		if !b.Rect.Intersects(p) {
			continue
		}
		switch {
		case b.VelocityY > 0:
			b.Rect.SetBottom(p.Top())
			b.VelocityY = 0
			b.Grounded = true
		case b.VelocityY < 0:
			b.Rect.SetTop(p.Bottom())
			b.VelocityY = 0
		}
	}
}

// Fall runs the gravity and vertical passes of a physics step.
func (b *Body) Fall(phys config.PhysicsConfig, platforms []Platform) {
	b.ApplyGravity(phys)
	b.MoveVertical(platforms)
}
