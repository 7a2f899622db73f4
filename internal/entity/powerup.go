package entity

import (
	"math"

	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
)

// GoldenArepa is the floating power-up. It bobs around BaseY and is
// collected at most once.
type GoldenArepa struct {
	Rect      core.Rect
	BaseY     float64
	Collected bool

	timer float64
	cfg   *config.PowerupConfig
}

// NewGoldenArepa creates a power-up centered at (x, y).
func NewGoldenArepa(x, y float64, cfg *config.PowerupConfig) *GoldenArepa {
	r := core.NewRect(0, 0, cfg.Width, cfg.Height)
	r.SetCenterX(x)
	r.SetCenterY(y)
	return &GoldenArepa{Rect: r, BaseY: y, cfg: cfg}
}

// Update advances the float animation.
func (a *GoldenArepa) Update() {
	if a.Collected {
		return
	}
	a.timer += a.cfg.FloatSpeed
	a.Rect.SetCenterY(a.BaseY + math.Sin(a.timer)*a.cfg.Amplitude)
}

// Collect marks the power-up as taken. Returns false if it already was.
func (a *GoldenArepa) Collect() bool {
	if a.Collected {
		return false
	}
	a.Collected = true
	return true
}

// Goal is the level-exit trigger.
type Goal struct {
	Rect core.Rect
}

// NewGoal creates a goal whose bottom edge sits at y, centered on x.
func NewGoal(x, y, w, h float64) Goal {
	r := core.NewRect(0, 0, w, h)
	r.SetCenterX(x)
	r.SetBottom(y)
	return Goal{Rect: r}
}
