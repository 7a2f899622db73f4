package entity

import (
	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
)

// Polocho is the patrolling enemy. It walks between PatrolStart and
// PatrolEnd, turns at walls and ledges, and can be squashed once.
type Polocho struct {
	Body
	PatrolStart float64
	PatrolEnd   float64
	Direction   int
	Speed       float64

	squashed bool
	squash   core.Timer
	removed  bool

	cfg   *config.GameConfig
	audio *audio.Emitter
}

// NewPolocho creates an enemy with its top-left corner at (x, y) patrolling
// patrolDistance pixels either side of x.
func NewPolocho(x, y, patrolDistance float64, cfg *config.GameConfig, em *audio.Emitter) *Polocho {
	return &Polocho{
		Body:        Body{Rect: core.NewRect(x, y, cfg.Enemy.Width, cfg.Enemy.Height)},
		PatrolStart: x - patrolDistance,
		PatrolEnd:   x + patrolDistance,
		Direction:   1,
		Speed:       cfg.Enemy.Speed,
		squash:      core.NewTimer(cfg.Enemy.SquashDuration),
		cfg:         cfg,
		audio:       em,
	}
}

// Update advances the enemy one tick.
func (e *Polocho) Update(platforms []Platform) {
	if e.removed {
		return
	}
	if e.squashed {
		e.squash.Tick()
		if e.squash.Done() {
			e.removed = true
		}
		return
	}

	e.Rect.X += e.Speed * float64(e.Direction)

	if e.Rect.Left() <= e.PatrolStart {
		e.Rect.SetLeft(e.PatrolStart)
		e.Direction = 1
	} else if e.Rect.Right() >= e.PatrolEnd {
		e.Rect.SetRight(e.PatrolEnd)
		e.Direction = -1
	}

	if e.Grounded && !e.groundAhead(platforms) {
		e.Direction = -e.Direction
	}

	e.bounceOffWalls(platforms)
	e.Fall(e.cfg.Physics, platforms)
}

// groundAhead probes a one-pixel strip below the position the enemy will
// reach a few steps ahead.
func (e *Polocho) groundAhead(platforms []Platform) bool {
	ahead := e.Speed * float64(e.Direction) * e.cfg.Enemy.LookAhead
	probe := core.NewRect(e.Rect.X+ahead, e.Rect.Bottom(), e.Rect.W, 1)
	for i := range platforms {
		if probe.Intersects(platforms[i].Rect) {
			return true
		}
	}
	return false
}

func (e *Polocho) bounceOffWalls(platforms []Platform) {
	for i := range platforms {
		p := platforms[i].Rect
		if !e.Rect.Intersects(p) {
			continue
		}
		if e.Direction > 0 && e.Rect.Right() > p.Left() && e.Rect.Left() < p.Left() {
			e.Rect.SetRight(p.Left())
			e.Direction = -1
		} else if e.Direction < 0 && e.Rect.Left() < p.Right() && e.Rect.Right() > p.Right() {
			e.Rect.SetLeft(p.Right())
			e.Direction = 1
		}
	}
}

// Squash flattens the enemy and starts its removal timer. The flattened
// footprint keeps the same bottom edge and horizontal center.
// Returns false if the enemy was already squashed.
func (e *Polocho) Squash() bool {
	if e.squashed || e.removed {
		return false
	}
	e.squashed = true
	e.squash.Start()

	bottom, cx := e.Rect.Bottom(), e.Rect.CenterX()
	e.Rect.W = e.cfg.Enemy.Width * e.cfg.Enemy.SquashWidth
	e.Rect.H = e.cfg.Enemy.Height * e.cfg.Enemy.SquashHeight
	e.Rect.SetBottom(bottom)
	e.Rect.SetCenterX(cx)
	e.VelocityY = 0

	e.audio.Emit(audio.SoundStomp)
	return true
}

// Squashed reports whether the enemy has been defeated.
func (e *Polocho) Squashed() bool { return e.squashed }

// SquashRemaining returns ticks until removal.
func (e *Polocho) SquashRemaining() int { return e.squash.Remaining() }

// Removed reports whether the squash timer has run out.
func (e *Polocho) Removed() bool { return e.removed }

// Active reports whether the enemy still takes part in collisions.
func (e *Polocho) Active() bool { return !e.squashed && !e.removed }

// Animation returns the renderer key.
func (e *Polocho) Animation() Animation {
	if e.squashed {
		return AnimSquashed
	}
	return AnimWalk
}
