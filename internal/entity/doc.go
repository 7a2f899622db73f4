// Package entity implements the per-entity simulation of the platformer:
// shared moving-body physics, the player, patrolling enemies, the boss,
// projectiles, the floating power-up and the goal marker.
//
// Entities own no global state. Every constructor receives the tuning
// configuration and an optional audio emitter, and every Update advances
// exactly one fixed tick.
package entity

// Animation is the renderer-facing state key of an entity.
type Animation int

const (
	AnimIdle Animation = iota
	AnimWalk
	AnimJump
	AnimFall
	AnimShoot
	AnimSquashed
	AnimHit
	AnimDefeated
)

// String returns the animation key name.
func (a Animation) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimFall:
		return "fall"
	case AnimShoot:
		return "shoot"
	case AnimSquashed:
		return "squashed"
	case AnimHit:
		return "hit"
	case AnimDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}
