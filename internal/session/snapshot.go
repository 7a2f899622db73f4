package session

import "math"

// Snapshot is a compact, comparable record of the session state.
// Positions are stored in hundredths of a pixel.
type Snapshot struct {
	Tick       uint64
	State      int
	Flags      int // bit 0 dead, 1 complete, 2 transition
	Score      int
	Lives      int
	LevelIndex int

	// Each entity is 5 ints: Kind, X, Y, W, H
	EntityCount int
	EntityData  []int

	PlayerVY int
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		State:      int(s.state),
		Score:      s.score,
		Lives:      s.lives,
		LevelIndex: s.levelIndex,
	}
	if s.dead {
		snap.Flags |= 1
	}
	if s.complete {
		snap.Flags |= 2
	}
	if s.transition {
		snap.Flags |= 4
	}
	if s.level == nil {
		return snap
	}

	snap.PlayerVY = fixed(s.level.Player.VelocityY)
	views := s.Frame().Entities
	snap.EntityCount = len(views)
	snap.EntityData = make([]int, 0, len(views)*5)
	for _, v := range views {
		snap.EntityData = append(snap.EntityData,
			int(v.Kind), fixed(v.Rect.X), fixed(v.Rect.Y), fixed(v.Rect.W), fixed(v.Rect.H))
	}
	return snap
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Flags)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)    //#nosec G115 -- hash computation

	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
