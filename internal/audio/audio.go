// Package audio defines the sound collaborator used by the simulation.
// Gameplay only ever fires sounds and never reads anything back, so any
// backend (including Nop) is a legal substitute.
package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Sound identifies a gameplay trigger point.
type Sound int

const (
	SoundJump Sound = iota
	SoundStomp
	SoundLaser
	SoundPowerup
	SoundDamage
	SoundLevelComplete
	SoundBossHit
	SoundBossDefeat
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundStomp:
		return "stomp"
	case SoundLaser:
		return "laser"
	case SoundPowerup:
		return "powerup"
	case SoundDamage:
		return "damage"
	case SoundLevelComplete:
		return "level_complete"
	case SoundBossHit:
		return "boss_hit"
	case SoundBossDefeat:
		return "boss_defeat"
	default:
		return fmt.Sprintf("sound(%d)", int(s))
	}
}

// Channel is a volume group.
type Channel int

const (
	ChannelMusic Channel = iota
	ChannelSFX
)

// String returns the channel name.
func (c Channel) String() string {
	if c == ChannelMusic {
		return "music"
	}
	return "sfx"
}

// Channel returns the volume group a sound plays on. Jingles count as music.
func (s Sound) Channel() Channel {
	switch s {
	case SoundLevelComplete, SoundBossDefeat:
		return ChannelMusic
	default:
		return ChannelSFX
	}
}

// Backend plays sounds.
type Backend interface {
	Play(s Sound) error
	SetVolume(ch Channel, v float64) error
}

// Nop discards every call.
type Nop struct{}

func (Nop) Play(Sound) error                { return nil }
func (Nop) SetVolume(Channel, float64) error { return nil }

// Recorder remembers every sound it is asked to play.
// Used by headless runs and tests to observe trigger points.
type Recorder struct {
	mu      sync.Mutex
	sounds  []Sound
	volumes map[Channel]float64
}

// Play records s.
func (r *Recorder) Play(s Sound) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sounds = append(r.sounds, s)
	return nil
}

// SetVolume records the last volume per channel.
func (r *Recorder) SetVolume(ch Channel, v float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.volumes == nil {
		r.volumes = make(map[Channel]float64)
	}
	r.volumes[ch] = v
	return nil
}

// Sounds returns a copy of everything played so far.
func (r *Recorder) Sounds() []Sound {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sound(nil), r.sounds...)
}

// Count returns how many times s was played.
func (r *Recorder) Count(s Sound) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, x := range r.sounds {
		if x == s {
			n++
		}
	}
	return n
}

// Volume returns the last volume set for ch.
func (r *Recorder) Volume(ch Channel) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.volumes[ch]
	return v, ok
}

// Emitter isolates gameplay from backend failures: errors are logged and
// panics are recovered, so a broken sound device never aborts a frame.
// A nil *Emitter is valid and silent.
type Emitter struct {
	backend Backend
	logger  *log.Logger
}

// NewEmitter wraps a backend. A nil backend becomes Nop, a nil logger discards.
func NewEmitter(backend Backend, logger *log.Logger) *Emitter {
	if backend == nil {
		backend = Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Emitter{backend: backend, logger: logger}
}

// Emit plays s.
func (e *Emitter) Emit(s Sound) {
	if e == nil {
		return
	}
	defer e.recoverPanic("play", s.String())
	if err := e.backend.Play(s); err != nil {
		e.logger.Warn("audio play failed", "sound", s, "error", err)
	}
}

// SetVolume forwards a clamped volume to the backend.
func (e *Emitter) SetVolume(ch Channel, v float64) {
	if e == nil {
		return
	}
	defer e.recoverPanic("volume", ch.String())
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if err := e.backend.SetVolume(ch, v); err != nil {
		e.logger.Warn("audio volume failed", "channel", ch, "error", err)
	}
}

func (e *Emitter) recoverPanic(op, what string) {
	if r := recover(); r != nil {
		e.logger.Error("audio backend panicked", "op", op, "target", what, "panic", r)
	}
}
