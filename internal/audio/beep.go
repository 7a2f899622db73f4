package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// BeepBackend synthesizes short blips for each trigger point and mixes them
// onto the system speaker.
type BeepBackend struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volumes     map[Channel]float64
	initialized bool
}

// NewBeepBackend creates a backend with both channels at the given volumes.
func NewBeepBackend(music, sfx float64) *BeepBackend {
	return &BeepBackend{
		mixer: &beep.Mixer{},
		volumes: map[Channel]float64{
			ChannelMusic: music,
			ChannelSFX:   sfx,
		},
	}
}

// Init opens the speaker and starts the mixer.
func (b *BeepBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (b *BeepBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}

// Play mixes in the effect for s.
func (b *BeepBackend) Play(s Sound) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return ErrNotInitialized
	}
	streamer := withVolume(Effect(s), b.volumes[s.Channel()])
	speaker.Lock()
	b.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// SetVolume changes the volume used for subsequent sounds on ch.
func (b *BeepBackend) SetVolume(ch Channel, v float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.volumes[ch] = v
	return nil
}

// Effect builds the streamer for a sound.
func Effect(s Sound) beep.Streamer {
	switch s {
	case SoundJump:
		return newSweep(300, 600, 120*time.Millisecond, false)
	case SoundStomp:
		return newSweep(220, 80, 100*time.Millisecond, false)
	case SoundLaser:
		return newSweep(1200, 400, 90*time.Millisecond, true)
	case SoundPowerup:
		return arpeggio(70*time.Millisecond, 523, 659, 784, 1047)
	case SoundDamage:
		return newSweep(220, 110, 250*time.Millisecond, true)
	case SoundLevelComplete:
		return arpeggio(120*time.Millisecond, 523, 659, 784, 1047, 1319)
	case SoundBossHit:
		return newSweep(150, 90, 150*time.Millisecond, true)
	case SoundBossDefeat:
		return beep.Seq(
			newSweep(400, 60, 600*time.Millisecond, true),
			arpeggio(100*time.Millisecond, 392, 523, 659, 784),
		)
	default:
		return beep.Silence(0)
	}
}

func arpeggio(step time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = newSweep(f, f, step, false)
	}
	return beep.Seq(notes...)
}

// withVolume follows the log2 volume convention of effects.Volume,
// with zero mapped to silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sweep is a tone gliding linearly from one frequency to another with a
// linear fade-out.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
	square   bool
}

func newSweep(from, to float64, d time.Duration, square bool) *sweep {
	return &sweep{from: from, to: to, total: sampleRate.N(d), square: square}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		p := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*p
		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)

		v := math.Sin(2 * math.Pi * s.phase)
		if s.square {
			if v >= 0 {
				v = 0.5
			} else {
				v = -0.5
			}
		}
		v *= 0.3 * (1 - p)

		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *sweep) Err() error { return nil }
