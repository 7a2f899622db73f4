package audio

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type failingBackend struct{ panics bool }

func (f failingBackend) Play(Sound) error {
	if f.panics {
		panic("device gone")
	}
	return errors.New("no device")
}

func (f failingBackend) SetVolume(Channel, float64) error { return errors.New("no mixer") }

func TestEmitterLogsBackendErrors(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(failingBackend{}, log.New(&buf))

	e.Emit(SoundJump)
	e.SetVolume(ChannelSFX, 0.5)

	out := buf.String()
	if !strings.Contains(out, "audio play failed") || !strings.Contains(out, "audio volume failed") {
		t.Errorf("expected both failures logged, got %q", out)
	}
}

func TestEmitterRecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(failingBackend{panics: true}, log.New(&buf))

	e.Emit(SoundStomp)

	if !strings.Contains(buf.String(), "panicked") {
		t.Errorf("panic should be logged, got %q", buf.String())
	}
}

func TestNilEmitterIsSilent(t *testing.T) {
	var e *Emitter
	e.Emit(SoundLaser)
	e.SetVolume(ChannelMusic, 1)
}

func TestEmitterClampsVolume(t *testing.T) {
	rec := &Recorder{}
	e := NewEmitter(rec, nil)

	e.SetVolume(ChannelMusic, 1.7)
	e.SetVolume(ChannelSFX, -0.2)

	if v, _ := rec.Volume(ChannelMusic); v != 1 {
		t.Errorf("music volume = %v, expected 1", v)
	}
	if v, _ := rec.Volume(ChannelSFX); v != 0 {
		t.Errorf("sfx volume = %v, expected 0", v)
	}
}

func TestRecorderCounts(t *testing.T) {
	rec := &Recorder{}
	e := NewEmitter(rec, nil)
	e.Emit(SoundJump)
	e.Emit(SoundJump)
	e.Emit(SoundPowerup)

	if rec.Count(SoundJump) != 2 || rec.Count(SoundPowerup) != 1 {
		t.Errorf("sounds = %v", rec.Sounds())
	}
}

func TestSoundChannels(t *testing.T) {
	if SoundLevelComplete.Channel() != ChannelMusic || SoundBossDefeat.Channel() != ChannelMusic {
		t.Error("jingles should play on the music channel")
	}
	if SoundJump.Channel() != ChannelSFX {
		t.Error("jump should play on the sfx channel")
	}
}

func TestSweepLength(t *testing.T) {
	s := newSweep(440, 880, 10*time.Millisecond, false)
	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		for _, smp := range buf[:n] {
			if smp[0] > 1 || smp[0] < -1 {
				t.Fatalf("sample out of range: %v", smp[0])
			}
		}
	}
	if want := sampleRate.N(10 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
}

func TestEffectsAreFinite(t *testing.T) {
	buf := make([][2]float64, 4096)
	for s := SoundJump; s <= SoundBossDefeat; s++ {
		st := Effect(s)
		total := 0
		for i := 0; i < 1000; i++ {
			n, ok := st.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total == 0 || total >= 1000*len(buf) {
			t.Errorf("%s: streamed %d samples", s, total)
		}
	}
}

func TestBeepBackendRequiresInit(t *testing.T) {
	b := NewBeepBackend(0.7, 0.7)
	if err := b.Play(SoundJump); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}
