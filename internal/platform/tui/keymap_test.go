package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
	"github.com/vovakirdan/sancho-bros/internal/level"
	"github.com/vovakirdan/sancho-bros/internal/session"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Action
	}{
		{"space jumps and confirms", spaceKey, []core.Action{core.ActionJump, core.ActionConfirm}},
		{"up navigates and jumps", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionUp, core.ActionJump}},
		{"esc backs out and pauses", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionBack, core.ActionPause}},
		{"x shoots", runeKey('x'), []core.Action{core.ActionShoot}},
		{"a walks left", runeKey('a'), []core.Action{core.ActionLeft}},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"unbound key", runeKey('z'), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.MapKey(tc.msg)
			if len(got) != len(tc.expected) {
				t.Fatalf("MapKey() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("MapKey()[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestInputStatePressThenHold(t *testing.T) {
	in := NewInputState(nil)
	in.Key(spaceKey)

	f := in.Frame()
	if !f.Pressed(core.ActionJump) || !f.Pressed(core.ActionConfirm) {
		t.Error("first event should press every bound action")
	}

	f = in.Frame()
	if f.Pressed(core.ActionJump) || !f.Held(core.ActionJump) {
		t.Error("second tick should hold without pressing")
	}
}

func TestInputStateRepeatIsNotJump(t *testing.T) {
	in := NewInputState(nil)
	in.Key(spaceKey)
	in.Frame()

	in.Key(spaceKey)
	f := in.Frame()
	if f.Pressed(core.ActionJump) {
		t.Error("auto-repeat must not trigger another jump")
	}
	if !f.Pressed(core.ActionConfirm) {
		t.Error("auto-repeat still confirms in menus")
	}
	if !f.Held(core.ActionJump) {
		t.Error("auto-repeat keeps jump held")
	}
}

func TestInputStateHoldDecays(t *testing.T) {
	in := NewInputState(nil)
	in.Key(runeKey('d'))

	for i := 0; i < initialHoldTicks; i++ {
		if !in.Frame().Held(core.ActionRight) {
			t.Fatalf("released after %d ticks", i)
		}
	}
	if in.Frame().Held(core.ActionRight) {
		t.Error("key should be released once the hold expires")
	}
}

func TestInputStateQuitAndReset(t *testing.T) {
	in := NewInputState(nil)
	if !in.Key(tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("ctrl+c should request quit")
	}
	if in.Key(runeKey('d')) {
		t.Error("movement is not a quit request")
	}

	in.Reset()
	f := in.Frame()
	if f.AnyPressed() || f.Held(core.ActionRight) {
		t.Error("Reset should drop pending and held keys")
	}
}

func TestInputStateUnboundKeyIsAnyKey(t *testing.T) {
	in := NewInputState(nil)
	in.Key(runeKey('z'))

	f := in.Frame()
	if !f.AnyPressed() {
		t.Error("unbound key should count as any key")
	}
	if f.Pressed(core.ActionConfirm) || f.Held(core.ActionLeft) {
		t.Error("unbound key should not drive game actions")
	}
	if in.Frame().AnyPressed() {
		t.Error("any key is a one-tick press")
	}
}

func TestInputStateRepeatIsNotShot(t *testing.T) {
	in := NewInputState(nil)
	in.Key(runeKey('x'))
	if !in.Frame().Pressed(core.ActionShoot) {
		t.Fatal("first event should shoot")
	}

	in.Key(runeKey('x'))
	f := in.Frame()
	if f.Pressed(core.ActionShoot) || !f.Held(core.ActionShoot) {
		t.Error("auto-repeat should hold shoot without firing again")
	}
}

func TestJumpTapOutlastsAscent(t *testing.T) {
	cfg := config.Default()
	ascent := int(math.Ceil(-cfg.Physics.JumpVelocity / cfg.Physics.Gravity))
	if initialHoldTicks <= ascent {
		t.Errorf("tap holds jump for %d ticks, ascent takes %d", initialHoldTicks, ascent)
	}
}

func TestShootKeyTapFiresOnce(t *testing.T) {
	cfg := config.Default()
	rec := &audio.Recorder{}
	s := session.New(session.Options{
		Config: &cfg,
		Levels: level.Embedded(),
		Audio:  audio.NewEmitter(rec, nil),
	})
	in := NewInputState(nil)

	in.Key(tea.KeyMsg{Type: tea.KeyEnter})
	s.Step(in.Frame())
	if s.State() != session.StatePlaying {
		t.Fatalf("state = %v, error: %v", s.State(), s.LastError())
	}
	s.Level().Player.CollectPowerup()

	in.Key(runeKey('x'))
	for i := 0; i < 40; i++ {
		s.Step(in.Frame())
	}
	if n := rec.Count(audio.SoundLaser); n != 1 {
		t.Errorf("one tap fired %d lasers, expected 1", n)
	}

	// auto-repeat while held keeps it at one shot
	in.Key(runeKey('x'))
	for i := 0; i < 60; i++ {
		if i%3 == 0 {
			in.Key(runeKey('x'))
		}
		s.Step(in.Frame())
	}
	if n := rec.Count(audio.SoundLaser); n != 2 {
		t.Errorf("holding the key fired %d lasers in total, expected 2", n)
	}
}
