package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sancho-bros/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held for a number of ticks after its last event.
// The initial hold outlasts a full jump ascent: a tap always gives a
// full-height jump and the short-hop cutoff is unreachable from here.
const (
	initialHoldTicks = 30 // covers the usual ~500ms delay before auto-repeat starts
	repeatHoldTicks  = 6
)

// KeyMapper translates Bubble Tea key messages to game actions.
// One key may drive several actions: Space both jumps and confirms.
type KeyMapper struct {
	bindings map[string][]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string][]core.Action{
		"ctrl+c": {core.ActionQuit},
		"left":   {core.ActionLeft},
		"a":      {core.ActionLeft},
		"right":  {core.ActionRight},
		"d":      {core.ActionRight},
		"up":     {core.ActionUp, core.ActionJump},
		"w":      {core.ActionUp, core.ActionJump},
		"down":   {core.ActionDown},
		"s":      {core.ActionDown},
		" ":      {core.ActionJump, core.ActionConfirm},
		"enter":  {core.ActionConfirm},
		"x":      {core.ActionShoot},
		"f":      {core.ActionShoot},
		"esc":    {core.ActionBack, core.ActionPause},
		"p":      {core.ActionPause},
	}}
}

// MapKey returns the actions bound to a key, or nil.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	return km.bindings[msg.String()]
}

// InputState accumulates key events between ticks and turns them into
// one InputFrame per tick.
type InputState struct {
	keys    *KeyMapper
	held    map[core.Action]int
	pressed []core.Action
}

// NewInputState creates an empty input state.
func NewInputState(keys *KeyMapper) *InputState {
	if keys == nil {
		keys = NewKeyMapper()
	}
	return &InputState{keys: keys, held: make(map[core.Action]int)}
}

// edgeOnly actions fire once per physical press: auto-repeat events
// while the key is held only extend the hold.
var edgeOnly = map[core.Action]bool{
	core.ActionJump:  true,
	core.ActionShoot: true,
}

// Key records a key event. Every event is a press except auto-repeats
// of edge-only actions. Unbound keys press ActionAny only.
// Returns true if the key was a quit request.
func (in *InputState) Key(msg tea.KeyMsg) bool {
	actions := in.keys.MapKey(msg)
	if len(actions) == 0 {
		in.pressed = append(in.pressed, core.ActionAny)
		return false
	}
	quit := false
	for _, a := range actions {
		if a == core.ActionQuit {
			quit = true
		}
		if in.held[a] > 0 {
			in.held[a] = max(in.held[a], repeatHoldTicks)
			if edgeOnly[a] {
				continue
			}
		} else {
			in.held[a] = initialHoldTicks
		}
		in.pressed = append(in.pressed, a)
	}
	return quit
}

// Frame returns the input for the next tick and ages held keys by one tick.
func (in *InputState) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range in.pressed {
		f.Press(a)
	}
	in.pressed = in.pressed[:0]

	for a, n := range in.held {
		if n <= 0 {
			delete(in.held, a)
			continue
		}
		f.Hold(a)
		in.held[a] = n - 1
	}
	return f
}

// Reset forgets every held key.
func (in *InputState) Reset() {
	clear(in.held)
	in.pressed = in.pressed[:0]
}
