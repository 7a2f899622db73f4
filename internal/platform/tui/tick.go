// Package tui is the terminal frontend: it samples keys into per-tick input
// frames, steps the game session at a fixed rate and draws its frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sancho-bros/internal/level"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LevelChangedMsg reports a level file edited on disk.
type LevelChangedMsg string

// watchErrMsg carries a watcher failure to the model for logging.
type watchErrMsg struct{ err error }

// watchCmd waits for the next watcher event. It returns nil once the
// watcher is closed so the command chain ends.
func watchCmd(w *level.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelChangedMsg(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}
