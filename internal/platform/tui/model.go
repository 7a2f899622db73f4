package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
	"github.com/vovakirdan/sancho-bros/internal/level"
	"github.com/vovakirdan/sancho-bros/internal/session"
)

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Game    *config.GameConfig
	Session *session.Session
	Watcher *level.Watcher // optional; enables level hot reload
	Logger  *log.Logger
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	renderer *Renderer
	input    *InputState
	config   core.RuntimeConfig
	watcher  *level.Watcher
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	game := opts.Game
	if game == nil {
		def := config.Default()
		game = &def
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		session:  opts.Session,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(game.Window),
		input:    NewInputState(NewKeyMapper()),
		config:   cfg,
		watcher:  opts.Watcher,
		logger:   logger,
	}
}

// Init starts the tick loop and, if configured, the level watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case LevelChangedMsg:
		//nolint:errcheck // Failures are logged by the session, play continues
		m.session.ReloadLevelFile(string(msg))
		return m, watchCmd(m.watcher)

	case watchErrMsg:
		m.logger.Warn("level watcher error", "error", msg.err)
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	m.input.Key(msg)
	return m, nil
}

// handleTick advances the session by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.input.Frame())
	if m.session.ShouldQuit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.session.Frame())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".sancho", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.session.LevelIndex(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Quitting reports whether the session asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderer.Draw(m.screen, m.session.Frame())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
