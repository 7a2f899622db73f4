// Package session drives a whole game run: menus, level progression,
// lives and score, and the per-tick interaction rules between entities.
//
// A Session is advanced only by Step, once per fixed tick, with that tick's
// input snapshot. All delays are tick counters, so two sessions fed the same
// inputs end in the same state.
package session

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
	"github.com/vovakirdan/sancho-bros/internal/level"
)

// State is the top-level session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateSettings
	StateControls
	StateGameOver
	StateVictory
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateSettings:
		return "settings"
	case StateControls:
		return "controls"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures a Session. Only Config and Levels are required.
type Options struct {
	Config *config.GameConfig
	Levels Levels
	Audio  *audio.Emitter
	Store  Store
	Logger *log.Logger
}

// Session is the top-level owner of the current level and run bookkeeping.
type Session struct {
	cfg    *config.GameConfig
	levels Levels
	audio  *audio.Emitter
	store  Store
	logger *log.Logger

	state    State
	returnTo State
	tick     uint64

	level      *level.Level
	levelIndex int
	score      int
	lives      int

	dead          bool
	deathTimer    core.Timer
	complete      bool
	completeTimer core.Timer
	transition    bool

	gameOverDelay core.Timer
	banner        core.Timer

	mainMenu     Menu
	pauseMenu    Menu
	gameOverMenu Menu
	settingsMenu Menu
	victoryMenu  Menu

	musicVolume  float64
	sfxVolume    float64
	highScore    int
	highestLevel int

	lastErr error
	quit    bool
}

// New creates a session sitting in the main menu. Saved settings and
// records are read from the store if one is given.
func New(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	store := opts.Store
	if store == nil {
		store = nopStore{}
	}
	em := opts.Audio
	if em == nil {
		em = audio.NewEmitter(nil, logger)
	}

	s := &Session{
		cfg:           cfg,
		levels:        opts.Levels,
		audio:         em,
		store:         store,
		logger:        logger,
		state:         StateMenu,
		lives:         cfg.Player.StartingLives,
		deathTimer:    core.NewTimer(cfg.Session.DeathDelay),
		completeTimer: core.NewTimer(cfg.Session.LevelCompleteDelay),
		gameOverDelay: core.NewTimer(cfg.Session.GameOverInputDelay),
		banner:        core.NewTimer(cfg.Session.BannerFadeIn + cfg.Session.BannerHold + cfg.Session.BannerFadeOut),
		mainMenu:      newMenu("SANCHO BROS", ItemStart, ItemSettings, ItemControls, ItemQuit),
		pauseMenu:     newMenu("PAUSED", ItemResume, ItemRestart, ItemSettings, ItemControls, ItemMainMenu),
		gameOverMenu:  newMenu("GAME OVER", ItemRetry, ItemMainMenu),
		settingsMenu:  newMenu("SETTINGS", ItemMusic, ItemSFX, ItemBack),
		victoryMenu:   newMenu("VICTORY!", ItemPlayAgain, ItemMainMenu),
		musicVolume:   DefaultVolume,
		sfxVolume:     DefaultVolume,
	}
	s.loadRecords()
	return s
}

func (s *Session) loadRecords() {
	if music, sfx, err := s.store.LoadSettings(); err != nil {
		s.logger.Warn("load settings failed", "error", err)
	} else {
		s.musicVolume, s.sfxVolume = music, sfx
	}
	s.audio.SetVolume(audio.ChannelMusic, s.musicVolume)
	s.audio.SetVolume(audio.ChannelSFX, s.sfxVolume)

	if hs, err := s.store.HighScore(); err != nil {
		s.logger.Warn("load high score failed", "error", err)
	} else {
		s.highScore = hs
	}
	if hl, err := s.store.HighestLevelCompleted(); err != nil {
		s.logger.Warn("load progress failed", "error", err)
	} else {
		s.highestLevel = hl
	}
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) {
	s.tick++
	if in.Pressed(core.ActionQuit) {
		s.quit = true
		return
	}

	switch s.state {
	case StateMenu:
		s.stepMainMenu(in)
	case StatePlaying:
		s.stepPlaying(in)
	case StatePaused:
		s.stepPaused(in)
	case StateSettings:
		s.stepSettings(in)
	case StateControls:
		s.stepControls(in)
	case StateGameOver:
		s.stepGameOver(in)
	case StateVictory:
		s.stepVictory(in)
	}
}

func (s *Session) stepMainMenu(in core.InputFrame) {
	if navigate(&s.mainMenu, in) {
		return
	}
	if !in.Pressed(core.ActionConfirm) {
		return
	}
	switch s.mainMenu.Current() {
	case ItemStart:
		s.startRun()
	case ItemSettings:
		s.openSettings(StateMenu)
	case ItemControls:
		s.openControls(StateMenu)
	case ItemQuit:
		s.quit = true
	}
}

func (s *Session) stepPlaying(in core.InputFrame) {
	s.banner.Tick()

	switch {
	case s.transition:
		if in.AnyPressed() {
			s.advance()
		}
	case s.complete:
		if s.completeTimer.Tick() {
			s.complete = false
			s.transition = true
		}
	case s.dead:
		if s.deathTimer.Tick() {
			s.respawnAfterDeath()
		}
	case in.Pressed(core.ActionPause):
		s.state = StatePaused
		s.pauseMenu.Selected = 0
	default:
		s.update(in)
	}
}

func (s *Session) stepPaused(in core.InputFrame) {
	if in.Pressed(core.ActionPause) || in.Pressed(core.ActionBack) {
		s.state = StatePlaying
		return
	}
	if navigate(&s.pauseMenu, in) || !in.Pressed(core.ActionConfirm) {
		return
	}
	switch s.pauseMenu.Current() {
	case ItemResume:
		s.state = StatePlaying
	case ItemRestart:
		s.state = StatePlaying
		s.dead = true
		s.deathTimer.Start()
	case ItemSettings:
		s.openSettings(StatePaused)
	case ItemControls:
		s.openControls(StatePaused)
	case ItemMainMenu:
		s.saveRun(OutcomeAbandon)
		s.returnToMenu()
	}
}

func (s *Session) stepSettings(in core.InputFrame) {
	if in.Pressed(core.ActionBack) {
		s.state = s.returnTo
		return
	}
	if navigate(&s.settingsMenu, in) {
		return
	}

	delta := 0.0
	switch {
	case in.Pressed(core.ActionLeft):
		delta = -volumeStep
	case in.Pressed(core.ActionRight):
		delta = volumeStep
	case in.Pressed(core.ActionConfirm):
		if s.settingsMenu.Current() == ItemBack {
			s.state = s.returnTo
		}
		return
	default:
		return
	}

	switch s.settingsMenu.Current() {
	case ItemMusic:
		s.musicVolume = stepVolume(s.musicVolume, delta)
		s.audio.SetVolume(audio.ChannelMusic, s.musicVolume)
	case ItemSFX:
		s.sfxVolume = stepVolume(s.sfxVolume, delta)
		s.audio.SetVolume(audio.ChannelSFX, s.sfxVolume)
	default:
		return
	}
	if err := s.store.SaveSettings(s.musicVolume, s.sfxVolume); err != nil {
		s.logger.Warn("save settings failed", "error", err)
	}
}

func stepVolume(v, delta float64) float64 {
	v = math.Round((v+delta)*10) / 10
	return core.ClampF(v, 0, 1)
}

func (s *Session) stepControls(in core.InputFrame) {
	if in.Pressed(core.ActionBack) || in.Pressed(core.ActionConfirm) {
		s.state = s.returnTo
	}
}

func (s *Session) stepGameOver(in core.InputFrame) {
	if s.gameOverDelay.Active() {
		s.gameOverDelay.Tick()
		return
	}
	if navigate(&s.gameOverMenu, in) || !in.Pressed(core.ActionConfirm) {
		return
	}
	switch s.gameOverMenu.Current() {
	case ItemRetry:
		s.score = 0
		s.lives = s.cfg.Player.StartingLives
		s.loadLevel(s.levelIndex)
	case ItemMainMenu:
		s.returnToMenu()
	}
}

func (s *Session) stepVictory(in core.InputFrame) {
	if navigate(&s.victoryMenu, in) || !in.Pressed(core.ActionConfirm) {
		return
	}
	switch s.victoryMenu.Current() {
	case ItemPlayAgain:
		s.startRun()
	case ItemMainMenu:
		s.returnToMenu()
	}
}

// navigate applies Up/Down to m. Returns true if the cursor moved.
func navigate(m *Menu, in core.InputFrame) bool {
	switch {
	case in.Pressed(core.ActionUp):
		m.Up()
		return true
	case in.Pressed(core.ActionDown):
		m.Down()
		return true
	}
	return false
}

func (s *Session) openSettings(from State) {
	s.returnTo = from
	s.state = StateSettings
	s.settingsMenu.Selected = 0
}

func (s *Session) openControls(from State) {
	s.returnTo = from
	s.state = StateControls
}

func (s *Session) returnToMenu() {
	s.level = nil
	s.clearFlags()
	s.state = StateMenu
	s.mainMenu.Selected = 0
}

func (s *Session) clearFlags() {
	s.dead = false
	s.complete = false
	s.transition = false
	s.deathTimer.Stop()
	s.completeTimer.Stop()
}

func (s *Session) startRun() {
	s.score = 0
	s.lives = s.cfg.Player.StartingLives
	s.loadLevel(1)
}

// loadLevel replaces the current level with level n. On failure the session
// returns to the main menu and the error is kept for LastError.
func (s *Session) loadLevel(n int) bool {
	lvl, err := s.buildLevel(n)
	if err != nil {
		s.lastErr = err
		s.logger.Error("level load failed", "level", n, "error", err)
		s.returnToMenu()
		return false
	}

	s.lastErr = nil
	s.level = lvl
	s.levelIndex = n
	s.level.Player.Lives = s.lives
	s.clearFlags()
	s.banner.Start()
	s.state = StatePlaying
	s.logger.Info("level loaded", "level", n, "name", lvl.Name)
	return true
}

func (s *Session) buildLevel(n int) (*level.Level, error) {
	if s.levels == nil {
		return nil, fmt.Errorf("session: no level source")
	}
	def, err := s.levels.Load(n)
	if err != nil {
		return nil, err
	}
	return level.FromDefinition(def, s.cfg, s.audio)
}

func (s *Session) advance() {
	s.transition = false
	if s.levelIndex < s.LevelCount() {
		s.loadLevel(s.levelIndex + 1)
		return
	}
	s.state = StateVictory
	s.victoryMenu.Selected = 0
	s.saveRun(OutcomeVictory)
}

func (s *Session) respawnAfterDeath() {
	s.dead = false
	if err := s.level.Reset(); err != nil {
		s.lastErr = err
		s.logger.Error("level reset failed", "level", s.levelIndex, "error", err)
		s.returnToMenu()
		return
	}
	s.level.Player.Lives = s.lives
	s.score = 0
	s.banner.Start()
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.gameOverDelay.Start()
	s.gameOverMenu.Selected = 0
	s.saveRun(OutcomeGameOver)
}

func (s *Session) saveRun(outcome string) {
	if err := s.store.SaveRun(s.score, s.levelIndex, outcome); err != nil {
		s.logger.Warn("save run failed", "outcome", outcome, "error", err)
	}
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

// ReloadLevelFile re-reads a changed level document. If it describes the
// level being played, the level is rebuilt from it; lives and score are
// kept. Documents for other levels are ignored.
func (s *Session) ReloadLevelFile(path string) error {
	if s.level == nil {
		return nil
	}
	def, err := level.ReadFile(path)
	if err != nil {
		s.logger.Warn("level reload failed", "path", path, "error", err)
		return err
	}
	if def.Number() != s.level.Number {
		return nil
	}
	lvl, err := level.FromDefinition(def, s.cfg, s.audio)
	if err != nil {
		s.logger.Warn("level reload rejected", "path", path, "error", err)
		return err
	}
	lvl.Player.Lives = s.lives
	s.level = lvl
	s.clearFlags()
	s.logger.Info("level reloaded", "path", path, "level", lvl.Number)
	return nil
}

// State returns the current top-level state.
func (s *Session) State() State { return s.state }

// Level returns the level being played, or nil outside a run.
func (s *Session) Level() *level.Level { return s.level }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Lives returns the lives left in this run.
func (s *Session) Lives() int { return s.lives }

// LevelIndex returns the current level number (1-based).
func (s *Session) LevelIndex() int { return s.levelIndex }

// Dead reports the death freeze sub-state.
func (s *Session) Dead() bool { return s.dead }

// LevelComplete reports the completion freeze sub-state.
func (s *Session) LevelComplete() bool { return s.complete }

// TransitionScreen reports whether the inter-level screen is waiting for a key.
func (s *Session) TransitionScreen() bool { return s.transition }

// LastError returns the most recent level load failure, or nil.
func (s *Session) LastError() error { return s.lastErr }

// ShouldQuit reports whether the player asked to exit.
func (s *Session) ShouldQuit() bool { return s.quit }

// Tick returns the number of steps taken.
func (s *Session) Tick() uint64 { return s.tick }

// LevelCount returns the campaign length.
func (s *Session) LevelCount() int {
	if s.levels == nil {
		return 0
	}
	n := s.levels.Count()
	if c := s.cfg.Session.LevelCount; c > 0 && c < n {
		n = c
	}
	return n
}

// Volumes returns the music and effects volumes.
func (s *Session) Volumes() (music, sfx float64) {
	return s.musicVolume, s.sfxVolume
}
