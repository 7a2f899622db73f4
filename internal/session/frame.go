package session

import (
	"github.com/vovakirdan/sancho-bros/internal/core"
	"github.com/vovakirdan/sancho-bros/internal/entity"
)

// Kind tags an entity in a frame.
type Kind int

const (
	KindPlatform Kind = iota
	KindGoal
	KindPowerup
	KindEnemy
	KindBoss
	KindPlayer
	KindLaser
	KindMermelada
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindGoal:
		return "goal"
	case KindPowerup:
		return "powerup"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindPlayer:
		return "player"
	case KindLaser:
		return "laser"
	case KindMermelada:
		return "mermelada"
	default:
		return "unknown"
	}
}

// EntityView is a read-only description of one entity for the renderer.
// Highlight means "powered-up aura" for the player and "hit flash" for the boss.
type EntityView struct {
	Kind      Kind
	Rect      core.Rect
	Animation entity.Animation
	Facing    int
	Visible   bool
	Highlight bool
	Texture   string
}

// Frame is everything the renderer needs for one tick.
type Frame struct {
	State            State
	Dead             bool
	LevelComplete    bool
	TransitionScreen bool

	Score       int
	Lives       int
	HighScore   int
	LevelNumber int
	LevelCount  int
	LevelName   string
	LevelWidth  float64
	Background  string

	CameraX  float64
	Entities []EntityView

	PoweredUp        bool
	PowerupRemaining int
	PowerupWarning   bool
	BossHealth       float64
	HasBoss          bool

	BannerText  string
	BannerAlpha int

	Menu          *Menu
	GameOverReady bool
	Controls      [][2]string
	MusicVolume   float64
	SFXVolume     float64
	Error         string
}

// Frame builds the render view of the current tick.
func (s *Session) Frame() Frame {
	f := Frame{
		State:            s.state,
		Dead:             s.dead,
		LevelComplete:    s.complete,
		TransitionScreen: s.transition,
		Score:            s.score,
		Lives:            s.lives,
		HighScore:        s.highScore,
		LevelNumber:      s.levelIndex,
		LevelCount:       s.LevelCount(),
		MusicVolume:      s.musicVolume,
		SFXVolume:        s.sfxVolume,
	}
	if s.lastErr != nil {
		f.Error = s.lastErr.Error()
	}

	switch s.state {
	case StateMenu:
		f.Menu = &s.mainMenu
	case StatePaused:
		f.Menu = &s.pauseMenu
	case StateSettings:
		f.Menu = &s.settingsMenu
	case StateControls:
		f.Controls = ControlsHelp
	case StateGameOver:
		f.Menu = &s.gameOverMenu
		f.GameOverReady = s.gameOverDelay.Done()
	case StateVictory:
		f.Menu = &s.victoryMenu
	}

	if s.level == nil {
		return f
	}

	l := s.level
	p := l.Player
	f.LevelName = l.Name
	f.LevelWidth = l.Width
	f.Background = l.Background
	f.CameraX = Camera(p.Rect.CenterX(), s.cfg.Window.Width, l.Width)
	f.PoweredUp = p.PoweredUp()
	f.PowerupRemaining = p.PowerupRemaining()
	f.PowerupWarning = p.PowerupWarning()
	if s.banner.Active() {
		f.BannerText = l.Name
		f.BannerAlpha = s.BannerAlpha()
	}

	f.Entities = make([]EntityView, 0, len(l.Platforms)+len(l.Enemies)+len(l.Powerups)+len(l.Lasers)+len(l.Mermeladas)+3)
	for _, pl := range l.Platforms {
		f.Entities = append(f.Entities, EntityView{Kind: KindPlatform, Rect: pl.Rect, Visible: true, Texture: pl.Texture})
	}
	f.Entities = append(f.Entities, EntityView{Kind: KindGoal, Rect: l.Goal.Rect, Visible: true})
	for _, a := range l.Powerups {
		if !a.Collected {
			f.Entities = append(f.Entities, EntityView{Kind: KindPowerup, Rect: a.Rect, Visible: true})
		}
	}
	for _, e := range l.Enemies {
		f.Entities = append(f.Entities, EntityView{
			Kind:      KindEnemy,
			Rect:      e.Rect,
			Animation: e.Animation(),
			Facing:    e.Direction,
			Visible:   true,
		})
	}
	if b := l.Boss; b != nil {
		f.HasBoss = true
		f.BossHealth = b.HealthFraction()
		f.Entities = append(f.Entities, EntityView{
			Kind:      KindBoss,
			Rect:      b.Rect,
			Animation: b.Animation(),
			Facing:    b.Direction,
			Visible:   true,
			Highlight: b.HitFlash(),
		})
	}
	f.Entities = append(f.Entities, EntityView{
		Kind:      KindPlayer,
		Rect:      p.Rect,
		Animation: p.Animation(),
		Facing:    p.Facing,
		Visible:   p.Visible(),
		Highlight: p.AuraVisible(),
	})
	for _, las := range l.Lasers {
		f.Entities = append(f.Entities, EntityView{Kind: KindLaser, Rect: las.Rect, Facing: las.Direction, Visible: true})
	}
	for _, m := range l.Mermeladas {
		f.Entities = append(f.Entities, EntityView{Kind: KindMermelada, Rect: m.Rect, Visible: true})
	}
	return f
}

// CameraX returns the current scroll offset, 0 outside a level.
func (s *Session) CameraX() float64 {
	if s.level == nil {
		return 0
	}
	return Camera(s.level.Player.Rect.CenterX(), s.cfg.Window.Width, s.level.Width)
}

// BannerAlpha returns the level-name banner opacity, 0..255:
// fade in, hold, then fade out.
func (s *Session) BannerAlpha() int {
	if !s.banner.Active() {
		return 0
	}
	in, hold, out := s.cfg.Session.BannerFadeIn, s.cfg.Session.BannerHold, s.cfg.Session.BannerFadeOut
	e := s.banner.Elapsed()
	switch {
	case e < in:
		return 255 * e / in
	case e < in+hold:
		return 255
	case out > 0:
		return 255 * (in + hold + out - e) / out
	default:
		return 0
	}
}
