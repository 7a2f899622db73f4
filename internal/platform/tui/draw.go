package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
	"github.com/vovakirdan/sancho-bros/internal/entity"
	"github.com/vovakirdan/sancho-bros/internal/session"
)

const hudRows = 1

// textureRunes picks the fill rune for a platform texture hint.
var textureRunes = map[string]rune{
	"grass":  '█',
	"stone":  '▓',
	"brick":  '▒',
	"wood":   '═',
	"marble": '░',
}

// backgroundColors tints the sky per level background hint.
var backgroundColors = map[string]core.Color{
	"bogota":       core.ColorSky,
	"medellin":     core.ColorSky,
	"amazon":       core.ColorGrass,
	"andes":        core.ColorDim,
	"presidential": core.ColorBoss,
}

// Renderer draws session frames onto a character screen. The logical
// viewport is scaled to fit the screen below the HUD row.
type Renderer struct {
	window config.WindowConfig
}

// NewRenderer creates a renderer for the given logical viewport.
func NewRenderer(window config.WindowConfig) *Renderer {
	return &Renderer{window: window}
}

// Draw renders f onto s.
func (r *Renderer) Draw(s *core.Screen, f session.Frame) {
	s.Clear()

	switch f.State {
	case session.StateMenu:
		r.drawTitle(s, f)
	case session.StateSettings:
		r.drawSettings(s, f)
	case session.StateControls:
		r.drawControls(s, f)
	case session.StateGameOver:
		r.drawGameOver(s, f)
	case session.StateVictory:
		r.drawVictory(s, f)
	case session.StatePlaying, session.StatePaused:
		if f.TransitionScreen {
			r.drawTransition(s, f)
			return
		}
		r.drawWorld(s, f)
		r.drawHUD(s, f)
		r.drawOverlay(s, f)
	}
}

// CellRect maps a world rectangle to screen cells for camera offset camX.
// Every entity covers at least one cell.
func (r *Renderer) CellRect(s *core.Screen, rect core.Rect, camX float64) (x, y, w, h int) {
	sx := float64(s.Width()) / r.window.Width
	sy := float64(s.Height()-hudRows) / r.window.Height

	x0 := int(math.Floor((rect.X - camX) * sx))
	x1 := int(math.Ceil((rect.Right() - camX) * sx))
	y0 := int(math.Floor(rect.Y*sy)) + hudRows
	y1 := int(math.Ceil(rect.Bottom()*sy)) + hudRows
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1 - x0, y1 - y0
}

func (r *Renderer) drawWorld(s *core.Screen, f session.Frame) {
	if c, ok := backgroundColors[f.Background]; ok {
		// Backdrop dots go down first; entities draw over them.
		for y := hudRows; y < s.Height(); y += 4 {
			for x := (y * 7) % 11; x < s.Width(); x += 11 {
				s.Set(x, y, '·', c)
			}
		}
	}

	for _, e := range f.Entities {
		if !e.Visible {
			continue
		}
		x, y, w, h := r.CellRect(s, e.Rect, f.CameraX)

		switch e.Kind {
		case session.KindPlatform:
			fill, ok := textureRunes[e.Texture]
			if !ok {
				fill = '█'
			}
			s.FillRect(x, y, w, h, fill, core.ColorGround)
			s.FillRect(x, y, w, 1, '▀', core.ColorGrass)
		case session.KindGoal:
			s.FillRect(x+w/2, y, 1, h, '│', core.ColorGoal)
			s.Set(x+w/2+1, y, '▶', core.ColorGoal)
		case session.KindPowerup:
			s.FillRect(x, y, w, h, '◆', core.ColorArepa)
		case session.KindEnemy:
			if e.Animation == entity.AnimSquashed {
				s.FillRect(x, y, w, h, '▁', core.ColorEnemySquashed)
			} else {
				s.FillRect(x, y, w, h, 'ö', core.ColorEnemy)
			}
		case session.KindBoss:
			color := core.ColorBoss
			switch {
			case e.Animation == entity.AnimDefeated:
				color = core.ColorDim
			case e.Highlight:
				color = core.ColorBossHit
			}
			s.FillRect(x, y, w, h, '█', color)
		case session.KindPlayer:
			color := core.ColorPlayer
			if e.Highlight {
				color = core.ColorPlayerPowered
			}
			s.FillRect(x, y, w, h, '@', color)
			eye := x + w - 1
			if e.Facing < 0 {
				eye = x
			}
			s.Set(eye, y, '°', color)
		case session.KindLaser:
			s.FillRect(x, y, w, h, '═', core.ColorLaser)
		case session.KindMermelada:
			s.FillRect(x, y, w, h, '●', core.ColorMermelada)
		}
	}
}

func (r *Renderer) drawHUD(s *core.Screen, f session.Frame) {
	s.FillRect(0, 0, s.Width(), hudRows, ' ', core.ColorHUD)

	lives := strings.Repeat("♥", max(f.Lives, 0))
	left := fmt.Sprintf(" SCORE %06d  LIVES %s  LEVEL %d/%d %s", f.Score, lives, f.LevelNumber, f.LevelCount, f.LevelName)
	s.DrawText(0, 0, left, core.ColorHUD)

	var right string
	color := core.ColorHUD
	switch {
	case f.HasBoss:
		right = "BOSS " + bar(f.BossHealth, 10) + " "
		color = core.ColorBoss
	case f.PoweredUp:
		right = fmt.Sprintf("POWER %2ds ", (f.PowerupRemaining+59)/60)
		if f.PowerupWarning {
			color = core.ColorWarning
		}
	default:
		right = fmt.Sprintf("HI %d ", f.HighScore)
	}
	s.DrawText(s.Width()-len([]rune(right)), 0, right, color)
}

func bar(fraction float64, width int) string {
	n := int(math.Round(core.ClampF(fraction, 0, 1) * float64(width)))
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", width-n) + "]"
}

func (r *Renderer) drawOverlay(s *core.Screen, f session.Frame) {
	mid := s.Height() / 2

	if f.BannerText != "" && f.BannerAlpha > 0 {
		s.DrawTextCentered(s.Height()/3, f.BannerText, alphaColor(f.BannerAlpha))
	}

	switch {
	case f.State == session.StatePaused:
		r.drawMenuBox(s, f.Menu, mid-4, nil)
	case f.LevelComplete:
		s.DrawTextCentered(mid, "LEVEL COMPLETE!", core.ColorMenuTitle)
	case f.Dead:
		s.DrawTextCentered(mid, "OUCH! Restarting level...", core.ColorWarning)
	}
}

// alphaColor approximates banner opacity with three brightness steps.
func alphaColor(alpha int) core.Color {
	switch {
	case alpha >= 170:
		return core.ColorMenuTitle
	case alpha >= 85:
		return core.ColorHUD
	default:
		return core.ColorDim
	}
}

func (r *Renderer) drawTransition(s *core.Screen, f session.Frame) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, fmt.Sprintf("LEVEL %d COMPLETE", f.LevelNumber), core.ColorMenuTitle)
	s.DrawTextCentered(mid, fmt.Sprintf("Score: %d", f.Score), core.ColorHUD)
	next := "Press any key to continue"
	if f.LevelNumber >= f.LevelCount {
		next = "Press any key for the final results"
	}
	s.DrawTextCentered(mid+2, next, core.ColorDim)
}

func (r *Renderer) drawTitle(s *core.Screen, f session.Frame) {
	top := s.Height()/2 - 6
	s.DrawTextCentered(top, "~ S A N C H O   B R O S ~", core.ColorPlayer)
	r.drawMenuBox(s, f.Menu, top+2, nil)
	if f.HighScore > 0 {
		s.DrawTextCentered(s.Height()-3, fmt.Sprintf("High score: %d", f.HighScore), core.ColorDim)
	}
	if f.Error != "" {
		s.DrawTextCentered(s.Height()-2, "Error: "+f.Error, core.ColorWarning)
	}
}

func (r *Renderer) drawSettings(s *core.Screen, f session.Frame) {
	values := map[string]string{
		session.ItemMusic: percent(f.MusicVolume),
		session.ItemSFX:   percent(f.SFXVolume),
	}
	r.drawMenuBox(s, f.Menu, s.Height()/2-4, values)
	s.DrawTextCentered(s.Height()-2, "Left/Right adjust, Esc back", core.ColorDim)
}

func percent(v float64) string {
	return fmt.Sprintf("< %3d%% >", int(math.Round(v*100)))
}

func (r *Renderer) drawControls(s *core.Screen, f session.Frame) {
	y := s.Height()/2 - len(f.Controls)/2 - 2
	s.DrawTextCentered(y, "CONTROLS", core.ColorMenuTitle)
	y += 2
	for _, c := range f.Controls {
		s.DrawTextCentered(y, fmt.Sprintf("%-12s %s", c[0], c[1]), core.ColorMenuItem)
		y++
	}
	s.DrawTextCentered(y+1, "Esc or Enter to return", core.ColorDim)
}

func (r *Renderer) drawGameOver(s *core.Screen, f session.Frame) {
	top := s.Height()/2 - 5
	s.DrawTextCentered(top+1, fmt.Sprintf("Final score: %d   Level %d", f.Score, f.LevelNumber), core.ColorHUD)
	if !f.GameOverReady {
		s.DrawTextCentered(top, "GAME OVER", core.ColorWarning)
		return
	}
	r.drawMenuBox(s, f.Menu, top, nil)
}

func (r *Renderer) drawVictory(s *core.Screen, f session.Frame) {
	top := s.Height()/2 - 5
	s.DrawTextCentered(top+1, fmt.Sprintf("Colombia is saved! Final score: %d", f.Score), core.ColorArepa)
	r.drawMenuBox(s, f.Menu, top, nil)
}

// drawMenuBox draws the menu title at row top and its items below, in a box.
// values adds a right-hand value per item label.
func (r *Renderer) drawMenuBox(s *core.Screen, m *session.Menu, top int, values map[string]string) {
	if m == nil {
		return
	}

	lines := make([]string, len(m.Items))
	width := len([]rune(m.Title))
	for i, item := range m.Items {
		line := item
		if v, ok := values[item]; ok {
			line = fmt.Sprintf("%-22s %s", item, v)
		}
		lines[i] = line
		width = max(width, len([]rune(line))+4)
	}

	boxW, boxH := width+4, len(lines)+4
	x := (s.Width() - boxW) / 2
	s.FillRect(x, top, boxW, boxH+1, ' ', core.ColorDefault)
	s.DrawBox(x, top+1, boxW, boxH, core.ColorDim)
	s.DrawTextCentered(top, m.Title, core.ColorMenuTitle)

	for i, line := range lines {
		y := top + 3 + i
		if i == m.Selected {
			s.DrawText(x+2, y, "> "+line, core.ColorMenuSelected)
			continue
		}
		s.DrawText(x+2, y, "  "+line, core.ColorMenuItem)
	}
}
