package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sancho-bros/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorSky:           lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorGround:        lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorGrass:         lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPlayer:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorPlayerPowered: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorEnemy:         lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorEnemySquashed: lipgloss.NewStyle().Foreground(lipgloss.Color("239")),
	core.ColorBoss:          lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	core.ColorBossHit:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorLaser:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorMermelada:     lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
	core.ColorArepa:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorGoal:          lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorHUD:           lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorMenuTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorMenuItem:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorMenuSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	core.ColorDim:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorWarning:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
