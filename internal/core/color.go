package core

// Color is a logical foreground color for a screen cell.
// The TUI maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSky           // background fill
	ColorGround        // platform body
	ColorGrass         // platform top edge
	ColorPlayer
	ColorPlayerPowered
	ColorEnemy
	ColorEnemySquashed
	ColorBoss
	ColorBossHit
	ColorLaser
	ColorMermelada
	ColorArepa
	ColorGoal
	ColorHUD
	ColorMenuTitle
	ColorMenuItem
	ColorMenuSelected
	ColorDim
	ColorWarning
)
