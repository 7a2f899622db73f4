package session

// Menu item labels.
const (
	ItemStart     = "Start Game"
	ItemSettings  = "Settings"
	ItemControls  = "Controls"
	ItemQuit      = "Quit"
	ItemResume    = "Resume"
	ItemRestart   = "Restart Level"
	ItemMainMenu  = "Return to Menu"
	ItemRetry     = "Retry Level"
	ItemMusic     = "Music Volume"
	ItemSFX       = "Sound Effects Volume"
	ItemBack      = "Back"
	ItemPlayAgain = "Play Again"
)

const volumeStep = 0.1

// Menu is a vertical list with a wrapping cursor.
type Menu struct {
	Title    string
	Items    []string
	Selected int
}

func newMenu(title string, items ...string) Menu {
	return Menu{Title: title, Items: items}
}

// Up moves the cursor up, wrapping to the last item.
func (m *Menu) Up() {
	if len(m.Items) == 0 {
		return
	}
	m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
}

// Down moves the cursor down, wrapping to the first item.
func (m *Menu) Down() {
	if len(m.Items) == 0 {
		return
	}
	m.Selected = (m.Selected + 1) % len(m.Items)
}

// Current returns the selected label.
func (m *Menu) Current() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

// ControlsHelp lists the bindings shown on the controls screen.
var ControlsHelp = [][2]string{
	{"Move", "A/D or Left/Right"},
	{"Jump", "Space, W or Up (hold for height)"},
	{"Shoot laser", "X or F (while powered up)"},
	{"Pause", "P or Esc"},
	{"Menu", "Up/Down, Enter to select"},
	{"Quit", "Ctrl+C"},
}
