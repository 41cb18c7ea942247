package tui

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEsc      = "esc"
	keyEnter    = "enter"
	keyTab      = "tab"
	keySort     = "s"
	keySize     = "z"
	keyRegion   = "r"
	keyLeft     = "left"
	keyRight    = "right"
	keyPageUp   = "pgup"
	keyPageDown = "pgdown"
)

const helpText = "s sort | z size | r region | digits ←/→ page | esc clear | q quit"
