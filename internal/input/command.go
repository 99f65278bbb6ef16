// Package input decodes device events into simulation commands.
//
// Front ends translate clicks and key presses into [Command] values and
// push them onto a [Queue]; the simulation loop drains the queue once per
// tick and never sees raw device events.
package input

// Command is a decoded user action.
type Command uint8

const (
	None Command = iota
	ToggleTrails
	SpeedUp
	SlowDown
	Quit
)

var commandNames = map[Command]string{
	None:         "none",
	ToggleTrails: "toggle-trails",
	SpeedUp:      "speed-up",
	SlowDown:     "slow-down",
	Quit:         "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand returns the command named s, as printed by String.
func ParseCommand(s string) (Command, bool) {
	for c, name := range commandNames {
		if name == s && c != None {
			return c, true
		}
	}
	return None, false
}
