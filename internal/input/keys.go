package input

import "strings"

// keyTable maps normalised key names to commands. Names follow the
// Bubble Tea KeyMsg spelling; the window front end translates its key
// codes to the same names.
var keyTable = map[string]Command{
	"t":      ToggleTrails,
	"o":      ToggleTrails,
	"+":      SpeedUp,
	"=":      SpeedUp,
	"up":     SpeedUp,
	"-":      SlowDown,
	"_":      SlowDown,
	"down":   SlowDown,
	"q":      Quit,
	"esc":    Quit,
	"ctrl+c": Quit,
}

// KeyCommand returns the command bound to key, or None.
func KeyCommand(key string) Command {
	if c, ok := keyTable[key]; ok {
		return c
	}
	if c, ok := keyTable[strings.ToLower(key)]; ok && len(key) == 1 {
		return c
	}
	return None
}

// KeyHelp returns a one-line summary of the bindings.
func KeyHelp() string {
	return "T:Trails  +/=:Faster  -:Slower  Q:Quit"
}
