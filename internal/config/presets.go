package config

import "sort"

// Presets are named session starting points. Speeds are reachable from
// 1x with whole SpeedUp/SlowDown presses.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"fast": with(func(c *Config) {
		c.Speed = 3.375
	}),
	"slow": with(func(c *Config) {
		c.Speed = 1 / 2.25
	}),
	"clean": with(func(c *Config) {
		c.Trails = false
	}),
	"terminal": with(func(c *Config) {
		c.Renderer = "tui"
		c.FPS = 30
	}),
}

func with(mod func(c *Config)) *Config {
	c := DefaultConfig()
	mod(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
