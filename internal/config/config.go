package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRenderer   = "gui"
	DefaultFPS        = 60
	DefaultTheme      = "default"
	DefaultSpeed      = 1.0
	DefaultIntegrator = "euler"
	DefaultFrames     = 1200
	DefaultLogLevel   = "info"

	EnvPrefix = "ORBITSIM"
)

var Renderers = []string{"gui", "tui", "none"}

// Config holds front-end and session settings. Bodies and physical
// constants are fixed and deliberately not configurable.
type Config struct {
	Renderer   string  `yaml:"renderer" mapstructure:"renderer"`
	FPS        int     `yaml:"fps" mapstructure:"fps"`
	Theme      string  `yaml:"theme" mapstructure:"theme"`
	Sound      bool    `yaml:"sound" mapstructure:"sound"`
	Trails     bool    `yaml:"trails" mapstructure:"trails"`
	Speed      float64 `yaml:"speed" mapstructure:"speed"`
	Integrator string  `yaml:"integrator" mapstructure:"integrator"`
	Frames     int     `yaml:"frames" mapstructure:"frames"`
	LogLevel   string  `yaml:"log_level" mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Renderer:   DefaultRenderer,
		FPS:        DefaultFPS,
		Theme:      DefaultTheme,
		Sound:      false,
		Trails:     true,
		Speed:      DefaultSpeed,
		Integrator: DefaultIntegrator,
		Frames:     DefaultFrames,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads path, if given, over the defaults. ORBITSIM_* environment
// variables override both.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// Read parses YAML from r over the defaults.
func Read(r io.Reader) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return decode(v)
}

func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Encode writes cfg as YAML.
func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

func (c *Config) Validate() error {
	var errs []error
	if c.Speed < sim.MinSpeed || c.Speed > sim.MaxSpeed {
		errs = append(errs, fmt.Errorf("speed %g outside [%g, %g]: %w", c.Speed, sim.MinSpeed, sim.MaxSpeed, sim.ErrParameterBounds))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive: %w", c.FPS, sim.ErrParameterBounds))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames %d must not be negative: %w", c.Frames, sim.ErrParameterBounds))
	}
	if !validRenderer(c.Renderer) {
		errs = append(errs, fmt.Errorf("renderer %q not one of %s: %w", c.Renderer, strings.Join(Renderers, ", "), sim.ErrParameterBounds))
	}
	return errors.Join(errs...)
}

func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("renderer", def.Renderer)
	v.SetDefault("fps", def.FPS)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("sound", def.Sound)
	v.SetDefault("trails", def.Trails)
	v.SetDefault("speed", def.Speed)
	v.SetDefault("integrator", def.Integrator)
	v.SetDefault("frames", def.Frames)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func validRenderer(name string) bool {
	for _, r := range Renderers {
		if r == name {
			return true
		}
	}
	return false
}
