// Package gui is the raylib window front end.
package gui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orbitsim/internal/audio"
	"github.com/san-kum/orbitsim/internal/input"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	Title    = "Elliptical Orbit Simulator"
	fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	fontSize = 20
)

var (
	ColBg          = rl.NewColor(0, 0, 0, 255)
	ColText        = rl.NewColor(255, 255, 255, 255)
	ColButton      = rl.NewColor(50, 50, 50, 255)
	ColButtonHover = rl.NewColor(100, 100, 100, 255)
)

// keyNames maps raylib keys onto the names input.KeyCommand understands.
var keyNames = map[int32]string{
	rl.KeyT:          "t",
	rl.KeyEqual:      "=",
	rl.KeyKpAdd:      "+",
	rl.KeyUp:         "up",
	rl.KeyMinus:      "-",
	rl.KeyKpSubtract: "-",
	rl.KeyDown:       "down",
	rl.KeyQ:          "q",
	rl.KeyEscape:     "esc",
}

type Options struct {
	FPS   int
	Audio audio.Player
}

type App struct {
	Ctrl   *sim.Controller
	Queue  *input.Queue
	Layout input.Layout
	Audio  audio.Player
	Font   rl.Font
	Hover  int

	palette  map[string]rl.Color
	trailBuf []rl.Vector2
}

// initWindow opens the viewport-sized window and disables the default
// exit key so Escape goes through the command queue.
func initWindow(fps int) {
	rl.InitWindow(int32(physics.Viewport.Width), int32(physics.Viewport.Height), Title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when installed and falls back to the
// raylib default font.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(ctrl *sim.Controller, opts Options) *App {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	return &App{
		Ctrl:     ctrl,
		Queue:    input.NewQueue(),
		Layout:   input.DefaultLayout(),
		Audio:    opts.Audio,
		Font:     loadFont(),
		Hover:    -1,
		palette:  make(map[string]rl.Color),
		trailBuf: make([]rl.Vector2, 0, physics.TrailCapacity),
	}
}

// Run opens the window and blocks until the user quits or closes it.
func Run(ctrl *sim.Controller, opts Options) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	initWindow(opts.FPS)
	defer rl.CloseWindow()
	app := NewApp(ctrl, opts)
	app.RunLoop()
}

// RunLoop runs one controller tick per rendered frame.
func (a *App) RunLoop() {
	for {
		a.Poll()
		cmds := a.Queue.Drain()
		if !a.Ctrl.Tick(cmds) {
			return
		}
		speed := a.Ctrl.State().Speed
		for _, c := range cmds {
			a.Audio.Cue(c, speed)
		}
		a.Draw()
	}
}

// Poll decodes window, mouse and keyboard events into the queue.
func (a *App) Poll() {
	if rl.WindowShouldClose() {
		a.Queue.Push(input.Quit)
	}

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	a.Hover = a.Layout.Hover(x, y)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.Queue.Push(a.Layout.HitTest(x, y))
	}

	for key, name := range keyNames {
		if rl.IsKeyPressed(key) {
			a.Queue.Push(input.KeyCommand(name))
		}
	}
}
