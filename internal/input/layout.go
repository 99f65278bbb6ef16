package input

// Rect is an axis-aligned screen region.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r. Edges are inclusive on
// the top-left and exclusive on the bottom-right.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Button is a clickable region bound to a command.
type Button struct {
	Label   string
	Bounds  Rect
	Command Command
}

// Layout is an ordered set of buttons. Earlier buttons win on overlap.
type Layout struct {
	Buttons []Button
}

// DefaultLayout is the window control strip along the top-left corner.
func DefaultLayout() Layout {
	return Layout{Buttons: []Button{
		{Label: "Toggle Orbit", Bounds: Rect{X: 10, Y: 10, W: 120, H: 40}, Command: ToggleTrails},
		{Label: "Speed Up (1.5x)", Bounds: Rect{X: 140, Y: 10, W: 120, H: 40}, Command: SpeedUp},
		{Label: "Slow Down (1.5x)", Bounds: Rect{X: 270, Y: 10, W: 120, H: 40}, Command: SlowDown},
	}}
}

// RowLayout lays labels out left to right on a single text row, each
// button as wide as its label plus padding, separated by gap cells.
func RowLayout(row, padding, gap int, buttons ...Button) Layout {
	x := 0
	out := make([]Button, len(buttons))
	for i, b := range buttons {
		w := len([]rune(b.Label)) + 2*padding
		b.Bounds = Rect{X: float64(x), Y: float64(row), W: float64(w), H: 1}
		out[i] = b
		x += w + gap
	}
	return Layout{Buttons: out}
}

// HitTest returns the command of the button under (x, y), or None.
func (l Layout) HitTest(x, y float64) Command {
	if i := l.Hover(x, y); i >= 0 {
		return l.Buttons[i].Command
	}
	return None
}

// Hover returns the index of the button under (x, y), or -1.
func (l Layout) Hover(x, y float64) int {
	for i, b := range l.Buttons {
		if b.Bounds.Contains(x, y) {
			return i
		}
	}
	return -1
}
