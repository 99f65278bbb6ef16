package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	f := a.Ctrl.Frame()
	a.drawBodies(f)
	a.drawButtons()
	a.drawText(f.SpeedLabel(), 10, int(physics.Viewport.Height)-40, fontSize, ColText)

	rl.EndDrawing()
}

func (a *App) drawBodies(f *sim.Frame) {
	if f.TrailsOn {
		for _, b := range f.Bodies {
			a.drawTrail(b)
		}
	}

	a.drawDisc(f.Attractor)
	for _, b := range f.Bodies {
		a.drawDisc(b)
	}
}

func (a *App) drawDisc(b *physics.Body) {
	rl.DrawCircle(int32(b.Pos.X), int32(b.Pos.Y), float32(b.Radius), a.color(b.Color))
}

// drawTrail draws the trail oldest to newest as one polyline.
func (a *App) drawTrail(b *physics.Body) {
	if b.Trail.Len() < 2 {
		return
	}
	a.trailBuf = a.trailBuf[:0]
	b.Trail.Each(func(_ int, p r2.Vec) {
		a.trailBuf = append(a.trailBuf, rl.NewVector2(float32(p.X), float32(p.Y)))
	})
	rl.DrawLineStrip(a.trailBuf, a.color(b.Color))
}

func (a *App) drawButtons() {
	for i, b := range a.Layout.Buttons {
		col := ColButton
		if i == a.Hover {
			col = ColButtonHover
		}
		r := b.Bounds
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), col)

		size := rl.MeasureTextEx(a.Font, b.Label, fontSize*0.8, 1)
		cx, cy := r.Center()
		a.drawText(b.Label, int(cx-float64(size.X)/2), int(cy-float64(size.Y)/2), fontSize*0.8, ColText)
	}
}

func (a *App) drawText(text string, x, y int, size float32, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), size, 1, color)
}

// color converts a body's hex colour, caching the result.
func (a *App) color(hex string) rl.Color {
	if c, ok := a.palette[hex]; ok {
		return c
	}
	c := ColText
	if parsed, err := colorful.Hex(hex); err == nil {
		r, g, b := parsed.RGB255()
		c = rl.NewColor(r, g, b, 255)
	}
	a.palette[hex] = c
	return c
}
