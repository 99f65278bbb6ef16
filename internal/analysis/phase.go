package analysis

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

type Point struct{ X, Y float64 }

// PhasePortrait2D holds data for a 2D phase space plot
type PhasePortrait2D struct {
	XLabel, YLabel string
	Points         []Point
}

// RadialPortrait turns a track sampled every dt into (r, dr/dt) points
// about center, using central differences.
func RadialPortrait(track []r2.Vec, center r2.Vec, dt float64) *PhasePortrait2D {
	if len(track) < 3 || dt <= 0 {
		return nil
	}

	radii := make([]float64, len(track))
	for i, p := range track {
		radii[i] = r2.Norm(r2.Sub(p, center))
	}

	portrait := &PhasePortrait2D{
		XLabel: "r",
		YLabel: "dr/dt",
		Points: make([]Point, 0, len(track)-2),
	}
	for i := 1; i < len(radii)-1; i++ {
		portrait.Points = append(portrait.Points, Point{
			X: radii[i],
			Y: (radii[i+1] - radii[i-1]) / (2 * dt),
		})
	}
	return portrait
}

// Crossings returns the sample indexes at which track crosses the
// horizontal line through center on the side x > center.X, moving
// toward larger y.
func Crossings(track []r2.Vec, center r2.Vec) []int {
	var out []int
	for i := 1; i < len(track); i++ {
		prev, cur := track[i-1], track[i]
		if cur.X > center.X && prev.Y < center.Y && cur.Y >= center.Y {
			out = append(out, i)
		}
	}
	return out
}

// CrossingPeriod is the mean spacing, in samples, between crossings.
func CrossingPeriod(crossings []int) (float64, error) {
	if len(crossings) < 2 {
		return 0, ErrNoPeriod
	}
	span := crossings[len(crossings)-1] - crossings[0]
	return float64(span) / float64(len(crossings)-1), nil
}

// PhasePortraitToASCII converts phase portrait to ASCII art
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y
	for _, p := range portrait.Points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	// pad 10% on each side
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	// zero radial velocity marks the apsides
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			canvas[row][col] = '─'
		}
	}

	for _, p := range portrait.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
