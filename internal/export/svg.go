package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

// FrameToSVG writes f as a viewport-sized SVG: trails as polylines,
// bodies as discs at their display radius and the speed readout.
func FrameToSVG(w io.Writer, f *sim.Frame) error {
	width, height := physics.Viewport.Width, physics.Viewport.Height

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	if f.TrailsOn {
		for _, b := range f.Bodies {
			writeTrail(&sb, b)
		}
	}

	for _, b := range append([]*physics.Body{f.Attractor}, f.Bodies...) {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.0f" fill="%s"><title>%s</title></circle>
`, b.Pos.X, b.Pos.Y, b.Radius, b.Color, b.Name))
	}

	sb.WriteString(fmt.Sprintf(`<text x="10" y="%.0f" fill="#ffffff" font-family="monospace" font-size="20">%s</text>
`, height-40+16, f.SpeedLabel()))
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTrail(sb *strings.Builder, b *physics.Body) {
	if b.Trail.Len() < 2 {
		return
	}
	sb.WriteString(`<polyline fill="none" stroke-width="1" stroke="` + b.Color + `" points="`)
	for i, p := range b.Trail.Points() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%.2f,%.2f", p.X, p.Y))
	}
	sb.WriteString("\"/>\n")
}
