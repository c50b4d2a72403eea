package export

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/helix/internal/helix"
	"github.com/san-kum/helix/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}
	pw, ph := canvas.PixelSize()
	width, height := float64(pw)*scale, float64(ph)*scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#ffffff">
`, width, height, width, height)

	r := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if canvas.IsSet(x, y) {
				fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
					float64(x)*scale+scale/2, float64(y)*scale+scale/2, r)
			}
		}
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SideView draws the helix as seen from +Z at the given rotation:
// strands as polylines, connectors as lines, points as circles.
func SideView(p helix.Params, rotation float64, width, height int) string {
	geom := helix.Build(p)

	project := func(v r3.Vec) r3.Vec { return helix.RotateY(v, rotation) }
	minX, maxX := -p.HelixRadius-p.ConnectionLength/2, p.HelixRadius+p.ConnectionLength/2
	maxY := 0.0
	if n := len(geom.StrandA); n > 0 {
		maxY = geom.StrandA[n-1].Position.Y
	}
	spanX, spanY := maxX-minX, math.Max(maxY, 1)
	scale := math.Min(float64(width)/spanX, float64(height)/spanY) * 0.9
	offX := float64(width)/2 - (minX+spanX/2)*scale
	offY := float64(height)/2 + maxY/2*scale

	xy := func(v r3.Vec) (float64, float64) {
		w := project(v)
		return offX + w.X*scale, offY - w.Y*scale
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	sb.WriteString(`<g stroke="#5a5a5a" stroke-width="1.5">` + "\n")
	for _, c := range geom.Connectors {
		lo, hi := c.Endpoints()
		x1, y1 := xy(lo)
		x2, y2 := xy(hi)
		fmt.Fprintf(&sb, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\"/>\n", x1, y1, x2, y2)
	}
	sb.WriteString("</g>\n")

	for _, s := range []struct {
		points []helix.StrandPoint
		color  string
	}{{geom.StrandA, "#ffffff"}, {geom.StrandB, "#b4b4b4"}} {
		if len(s.points) == 0 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1" d="`, s.color)
		for i, pt := range s.points {
			x, y := xy(pt.Position)
			if i == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
		fmt.Fprintf(&sb, `<g fill="%s">`+"\n", s.color)
		for _, pt := range s.points {
			x, y := xy(pt.Position)
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\"/>\n", x, y)
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
