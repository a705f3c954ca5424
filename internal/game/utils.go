package game

import (
	"fmt"
	"image/color"
)

// vertexColor converts c to the 0-1 channel values ebiten vertices use.
func vertexColor(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}

func inRect(x, y, rx, ry, rw, rh float64) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}

// sanitizeScale guards against a monitor that reports no scale factor yet.
func sanitizeScale(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}

// formatValue formats a gauge value for the status line, e.g. "25.0%".
func formatValue(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
