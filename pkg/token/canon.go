package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorToHex converts an RGBA color with 0-1 float channels into an 8 digit lowercase hex
// string (RGB followed by alpha). Every channel is scaled by 255 and truncated.
// Out-of-range and NaN channels are clamped instead of rejected.
func ColorToHex(r, g, b, a float64) string {
	c := colorful.Color{R: finite(r), G: finite(g), B: finite(b)}.Clamped()
	alpha := math.Max(0, math.Min(finite(a), 1))

	return fmt.Sprintf("%02x%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B), channel(alpha))
}

func channel(v float64) uint8 {
	return uint8(v * 255)
}

func finite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// RoundPosition rounds a gradient stop position to two decimal places.
func RoundPosition(p float64) float64 {
	return round2(p)
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}

// ParsePoint decodes a point stored as "{x, y}".
func ParsePoint(s string) (x, y float64, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return 0, 0, false
	}

	xs, ys, found := strings.Cut(s[1:len(s)-1], ",")
	if !found {
		return 0, 0, false
	}

	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}

	return x, y, true
}

// AngleDegrees computes atan(Δy/Δx) in degrees between two "{x, y}" points, rounded to
// two decimals. A vertical line yields ±90 and a horizontal one 0; no quadrant
// correction is applied. Unparsable points and coincident points yield 0.
func AngleDegrees(from, to string) float64 {
	x1, y1, ok := ParsePoint(from)
	if !ok {
		return 0
	}
	x2, y2, ok := ParsePoint(to)
	if !ok {
		return 0
	}

	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		return 0
	}

	return round2(math.Atan(dy/dx) * 180 / math.Pi)
}
