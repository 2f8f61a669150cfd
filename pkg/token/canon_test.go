package token

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorToHex(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		want       string
	}{
		{name: "opaque red", r: 1, g: 0, b: 0, a: 1, want: "ff0000ff"},
		{name: "transparent black", r: 0, g: 0, b: 0, a: 0, want: "00000000"},
		{name: "white half alpha truncates", r: 1, g: 1, b: 1, a: 0.5, want: "ffffff7f"},
		{name: "mid grey truncates", r: 0.5, g: 0.5, b: 0.5, a: 1, want: "7f7f7fff"},
		{name: "above range clamps", r: 1.7, g: 0, b: 0, a: 3, want: "ff0000ff"},
		{name: "below range clamps", r: -0.2, g: 0, b: 1, a: -1, want: "0000ff00"},
		{name: "NaN is zero", r: math.NaN(), g: 0, b: 0, a: 1, want: "000000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorToHex(tt.r, tt.g, tt.b, tt.a))
		})
	}
}

func TestRoundPosition(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{0.123, 0.12},
		{0.125, 0.13},
		{0.999, 1},
		{-0.001, 0},
	}

	for _, tt := range tests {
		if got := RoundPosition(tt.in); got != tt.want {
			t.Errorf("RoundPosition(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in     string
		x, y   float64
		wantOK bool
	}{
		{"{0.5, 0}", 0.5, 0, true},
		{"{0.5,1}", 0.5, 1, true},
		{" {-1.25, 3e-1} ", -1.25, 0.3, true},
		{"0.5, 1", 0, 0, false},
		{"{0.5}", 0, 0, false},
		{"{a, b}", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x, y, ok := ParsePoint(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestAngleDegrees(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     float64
	}{
		{name: "top to bottom is +90", from: "{0.5, 0}", to: "{0.5, 1}", want: 90},
		{name: "bottom to top is -90", from: "{0.5, 1}", to: "{0.5, 0}", want: -90},
		{name: "left to right is 0", from: "{0, 0.5}", to: "{1, 0.5}", want: 0},
		{name: "right to left is also 0", from: "{1, 0.5}", to: "{0, 0.5}", want: 0},
		{name: "diagonal", from: "{0, 0}", to: "{1, 1}", want: 45},
		{name: "shallow diagonal rounds", from: "{0, 0}", to: "{3, 1}", want: 18.43},
		{name: "coincident points", from: "{0.5, 0.5}", to: "{0.5, 0.5}", want: 0},
		{name: "unparsable from", from: "garbage", to: "{1, 1}", want: 0},
		{name: "unparsable to", from: "{0, 0}", to: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleDegrees(tt.from, tt.to)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.Signbit(got) && got == 0, "angle must not be negative zero")
		})
	}
}
