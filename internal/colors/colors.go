// Package colors holds the color model: bounded RGB colors and the palettes
// that small integer ColorIDs index into.
package colors

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/errs"
)

const (
	MinIntensity = 0.0
	MaxIntensity = 1.0
	maxChannel   = 255
)

// Color is an immutable RGB color with channels in [0, 1].
type Color struct {
	r, g, b float64
}

// NewColor validates the three channel intensities and returns the color.
func NewColor(r, g, b float64) (Color, error) {
	for _, ch := range [3]float64{r, g, b} {
		if math.IsNaN(ch) || ch < MinIntensity || ch > MaxIntensity {
			return Color{}, fmt.Errorf("colors: channel %v outside [0, 1]: %w", ch, errs.ErrValidation)
		}
	}
	return Color{r: r, g: g, b: b}, nil
}

// MustColor is NewColor for package-level literals; it panics on bad input.
func MustColor(r, g, b float64) Color {
	c, err := NewColor(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFromInts builds a color from 8-bit channels.
func ColorFromInts(r, g, b uint8) Color {
	return Color{
		r: float64(r) / maxChannel,
		g: float64(g) / maxChannel,
		b: float64(b) / maxChannel,
	}
}

func (c Color) R() float64 { return c.r }
func (c Color) G() float64 { return c.g }
func (c Color) B() float64 { return c.b }

// RGBA8 returns the channels scaled to bytes, rounded to nearest.
func (c Color) RGBA8() (r, g, b uint8) {
	return toByte(c.r), toByte(c.g), toByte(c.b)
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%.3f, %.3f, %.3f)", c.r, c.g, c.b)
}

func toByte(v float64) uint8 {
	return uint8(v*maxChannel + 0.5)
}

// ColorID indexes into a Palette. It is deliberately not an int so it cannot
// be passed where a coordinate or count is expected.
type ColorID uint16

// Palette maps ColorIDs to colors by position.
type Palette []Color

// Contains reports whether id names an entry of p.
func (p Palette) Contains(id ColorID) bool {
	return int(id) < len(p)
}

// Lookup returns the color for id.
func (p Palette) Lookup(id ColorID) (Color, error) {
	if !p.Contains(id) {
		return Color{}, fmt.Errorf("colors: id %d outside palette of %d: %w", id, len(p), errs.ErrRange)
	}
	return p[id], nil
}

// Common palette entries.
var (
	Black     = MustColor(0, 0, 0)
	Red       = MustColor(1, 0, 0)
	Green     = MustColor(0, 1, 0)
	Blue      = MustColor(0, 0, 1)
	Lavender  = MustColor(0.4, 0.3, 1)
	LightGray = MustColor(0.8, 0.8, 0.8)
	White     = MustColor(1, 1, 1)
)

// DefaultPalette returns the seven-entry palette the demos draw with.
// ID 0 is black so that a fresh Device renders as a black background.
func DefaultPalette() Palette {
	return Palette{Black, Red, Green, Blue, Lavender, LightGray, White}
}
