package state

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	Black = color.NRGBA{A: 255}
	Red   = color.NRGBA{R: 255, A: 255}
	Green = color.NRGBA{G: 128, A: 255}
	Blue  = color.NRGBA{B: 255, A: 255}
)

// Swatch is a named palette entry.
type Swatch struct {
	Name  string
	Color color.NRGBA
}

// Palette is the fixed set of swatches shown in the toolbox, in order.
var Palette = []Swatch{
	{"black", Black},
	{"red", Red},
	{"green", Green},
	{"blue", Blue},
}

// ParseColor accepts a palette name or a "#rrggbb" hex triple.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, sw := range Palette {
		if sw.Name == s {
			return sw.Color, nil
		}
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || hex == s {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ColorName returns the palette name of c, or its "#rrggbb" form.
func ColorName(c color.NRGBA) string {
	for _, sw := range Palette {
		if sw.Color == c {
			return sw.Name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToNRGBA converts any color to an opaque-preserving NRGBA value.
func ToNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
