package renderer

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a 24-bit terminal color.
type Color struct {
	R, G, B uint8
	// Default indicates the terminal's own color.
	Default bool
}

// ColorDefault leaves the terminal color unchanged.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#RGB", "#RRGGBB", "RGB" or "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// sgrParams returns the foreground parameters for a select graphic
// rendition sequence.
func (c Color) sgrParams() string {
	return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
}
