package renderer

import (
	"fmt"
	"strings"
)

// Attribute represents text attributes (bold, underline, ...).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << (iota - 1)
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style is the look of the gutter.
type Style struct {
	Foreground Color
	Attributes Attribute
}

// DefaultStyle returns the plain terminal style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault}
}

// GutterStyle returns the default gutter style: underlined, no color.
func GutterStyle() Style {
	return Style{Foreground: ColorDefault, Attributes: AttrUnderline}
}

// IsPlain reports whether the style changes nothing.
func (s Style) IsPlain() bool {
	return s.Attributes == AttrNone && s.Foreground.IsDefault()
}

// SGR returns the escape sequence that switches the terminal to s, or ""
// for a plain style.
func (s Style) SGR() string {
	if s.IsPlain() {
		return ""
	}
	var params []string
	if s.Attributes.Has(AttrBold) {
		params = append(params, "1")
	}
	if s.Attributes.Has(AttrUnderline) {
		params = append(params, "4")
	}
	if s.Attributes.Has(AttrReverse) {
		params = append(params, "7")
	}
	if !s.Foreground.IsDefault() {
		params = append(params, s.Foreground.sgrParams())
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// sgrReset restores the default rendition.
const sgrReset = "\x1b[0m"

// ParseStyle parses a style description: a comma-separated list of
// "underline", "bold", "reverse", "none" and at most one hex color.
//
//	ParseStyle("underline")          // the default gutter
//	ParseStyle("bold,#5f87af")
func ParseStyle(spec string) (Style, error) {
	s := DefaultStyle()
	if strings.TrimSpace(spec) == "" {
		return s, fmt.Errorf("empty style")
	}

	colored := false
	for part := range strings.SplitSeq(spec, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "none":
		case "bold":
			s.Attributes |= AttrBold
		case "underline":
			s.Attributes |= AttrUnderline
		case "reverse":
			s.Attributes |= AttrReverse
		default:
			if colored {
				return s, fmt.Errorf("style %q: more than one color", spec)
			}
			c, err := ColorFromHex(part)
			if err != nil {
				return s, fmt.Errorf("style %q: %w", spec, err)
			}
			s.Foreground = c
			colored = true
		}
	}
	return s, nil
}
