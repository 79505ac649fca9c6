package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is an NRGBA color parsed from "#rgb", "#rrggbb" or "#rrggbbaa"
// hex notation.
type Color struct {
	color.NRGBA
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{color.NRGBA{R: r, G: g, B: b, A: 0xff}}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{color.NRGBA{R: r, G: g, B: b, A: a}}
}

// UnmarshalText parses the hex notation. The alpha pair is optional and
// defaults to opaque.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if !strings.HasPrefix(s, "#") {
		return fmt.Errorf("color %q must start with '#'", s)
	}
	alpha := uint8(0xff)
	hex := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return fmt.Errorf("color %q has invalid alpha: %w", s, err)
		}
		alpha = uint8(a)
		hex = s[:7]
	}
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: alpha}
	return nil
}

// MarshalText renders "#rrggbb", or "#rrggbbaa" when translucent.
func (c Color) MarshalText() ([]byte, error) {
	if c.A != 0xff {
		return fmt.Appendf(nil, "#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
	}
	return fmt.Appendf(nil, "#%02x%02x%02x", c.R, c.G, c.B), nil
}

// UnmarshalYAML decodes the same hex notation from YAML scalars. The yaml
// package does not consult TextUnmarshaler on its own.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// MarshalYAML mirrors MarshalText.
func (c Color) MarshalYAML() (any, error) {
	b, err := c.MarshalText()
	return string(b), err
}
