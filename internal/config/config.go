// Package config handles configuration loading and validation for askpass.
//
// The configuration is resolved once at startup (file, then environment
// overrides, then CLI overrides applied by the caller) and treated as an
// immutable snapshot for the duration of the run.
package config

import (
	"fmt"
	"slices"
)

// Placement policies for the composed widget block.
const (
	PlacementCenter        = "center"
	PlacementTopRight      = "top_right"
	PlacementBottomLeft    = "bottom_left"
	PlacementMiddleCompact = "middle_compact"
)

// Indicator variants.
const (
	IndicatorClassic = "classic"
	IndicatorCircle  = "circle"
	IndicatorStrings = "strings"
)

// Strings indicator sub-modes.
const (
	StringsAsterisk = "asterisk"
	StringsDisco    = "disco"
	StringsCustom   = "custom"
)

// Text directions.
const (
	DirectionAuto = "auto"
	DirectionLTR  = "ltr"
	DirectionRTL  = "rtl"
)

// Config is the full dialog configuration.
type Config struct {
	// Title is the window title. With ShowHostname set, "@hostname" is
	// appended.
	Title        string `toml:"title" yaml:"title" env:"ASKPASS_TITLE"`
	ShowHostname bool   `toml:"show_hostname" yaml:"show_hostname"`

	// GrabKeyboard requests an exclusive keyboard grab. Denial degrades
	// to ungrabbed operation rather than failing.
	GrabKeyboard bool `toml:"grab_keyboard" yaml:"grab_keyboard" env:"ASKPASS_GRAB_KEYBOARD"`

	// Depth is the target pixel depth: 32 enables background alpha, 24
	// forces opaque rendering.
	Depth int `toml:"depth" yaml:"depth"`

	Resizable bool `toml:"resizable" yaml:"resizable"`

	Dialog Dialog `toml:"dialog" yaml:"dialog"`
}

// Dialog holds the widget description.
type Dialog struct {
	Label string `toml:"label" yaml:"label"`

	// Font is a typeface name; empty selects the built-in collection.
	// FontFile points at an OpenType file loaded ahead of the collection.
	Font     string  `toml:"font" yaml:"font"`
	FontFile string  `toml:"font_file" yaml:"font_file" env:"ASKPASS_FONT_FILE"`
	FontSize float64 `toml:"font_size" yaml:"font_size"`

	// Direction is auto, ltr or rtl. Auto detects from the label text.
	Direction string `toml:"direction" yaml:"direction"`

	// Scale overrides the display's DPI scale factor when non-zero.
	Scale float64 `toml:"scale" yaml:"scale" env:"ASKPASS_SCALE"`

	// InputTimeout is the idle timeout in seconds; 0 disables it.
	InputTimeout int `toml:"input_timeout" yaml:"input_timeout" env:"ASKPASS_INPUT_TIMEOUT"`

	// MaxLength bounds the passphrase length.
	MaxLength int `toml:"max_length" yaml:"max_length"`

	Foreground Color `toml:"foreground" yaml:"foreground"`
	Background Color `toml:"background" yaml:"background"`

	// ShowClipboardButton and ShowPlaintextToggle control the optional
	// widgets. The plaintext toggle reveals typed characters on demand
	// and is off by default.
	ShowClipboardButton bool `toml:"show_clipboard_button" yaml:"show_clipboard_button"`
	ShowPlaintextToggle bool `toml:"show_plaintext_toggle" yaml:"show_plaintext_toggle"`

	Layout Layout `toml:"layout" yaml:"layout"`

	OKButton        TextButton `toml:"ok_button" yaml:"ok_button"`
	CancelButton    TextButton `toml:"cancel_button" yaml:"cancel_button"`
	ClipboardButton TextButton `toml:"clipboard_button" yaml:"clipboard_button"`
	PlaintextButton TextButton `toml:"plaintext_button" yaml:"plaintext_button"`

	Indicator Indicator `toml:"indicator" yaml:"indicator"`
}

// Layout holds spacing and placement of the composed block.
type Layout struct {
	Placement string `toml:"placement" yaml:"placement" env:"ASKPASS_PLACEMENT"`

	// Spacings in pixels; 0 derives them from the text height.
	HorizontalSpacing float64 `toml:"horizontal_spacing" yaml:"horizontal_spacing"`
	VerticalSpacing   float64 `toml:"vertical_spacing" yaml:"vertical_spacing"`

	// TextWidth caps the label wrap width; 0 derives the cap from the
	// surrounding widgets.
	TextWidth int `toml:"text_width" yaml:"text_width"`
}

// Button holds the flat visual description shared by all buttons.
type Button struct {
	HorizontalSpacing float64 `toml:"horizontal_spacing" yaml:"horizontal_spacing"`
	VerticalSpacing   float64 `toml:"vertical_spacing" yaml:"vertical_spacing"`
	BorderWidth       float64 `toml:"border_width" yaml:"border_width"`
	RadiusX           float64 `toml:"radius_x" yaml:"radius_x"`
	RadiusY           float64 `toml:"radius_y" yaml:"radius_y"`

	// Pressed label nudge in pixels.
	PressedAdjustmentX float64 `toml:"pressed_adjustment_x" yaml:"pressed_adjustment_x"`
	PressedAdjustmentY float64 `toml:"pressed_adjustment_y" yaml:"pressed_adjustment_y"`

	Background            Color  `toml:"background" yaml:"background"`
	BackgroundStop        *Color `toml:"background_stop,omitempty" yaml:"background_stop,omitempty"`
	BackgroundPressed     Color  `toml:"background_pressed" yaml:"background_pressed"`
	BackgroundPressedStop *Color `toml:"background_pressed_stop,omitempty" yaml:"background_pressed_stop,omitempty"`
	BackgroundHover       Color  `toml:"background_hover" yaml:"background_hover"`
	BackgroundHoverStop   *Color `toml:"background_hover_stop,omitempty" yaml:"background_hover_stop,omitempty"`
	BorderColor           Color  `toml:"border_color" yaml:"border_color"`
	BorderColorPressed    Color  `toml:"border_color_pressed" yaml:"border_color_pressed"`
}

// TextButton is a button with a label.
type TextButton struct {
	Label      string `toml:"label" yaml:"label"`
	Foreground Color  `toml:"foreground" yaml:"foreground"`
	Button     `yaml:",inline"`
}

// Indicator selects and parameterizes the feedback widget.
type Indicator struct {
	Type string `toml:"type" yaml:"type" env:"ASKPASS_INDICATOR"`

	BorderWidth        float64 `toml:"border_width" yaml:"border_width"`
	Blink              bool    `toml:"blink" yaml:"blink"`
	Foreground         Color   `toml:"foreground" yaml:"foreground"`
	Background         Color   `toml:"background" yaml:"background"`
	BackgroundStop     *Color  `toml:"background_stop,omitempty" yaml:"background_stop,omitempty"`
	BorderColor        Color   `toml:"border_color" yaml:"border_color"`
	BorderColorFocused Color   `toml:"border_color_focused" yaml:"border_color_focused"`
	IndicatorColor     Color   `toml:"indicator_color" yaml:"indicator_color"`
	IndicatorColorStop *Color  `toml:"indicator_color_stop,omitempty" yaml:"indicator_color_stop,omitempty"`

	Classic IndicatorClassicOpts `toml:"classic" yaml:"classic"`
	Circle  IndicatorCircleOpts  `toml:"circle" yaml:"circle"`
	Strings IndicatorStringsOpts `toml:"strings" yaml:"strings"`
}

// IndicatorClassicOpts parameterizes the classic variant.
type IndicatorClassicOpts struct {
	MinCount          int     `toml:"min_count" yaml:"min_count"`
	MaxCount          int     `toml:"max_count" yaml:"max_count"`
	RadiusX           float64 `toml:"radius_x" yaml:"radius_x"`
	RadiusY           float64 `toml:"radius_y" yaml:"radius_y"`
	HorizontalSpacing float64 `toml:"horizontal_spacing" yaml:"horizontal_spacing"`
	ElementWidth      float64 `toml:"element_width" yaml:"element_width"`
	ElementHeight     float64 `toml:"element_height" yaml:"element_height"`
}

// IndicatorCircleOpts parameterizes the circle variant.
type IndicatorCircleOpts struct {
	Diameter           float64 `toml:"diameter" yaml:"diameter"`
	Rotate             bool    `toml:"rotate" yaml:"rotate"`
	RotationSpeedStart float64 `toml:"rotation_speed_start" yaml:"rotation_speed_start"`
	RotationSpeedGain  float64 `toml:"rotation_speed_gain" yaml:"rotation_speed_gain"`
	LightUp            bool    `toml:"light_up" yaml:"light_up"`
	SpacingAngle       float64 `toml:"spacing_angle" yaml:"spacing_angle"`
	IndicatorCount     int     `toml:"indicator_count" yaml:"indicator_count"`
	IndicatorWidth     float64 `toml:"indicator_width" yaml:"indicator_width"`
	LockColor          Color   `toml:"lock_color" yaml:"lock_color"`
}

// IndicatorStringsOpts parameterizes the strings variant and its sub-modes.
type IndicatorStringsOpts struct {
	Mode              string  `toml:"mode" yaml:"mode"`
	HorizontalSpacing float64 `toml:"horizontal_spacing" yaml:"horizontal_spacing"`
	VerticalSpacing   float64 `toml:"vertical_spacing" yaml:"vertical_spacing"`
	RadiusX           float64 `toml:"radius_x" yaml:"radius_x"`
	RadiusY           float64 `toml:"radius_y" yaml:"radius_y"`

	Asterisk AsteriskOpts `toml:"asterisk" yaml:"asterisk"`
	Disco    DiscoOpts    `toml:"disco" yaml:"disco"`
	Custom   CustomOpts   `toml:"custom" yaml:"custom"`
}

// AsteriskOpts repeats a glyph proportionally to the passphrase length.
type AsteriskOpts struct {
	Glyph    string `toml:"glyph" yaml:"glyph"`
	MinCount int    `toml:"min_count" yaml:"min_count"`
	MaxCount int    `toml:"max_count" yaml:"max_count"`
}

// DiscoOpts cycles dancer glyphs per edit.
type DiscoOpts struct {
	MinCount    int  `toml:"min_count" yaml:"min_count"`
	MaxCount    int  `toml:"max_count" yaml:"max_count"`
	ThreeStates bool `toml:"three_states" yaml:"three_states"`
}

// CustomOpts shows author-supplied messages. Strings[0] is the dedicated
// "pasted" message.
type CustomOpts struct {
	Randomize bool     `toml:"randomize" yaml:"randomize"`
	Strings   []string `toml:"strings" yaml:"strings"`
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.Depth != 24 && c.Depth != 32 {
		return fmt.Errorf("depth must be 24 or 32, got %d", c.Depth)
	}
	d := &c.Dialog
	if !slices.Contains([]string{PlacementCenter, PlacementTopRight, PlacementBottomLeft, PlacementMiddleCompact}, d.Layout.Placement) {
		return fmt.Errorf("unknown layout placement %q", d.Layout.Placement)
	}
	if !slices.Contains([]string{DirectionAuto, DirectionLTR, DirectionRTL}, d.Direction) {
		return fmt.Errorf("unknown text direction %q", d.Direction)
	}
	if d.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", d.FontSize)
	}
	if d.InputTimeout < 0 {
		return fmt.Errorf("input_timeout must not be negative, got %d", d.InputTimeout)
	}
	if d.MaxLength <= 0 {
		return fmt.Errorf("max_length must be positive, got %d", d.MaxLength)
	}
	ind := &d.Indicator
	switch ind.Type {
	case IndicatorClassic:
		if ind.Classic.MinCount < 1 || ind.Classic.MaxCount < ind.Classic.MinCount {
			return fmt.Errorf("classic indicator counts invalid: min %d, max %d", ind.Classic.MinCount, ind.Classic.MaxCount)
		}
	case IndicatorCircle:
		if ind.Circle.IndicatorCount < 1 {
			return fmt.Errorf("circle indicator_count must be positive, got %d", ind.Circle.IndicatorCount)
		}
		if ind.Circle.RotationSpeedGain < 1 {
			return fmt.Errorf("circle rotation_speed_gain must be >= 1, got %g", ind.Circle.RotationSpeedGain)
		}
	case IndicatorStrings:
		switch ind.Strings.Mode {
		case StringsAsterisk, StringsDisco:
		case StringsCustom:
			if len(ind.Strings.Custom.Strings) < 2 {
				return fmt.Errorf("custom strings need at least 2 entries, got %d", len(ind.Strings.Custom.Strings))
			}
		default:
			return fmt.Errorf("unknown strings mode %q", ind.Strings.Mode)
		}
	default:
		return fmt.Errorf("unknown indicator type %q", ind.Type)
	}
	return nil
}
