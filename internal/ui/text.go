package ui

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/font/opentype"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"askpass/internal/config"
)

// LoadCollection returns the font faces to shape with. A configured font
// file is parsed and takes precedence over the built-in collection.
func LoadCollection(fontFile string) ([]font.FontFace, error) {
	faces := gofont.Collection()
	if fontFile == "" {
		return faces, nil
	}
	data, err := os.ReadFile(fontFile)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	custom, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fontFile, err)
	}
	return append(custom, faces...), nil
}

// DetectDirection resolves the configured text direction, sampling the label
// text when set to auto.
func DetectDirection(configured, sample string) system.TextDirection {
	switch configured {
	case config.DirectionLTR:
		return system.LTR
	case config.DirectionRTL:
		return system.RTL
	}
	var p bidi.Paragraph
	p.SetString(sample)
	if o, err := p.Order(); err == nil && o.Direction() == bidi.RightToLeft {
		return system.RTL
	}
	return system.LTR
}

// Text shapes and paints strings at a fixed font and size. It wraps the
// window system's shaper, which is the only text service the surface offers.
type Text struct {
	shaper  *text.Shaper
	font    font.Font
	pxPerEm fixed.Int26_6
	locale  system.Locale

	lineHeight int
}

// NewText builds a shaping context. sizePx is the em size in device pixels.
func NewText(faces []font.FontFace, typeface string, sizePx float64, dir system.TextDirection) *Text {
	t := &Text{
		shaper:  text.NewShaper(text.NoSystemFonts(), text.WithCollection(faces)),
		font:    font.Font{Typeface: font.Typeface(typeface)},
		pxPerEm: fixed.Int26_6(sizePx * 64),
		locale:  system.Locale{Language: "und", Direction: dir},
	}
	t.lineHeight = t.Measure("Ag", 0).Y
	return t
}

func (t *Text) params(maxWidth int) text.Parameters {
	if maxWidth <= 0 {
		maxWidth = 1e6
	}
	return text.Parameters{
		Font:     t.font,
		PxPerEm:  t.pxPerEm,
		MaxWidth: maxWidth,
		Locale:   t.locale,
	}
}

// LineHeight returns the height of a single line in pixels.
func (t *Text) LineHeight() int { return t.lineHeight }

// Measure returns the pixel extents of s wrapped at maxWidth. A maxWidth of
// zero leaves the text unwrapped.
func (t *Text) Measure(s string, maxWidth int) image.Point {
	t.shaper.LayoutString(t.params(maxWidth), s)
	var width fixed.Int26_6
	var baseline int32
	var descent fixed.Int26_6
	for {
		g, ok := t.shaper.NextGlyph()
		if !ok {
			break
		}
		if adv := g.X + g.Advance; adv > width {
			width = adv
		}
		baseline = g.Y
		descent = g.Descent
	}
	return image.Pt(width.Ceil(), int(baseline)+descent.Ceil())
}

// Draw paints s at the current transform origin, wrapped at maxWidth.
func (t *Text) Draw(ops *op.Ops, s string, maxWidth int, col color.NRGBA) {
	t.shaper.LayoutString(t.params(maxWidth), s)
	var line []text.Glyph
	var lineOff f32.Point
	flush := func() {
		if len(line) == 0 {
			return
		}
		trans := op.Affine(f32.Affine2D{}.Offset(lineOff)).Push(ops)
		outline := clip.Outline{Path: t.shaper.Shape(line)}.Op().Push(ops)
		paint.ColorOp{Color: col}.Add(ops)
		paint.PaintOp{}.Add(ops)
		outline.Pop()
		trans.Pop()
		line = line[:0]
	}
	for {
		g, ok := t.shaper.NextGlyph()
		if !ok {
			break
		}
		if len(line) == 0 {
			lineOff = f32.Pt(float32(g.X)/64, float32(g.Y))
		}
		line = append(line, g)
		if g.Flags&text.FlagLineBreak != 0 {
			flush()
		}
	}
	flush()
}
