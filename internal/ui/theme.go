// Package ui renders the dialog widgets on a bare window surface.
//
// No widget toolkit is used: the window is an opaque drawing surface plus a
// text measurement service, and every widget here owns its geometry, hit
// testing and painting.
package ui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"askpass/internal/config"
)

// Pattern is a solid color or a vertical two-stop gradient.
type Pattern struct {
	Start color.NRGBA
	Stop  *color.NRGBA
}

// PatternFrom builds a pattern from a configured color pair.
func PatternFrom(start config.Color, stop *config.Color) Pattern {
	p := Pattern{Start: start.NRGBA}
	if stop != nil {
		c := stop.NRGBA
		p.Stop = &c
	}
	return p
}

// Paint fills the current clip with the pattern. bounds anchors the
// gradient run.
func (p Pattern) Paint(ops *op.Ops, bounds image.Rectangle) {
	if p.Stop == nil {
		paint.ColorOp{Color: p.Start}.Add(ops)
	} else {
		paint.LinearGradientOp{
			Stop1:  f32.Pt(float32(bounds.Min.X), float32(bounds.Min.Y)),
			Stop2:  f32.Pt(float32(bounds.Min.X), float32(bounds.Max.Y)),
			Color1: p.Start,
			Color2: *p.Stop,
		}.Add(ops)
	}
	paint.PaintOp{}.Add(ops)
}

// FillRoundedRect paints a rounded rectangle with the pattern.
func FillRoundedRect(ops *op.Ops, r image.Rectangle, rx, ry int, p Pattern) {
	rr := clip.RRect{Rect: r, NW: rx, NE: rx, SW: rx, SE: rx}
	if ry > rx {
		rr.NW, rr.NE, rr.SW, rr.SE = ry, ry, ry, ry
	}
	defer rr.Push(ops).Pop()
	p.Paint(ops, r)
}

// StrokeRoundedRect paints a rounded rectangle border.
func StrokeRoundedRect(ops *op.Ops, r image.Rectangle, rx, ry, width int, col color.NRGBA) {
	if width <= 0 {
		return
	}
	rr := clip.RRect{Rect: r, NW: rx, NE: rx, SW: rx, SE: rx}
	defer clip.Stroke{Path: rr.Path(ops), Width: float32(width)}.Op().Push(ops).Pop()
	paint.ColorOp{Color: col}.Add(ops)
	paint.PaintOp{}.Add(ops)
}

// FillEllipse paints a filled ellipse bounded by r.
func FillEllipse(ops *op.Ops, r image.Rectangle, p Pattern) {
	defer clip.Ellipse(r).Push(ops).Pop()
	p.Paint(ops, r)
}

// StrokeEllipse paints an ellipse outline bounded by r.
func StrokeEllipse(ops *op.Ops, r image.Rectangle, width int, col color.NRGBA) {
	if width <= 0 {
		return
	}
	defer clip.Stroke{Path: clip.Ellipse(r).Path(ops), Width: float32(width)}.Op().Push(ops).Pop()
	paint.ColorOp{Color: col}.Add(ops)
	paint.PaintOp{}.Add(ops)
}

// Opaque strips the alpha channel for 24-bit rendering.
func Opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}
