package ui

import (
	"image"
	"image/color"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"askpass/internal/config"
	"askpass/internal/indicator"
)

// Target identifies the widget under a pointer position.
type Target int

const (
	TargetNone Target = iota
	TargetOK
	TargetCancel
	TargetClipboard
	TargetPlaintext
)

// auxGap separates the indicator from the auxiliary buttons.
const auxGap = 4.0

// Dialog composes the label, indicator and buttons and owns their geometry.
type Dialog struct {
	Label     Label
	OK        Button
	Cancel    Button
	Clipboard Button
	Plaintext Button
	Indicator *IndicatorView

	cfg   *config.Dialog
	text  *Text
	scale float64

	background    color.NRGBA
	hSpacing      float64
	vSpacing      float64
	showClipboard bool
	showPlaintext bool

	size   image.Point
	origin image.Point
}

// NewDialog builds the widget tree from the configuration. scale converts
// configured pixels to device pixels; opaque strips background alpha for
// 24-bit surfaces.
func NewDialog(cfg *config.Dialog, t *Text, model indicator.Model, scale float64, opaque bool) *Dialog {
	textH := float64(t.LineHeight())
	d := &Dialog{
		cfg:           cfg,
		text:          t,
		scale:         scale,
		background:    cfg.Background.NRGBA,
		showClipboard: cfg.ShowClipboardButton,
		showPlaintext: cfg.ShowPlaintextToggle,
	}
	if opaque {
		d.background = Opaque(d.background)
	}
	d.Label = Label{Text: cfg.Label, Color: cfg.Foreground.NRGBA}
	d.OK = Button{Label: cfg.OKButton.Label, Style: NewButtonStyle(cfg.OKButton, textH, scale)}
	d.Cancel = Button{Label: cfg.CancelButton.Label, Style: NewButtonStyle(cfg.CancelButton, textH, scale)}
	d.Clipboard = Button{Label: cfg.ClipboardButton.Label, Style: NewButtonStyle(cfg.ClipboardButton, textH, scale)}
	d.Plaintext = Button{Label: cfg.PlaintextButton.Label, Style: NewButtonStyle(cfg.PlaintextButton, textH, scale)}
	d.Indicator = NewIndicatorView(model, &cfg.Indicator, t, scale)

	d.hSpacing = cfg.Layout.HorizontalSpacing * scale
	if d.hSpacing <= 0 {
		d.hSpacing = textH / 1.7
	}
	d.vSpacing = cfg.Layout.VerticalSpacing * scale
	if d.vSpacing <= 0 {
		d.vSpacing = textH / 1.7
	}
	return d
}

// auxSize combines the visible auxiliary buttons into one box for the
// layout engine.
func (d *Dialog) auxSize() Box {
	var aux Box
	if d.showClipboard {
		aux.W += d.Clipboard.Box.W
		aux.H = d.Clipboard.Box.H
	}
	if d.showPlaintext {
		if aux.W > 0 {
			aux.W += auxGap
		}
		aux.W += d.Plaintext.Box.W
		if d.Plaintext.Box.H > aux.H {
			aux.H = d.Plaintext.Box.H
		}
	}
	return aux
}

// Layout measures every widget and arranges them per the configured
// placement. It returns the content size in device pixels.
func (d *Dialog) Layout() image.Point {
	d.OK.Measure(d.text)
	d.Cancel.Measure(d.text)
	d.Clipboard.Measure(d.text)
	d.Plaintext.Measure(d.text)

	a := Arrange(d.cfg.Layout.Placement, Sizes{
		MeasureLabel:      func(maxWidth float64) (float64, float64) { return d.Label.Measure(d.text, maxWidth) },
		IndicatorForWidth: d.Indicator.ForWidth,
		OK:                d.OK.Box,
		Cancel:            d.Cancel.Box,
		Aux:               d.auxSize(),
		TextWidth:         float64(d.cfg.Layout.TextWidth) * d.scale,
		HSpacing:          d.hSpacing,
		VSpacing:          d.vSpacing,
	})

	d.Label.Box.X, d.Label.Box.Y = a.Label.X, a.Label.Y
	d.OK.Box.X, d.OK.Box.Y = a.OK.X, a.OK.Y
	d.Cancel.Box.X, d.Cancel.Box.Y = a.Cancel.X, a.Cancel.Y
	d.Indicator.Box.X, d.Indicator.Box.Y = a.Indicator.X, a.Indicator.Y

	x := a.Aux.X
	if d.showClipboard {
		d.Clipboard.Box.X = x
		d.Clipboard.Box.Y = a.Aux.Y + (a.Aux.H-d.Clipboard.Box.H)/2
		x += d.Clipboard.Box.W + auxGap
	}
	if d.showPlaintext {
		d.Plaintext.Box.X = x
		d.Plaintext.Box.Y = a.Aux.Y + (a.Aux.H-d.Plaintext.Box.H)/2
	}

	d.size = image.Pt(round(a.W), round(a.H))
	return d.size
}

// Size returns the last computed content size.
func (d *Dialog) Size() image.Point { return d.size }

// Place centers the content in the window. Content larger than the window
// keeps its top-left corner visible and clips at the far edges.
func (d *Dialog) Place(win image.Point) {
	d.origin = image.Pt(max(0, (win.X-d.size.X)/2), max(0, (win.Y-d.size.Y)/2))
}

// Draw paints the background and every widget.
func (d *Dialog) Draw(ops *op.Ops, win image.Point) {
	paint.Fill(ops, d.background)

	defer clip.Rect(image.Rectangle{Max: win}).Push(ops).Pop()
	defer op.Offset(d.origin).Push(ops).Pop()

	d.Label.Draw(ops, d.text)
	d.Indicator.Draw(ops)
	d.OK.Draw(ops, d.text)
	d.Cancel.Draw(ops, d.text)
	if d.showClipboard {
		d.Clipboard.Draw(ops, d.text)
	}
	if d.showPlaintext {
		d.Plaintext.Draw(ops, d.text)
	}
}

// Hit resolves a pointer position in window coordinates to a widget.
func (d *Dialog) Hit(p image.Point) Target {
	p = p.Sub(d.origin)
	switch {
	case d.OK.Contains(p):
		return TargetOK
	case d.Cancel.Contains(p):
		return TargetCancel
	case d.showClipboard && d.Clipboard.Contains(p):
		return TargetClipboard
	case d.showPlaintext && d.Plaintext.Contains(p):
		return TargetPlaintext
	}
	return TargetNone
}

// SetHover updates hover highlighting and reports whether anything changed.
func (d *Dialog) SetHover(t Target) bool {
	changed := false
	for target, b := range d.buttons() {
		hovered := target == t
		if b.Hovered != hovered {
			b.Hovered = hovered
			changed = true
		}
	}
	return changed
}

// SetPressed updates pressed rendering and reports whether anything changed.
func (d *Dialog) SetPressed(t Target) bool {
	changed := false
	for target, b := range d.buttons() {
		pressed := target == t
		if b.Pressed != pressed {
			b.Pressed = pressed
			changed = true
		}
	}
	return changed
}

func (d *Dialog) buttons() map[Target]*Button {
	return map[Target]*Button{
		TargetOK:        &d.OK,
		TargetCancel:    &d.Cancel,
		TargetClipboard: &d.Clipboard,
		TargetPlaintext: &d.Plaintext,
	}
}
