package ui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"askpass/internal/config"
	"askpass/internal/indicator"
)

// Label is a block of wrapped static text.
type Label struct {
	Text  string
	Color color.NRGBA
	Box   Box

	wrapWidth int
}

// Measure wraps the label at maxWidth and records its extents.
func (l *Label) Measure(t *Text, maxWidth float64) (w, h float64) {
	l.wrapWidth = int(maxWidth)
	size := t.Measure(l.Text, l.wrapWidth)
	l.Box.W, l.Box.H = float64(size.X), float64(size.Y)
	return l.Box.W, l.Box.H
}

// Draw paints the label at its box.
func (l *Label) Draw(ops *op.Ops, t *Text) {
	defer op.Offset(image.Pt(round(l.Box.X), round(l.Box.Y))).Push(ops).Pop()
	t.Draw(ops, l.Text, l.wrapWidth, l.Color)
}

// ButtonStyle is the resolved visual description of a button, in device
// pixels.
type ButtonStyle struct {
	Foreground     color.NRGBA
	Normal         Pattern
	Hover          Pattern
	Pressed        Pattern
	Border         color.NRGBA
	BorderPressed  color.NRGBA
	BorderWidth    int
	RadiusX        int
	RadiusY        int
	PadX, PadY     int
	NudgeX, NudgeY int
}

// NewButtonStyle resolves a configured button against the text height and
// DPI scale. The spacing fields are multiples of the text height; widths and
// radii are scaled pixels.
func NewButtonStyle(cfg config.TextButton, textHeight, scale float64) ButtonStyle {
	return ButtonStyle{
		Foreground:    cfg.Foreground.NRGBA,
		Normal:        PatternFrom(cfg.Background, cfg.BackgroundStop),
		Hover:         PatternFrom(cfg.BackgroundHover, cfg.BackgroundHoverStop),
		Pressed:       PatternFrom(cfg.BackgroundPressed, cfg.BackgroundPressedStop),
		Border:        cfg.BorderColor.NRGBA,
		BorderPressed: cfg.BorderColorPressed.NRGBA,
		BorderWidth:   round(cfg.BorderWidth * scale),
		RadiusX:       round(cfg.RadiusX * scale),
		RadiusY:       round(cfg.RadiusY * scale),
		PadX:          round(cfg.HorizontalSpacing * textHeight),
		PadY:          round(cfg.VerticalSpacing * textHeight),
		NudgeX:        round(cfg.PressedAdjustmentX * scale),
		NudgeY:        round(cfg.PressedAdjustmentY * scale),
	}
}

// Button is a clickable labelled box. Active latches the pressed rendering
// for toggle buttons.
type Button struct {
	Label string
	Style ButtonStyle
	Box   Box

	Hovered bool
	Pressed bool
	Active  bool

	labelSize image.Point
}

// Measure sizes the button around its label.
func (b *Button) Measure(t *Text) {
	b.labelSize = t.Measure(b.Label, 0)
	b.Box.W = float64(b.labelSize.X + 2*b.Style.PadX + 2*b.Style.BorderWidth)
	b.Box.H = float64(b.labelSize.Y + 2*b.Style.PadY + 2*b.Style.BorderWidth)
}

// Contains reports whether p falls on the button.
func (b *Button) Contains(p image.Point) bool {
	return p.In(b.rect())
}

func (b *Button) rect() image.Rectangle {
	return image.Rect(round(b.Box.X), round(b.Box.Y), round(b.Box.X+b.Box.W), round(b.Box.Y+b.Box.H))
}

// Draw paints the button.
func (b *Button) Draw(ops *op.Ops, t *Text) {
	r := b.rect()
	s := b.Style
	pressed := b.Pressed || b.Active

	bg := s.Normal
	border := s.Border
	switch {
	case pressed:
		bg = s.Pressed
		border = s.BorderPressed
	case b.Hovered:
		bg = s.Hover
	}
	FillRoundedRect(ops, r, s.RadiusX, s.RadiusY, bg)
	StrokeRoundedRect(ops, r, s.RadiusX, s.RadiusY, s.BorderWidth, border)

	off := image.Pt((r.Dx()-b.labelSize.X)/2, (r.Dy()-b.labelSize.Y)/2)
	if pressed {
		off = off.Add(image.Pt(s.NudgeX, s.NudgeY))
	}
	defer op.Offset(r.Min.Add(off)).Push(ops).Pop()
	t.Draw(ops, b.Label, 0, s.Foreground)
}

// IndicatorStyle is the resolved visual description of the indicator.
type IndicatorStyle struct {
	Foreground    color.NRGBA
	Background    Pattern
	Border        color.NRGBA
	BorderFocused color.NRGBA
	BorderWidth   int
	Fill          Pattern
	LockColor     color.NRGBA
	Blink         bool
	RadiusX       int
	RadiusY       int
}

// NewIndicatorStyle resolves the configured indicator styling.
func NewIndicatorStyle(cfg *config.Indicator, scale float64) IndicatorStyle {
	return IndicatorStyle{
		Foreground:    cfg.Foreground.NRGBA,
		Background:    PatternFrom(cfg.Background, cfg.BackgroundStop),
		Border:        cfg.BorderColor.NRGBA,
		BorderFocused: cfg.BorderColorFocused.NRGBA,
		BorderWidth:   round(cfg.BorderWidth * scale),
		Fill:          PatternFrom(cfg.IndicatorColor, cfg.IndicatorColorStop),
		LockColor:     cfg.Circle.LockColor.NRGBA,
		Blink:         cfg.Blink,
	}
}

// IndicatorView sizes and paints whichever indicator model is configured.
// When Reveal is non-empty the plaintext toggle is active and the revealed
// text replaces the indicator rendering for the frame.
type IndicatorView struct {
	Model indicator.Model
	Style IndicatorStyle
	Box   Box

	Reveal string

	cfg        *config.Indicator
	text       *Text
	textHeight float64
	scale      float64
}

// NewIndicatorView builds the view for the configured variant.
func NewIndicatorView(model indicator.Model, cfg *config.Indicator, t *Text, scale float64) *IndicatorView {
	v := &IndicatorView{
		Model:      model,
		Style:      NewIndicatorStyle(cfg, scale),
		cfg:        cfg,
		text:       t,
		textHeight: float64(t.LineHeight()),
		scale:      scale,
	}
	v.Style.RadiusX = round(cfg.Strings.RadiusX * scale)
	v.Style.RadiusY = round(cfg.Strings.RadiusY * scale)
	return v
}

// elementSize returns the classic variant's per-mark extents and spacing.
func (v *IndicatorView) elementSize() (w, h, spacing float64) {
	c := &v.cfg.Classic
	h = c.ElementHeight * v.scale
	if h <= 0 {
		h = v.textHeight
	}
	w = c.ElementWidth * v.scale
	if w <= 0 {
		w = 3 * h
	}
	spacing = c.HorizontalSpacing * v.scale
	if spacing <= 0 {
		spacing = math.Max(1, h/4)
	}
	return w, h, spacing
}

// ForWidth sizes the view for the width the layout offers and records the
// resulting extents.
func (v *IndicatorView) ForWidth(avail float64) (w, h float64) {
	switch m := v.Model.(type) {
	case *indicator.Classic:
		ew, eh, sp := v.elementSize()
		m.ForWidth(avail, ew, sp)
		n := float64(m.Count())
		w = n*ew + (n-1)*sp
		h = eh
	case *indicator.Circle:
		d := v.cfg.Circle.Diameter * v.scale
		if d <= 0 {
			d = 4 * v.textHeight
		}
		w, h = d, d
	case *indicator.Strings:
		w = float64(v.text.Measure(v.widestMessage(m), 0).X) + 2*v.padX()
		h = v.textHeight + 2*v.padY()
	}
	v.Box.W, v.Box.H = w, h
	return w, h
}

// widestMessage reserves space for the widest text the variant can show so
// the layout stays stable across edits.
func (v *IndicatorView) widestMessage(m *indicator.Strings) string {
	widest := m.Message()
	var candidates []string
	switch m.Mode {
	case indicator.ModeAsterisk:
		candidates = []string{repeat(m.Glyph, m.MaxCount)}
	case indicator.ModeDisco:
		for _, s := range indicator.DiscoStates() {
			candidates = append(candidates, repeat(s, m.MaxCount))
		}
	case indicator.ModeCustom:
		candidates = m.Messages
	}
	for _, c := range candidates {
		if v.text.Measure(c, 0).X > v.text.Measure(widest, 0).X {
			widest = c
		}
	}
	return widest
}

func (v *IndicatorView) padX() float64 { return v.cfg.Strings.HorizontalSpacing * v.textHeight }
func (v *IndicatorView) padY() float64 { return v.cfg.Strings.VerticalSpacing * v.textHeight }

func (v *IndicatorView) rect() image.Rectangle {
	return image.Rect(round(v.Box.X), round(v.Box.Y), round(v.Box.X+v.Box.W), round(v.Box.Y+v.Box.H))
}

// Draw paints the indicator at its box.
func (v *IndicatorView) Draw(ops *op.Ops) {
	if v.Reveal != "" {
		v.drawReveal(ops)
		return
	}
	switch m := v.Model.(type) {
	case *indicator.Classic:
		v.drawClassic(ops, m)
	case *indicator.Circle:
		v.drawCircle(ops, m)
	case *indicator.Strings:
		v.drawStrings(ops, m)
	}
}

func (v *IndicatorView) borderColor(focused bool) color.NRGBA {
	if focused {
		return v.Style.BorderFocused
	}
	return v.Style.Border
}

func (v *IndicatorView) drawClassic(ops *op.Ops, m *indicator.Classic) {
	ew, eh, sp := v.elementSize()
	rx := round(v.cfg.Classic.RadiusX * v.scale)
	ry := round(v.cfg.Classic.RadiusY * v.scale)
	x := v.Box.X
	for i := 0; i < m.Count(); i++ {
		r := image.Rect(round(x), round(v.Box.Y), round(x+ew), round(v.Box.Y+eh))
		FillRoundedRect(ops, r, rx, ry, v.Style.Background)
		if m.Lit(i) {
			FillRoundedRect(ops, r, rx, ry, v.Style.Fill)
		}
		StrokeRoundedRect(ops, r, rx, ry, v.Style.BorderWidth, v.borderColor(m.Focused()))
		x += ew + sp
	}
}

// circleDotGeometry resolves the dot radius and orbit radius for the ring.
// A configured indicator_width overrides the derived dot size; spacing_angle
// bounds it so neighboring dots keep their gap.
func (v *IndicatorView) circleDotGeometry(radius float64) (dotR, orbit float64) {
	c := &v.cfg.Circle
	dotR = radius / 5
	if c.IndicatorWidth > 0 {
		dotR = c.IndicatorWidth * v.scale / 2
	}
	border := float64(v.Style.BorderWidth)
	orbit = radius - dotR - border - 2
	if c.IndicatorCount > 0 {
		span := 2*math.Pi/float64(c.IndicatorCount) - c.SpacingAngle
		if span < 0.1 {
			span = 0.1
		}
		if limit := orbit * math.Sin(span/2); limit > 0 && dotR > limit {
			dotR = limit
			orbit = radius - dotR - border - 2
		}
	}
	return dotR, orbit
}

func (v *IndicatorView) drawCircle(ops *op.Ops, m *indicator.Circle) {
	r := v.rect()
	FillEllipse(ops, r, v.Style.Background)
	StrokeEllipse(ops, r, v.Style.BorderWidth, v.borderColor(m.Focused()))

	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	radius := float64(r.Dx()) / 2
	dotR, orbit := v.circleDotGeometry(radius)

	count := v.cfg.Circle.IndicatorCount
	fill := v.Style.Fill
	if v.cfg.Circle.LightUp && !m.Lit() {
		fill = Pattern{Start: v.Style.Border}
	}
	for i := 0; i < count; i++ {
		a := m.Angle() + float64(i)*2*math.Pi/float64(count)
		dx := cx + orbit*math.Cos(a)
		dy := cy + orbit*math.Sin(a)
		dot := image.Rect(round(dx-dotR), round(dy-dotR), round(dx+dotR), round(dy+dotR))
		FillEllipse(ops, dot, fill)
	}

	lockR := radius / 3
	lock := image.Rect(round(cx-lockR), round(cy-lockR), round(cx+lockR), round(cy+lockR))
	FillEllipse(ops, lock, Pattern{Start: v.Style.LockColor})
	if v.Style.Blink && m.Focused() && m.BlinkOn() {
		curR := lockR / 2
		cur := image.Rect(round(cx-curR), round(cy-curR), round(cx+curR), round(cy+curR))
		FillEllipse(ops, cur, Pattern{Start: v.Style.Foreground})
	}
}

func (v *IndicatorView) drawStrings(ops *op.Ops, m *indicator.Strings) {
	r := v.rect()
	FillRoundedRect(ops, r, v.Style.RadiusX, v.Style.RadiusY, v.Style.Background)
	StrokeRoundedRect(ops, r, v.Style.RadiusX, v.Style.RadiusY, v.Style.BorderWidth, v.borderColor(m.Focused()))

	msg := m.Message()
	size := v.text.Measure(msg, 0)
	off := r.Min.Add(image.Pt((r.Dx()-size.X)/2, (r.Dy()-size.Y)/2))
	func() {
		defer clip.Rect(r).Push(ops).Pop()
		defer op.Offset(off).Push(ops).Pop()
		v.text.Draw(ops, msg, 0, v.Style.Foreground)
	}()

	if v.Style.Blink && m.Focused() && m.BlinkOn() {
		cur := image.Rect(off.X+size.X+2, r.Min.Y+v.Style.BorderWidth+2, off.X+size.X+4, r.Max.Y-v.Style.BorderWidth-2)
		defer clip.Rect(cur.Intersect(r)).Push(ops).Pop()
		paint.ColorOp{Color: v.Style.Foreground}.Add(ops)
		paint.PaintOp{}.Add(ops)
	}
}

// drawReveal paints the buffer contents in place of the indicator while the
// plaintext toggle is held. Overflow clips on the leading edge so the most
// recent characters stay visible.
func (v *IndicatorView) drawReveal(ops *op.Ops) {
	r := v.rect()
	FillRoundedRect(ops, r, v.Style.RadiusX, v.Style.RadiusY, v.Style.Background)
	StrokeRoundedRect(ops, r, v.Style.RadiusX, v.Style.RadiusY, v.Style.BorderWidth, v.borderColor(true))

	size := v.text.Measure(v.Reveal, 0)
	pad := v.Style.BorderWidth + 3
	x := r.Min.X + pad
	if over := size.X - (r.Dx() - 2*pad); over > 0 {
		x -= over
	}
	defer clip.Rect(r.Inset(v.Style.BorderWidth)).Push(ops).Pop()
	defer op.Offset(image.Pt(x, r.Min.Y+(r.Dy()-size.Y)/2)).Push(ops).Pop()
	v.text.Draw(ops, v.Reveal, 0, v.Style.Foreground)
}

func round(f float64) int {
	return int(math.Round(f))
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
