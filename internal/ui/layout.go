package ui

import (
	"math"

	"askpass/internal/config"
)

// Box is a widget's placement within the dialog, in device pixels.
type Box struct {
	X, Y, W, H float64
}

// Sizes feeds the layout engine. Widgets report natural extents; the label
// and indicator re-measure themselves for the width the policy offers.
type Sizes struct {
	// MeasureLabel wraps the label at maxWidth (0 leaves it unwrapped)
	// and returns its extents.
	MeasureLabel func(maxWidth float64) (w, h float64)

	// IndicatorForWidth sizes the indicator for the offered width.
	IndicatorForWidth func(avail float64) (w, h float64)

	OK, Cancel, Aux Box

	// TextWidth caps label wrapping; 0 lets the policy derive a cap.
	TextWidth float64

	HSpacing, VSpacing float64
}

// Arrangement is the computed placement of every widget and the resulting
// dialog extent.
type Arrangement struct {
	W, H float64

	Label, OK, Cancel, Indicator, Aux Box
}

// Arrange computes widget placement for the given policy. Policies never
// fail: content that does not fit is clipped by the window, not rejected.
func Arrange(placement string, in Sizes) Arrangement {
	switch placement {
	case config.PlacementTopRight:
		return topRight(in)
	case config.PlacementBottomLeft:
		return bottomLeft(in)
	case config.PlacementMiddleCompact:
		return middleCompact(in)
	default:
		return center(in)
	}
}

// center stacks label, indicator row and button row, each centered. The
// auxiliary buttons sit right of the indicator and push it left when the
// centered position would overlap them.
func center(in Sizes) Arrangement {
	var a Arrangement
	hs, vs := in.HSpacing, in.VSpacing

	buttonAreaW := 3*hs + in.OK.W + in.Cancel.W
	labelW, labelH := in.MeasureLabel(in.TextWidth)
	labelAreaW := labelW + 2*hs
	w := math.Max(labelAreaW, buttonAreaW)

	const auxSpacing = 4.0
	indW, indH := in.IndicatorForWidth(w - 2*hs - in.Aux.W - auxSpacing)
	indAreaW := indW + 2*hs + in.Aux.W + auxSpacing
	width := math.Max(w, indAreaW)

	a.Indicator = Box{W: indW, H: indH, X: math.Floor((width - indW) / 2)}
	a.Aux = in.Aux
	if a.Indicator.X < in.Aux.W+hs+auxSpacing {
		a.Aux.X = width - in.Aux.W - hs
		a.Indicator.X = a.Aux.X - auxSpacing - indW
	} else {
		a.Aux.X = a.Indicator.X + indW + auxSpacing
	}
	a.Label = Box{W: labelW, H: labelH, X: math.Floor((width - labelW) / 2)}
	interButton := math.Floor((width - in.OK.W - in.Cancel.W) / 3)
	a.OK = Box{W: in.OK.W, H: in.OK.H, X: interButton}
	a.Cancel = Box{W: in.Cancel.W, H: in.Cancel.H, X: a.OK.X + in.OK.W + interButton}

	indAreaH := math.Max(indH, in.Aux.H)
	height := 4*vs + labelH + indAreaH + in.OK.H

	a.Label.Y = vs
	indAreaY := a.Label.Y + labelH + vs
	a.Indicator.Y = indAreaY + math.Floor((indAreaH-indH)/2)
	a.Aux.Y = indAreaY + math.Floor((indAreaH-in.Aux.H)/2)
	a.OK.Y = indAreaY + indAreaH + vs
	a.Cancel.Y = a.OK.Y

	a.W, a.H = width, height
	return a
}

// topRight wraps the label beside the indicator with the buttons underneath,
// compact enough to sit in a screen corner.
func topRight(in Sizes) Arrangement {
	var a Arrangement
	hs, vs := in.HSpacing, in.VSpacing

	indW, indH := in.IndicatorForWidth(in.OK.W)
	textWidth := in.TextWidth
	if textWidth <= 0 {
		textWidth = math.Round(in.OK.W + in.Cancel.W)
	}
	labelW, labelH := in.MeasureLabel(textWidth)
	labelAreaW := labelW + 4*hs + indW + 2*hs
	buttonAreaW := 3*hs + in.OK.W + in.Cancel.W
	width := math.Max(labelAreaW, buttonAreaW)

	a.Label = Box{W: labelW, H: labelH, X: 2 * hs}
	a.Indicator = Box{W: indW, H: indH, X: width - 2*hs - indW}
	a.OK = Box{W: in.OK.W, H: in.OK.H, X: width - hs - in.OK.W}
	a.Cancel = Box{W: in.Cancel.W, H: in.Cancel.H, X: a.OK.X - hs - in.Cancel.W}

	labelAreaH := math.Max(labelH, indH)
	height := 2*vs + labelAreaH + in.OK.H + 3*vs
	a.Label.Y = vs
	a.Indicator.Y = vs
	a.OK.Y = vs + labelAreaH + 3*vs
	a.Cancel.Y = a.OK.Y

	a.Aux = hiddenAux(in.Aux)
	a.W, a.H = width, height
	return a
}

// bottomLeft stacks the buttons in a column on the right with the indicator
// to their left.
func bottomLeft(in Sizes) Arrangement {
	var a Arrangement
	hs, vs := in.HSpacing, in.VSpacing

	indW, indH := in.IndicatorForWidth(in.OK.W)
	buttonIndAreaW := 4*hs + in.OK.W + in.Cancel.W + indW
	textWidth := in.TextWidth
	if textWidth <= 0 {
		textWidth = math.Round(buttonIndAreaW)
	}
	labelW, labelH := in.MeasureLabel(textWidth)
	labelAreaW := labelW + 2*hs
	width := math.Max(labelAreaW, buttonIndAreaW)

	// Floor keeps the positions within the widths above.
	interSpace := math.Floor((width - in.OK.W - indW) / 3)
	a.Indicator = Box{W: indW, H: indH, X: interSpace}
	a.Label = Box{W: labelW, H: labelH, X: hs}
	a.OK = Box{W: in.OK.W, H: in.OK.H, X: width - hs - in.OK.W}
	a.Cancel = Box{W: in.Cancel.W, H: in.Cancel.H, X: width - hs - in.Cancel.W}

	buttonAreaH := vs + in.OK.H + in.Cancel.H
	buttonIndAreaH := math.Max(buttonAreaH, indH)
	height := 2*vs + labelH + buttonIndAreaH + vs
	a.Label.Y = vs
	a.OK.Y = a.Label.Y + labelH + vs
	a.Indicator.Y = a.OK.Y + (height-a.OK.Y-indH-vs)/2
	a.Cancel.Y = a.OK.Y + in.OK.H + vs

	a.Aux = hiddenAux(in.Aux)
	a.W, a.H = width, height
	return a
}

// middleCompact puts everything on one row below the label.
func middleCompact(in Sizes) Arrangement {
	var a Arrangement
	hs, vs := in.HSpacing, in.VSpacing

	indW, indH := in.IndicatorForWidth(in.OK.W)
	buttonIndAreaW := 8*hs + in.OK.W + in.Cancel.W + indW
	labelW, labelH := in.MeasureLabel(in.TextWidth)
	labelAreaW := labelW + 2*hs
	width := math.Max(labelAreaW, buttonIndAreaW)

	a.Label = Box{W: labelW, H: labelH, X: (width - labelW) / 2}
	interSpace := (width - in.OK.W - in.Cancel.W - indW) / 4
	a.OK = Box{W: in.OK.W, H: in.OK.H, X: interSpace}
	a.Indicator = Box{W: indW, H: indH, X: interSpace + in.OK.W + interSpace}
	a.Cancel = Box{W: in.Cancel.W, H: in.Cancel.H, X: a.Indicator.X + indW + interSpace}

	buttonIndAreaH := math.Max(math.Max(in.OK.H, in.Cancel.H), indH)
	height := 3*vs + labelH + buttonIndAreaH
	a.Label.Y = vs
	a.OK.Y = height - vs - in.OK.H
	a.Cancel.Y = a.OK.Y
	a.Indicator.Y = height - vs - buttonIndAreaH + (buttonIndAreaH-indH)/2

	a.Aux = hiddenAux(in.Aux)
	a.W, a.H = width, height
	return a
}

// hiddenAux parks the auxiliary buttons outside the visible area for
// placements that have no slot for them.
func hiddenAux(aux Box) Box {
	aux.X, aux.Y = -aux.W-1, -aux.H-1
	return aux
}
