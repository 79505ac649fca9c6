package indicator

import (
	"math"
	"time"
)

// Circle animation pacing. The blink phases match the reference dialog:
// cursor visible for 800ms, hidden for 400ms.
const (
	spinInterval  = 50 * time.Millisecond
	blinkOnPhase  = 800 * time.Millisecond
	blinkOffPhase = 400 * time.Millisecond
	speedDecay    = 0.95
)

// Circle shows dots on a ring that spin faster while the user types.
// Keystrokes advance the rotation and multiply the speed by Gain (bounded);
// ticks decay the speed back toward Start while the dialog is focused.
type Circle struct {
	Rotate  bool
	Start   float64 // radians per tick at rest
	Gain    float64 // speed multiplier per keystroke
	Max     float64 // speed bound
	LightUp bool
	Blink   bool

	angle     float64
	speed     float64
	lit       bool
	blinkOn   bool
	focused   bool
	length    int
	nextSpin  time.Time
	nextBlink time.Time
}

// NewCircle returns a circle indicator. start and gain follow the
// configuration (reference defaults 0.10 and 1.05).
func NewCircle(rotate bool, start, gain float64, lightUp, blink bool) *Circle {
	if start <= 0 {
		start = 0.10
	}
	if gain < 1 {
		gain = 1
	}
	return &Circle{
		Rotate:  rotate,
		Start:   start,
		Gain:    gain,
		Max:     start * 20,
		LightUp: lightUp,
		Blink:   blink,
		speed:   start,
		blinkOn: blink,
	}
}

// Angle returns the current rotation in radians.
func (c *Circle) Angle() float64 { return c.angle }

// Speed returns the current rotation speed in radians per tick.
func (c *Circle) Speed() float64 { return c.speed }

// Lit reports whether the dots are in their bright state.
func (c *Circle) Lit() bool { return c.lit }

// BlinkOn reports whether the cursor phase is visible.
func (c *Circle) BlinkOn() bool { return c.blinkOn }

// Focused reports keyboard focus.
func (c *Circle) Focused() bool { return c.focused }

func (c *Circle) Edit(kind EventKind, length int) {
	c.length = length
	if c.Rotate {
		step := c.speed
		if kind == EditDelete {
			step = -step
		}
		c.angle = normalizeAngle(c.angle + step)
		c.speed = math.Min(c.speed*c.Gain, c.Max)
	}
	if c.LightUp {
		c.lit = length > 0
	}
}

func (c *Circle) SetFocused(focused bool, now time.Time) {
	c.focused = focused
	if c.Blink {
		c.blinkOn = focused
		if focused {
			c.nextBlink = now.Add(blinkOnPhase)
		}
	}
	if focused {
		c.nextSpin = now.Add(spinInterval)
	}
}

func (c *Circle) Tick(now time.Time) bool {
	if !c.focused {
		return false
	}
	dirty := false
	if c.Rotate && !now.Before(c.nextSpin) {
		c.angle = normalizeAngle(c.angle + c.speed)
		c.speed = c.Start + (c.speed-c.Start)*speedDecay
		c.nextSpin = now.Add(spinInterval)
		dirty = true
	}
	if c.Blink && !c.nextBlink.IsZero() && !now.Before(c.nextBlink) {
		c.blinkOn = !c.blinkOn
		if c.blinkOn {
			c.nextBlink = now.Add(blinkOnPhase)
		} else {
			c.nextBlink = now.Add(blinkOffPhase)
		}
		dirty = true
	}
	return dirty
}

func (c *Circle) NextTick(now time.Time) (time.Time, bool) {
	if !c.focused {
		return time.Time{}, false
	}
	var next time.Time
	if c.Rotate {
		next = c.nextSpin
	}
	if c.Blink && !c.nextBlink.IsZero() && (next.IsZero() || c.nextBlink.Before(next)) {
		next = c.nextBlink
	}
	if next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}

func normalizeAngle(a float64) float64 {
	return math.Mod(a, 2*math.Pi)
}
