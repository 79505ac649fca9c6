package indicator

import (
	"math"
	"time"
)

// Classic shows a fixed row of discrete marks with a single lit mark walking
// along as characters are entered. The mark count is derived from the width
// offered by the layout, saturating at [MinCount, MaxCount].
type Classic struct {
	MinCount int
	MaxCount int

	count   int
	length  int
	focused bool
}

// NewClassic returns a classic indicator with the given mark count bounds.
func NewClassic(minCount, maxCount int) *Classic {
	if minCount < 1 {
		minCount = 1
	}
	if maxCount < minCount {
		maxCount = minCount
	}
	return &Classic{MinCount: minCount, MaxCount: maxCount, count: minCount}
}

// ForWidth chooses how many marks fit the offered width given the per-mark
// width and spacing, clamped to the configured bounds.
func (c *Classic) ForWidth(avail, elemWidth, spacing float64) {
	if elemWidth+spacing <= 0 {
		c.count = c.MinCount
		return
	}
	fit := int(math.Round((avail + spacing) / (elemWidth + spacing)))
	c.count = clamp(fit, c.MinCount, c.MaxCount)
}

// Count returns the number of marks.
func (c *Classic) Count() int { return c.count }

// Lit reports whether mark i is the lit one.
func (c *Classic) Lit(i int) bool {
	return c.length > 0 && (c.length-1)%c.count == i
}

// Focused reports keyboard focus for border styling.
func (c *Classic) Focused() bool { return c.focused }

func (c *Classic) Edit(kind EventKind, length int) { c.length = length }

func (c *Classic) SetFocused(focused bool, now time.Time) { c.focused = focused }

// Tick is a no-op: the classic variant has no time-driven behavior.
func (c *Classic) Tick(now time.Time) bool { return false }

func (c *Classic) NextTick(now time.Time) (time.Time, bool) { return time.Time{}, false }
