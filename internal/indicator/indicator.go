// Package indicator implements the animated feedback widget shown while the
// passphrase is typed.
//
// Three mutually exclusive variants exist: Classic (discrete marks), Circle
// (rotating dots on a ring) and Strings (short status messages). All variants
// observe only the buffer length and the classification of the most recent
// edit; character values never enter this package, so two passphrases with
// identical edit sequences are visually indistinguishable.
package indicator

import "time"

// EventKind classifies a buffer edit.
type EventKind int

const (
	EditInsert EventKind = iota
	EditDelete
	EditPaste
)

// Model is the common contract of the indicator variants. Implementations are
// pure state machines; rendering lives in the ui package.
type Model interface {
	// Edit records a buffer edit and the resulting length.
	Edit(kind EventKind, length int)

	// SetFocused tracks keyboard focus; the circle variant restarts its
	// blink phase on focus gain.
	SetFocused(focused bool, now time.Time)

	// Tick advances time-driven state and reports whether the visual
	// state changed.
	Tick(now time.Time) bool

	// NextTick returns the next instant Tick should run, if any.
	NextTick(now time.Time) (time.Time, bool)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
