// Package session owns the display connection: the window, its options,
// the keyboard grab request and the primary-selection bridge.
package session

import (
	"image"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/unit"
	"github.com/atotto/clipboard"

	"askpass/internal/config"
)

// GrabStatus is the outcome of a keyboard grab request.
type GrabStatus int

const (
	// GrabDenied means the display refused or cannot express an exclusive
	// grab. The dialog keeps running ungrabbed.
	GrabDenied GrabStatus = iota
	// GrabHeld means the grab is active until Close.
	GrabHeld
)

// Session wraps the window for one dialog run.
type Session struct {
	win *app.Window
	log *slog.Logger

	scaleOverride float64
	resizable     bool
	sized         bool
	closed        bool

	primary chan string
}

// Connect creates the window and applies the static options. The window
// surface is not realized until the first frame event arrives.
func Connect(cfg *config.Config, log *slog.Logger) *Session {
	s := &Session{
		win:           new(app.Window),
		log:           log,
		scaleOverride: cfg.Dialog.Scale,
		resizable:     cfg.Resizable,
		primary:       make(chan string, 1),
	}
	title := cfg.Title
	if cfg.ShowHostname {
		if host, err := os.Hostname(); err == nil {
			title += "@" + host
		}
	}
	s.win.Option(app.Title(title))
	return s
}

// Window exposes the event source for the frame loop.
func (s *Session) Window() *app.Window { return s.win }

// Scale resolves the effective scale factor given the display's metric.
func (s *Session) Scale(metric unit.Metric) float64 {
	if s.scaleOverride > 0 {
		return s.scaleOverride
	}
	return float64(metric.PxPerDp)
}

// Resize fits the window to the content size in device pixels. The size is
// pinned unless the configuration allows resizing.
func (s *Session) Resize(content image.Point, metric unit.Metric) {
	w := unit.Dp(float32(content.X) / metric.PxPerDp)
	h := unit.Dp(float32(content.Y) / metric.PxPerDp)
	opts := []app.Option{app.Size(w, h)}
	if !s.resizable {
		opts = append(opts, app.MinSize(w, h), app.MaxSize(w, h))
	}
	s.win.Option(opts...)
	s.sized = true
}

// Sized reports whether the window has been fitted to its content.
func (s *Session) Sized() bool { return s.sized }

// GrabKeyboard requests an exclusive keyboard grab. The windowing backend
// offers no grab primitive, so the request is always denied and the dialog
// continues ungrabbed with a warning.
func (s *Session) GrabKeyboard() GrabStatus {
	s.log.Warn("keyboard grab unavailable, continuing without exclusive input")
	return GrabDenied
}

// RequestPrimary fetches the primary selection off the loop and invalidates
// the window when text arrives. Selection transfers go through an external
// process and must not stall input handling.
func (s *Session) RequestPrimary() {
	go func() {
		clipboard.Primary = true
		text, err := clipboard.ReadAll()
		if err != nil {
			s.log.Debug("primary selection read failed", "error", err)
			return
		}
		if text == "" {
			return
		}
		select {
		case s.primary <- text:
		default:
		}
		s.win.Invalidate()
	}()
}

// Primary yields primary-selection pastes requested earlier.
func (s *Session) Primary() <-chan string { return s.primary }

// Invalidate schedules a redraw.
func (s *Session) Invalidate() { s.win.Invalidate() }

// Close tears the window down. Safe to call more than once and from any
// goroutine.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.win.Perform(system.ActionClose)
}
