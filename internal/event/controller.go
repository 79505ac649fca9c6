// Package event multiplexes input, timers and rendering on a single thread.
//
// The controller is the dialog's state machine; the loop feeds it window
// events and drains protocol input before it checks any deadline, so a
// queued keystroke always wins against a timeout racing it.
package event

import (
	"errors"
	"log/slog"
	"time"

	"askpass/internal/indicator"
	"askpass/internal/secret"
)

// ErrConnection marks a display connection that failed or dropped. Fatal:
// the run finishes with OutcomeFailed.
var ErrConnection = errors.New("display connection failed")

// State of the dialog run.
type State int

const (
	StateRunning State = iota
	StateSubmitting
	StateCancelling
	StateTimedOut
	StateClosed
)

// Outcome of a finished run.
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeCancelled
	OutcomeTimedOut
	OutcomeFailed
)

// Result carries the outcome and, for accepted runs, the consuming
// passphrase snapshot.
type Result struct {
	Outcome Outcome
	Secret  *secret.Passphrase
	Err     error
}

// Controller drives the dialog state machine. All methods run on the loop
// thread.
type Controller struct {
	log *slog.Logger
	buf *secret.Buffer
	ind indicator.Model

	idleTimeout  time.Duration
	idleDeadline time.Time
	idleGen      uint64

	state  State
	result Result
}

// NewController wires the buffer and indicator model. idleTimeout of zero
// disables the idle timer.
func NewController(buf *secret.Buffer, ind indicator.Model, idleTimeout time.Duration, log *slog.Logger) *Controller {
	return &Controller{log: log, buf: buf, ind: ind, idleTimeout: idleTimeout}
}

// Start arms the idle timer.
func (c *Controller) Start(now time.Time) {
	c.Touch(now)
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Running reports whether input is still being accepted.
func (c *Controller) Running() bool { return c.state == StateRunning }

// Result is valid once Running returns false.
func (c *Controller) Result() Result { return c.result }

// Touch rearms the idle timer. The generation counter invalidates deadline
// checks queued before this activity.
func (c *Controller) Touch(now time.Time) {
	c.idleGen++
	if c.idleTimeout > 0 {
		c.idleDeadline = now.Add(c.idleTimeout)
	}
}

// IdleGen returns the current activity generation.
func (c *Controller) IdleGen() uint64 { return c.idleGen }

// Deadline returns the idle deadline, if armed.
func (c *Controller) Deadline() (time.Time, bool) {
	if c.state != StateRunning || c.idleTimeout <= 0 {
		return time.Time{}, false
	}
	return c.idleDeadline, true
}

// CheckIdle fires the idle timeout if the deadline has passed with no
// intervening activity. gen must be the generation observed when the check
// was scheduled.
func (c *Controller) CheckIdle(now time.Time, gen uint64) bool {
	if c.state != StateRunning || c.idleTimeout <= 0 || gen != c.idleGen {
		return false
	}
	if now.Before(c.idleDeadline) {
		return false
	}
	c.log.Info("input timed out")
	c.state = StateTimedOut
	c.result = Result{Outcome: OutcomeTimedOut}
	return true
}

// KeyInsert appends a typed character. Capacity overflow is absorbed: the
// keystroke still counts as activity but the buffer stays unchanged.
func (c *Controller) KeyInsert(r rune, now time.Time) {
	if c.state != StateRunning {
		return
	}
	switch err := c.buf.Insert(r); {
	case errors.Is(err, secret.ErrCapacityExceeded):
		c.log.Debug("passphrase at maximum length, keystroke dropped")
	case errors.Is(err, secret.ErrUnprintable):
		c.log.Debug("unprintable keystroke dropped")
	case err != nil:
		c.fail(err)
		return
	default:
		c.ind.Edit(indicator.EditInsert, c.buf.Len())
	}
	c.Touch(now)
}

// KeyDelete removes the last character.
func (c *Controller) KeyDelete(now time.Time) {
	if c.state != StateRunning {
		return
	}
	if c.buf.DeleteBackward() {
		c.ind.Edit(indicator.EditDelete, c.buf.Len())
	}
	c.Touch(now)
}

// Clear wipes the whole entry.
func (c *Controller) Clear(now time.Time) {
	if c.state != StateRunning {
		return
	}
	c.buf.Clear()
	c.ind.Edit(indicator.EditDelete, 0)
	c.Touch(now)
}

// Paste inserts selection text. A newline in the pasted text submits, which
// lets a copied passphrase confirm itself.
func (c *Controller) Paste(s string, now time.Time) {
	if c.state != StateRunning {
		return
	}
	inserted, submit := c.buf.Paste(s)
	if inserted > 0 {
		c.ind.Edit(indicator.EditPaste, c.buf.Len())
	}
	c.Touch(now)
	if submit {
		c.Submit(now)
	}
}

// Submit snapshots the buffer and finishes with an accepted result. The
// empty string is a valid passphrase.
func (c *Controller) Submit(now time.Time) {
	if c.state != StateRunning {
		return
	}
	c.state = StateSubmitting
	pass, err := c.buf.SnapshotForSubmit()
	if err != nil {
		c.state = StateClosed
		c.result = Result{Outcome: OutcomeFailed, Err: err}
		return
	}
	c.result = Result{Outcome: OutcomeAccepted, Secret: pass}
}

// Cancel finishes with a cancelled result.
func (c *Controller) Cancel(now time.Time) {
	if c.state != StateRunning {
		return
	}
	c.state = StateCancelling
	c.result = Result{Outcome: OutcomeCancelled}
}

// Abort finishes with a failure.
func (c *Controller) Abort(err error) {
	if c.state != StateRunning {
		return
	}
	c.fail(err)
}

func (c *Controller) fail(err error) {
	c.state = StateClosed
	c.result = Result{Outcome: OutcomeFailed, Err: err}
}

// Finish releases the buffer. The accepted snapshot, if any, survives until
// its own Destroy.
func (c *Controller) Finish() {
	c.buf.Destroy()
}
