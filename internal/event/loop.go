package event

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"gioui.org/app"
	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/transfer"
	"gioui.org/layout"
	"gioui.org/op"

	"askpass/internal/secret"
	"askpass/internal/security"
	"askpass/internal/session"
	"askpass/internal/ui"
)

// nameInsert is the Insert key; it has no predeclared name constant.
const nameInsert key.Name = "Insert"

// Loop runs the dialog on the window's event thread. Everything is
// cooperatively multiplexed on that single thread: protocol events are
// drained first each frame, then expired deadlines fire, then the frame is
// drawn and the next wakeup scheduled.
type Loop struct {
	ses   *session.Session
	ctl   *Controller
	buf   *secret.Buffer
	build func(scale float64) *ui.Dialog
	log   *slog.Logger

	ops op.Ops
	dlg *ui.Dialog

	scale       float64
	focused     bool
	focusAsked  bool
	plaintext   bool
	pressTarget ui.Target
}

// NewLoop prepares a run. build constructs the widget tree once the
// display's scale factor is known; it is called again if the scale changes.
func NewLoop(ses *session.Session, ctl *Controller, buf *secret.Buffer, build func(scale float64) *ui.Dialog, log *slog.Logger) *Loop {
	return &Loop{ses: ses, ctl: ctl, buf: buf, build: build, log: log, pressTarget: ui.TargetNone}
}

// Run blocks until the dialog finishes and returns the result. It must be
// the only reader of the window's events.
func (l *Loop) Run() Result {
	l.ctl.Start(time.Now())
	w := l.ses.Window()
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				l.ctl.Abort(fmt.Errorf("%w: %v", ErrConnection, e.Err))
			}
			// Window closed by the user or the window manager.
			l.ctl.Cancel(time.Now())
			l.ctl.Finish()
			return l.ctl.Result()
		case app.FrameEvent:
			l.frame(e)
		}
	}
}

func (l *Loop) frame(e app.FrameEvent) {
	gtx := app.NewContext(&l.ops, e)
	now := e.Now

	// Deadline checks may only fire if nothing queued before them counts
	// as activity.
	gen := l.ctl.IdleGen()

	if scale := l.ses.Scale(e.Metric); l.dlg == nil || scale != l.scale {
		l.scale = scale
		l.dlg = l.build(scale)
		size := l.dlg.Layout()
		l.ses.Resize(size, e.Metric)
	}

	event.Op(gtx.Ops, l)
	if !l.focusAsked {
		gtx.Execute(key.FocusCmd{Tag: l})
		l.focusAsked = true
	}

	select {
	case text := <-l.ses.Primary():
		l.ctl.Paste(text, now)
	default:
	}

	for {
		ev, ok := gtx.Event(
			key.FocusFilter{Target: l},
			key.Filter{Focus: l, Name: key.NameReturn},
			key.Filter{Focus: l, Name: key.NameEnter},
			key.Filter{Focus: l, Name: key.NameEscape},
			key.Filter{Focus: l, Name: key.NameDeleteBackward},
			key.Filter{Focus: l, Name: "U", Required: key.ModCtrl},
			key.Filter{Focus: l, Name: "V", Required: key.ModCtrl},
			key.Filter{Focus: l, Name: nameInsert, Required: key.ModShift},
			pointer.Filter{Target: l, Kinds: pointer.Press | pointer.Release | pointer.Move | pointer.Leave},
			transfer.TargetFilter{Target: l, Type: "application/text"},
		)
		if !ok {
			break
		}
		l.handle(gtx, ev, now)
	}

	if l.ctl.CheckIdle(now, gen) {
		l.log.Debug("closing after idle timeout")
	}

	l.dlg.Indicator.Model.Tick(now)

	if !l.ctl.Running() {
		l.ses.Close()
	}

	if l.plaintext {
		l.dlg.Indicator.Reveal = string(l.buf.Runes())
	} else {
		l.dlg.Indicator.Reveal = ""
	}

	l.dlg.Place(e.Size)
	l.dlg.Draw(gtx.Ops, e.Size)

	if next, ok := l.nextWake(now); ok {
		gtx.Execute(op.InvalidateCmd{At: next})
	}
	e.Frame(gtx.Ops)
}

// nextWake returns the earliest pending deadline: idle timeout or indicator
// animation. Timers never fire early; the frame scheduled here re-checks
// against the clock.
func (l *Loop) nextWake(now time.Time) (time.Time, bool) {
	next, ok := l.ctl.Deadline()
	if tick, tok := l.dlg.Indicator.Model.NextTick(now); tok && (!ok || tick.Before(next)) {
		next, ok = tick, true
	}
	return next, ok
}

func (l *Loop) handle(gtx layout.Context, ev event.Event, now time.Time) {
	switch ev := ev.(type) {
	case key.FocusEvent:
		l.focused = ev.Focus
		l.dlg.Indicator.Model.SetFocused(ev.Focus, now)
	case key.Event:
		if ev.State != key.Press {
			return
		}
		l.keyPress(gtx, ev, now)
	case key.EditEvent:
		for _, r := range ev.Text {
			l.ctl.KeyInsert(r, now)
		}
	case pointer.Event:
		l.pointer(gtx, ev, now)
	case transfer.DataEvent:
		l.pasteTransfer(ev, now)
	}
}

func (l *Loop) keyPress(gtx layout.Context, ev key.Event, now time.Time) {
	switch ev.Name {
	case key.NameReturn, key.NameEnter:
		l.ctl.Submit(now)
	case key.NameEscape:
		l.ctl.Cancel(now)
	case key.NameDeleteBackward:
		l.ctl.KeyDelete(now)
	case "U":
		l.ctl.Clear(now)
	case "V":
		l.ctl.Touch(now)
		gtx.Execute(clipboard.ReadCmd{Tag: l})
	case nameInsert:
		l.ctl.Touch(now)
		l.ses.RequestPrimary()
	}
}

func (l *Loop) pointer(gtx layout.Context, ev pointer.Event, now time.Time) {
	pos := image.Pt(int(ev.Position.X), int(ev.Position.Y))
	target := l.dlg.Hit(pos)
	switch ev.Kind {
	case pointer.Move:
		if l.dlg.SetHover(target) {
			l.ses.Invalidate()
		}
	case pointer.Leave:
		l.dlg.SetHover(ui.TargetNone)
	case pointer.Press:
		l.ctl.Touch(now)
		if ev.Buttons == pointer.ButtonTertiary {
			// Middle click pastes the primary selection.
			l.ses.RequestPrimary()
			return
		}
		l.pressTarget = target
		l.dlg.SetPressed(target)
	case pointer.Release:
		l.dlg.SetPressed(ui.TargetNone)
		if target != l.pressTarget || target == ui.TargetNone {
			l.pressTarget = ui.TargetNone
			return
		}
		l.pressTarget = ui.TargetNone
		l.activate(gtx, target, now)
	}
}

func (l *Loop) activate(gtx layout.Context, target ui.Target, now time.Time) {
	switch target {
	case ui.TargetOK:
		l.ctl.Submit(now)
	case ui.TargetCancel:
		l.ctl.Cancel(now)
	case ui.TargetClipboard:
		l.ctl.Touch(now)
		gtx.Execute(clipboard.ReadCmd{Tag: l})
	case ui.TargetPlaintext:
		l.plaintext = !l.plaintext
		l.dlg.Plaintext.Active = l.plaintext
		l.ctl.Touch(now)
	}
}

// pasteTransfer reads a clipboard transfer. The intermediate copy is wiped;
// the string handed to the controller is Go-immutable and lives until the
// collector runs.
func (l *Loop) pasteTransfer(ev transfer.DataEvent, now time.Time) {
	data := ev.Open()
	defer data.Close()
	b, err := io.ReadAll(data)
	if err != nil {
		l.log.Debug("clipboard read failed", "error", err)
		return
	}
	l.ctl.Paste(string(b), now)
	security.Wipe(b)
}
