// Command askpass prompts for a passphrase in a small dialog and writes it
// to stdout, newline terminated. It follows the ssh-askpass contract: exit 0
// with the passphrase on acceptance, exit 1 on cancellation or timeout,
// exit 2 on failure. Diagnostics go to stderr only.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"

	"askpass/internal/config"
	"askpass/internal/event"
	"askpass/internal/indicator"
	"askpass/internal/logging"
	"askpass/internal/secret"
	"askpass/internal/session"
	"askpass/internal/ui"
)

const (
	exitAccepted  = 0
	exitCancelled = 1
	exitFailed    = 2
)

func main() {
	var (
		configPath = flag.String("c", "", "configuration file (default: $XDG_CONFIG_HOME/askpass/askpass.toml)")
		grab       = flag.Bool("grab", false, "request an exclusive keyboard grab")
		noGrab     = flag.Bool("no-grab", false, "never request a keyboard grab")
		quiet      = flag.Bool("q", false, "log errors only")
		verbosity  = flag.Int("v", 0, "verbosity: 1 info, 2 debug")
		genConfig  = flag.Bool("gen-config", false, "print the default configuration and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] [label]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logging.Setup(logging.Config{
		Level: logging.FromVerbosity(*verbosity, *quiet),
	})

	if *genConfig {
		if err := config.WriteDefault(os.Stdout); err != nil {
			log.Error("writing default configuration", "error", err)
			os.Exit(exitFailed)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading configuration", "error", err)
		os.Exit(exitFailed)
	}
	if label := flag.Arg(0); label != "" {
		cfg.Dialog.Label = label
	}
	if *grab {
		cfg.GrabKeyboard = true
	}
	if *noGrab {
		cfg.GrabKeyboard = false
	}

	go func() {
		os.Exit(run(cfg, log))
	}()
	app.Main()
}

func run(cfg *config.Config, log *slog.Logger) int {
	faces, err := ui.LoadCollection(cfg.Dialog.FontFile)
	if err != nil {
		log.Error("loading fonts", "error", err)
		return exitFailed
	}

	buf := secret.NewBuffer(cfg.Dialog.MaxLength)
	model := buildIndicator(&cfg.Dialog.Indicator)

	ses := session.Connect(cfg, log)
	if cfg.GrabKeyboard {
		if ses.GrabKeyboard() == session.GrabDenied {
			log.Warn("typed characters may be visible to other clients")
		}
	}

	ctl := event.NewController(buf, model,
		time.Duration(cfg.Dialog.InputTimeout)*time.Second, log)

	dir := ui.DetectDirection(cfg.Dialog.Direction, cfg.Dialog.Label)
	build := func(scale float64) *ui.Dialog {
		text := ui.NewText(faces, cfg.Dialog.Font, cfg.Dialog.FontSize*scale*96.0/72.0, dir)
		return ui.NewDialog(&cfg.Dialog, text, model, scale, cfg.Depth == 24)
	}

	cancelOnSignal(ses, log)

	res := event.NewLoop(ses, ctl, buf, build, log).Run()
	switch res.Outcome {
	case event.OutcomeAccepted:
		defer res.Secret.Destroy()
		if _, err := res.Secret.WriteTo(os.Stdout); err != nil {
			log.Error("writing passphrase", "error", err)
			return exitFailed
		}
		return exitAccepted
	case event.OutcomeCancelled:
		return exitCancelled
	case event.OutcomeTimedOut:
		log.Info("dialog timed out")
		return exitCancelled
	default:
		if res.Err != nil {
			log.Error("dialog failed", "error", res.Err)
		}
		return exitFailed
	}
}

func buildIndicator(cfg *config.Indicator) indicator.Model {
	switch cfg.Type {
	case config.IndicatorCircle:
		c := &cfg.Circle
		return indicator.NewCircle(c.Rotate, c.RotationSpeedStart, c.RotationSpeedGain, c.LightUp, cfg.Blink)
	case config.IndicatorStrings:
		s := &cfg.Strings
		switch s.Mode {
		case config.StringsDisco:
			return indicator.NewDisco(s.Disco.MinCount, s.Disco.MaxCount, s.Disco.ThreeStates, nil)
		case config.StringsCustom:
			return indicator.NewCustom(s.Custom.Strings, s.Custom.Randomize, nil)
		default:
			return indicator.NewAsterisk(s.Asterisk.Glyph, s.Asterisk.MinCount, s.Asterisk.MaxCount)
		}
	default:
		return indicator.NewClassic(cfg.Classic.MinCount, cfg.Classic.MaxCount)
	}
}

// cancelOnSignal closes the window on termination signals so the loop can
// finish with a cancelled result and wipe the buffer.
func cancelOnSignal(ses *session.Session, log *slog.Logger) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-ch
		log.Info("terminating on signal", "signal", sig)
		ses.Close()
	}()
}
