package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtlw/simput/input/keyboard"
	"github.com/dtlw/simput/input/mouse"
	"github.com/dtlw/simput/internal/log"
)

// Type types text into the page, optionally clicking a target element first.
type Type struct {
	Session `embed:""`

	Text     string        `arg:"" help:"Text to type"`
	Selector string        `help:"Click this element before typing"`
	Position int           `help:"Which matching element to target (1-based)" default:"1"`
	Interval time.Duration `help:"Delay after each key event" default:"0s" env:"SIMPUT_KEY_INTERVAL"`
	Enter    bool          `help:"Press Enter after the text"`
}

// Run is called by Kong when the type command is executed.
func (t *Type) Run(logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	page, err := t.connect(ctx, logger, raw)
	if err != nil {
		return err
	}
	defer page.Close()

	if t.Selector != "" {
		m := mouse.New(page)
		if err := m.Find(ctx, t.Selector, t.Position); err != nil {
			return err
		}
		if err := m.Click(ctx, nil); err != nil {
			return err
		}
	}

	kb := keyboard.New(page)
	kb.SetKeyInterval(t.Interval)
	logger.Info("typing", "chars", len(t.Text), "interval", t.Interval)
	if err := kb.TypeText(ctx, t.Text); err != nil {
		return err
	}
	if t.Enter {
		return kb.Enter(ctx)
	}
	return nil
}
