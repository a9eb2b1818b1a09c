package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtlw/simput/input/mouse"
	"github.com/dtlw/simput/internal/log"
)

// Scroll scrolls the page by a pixel distance and waits for confirmation.
type Scroll struct {
	Session `embed:""`

	Distance      int           `arg:"" help:"Distance in pixels"`
	Up            bool          `help:"Scroll up instead of down"`
	ScrollTimeout time.Duration `help:"How long to wait for the viewport to reach the target offset" default:"30s"`
}

// Run is called by Kong when the scroll command is executed.
func (s *Scroll) Run(logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	page, err := s.connect(ctx, logger, raw)
	if err != nil {
		return err
	}
	defer page.Close()

	m := mouse.New(page)
	m.SetScrollTimeout(s.ScrollTimeout)
	logger.Info("scrolling", "distance", s.Distance, "up", s.Up)
	if s.Up {
		return m.ScrollUp(ctx, s.Distance)
	}
	return m.ScrollDown(ctx, s.Distance)
}
