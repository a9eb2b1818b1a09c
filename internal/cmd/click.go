package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtlw/simput/input/mouse"
	"github.com/dtlw/simput/internal/log"
)

// Click finds an element and clicks a random point inside it.
type Click struct {
	Session `embed:""`

	Selector string `arg:"" help:"CSS selector of the element to click"`
	Position int    `help:"Which matching element to target (1-based)" default:"1"`
	Button   string `help:"Mouse button" enum:"left,right,middle" default:"left"`
}

// Run is called by Kong when the click command is executed.
func (c *Click) Run(logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	page, err := c.connect(ctx, logger, raw)
	if err != nil {
		return err
	}
	defer page.Close()

	m := mouse.New(page)
	if err := m.Find(ctx, c.Selector, c.Position); err != nil {
		return err
	}
	x, y := m.Position()
	logger.Info("clicking", "selector", c.Selector, "x", x, "y", y, "button", c.Button)
	return m.Click(ctx, &mouse.ClickOptions{Button: mouse.Button(c.Button)})
}
