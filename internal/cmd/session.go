// Package cmd holds the kong command implementations for the simput CLI.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtlw/simput/devtools"
	"github.com/dtlw/simput/internal/log"
)

// Session carries the connection flags shared by every interaction command.
type Session struct {
	URL            string        `help:"DevTools websocket URL of the target page" required:"" env:"SIMPUT_URL"`
	Navigate       string        `help:"Navigate to this address before interacting" env:"SIMPUT_NAVIGATE"`
	CommandTimeout time.Duration `help:"Per-command acknowledgement timeout" default:"5s" env:"SIMPUT_COMMAND_TIMEOUT"`
	LoadTimeout    time.Duration `help:"How long to wait for the page to finish loading" default:"30s"`
}

// connect dials the page endpoint and optionally navigates it somewhere.
func (s *Session) connect(ctx context.Context, logger *slog.Logger, raw log.RawLogger) (*devtools.Page, error) {
	client, err := devtools.Dial(ctx, s.URL, logger, &devtools.Config{
		DialTimeout:    3 * time.Second,
		CommandTimeout: s.CommandTimeout,
		Raw:            raw,
	})
	if err != nil {
		return nil, err
	}
	page := client.Page()
	if s.Navigate != "" {
		logger.Info("navigating", "url", s.Navigate)
		if err := page.Navigate(ctx, s.Navigate); err != nil {
			_ = page.Close()
			return nil, err
		}
		if err := page.WaitForReady(ctx, s.LoadTimeout); err != nil {
			_ = page.Close()
			return nil, fmt.Errorf("page did not finish loading: %w", err)
		}
	}
	return page, nil
}
