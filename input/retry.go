package input

import (
	"context"
	"fmt"
	"time"
)

// Outcome tells Retry what to do after a probe: either the condition is met,
// or Retry should wait before probing again.
type Outcome struct {
	Done bool
	Wait time.Duration
}

// Retry calls probe until it reports Done, the timeout elapses, or the
// context is cancelled. Probe errors abort the loop immediately. A zero Wait
// re-probes without sleeping.
func Retry(ctx context.Context, timeout time.Duration, probe func(ctx context.Context) (Outcome, error)) error {
	deadline := time.Now().Add(timeout)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := probe(ctx)
		if err != nil {
			return err
		}
		if out.Done {
			return nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return fmt.Errorf("retry ceiling of %v reached: %w", timeout, ErrTimeout)
		}
		wait := out.Wait
		if wait > remaining {
			wait = remaining
		}
		if wait <= 0 {
			continue
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}
