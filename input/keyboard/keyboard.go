// Package keyboard sequences synthetic key events against a remote page. It
// mirrors real hardware semantics: a pressed-set with auto-repeat, a derived
// modifier bitmask and aliased left/right modifier keys.
package keyboard

import (
	"context"
	"time"

	"github.com/dtlw/simput/input"
	"github.com/dtlw/simput/input/keys"
)

// Keyboard dispatches key events through a borrowed page connection. Not safe
// for concurrent use; a page session has a single input owner.
type Keyboard struct {
	conn     input.Conn
	state    *KeyState
	interval time.Duration
}

// New returns a Keyboard bound to the given page connection.
func New(conn input.Conn) *Keyboard {
	return &Keyboard{conn: conn, state: NewKeyState()}
}

// SetKeyInterval sets the delay applied after every dispatched event.
// Negative values clamp to zero. Not retroactive.
func (k *Keyboard) SetKeyInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	k.interval = d
}

// KeyInterval returns the current post-event delay.
func (k *Keyboard) KeyInterval() time.Duration { return k.interval }

// State exposes the pressed-key state for inspection.
func (k *Keyboard) State() *KeyState { return k.state }

// TypeText dispatches one char event per code point of text, carrying the
// current modifier mask. Char events do not touch the pressed-key state.
func (k *Keyboard) TypeText(ctx context.Context, text string) error {
	if err := k.conn.AssertOpen(); err != nil {
		return err
	}
	for _, r := range text {
		err := k.conn.SendEvent(ctx, input.DispatchKeyEvent, map[string]any{
			"type":      "char",
			"modifiers": k.state.Modifiers(),
			"text":      string(r),
		})
		if err != nil {
			return err
		}
		if err := k.pause(ctx); err != nil {
			return err
		}
	}
	return nil
}

// TypeRawKey presses and immediately releases a key by name only, without
// catalog resolution, modifiers or a virtual key code. Used for non-printable
// control keys.
func (k *Keyboard) TypeRawKey(ctx context.Context, name string) error {
	if err := k.conn.AssertOpen(); err != nil {
		return err
	}
	k.state.Press(keys.Descriptor{Name: name, Key: name})
	err := k.conn.SendEvent(ctx, input.DispatchKeyEvent, map[string]any{
		"type": "rawKeyDown",
		"key":  name,
	})
	if err != nil {
		return err
	}
	if err := k.pause(ctx); err != nil {
		return err
	}
	k.state.Release(name)
	err = k.conn.SendEvent(ctx, input.DispatchKeyEvent, map[string]any{
		"type": "keyUp",
		"key":  name,
	})
	if err != nil {
		return err
	}
	return k.pause(ctx)
}

// Press resolves the named key and dispatches a key-down event carrying the
// modifier mask, literal text (shifted variant while Shift is held), key value
// and virtual key code. Pressing an already-held key re-dispatches without
// error.
func (k *Keyboard) Press(ctx context.Context, name string) error {
	if err := k.conn.AssertOpen(); err != nil {
		return err
	}
	d, err := keys.Lookup(name)
	if err != nil {
		return err
	}
	k.state.Press(d)
	modifiers := k.state.Modifiers()
	err = k.conn.SendEvent(ctx, input.DispatchKeyEvent, map[string]any{
		"type":                  "keyDown",
		"modifiers":             modifiers,
		"text":                  d.TextFor(modifiers),
		"key":                   d.Key,
		"windowsVirtualKeyCode": d.VirtualKeyCode,
	})
	if err != nil {
		return err
	}
	return k.pause(ctx)
}

// Release resolves the named key, removes it from the pressed set and
// dispatches a key-up event. Releasing one of two aliased modifier keys keeps
// the shared modifier bit set until both are up.
func (k *Keyboard) Release(ctx context.Context, name string) error {
	if err := k.conn.AssertOpen(); err != nil {
		return err
	}
	d, err := keys.Lookup(name)
	if err != nil {
		return err
	}
	k.state.Release(d.Name)
	err = k.conn.SendEvent(ctx, input.DispatchKeyEvent, map[string]any{
		"type": "keyUp",
		"key":  d.Key,
	})
	if err != nil {
		return err
	}
	return k.pause(ctx)
}

// ReleaseAll releases every currently-held key in the order it was pressed,
// dispatching a key-up event for each.
func (k *Keyboard) ReleaseAll(ctx context.Context) error {
	if err := k.conn.AssertOpen(); err != nil {
		return err
	}
	for _, d := range k.state.Pressed() {
		k.state.Release(d.Name)
		err := k.conn.SendEvent(ctx, input.DispatchKeyEvent, map[string]any{
			"type": "keyUp",
			"key":  d.Key,
		})
		if err != nil {
			return err
		}
		if err := k.pause(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Type presses and releases the named key.
func (k *Keyboard) Type(ctx context.Context, name string) error {
	if err := k.Press(ctx, name); err != nil {
		return err
	}
	return k.Release(ctx, name)
}

// TypeKeyCode dispatches a raw key-down followed by a key-up carrying only a
// numeric virtual key code. The catalog and pressed-key state are bypassed:
// there is no symbolic identity to track.
func (k *Keyboard) TypeKeyCode(ctx context.Context, code int) error {
	if err := k.conn.AssertOpen(); err != nil {
		return err
	}
	err := k.conn.SendEvent(ctx, input.DispatchKeyEvent, map[string]any{
		"type":                  "rawKeyDown",
		"windowsVirtualKeyCode": code,
	})
	if err != nil {
		return err
	}
	if err := k.pause(ctx); err != nil {
		return err
	}
	err = k.conn.SendEvent(ctx, input.DispatchKeyEvent, map[string]any{
		"type":                  "keyUp",
		"windowsVirtualKeyCode": code,
	})
	if err != nil {
		return err
	}
	return k.pause(ctx)
}

// Tab types the Tab key as a raw key.
func (k *Keyboard) Tab(ctx context.Context) error {
	return k.TypeRawKey(ctx, "Tab")
}

// Enter presses and releases the Enter key.
func (k *Keyboard) Enter(ctx context.Context) error {
	return k.Type(ctx, "Enter")
}

func (k *Keyboard) pause(ctx context.Context) error {
	if k.interval <= 0 {
		return nil
	}
	t := time.NewTimer(k.interval)
	select {
	case <-ctx.Done():
		t.Stop()
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
