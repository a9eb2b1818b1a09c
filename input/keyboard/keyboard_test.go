package keyboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtlw/simput/input"
	"github.com/dtlw/simput/input/keyboard"
	"github.com/dtlw/simput/input/keys"
)

// fakeConn records dispatched events and can simulate failures.
type fakeConn struct {
	closed  bool
	failAll error
	methods []string
	events  []map[string]any
}

func (f *fakeConn) AssertOpen() error {
	if f.closed {
		return input.ErrPageClosed
	}
	return nil
}

func (f *fakeConn) SendEvent(ctx context.Context, method string, params map[string]any) error {
	if f.failAll != nil {
		return f.failAll
	}
	f.methods = append(f.methods, method)
	f.events = append(f.events, params)
	return nil
}

func TestTypeTextDispatchesCharPerRune(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)

	require.NoError(t, kb.TypeText(context.Background(), "hi!"))

	require.Len(t, conn.events, 3)
	for i, want := range []string{"h", "i", "!"} {
		assert.Equal(t, input.DispatchKeyEvent, conn.methods[i])
		assert.Equal(t, "char", conn.events[i]["type"])
		assert.Equal(t, want, conn.events[i]["text"])
		assert.Equal(t, 0, conn.events[i]["modifiers"])
	}
}

func TestTypeTextCarriesModifierMask(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)

	require.NoError(t, kb.Press(context.Background(), "Control"))
	require.NoError(t, kb.TypeText(context.Background(), "c"))

	last := conn.events[len(conn.events)-1]
	assert.Equal(t, "char", last["type"])
	assert.Equal(t, keys.ModifierControl, last["modifiers"])
}

func TestPressDispatchesKeyDown(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)

	require.NoError(t, kb.Press(context.Background(), "a"))

	require.Len(t, conn.events, 1)
	e := conn.events[0]
	assert.Equal(t, "keyDown", e["type"])
	assert.Equal(t, 0, e["modifiers"])
	assert.Equal(t, "a", e["text"])
	assert.Equal(t, "a", e["key"])
	assert.Equal(t, 65, e["windowsVirtualKeyCode"])
	assert.True(t, kb.State().Held("a"))
}

func TestPressUsesShiftedTextWhileShiftHeld(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)

	require.NoError(t, kb.Press(context.Background(), "Shift"))
	require.NoError(t, kb.Press(context.Background(), "a"))

	e := conn.events[len(conn.events)-1]
	assert.Equal(t, "A", e["text"])
	assert.Equal(t, keys.ModifierShift, e["modifiers"])
}

func TestPressUnknownKey(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)

	err := kb.Press(context.Background(), "NoSuchKey")
	assert.ErrorIs(t, err, input.ErrUnknownKey)
	assert.Empty(t, conn.events)
}

func TestPressReleaseLeavesStateEmpty(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)
	ctx := context.Background()

	require.NoError(t, kb.Press(ctx, "a"))
	require.NoError(t, kb.Release(ctx, "a"))

	assert.False(t, kb.State().Held("a"))
	assert.Equal(t, 0, kb.State().Modifiers())

	up := conn.events[len(conn.events)-1]
	assert.Equal(t, "keyUp", up["type"])
	assert.Equal(t, "a", up["key"])
}

func TestAliasedShiftSurvivesSingleRelease(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)
	ctx := context.Background()

	require.NoError(t, kb.Press(ctx, "ShiftLeft"))
	require.NoError(t, kb.Press(ctx, "ShiftRight"))
	require.NoError(t, kb.Release(ctx, "ShiftLeft"))

	assert.Equal(t, keys.ModifierShift, kb.State().Modifiers())
}

func TestReleaseAll(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)
	ctx := context.Background()

	require.NoError(t, kb.Press(ctx, "a"))
	require.NoError(t, kb.Press(ctx, "Control"))
	dispatched := len(conn.events)

	require.NoError(t, kb.ReleaseAll(ctx))

	ups := conn.events[dispatched:]
	require.Len(t, ups, 2)
	assert.Equal(t, "keyUp", ups[0]["type"])
	assert.Equal(t, "a", ups[0]["key"])
	assert.Equal(t, "keyUp", ups[1]["type"])
	assert.Equal(t, "Control", ups[1]["key"])
	assert.Empty(t, kb.State().Pressed())
	assert.Equal(t, 0, kb.State().Modifiers())
}

func TestTypeRawKey(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)

	require.NoError(t, kb.TypeRawKey(context.Background(), "Tab"))

	require.Len(t, conn.events, 2)
	assert.Equal(t, map[string]any{"type": "rawKeyDown", "key": "Tab"}, conn.events[0])
	assert.Equal(t, map[string]any{"type": "keyUp", "key": "Tab"}, conn.events[1])
	assert.Empty(t, kb.State().Pressed())
}

func TestTypeKeyCodeBypassesCatalogAndState(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)

	require.NoError(t, kb.TypeKeyCode(context.Background(), 112))

	require.Len(t, conn.events, 2)
	assert.Equal(t, map[string]any{"type": "rawKeyDown", "windowsVirtualKeyCode": 112}, conn.events[0])
	assert.Equal(t, map[string]any{"type": "keyUp", "windowsVirtualKeyCode": 112}, conn.events[1])
	assert.Empty(t, kb.State().Pressed())
}

func TestTypePressesAndReleases(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)

	require.NoError(t, kb.Type(context.Background(), "b"))

	require.Len(t, conn.events, 2)
	assert.Equal(t, "keyDown", conn.events[0]["type"])
	assert.Equal(t, "keyUp", conn.events[1]["type"])
	assert.Empty(t, kb.State().Pressed())
}

func TestAutoRepeatPressIsLegal(t *testing.T) {
	conn := &fakeConn{}
	kb := keyboard.New(conn)
	ctx := context.Background()

	require.NoError(t, kb.Press(ctx, "a"))
	require.NoError(t, kb.Press(ctx, "a"))

	// Two key-down dispatches, one held key.
	assert.Len(t, conn.events, 2)
	assert.Len(t, kb.State().Pressed(), 1)
}

func TestSetKeyIntervalClampsNegative(t *testing.T) {
	kb := keyboard.New(&fakeConn{})

	kb.SetKeyInterval(-5 * time.Millisecond)
	assert.Equal(t, time.Duration(0), kb.KeyInterval())

	kb.SetKeyInterval(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, kb.KeyInterval())
}

func TestOperationsFailOnClosedPage(t *testing.T) {
	conn := &fakeConn{closed: true}
	kb := keyboard.New(conn)
	ctx := context.Background()

	assert.ErrorIs(t, kb.TypeText(ctx, "x"), input.ErrPageClosed)
	assert.ErrorIs(t, kb.Press(ctx, "a"), input.ErrPageClosed)
	assert.ErrorIs(t, kb.Release(ctx, "a"), input.ErrPageClosed)
	assert.ErrorIs(t, kb.TypeRawKey(ctx, "Tab"), input.ErrPageClosed)
	assert.ErrorIs(t, kb.TypeKeyCode(ctx, 65), input.ErrPageClosed)
	assert.ErrorIs(t, kb.ReleaseAll(ctx), input.ErrPageClosed)
	assert.Empty(t, conn.events)
}

func TestDispatchFailurePropagates(t *testing.T) {
	boom := errors.New("socket gone")
	conn := &fakeConn{failAll: boom}
	kb := keyboard.New(conn)

	assert.ErrorIs(t, kb.TypeText(context.Background(), "x"), boom)
}
