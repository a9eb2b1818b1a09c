package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtlw/simput/input"
	"github.com/dtlw/simput/input/keys"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantCode string
		wantKey  string
		wantVK   int
		wantText string
	}{
		{name: "lowercase letter", key: "a", wantCode: "KeyA", wantKey: "a", wantVK: 65, wantText: "a"},
		{name: "uppercase letter", key: "Q", wantCode: "KeyQ", wantKey: "Q", wantVK: 81, wantText: "Q"},
		{name: "digit", key: "7", wantCode: "Digit7", wantKey: "7", wantVK: 55, wantText: "7"},
		{name: "shifted digit symbol", key: "%", wantCode: "Digit5", wantKey: "%", wantVK: 53, wantText: "%"},
		{name: "punctuation", key: ";", wantCode: "Semicolon", wantKey: ";", wantVK: 186, wantText: ";"},
		{name: "shifted punctuation", key: "?", wantCode: "Slash", wantKey: "?", wantVK: 191, wantText: "?"},
		{name: "enter carries carriage return", key: "Enter", wantCode: "Enter", wantKey: "Enter", wantVK: 13, wantText: "\r"},
		{name: "space", key: "Space", wantCode: "Space", wantKey: " ", wantVK: 32, wantText: " "},
		{name: "function key", key: "F5", wantCode: "F5", wantKey: "F5", wantVK: 116, wantText: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := keys.Lookup(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.key, d.Name)
			assert.Equal(t, tt.wantCode, d.Code)
			assert.Equal(t, tt.wantKey, d.Key)
			assert.Equal(t, tt.wantVK, d.VirtualKeyCode)
			assert.Equal(t, tt.wantText, d.Text)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := keys.Lookup("NoSuchKey")
	assert.ErrorIs(t, err, input.ErrUnknownKey)
}

func TestModifierAliasing(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		bit  int
	}{
		{name: "shift variants", keys: []string{"Shift", "ShiftLeft", "ShiftRight"}, bit: keys.ModifierShift},
		{name: "control variants", keys: []string{"Control", "ControlLeft", "ControlRight"}, bit: keys.ModifierControl},
		{name: "alt variants", keys: []string{"Alt", "AltLeft", "AltRight"}, bit: keys.ModifierAlt},
		{name: "meta variants", keys: []string{"Meta", "MetaLeft", "MetaRight"}, bit: keys.ModifierMeta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range tt.keys {
				d, err := keys.Lookup(name)
				require.NoError(t, err, name)
				assert.True(t, d.IsModifier(), name)
				assert.Equal(t, tt.bit, d.Modifier, name)
			}
		})
	}
}

func TestTextForShift(t *testing.T) {
	tests := []struct {
		key       string
		modifiers int
		want      string
	}{
		{key: "a", modifiers: 0, want: "a"},
		{key: "a", modifiers: keys.ModifierShift, want: "A"},
		{key: "a", modifiers: keys.ModifierControl, want: "a"},
		{key: "1", modifiers: keys.ModifierShift, want: "!"},
		{key: "/", modifiers: keys.ModifierShift, want: "?"},
		{key: "Enter", modifiers: keys.ModifierShift, want: "\r"},
	}

	for _, tt := range tests {
		d, err := keys.Lookup(tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.want, d.TextFor(tt.modifiers), "%s with modifiers %d", tt.key, tt.modifiers)
	}
}
