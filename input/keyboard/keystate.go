package keyboard

import (
	"github.com/dtlw/simput/input/keys"
)

// KeyState tracks which keys are currently held and the modifier bitmask
// derived from them. The pressed set keeps insertion order so ReleaseAll can
// emit key-up events deterministically. KeyState does no I/O.
type KeyState struct {
	order   []string
	pressed map[string]keys.Descriptor
	mask    int
}

// NewKeyState returns an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{pressed: make(map[string]keys.Descriptor)}
}

// Press marks the key as held. Pressing an already-held key is legal (real
// keyboards auto-repeat) and leaves the insertion order unchanged.
func (s *KeyState) Press(d keys.Descriptor) {
	if _, held := s.pressed[d.Name]; !held {
		s.order = append(s.order, d.Name)
	}
	s.pressed[d.Name] = d
	s.recompute()
}

// Release removes the key from the held set. The modifier mask is recomputed
// from the remaining held keys, so releasing one of two aliased modifiers
// (say ShiftLeft while ShiftRight is still down) keeps the shared bit set.
func (s *KeyState) Release(name string) {
	if _, held := s.pressed[name]; !held {
		return
	}
	delete(s.pressed, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.recompute()
}

// Modifiers returns the current modifier bitmask.
func (s *KeyState) Modifiers() int { return s.mask }

// Held reports whether the named key is currently pressed.
func (s *KeyState) Held(name string) bool {
	_, held := s.pressed[name]
	return held
}

// Pressed returns the held key descriptors in insertion order.
func (s *KeyState) Pressed() []keys.Descriptor {
	out := make([]keys.Descriptor, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.pressed[name])
	}
	return out
}

// recompute derives the mask from the held set. The mask is never mutated
// directly.
func (s *KeyState) recompute() {
	mask := 0
	for _, d := range s.pressed {
		mask |= d.Modifier
	}
	s.mask = mask
}
