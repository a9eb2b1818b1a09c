// Package keys holds the static key catalog: symbolic key names mapped to the
// physical code, DOM key value, printable text and virtual key code needed to
// dispatch them. The catalog is immutable and shared by reference.
package keys

import (
	"fmt"

	"github.com/dtlw/simput/input"
)

// Modifier bit flags as sent on the wire with every key and mouse event.
const (
	ModifierAlt     = 1
	ModifierControl = 2
	ModifierMeta    = 4
	ModifierShift   = 8
)

// Descriptor describes how one named key is dispatched.
type Descriptor struct {
	Name           string // symbolic catalog name ("a", "ShiftLeft", "Enter")
	Code           string // physical key code ("KeyA")
	Key            string // DOM key value ("a")
	Text           string // literal text produced, empty for non-printables
	UnmodifiedText string // text without any modifier applied
	ShiftedText    string // text produced while Shift is held
	VirtualKeyCode int
	Modifier       int // modifier bit, 0 for ordinary keys
}

// IsModifier reports whether the key contributes a modifier bit.
func (d Descriptor) IsModifier() bool { return d.Modifier != 0 }

// TextFor returns the literal text for the key under the given modifier mask.
func (d Descriptor) TextFor(modifiers int) string {
	if modifiers&ModifierShift != 0 && d.ShiftedText != "" {
		return d.ShiftedText
	}
	return d.Text
}

// Lookup resolves a symbolic key name to its dispatch descriptor.
func Lookup(name string) (Descriptor, error) {
	d, ok := catalog[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", input.ErrUnknownKey, name)
	}
	d.Name = name
	return d, nil
}

// Names returns the number of entries in the catalog.
func Names() int { return len(catalog) }
