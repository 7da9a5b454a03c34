package engine

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// InputRegistry handles user input in two stages: mapping an event to an
// action, then performing the action on a target.
type InputRegistry[A, T any] interface {
	MapInputToAction(ev tcell.Event) (A, bool)
	DoInputAction(action A, target T) error
}

// KeyBinding maps one key to a fixed action. Rune bindings set Key to
// tcell.KeyRune and match either letter case.
type KeyBinding[A any] struct {
	Key    tcell.Key
	Rune   rune
	Action A
}

// RuneBinding binds a printable key.
func RuneBinding[A any](r rune, action A) KeyBinding[A] {
	return KeyBinding[A]{Key: tcell.KeyRune, Rune: r, Action: action}
}

// MaybeToAction implements InputBinding.
func (b *KeyBinding[A]) MaybeToAction(ev tcell.Event) (A, bool) {
	var zero A
	kev, ok := ev.(*tcell.EventKey)
	if !ok || kev.Key() != b.Key {
		return zero, false
	}
	if b.Key == tcell.KeyRune && unicode.ToLower(kev.Rune()) != unicode.ToLower(b.Rune) {
		return zero, false
	}
	return b.Action, true
}

// VirtualDpad assembles four printable keys into a direction pad.
type VirtualDpad struct {
	Up, Down, Left, Right rune
}

// WASD is the common left-hand layout.
func WASD() VirtualDpad {
	return VirtualDpad{Up: 'w', Down: 's', Left: 'a', Right: 'd'}
}

// Vim is the hjkl layout.
func Vim() VirtualDpad {
	return VirtualDpad{Up: 'k', Down: 'j', Left: 'h', Right: 'l'}
}

// MaybeToAction implements InputBinding with a unit velocity in the
// pressed direction. Up is -Y.
func (d *VirtualDpad) MaybeToAction(ev tcell.Event) (Velocity, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok || kev.Key() != tcell.KeyRune {
		return Velocity{}, false
	}
	switch unicode.ToLower(kev.Rune()) {
	case d.Up:
		return Velocity{X: 0, Y: -1}, true
	case d.Down:
		return Velocity{X: 0, Y: 1}, true
	case d.Left:
		return Velocity{X: -1, Y: 0}, true
	case d.Right:
		return Velocity{X: 1, Y: 0}, true
	}
	return Velocity{}, false
}

// ArrowPad maps the arrow keys to unit velocities.
type ArrowPad struct{}

// MaybeToAction implements InputBinding.
func (ArrowPad) MaybeToAction(ev tcell.Event) (Velocity, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return Velocity{}, false
	}
	switch kev.Key() {
	case tcell.KeyUp:
		return Velocity{X: 0, Y: -1}, true
	case tcell.KeyDown:
		return Velocity{X: 0, Y: 1}, true
	case tcell.KeyLeft:
		return Velocity{X: -1, Y: 0}, true
	case tcell.KeyRight:
		return Velocity{X: 1, Y: 0}, true
	}
	return Velocity{}, false
}
