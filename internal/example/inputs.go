package example

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"scarab/internal/engine"
)

// ErrQuit is returned by DoInputAction when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// ActionKind identifies what an Action does.
type ActionKind uint8

const (
	ActionNop ActionKind = iota
	ActionSetPlayerMovement
	ActionQuit
)

// Action is a user request produced by Inputs.
type Action struct {
	Kind     ActionKind
	Velocity engine.Velocity
}

// MoveBinding is the layout used to move the player.
//
//scarab:enum
//scarab:derive MaybeToAction
type MoveBinding struct {
	WASD   *engine.VirtualDpad
	Vim    *engine.VirtualDpad
	Arrows *engine.ArrowPad
}

// WASDMovement binds movement to the WASD keys.
func WASDMovement() MoveBinding {
	d := engine.WASD()
	return MoveBinding{WASD: &d}
}

// VimMovement binds movement to hjkl.
func VimMovement() MoveBinding {
	d := engine.Vim()
	return MoveBinding{Vim: &d}
}

// ArrowMovement binds movement to the arrow keys.
func ArrowMovement() MoveBinding {
	return MoveBinding{Arrows: &engine.ArrowPad{}}
}

// Inputs maps terminal events to actions on the example's entities.
type Inputs struct {
	move *MoveBinding
	quit engine.KeyBinding[Action]
}

// NewInputs creates inputs with no movement bound. Escape quits.
func NewInputs() *Inputs {
	return &Inputs{
		quit: engine.KeyBinding[Action]{Key: tcell.KeyEscape, Action: Action{Kind: ActionQuit}},
	}
}

// BindMovement replaces the movement binding.
func (in *Inputs) BindMovement(b MoveBinding) {
	in.move = &b
}

// MapInputToAction implements engine.InputRegistry.
func (in *Inputs) MapInputToAction(ev tcell.Event) (Action, bool) {
	if a, ok := in.quit.MaybeToAction(ev); ok {
		return a, true
	}
	if in.move == nil {
		return Action{}, false
	}
	v, ok := in.move.MaybeToAction(ev)
	if !ok {
		return Action{}, false
	}
	return Action{Kind: ActionSetPlayerMovement, Velocity: v}, true
}

// DoInputAction implements engine.InputRegistry.
func (in *Inputs) DoInputAction(a Action, target *Entities) error {
	switch a.Kind {
	case ActionNop:
		return nil
	case ActionSetPlayerMovement:
		e := target.InnerEntity()
		e.SetVelocity(a.Velocity.Scale(e.MaxVelocity()))
		return nil
	case ActionQuit:
		return ErrQuit
	}
	return fmt.Errorf("unknown action kind %d", a.Kind)
}

var _ engine.InputRegistry[Action, *Entities] = (*Inputs)(nil)
