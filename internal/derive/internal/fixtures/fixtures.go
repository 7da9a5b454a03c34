// Package fixtures holds annotated declarations for the generator tests.
// Nothing here is generated; the tests run the generator without writing.
package fixtures

import (
	"github.com/gdamore/tcell/v2"

	"scarab/internal/engine"
)

//scarab:derive HasUuid, HasBox
type Marker struct {
	ID   engine.ID      `scarab:"has_uuid"`
	Area engine.PhysBox `scarab:"has_box"`
}

//scarab:derive HasUuid, HasBox
type Pair struct {
	engine.ID      `scarab:"has_uuid"`
	engine.PhysBox `scarab:"has_box"`
}

//scarab:derive HasUuid, HasEntity, HasBox
type Mob struct {
	entity engine.Entity `scarab:"has_uuid,has_box,has_entity"`
	Name   string
}

//scarab:derive HasUuid, HasEntity, HasBox
type Hero struct {
	entity engine.Entity `scarab:"has_uuid,has_box,has_entity"`
	Level  int
}

func (h *Hero) ToRoster() Roster {
	return Roster{Hero: h}
}

// Roster is the entity set of a scene with Hero as the player.
//
//scarab:enum
//scarab:derive RegisteredEntity, HasBox
type Roster struct {
	Hero *Hero `scarab:"player"`
	Mob  *Mob
}

type CircleBox struct {
	area engine.PhysBox
}

func (c *CircleBox) Box() *engine.PhysBox { return &c.area }

type SquareBox struct {
	area engine.PhysBox
}

func (s *SquareBox) Box() *engine.PhysBox { return &s.area }

type Label struct {
	Text string
}

//scarab:enum
//scarab:derive HasBox
type Shape struct {
	Circle *CircleBox
	Square *SquareBox
}

//scarab:derive HasUuid, HasBox
type Untagged struct {
	ID   engine.ID
	Area engine.PhysBox
}

//scarab:derive HasUuid
type TwoUUIDs struct {
	Primary   engine.ID `scarab:"has_uuid"`
	Secondary engine.ID `scarab:"has_uuid"`
}

//scarab:derive HasUuid
type Unsatisfied struct {
	Name string `scarab:"has_uuid"`
}

//scarab:derive HasUuid
type Counter int

//scarab:enum
//scarab:derive HasBox
type BrokenShape struct {
	Circle *CircleBox
	Label  *Label
}

//scarab:enum
//scarab:derive RegisteredEntity
type BadRoster struct {
	Boss *Mob `scarab:"player"`
}

//scarab:enum
//scarab:derive RegisteredEntity
type PartialRoster struct {
	Mob   *Mob
	Crate *CircleBox
	Sign  *Label
}

// Command is the action of the menu bindings.
type Command uint8

const (
	CommandNone Command = iota
	CommandOpen
	CommandQuit
)

// Menu maps Enter to CommandOpen and leaves every other key unmapped.
type Menu struct{}

func (Menu) MaybeToAction(ev tcell.Event) (Command, bool) {
	if kev, ok := ev.(*tcell.EventKey); ok && kev.Key() == tcell.KeyEnter {
		return CommandOpen, true
	}
	return CommandNone, false
}

//scarab:enum
//scarab:derive MaybeToAction
type Controls struct {
	Keys *engine.KeyBinding[Command]
	Menu *Menu
}

//scarab:enum
//scarab:derive MaybeToAction
type Layered struct {
	Base *Controls
	Quit *engine.KeyBinding[Command]
}

//scarab:enum
//scarab:derive MaybeToAction
type BrokenControls struct {
	Keys    *engine.KeyBinding[Command]
	Mystery *Label
}

//scarab:enum
//scarab:derive MaybeToAction
type MixedControls struct {
	Keys *engine.KeyBinding[Command]
	Dpad *engine.VirtualDpad
}

//scarab:derive HasHealth, HasSolidity
type Barrel struct {
	HP    engine.Health   `scarab:"has_health"`
	Walls engine.Solidity `scarab:"has_solidity"`
	Label string
}

//scarab:derive HasHealth, HasSolidity
type Brittle struct {
	HP     engine.Health `scarab:"has_health"`
	Shield engine.Health `scarab:"has_health"`
}

// Ghost has a box but does not tag it, so its own HasBox derive fails.
//
//scarab:derive HasBox
type Ghost struct {
	Name string
	Area engine.PhysBox
}

// Haunt cannot dispatch Box to Ghost. Shade alone would be fine.
//
//scarab:enum
//scarab:derive HasBox
type Haunt struct {
	Ghost *Ghost
	Shade *CircleBox
}

// Wraith wraps an entity but does not tag it has_entity.
//
//scarab:derive HasUuid, HasEntity
type Wraith struct {
	entity engine.Entity `scarab:"has_uuid"`
}

//scarab:enum
//scarab:derive RegisteredEntity
type Crypt struct {
	Mob    *Mob
	Wraith *Wraith
}

// Remote nests MixedControls, whose own MaybeToAction derive fails.
//
//scarab:enum
//scarab:derive MaybeToAction
type Remote struct {
	Mixed *MixedControls
	Menu  *Menu
}

//scarab:derives HasUuid
type Misspelled struct {
	ID engine.ID `scarab:"has_uuid"`
}

//scarab:derive
type Bare struct {
	ID engine.ID `scarab:"has_uuid"`
}
