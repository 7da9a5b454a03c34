// Package example is a small scene built on the engine: a player, enemies
// that chase it and the input bindings that move it. The capability
// methods of its types are generated by scarab-derive.
package example

import (
	"math"

	"scarab/internal/engine"
)

//go:generate go run scarab/cmd/scarab-derive

// Player is the entity the user controls.
//
//scarab:derive HasUuid, HasEntity, HasBox, HasHealth, HasSolidity
type Player struct {
	entity engine.Entity `scarab:"has_uuid,has_box,has_entity,has_health,has_solidity"`
	Glyph  string
	Damage int
}

// NewPlayer creates a player whose box fits its glyph.
func NewPlayer(glyph string, x, y float64, maxHP, damage int) *Player {
	return &Player{
		entity: engine.NewEntity(engine.GlyphBox(glyph, x, y), playerSpeed, maxHP),
		Glyph:  glyph,
		Damage: damage,
	}
}

// ToEntities wraps p as the player variant of Entities.
func (p *Player) ToEntities() Entities {
	return Entities{Player: p}
}

// Enemy chases the player once it comes within sight.
//
//scarab:derive HasUuid, HasEntity, HasBox, HasHealth, HasSolidity
type Enemy struct {
	entity     engine.Entity `scarab:"has_uuid,has_box,has_entity,has_health,has_solidity"`
	Glyph      string
	SightRange float64
}

// NewEnemy creates an enemy whose box fits its glyph.
func NewEnemy(glyph string, x, y float64, maxHP int, sightRange float64) *Enemy {
	return &Enemy{
		entity:     engine.NewEntity(engine.GlyphBox(glyph, x, y), enemySpeed, maxHP),
		Glyph:      glyph,
		SightRange: sightRange,
	}
}

const (
	playerSpeed = 1.0
	enemySpeed  = 0.5
)

// Chase points the enemy at target at full speed when target is within
// sight, and stops it otherwise.
func (e *Enemy) Chase(target *engine.PhysBox) {
	from, to := e.entity.Box().Center(), target.Center()
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist > e.SightRange {
		e.entity.SetVelocity(engine.Velocity{})
		return
	}
	e.entity.SetVelocity(engine.Velocity{X: dx, Y: dy}.Normalize().Scale(e.entity.MaxVelocity()))
}

// Entities is the closed set of entity kinds an example scene holds.
//
//scarab:enum
//scarab:derive RegisteredEntity, HasBox
type Entities struct {
	Player *Player `scarab:"player"`
	Enemy  *Enemy
}
