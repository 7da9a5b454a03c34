package example

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"scarab/internal/engine"
)

// Scene is the example's world: registered entities, static obstacles and
// the inputs that drive the player.
type Scene struct {
	Entities  *engine.EntityRegistry[*Entities]
	Obstacles []Shape
	Inputs    *Inputs
}

// NewScene registers the player and enemies in order.
func NewScene(player *Player, enemies ...*Enemy) (*Scene, error) {
	s := &Scene{
		Entities: engine.NewEntityRegistry[*Entities](),
		Inputs:   NewInputs(),
	}
	p := player.ToEntities()
	if err := s.Entities.Register(&p); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	for _, e := range enemies {
		if err := s.Entities.Register(&Entities{Enemy: e}); err != nil {
			return nil, fmt.Errorf("new scene: %w", err)
		}
	}
	return s, nil
}

// Player returns the registered player.
func (s *Scene) Player() (*Player, bool) {
	return engine.PlayerOf[*Player](s.Entities)
}

// HandleEvent applies the action ev maps to, if any, to the player.
// Unmapped events are ignored.
func (s *Scene) HandleEvent(ev tcell.Event) error {
	a, ok := s.Inputs.MapInputToAction(ev)
	if !ok {
		return nil
	}
	for _, e := range s.Entities.All() {
		if _, isPlayer := e.MaybePlayer(); isPlayer {
			return s.Inputs.DoInputAction(a, e)
		}
	}
	return nil
}

// Tick steers the enemies towards the player and advances every entity.
// Entities are not moved into obstacles, nor into other entities whose
// solidity blocks the move.
func (s *Scene) Tick(dt float64) {
	if p, ok := s.Player(); ok {
		for _, e := range s.Entities.All() {
			if e.Enemy != nil {
				e.Enemy.Chase(p.Box())
			}
		}
	}
	for _, e := range s.Entities.All() {
		ent := e.InnerEntity()
		v := ent.Velocity()
		box := *ent.Box()
		box.Translate(v.X*dt, v.Y*dt)
		if s.blocked(e.UUID(), &box, v) {
			continue
		}
		ent.Tick(dt)
	}
}

// blocked reports whether the entity id may not move into box with
// velocity v.
func (s *Scene) blocked(id uuid.UUID, box *engine.PhysBox, v engine.Velocity) bool {
	for i := range s.Obstacles {
		if s.Obstacles[i].Box().Intersects(box) {
			return true
		}
	}
	for _, other := range s.Entities.All() {
		if other.UUID() == id {
			continue
		}
		ent := other.InnerEntity()
		if ent.Box().Intersects(box) && ent.Solidity().BlocksMove(v.X, v.Y) {
			return true
		}
	}
	return false
}
