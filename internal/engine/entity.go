package engine

//go:generate go run scarab/cmd/scarab-derive

// Entity is the basic structure of any non-static object in a scene.
//
//scarab:derive HasUuid, HasBox, HasHealth, HasSolidity
type Entity struct {
	id          ID       `scarab:"has_uuid"`
	physbox     PhysBox  `scarab:"has_box"`
	health      Health   `scarab:"has_health"`
	solidity    Solidity `scarab:"has_solidity"`
	velocity    Velocity
	maxVelocity float64
}

// NewEntity creates a solid entity with a fresh ID at full health.
func NewEntity(box PhysBox, maxVelocity float64, maxHP int) Entity {
	return Entity{
		id:          NewID(),
		physbox:     box,
		health:      Health{Current: maxHP, Max: maxHP},
		solidity:    Solid,
		maxVelocity: maxVelocity,
	}
}

// Entity implements HasEntity.
func (e *Entity) Entity() *Entity {
	return e
}

func (e *Entity) Velocity() Velocity {
	return e.velocity
}

// SetVelocity sets the velocity, clamping its magnitude to MaxVelocity.
func (e *Entity) SetVelocity(v Velocity) {
	if m := v.Magnitude(); m > e.maxVelocity && m > 0 {
		v = v.Scale(e.maxVelocity / m)
	}
	e.velocity = v
}

func (e *Entity) MaxVelocity() float64 {
	return e.maxVelocity
}

// Tick advances the entity by dt ticks of its current velocity.
func (e *Entity) Tick(dt float64) {
	if !e.health.Alive() {
		return
	}
	e.physbox.Translate(e.velocity.X*dt, e.velocity.Y*dt)
}
