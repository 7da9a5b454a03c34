package example

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/gdamore/tcell/v2"

	"scarab/internal/derive"
	"scarab/internal/engine"
)

func key(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestShapeBoxIsVariantBox(t *testing.T) {
	c, err := NewCircle(3, 3, 2)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	sq, err := NewSquare(10, 0, 4)
	if err != nil {
		t.Fatalf("NewSquare: %v", err)
	}

	circle := Shape{Circle: c}
	if circle.Box() != c.Box() {
		t.Error("Circle shape box is not the circle's box")
	}
	if got := circle.Kind(); got != ShapeKindCircle {
		t.Errorf("kind = %s; want Circle", got)
	}
	square := Shape{Square: sq}
	if square.Box() != sq.Box() {
		t.Error("Square shape box is not the square's box")
	}

	// The box is live: moving it through the shape moves the circle.
	circle.Box().Translate(1, 0)
	if c.Box().LeftX() != 2 {
		t.Errorf("circle left = %v; want 2", c.Box().LeftX())
	}
}

func TestEmptyEnumPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Box on an empty Shape did not panic")
		}
	}()
	var s Shape
	if s.Kind() != ShapeKindNone {
		t.Errorf("kind = %s; want None", s.Kind())
	}
	s.Box()
}

func TestUUIDForwarding(t *testing.T) {
	p := NewPlayer("@", 0, 0, 10, 2)
	if p.UUID() != p.entity.UUID() {
		t.Errorf("player UUID = %s; want the entity's %s", p.UUID(), p.entity.UUID())
	}
	if p.Entity() != &p.entity {
		t.Error("Entity does not return the wrapped entity")
	}
	e := NewEnemy("g", 0, 0, 5, 3)
	if e.UUID() == p.UUID() {
		t.Error("player and enemy share a UUID")
	}
}

func TestHealthAndSolidityForwarding(t *testing.T) {
	p := NewPlayer("@", 0, 0, 10, 2)
	p.Health().Damage(4)
	if got := p.entity.Health().Current; got != 6 {
		t.Errorf("entity health = %d after damaging the player; want 6", got)
	}
	e := NewEnemy("g", 0, 0, 5, 3)
	if e.Health() != e.entity.Health() {
		t.Error("enemy Health is not the entity's health")
	}
	if *e.Solidity() != engine.Solid {
		t.Errorf("enemy solidity = %v; want Solid", *e.Solidity())
	}
	*e.Solidity() = engine.Air
	if *e.entity.Solidity() != engine.Air {
		t.Error("Solidity does not return the entity's live value")
	}
}

func TestPlayerConversionRoundTrip(t *testing.T) {
	p := NewPlayer("@", 1, 2, 10, 2)
	ents := p.ToEntities()

	if got := ents.Kind(); got != EntitiesKindPlayer {
		t.Errorf("kind = %s; want Player", got)
	}
	if got := ents.EntityKind(); got != "Player" {
		t.Errorf("EntityKind = %q; want Player", got)
	}
	if got, ok := ents.MaybePlayer(); !ok || got != p {
		t.Errorf("MaybePlayer = %v, %v; want the player", got, ok)
	}
	if ents.UUID() != p.UUID() {
		t.Error("UUID does not round trip through Entities")
	}
	if ents.InnerEntity() != p.Entity() {
		t.Error("InnerEntity is not the player's entity")
	}

	enemy := Entities{Enemy: NewEnemy("g", 0, 0, 5, 3)}
	if _, ok := enemy.MaybePlayer(); ok {
		t.Error("MaybePlayer reported an enemy as the player")
	}
	if got := enemy.EntityKind(); got != "Enemy" {
		t.Errorf("EntityKind = %q; want Enemy", got)
	}
}

func TestMoveBindings(t *testing.T) {
	tests := []struct {
		name    string
		binding MoveBinding
		ev      tcell.Event
		want    engine.Velocity
		ok      bool
	}{
		{"wasd up", WASDMovement(), key('w'), engine.Velocity{X: 0, Y: -1}, true},
		{"wasd right upper case", WASDMovement(), key('D'), engine.Velocity{X: 1, Y: 0}, true},
		{"vim left", VimMovement(), key('h'), engine.Velocity{X: -1, Y: 0}, true},
		{"arrows down", ArrowMovement(), tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), engine.Velocity{X: 0, Y: 1}, true},
		{"unmapped rune", WASDMovement(), key('x'), engine.Velocity{}, false},
		{"vim ignores wasd", VimMovement(), key('w'), engine.Velocity{}, false},
		{"resize", ArrowMovement(), tcell.NewEventResize(80, 24), engine.Velocity{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.binding.MaybeToAction(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("MaybeToAction = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func newTestScene(t *testing.T, enemies ...*Enemy) (*Scene, *Player) {
	t.Helper()
	p := NewPlayer("@", 0, 0, 10, 2)
	s, err := NewScene(p, enemies...)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s, p
}

func TestSceneRegistersEntities(t *testing.T) {
	e := NewEnemy("g", 5, 0, 5, 10)
	s, p := newTestScene(t, e)
	if s.Entities.Len() != 2 {
		t.Fatalf("len = %d; want 2", s.Entities.Len())
	}
	if got, ok := s.Player(); !ok || got != p {
		t.Errorf("Player = %v, %v; want the player", got, ok)
	}
	if got := s.Entities.Query("Enemy"); len(got) != 1 || got[0].Enemy != e {
		t.Errorf("Query(Enemy) = %v", got)
	}
	if err := s.Entities.Register(&Entities{Enemy: e}); !errors.Is(err, engine.ErrDuplicateEntity) {
		t.Errorf("duplicate register error = %v; want ErrDuplicateEntity", err)
	}
}

func TestSceneHandleEvent(t *testing.T) {
	s, p := newTestScene(t)

	// Nothing is bound to movement yet.
	if err := s.HandleEvent(key('d')); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if v := p.entity.Velocity(); v != (engine.Velocity{}) {
		t.Errorf("velocity = %v before binding movement", v)
	}

	s.Inputs.BindMovement(WASDMovement())
	if err := s.HandleEvent(key('d')); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if v := p.entity.Velocity(); v != (engine.Velocity{X: playerSpeed, Y: 0}) {
		t.Errorf("velocity = %v; want (%v, 0)", v, playerSpeed)
	}

	// An unmapped key leaves the player alone.
	if err := s.HandleEvent(key('x')); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if v := p.entity.Velocity(); v.X != playerSpeed {
		t.Errorf("velocity = %v after an unmapped key", v)
	}

	err := s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !errors.Is(err, ErrQuit) {
		t.Errorf("escape error = %v; want ErrQuit", err)
	}
}

func TestDoInputActionUnknown(t *testing.T) {
	p := NewPlayer("@", 0, 0, 10, 2)
	ents := p.ToEntities()
	if err := NewInputs().DoInputAction(Action{Kind: ActionKind(99)}, &ents); err == nil {
		t.Error("expected an error for an unknown action")
	}
}

func TestSceneTickChase(t *testing.T) {
	e := NewEnemy("g", 5, 0, 5, 10)
	far := NewEnemy("g", 50, 0, 5, 10)
	s, p := newTestScene(t, e, far)

	s.Tick(1)
	if got := e.Box().LeftX(); got != 5-enemySpeed {
		t.Errorf("enemy x = %v; want %v", got, 5-enemySpeed)
	}
	if got := far.Box().LeftX(); got != 50 {
		t.Errorf("far enemy x = %v; want 50", got)
	}
	if got := p.Box().LeftX(); got != 0 {
		t.Errorf("player x = %v; want 0", got)
	}
}

func TestSceneTickBlockedByObstacle(t *testing.T) {
	e := NewEnemy("g", 5, 0, 5, 10)
	s, _ := newTestScene(t, e)
	wall, err := NewSquare(4, 0, 1)
	if err != nil {
		t.Fatalf("NewSquare: %v", err)
	}
	s.Obstacles = append(s.Obstacles, Shape{Square: wall})

	s.Tick(1)
	if got := e.Box().LeftX(); got != 5 {
		t.Errorf("enemy x = %v; want 5 (blocked)", got)
	}
}

func TestSceneTickBlockedBySolidEntity(t *testing.T) {
	const start = 1.2
	e := NewEnemy("g", start, 0, 5, 10)
	s, p := newTestScene(t, e)

	s.Tick(1)
	if got := e.Box().LeftX(); got != start {
		t.Errorf("enemy x = %v; want %v (blocked by the player)", got, start)
	}

	*p.Solidity() = engine.Air
	s.Tick(1)
	if got := e.Box().LeftX(); got != start-enemySpeed {
		t.Errorf("enemy x = %v; want %v once the player is air", got, start-enemySpeed)
	}
}

func TestGeneratedCodeIsCurrent(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	res, err := derive.Run(context.Background(), derive.Options{Patterns: []string{"."}, DryRun: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Diagnostics) > 0 {
		t.Fatalf("diagnostics: %v", res.Diagnostics)
	}
	want, err := os.ReadFile(derive.DefaultOutput)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(res.Files) != 1 || string(res.Files[0].Source) != string(want) {
		t.Error("scarab_derive.go is out of date; run go generate")
	}
}
