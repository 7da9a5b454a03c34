package engine

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestVirtualDpadMapsDirections(t *testing.T) {
	d := WASD()
	cases := []struct {
		name string
		r    rune
		want Velocity
	}{
		{"up", 'w', Velocity{X: 0, Y: -1}},
		{"down", 's', Velocity{X: 0, Y: 1}},
		{"left upper-case", 'A', Velocity{X: -1, Y: 0}},
		{"right", 'd', Velocity{X: 1, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.MaybeToAction(tcell.NewEventKey(tcell.KeyRune, tc.r, tcell.ModNone))
			if !ok {
				t.Fatalf("%q did not map", tc.r)
			}
			if got != tc.want {
				t.Errorf("%q = %+v; want %+v", tc.r, got, tc.want)
			}
		})
	}
}

func TestVirtualDpadIgnoresOtherInput(t *testing.T) {
	d := Vim()
	if _, ok := d.MaybeToAction(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)); ok {
		t.Error("w must not map on the vim pad")
	}
	if _, ok := d.MaybeToAction(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); ok {
		t.Error("named keys must not map on a rune pad")
	}
	if _, ok := d.MaybeToAction(tcell.NewEventResize(80, 24)); ok {
		t.Error("resize events must not map")
	}
}

func TestArrowPad(t *testing.T) {
	var p ArrowPad
	got, ok := p.MaybeToAction(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !ok || got != (Velocity{X: -1}) {
		t.Errorf("left = %+v, %v", got, ok)
	}
	if _, ok := p.MaybeToAction(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)); ok {
		t.Error("runes must not map on the arrow pad")
	}
}

func TestKeyBinding(t *testing.T) {
	quit := RuneBinding('q', "quit")
	if got, ok := quit.MaybeToAction(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone)); !ok || got != "quit" {
		t.Errorf("Q = %q, %v; want quit", got, ok)
	}
	if got, ok := quit.MaybeToAction(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); ok || got != "" {
		t.Errorf("x = %q, %v; want no mapping", got, ok)
	}

	esc := KeyBinding[int]{Key: tcell.KeyEscape, Action: 7}
	if got, ok := esc.MaybeToAction(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !ok || got != 7 {
		t.Errorf("esc = %d, %v; want 7", got, ok)
	}
}

func TestVelocityNormalize(t *testing.T) {
	if v := (Velocity{}).Normalize(); v != (Velocity{}) {
		t.Errorf("zero normalize = %+v", v)
	}
	if m := (Velocity{X: 3, Y: 4}).Normalize().Magnitude(); m < 0.999999 || m > 1.000001 {
		t.Errorf("normalized magnitude = %v", m)
	}
}
