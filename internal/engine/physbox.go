package engine

import (
	"errors"

	"github.com/mattn/go-runewidth"
)

// ErrPhysBoxSize is returned when a box would have a non-positive side.
var ErrPhysBoxSize = errors.New("physbox: width and height must be positive")

// Point is a position in world coordinates. +Y points down.
type Point struct {
	X, Y float64
}

// Size is the extent of a box.
type Size struct {
	W, H float64
}

// PhysBox is the axis-aligned rectangle an object occupies.
type PhysBox struct {
	pos  Point
	size Size
}

// NewPhysBox creates a box with its top-left corner at (x, y).
func NewPhysBox(x, y, w, h float64) (PhysBox, error) {
	if w <= 0 || h <= 0 {
		return PhysBox{}, ErrPhysBoxSize
	}
	return PhysBox{pos: Point{X: x, Y: y}, size: Size{W: w, H: h}}, nil
}

// GlyphBox creates the box a single glyph covers when drawn at (x, y) on
// a terminal. Emoji occupy two columns, so the width follows the glyph's
// display width rather than its rune count.
func GlyphBox(glyph string, x, y float64) PhysBox {
	w := runewidth.StringWidth(glyph)
	if w < 1 {
		w = 1
	}
	return PhysBox{pos: Point{X: x, Y: y}, size: Size{W: float64(w), H: 1}}
}

// Box implements HasBox.
func (b *PhysBox) Box() *PhysBox {
	return b
}

func (b *PhysBox) Pos() Point { return b.pos }
func (b *PhysBox) Size() Size { return b.size }
func (b *PhysBox) SetPos(p Point) { b.pos = p }

// SetSize resizes the box, keeping its position.
func (b *PhysBox) SetSize(s Size) error {
	if s.W <= 0 || s.H <= 0 {
		return ErrPhysBoxSize
	}
	b.size = s
	return nil
}

// Translate moves the box by (dx, dy).
func (b *PhysBox) Translate(dx, dy float64) {
	b.pos.X += dx
	b.pos.Y += dy
}

func (b *PhysBox) TopY() float64 { return b.pos.Y }
func (b *PhysBox) LeftX() float64 { return b.pos.X }
func (b *PhysBox) BottomY() float64 { return b.pos.Y + b.size.H }
func (b *PhysBox) RightX() float64 { return b.pos.X + b.size.W }

// Center returns the midpoint of the box.
func (b *PhysBox) Center() Point {
	return Point{X: b.pos.X + b.size.W/2, Y: b.pos.Y + b.size.H/2}
}

// Contains reports whether p lies inside the box. Edges on the right and
// bottom are exclusive.
func (b *PhysBox) Contains(p Point) bool {
	return p.X >= b.LeftX() && p.X < b.RightX() && p.Y >= b.TopY() && p.Y < b.BottomY()
}

// Intersects reports whether the two boxes overlap with positive area.
func (b *PhysBox) Intersects(o *PhysBox) bool {
	return b.LeftX() < o.RightX() && o.LeftX() < b.RightX() &&
		b.TopY() < o.BottomY() && o.TopY() < b.BottomY()
}
