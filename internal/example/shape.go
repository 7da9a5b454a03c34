package example

import "scarab/internal/engine"

// CircleBox is a circle tracked by its bounding box.
type CircleBox struct {
	bounds engine.PhysBox
	Radius float64
}

// NewCircle creates a circle centred on (x, y).
func NewCircle(x, y, radius float64) (*CircleBox, error) {
	b, err := engine.NewPhysBox(x-radius, y-radius, 2*radius, 2*radius)
	if err != nil {
		return nil, err
	}
	return &CircleBox{bounds: b, Radius: radius}, nil
}

func (c *CircleBox) Box() *engine.PhysBox { return &c.bounds }

// SquareBox is an axis-aligned square.
type SquareBox struct {
	bounds engine.PhysBox
}

// NewSquare creates a square with its top left corner at (x, y).
func NewSquare(x, y, side float64) (*SquareBox, error) {
	b, err := engine.NewPhysBox(x, y, side, side)
	if err != nil {
		return nil, err
	}
	return &SquareBox{bounds: b}, nil
}

func (s *SquareBox) Box() *engine.PhysBox { return &s.bounds }

// Shape is a static obstacle.
//
//scarab:enum
//scarab:derive HasBox
type Shape struct {
	Circle *CircleBox
	Square *SquareBox
}
