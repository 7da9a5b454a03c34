package engine

import "math"

// Velocity is movement per tick in world units.
type Velocity struct {
	X, Y float64
}

// Magnitude returns the length of the velocity vector.
func (v Velocity) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a velocity in the same direction with magnitude 1,
// or the zero velocity when v is zero.
func (v Velocity) Normalize() Velocity {
	m := v.Magnitude()
	if m == 0 {
		return Velocity{}
	}
	return Velocity{X: v.X / m, Y: v.Y / m}
}

// Scale multiplies both components by k.
func (v Velocity) Scale(k float64) Velocity {
	return Velocity{X: v.X * k, Y: v.Y * k}
}

// Add returns the component-wise sum.
func (v Velocity) Add(o Velocity) Velocity {
	return Velocity{X: v.X + o.X, Y: v.Y + o.Y}
}
