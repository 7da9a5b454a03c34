package engine

// Solidity is a bitmask of the sides through which other objects may not
// enter or leave an object. The low nibble blocks entering and the high
// nibble blocks leaving, with left, right, top and bottom from the most
// significant bit of each nibble.
type Solidity uint8

const (
	Air   Solidity = 0
	Solid Solidity = 255
)

// Side is one edge of a box.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// Solidity implements HasSolidity.
func (s *Solidity) Solidity() *Solidity {
	return s
}

// BlocksEnter reports whether s stops objects entering through side.
func (s Solidity) BlocksEnter(side Side) bool {
	return s&(0b0000_1000>>side) != 0
}

// BlocksExit reports whether s stops objects leaving through side.
func (s Solidity) BlocksExit(side Side) bool {
	return s&(0b1000_0000>>side) != 0
}

// BlocksMove reports whether s stops an object moving by (dx, dy) from
// entering it. Moving right enters through the left side and moving down
// enters through the top, since +Y points down.
func (s Solidity) BlocksMove(dx, dy float64) bool {
	switch {
	case dx > 0 && s.BlocksEnter(SideLeft):
		return true
	case dx < 0 && s.BlocksEnter(SideRight):
		return true
	case dy > 0 && s.BlocksEnter(SideTop):
		return true
	case dy < 0 && s.BlocksEnter(SideBottom):
		return true
	}
	return false
}
