package world

// Rectangle is an axis-aligned footprint on the stage, used for room
// placement.
type Rectangle struct {
	X int
	Y int
	W int
	H int
}

// Top returns the y coordinate of the top edge.
func (r Rectangle) Top() int {
	return r.Y
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rectangle) Bottom() int {
	return r.Y + r.H
}

// Left returns the x coordinate of the left edge.
func (r Rectangle) Left() int {
	return r.X
}

// Right returns the x coordinate one past the right edge.
func (r Rectangle) Right() int {
	return r.X + r.W
}

// DistanceTo returns the Manhattan gap between the two footprints. A result
// of zero or less means the rectangles touch or overlap on at least one axis
// and must be treated as a placement conflict.
func (r Rectangle) DistanceTo(other Rectangle) int {
	vertical := -1
	switch {
	case r.Top() >= other.Bottom():
		vertical = r.Top() - other.Bottom()
	case r.Bottom() <= other.Top():
		vertical = other.Top() - r.Bottom()
	}

	horizontal := -1
	switch {
	case r.Left() >= other.Right():
		horizontal = r.Left() - other.Right()
	case r.Right() <= other.Left():
		horizontal = other.Left() - r.Right()
	}

	switch {
	case vertical == -1 && horizontal == -1:
		return -1
	case vertical == -1:
		return horizontal
	case horizontal == -1:
		return vertical
	default:
		return vertical + horizontal
	}
}
