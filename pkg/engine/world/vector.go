package world

// Vector is an integer 2-vector, used both for cell positions and for
// direction offsets.
type Vector struct {
	X int
	Y int
}

// Add returns the component-wise sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

// Scale returns v multiplied by n on both axes.
func (v Vector) Scale(n int) Vector {
	return Vector{v.X * n, v.Y * n}
}

// Abs returns the Manhattan magnitude of v.
func (v Vector) Abs() int {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}
