package world

// Stage is a fixed-size dense tile store with encapsulated row-major storage.
// Every cell starts as Wall.
type Stage struct {
	width  int
	height int
	tiles  []Tile
}

// NewStage creates a new stage with the given dimensions, all cells Wall.
func NewStage(width, height int) *Stage {
	if width <= 0 || height <= 0 {
		panic("Stage dimensions must be positive")
	}

	return &Stage{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the number of columns in the stage
func (s *Stage) Width() int {
	return s.width
}

// Height returns the number of rows in the stage
func (s *Stage) Height() int {
	return s.height
}

// Contains checks if a position is within stage bounds
func (s *Stage) Contains(pos Vector) bool {
	return pos.X >= 0 && pos.X < s.width && pos.Y >= 0 && pos.Y < s.height
}

// Get returns the tile at the given position. The second return value is
// false when the position is out of bounds.
func (s *Stage) Get(pos Vector) (Tile, bool) {
	if !s.Contains(pos) {
		return Wall, false
	}
	return s.tiles[pos.Y*s.width+pos.X], true
}

// Set writes the tile at the given position. Out-of-bounds writes are a
// no-op.
func (s *Stage) Set(pos Vector, tile Tile) {
	if !s.Contains(pos) {
		return
	}
	s.tiles[pos.Y*s.width+pos.X] = tile
}

// ForEachCell iterates over all positions in the stage, calling the provided
// function for each
func (s *Stage) ForEachCell(fn func(pos Vector, tile Tile)) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			pos := Vector{x, y}
			fn(pos, s.tiles[y*s.width+x])
		}
	}
}
