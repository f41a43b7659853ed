// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Tile is the content of a single stage cell.
type Tile uint8

// Tile values. The zero value is Wall so a freshly allocated stage is solid
// rock.
const (
	Wall Tile = iota
	OpenDoor
	ClosedDoor
	Floor
)

// Passable reports whether the tile can be traversed. Closed doors count as
// passable: they open when walked into.
func (t Tile) Passable() bool {
	return t != Wall
}

// String returns the tile name for diagnostics.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "Wall"
	case OpenDoor:
		return "OpenDoor"
	case ClosedDoor:
		return "ClosedDoor"
	case Floor:
		return "Floor"
	default:
		return "Unknown"
	}
}
