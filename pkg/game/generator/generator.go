// Package generator carves dungeon layouts into a stage: non-overlapping
// rectangular rooms joined by winding corridors, merged into a single
// connected whole and stripped of dead-end passages.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"warrengen/pkg/engine/world"
)

// StageGenerator is an interface for dungeon generation algorithms
type StageGenerator interface {
	Generate(stage *world.Stage, rng *rand.Rand) error
	Name() string
}

// Available generators
var (
	RoomsAndMazes = &RoomsAndMazesGenerator{}
)

// DefaultGenerator is the default dungeon generator
var DefaultGenerator StageGenerator = RoomsAndMazes

// ErrEvenDimensions is returned when the stage does not satisfy the odd
// width/height precondition of the room and maze lattice.
var ErrEvenDimensions = errors.New("stage width and height must be odd")

// RoomsAndMazesGenerator generates dungeons by placing rooms, flood-filling
// the gaps with mazes, and connecting the resulting regions
type RoomsAndMazesGenerator struct{}

// Name returns the name of this generator
func (g *RoomsAndMazesGenerator) Name() string {
	return "Rooms and Mazes"
}

// Generate carves a dungeon into the stage using default options
func (g *RoomsAndMazesGenerator) Generate(stage *world.Stage, rng *rand.Rand) error {
	return New(stage, rng, DefaultOptions()).Generate()
}

// Options tunes a dungeon run.
type Options struct {
	// RoomTries is the number of room placement attempts. Placement is
	// best-effort: overlapping candidates are skipped, so fewer rooms than
	// tries may land.
	RoomTries int

	// RoomExtraSize widens the room size range beyond the base 3x3..7x7.
	RoomExtraSize int

	// WindingPercent is the chance, per carving step, that a corridor turns
	// even though it could continue straight. 0 carves long straight runs.
	WindingPercent int

	// ExtraConnectorChance is the 1-in-N chance that a redundant connector
	// is carved anyway, leaving a cycle so the dungeon is not a pure tree.
	ExtraConnectorChance int

	// Progress, when set, is called after each completed pipeline phase
	// with one of "rooms", "mazes", "connections", "dead ends".
	Progress func(phase string)
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		RoomTries:            50,
		RoomExtraSize:        0,
		WindingPercent:       0,
		ExtraConnectorChance: 20,
	}
}

// Dungeon is a rooms-and-mazes run bound to a single stage. It owns the
// stage exclusively for the duration of Generate; all other state is
// recreated per run.
type Dungeon struct {
	stage *world.Stage
	rng   *rand.Rand
	opts  Options

	rooms []world.Rectangle

	// regions maps each carved position to the index of the connected
	// region it was carved under. Populated by the room and maze phases,
	// read-only during connection.
	regions    map[world.Vector]int
	currRegion int
}

// New binds a dungeon run to a stage. The stage must not be mutated by
// anything else until Generate returns.
func New(stage *world.Stage, rng *rand.Rand, opts Options) *Dungeon {
	return &Dungeon{
		stage:      stage,
		rng:        rng,
		opts:       opts,
		regions:    make(map[world.Vector]int),
		currRegion: -1,
	}
}

// Rooms returns the rooms accepted by the last Generate call.
func (d *Dungeon) Rooms() []world.Rectangle {
	return d.rooms
}

// Generate runs the full pipeline in place: place rooms, fill the remaining
// space with mazes, connect every region, then remove dead ends.
func (d *Dungeon) Generate() error {
	if d.stage.Width()%2 == 0 || d.stage.Height()%2 == 0 {
		return fmt.Errorf("%dx%d stage: %w", d.stage.Width(), d.stage.Height(), ErrEvenDimensions)
	}

	d.rooms = nil
	d.regions = make(map[world.Vector]int)
	d.currRegion = -1

	d.addRooms()
	d.progress("rooms")

	// Fill every uncarved odd-lattice cell with a maze region.
	for y := 1; y < d.stage.Height(); y += 2 {
		for x := 1; x < d.stage.Width(); x += 2 {
			pos := world.Vector{X: x, Y: y}
			if d.tileAt(pos) != world.Wall {
				continue
			}
			d.growMaze(pos)
		}
	}
	d.progress("mazes")

	d.connectRegions()
	d.progress("connections")

	d.removeDeadEnds()
	d.progress("dead ends")

	return nil
}

func (d *Dungeon) progress(phase string) {
	if d.opts.Progress != nil {
		d.opts.Progress(phase)
	}
}

// startRegion begins a fresh region for the next carving sequence.
func (d *Dungeon) startRegion() {
	d.currRegion++
}

// carve opens a cell as Floor and records it under the current region.
func (d *Dungeon) carve(pos world.Vector) {
	d.stage.Set(pos, world.Floor)
	d.regions[pos] = d.currRegion
}

// tileAt reads a tile, treating out-of-bounds positions as Wall.
func (d *Dungeon) tileAt(pos world.Vector) world.Tile {
	tile, _ := d.stage.Get(pos)
	return tile
}
