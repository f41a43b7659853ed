package generator

import (
	"github.com/zyedidia/generic/stack"

	"warrengen/pkg/engine/world"
)

// noDirection marks the absence of a previous carving direction.
const noDirection = world.Direction(-1)

// growMaze flood-fills all wall space reachable from start with a winding
// corridor tree, carved under a fresh region. The walk is an iterative
// growing-tree: carve from the top of an explicit position stack, backtrack
// when boxed in.
func (d *Dungeon) growMaze(start world.Vector) {
	cells := stack.New[world.Vector]()
	lastDir := noDirection

	d.startRegion()
	d.carve(start)
	cells.Push(start)

	for cells.Size() > 0 {
		cell := cells.Peek()

		var unmade []world.Direction
		for _, dir := range world.AllDirections() {
			if d.canCarve(cell, dir) {
				unmade = append(unmade, dir)
			}
		}

		if len(unmade) == 0 {
			cells.Pop()
			lastDir = noDirection
			continue
		}

		// Prefer continuing straight; WindingPercent is the chance of
		// turning anyway.
		var dir world.Direction
		if containsDirection(unmade, lastDir) && d.rng.Intn(100) >= d.opts.WindingPercent {
			dir = lastDir
		} else {
			dir = unmade[d.rng.Intn(len(unmade))]
		}

		step := dir.Vector()
		d.carve(cell.Add(step))

		next := cell.Add(step.Scale(2))
		d.carve(next)

		cells.Push(next)
		lastDir = dir
	}
}

// canCarve reports whether the corridor at pos can extend two cells in the
// given direction. The cell three steps out must be in bounds so carving
// never opens the stage border, and the destination two steps out must still
// be solid.
func (d *Dungeon) canCarve(pos world.Vector, dir world.Direction) bool {
	step := dir.Vector()

	if !d.stage.Contains(pos.Add(step.Scale(3))) {
		return false
	}

	return d.tileAt(pos.Add(step.Scale(2))) == world.Wall
}

func containsDirection(dirs []world.Direction, dir world.Direction) bool {
	for _, d := range dirs {
		if d == dir {
			return true
		}
	}
	return false
}
