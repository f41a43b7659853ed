package generator

import (
	"warrengen/pkg/engine/world"
)

// removeDeadEnds walls off corridor cells with a single open neighbor,
// rescanning until a full pass changes nothing. Each removal can expose the
// next cell of the branch, so one pass is not enough; termination is
// guaranteed because every change removes a carved cell.
func (d *Dungeon) removeDeadEnds() {
	for changed := true; changed; {
		changed = false

		for y := 1; y < d.stage.Height()-1; y++ {
			for x := 1; x < d.stage.Width()-1; x++ {
				pos := world.Vector{X: x, Y: y}
				if d.tileAt(pos) == world.Wall {
					continue
				}

				exits := 0
				for _, dir := range world.AllDirections() {
					if d.tileAt(pos.Add(dir.Vector())) != world.Wall {
						exits++
					}
				}

				if exits != 1 {
					continue
				}

				d.stage.Set(pos, world.Wall)
				changed = true
			}
		}
	}
}
