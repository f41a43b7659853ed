package generator

import (
	"warrengen/pkg/engine/world"
)

// addRooms attempts RoomTries randomized room placements, keeping only
// candidates that neither touch nor overlap an accepted room. Each accepted
// room is carved as Floor under a fresh region.
func (d *Dungeon) addRooms() {
attempts:
	for i := 0; i < d.opts.RoomTries; i++ {
		// Odd sizes keep rooms on the maze lattice. The even
		// rectangularity bonus stretches one axis so rooms are neither
		// all square nor absurdly elongated.
		size := (d.rng.Intn(3+d.opts.RoomExtraSize)+1)*2 + 1
		rectangularity := d.rng.Intn(2+size/2) * 2

		width, height := size, size
		if d.rng.Intn(2) == 0 {
			width += rectangularity
		} else {
			height += rectangularity
		}

		// Odd positions leave a wall ring around every room. A candidate
		// that cannot fit at all is skipped, not an error.
		maxX := (d.stage.Width() - width) / 2
		maxY := (d.stage.Height() - height) / 2
		if maxX <= 0 || maxY <= 0 {
			continue
		}

		room := world.Rectangle{
			X: d.rng.Intn(maxX)*2 + 1,
			Y: d.rng.Intn(maxY)*2 + 1,
			W: width,
			H: height,
		}

		for _, other := range d.rooms {
			if room.DistanceTo(other) <= 0 {
				continue attempts
			}
		}

		d.rooms = append(d.rooms, room)

		d.startRegion()
		for y := room.Top(); y < room.Bottom(); y++ {
			for x := room.Left(); x < room.Right(); x++ {
				d.carve(world.Vector{X: x, Y: y})
			}
		}
	}
}
