package generator

import (
	"math/rand"
	"testing"

	"warrengen/pkg/engine/world"
)

// growAllMazes runs the maze phase alone, seeding every uncarved odd-lattice
// cell the way Generate does.
func growAllMazes(d *Dungeon) {
	for y := 1; y < d.stage.Height(); y += 2 {
		for x := 1; x < d.stage.Width(); x += 2 {
			pos := world.Vector{X: x, Y: y}
			if d.tileAt(pos) != world.Wall {
				continue
			}
			d.growMaze(pos)
		}
	}
}

func TestGrowMaze_FiveByFive(t *testing.T) {
	stage := world.NewStage(5, 5)
	d := New(stage, rand.New(rand.NewSource(1)), DefaultOptions())

	d.growMaze(world.Vector{X: 1, Y: 1})

	// The seed and every odd-lattice cell reachable from it is carved.
	for _, pos := range []world.Vector{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}} {
		if tile, _ := stage.Get(pos); tile != world.Floor {
			t.Errorf("lattice cell (%d,%d) = %v, want Floor", pos.X, pos.Y, tile)
		}
	}

	// The full border stays solid.
	stage.ForEachCell(func(pos world.Vector, tile world.Tile) {
		onBorder := pos.X == 0 || pos.X == 4 || pos.Y == 0 || pos.Y == 4
		if onBorder && tile != world.Wall {
			t.Errorf("border cell (%d,%d) = %v, want Wall", pos.X, pos.Y, tile)
		}
	})

	// The lattice corner between corridors is never carved.
	if tile, _ := stage.Get(world.Vector{X: 2, Y: 2}); tile != world.Wall {
		t.Errorf("even-even cell (2,2) = %v, want Wall", tile)
	}
}

func TestGrowMaze_StaysOnOddLattice(t *testing.T) {
	stage := world.NewStage(31, 21)
	d := New(stage, rand.New(rand.NewSource(3)), DefaultOptions())

	growAllMazes(d)

	stage.ForEachCell(func(pos world.Vector, tile world.Tile) {
		// Cells with both coordinates even sit between corridors and can
		// never be carved by the maze walk.
		if pos.X%2 == 0 && pos.Y%2 == 0 && tile != world.Wall {
			t.Errorf("even-even cell (%d,%d) = %v, want Wall", pos.X, pos.Y, tile)
		}
		// Odd-lattice cells are all seeds or reachable from one.
		if pos.X%2 == 1 && pos.Y%2 == 1 && tile != world.Floor {
			t.Errorf("odd-lattice cell (%d,%d) = %v, want Floor", pos.X, pos.Y, tile)
		}
	})
}

func TestGrowMaze_LinksAreTwoApart(t *testing.T) {
	stage := world.NewStage(31, 21)
	d := New(stage, rand.New(rand.NewSource(4)), DefaultOptions())

	growAllMazes(d)

	// Every carved even cell is a link between exactly two odd-lattice
	// cells that are two apart, so it has precisely two carved neighbors,
	// on opposite sides.
	stage.ForEachCell(func(pos world.Vector, tile world.Tile) {
		if tile != world.Floor || (pos.X%2 == 1 && pos.Y%2 == 1) {
			return
		}
		for _, dir := range []world.Direction{world.North, world.East} {
			ahead := d.tileAt(pos.Add(dir.Vector()))
			behind := d.tileAt(pos.Add(dir.Opposite().Vector()))
			if (ahead == world.Floor) != (behind == world.Floor) {
				t.Errorf("link cell (%d,%d) is not centered between two carved cells", pos.X, pos.Y)
			}
		}
	})
}

func TestGrowMaze_RegionsStaySeparated(t *testing.T) {
	// Two rooms can split the wall space into several maze regions; before
	// connection every region must still be sealed off from the others.
	stage := world.NewStage(31, 21)
	d := New(stage, rand.New(rand.NewSource(6)), DefaultOptions())

	d.addRooms()
	growAllMazes(d)

	for pos, region := range d.regions {
		for _, dir := range world.AllDirections() {
			neighbor := pos.Add(dir.Vector())
			other, carved := d.regions[neighbor]
			if carved && other != region {
				t.Fatalf("regions %d and %d touch at (%d,%d)-(%d,%d) before connection",
					region, other, pos.X, pos.Y, neighbor.X, neighbor.Y)
			}
		}
	}
}
