package generator

import (
	"github.com/zyedidia/generic/mapset"

	"warrengen/pkg/engine/world"
)

// connector is a wall cell whose cardinal neighbors belong to two or more
// distinct regions, recorded with the pre-merge region indices it touches.
type connector struct {
	pos     world.Vector
	regions []int
}

// connectRegions merges every room and maze region into one connected whole
// by carving junctions at randomly chosen connectors. A small fraction of
// redundant connectors is carved as well so the dungeon keeps a few cycles.
func (d *Dungeon) connectRegions() {
	candidates := d.findConnectors()

	merged := newUnionFind(d.currRegion + 1)
	open := mapset.New[int]()
	for i := 0; i <= d.currRegion; i++ {
		open.Put(i)
	}

	for open.Size() > 1 && len(candidates) > 0 {
		chosen := candidates[d.rng.Intn(len(candidates))]

		d.addJunction(chosen.pos)

		// Merge everything the junction touches into one region. Union
		// keeps whichever representative has the larger set; the loser
		// leaves the open set.
		dest := merged.Find(chosen.regions[0])
		for _, region := range chosen.regions[1:] {
			source := merged.Find(region)
			if source == dest {
				continue
			}
			winner := merged.Union(dest, source)
			open.Remove(dest + source - winner)
			dest = winner
		}

		// Filter the remaining candidates: nothing adjacent to the chosen
		// junction, and nothing whose regions have collapsed into one —
		// except for the occasional extra connector carved for a cycle.
		kept := candidates[:0]
		for _, c := range candidates {
			if chosen.pos.Sub(c.pos).Abs() < 2 {
				continue
			}
			if spansRegions(merged, c.regions) {
				kept = append(kept, c)
				continue
			}
			if d.rng.Intn(d.opts.ExtraConnectorChance) == 0 {
				d.addJunction(c.pos)
			}
		}
		candidates = kept
	}
}

// findConnectors scans every interior wall cell for distinct carved regions
// among its cardinal neighbors.
func (d *Dungeon) findConnectors() []connector {
	var candidates []connector

	for y := 1; y < d.stage.Height()-1; y++ {
		for x := 1; x < d.stage.Width()-1; x++ {
			pos := world.Vector{X: x, Y: y}
			if d.tileAt(pos) != world.Wall {
				continue
			}

			var regions []int
			for _, dir := range world.AllDirections() {
				region, ok := d.regions[pos.Add(dir.Vector())]
				if ok && !containsRegion(regions, region) {
					regions = append(regions, region)
				}
			}

			if len(regions) < 2 {
				continue
			}

			candidates = append(candidates, connector{pos: pos, regions: regions})
		}
	}

	return candidates
}

// addJunction opens a connector cell. Most junctions become closed doors;
// a quarter open up fully, a third of those as open doors. The choice is
// traversal flavor only and does not affect connectivity.
func (d *Dungeon) addJunction(pos world.Vector) {
	if d.rng.Intn(4) == 0 {
		if d.rng.Intn(3) == 0 {
			d.stage.Set(pos, world.OpenDoor)
		} else {
			d.stage.Set(pos, world.Floor)
		}
	} else {
		d.stage.Set(pos, world.ClosedDoor)
	}
}

// spansRegions reports whether the connector's regions still resolve to more
// than one representative.
func spansRegions(merged *unionFind, regions []int) bool {
	first := merged.Find(regions[0])
	for _, region := range regions[1:] {
		if merged.Find(region) != first {
			return true
		}
	}
	return false
}

func containsRegion(regions []int, region int) bool {
	for _, r := range regions {
		if r == region {
			return true
		}
	}
	return false
}
