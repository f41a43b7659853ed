package world

import "testing"

func TestNewStage_AllWall(t *testing.T) {
	stage := NewStage(7, 5)
	if stage.Width() != 7 || stage.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, want 7x5", stage.Width(), stage.Height())
	}
	stage.ForEachCell(func(pos Vector, tile Tile) {
		if tile != Wall {
			t.Errorf("fresh stage has %v at (%d,%d), want Wall", tile, pos.X, pos.Y)
		}
	})
}

func TestStage_GetSetRoundTrip(t *testing.T) {
	stage := NewStage(5, 5)
	pos := Vector{X: 2, Y: 3}
	stage.Set(pos, Floor)
	tile, ok := stage.Get(pos)
	if !ok {
		t.Fatalf("Get(%v) reported out of bounds", pos)
	}
	if tile != Floor {
		t.Errorf("Get(%v) = %v, want Floor", pos, tile)
	}
}

func TestStage_OutOfBoundsReadsReportAbsence(t *testing.T) {
	stage := NewStage(5, 5)
	outside := []Vector{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 5, Y: 0},
		{X: 0, Y: 5},
		// In bounds by raw index arithmetic but out of range on x.
		{X: 6, Y: 1},
	}
	for _, pos := range outside {
		if stage.Contains(pos) {
			t.Errorf("Contains(%v) = true, want false", pos)
		}
		if _, ok := stage.Get(pos); ok {
			t.Errorf("Get(%v) reported in bounds", pos)
		}
	}
}

func TestStage_OutOfBoundsWritesAreNoOps(t *testing.T) {
	stage := NewStage(3, 3)
	stage.Set(Vector{X: 3, Y: 0}, Floor)
	stage.Set(Vector{X: -1, Y: 2}, Floor)
	stage.ForEachCell(func(pos Vector, tile Tile) {
		if tile != Wall {
			t.Errorf("out-of-bounds write landed at (%d,%d)", pos.X, pos.Y)
		}
	})
}
