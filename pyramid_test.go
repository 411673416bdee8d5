package diskgrid

import "testing"

func TestBuildPyramidLeafLevelMatchesInput(t *testing.T) {
	leaves := makeTestTiles()
	p := BuildPyramid(leaves, 4, 2)
	top := p.TopLevel()
	if len(p.Levels[top]) != len(leaves) {
		t.Fatalf("leaf level has %d tiles, want %d", len(p.Levels[top]), len(leaves))
	}
	for i, tile := range p.Levels[top] {
		if tile.X != leaves[i].X || tile.Y != leaves[i].Y {
			t.Fatalf("leaf %d position changed: got (%v,%v) want (%v,%v)", i, tile.X, tile.Y, leaves[i].X, leaves[i].Y)
		}
		if !tile.IsLeaf() {
			t.Errorf("leaf %d Level = merged, want leaf", i)
		}
	}
}

func TestBuildPyramidColorIsConvexCombination(t *testing.T) {
	leaves := []Tile{
		{X: 0.5, Y: 0.5, Side: 1, Color: Color{R: 1, G: 0, B: 0, A: 1}, Level: KindLeaf},
		{X: 1.5, Y: 0.5, Side: 1, Color: Color{R: 0, G: 1, B: 0, A: 1}, Level: KindLeaf},
		{X: 0.5, Y: 1.5, Side: 1, Color: Color{R: 0, G: 0, B: 1, A: 1}, Level: KindLeaf},
		{X: 1.5, Y: 1.5, Side: 1, Color: Color{R: 1, G: 1, B: 1, A: 1}, Level: KindLeaf},
	}
	p := BuildPyramid(leaves, 2, 1)
	merged, ok := p.Lookup(0, 0, 0)
	if !ok {
		t.Fatal("Lookup(0,0,0) not found")
	}
	if !approxEqual(merged.Color.R, 0.5, epsilon) || !approxEqual(merged.Color.G, 0.5, epsilon) || !approxEqual(merged.Color.B, 0.5, epsilon) {
		t.Errorf("merged color = %+v, want componentwise mean {0.5,0.5,0.5,1}", merged.Color)
	}
	if len(merged.Members) != 4 {
		t.Errorf("Members len = %d, want 4", len(merged.Members))
	}
}

func TestBuildPyramidBadPropagates(t *testing.T) {
	leaves := []Tile{
		{X: 0.5, Y: 0.5, Side: 1, Bad: true, Level: KindLeaf},
		{X: 1.5, Y: 0.5, Side: 1, Bad: false, Level: KindLeaf},
	}
	p := BuildPyramid(leaves, 2, 1)
	merged, ok := p.Lookup(0, 0, 0)
	if !ok {
		t.Fatal("Lookup(0,0,0) not found")
	}
	if !merged.Bad {
		t.Error("merged.Bad = false, want true (any constituent bad)")
	}
}

func TestBuildPyramidMembersFlattenAcrossLevels(t *testing.T) {
	var leaves []Tile
	for gy := 0; gy < 4; gy++ {
		for gx := 0; gx < 4; gx++ {
			leaves = append(leaves, Tile{X: (float64(gx) + 0.5), Y: (float64(gy) + 0.5), Side: 1, Level: KindLeaf})
		}
	}
	p := BuildPyramid(leaves, 3, 1)
	top, ok := p.Lookup(0, 0, 0)
	if !ok {
		t.Fatal("Lookup(0,0,0) at coarsest level not found")
	}
	if len(top.Members) != len(leaves) {
		t.Fatalf("top-level Members = %d, want %d (all leaves flattened)", len(top.Members), len(leaves))
	}
	seen := make(map[int]bool)
	for _, idx := range top.Members {
		if idx < 0 || idx >= len(leaves) {
			t.Fatalf("member index %d out of range", idx)
		}
		seen[idx] = true
	}
	if len(seen) != len(leaves) {
		t.Errorf("Members has duplicates: %d unique of %d", len(seen), len(leaves))
	}
}

func TestPyramidSideAtDoublesPerCoarserLevel(t *testing.T) {
	p := BuildPyramid(makeTestTiles(), 4, 2)
	top := p.TopLevel()
	for l := top - 1; l >= 0; l-- {
		if !approxEqual(p.SideAt(l), p.SideAt(l+1)*2, epsilon) {
			t.Errorf("SideAt(%d) = %v, want 2x SideAt(%d) = %v", l, p.SideAt(l), l+1, p.SideAt(l+1)*2)
		}
	}
}

func TestPyramidMergedCellKeyConsistency(t *testing.T) {
	// A merged tile's own center must recompute, at its own level's cell
	// size, to the same grouping key that produced it (spec.md §9 OQ3).
	p := BuildPyramid(makeTestTiles(), 4, 2)
	for level := 0; level < p.TopLevel(); level++ {
		side := p.SideAt(level)
		for _, tile := range p.Levels[level] {
			gx, gy := cellKey(tile.X, tile.Y, side)
			got, ok := p.Lookup(level, gx, gy)
			if !ok || got.X != tile.X || got.Y != tile.Y {
				t.Fatalf("level %d: tile at (%v,%v) does not round-trip through its own cell key (%d,%d)", level, tile.X, tile.Y, gx, gy)
			}
		}
	}
}

func TestPyramidSideAtOutOfRange(t *testing.T) {
	p := BuildPyramid(makeTestTiles(), 4, 2)
	if p.SideAt(-1) != 0 || p.SideAt(p.NumLevels()) != 0 {
		t.Error("SideAt out of range should return 0")
	}
}
