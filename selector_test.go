package diskgrid

import "testing"

func buildTestSelector(radius float64, budget int) (*Selector, Grid) {
	grid := GenerateDisk(GridConfig{Radius: radius, Budget: budget, Seed: 11})
	qt := BuildQuadtree(grid.Tiles, DefaultMaxDepth, DefaultMaxItems)
	pyr := BuildPyramid(grid.Tiles, DefaultLevels, grid.TileSize)
	return &Selector{Quadtree: qt, Pyramid: pyr}, grid
}

func TestSelectorEmptyWithoutIndexes(t *testing.T) {
	sel := &Selector{}
	got := sel.Select(Rect{X: -10, Y: -10, Width: 20, Height: 20}, 1)
	if got != nil {
		t.Errorf("Select with nil Quadtree/Pyramid = %v, want nil", got)
	}
}

func TestSelectorDedupByCell(t *testing.T) {
	sel, grid := buildTestSelector(200, 50000)
	viewport := Rect{X: -grid.Radius, Y: -grid.Radius, Width: 2 * grid.Radius, Height: 2 * grid.Radius}
	visible := sel.Select(viewport, 1.0)

	seen := make(map[cellCoord3]bool)
	for _, tile := range visible {
		side := sel.Pyramid.SideAt(tile.LevelIndex())
		gx, gy := cellKey(tile.X, tile.Y, side)
		key := cellCoord3{level: tile.LevelIndex(), gx: gx, gy: gy}
		if seen[key] {
			t.Fatalf("duplicate emission for (level=%d, cell=%d,%d)", key.level, key.gx, key.gy)
		}
		seen[key] = true
	}
}

func TestSelectorBaseLevelMonotonicInZoom(t *testing.T) {
	numLevels := DefaultLevels
	prev := -1
	for z := DefaultZoomMin; z <= DefaultZoomMax; z += 0.25 {
		level := baseLevelForZoom(z, DefaultZoomMin, DefaultZoomMax, numLevels)
		if level < prev {
			t.Fatalf("base level decreased at zoom %v: %d < %d", z, level, prev)
		}
		prev = level
	}
}

func TestSelectorCoarserAtZoomOut(t *testing.T) {
	sel, grid := buildTestSelector(300, 200000)
	viewport := Rect{X: -grid.Radius, Y: -grid.Radius, Width: 2 * grid.Radius, Height: 2 * grid.Radius}

	zoomedOut := sel.Select(viewport, DefaultZoomMin)
	zoomedIn := sel.Select(viewport, DefaultZoomMax)

	if len(zoomedOut) == 0 || len(zoomedIn) == 0 {
		t.Fatal("expected non-empty selection at both zoom extremes")
	}
	if len(zoomedOut) >= len(zoomedIn) {
		t.Errorf("zoomed-out selection (%d tiles) should be coarser (fewer tiles) than zoomed-in (%d tiles)", len(zoomedOut), len(zoomedIn))
	}
}

func TestSelectorReturnsNothingOutsideQuadtreeBounds(t *testing.T) {
	sel, _ := buildTestSelector(50, 5000)
	got := sel.Select(Rect{X: 1e6, Y: 1e6, Width: 1, Height: 1}, 1)
	if len(got) != 0 {
		t.Errorf("Select far outside data = %d tiles, want 0", len(got))
	}
}
