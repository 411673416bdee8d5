// Package diskgrid renders a dense disk-shaped grid of colored tiles —
// hundreds of thousands to a million tiles within a circle of configurable
// radius — at interactive frame rates using [Ebitengine].
//
// Tiles never move. The hard problem is spatial visibility and
// level-of-detail: from a viewport over a huge static point-like dataset,
// choose which tiles to draw and at what resolution, then submit them to the
// GPU in large instanced batches.
//
// # Quick start
//
//	cfg := diskgrid.DefaultGridConfig()
//	grid := diskgrid.GenerateDisk(cfg)
//	qt := diskgrid.BuildQuadtree(grid.Tiles, cfg.MaxDepth, cfg.MaxItems)
//	pyr := diskgrid.BuildPyramid(grid.Tiles, cfg.Levels, grid.TileSize)
//	sel := &diskgrid.Selector{Quadtree: qt, Pyramid: pyr}
//
//	cam := diskgrid.NewCamera(screenW, screenH)
//	// ... on input: cam.Pan(dx, dy) / cam.ApplyZoom(delta) / cam.Reset() ...
//
//	visible := sel.Select(cam.ViewBounds(), cam.Zoom)
//	renderer.Submit(screen, cam.ViewBounds(), visible)
//
// # Pipeline
//
// [GenerateDisk] produces the leaf tile set sized to a global tile-count
// budget. [BuildQuadtree] indexes tile centers for viewport range queries.
// [BuildPyramid] pre-merges the leaves into coarser levels. [Selector.Select]
// runs once per frame: it derives a base level of detail from zoom, queries
// the quadtree against the viewport, applies a distance-to-center falloff
// per candidate, and deduplicates by (level, cell) so exactly one tile is
// emitted per occupied cell. [Renderer.Submit] batches the result into
// instanced draw calls.
//
// See cmd/diskgrid-demo for a complete runnable example.
//
// [Ebitengine]: https://ebitengine.org
package diskgrid
