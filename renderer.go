package diskgrid

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultBatchSize is the renderer's default tile count per DrawTriangles
// call (spec.md §6 "Renderer contract": "batches of up to B_batch (default
// 2000-20000)").
const DefaultBatchSize = 8000

// maxTilesPerDraw bounds a single draw call by the uint16 index buffer:
// 65535 / 4 vertices per tile = 16383 (spec.md GLOSSARY "Batch").
const maxTilesPerDraw = 16383

// Renderer submits a Selector's output as instanced-style quad batches. It
// owns no scene graph: each call to Submit walks the flat tile slice once,
// building vertex/index buffers and issuing DrawTriangles calls at the
// configured batch boundary (spec.md §6).
type Renderer struct {
	// BatchSize is the number of tiles per draw call, clamped to
	// [1, maxTilesPerDraw]. Zero selects DefaultBatchSize.
	BatchSize int

	// Resized and BackendLost are flags for the host to set (the demo sets
	// Resized from ebiten's Layout). No code in this package reads either
	// flag: Submit and Selector.Select run regardless of their values.
	Resized     bool
	BackendLost bool

	white   *ebiten.Image
	verts   []ebiten.Vertex
	indices []uint16
}

// NewRenderer creates a Renderer backed by a single opaque white pixel; tile
// color comes entirely from per-vertex color scale, so no texture atlas is
// needed (spec.md Non-goals: "no texturing").
func NewRenderer() *Renderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Renderer{white: white, BatchSize: DefaultBatchSize}
}

// batchSize returns the effective, clamped batch size.
func (r *Renderer) batchSize() int {
	n := r.BatchSize
	if n <= 0 {
		n = DefaultBatchSize
	}
	if n > maxTilesPerDraw {
		n = maxTilesPerDraw
	}
	return n
}

// Submit draws tiles (as produced by Selector.Select) onto screen, mapping
// world coordinates to screen pixels via viewport — the camera's current
// ViewBounds(). Tiles are split into batches of batchSize() tiles (at most
// maxTilesPerDraw), one DrawTriangles call each; order within a batch does not matter since
// tiles never overlap (spec.md §4.1 "lattice of non-overlapping squares").
func (r *Renderer) Submit(screen *ebiten.Image, viewport Rect, tiles []Tile) {
	if len(tiles) == 0 || viewport.Width <= 0 || viewport.Height <= 0 {
		return
	}
	bounds := screen.Bounds()
	screenW, screenH := float32(bounds.Dx()), float32(bounds.Dy())
	if screenW <= 0 || screenH <= 0 {
		return
	}

	sx := screenW / float32(viewport.Width)
	sy := screenH / float32(viewport.Height)
	ox := float32(viewport.X)
	oy := float32(viewport.Y)

	batch := r.batchSize()
	for offset := 0; offset < len(tiles); offset += batch {
		end := offset + batch
		if end > len(tiles) {
			end = len(tiles)
		}
		r.submitBatch(screen, tiles[offset:end], ox, oy, sx, sy, screenH)
	}
}

func (r *Renderer) submitBatch(screen *ebiten.Image, tiles []Tile, ox, oy, sx, sy, screenH float32) {
	n := len(tiles)
	if cap(r.verts) < n*4 {
		r.verts = make([]ebiten.Vertex, n*4)
		r.indices = make([]uint16, n*6)
		for i := 0; i < n; i++ {
			base := uint16(i * 4)
			off := i * 6
			r.indices[off+0] = base + 0
			r.indices[off+1] = base + 1
			r.indices[off+2] = base + 2
			r.indices[off+3] = base + 1
			r.indices[off+4] = base + 3
			r.indices[off+5] = base + 2
		}
	}
	verts := r.verts[:n*4]
	indices := r.indices[:n*6]

	for i, t := range tiles {
		cr, cg, cb, ca := t.Color.toRGBA()
		cr, cg, cb = cr*ca, cg*ca, cb*ca
		half := float32(t.Side / 2)
		wx, wy := float32(t.X), float32(t.Y)

		left := (wx - half - ox) * sx
		right := (wx + half - ox) * sx
		top := screenH - (wy+half-oy)*sy
		bottom := screenH - (wy-half-oy)*sy

		vi := i * 4
		verts[vi+0] = ebiten.Vertex{DstX: left, DstY: top, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca}
		verts[vi+1] = ebiten.Vertex{DstX: right, DstY: top, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca}
		verts[vi+2] = ebiten.Vertex{DstX: left, DstY: bottom, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca}
		verts[vi+3] = ebiten.Vertex{DstX: right, DstY: bottom, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca}
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = BlendNormal.EbitenBlend()
	screen.DrawTriangles(verts, indices, r.white, &op)
}
