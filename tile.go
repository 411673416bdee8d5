package diskgrid

// Kind distinguishes a leaf (generator-produced) tile from a merged
// (pyramid-produced) summary tile. Replaces the runtime-polymorphic tile
// records the source used with a single tagged variant, per the REDESIGN
// FLAGS in spec.md §9.
type Kind uint8

const (
	KindLeaf   Kind = iota // an original tile emitted by the grid generator
	KindMerged             // a summary tile produced by the LOD pyramid builder
)

// Tile is an immutable record describing one drawable square. Leaf tiles
// carry no Members; merged tiles carry the indices of the leaf tiles (into
// the generator's leaf slice) they summarize, so cyclic back-references
// never exist and the leaf data stays contiguous for cache-friendly mean
// computation.
type Tile struct {
	X, Y  float64 // world-space center
	Side  float64 // side length, > 0
	Color Color

	// DistR and Theta are the normalized radial distance and angle computed
	// at generation time. Per spec.md §9 Open Questions, nothing downstream
	// reads them after build — they are kept only because the generator
	// computes them as part of placing each tile, not because any component
	// consumes them.
	DistR float64 // normalized radial distance, |position|/R, in [0,1]
	Theta float64 // normalized angle, (atan2(y,x)+π)/2π, in [0,1)

	Bad bool // true if this tile (or, for merged tiles, any constituent) was flagged bad-data

	Level Kind // KindLeaf for level L-1, else KindMerged — see level field below
	level int  // the LOD level index this tile belongs to, ℓ ∈ [0, L)

	// Members holds indices into the generator's leaf slice for a merged
	// tile's constituents. Nil for leaf tiles.
	Members []int
}

// LevelIndex returns the LOD level ℓ ∈ [0, L) this tile belongs to.
func (t Tile) LevelIndex() int { return t.level }

// IsLeaf reports whether this is an original (non-merged) tile.
func (t Tile) IsLeaf() bool { return t.Level == KindLeaf }

// Bounds returns the tile's axis-aligned bounding square, centered on
// (X, Y) with side Side.
func (t Tile) Bounds() Rect {
	half := t.Side / 2
	return Rect{X: t.X - half, Y: t.Y - half, Width: t.Side, Height: t.Side}
}

// cellKey returns the integer lattice coordinate (⌊x/s⌋, ⌊y/s⌋) for a point
// at the given level's cell side length, used to identify a region at a
// given LOD level (spec.md GLOSSARY: "Cell key").
func cellKey(x, y, side float64) (int, int) {
	return ifloor(x / side), ifloor(y / side)
}

func ifloor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}
