package diskgrid

// DefaultMaxDepth and DefaultMaxItems are the quadtree's default
// subdivision parameters (spec.md §3 DATA MODEL).
const (
	DefaultMaxDepth = 8
	DefaultMaxItems = 10
)

// quadBounds is a node's axis-aligned bounds, stored as center + full
// width/height. Bounds are half-open in x (x ∈ [cx-w/2, cx+w/2)) and
// symmetric in y, so a point exactly on a shared boundary always maps to
// exactly one child (spec.md §4.2: "a point exactly on the boundary
// belongs to the higher-coordinate child").
type quadBounds struct {
	cx, cy float64
	w, h   float64
}

func (b quadBounds) rect() Rect {
	return Rect{X: b.cx - b.w/2, Y: b.cy - b.h/2, Width: b.w, Height: b.h}
}

func (b quadBounds) intersectsRect(r Rect) bool {
	return b.rect().Intersects(r)
}

// containsCenter reports whether the point (x, y) belongs to this node by
// the half-open/center-point rule.
func (b quadBounds) containsCenter(x, y float64) bool {
	return x >= b.cx-b.w/2 && x < b.cx+b.w/2 &&
		y >= b.cy-b.h/2 && y < b.cy+b.h/2
}

// quadItem is a tile held in a node's bucket (a copy of the Tile value).
type quadItem struct {
	tile Tile
}

// quadNode is one node of the region quadtree. Children is nil until the
// node subdivides.
type quadNode struct {
	bounds   quadBounds
	depth    int
	items    []quadItem
	children [4]*quadNode // NW, NE, SW, SE; nil until subdivided
}

// Quadtree is a bounded-depth region quadtree over tile centers, built once
// at startup and never mutated afterward (spec.md §3: "Lifecycle: built
// once at startup, never mutated").
type Quadtree struct {
	root     *quadNode
	maxDepth int
	maxItems int
	count    int
	maxHalf  float64 // largest half-side of any inserted tile
}

// BuildQuadtree indexes tiles by center point. maxDepth and maxItems
// default to DefaultMaxDepth/DefaultMaxItems when <= 0.
func BuildQuadtree(tiles []Tile, maxDepth, maxItems int) *Quadtree {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	bounds := rootBoundsFor(tiles)
	qt := &Quadtree{
		root:     &quadNode{bounds: bounds, depth: 0},
		maxDepth: maxDepth,
		maxItems: maxItems,
	}
	for _, t := range tiles {
		qt.Insert(t)
	}
	return qt
}

// rootBoundsFor computes a square root bounds large enough to contain every
// tile center, with a small margin so edge tiles aren't exactly on the
// boundary.
func rootBoundsFor(tiles []Tile) quadBounds {
	if len(tiles) == 0 {
		return quadBounds{cx: 0, cy: 0, w: 2, h: 2}
	}
	minX, maxX := tiles[0].X, tiles[0].X
	minY, maxY := tiles[0].Y, tiles[0].Y
	for _, t := range tiles {
		if t.X < minX {
			minX = t.X
		}
		if t.X > maxX {
			maxX = t.X
		}
		if t.Y < minY {
			minY = t.Y
		}
		if t.Y > maxY {
			maxY = t.Y
		}
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	half := maxF(maxX-minX, maxY-minY)/2 + 1
	if half <= 0 {
		half = 1
	}
	return quadBounds{cx: cx, cy: cy, w: half * 2.0001, h: half * 2.0001}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Insert places a tile in the unique leaf node whose bounds contain its
// center. If the node it lands in overflows maxItems and hasn't reached
// maxDepth, the node subdivides and redistributes its held items by the
// same center-point rule.
func (qt *Quadtree) Insert(t Tile) {
	qt.count++
	if h := t.Side / 2; h > qt.maxHalf {
		qt.maxHalf = h
	}
	insertInto(qt.root, t, qt.maxDepth, qt.maxItems)
}

func insertInto(n *quadNode, t Tile, maxDepth, maxItems int) {
	if n.children[0] != nil {
		insertInto(childFor(n, t.X, t.Y), t, maxDepth, maxItems)
		return
	}

	n.items = append(n.items, quadItem{tile: t})

	if len(n.items) > maxItems && n.depth < maxDepth {
		subdivide(n)
		held := n.items
		n.items = nil
		for _, it := range held {
			insertInto(childFor(n, it.tile.X, it.tile.Y), it.tile, maxDepth, maxItems)
		}
	}
}

// childFor returns the child node owning the point (x, y), by the
// center-point rule: there is always exactly one owning child, even when
// the tile's own bounding square straddles a child boundary (spec.md §3:
// "the rule is by center-point, so there is always exactly one owning
// child").
func childFor(n *quadNode, x, y float64) *quadNode {
	for _, c := range n.children {
		if c.bounds.containsCenter(x, y) {
			return c
		}
	}
	// Numerical edge case: point lies exactly on the outer bounds and no
	// child's half-open range claims it (e.g. beyond float precision at the
	// max edge). Fall back to the nearest child by center distance.
	best := n.children[0]
	bestD := -1.0
	for _, c := range n.children {
		dx := x - c.bounds.cx
		dy := y - c.bounds.cy
		d := dx*dx + dy*dy
		if bestD < 0 || d < bestD {
			bestD = d
			best = c
		}
	}
	return best
}

// subdivide creates four children of half dimensions. Children index order
// is NW, NE, SW, SE.
func subdivide(n *quadNode) {
	hw := n.bounds.w / 2
	hh := n.bounds.h / 2
	qw := hw / 2
	qh := hh / 2
	cx, cy := n.bounds.cx, n.bounds.cy
	depth := n.depth + 1

	n.children[0] = &quadNode{bounds: quadBounds{cx: cx - qw, cy: cy - qh, w: hw, h: hh}, depth: depth} // NW
	n.children[1] = &quadNode{bounds: quadBounds{cx: cx + qw, cy: cy - qh, w: hw, h: hh}, depth: depth} // NE
	n.children[2] = &quadNode{bounds: quadBounds{cx: cx - qw, cy: cy + qh, w: hw, h: hh}, depth: depth} // SW
	n.children[3] = &quadNode{bounds: quadBounds{cx: cx + qw, cy: cy + qh, w: hw, h: hh}, depth: depth} // SE
}

// QueryRange returns all tiles whose axis-aligned bounding square
// intersects rect. Recursion prunes nodes whose bounds don't intersect
// rect grown by the largest inserted tile half-side (a tile's bounding
// square can overhang the node that holds its center), then collects
// bucket items whose own bounding square intersects rect, then descends
// into every existing child — a tile held at a parent can still intersect
// multiple children's regions (spec.md §4.2).
func (qt *Quadtree) QueryRange(rect Rect) []Tile {
	var out []Tile
	h := qt.maxHalf
	grown := Rect{X: rect.X - h, Y: rect.Y - h, Width: rect.Width + 2*h, Height: rect.Height + 2*h}
	queryRange(qt.root, rect, grown, &out)
	return out
}

func queryRange(n *quadNode, rect, grown Rect, out *[]Tile) {
	if n == nil || !n.bounds.intersectsRect(grown) {
		return
	}
	for _, it := range n.items {
		if it.tile.Bounds().Intersects(rect) {
			*out = append(*out, it.tile)
		}
	}
	for _, c := range n.children {
		queryRange(c, rect, grown, out)
	}
}

// QueryPoint returns all tiles whose bounding square contains (x, y).
func (qt *Quadtree) QueryPoint(x, y float64) []Tile {
	var out []Tile
	h := qt.maxHalf
	pr := Rect{X: x - h, Y: y - h, Width: 2 * h, Height: 2 * h}
	queryPoint(qt.root, x, y, pr, &out)
	return out
}

func queryPoint(n *quadNode, x, y float64, pr Rect, out *[]Tile) {
	if n == nil || !n.bounds.intersectsRect(pr) {
		return
	}
	for _, it := range n.items {
		if it.tile.Bounds().Contains(x, y) {
			*out = append(*out, it.tile)
		}
	}
	for _, c := range n.children {
		queryPoint(c, x, y, pr, out)
	}
}

// Count returns the number of tiles inserted into the tree.
func (qt *Quadtree) Count() int { return qt.count }
