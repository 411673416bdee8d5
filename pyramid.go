package diskgrid

// DefaultLevels is the default LOD pyramid depth (spec.md §4.3).
const DefaultLevels = 6

// DefaultBaseTileSize is the default base tile size s_0 used to derive
// per-level cell sizes.
const DefaultBaseTileSize = 1.0

type cellCoord struct{ gx, gy int }

// Pyramid holds L levels of pre-merged tiles, indexed by level. Levels[L-1]
// is the leaf set. Built once; the selector tolerates a missing coarser
// level by falling through to the next finer one (spec.md §4.3).
type Pyramid struct {
	Levels    [][]Tile
	LevelSize []float64 // side length s_k for each level k

	index []map[cellCoord]int // per-level cell key -> index into Levels[k]
}

// BuildPyramid groups leaves into L levels of progressively coarser merged
// tiles. Level L-1 is the leaf set by reference order (an index into leaves
// is stable as an index into Levels[L-1]). For k < L-1, s_k = s0 *
// 2^(L-1-k), and each non-empty cell at level k merges the tiles of
// Levels[k+1] that fall in it, with color = componentwise mean (spec.md
// §4.3). baseSize should equal the leaf tiles' own side length (grid.go's
// Grid.TileSize) so the pyramid's lattice nests exactly over the leaf
// lattice with no gaps.
func BuildPyramid(leaves []Tile, levels int, baseSize float64) *Pyramid {
	if levels <= 0 {
		levels = DefaultLevels
	}
	if baseSize <= 0 {
		baseSize = DefaultBaseTileSize
	}

	p := &Pyramid{
		Levels:    make([][]Tile, levels),
		LevelSize: make([]float64, levels),
		index:     make([]map[cellCoord]int, levels),
	}

	topLevel := levels - 1
	p.LevelSize[topLevel] = baseSize
	p.Levels[topLevel] = make([]Tile, len(leaves))
	p.index[topLevel] = make(map[cellCoord]int, len(leaves))
	for i, t := range leaves {
		t.Level = KindLeaf
		t.level = topLevel
		p.Levels[topLevel][i] = t
		key := cellCoord{}
		key.gx, key.gy = cellKey(t.X, t.Y, baseSize)
		// Multiple leaves may share a base cell only if baseSize differs
		// from the generator's tile size; in the common case baseSize ==
		// grid.TileSize and each leaf owns its own cell, so the last write
		// here is also the only write.
		p.index[topLevel][key] = i
	}

	for k := topLevel - 1; k >= 0; k-- {
		sK := baseSize * pow2(topLevel-k)
		p.LevelSize[k] = sK

		groups := make(map[cellCoord][]int)
		var order []cellCoord
		for i, t := range p.Levels[k+1] {
			key := cellCoord{}
			key.gx, key.gy = cellKey(t.X, t.Y, sK)
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], i)
		}

		level := make([]Tile, 0, len(order))
		idx := make(map[cellCoord]int, len(order))
		for _, key := range order {
			idxs := groups[key]
			merged := mergeGroup(p.Levels[k+1], idxs, key, sK, k)
			idx[key] = len(level)
			level = append(level, merged)
		}
		p.Levels[k] = level
		p.index[k] = idx
	}

	return p
}

// mergeGroup builds a single merged tile from the tiles of the next-finer
// level found at idxs, all falling in cell key at side sK.
func mergeGroup(children []Tile, idxs []int, key cellCoord, sK float64, level int) Tile {
	var sr, sg, sb, sa float64
	var members []int
	anyBad := false

	for _, i := range idxs {
		c := children[i]
		sr += c.Color.R
		sg += c.Color.G
		sb += c.Color.B
		sa += c.Color.A
		if c.Bad {
			anyBad = true
		}
		if c.IsLeaf() {
			members = append(members, i)
		} else {
			members = append(members, c.Members...)
		}
	}

	n := float64(len(idxs))
	return Tile{
		X:       (float64(key.gx) + 0.5) * sK,
		Y:       (float64(key.gy) + 0.5) * sK,
		Side:    sK,
		Color:   Color{R: sr / n, G: sg / n, B: sb / n, A: sa / n},
		Bad:     anyBad,
		Level:   KindMerged,
		level:   level,
		Members: members,
	}
}

func pow2(n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= 2
	}
	return v
}

// Lookup returns the merged (or leaf) tile at LOD level and cell (gx, gy),
// if one exists.
func (p *Pyramid) Lookup(level, gx, gy int) (Tile, bool) {
	if level < 0 || level >= len(p.Levels) || p.index[level] == nil {
		return Tile{}, false
	}
	i, ok := p.index[level][cellCoord{gx, gy}]
	if !ok {
		return Tile{}, false
	}
	return p.Levels[level][i], true
}

// TopLevel returns L-1, the leaf level index.
func (p *Pyramid) TopLevel() int { return len(p.Levels) - 1 }

// NumLevels returns L, the number of LOD levels.
func (p *Pyramid) NumLevels() int { return len(p.Levels) }

// SideAt returns s_ℓ, the cell side length at the given level. Returns 0 if
// the level is out of range or was skipped under memory pressure (spec.md
// §4.3 "Failure").
func (p *Pyramid) SideAt(level int) float64 {
	if level < 0 || level >= len(p.LevelSize) {
		return 0
	}
	return p.LevelSize[level]
}
