package diskgrid

import "math"

// Selector chooses, once per frame, exactly one tile per occupied cell at
// an appropriate level of detail: a zoom-derived base level combined with a
// per-candidate distance-to-center falloff (spec.md §4.4). It never blocks
// and never errors; an empty candidate list simply yields an empty frame
// (spec.md §7).
type Selector struct {
	Quadtree *Quadtree
	Pyramid  *Pyramid

	// ZMin and ZMax bound the zoom range used to derive the base level.
	// Default to DefaultZoomMin/DefaultZoomMax when both are zero.
	ZMin, ZMax float64

	// debug, when set via SetDebug, logs one line per frame with candidate
	// and emitted counts (spec.md §10.2 ambient logging).
	debug bool

	emitted map[cellCoord3]bool // reused across calls to avoid reallocating
}

// DefaultZoomMin and DefaultZoomMax are the spec's default zoom bounds.
const (
	DefaultZoomMin = 0.1
	DefaultZoomMax = 10.0
)

type cellCoord3 struct {
	level  int
	gx, gy int
}

// SetDebug enables per-frame selection logging to stderr.
func (s *Selector) SetDebug(enabled bool) { s.debug = enabled }

// Select runs the per-frame visibility pipeline: base level from zoom,
// quadtree range query against viewport, per-candidate LOD falloff,
// dedup-by-(level,cell) lookup into the pyramid. viewport is the visible
// world-space rectangle (X, Y, Width, Height), e.g. Camera.ViewBounds().
func (s *Selector) Select(viewport Rect, zoom float64) []Tile {
	if s.Quadtree == nil || s.Pyramid == nil {
		return nil
	}

	zMin, zMax := s.ZMin, s.ZMax
	if zMin == 0 && zMax == 0 {
		zMin, zMax = DefaultZoomMin, DefaultZoomMax
	}

	baseLevel := baseLevelForZoom(zoom, zMin, zMax, s.Pyramid.NumLevels())

	candidates := s.Quadtree.QueryRange(viewport)
	if len(candidates) == 0 {
		if s.debug {
			logDebugf("select: 0 candidates, 0 emitted (base level %d)", baseLevel)
		}
		return nil
	}

	cx, cy := viewport.Center()
	dWide := viewport.Width
	if viewport.Height > dWide {
		dWide = viewport.Height
	}

	if s.emitted == nil {
		s.emitted = make(map[cellCoord3]bool, len(candidates))
	} else {
		clear(s.emitted)
	}

	out := make([]Tile, 0, len(candidates))
	topLevel := s.Pyramid.TopLevel()

	for _, cand := range candidates {
		targetLevel := targetLevelFor(cand, cx, cy, dWide, baseLevel)
		side := s.Pyramid.SideAt(targetLevel)
		if side <= 0 {
			// spec.md §4.3 Failure: a missing level — fall through to the
			// next finer level that does have a size.
			for l := targetLevel + 1; l <= topLevel; l++ {
				if s.Pyramid.SideAt(l) > 0 {
					targetLevel = l
					side = s.Pyramid.SideAt(l)
					break
				}
			}
			if side <= 0 {
				continue
			}
		}
		gx, gy := cellKey(cand.X, cand.Y, side)
		key := cellCoord3{level: targetLevel, gx: gx, gy: gy}

		if s.emitted[key] {
			continue
		}

		if tile, ok := s.Pyramid.Lookup(targetLevel, gx, gy); ok {
			out = append(out, tile)
			s.emitted[key] = true
			continue
		}

		if targetLevel < topLevel {
			found := s.emitFromFinerLevels(targetLevel, gx, gy, &out)
			if found {
				continue
			}
		}

		// Not found at any level: emit the candidate tile itself, tagged
		// with the level it was selected at so callers inspecting
		// LevelIndex() see where it was placed rather than its
		// generation-time default.
		cand.level = targetLevel
		out = append(out, cand)
		s.emitted[key] = true
	}

	if s.debug {
		logDebugf("select: %d candidates, %d emitted (base level %d)", len(candidates), len(out), baseLevel)
	}

	return out
}

// emitFromFinerLevels searches upward (finer) one level at a time for tiles
// covering the sub-cells of (gx, gy) at targetLevel. At the first finer
// level with any match, every merged tile found there is emitted and the
// search stops (spec.md §4.4 step 4, case 2). This does not mark the
// original key as emitted — a later candidate landing on the same
// (targetLevel, gx, gy) key repeats the search.
func (s *Selector) emitFromFinerLevels(targetLevel, gx, gy int, out *[]Tile) bool {
	topLevel := s.Pyramid.TopLevel()
	for finer := targetLevel + 1; finer <= topLevel; finer++ {
		factor := 1 << uint(finer-targetLevel)
		baseGX, baseGY := gx*factor, gy*factor
		any := false
		for dx := 0; dx < factor; dx++ {
			for dy := 0; dy < factor; dy++ {
				sgx, sgy := baseGX+dx, baseGY+dy
				tile, ok := s.Pyramid.Lookup(finer, sgx, sgy)
				if !ok {
					continue
				}
				subKey := cellCoord3{level: finer, gx: sgx, gy: sgy}
				if s.emitted[subKey] {
					continue
				}
				*out = append(*out, tile)
				s.emitted[subKey] = true
				any = true
			}
		}
		if any {
			return true
		}
	}
	return false
}

// baseLevelForZoom computes base_ℓ per spec.md §4.4 step 1: more zoom means
// finer detail, with a sub-linear response so coarse levels dominate on
// zoom-out. Monotonic non-decreasing in z on [zMin, zMax] (spec.md §8
// property 7).
func baseLevelForZoom(zoom, zMin, zMax float64, numLevels int) int {
	if numLevels <= 0 {
		return 0
	}
	if zMax <= zMin {
		return numLevels - 1
	}
	z := clampF(zoom, zMin, zMax)
	u := (z - zMin) / (zMax - zMin)
	u = math.Pow(u, 0.8)
	level := int(math.Floor(u * float64(numLevels-1)))
	if level < 0 {
		level = 0
	}
	if level > numLevels-1 {
		level = numLevels - 1
	}
	return level
}

// targetLevelFor computes the per-candidate LOD level after distance
// falloff (spec.md §4.4 step 3).
func targetLevelFor(t Tile, cx, cy, dWide float64, baseLevel int) int {
	dx := t.X - cx
	dy := t.Y - cy
	d := math.Hypot(dx, dy)
	f := d / (0.8 * dWide)
	if f > 1 {
		f = 1
	}
	drop := int(math.Floor(2.5 * math.Pow(f, 1.5)))
	target := baseLevel - drop
	if target < 0 {
		target = 0
	}
	return target
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
