package diskgrid

import (
	"math"
	"math/rand"
)

// DefaultRadius, DefaultBudget, and DefaultBadRate are the spec's default
// disk-grid parameters (spec.md §4.1).
const (
	DefaultRadius  = 500.0
	DefaultBudget  = 900000
	DefaultBadRate = 0.005
)

// GridConfig parameterizes the grid generator. Zero-value R/B are clamped
// to safe minimums rather than treated as errors (spec.md §4.1/§7): this
// component never returns an error.
type GridConfig struct {
	Radius  float64 // R > 0, disk radius
	Budget  int     // B > 0, target maximum tile count
	BadRate float64 // ρ ∈ [0,1], bad-data Bernoulli rate

	// Seed, when non-zero, makes generation deterministic. Zero means use
	// an unseeded (non-deterministic) source, per spec.md §4.1's guarantee
	// that a PRNG seed, if used, is the only source of randomness.
	Seed int64

	MaxDepth int // quadtree maxDepth
	MaxItems int // quadtree maxItems
	Levels   int // LOD pyramid level count L
}

// DefaultGridConfig returns the spec's default parameters.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Radius:   DefaultRadius,
		Budget:   DefaultBudget,
		BadRate:  DefaultBadRate,
		MaxDepth: DefaultMaxDepth,
		MaxItems: DefaultMaxItems,
		Levels:   DefaultLevels,
	}
}

// Grid is the result of disk generation: the leaf tiles, the tile side
// length chosen to meet the budget, and the radius actually used (after
// clamping).
type Grid struct {
	Tiles    []Tile
	TileSize float64
	Radius   float64
}

// GenerateDisk produces the leaf tile set for a circular grid of radius
// cfg.Radius, sized so the cell count does not exceed cfg.Budget
// (spec.md §4.1). Invalid configuration is clamped, never rejected:
// R := max(R, 1), B := max(B, 1).
func GenerateDisk(cfg GridConfig) Grid {
	r := cfg.Radius
	if r <= 0 {
		r = 1
	}
	b := cfg.Budget
	if b <= 0 {
		b = 1
	}
	rho := cfg.BadRate
	if rho < 0 {
		rho = 0
	} else if rho > 1 {
		rho = 1
	}

	side := math.Max(1.0, math.Sqrt(math.Pi*r*r/float64(b)))

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	half := int(math.Ceil(r / side))
	tiles := make([]Tile, 0, b+b/5)

	for gy := -half; gy < half; gy++ {
		cy := (float64(gy) + 0.5) * side
		for gx := -half; gx < half; gx++ {
			cx := (float64(gx) + 0.5) * side
			d := math.Hypot(cx, cy)
			if d > r {
				continue
			}

			bad := rng.Float64() < rho
			col := ColorWhite
			if bad {
				col = ColorRed
			}

			theta := math.Atan2(cy, cx)
			theta = (theta + math.Pi) / (2 * math.Pi)

			tiles = append(tiles, Tile{
				X:     cx,
				Y:     cy,
				Side:  side,
				Color: col,
				DistR: d / r,
				Theta: theta,
				Bad:   bad,
				Level: KindLeaf,
			})
		}
	}

	return Grid{Tiles: tiles, TileSize: side, Radius: r}
}
