package diskgrid

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the on-disk representation of a GridConfig plus the
// renderer's batch size knob, loaded and saved as TOML (spec.md §10.1).
// Field names are capitalized to match BurntSushi/toml's default key
// mapping, mirroring the teacher pack's noisetorch config.go convention.
type FileConfig struct {
	Radius            float64
	Budget            int
	BadRate           float64
	Seed              int64
	QuadtreeMaxDepth  int
	QuadtreeMaxItems  int
	PyramidLevels     int
	RendererBatchSize int
}

// fileConfigFromGrid converts a GridConfig and batch size into their file
// representation.
func fileConfigFromGrid(cfg GridConfig, batchSize int) FileConfig {
	return FileConfig{
		Radius:            cfg.Radius,
		Budget:            cfg.Budget,
		BadRate:           cfg.BadRate,
		Seed:              cfg.Seed,
		QuadtreeMaxDepth:  cfg.MaxDepth,
		QuadtreeMaxItems:  cfg.MaxItems,
		PyramidLevels:     cfg.Levels,
		RendererBatchSize: batchSize,
	}
}

// GridConfig converts the file representation back into a GridConfig and
// renderer batch size. Out-of-range values are clamped by GenerateDisk,
// BuildQuadtree, and BuildPyramid themselves — this conversion never
// rejects a value (spec.md §7 "Configuration errors ... silently clamped").
func (f FileConfig) GridConfig() (GridConfig, int) {
	return GridConfig{
		Radius:   f.Radius,
		Budget:   f.Budget,
		BadRate:  f.BadRate,
		Seed:     f.Seed,
		MaxDepth: f.QuadtreeMaxDepth,
		MaxItems: f.QuadtreeMaxItems,
		Levels:   f.PyramidLevels,
	}, f.RendererBatchSize
}

// DefaultFileConfig returns the spec's default parameters in file form.
func DefaultFileConfig() FileConfig {
	return fileConfigFromGrid(DefaultGridConfig(), DefaultBatchSize)
}

// LoadConfig reads a TOML config file at path. If the file does not exist,
// it is created with DefaultFileConfig's values first, matching the
// teacher pack's "initialize if not present, then read" flow.
func LoadConfig(path string) (FileConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if werr := SaveConfig(path, DefaultFileConfig()); werr != nil {
			return FileConfig{}, fmt.Errorf("diskgrid: initializing config at %s: %w", path, werr)
		}
	}

	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("diskgrid: reading config at %s: %w", path, err)
	}
	return fc, nil
}

// SaveConfig writes fc to path as TOML.
func SaveConfig(path string, fc FileConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&fc); err != nil {
		return fmt.Errorf("diskgrid: encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("diskgrid: writing config at %s: %w", path, err)
	}
	return nil
}
