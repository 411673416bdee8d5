package diskgrid

import (
	"path/filepath"
	"testing"
)

func TestFileConfigRoundTrip(t *testing.T) {
	want := DefaultFileConfig()
	want.Radius = 123.5
	want.Budget = 4000
	want.Seed = 99

	dir := t.TempDir()
	path := filepath.Join(dir, "diskgrid.toml")

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if got != want {
		t.Errorf("LoadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadConfigFailsUnderMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "diskgrid.toml")
	// Loading a path whose parent doesn't exist should fail cleanly, not panic.
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error loading a config under a nonexistent directory")
	}
}

func TestLoadConfigDefaultsOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diskgrid.toml")

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	want := DefaultFileConfig()
	if got != want {
		t.Errorf("LoadConfig() on first run = %+v, want defaults %+v", got, want)
	}
}

func TestGridConfigConversionRoundTrip(t *testing.T) {
	fc := FileConfig{
		Radius: 75, Budget: 1000, BadRate: 0.02, Seed: 5,
		QuadtreeMaxDepth: 9, QuadtreeMaxItems: 12, PyramidLevels: 7, RendererBatchSize: 3000,
	}
	gc, batch := fc.GridConfig()
	if gc.Radius != fc.Radius || gc.Budget != fc.Budget || gc.BadRate != fc.BadRate || gc.Seed != fc.Seed {
		t.Errorf("GridConfig() = %+v, fields don't match FileConfig %+v", gc, fc)
	}
	if gc.MaxDepth != fc.QuadtreeMaxDepth || gc.MaxItems != fc.QuadtreeMaxItems || gc.Levels != fc.PyramidLevels {
		t.Errorf("GridConfig() quadtree/pyramid fields don't match: %+v", gc)
	}
	if batch != fc.RendererBatchSize {
		t.Errorf("batch = %d, want %d", batch, fc.RendererBatchSize)
	}
}
