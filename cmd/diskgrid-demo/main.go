// Command diskgrid-demo renders a disk-shaped tile grid in a resizable
// window with mouse-drag panning, scroll-wheel zoom, and a reset key.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/diskgrid"
)

const (
	windowTitle  = "diskgrid — disk tile grid demo"
	screenW      = 1280
	screenH      = 720
	clearR       = 0.08
	clearG       = 0.08
	clearB       = 0.1
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (created with defaults if missing)")
	debug := flag.Bool("debug", false, "log per-frame selector stats to stderr")
	flag.Parse()

	gridCfg, batchSize := loadOrDefaultConfig(*configPath)

	grid := diskgrid.GenerateDisk(gridCfg)
	log.Printf("generated %d leaf tiles (side %.4f, radius %.1f)", len(grid.Tiles), grid.TileSize, grid.Radius)

	qt := diskgrid.BuildQuadtree(grid.Tiles, gridCfg.MaxDepth, gridCfg.MaxItems)
	pyr := diskgrid.BuildPyramid(grid.Tiles, gridCfg.Levels, grid.TileSize)

	sel := &diskgrid.Selector{Quadtree: qt, Pyramid: pyr}
	sel.SetDebug(*debug)

	cam := diskgrid.NewCamera(screenW, screenH)
	cam.Zoom = 1.0

	rnd := diskgrid.NewRenderer()
	if batchSize > 0 {
		rnd.BatchSize = batchSize
	}

	g := &game{sel: sel, cam: cam, rnd: rnd, w: screenW, h: screenH}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadOrDefaultConfig(path string) (diskgrid.GridConfig, int) {
	if path == "" {
		return diskgrid.DefaultGridConfig(), diskgrid.DefaultBatchSize
	}
	fc, err := diskgrid.LoadConfig(path)
	if err != nil {
		log.Printf("config load failed, using defaults: %v", err)
		return diskgrid.DefaultGridConfig(), diskgrid.DefaultBatchSize
	}
	return fc.GridConfig()
}

// game implements ebiten.Game by driving the camera from mouse/keyboard
// input and running Selector.Select + Renderer.Submit once per frame,
// mirroring the teacher's gameShell (scene.go) without a scene graph.
type game struct {
	sel *diskgrid.Selector
	cam *diskgrid.Camera
	rnd *diskgrid.Renderer

	w, h int

	dragging     bool
	lastMouseX   int
	lastMouseY   int
	visibleCount int
}

func (g *game) Update() error {
	mx, my := ebiten.CursorPosition()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.cam.Pan(g.lastMouseX-mx, g.lastMouseY-my)
		}
		g.dragging = true
		g.lastMouseX, g.lastMouseY = mx, my
	} else {
		g.dragging = false
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.cam.ApplyZoom(dy * 0.5)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cam.Reset()
	}

	g.cam.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor())

	visible := g.sel.Select(g.cam.ViewBounds(), g.cam.Zoom)
	g.visibleCount = len(visible)
	g.rnd.Submit(screen, g.cam.ViewBounds(), visible)

	msg := fmt.Sprintf("zoom %.2f | tiles drawn %d | drag to pan, wheel to zoom, R to reset", g.cam.Zoom, g.visibleCount)
	ebitenutil.DebugPrintAt(screen, msg, 4, g.h-16)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.cam.SetViewport(outsideWidth, outsideHeight)
		g.rnd.Resized = true
	}
	return g.w, g.h
}

func clearColor() ebitenColor {
	return ebitenColor{R: clearR, G: clearG, B: clearB, A: 1}
}

// ebitenColor adapts a diskgrid.Color-shaped literal to image/color's
// color.Color interface for screen.Fill.
type ebitenColor struct {
	R, G, B, A float64
}

func (c ebitenColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.R * 0xffff), uint32(c.G * 0xffff), uint32(c.B * 0xffff), uint32(c.A * 0xffff)
}
