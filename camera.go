package diskgrid

import "math"

// LPan is the world-space bound each position axis is clamped to
// (spec.md §5 "Camera input contract").
const LPan = 10000.0

// DefaultPanSpeed and DefaultSmoothAlpha are the spec's defaults for pan
// translation speed (c) and per-frame position smoothing (α).
const (
	DefaultPanSpeed   = 0.25
	DefaultSmoothAlpha = 0.2
)

// Camera holds position, zoom, viewport aspect, and the derived projection
// matrix. It is mutated by input events and consumed read-only by the
// selector and renderer (spec.md §3 "Camera").
//
// X, Y is the rendered position P; TargetX, TargetY is the input target P*.
// Each call to Update moves P toward P* by SmoothAlpha (spec.md §9 "Smooth
// pan via per-event timers").
type Camera struct {
	X, Y             float64
	TargetX, TargetY float64
	Zoom             float64

	Aspect float64 // viewport width / height

	ZMin, ZMax float64
	PanSpeed   float64
	SmoothAlpha float64

	matrix     [16]float32
	haveMatrix bool
}

// NewCamera creates a Camera sized to a screenW x screenH viewport, with the
// spec's default zoom range, pan speed, and smoothing factor.
func NewCamera(screenW, screenH int) *Camera {
	aspect := 1.0
	if screenH > 0 {
		aspect = float64(screenW) / float64(screenH)
	}
	c := &Camera{
		Zoom:        1.0,
		Aspect:      aspect,
		ZMin:        DefaultZoomMin,
		ZMax:        DefaultZoomMax,
		PanSpeed:    DefaultPanSpeed,
		SmoothAlpha: DefaultSmoothAlpha,
	}
	c.refreshMatrix()
	return c
}

// SetViewport updates the aspect ratio used for projection, e.g. on window
// resize.
func (c *Camera) SetViewport(screenW, screenH int) {
	if screenH <= 0 {
		return
	}
	c.Aspect = float64(screenW) / float64(screenH)
}

// Pan translates the camera target by (dx, dy) screen pixels, scaled by
// PanSpeed/max(0.1, Zoom). X is negated (dragging right moves the world
// left under the cursor); Y is not (spec.md §5 "Camera input contract",
// scenario S5: zoom=10, pan(+100,+100), pan_speed=0.25 → (-2.5, +2.5)).
func (c *Camera) Pan(dx, dy int) {
	factor := c.PanSpeed / math.Max(0.1, c.Zoom)
	c.TargetX = clampF(c.TargetX-float64(dx)*factor, -LPan, LPan)
	c.TargetY = clampF(c.TargetY+float64(dy)*factor, -LPan, LPan)
}

// ApplyZoom adds delta to Zoom, clamped to [ZMin, ZMax]. A non-finite delta
// is rejected and logged rather than applied (spec.md §7 "Degenerate math").
func (c *Camera) ApplyZoom(delta float64) {
	if !isFinite(delta) {
		warnf("camera: rejected non-finite zoom delta")
		return
	}
	z := c.Zoom + delta
	if !isFinite(z) {
		warnf("camera: rejected zoom update producing non-finite value")
		return
	}
	c.Zoom = clampF(z, c.ZMin, c.ZMax)
}

// Reset returns the camera to its initial position and zoom.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.TargetX, c.TargetY = 0, 0
	c.Zoom = 1.0
	c.refreshMatrix()
}

// Update advances one frame of camera motion: exponential smoothing of X, Y
// toward TargetX, TargetY by SmoothAlpha (spec.md §6 "P <- P + alpha(P* -
// P)"). Call once per game tick before reading ViewBounds or Matrix.
func (c *Camera) Update(dt float32) {
	c.X += (c.TargetX - c.X) * c.SmoothAlpha
	c.Y += (c.TargetY - c.Y) * c.SmoothAlpha
	c.refreshMatrix()
}

// refreshMatrix recomputes the projection matrix from the current position,
// aspect, and zoom. If the inputs are degenerate or would produce a
// non-finite entry, the previous matrix is retained and a warning is logged
// (spec.md §3 Camera invariants, §8 property 8 "Matrix robustness").
func (c *Camera) refreshMatrix() {
	m, ok := computeOrthoMatrix(c.X, c.Y, c.Aspect, c.Zoom)
	if !ok {
		if c.haveMatrix {
			warnf("camera: rejected degenerate matrix update, retaining last good matrix")
		}
		return
	}
	c.matrix = m
	c.haveMatrix = true
}

// Matrix returns the current column-major 4x4 projection matrix. A Camera
// from NewCamera holds a valid matrix from its initial refresh; a zero-value
// Camera's matrix is all zeros until its first successful refresh. Every
// entry is always finite.
func (c *Camera) Matrix() [16]float32 { return c.matrix }

// ViewBounds returns the camera's visible world-space rectangle. If the
// camera's position or zoom is currently non-finite, it returns the
// default 1000x1000 window centered on the origin rather than propagating
// NaN into the selector (spec.md §8 scenario S6).
func (c *Camera) ViewBounds() Rect {
	if !isFinite(c.X) || !isFinite(c.Y) || !isFinite(c.Zoom) || !isFinite(c.Aspect) || c.Zoom <= 0 || c.Aspect <= 0 {
		return Rect{X: -500, Y: -500, Width: 1000, Height: 1000}
	}
	width := 1000 * c.Aspect / c.Zoom
	height := 1000 / c.Zoom
	return Rect{X: c.X - width/2, Y: c.Y - height/2, Width: width, Height: height}
}
