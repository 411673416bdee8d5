package diskgrid

import "math"

// computeOrthoMatrix builds a column-major 4x4 orthographic projection
// matrix centered on (posX, posY), covering a world window of
// width = 1000*aspect/zoom, height = 1000/zoom, near = -1, far = 1
// (spec.md §5 "Projection"). ok is false if any input is degenerate or the
// result would contain a non-finite entry; callers must retain their
// previous matrix in that case (spec.md §3 Camera invariants).
func computeOrthoMatrix(posX, posY, aspect, zoom float64) (m [16]float32, ok bool) {
	if !isFinite(posX) || !isFinite(posY) || !isFinite(aspect) || !isFinite(zoom) {
		return m, false
	}
	if aspect <= 0 || zoom <= 0 {
		return m, false
	}

	width := 1000 * aspect / zoom
	height := 1000 / zoom
	if width <= 0 || height <= 0 || !isFinite(width) || !isFinite(height) {
		return m, false
	}

	left := posX - width/2
	right := posX + width/2
	bottom := posY - height/2
	top := posY + height/2
	const near, far = -1.0, 1.0

	rl := right - left
	tb := top - bottom
	fn := far - near
	if rl == 0 || tb == 0 || fn == 0 {
		return m, false
	}

	m[0] = float32(2 / rl)
	m[5] = float32(2 / tb)
	m[10] = float32(-2 / fn)
	m[12] = float32(-(right + left) / rl)
	m[13] = float32(-(top + bottom) / tb)
	m[14] = float32(-(far + near) / fn)
	m[15] = 1

	for _, v := range m {
		if !isFiniteF32(v) {
			return m, false
		}
	}
	return m, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFiniteF32(v float32) bool {
	return isFinite(float64(v))
}
