package diskgrid

import (
	"math"
	"testing"
)

func TestComputeOrthoMatrixCenteredWindow(t *testing.T) {
	m, ok := computeOrthoMatrix(0, 0, 1, 1)
	if !ok {
		t.Fatal("computeOrthoMatrix(0,0,1,1) rejected, want ok")
	}
	// World origin should map to NDC origin when centered.
	ndcX := m[0]*0 + m[12]
	ndcY := m[5]*0 + m[13]
	if !approxEqual(float64(ndcX), 0, 1e-6) || !approxEqual(float64(ndcY), 0, 1e-6) {
		t.Errorf("origin maps to NDC (%v,%v), want (0,0)", ndcX, ndcY)
	}
}

func TestComputeOrthoMatrixRejectsDegenerateInputs(t *testing.T) {
	cases := []struct {
		posX, posY, aspect, zoom float64
	}{
		{math.NaN(), 0, 1, 1},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 0, -1, 1},
		{0, 0, math.Inf(1), 1},
	}
	for _, c := range cases {
		_, ok := computeOrthoMatrix(c.posX, c.posY, c.aspect, c.zoom)
		if ok {
			t.Errorf("computeOrthoMatrix(%v,%v,%v,%v) = ok, want rejected", c.posX, c.posY, c.aspect, c.zoom)
		}
	}
}

func TestComputeOrthoMatrixScalesWithZoom(t *testing.T) {
	m1, ok1 := computeOrthoMatrix(0, 0, 1, 1)
	m2, ok2 := computeOrthoMatrix(0, 0, 1, 2)
	if !ok1 || !ok2 {
		t.Fatal("expected both matrices to be valid")
	}
	if m2[0] <= m1[0] {
		t.Errorf("higher zoom should increase the x scale factor: m1[0]=%v m2[0]=%v", m1[0], m2[0])
	}
}
