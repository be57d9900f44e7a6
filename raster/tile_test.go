package raster

import (
	"math/rand"
	"testing"
)

// TestTileRejectMatchesBruteForce checks that disabling the tile
// trivial-reject test does not change which pixels are written.
func TestTileRejectMatchesBruteForce(t *testing.T) {
	const size = 96
	r := rand.New(rand.NewSource(3))

	for trial := 0; trial < 300; trial++ {
		vb := randomTriangleVB(r, size)

		withReject, _ := NewImage(size, size)
		withoutReject, _ := NewImage(size, size)

		colorFunc := WithColorFunc(func(int) uint32 { return 0xFFFFFFFF })
		Render(withReject, TriangleStrip, vb, 3, colorFunc, WithTileReject(true))
		Render(withoutReject, TriangleStrip, vb, 3, colorFunc, WithTileReject(false))

		a := renderedCoverage(withReject)
		b := renderedCoverage(withoutReject)
		if !coverageEqual(a, b) {
			t.Fatalf("trial %d: tile-reject coverage differs from no-reject coverage", trial)
		}
	}
}

// TestPackedMatchesScalar confirms the 8-wide packed tile fill is
// pixel-identical to the scalar path it exists to speed up.
func TestPackedMatchesScalar(t *testing.T) {
	const size = 96
	r := rand.New(rand.NewSource(4))

	for trial := 0; trial < 300; trial++ {
		vb := randomTriangleVB(r, size)

		scalarImg, _ := NewImage(size, size)
		packedImg, _ := NewImage(size, size)

		colorFunc := WithColorFunc(func(int) uint32 { return 0xFFFFFFFF })
		Render(scalarImg, TriangleStrip, vb, 3, colorFunc, WithPacked(false))
		Render(packedImg, TriangleStrip, vb, 3, colorFunc, WithPacked(true))

		a := renderedCoverage(scalarImg)
		b := renderedCoverage(packedImg)
		if !coverageEqual(a, b) {
			t.Fatalf("trial %d: packed coverage differs from scalar coverage", trial)
		}
	}
}
