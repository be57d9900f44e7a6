package raster

import (
	"math/rand"
	"testing"
)

func randomTriangleVB(r *rand.Rand, max float32) []float32 {
	vb := make([]float32, 6)
	for i := range vb {
		vb[i] = r.Float32() * max
	}
	return vb
}

func vbVertex(vb []float32, i int) Vertex {
	return snapVertex(vb[2*i], vb[2*i+1])
}

// TestCoverageEquivalenceRandomTriangles checks that, for a random
// triangle within a 256x256 image, the tiled core and the brute-force
// per-pixel reference agree on exactly which pixels are written.
func TestCoverageEquivalenceRandomTriangles(t *testing.T) {
	const size = 256
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 1000; trial++ {
		vb := randomTriangleVB(r, size)
		v0, v1, v2 := vbVertex(vb, 0), vbVertex(vb, 1), vbVertex(vb, 2)

		want := bruteForceCoverage(v0, v1, v2, size, size)

		img, err := NewImage(size, size)
		if err != nil {
			t.Fatalf("NewImage: %v", err)
		}
		Render(img, TriangleStrip, vb, 3, WithColorFunc(func(int) uint32 { return 0xFFFFFFFF }))

		got := renderedCoverage(img)
		if !coverageEqual(got, want) {
			t.Fatalf("trial %d: coverage mismatch for triangle %v %v %v\nwant=%v\ngot=%v", trial, v0, v1, v2, want, got)
		}
	}
}

// TestNoPixelOutsideBoundingBox checks that no pixel outside a
// triangle's bounding box is ever written: neither outside the
// tile-aligned box the traversal walks, nor with its sample point
// (the pixel's top-left corner) outside the sub-pixel bounding box of
// the three vertices.
func TestNoPixelOutsideBoundingBox(t *testing.T) {
	const size = 128
	r := rand.New(rand.NewSource(2))

	for trial := 0; trial < 200; trial++ {
		vb := randomTriangleVB(r, size)
		v0, v1, v2 := vbVertex(vb, 0), vbVertex(vb, 1), vbVertex(vb, 2)

		tri, ok := setupTriangle(v0, v1, v2)
		if !ok {
			continue
		}
		if !tri.clampToImage(size, size) {
			continue
		}
		minX, maxX := min(v0.X, v1.X, v2.X), max(v0.X, v1.X, v2.X)
		minY, maxY := min(v0.Y, v1.Y, v2.Y), max(v0.Y, v1.Y, v2.Y)

		img, _ := NewImage(size, size)
		Render(img, TriangleStrip, vb, 3, WithColorFunc(func(int) uint32 { return 0xFFFFFFFF }))

		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				off := y*img.Stride + x*4
				pixelSet := img.Pix[off] != 0 || img.Pix[off+1] != 0 || img.Pix[off+2] != 0 || img.Pix[off+3] != 0
				if !pixelSet {
					continue
				}
				if int32(x) < tri.startX || int32(x) >= tri.endX || int32(y) < tri.startY || int32(y) >= tri.endY {
					t.Fatalf("trial %d: pixel (%d,%d) written outside bounding box [%d,%d)x[%d,%d)", trial, x, y, tri.startX, tri.endX, tri.startY, tri.endY)
				}
				sx, sy := int32(x)<<subPixelBits, int32(y)<<subPixelBits
				if sx < minX || sx > maxX || sy < minY || sy > maxY {
					t.Fatalf("trial %d: pixel (%d,%d) written outside sub-pixel bounding box [%d,%d]x[%d,%d]", trial, x, y, minX, maxX, minY, maxY)
				}
			}
		}
	}
}

func coverageEqual(a, b map[[2]int32]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
