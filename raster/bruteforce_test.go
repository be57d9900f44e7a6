package raster

// bruteForceCoverage evaluates the same three edge functions and bias
// as the tiled core over every pixel of a width x height image,
// without any tile traversal or trivial-reject shortcut. It exists
// purely as an independent reference for the property tests: if this
// and the tiled path ever disagree, the tiled path has a bug.
func bruteForceCoverage(v0, v1, v2 Vertex, width, height int32) map[[2]int32]bool {
	tri, ok := setupTriangle(v0, v1, v2)
	covered := make(map[[2]int32]bool)
	if !ok {
		return covered
	}

	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			fx := x << subPixelBits
			fy := y << subPixelBits
			w0 := tri.edges[0].evalXY(fx, fy)
			w1 := tri.edges[1].evalXY(fx, fy)
			w2 := tri.edges[2].evalXY(fx, fy)
			if w0 < 0 && w1 < 0 && w2 < 0 {
				covered[[2]int32{x, y}] = true
			}
		}
	}
	return covered
}

// renderedCoverage returns the set of non-zero pixels in img.
func renderedCoverage(img *Image) map[[2]int32]bool {
	covered := make(map[[2]int32]bool)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			off := y*img.Stride + x*4
			if img.Pix[off+0] != 0 || img.Pix[off+1] != 0 || img.Pix[off+2] != 0 || img.Pix[off+3] != 0 {
				covered[[2]int32{int32(x), int32(y)}] = true
			}
		}
	}
	return covered
}
