package raster

// preparedTriangle holds the result of triangle setup: the
// three edge functions in canonical counter-clockwise-in-screen-space
// order, the tile-aligned pixel-space bounding box, and the per-edge
// displacement from a tile's top-left corner to its minimum corner.
type preparedTriangle struct {
	edges  [3]edgeFunction
	deltas [3]int32

	// startX, startY, endX, endY bound the tile-aligned bounding box
	// in pixel space. Not yet clamped to the target Image's extent —
	// see clampToImage.
	startX, startY, endX, endY int32
}

// setupTriangle builds edge functions for v0, v1, v2, normalizes
// winding so "inside" is the all-negative region, and computes the
// tile-aligned bounding box and per-edge tile-minimum deltas.
//
// ok is false for a degenerate (zero signed area) triangle, in which
// case the triangle contributes no pixels.
func setupTriangle(v0, v1, v2 Vertex) (tri preparedTriangle, ok bool) {
	e0 := newEdge(v0, v1)
	e1 := newEdge(v1, v2)
	e2 := newEdge(v2, v0)

	area := e0.eval(v2) + e0.Bias
	if area == 0 {
		return preparedTriangle{}, false
	}
	if area > 0 {
		e0 = newEdge(v1, v0)
		e1 = newEdge(v2, v1)
		e2 = newEdge(v0, v2)
	}

	minX, maxX := v0.X, v0.X
	minY, maxY := v0.Y, v0.Y
	for _, v := range [2]Vertex{v1, v2} {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	startX := alignDown(toPixel(minX), TileSize)
	startY := alignDown(toPixel(minY), TileSize)
	endX := alignUp(ceilToPixel(maxX), TileSize)
	endY := alignUp(ceilToPixel(maxY), TileSize)

	edges := [3]edgeFunction{e0, e1, e2}
	var deltas [3]int32
	for i, e := range edges {
		var d int32
		if e.A < 0 {
			d += e.A * (TileSize - 1)
		}
		if e.B < 0 {
			d += e.B * (TileSize - 1)
		}
		deltas[i] = d
	}

	return preparedTriangle{
		edges:  edges,
		deltas: deltas,
		startX: startX, startY: startY,
		endX: endX, endY: endY,
	}, true
}

// clampToImage clamps the triangle's bounding box to the target
// Image's extent: negative starts are clamped to zero, and ends are
// clamped so the tile traversal never reads or writes outside the
// image buffer. ok is false if the clamped box is empty.
func (tri *preparedTriangle) clampToImage(width, height int32) (ok bool) {
	if tri.startX < 0 {
		tri.startX = 0
	}
	if tri.startY < 0 {
		tri.startY = 0
	}
	if tri.endX > width {
		tri.endX = width
	}
	if tri.endY > height {
		tri.endY = height
	}
	return tri.startX < tri.endX && tri.startY < tri.endY
}

// tileMinValue returns the edge value at the minimum corner of the
// tile whose top-left pixel is (tileX, tileY): the value the trivial
// reject test in tile.go/packed.go operates on.
func (e edgeFunction) tileMinValue(tileX, tileY, delta int32) int32 {
	return e.evalXY(tileX<<subPixelBits, tileY<<subPixelBits) + delta
}
