package raster

// TileSize is the edge length, in pixels, of the square tiles used for
// hierarchical traversal and trivial reject. 8x8 balances the cost of
// the per-tile reject test against cache-friendly inner-loop work.
const TileSize = 8

// fillScalar walks the tile-aligned bounding box of tri in TileSize
// steps, applying the trivial-reject test at each tile and, for
// surviving tiles, testing and writing pixels one at a time.
//
// tileReject disables the trivial-reject test when false (every tile
// is rasterized per-pixel regardless of its minimum-corner value);
// this produces identical coverage and exists only to let tests
// verify the reject test is sound.
func fillScalar(img *Image, tri *preparedTriangle, color uint32, tileReject bool) {
	edges := tri.edges
	for y := tri.startY; y < tri.endY; y += TileSize {
		tileH := min32(TileSize, tri.endY-y)
		for x := tri.startX; x < tri.endX; x += TileSize {
			tileW := min32(TileSize, tri.endX-x)
			fillScalarTile(img, &edges, &tri.deltas, x, y, tileW, tileH, color, tileReject)
		}
	}
}

// fillScalarTile rasterizes a single tile (or the portion of it that
// survives clamping to the image extent) of a single triangle.
func fillScalarTile(img *Image, edges *[3]edgeFunction, deltas *[3]int32, tileX, tileY, tileW, tileH int32, color uint32, tileReject bool) {
	var bi [3]int32
	for i := range edges {
		bi[i] = edges[i].tileMinValue(tileX, tileY, deltas[i])
	}

	if tileReject && (bi[0]&bi[1]&bi[2]) >= 0 {
		return // some edge is non-negative across the whole tile: entirely outside
	}

	// Value at the tile's top-left pixel is the minimum-corner value
	// with the tile-minimum delta undone.
	rowStart := [3]int32{bi[0] - deltas[0], bi[1] - deltas[1], bi[2] - deltas[2]}

	for ty := int32(0); ty < tileH; ty++ {
		w := rowStart
		for tx := int32(0); tx < tileW; tx++ {
			if (w[0] & w[1] & w[2]) < 0 {
				img.setPixel(tileX+tx, tileY+ty, color)
			}
			w[0] += edges[0].A
			w[1] += edges[1].A
			w[2] += edges[2].A
		}
		rowStart[0] += edges[0].B
		rowStart[1] += edges[1].B
		rowStart[2] += edges[2].B
	}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
