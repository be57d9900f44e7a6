package raster

// int32x8 holds 8 int32 lanes for SIMD-style tile processing. Like
// gogpu's wide.F32x8, it is a plain fixed-size array: simple
// element-wise loops over it are straightforward for the compiler to
// auto-vectorize, without resorting to assembly or cgo intrinsics.
type int32x8 [TileSize]int32

// offsetsForEdge precomputes, for one edge of one triangle, the value
// at each of the 8 columns of a tile's top row relative to that edge's
// tile-minimum-corner value: offsets[k] = A*k - delta. This is
// constant for the life of the triangle, independent of which tile is
// being visited, so it is computed once in newPackedTriangle rather
// than per tile.
func offsetsForEdge(e edgeFunction, delta int32) int32x8 {
	var o int32x8
	for k := range o {
		o[k] = e.A*int32(k) - delta
	}
	return o
}

// addScalar returns v with n added to every lane.
func (v int32x8) addScalar(n int32) int32x8 {
	var r int32x8
	for i := range v {
		r[i] = v[i] + n
	}
	return r
}

// and returns the lane-wise bitwise AND of v and other.
func (v int32x8) and(other int32x8) int32x8 {
	var r int32x8
	for i := range v {
		r[i] = v[i] & other[i]
	}
	return r
}

// packedTriangle caches the per-edge column offsets used by the
// 8-wide tile fill.
type packedTriangle struct {
	offsets [3]int32x8
}

func newPackedTriangle(tri *preparedTriangle) packedTriangle {
	return packedTriangle{
		offsets: [3]int32x8{
			offsetsForEdge(tri.edges[0], tri.deltas[0]),
			offsetsForEdge(tri.edges[1], tri.deltas[1]),
			offsetsForEdge(tri.edges[2], tri.deltas[2]),
		},
	}
}

// fillPacked is the packed-path equivalent of fillScalar: same tile
// traversal and trivial-reject test, but each tile row is evaluated 8
// columns at a time. Semantically identical to fillScalar for every
// pixel written: it is a drop-in replacement for the scalar path,
// never a source of coverage differences.
func fillPacked(img *Image, tri *preparedTriangle, color uint32, tileReject bool) {
	pt := newPackedTriangle(tri)
	edges := tri.edges

	for y := tri.startY; y < tri.endY; y += TileSize {
		tileH := min32(TileSize, tri.endY-y)
		for x := tri.startX; x < tri.endX; x += TileSize {
			tileW := min32(TileSize, tri.endX-x)
			fillPackedTile(img, &edges, &tri.deltas, &pt.offsets, x, y, tileW, tileH, color, tileReject)
		}
	}
}

func fillPackedTile(img *Image, edges *[3]edgeFunction, deltas *[3]int32, offsets *[3]int32x8, tileX, tileY, tileW, tileH int32, color uint32, tileReject bool) {
	var bi [3]int32
	for i := range edges {
		bi[i] = edges[i].tileMinValue(tileX, tileY, deltas[i])
	}

	if tileReject && (bi[0]&bi[1]&bi[2]) >= 0 {
		return
	}

	tb := [3]int32x8{
		offsets[0].addScalar(bi[0]),
		offsets[1].addScalar(bi[1]),
		offsets[2].addScalar(bi[2]),
	}

	for ty := int32(0); ty < tileH; ty++ {
		mask := tb[0].and(tb[1]).and(tb[2])
		for k := int32(0); k < tileW; k++ {
			if mask[k] < 0 {
				img.setPixel(tileX+k, tileY+ty, color)
			}
		}
		tb[0] = tb[0].addScalar(edges[0].B)
		tb[1] = tb[1].addScalar(edges[1].B)
		tb[2] = tb[2].addScalar(edges[2].B)
	}
}
