package raster

// Topology identifies how a flat vertex buffer is decomposed into
// triangles. It is a tagged enum rather than an interface: the set of
// supported topologies is small and fixed, and callers benefit from
// being able to switch on it directly.
type Topology int

const (
	// TriangleStrip decomposes n vertices into n-2 triangles
	// (0,1,2), (1,2,3), (2,3,4), ... Winding of consecutive
	// triangles in a correctly-built strip alternates, but this
	// package does not pre-flip odd-indexed triangles: setupTriangle
	// normalizes winding per triangle from the signed area, so a
	// strip with either handedness convention renders identically.
	TriangleStrip Topology = iota
)

// stripVertex extracts the i'th vertex from a packed [x0,y0,x1,y1,...]
// float32 buffer and converts it to fixed point.
func stripVertex(vb []float32, i int) Vertex {
	return snapVertex(vb[2*i], vb[2*i+1])
}

// stripTriangleCount returns the number of triangles a strip of n
// vertices decomposes into. A strip needs at least 3 vertices to
// contribute any triangles; fewer is a silent no-op.
func stripTriangleCount(n int) int {
	if n < 3 {
		return 0
	}
	return n - 2
}

// stripTriangle returns the three vertices of the tri'th triangle in
// a triangle strip over vb, where tri is in [0, stripTriangleCount(n)).
func stripTriangle(vb []float32, tri int) (v0, v1, v2 Vertex) {
	return stripVertex(vb, tri), stripVertex(vb, tri+1), stripVertex(vb, tri+2)
}
