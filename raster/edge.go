package raster

// edgeFunction is a linear form over fixed-point screen coordinates,
//
//	w(x,y) = (A*x + B*y) >> 8 + C - Bias
//
// derived from a directed edge p0 -> p1. Bias is 0 or 1 and implements
// the top-left fill-rule tiebreak: it is 1 for edges that run downward
// in screen space (A < 0) or horizontally leftward (A == 0, B < 0),
// which once winding is normalized are exactly the triangle's "left"
// and "top" edges. Subtracting it makes a pixel exactly on such an
// edge evaluate to -1 and count as inside, while a pixel exactly on
// any other edge evaluates to 0 and is excluded, so every pixel on a
// shared edge between two triangles belongs to exactly one of them.
//
// Callers are expected to keep w(v) within signed 32 bits for every
// in-image vertex v; the A*x and B*y products are therefore always
// computed in 64 bits before the shift.
type edgeFunction struct {
	A, B, C int32
	Bias    int32
}

// newEdge builds the edge function for the directed segment p0 -> p1.
func newEdge(p0, p1 Vertex) edgeFunction {
	a := p0.Y - p1.Y
	b := p1.X - p0.X
	c := int32((int64(p1.Y)*int64(p0.X) - int64(p1.X)*int64(p0.Y)) >> subPixelBits)

	var bias int32
	if a < 0 || (a == 0 && b < 0) {
		bias = 1
	}

	return edgeFunction{A: a, B: b, C: c, Bias: bias}
}

// eval evaluates the edge function at a fixed-point point v.
func (e edgeFunction) eval(v Vertex) int32 {
	return int32((int64(e.A)*int64(v.X)+int64(e.B)*int64(v.Y))>>subPixelBits) + e.C - e.Bias
}

// evalXY is eval for a point given directly as fixed-point coordinates,
// avoiding a Vertex allocation on the hot path.
func (e edgeFunction) evalXY(x, y int32) int32 {
	return int32((int64(e.A)*int64(x)+int64(e.B)*int64(y))>>subPixelBits) + e.C - e.Bias
}
