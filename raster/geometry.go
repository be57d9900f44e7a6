package raster

import "math"

// SpiralStripVertices returns a packed [x0,y0,x1,y1,...] triangle-strip
// vertex buffer of n vertices, generated by the rotating-spiral
// construction used as the reference demo geometry: vertex i sits at
// (400 + x*f, 250 + y*f), where f = i/30 + 0.1 and (x,y) is an
// initial (0, 100) rotated by 2*pi/16 radians per step.
func SpiralStripVertices(n int) []float32 {
	const (
		centerX, centerY = 400, 250
		step             = 2 * math.Pi / 16
	)

	vb := make([]float32, 2*n)
	x, y := 0.0, 100.0
	for i := 0; i < n; i++ {
		f := float64(i)/30 + 0.1
		vb[2*i] = float32(centerX + x*f)
		vb[2*i+1] = float32(centerY + y*f)

		sin, cos := math.Sincos(step)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return vb
}
