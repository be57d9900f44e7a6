package raster

// subPixelBits is the number of fractional bits in the fixed-point
// vertex representation: 256 sub-pixel units per whole pixel.
const subPixelBits = 8
const subPixelScale = 1 << subPixelBits // 256

// Vertex is a 2D point in sub-pixel fixed point: x and y are in units
// of 1/256 of a pixel. Values are meaningful only within roughly
// ±2^23 pixels; geometry far outside the target Image is
// the caller's responsibility.
type Vertex struct {
	X, Y int32
}

// snapVertex converts a float pixel coordinate pair to a fixed-point
// Vertex by multiplying by 256 and truncating toward zero, matching
// the reference's "(int32_t)(x * 256.0f)" behaviour.
func snapVertex(fx, fy float32) Vertex {
	return Vertex{
		X: int32(fx * subPixelScale),
		Y: int32(fy * subPixelScale),
	}
}

// toPixel truncates a fixed-point coordinate down to whole pixels.
func toPixel(v int32) int32 {
	return v >> subPixelBits
}

// ceilToPixel rounds a fixed-point coordinate up to the next whole
// pixel boundary, then truncates.
func ceilToPixel(v int32) int32 {
	return (v + subPixelScale - 1) >> subPixelBits
}

// alignDown rounds n down to the nearest multiple of a, where a is a
// power of two.
func alignDown(n, a int32) int32 {
	return n &^ (a - 1)
}

// alignUp rounds n up to the nearest multiple of a, where a is a power
// of two.
func alignUp(n, a int32) int32 {
	return alignDown(n+a-1, a)
}
