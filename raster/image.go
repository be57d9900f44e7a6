package raster

// Image is an RGBA8 pixel buffer addressed row-major with a byte
// stride, matching the layout expected by common PNG/WebP encoders:
// four bytes per pixel in R, G, B, A order, low address first (so a
// uint32 color constant like 0xAABBGGRR lands with R in the lowest
// byte when written little-endian).
type Image struct {
	// Width and Height are the usable pixel dimensions requested by
	// the caller. Stride may exceed Width*4 due to alignment padding.
	Width, Height int
	Stride        int
	Pix           []byte

	released bool
}

// rowAlign and heightAlign are the alignment granularities applied to
// a requested image size, mirroring the reference implementation's
// align_u64 rounding of buffer dimensions before allocation.
const (
	rowAlign    = 4
	heightAlign = 2
)

func alignUpInt(n, a int) int {
	return (n + a - 1) &^ (a - 1)
}

// NewImage allocates a zeroed RGBA8 image of at least width x height
// pixels. width and height must be positive; ErrInvalidDimensions is
// returned otherwise.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	alignedWidth := alignUpInt(width, rowAlign)
	alignedHeight := alignUpInt(height, heightAlign)
	stride := alignedWidth * 4

	return &Image{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*alignedHeight),
	}, nil
}

// Clear fills every word of the image buffer with color, given as
// 0xAABBGGRR (R in the lowest byte) — including stride-padding bytes
// and the aligned-height rows beyond Height, matching the full
// stride*alignedHeight extent NewImage allocates. It returns
// ErrReleased if the image has already been released.
func (img *Image) Clear(color uint32) error {
	if img.released {
		return ErrReleased
	}

	r := byte(color)
	g := byte(color >> 8)
	b := byte(color >> 16)
	a := byte(color >> 24)

	for off := 0; off < len(img.Pix); off += 4 {
		img.Pix[off+0] = r
		img.Pix[off+1] = g
		img.Pix[off+2] = b
		img.Pix[off+3] = a
	}
	return nil
}

// setPixel writes color to pixel (x, y). x and y are assumed already
// in bounds; callers (Render's tile traversal) guarantee this via
// preparedTriangle.clampToImage.
func (img *Image) setPixel(x, y int32, color uint32) {
	off := int(y)*img.Stride + int(x)*4
	img.Pix[off+0] = byte(color)
	img.Pix[off+1] = byte(color >> 8)
	img.Pix[off+2] = byte(color >> 16)
	img.Pix[off+3] = byte(color >> 24)
}

// Release drops the image's pixel buffer. A released Image must not
// be used again: Clear returns ErrReleased, and Render silently
// ignores it. Release itself is idempotent.
func (img *Image) Release() {
	img.Pix = nil
	img.released = true
}
