package raster

import "errors"

// Sentinel errors returned by the image lifecycle operations.
//
// Render itself never returns an error: degenerate triangles, empty
// post-clip bounding boxes, and short vertex buffers are silent
// no-ops. The failure modes in this package are malformed input to
// NewImage and Clear on an Image that has been released.
var (
	// ErrInvalidDimensions is returned by NewImage when width or
	// height is not strictly positive.
	ErrInvalidDimensions = errors.New("raster: width and height must be positive")

	// ErrReleased is returned by operations attempted on an Image
	// after Release has been called.
	ErrReleased = errors.New("raster: image already released")
)
