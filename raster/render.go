package raster

import (
	"context"
	"log/slog"
)

// Render rasterizes the triangles described by vb (a packed
// [x0,y0,x1,y1,...] float32 buffer of n vertices interpreted per
// topology) into img.
//
// Render never returns an error: an unsupported topology, too few
// vertices, a degenerate triangle, or a triangle whose bounding box
// falls entirely outside img are each a silent no-op for the affected
// triangle, logged at Debug so a caller that has wired up SetLogger
// can still observe them.
func Render(img *Image, topology Topology, vb []float32, n int, opts ...RenderOption) {
	if topology != TriangleStrip {
		Logger().Debug("raster: unsupported topology", "topology", topology)
		return
	}
	if img.released {
		Logger().Debug("raster: render into released image ignored")
		return
	}

	cfg := newRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	usePacked := cfg.resolvePacked()

	count := stripTriangleCount(n)
	for i := 0; i < count; i++ {
		v0, v1, v2 := stripTriangle(vb, i)
		color := cfg.colorFunc(i)

		tri, ok := setupTriangle(v0, v1, v2)
		if !ok {
			Logger().Debug("raster: skipping degenerate triangle", "index", i)
			continue
		}

		if !tri.clampToImage(int32(img.Width), int32(img.Height)) {
			Logger().Debug("raster: skipping triangle outside image", "index", i)
			continue
		}

		if usePacked {
			fillPacked(img, &tri, color, cfg.tileReject)
		} else {
			fillScalar(img, &tri, color, cfg.tileReject)
		}
	}

	Logger().Log(context.Background(), slog.LevelDebug, "raster: render complete", "triangles", count)
}
