package raster

// RenderOption configures a single Render call. Options follow the
// functional-options convention used elsewhere for per-call config:
// a small set of optional knobs without growing Render's own
// parameter list or requiring a config struct literal at every call
// site.
type RenderOption func(*renderConfig)

type renderConfig struct {
	colorFunc  ColorFunc
	tileReject bool
	usePacked  bool
	packedSet  bool
}

func newRenderConfig() renderConfig {
	return renderConfig{
		colorFunc:  defaultColorFunc,
		tileReject: true,
	}
}

func (c *renderConfig) resolvePacked() bool {
	if c.packedSet {
		return c.usePacked
	}
	return defaultUsePacked()
}

// WithColorFunc overrides the per-triangle color policy.
func WithColorFunc(fn ColorFunc) RenderOption {
	return func(c *renderConfig) { c.colorFunc = fn }
}

// WithTileReject enables or disables the tile-level trivial-reject
// test. Disabling it does not change which pixels are written; it
// exists so tests can confirm the reject test and the brute-force
// per-pixel test agree.
func WithTileReject(enabled bool) RenderOption {
	return func(c *renderConfig) { c.tileReject = enabled }
}

// WithPacked forces the 8-wide packed tile-fill path on or off,
// overriding the CPU-feature-based default.
func WithPacked(enabled bool) RenderOption {
	return func(c *renderConfig) {
		c.usePacked = enabled
		c.packedSet = true
	}
}
