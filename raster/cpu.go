package raster

import "golang.org/x/sys/cpu"

// packedSupported reports whether the host CPU is one the packed
// tile-fill path was written to benefit from. The check mirrors the
// init()-populated capability-bool idiom used for dispatch in other
// pure-Go codec packages: query the feature table once at package
// init and branch on booleans afterward rather than re-detecting
// features on every call.
var packedSupported bool

func init() {
	packedSupported = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD
}

// defaultUsePacked reports whether Render should prefer the packed
// tile-fill path when the caller hasn't set an explicit WithPacked
// option. The packed path produces pixel-identical output to the
// scalar path; this only affects throughput.
func defaultUsePacked() bool {
	return packedSupported
}
