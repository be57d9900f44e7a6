// Package raster implements a minimal software triangle rasterizer.
//
// A triangle-strip vertex stream in screen-space floating point is
// snapped to 1/256-pixel fixed point, rasterized with the edge-function
// algorithm (Pineda, 1988) and the standard top-left fill rule, and
// written directly into a stride-addressed RGBA8 image.
//
// # Algorithm
//
// Triangle setup builds three edge functions
//
//	w(x,y) = (a*x + b*y) >> 8 + c - bias
//
// from the fixed-point vertices, normalizes winding so that "inside" is
// the all-negative region, and computes a tile-aligned bounding box.
// Rasterization walks that bounding box in 8x8 tiles: each tile is
// tested against a precomputed per-edge minimum-corner value for a
// cheap trivial reject, and surviving tiles are filled pixel by pixel
// (or, on the packed path, 8 pixels at a time).
//
// # Fill rule
//
// Edges that are "top" (horizontal, above the triangle) or "left"
// (running downward in screen space once winding is normalized) have 1
// subtracted from their edge value, which makes them inclusive; all
// other edges are exclusive. This ensures a pixel exactly on an edge
// shared by two triangles is rasterized by exactly one of them.
//
// # Scope
//
// There is no texturing, no perspective or attribute interpolation, no
// depth test, no blending, no multisampling, no clipping against the
// image rectangle, and no anti-aliasing beyond the sub-pixel snap.
// Later triangles overwrite earlier ones unconditionally. Render never
// allocates on the heap and never suspends or blocks; a single
// submission owns the target Image exclusively from entry to return.
package raster
