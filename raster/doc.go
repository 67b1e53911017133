// Package raster implements the CPU-side rasterization pipeline: typed
// vertex fetch, near-plane clipping, perspective divide and viewport
// mapping, Pineda edge-function rasterization, perspective-correct
// attribute interpolation, and the fragment raster operations (depth
// test, alpha-gated depth write, alpha blend).
//
// # Algorithm overview
//
// Triangle coverage uses three edge functions, evaluated incrementally
// across the triangle's screen-space bounding box:
//
//	E(x,y) = (y - V.y)*dx - (x - V.x)*dy
//
// A pixel at (x+0.5, y+0.5) is covered when all three edge functions are
// non-negative. Pixels exactly on an edge (E=0) are covered; there is no
// top-left exclusion, so shared edges may be written by both adjoining
// triangles, each depth-tested independently.
//
// # Depth
//
// The depth buffer holds the interpolated NDC z of fragments that passed
// the depth test with alpha > 0.5. Only the near plane is clipped, so that
// z is at least -1 but has no upper clip; cleared depth is 1e10, far above
// the depth of any ordinary fragment, so the first write to a pixel passes
// the less-than test.
package raster
