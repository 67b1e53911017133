package swrast

import (
	"github.com/gogpu/swrast/raster"
)

// Clear resets a framebuffer's depth to the far sentinel and its color to
// r,g,b,a scaled to [0,255] and saturated.
func Clear(fb *raster.Framebuffer, r, g, b, a float32) {
	fb.Clear(r, g, b, a)
}

// DrawTriangles processes nofVertices/3 triangles through the full
// pipeline: vertex fetch, vertex kernel, near-plane clip, perspective
// divide and viewport map, rasterization, fragment kernel, and the
// depth/blend raster operations. nofVertices must be a multiple of 3.
func (ctx *Context) DrawTriangles(nofVertices int) error {
	if ctx.Program.Vertex == nil {
		return ErrNilVertexKernel
	}
	if ctx.Program.Fragment == nil {
		return ErrNilFragmentKernel
	}
	if nofVertices%3 != 0 {
		return ErrVertexCountNotMultipleOf3
	}

	vp := raster.Viewport{Width: ctx.Framebuffer.Width, Height: ctx.Framebuffer.Height}

	var clipped [2][3]raster.OutVertex

	for k := 0; k < nofVertices; k += 3 {
		var out [3]raster.OutVertex
		for j := 0; j < 3; j++ {
			in := raster.FetchVertex(&ctx.VertexArray, k+j)
			ctx.Program.Vertex(&out[j], &in, &ctx.Program.Uniforms)
		}

		n := raster.ClipNearPlane(out[0], out[1], out[2], &clipped)
		for t := 0; t < n; t++ {
			tri := raster.Triangle{
				V0: raster.PerspectiveDivideAndViewport(clipped[t][0], vp),
				V1: raster.PerspectiveDivideAndViewport(clipped[t][1], vp),
				V2: raster.PerspectiveDivideAndViewport(clipped[t][2], vp),
			}

			raster.Rasterize(tri, vp, ctx.Program.VS2FS, func(frag raster.Fragment) {
				inFrag := raster.InFragment{
					GLFragCoord: [4]float32{float32(frag.X) + 0.5, float32(frag.Y) + 0.5, frag.Depth, 1},
					Attributes:  frag.Attributes,
				}
				var outFrag raster.OutFragment
				ctx.Program.Fragment(&outFrag, &inFrag, &ctx.Program.Uniforms)

				raster.DepthTestAndBlend(ctx.Framebuffer, frag.X, frag.Y, frag.Depth, outFrag.GLFragColor)
			})
		}
	}
	return nil
}
