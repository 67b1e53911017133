// Package shader defines the vertex and fragment kernel function types the
// pipeline dispatches against, plus the two reference kernels (a model
// vertex transform and a Lambert fragment shader). Kernels are ordinary
// Go function values — there is no shader interface hierarchy to
// implement.
package shader

import "github.com/gogpu/swrast/raster"

// VertexKernel transforms one fetched vertex into clip space, writing
// gl_Position and any vs→fs attributes it emits.
type VertexKernel func(out *raster.OutVertex, in *raster.InVertex, uniforms *raster.Uniforms)

// FragmentKernel shades one interpolated fragment. Kernels may read
// textures and uniforms freely but must not mutate them.
type FragmentKernel func(out *raster.OutFragment, in *raster.InFragment, uniforms *raster.Uniforms)

// Program groups the two kernels with the declared type of each vs→fs
// attribute slot.
type Program struct {
	Vertex   VertexKernel
	Fragment FragmentKernel
	VS2FS    [raster.MaxAttributes]raster.AttributeType
	Uniforms raster.Uniforms
}
