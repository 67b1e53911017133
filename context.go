// Package swrast ties the raster and shader packages together into the
// three entry points a caller drives a draw through: Clear,
// DrawTriangles, and (via the scene package) DrawModel. It owns no
// global mutable state — every operation takes an explicit *Context.
package swrast

import (
	"github.com/gogpu/swrast/raster"
	"github.com/gogpu/swrast/shader"
)

// Context bundles the three configuration groups a draw call reads: the
// bound vertex array, the active program (kernels, vs→fs attribute
// types, uniforms), and the target framebuffer.
type Context struct {
	VertexArray raster.VertexArray
	Program     shader.Program
	Framebuffer *raster.Framebuffer
}

// NewContext creates a Context targeting a freshly allocated framebuffer
// of the given size.
func NewContext(width, height int) *Context {
	return &Context{Framebuffer: raster.NewFramebuffer(width, height)}
}
