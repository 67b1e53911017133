// Package scene holds the hierarchical model the scene walker renders: a
// tree of nodes, each carrying a model matrix and optionally a mesh, plus
// the meshes themselves and the depth-first draw that composes them.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/swrast/raster"
)

// Mesh is a drawable primitive: attribute and index bindings, a diffuse
// color used when no texture is bound, and an optional diffuse texture.
type Mesh struct {
	Position    raster.VertexAttribute
	Normal      raster.VertexAttribute
	TexCoord    raster.VertexAttribute
	Indices     *raster.IndexBinding
	NofIndices  int
	Diffuse     mgl32.Vec4
	TextureID   int // -1 means no texture
}

// Node is one entry in the scene hierarchy: a local transform, an
// optional mesh reference (-1 means no mesh), and children traversed
// after this node.
type Node struct {
	ModelMatrix mgl32.Mat4
	MeshID      int
	Children    []*Node
}

// Model owns the meshes and textures referenced by a forest of root
// nodes.
type Model struct {
	Meshes   []Mesh
	Textures []*raster.Texture
	Roots    []*Node
}
