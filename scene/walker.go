package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	swrast "github.com/gogpu/swrast"
	"github.com/gogpu/swrast/raster"
	"github.com/gogpu/swrast/shader"
)

// DrawModel performs a depth-first, pre-order traversal of model's root
// nodes, composing each node's model matrix with its parent's, binding
// the reached mesh's attributes and uniforms, and issuing one draw per
// mesh. cameraPos is accepted for parity with the reference kernels'
// calling convention but is unused by ModelVertexKernel/
// LambertFragmentKernel.
func DrawModel(ctx *swrast.Context, model *Model, proj, view mgl32.Mat4, lightPos, cameraPos mgl32.Vec3) {
	ctx.Program.Vertex = shader.ModelVertexKernel
	ctx.Program.Fragment = shader.LambertFragmentKernel
	ctx.Program.VS2FS[0] = raster.AttrVec3
	ctx.Program.VS2FS[1] = raster.AttrVec3
	ctx.Program.VS2FS[2] = raster.AttrVec2

	ctx.Program.Uniforms.Slots[shader.UniformProjView] = raster.UniformMat4Value(proj.Mul4(view))
	ctx.Program.Uniforms.Slots[shader.UniformLightPos] = raster.UniformVec3Value(lightPos)
	_ = cameraPos

	for _, root := range model.Roots {
		drawNode(ctx, model, root, mgl32.Ident4())
	}
}

func drawNode(ctx *swrast.Context, model *Model, node *Node, parent mgl32.Mat4) {
	combined := parent.Mul4(node.ModelMatrix)

	if node.MeshID >= 0 {
		mesh := &model.Meshes[node.MeshID]

		ctx.VertexArray.Attributes[0] = mesh.Position
		ctx.VertexArray.Attributes[1] = mesh.Normal
		ctx.VertexArray.Attributes[2] = mesh.TexCoord
		ctx.VertexArray.Indices = mesh.Indices

		ctx.Program.Uniforms.Slots[shader.UniformModel] = raster.UniformMat4Value(combined)
		ctx.Program.Uniforms.Slots[shader.UniformNormalMatrix] =
			raster.UniformMat4Value(combined.Inv().Transpose())
		ctx.Program.Uniforms.Slots[shader.UniformDiffuseColor] = raster.UniformVec4Value(mesh.Diffuse)

		if mesh.TextureID >= 0 {
			ctx.Program.Uniforms.Slots[shader.UniformHasTexture] = raster.UniformF32Value(1)
			ctx.Program.Uniforms.Textures[shader.TextureDiffuse] = model.Textures[mesh.TextureID]
		} else {
			ctx.Program.Uniforms.Slots[shader.UniformHasTexture] = raster.UniformF32Value(0)
			ctx.Program.Uniforms.Textures[shader.TextureDiffuse] = nil
		}

		if err := ctx.DrawTriangles(mesh.NofIndices); err != nil {
			raster.Logger().Error("scene: draw failed for mesh", "meshID", node.MeshID, "error", err)
		}
	}

	for _, child := range node.Children {
		drawNode(ctx, model, child, combined)
	}
}
