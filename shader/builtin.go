package shader

import "github.com/gogpu/swrast/raster"

// Uniform slot conventions for ModelVertexKernel and LambertFragmentKernel,
// following the scene walker's binding table: 0 = proj*view, 1 = model,
// 2 = inverse-transpose(model), 3 = light position, 5 = diffuse color,
// 6 = has-texture flag. Texture slot 0 holds the diffuse texture.
const (
	UniformProjView       = 0
	UniformModel          = 1
	UniformNormalMatrix   = 2
	UniformLightPos       = 3
	UniformDiffuseColor   = 5
	UniformHasTexture     = 6
	TextureDiffuse        = 0
)

// ModelVertexKernel transforms attribute 0 (object-space position, vec4)
// into world space by the model matrix, attribute 1 (object-space normal,
// vec4 with w=0) by the inverse-transpose model matrix, passes attribute 2
// (uv) through unchanged, and projects the world position into clip
// space via the combined proj*view matrix.
func ModelVertexKernel(out *raster.OutVertex, in *raster.InVertex, uniforms *raster.Uniforms) {
	projView := uniforms.Slots[UniformProjView].Mat4
	model := uniforms.Slots[UniformModel].Mat4
	normalMatrix := uniforms.Slots[UniformNormalMatrix].Mat4

	position := in.Attributes[0].V4
	normal := in.Attributes[1].V4

	worldPosition := model.Mul4x1(position)
	worldNormal := normalMatrix.Mul4x1(normal)

	// vs2fs[0]=vec3, vs2fs[1]=vec3, vs2fs[2]=vec2, matching the scene
	// walker's program setup.
	out.Attributes[0] = raster.Vec3Attr(worldPosition.Vec3())
	out.Attributes[1] = raster.Vec3Attr(worldNormal.Vec3())
	out.Attributes[2] = in.Attributes[2]
	out.GLPosition = projView.Mul4x1(worldPosition)
}

// LambertFragmentKernel shades a fragment with a single directional-ish
// point light: diffuse color comes from the bound texture when
// UniformHasTexture is positive, otherwise from UniformDiffuseColor.
func LambertFragmentKernel(out *raster.OutFragment, in *raster.InFragment, uniforms *raster.Uniforms) {
	lightPos := uniforms.Slots[UniformLightPos].Vec3
	hasTexture := uniforms.Slots[UniformHasTexture].F32

	var diffuse [4]float32
	if hasTexture > 0 {
		sampled := raster.Sample(uniforms.Textures[TextureDiffuse], in.Attributes[2].V2)
		diffuse = [4]float32{sampled[0], sampled[1], sampled[2], sampled[3]}
	} else {
		c := uniforms.Slots[UniformDiffuseColor].Vec4
		diffuse = [4]float32{c[0], c[1], c[2], c[3]}
	}

	worldPos := in.Attributes[0].V3
	normal := in.Attributes[1].V3.Normalize()
	light := lightPos.Sub(worldPos).Normalize()

	d := normal.Dot(light)
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}

	factor := 0.2 + d
	out.GLFragColor = [4]float32{
		diffuse[0] * factor,
		diffuse[1] * factor,
		diffuse[2] * factor,
		diffuse[3],
	}
}
