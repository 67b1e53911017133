package raster

import "github.com/go-gl/mathgl/mgl32"

// UniformType tags the kind of value stored in a uniform slot.
type UniformType uint8

const (
	UniformEmpty UniformType = iota
	UniformF32
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat4
)

// UniformValue is a tagged union for one uniform slot. The pipeline never
// interprets Type or the stored value; only kernels do, by convention of
// the slot index they agree on.
type UniformValue struct {
	Type UniformType
	F32  float32
	Vec2 mgl32.Vec2
	Vec3 mgl32.Vec3
	Vec4 mgl32.Vec4
	Mat4 mgl32.Mat4
}

// UniformF32Value builds a scalar uniform.
func UniformF32Value(v float32) UniformValue { return UniformValue{Type: UniformF32, F32: v} }

// UniformVec3Value builds a vec3 uniform.
func UniformVec3Value(v mgl32.Vec3) UniformValue { return UniformValue{Type: UniformVec3, Vec3: v} }

// UniformVec4Value builds a vec4 uniform.
func UniformVec4Value(v mgl32.Vec4) UniformValue { return UniformValue{Type: UniformVec4, Vec4: v} }

// UniformMat4Value builds a mat4 uniform.
func UniformMat4Value(m mgl32.Mat4) UniformValue { return UniformValue{Type: UniformMat4, Mat4: m} }

// Texture is a row-major, byte-packed image. A nil Data samples as
// transparent black at every coordinate.
type Texture struct {
	Data     []byte
	Width    int
	Height   int
	Channels int
}

// Uniforms is the fixed-size registry of uniform slots and texture
// handles bound for a draw.
type Uniforms struct {
	Slots    [maxUniforms]UniformValue
	Textures [maxTextures]*Texture
}
