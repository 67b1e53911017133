package raster

import "github.com/go-gl/mathgl/mgl32"

// MaxAttributes is the number of per-vertex/per-fragment attribute slots
// and vs→fs interpolation slots. The reference kernels use slots 0-2;
// eight leaves headroom matching the "at least 8" requirement on vertex
// attribute bindings.
const MaxAttributes = 8

// MaxUniforms is the number of addressable uniform slots. The reference
// kernels read slots 0,1,2,3,5,6; eight leaves room for a caller's own
// kernels without growing the registry.
const MaxUniforms = 8

// MaxTextures is the number of addressable texture slots.
const MaxTextures = 4

// maxAttributes, maxUniforms and maxTextures are unexported aliases used
// throughout this package so array sizes read the same as their exported
// names without stuttering raster.MaxAttributes inside package raster.
const (
	maxAttributes = MaxAttributes
	maxUniforms   = MaxUniforms
	maxTextures   = MaxTextures
)

// AttributeType tags the arity of an attribute cell or uniform value.
type AttributeType uint8

const (
	AttrEmpty AttributeType = iota
	AttrF32
	AttrVec2
	AttrVec3
	AttrVec4
)

// Attribute is a tagged union holding one vertex or fragment attribute
// value. Only the field matching Type is meaningful; reading a cell as a
// different arity than it was written with is a caller error.
type Attribute struct {
	Type AttributeType
	V1   float32
	V2   mgl32.Vec2
	V3   mgl32.Vec3
	V4   mgl32.Vec4
}

// F32 builds a scalar attribute cell.
func F32(v float32) Attribute { return Attribute{Type: AttrF32, V1: v} }

// Vec2Attr builds a vec2 attribute cell.
func Vec2Attr(v mgl32.Vec2) Attribute { return Attribute{Type: AttrVec2, V2: v} }

// Vec3Attr builds a vec3 attribute cell.
func Vec3Attr(v mgl32.Vec3) Attribute { return Attribute{Type: AttrVec3, V3: v} }

// Vec4Attr builds a vec4 attribute cell.
func Vec4Attr(v mgl32.Vec4) Attribute { return Attribute{Type: AttrVec4, V4: v} }

// lerpAttribute linearly interpolates two attribute cells of the same
// type. Used by the near-plane clipper, where interpolation happens in
// clip space before any perspective correction applies.
func lerpAttribute(a, b Attribute, t float32) Attribute {
	switch a.Type {
	case AttrF32:
		return Attribute{Type: AttrF32, V1: a.V1 + (b.V1-a.V1)*t}
	case AttrVec2:
		return Attribute{Type: AttrVec2, V2: a.V2.Add(b.V2.Sub(a.V2).Mul(t))}
	case AttrVec3:
		return Attribute{Type: AttrVec3, V3: a.V3.Add(b.V3.Sub(a.V3).Mul(t))}
	case AttrVec4:
		return Attribute{Type: AttrVec4, V4: a.V4.Add(b.V4.Sub(a.V4).Mul(t))}
	default:
		return Attribute{}
	}
}

// blendAttribute computes a barycentric combination w0*a + w1*b + w2*c of
// three attribute cells. t, the caller-declared arity (vs2fs at the
// interpolation stage), is authoritative — not a.Type — since vs2fs is
// what governs interpretation of a vs→fs slot at this stage.
func blendAttribute(t AttributeType, a, b, c Attribute, w0, w1, w2 float32) Attribute {
	switch t {
	case AttrF32:
		return Attribute{Type: AttrF32, V1: a.V1*w0 + b.V1*w1 + c.V1*w2}
	case AttrVec2:
		return Attribute{Type: AttrVec2, V2: a.V2.Mul(w0).Add(b.V2.Mul(w1)).Add(c.V2.Mul(w2))}
	case AttrVec3:
		return Attribute{Type: AttrVec3, V3: a.V3.Mul(w0).Add(b.V3.Mul(w1)).Add(c.V3.Mul(w2))}
	case AttrVec4:
		return Attribute{Type: AttrVec4, V4: a.V4.Mul(w0).Add(b.V4.Mul(w1)).Add(c.V4.Mul(w2))}
	default:
		return Attribute{}
	}
}

// InVertex is the input to the vertex kernel: the resolved invocation id
// and the attributes fetched for it.
type InVertex struct {
	GLVertexID uint32
	Attributes [maxAttributes]Attribute
}

// OutVertex is the output of the vertex kernel: clip-space position and
// any vs→fs attributes the kernel chose to emit.
type OutVertex struct {
	GLPosition mgl32.Vec4
	Attributes [maxAttributes]Attribute
}

// ScreenVertex is a vertex after perspective divide and viewport mapping.
// X, Y are pixel coordinates, Z is retained NDC depth, and W is 1/w from
// the pre-divide clip-space position, kept for perspective correction.
type ScreenVertex struct {
	X, Y, Z    float32
	W          float32
	Attributes [maxAttributes]Attribute
}

// InFragment is the input to the fragment kernel.
type InFragment struct {
	GLFragCoord mgl32.Vec4
	Attributes  [maxAttributes]Attribute
}

// OutFragment is the output of the fragment kernel.
type OutFragment struct {
	GLFragColor mgl32.Vec4
}

// Triangle groups three screen-space vertices ready for rasterization.
type Triangle struct {
	V0, V1, V2 ScreenVertex
}
