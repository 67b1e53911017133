package raster

import "math"

// IndexType is the element type of an index buffer.
type IndexType uint8

const (
	IndexU8 IndexType = iota
	IndexU16
	IndexU32
)

// IndexBinding addresses an index buffer. A nil IndexBinding (or a
// VertexArray whose Indices field is nil) means vertex id equals the
// draw-call invocation index.
type IndexBinding struct {
	Data []byte
	Type IndexType
}

// VertexAttribute describes one bound attribute slot: a typed, strided
// view over a backing buffer of little-endian float32 values.
type VertexAttribute struct {
	Type   AttributeType
	Data   []byte
	Stride int
	Offset int
}

// VertexArray is the set of bound attribute slots plus the optional index
// binding for a draw.
type VertexArray struct {
	Attributes [maxAttributes]VertexAttribute
	Indices    *IndexBinding
}

// resolveVertexID returns the vertex id for invocation k: k itself when
// there is no index binding, or the zero-extended k-th index otherwise.
func resolveVertexID(ib *IndexBinding, k int) uint32 {
	if ib == nil {
		return uint32(k)
	}
	switch ib.Type {
	case IndexU8:
		return uint32(ib.Data[k])
	case IndexU16:
		off := k * 2
		return uint32(ib.Data[off]) | uint32(ib.Data[off+1])<<8
	case IndexU32:
		off := k * 4
		return uint32(ib.Data[off]) | uint32(ib.Data[off+1])<<8 |
			uint32(ib.Data[off+2])<<16 | uint32(ib.Data[off+3])<<24
	default:
		return uint32(k)
	}
}

// readFloat32 reads one little-endian float32 at byte offset off.
func readFloat32(data []byte, off int) float32 {
	bits := uint32(data[off]) | uint32(data[off+1])<<8 |
		uint32(data[off+2])<<16 | uint32(data[off+3])<<24
	return math.Float32frombits(bits)
}

// FetchVertex resolves the vertex id for invocation k and pulls its bound
// attributes into an InVertex. Out-of-range reads panic via ordinary
// slice-bounds checks; callers guarantee buffers are large enough.
func FetchVertex(va *VertexArray, k int) InVertex {
	id := resolveVertexID(va.Indices, k)
	in := InVertex{GLVertexID: id}

	for i := 0; i < maxAttributes; i++ {
		slot := &va.Attributes[i]
		if slot.Type == AttrEmpty {
			continue
		}
		base := slot.Offset + slot.Stride*int(id)
		switch slot.Type {
		case AttrF32:
			in.Attributes[i] = F32(readFloat32(slot.Data, base))
		case AttrVec2:
			in.Attributes[i] = Vec2Attr([2]float32{
				readFloat32(slot.Data, base),
				readFloat32(slot.Data, base+4),
			})
		case AttrVec3:
			in.Attributes[i] = Vec3Attr([3]float32{
				readFloat32(slot.Data, base),
				readFloat32(slot.Data, base+4),
				readFloat32(slot.Data, base+8),
			})
		case AttrVec4:
			in.Attributes[i] = Vec4Attr([4]float32{
				readFloat32(slot.Data, base),
				readFloat32(slot.Data, base+4),
				readFloat32(slot.Data, base+8),
				readFloat32(slot.Data, base+12),
			})
		}
	}
	return in
}
