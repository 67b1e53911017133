package raster

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vertexAt(pos mgl32.Vec4) OutVertex {
	return OutVertex{GLPosition: pos, Attributes: [maxAttributes]Attribute{F32(pos.Z())}}
}

func TestClipNearPlaneAllInside(t *testing.T) {
	v0 := vertexAt(mgl32.Vec4{-1, -1, 0.5, 1})
	v1 := vertexAt(mgl32.Vec4{1, -1, 0.5, 1})
	v2 := vertexAt(mgl32.Vec4{0, 1, 0.5, 1})

	var out [2][3]OutVertex
	n := ClipNearPlane(v0, v1, v2, &out)
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if out[0] != [3]OutVertex{v0, v1, v2} {
		t.Errorf("triangle altered when fully inside")
	}
}

func TestClipNearPlaneAllOutside(t *testing.T) {
	v0 := vertexAt(mgl32.Vec4{-1, -1, -2, 1})
	v1 := vertexAt(mgl32.Vec4{1, -1, -2, 1})
	v2 := vertexAt(mgl32.Vec4{0, 1, -2, 1})

	var out [2][3]OutVertex
	n := ClipNearPlane(v0, v1, v2, &out)
	if n != 0 {
		t.Fatalf("n = %d, want 0", n)
	}
}

func TestClipNearPlaneTwoInside(t *testing.T) {
	// z/w = (-2, 0.5, 0.5) at w=1: vertex 0 outside, 1 and 2 inside.
	v0 := vertexAt(mgl32.Vec4{-1, -1, -2, 1})
	v1 := vertexAt(mgl32.Vec4{1, -1, 0.5, 1})
	v2 := vertexAt(mgl32.Vec4{0, 1, 0.5, 1})

	var out [2][3]OutVertex
	n := ClipNearPlane(v0, v1, v2, &out)
	if n != 2 {
		t.Fatalf("n = %d, want 2 (two inside produces a quad split into two triangles)", n)
	}

	for _, tri := range out[:n] {
		for _, v := range tri {
			onPlane := math.Abs(float64(v.GLPosition.Z()+v.GLPosition.W())) < 1e-4
			insideOrOnPlane := v.GLPosition.Z() >= -v.GLPosition.W()-1e-4
			if !insideOrOnPlane && !onPlane {
				t.Errorf("vertex %v lies outside the near plane after clipping", v.GLPosition)
			}
		}
	}
}

func TestClipNearPlaneOneInsideNewVerticesOnPlane(t *testing.T) {
	// Exercises the n=1-inside-vertex branch: the single inside vertex is
	// v1 here (z/w=0.5), v0 and v2 are outside (z/w=-2).
	v0 := vertexAt(mgl32.Vec4{-1, -1, -2, 1})
	v1 := vertexAt(mgl32.Vec4{1, -1, 0.5, 1})
	v2 := vertexAt(mgl32.Vec4{0, 1, -2, 1})

	var out [2][3]OutVertex
	n := ClipNearPlane(v0, v1, v2, &out)
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}

	tri := out[0]
	if tri[0] != v1 {
		t.Errorf("expected the single inside vertex to lead the emitted triangle")
	}
	for _, v := range tri[1:] {
		if math.Abs(float64(v.GLPosition.Z()+v.GLPosition.W())) > 1e-4 {
			t.Errorf("introduced vertex %v does not lie on z = -w", v.GLPosition)
		}
	}
}
