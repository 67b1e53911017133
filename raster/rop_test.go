package raster

import "testing"

func TestDepthTestRejectsFartherFragment(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Clear(0, 0, 0, 0)

	DepthTestAndBlend(fb, 0, 0, 0.2, [4]float32{1, 1, 1, 1})
	firstDepth := fb.Depth[0]
	firstColor := [4]byte{fb.Color[0], fb.Color[1], fb.Color[2], fb.Color[3]}

	DepthTestAndBlend(fb, 0, 0, 0.8, [4]float32{0, 0, 0, 1})

	if fb.Depth[0] != firstDepth {
		t.Errorf("depth = %v, want unchanged %v", fb.Depth[0], firstDepth)
	}
	got := [4]byte{fb.Color[0], fb.Color[1], fb.Color[2], fb.Color[3]}
	if got != firstColor {
		t.Errorf("color = %v, want unchanged %v", got, firstColor)
	}
}

func TestAlphaGatedDepthWrite(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Clear(0, 0, 0, 0)

	DepthTestAndBlend(fb, 0, 0, 0.4, [4]float32{1, 1, 1, 0.3})

	if fb.Depth[0] != clearDepth {
		t.Errorf("depth = %v, want unchanged clear sentinel %v (alpha <= 0.5 must not write depth)",
			fb.Depth[0], clearDepth)
	}

	// clear color is (0,0,0,0); out is (1,1,1,0.3); blended channel c:
	// clamp(0*(1-0.3) + 1*0.3, 0, 1)*255 = 0.3*255 = 76 (floor).
	want := byte(76)
	for c := 0; c < 3; c++ {
		if fb.Color[c] != want {
			t.Errorf("channel %d = %d, want %d", c, fb.Color[c], want)
		}
	}
}

func TestDepthPassOpaqueOverwritesFully(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Clear(0, 0, 0, 0)

	DepthTestAndBlend(fb, 0, 0, 0.1, [4]float32{0.2, 0.4, 0.6, 1})

	if fb.Depth[0] != 0.1 {
		t.Errorf("depth = %v, want 0.1", fb.Depth[0])
	}
	want := [4]byte{toByte(0.2), toByte(0.4), toByte(0.6), 255}
	got := [4]byte{fb.Color[0], fb.Color[1], fb.Color[2], fb.Color[3]}
	if got != want {
		t.Errorf("color = %v, want %v", got, want)
	}
}
