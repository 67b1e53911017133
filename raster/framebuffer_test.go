package raster

import "testing"

func TestFramebufferClearDeterminism(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(0.5, 0.25, 0.75, 1)

	wantR := byte(127) // floor(0.5*255) = 127
	wantG := byte(63)  // floor(0.25*255) = 63
	wantB := byte(191) // floor(0.75*255) = 191
	wantA := byte(255)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			idx := y*fb.Width + x
			base := idx * 4
			if fb.Color[base] != wantR || fb.Color[base+1] != wantG ||
				fb.Color[base+2] != wantB || fb.Color[base+3] != wantA {
				t.Fatalf("pixel (%d,%d) = %v, want (%d,%d,%d,%d)",
					x, y, fb.Color[base:base+4], wantR, wantG, wantB, wantA)
			}
			if fb.Depth[idx] != clearDepth {
				t.Fatalf("pixel (%d,%d) depth = %v, want %v", x, y, fb.Depth[idx], clearDepth)
			}
		}
	}
}

func TestToByteSaturates(t *testing.T) {
	tests := []struct {
		in   float32
		want byte
	}{
		{-1, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
