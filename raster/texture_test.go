package raster

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSampleMissingTextureIsTransparentBlack(t *testing.T) {
	got := Sample(nil, mgl32.Vec2{0.5, 0.5})
	want := mgl32.Vec4{0, 0, 0, 0}
	if got != want {
		t.Errorf("Sample(nil) = %v, want %v", got, want)
	}
}

func TestSampleNearestWithWrap(t *testing.T) {
	// 2x2 RGBA texture: distinct colors per texel.
	tex := &Texture{
		Width: 2, Height: 2, Channels: 4,
		Data: []byte{
			255, 0, 0, 255, 0, 255, 0, 255, // row 0: red, green
			0, 0, 255, 255, 255, 255, 0, 255, // row 1: blue, yellow
		},
	}

	// uv=(1.5, 0.5) wraps to (0.5, 0.5) via fract; nearest-pixel snap
	// (u*(W-1)+0.5 truncated) maps that to texel (1,1) -> yellow.
	got := Sample(tex, mgl32.Vec2{1.5, 0.5})
	want := mgl32.Vec4{1, 1, 0, 1}
	if got != want {
		t.Errorf("Sample wrapped uv = %v, want %v", got, want)
	}
}
