package raster

import "github.com/go-gl/mathgl/mgl32"

// Sample performs nearest-pixel lookup with fract-based UV wrap. A nil
// texture (or nil Data) samples as transparent black at every
// coordinate.
func Sample(tex *Texture, uv mgl32.Vec2) mgl32.Vec4 {
	if tex == nil || tex.Data == nil {
		return mgl32.Vec4{0, 0, 0, 0}
	}

	u := fract(uv.X())
	v := fract(uv.Y())

	px := int(u*float32(tex.Width-1) + 0.5)
	py := int(v*float32(tex.Height-1) + 0.5)

	base := (py*tex.Width + px) * tex.Channels
	out := [4]float32{0, 0, 0, 1}
	for c := 0; c < tex.Channels && c < 4; c++ {
		out[c] = float32(tex.Data[base+c]) / 255
	}
	return mgl32.Vec4{out[0], out[1], out[2], out[3]}
}

func fract(x float32) float32 {
	f := x - float32(int(x))
	if f < 0 {
		f++
	}
	return f
}
