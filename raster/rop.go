package raster

// DepthTestAndBlend performs the fixed raster-operation sequence for one
// shaded fragment: depth test against the framebuffer, alpha-gated depth
// write, and alpha-weighted color blend. depth must already be the
// fragment's interpolated NDC z; color is the fragment kernel's output.
//
// Semi-transparent fragments (alpha <= 0.5) do not write depth, so later,
// farther fragments are not occluded by near-transparent ones — a
// deliberate asymmetry between the depth and color writes.
func DepthTestAndBlend(fb *Framebuffer, x, y int, depth float32, color [4]float32) {
	idx := y*fb.Width + x
	if depth >= fb.Depth[idx] {
		return
	}

	a := color[3]
	if a > 0.5 {
		fb.Depth[idx] = depth
	}

	base := idx * 4
	for c := 0; c < 4; c++ {
		dst := float32(fb.Color[base+c]) / 255
		blended := dst*(1-a) + color[c]*a
		fb.Color[base+c] = toByte(clamp01(blended))
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
