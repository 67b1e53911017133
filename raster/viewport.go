package raster

// Viewport maps NDC x,y into pixel space. No Y-flip is applied: pixel
// (0,0) is the lower corner, consistent with math convention rather than
// a top-left-origin presentation surface.
type Viewport struct {
	Width  int
	Height int
}

// PerspectiveDivideAndViewport divides x, y, z by w (leaving w itself
// intact, inverted, for later perspective correction) and maps the
// resulting NDC x,y into the given viewport's pixel space. z is retained
// in NDC for depth storage.
func PerspectiveDivideAndViewport(v OutVertex, vp Viewport) ScreenVertex {
	p := v.GLPosition
	w := p.W()
	invW := 1 / w

	ndcX := p.X() * invW
	ndcY := p.Y() * invW
	ndcZ := p.Z() * invW

	return ScreenVertex{
		X:          (ndcX*0.5 + 0.5) * float32(vp.Width),
		Y:          (ndcY*0.5 + 0.5) * float32(vp.Height),
		Z:          ndcZ,
		W:          invW,
		Attributes: v.Attributes,
	}
}
