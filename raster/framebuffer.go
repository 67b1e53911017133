package raster

// clearDepth is the sentinel value written to every depth pixel by
// Clear: finite, and comfortably larger than any depth a draw can
// produce (NDC z after perspective divide is bounded near [-1,1]).
const clearDepth = 1e10

// Framebuffer is the render target: a W*H depth plane and a W*H*4 RGBA8
// color plane, both row-major from (0,0).
type Framebuffer struct {
	Width  int
	Height int
	Depth  []float32
	Color  []byte
}

// NewFramebuffer allocates a framebuffer of the given size, cleared to
// opaque black.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Depth:  make([]float32, width*height),
		Color:  make([]byte, width*height*4),
	}
	fb.Clear(0, 0, 0, 1)
	return fb
}

// Clear resets depth to the sentinel far value and color to r,g,b,a
// scaled to [0,255] and saturated.
func (fb *Framebuffer) Clear(r, g, b, a float32) {
	cr, cg, cb, ca := toByte(r), toByte(g), toByte(b), toByte(a)
	for i := range fb.Depth {
		fb.Depth[i] = clearDepth
	}
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i+0] = cr
		fb.Color[i+1] = cg
		fb.Color[i+2] = cb
		fb.Color[i+3] = ca
	}
}

// toByte converts a float channel in [0,1] (or beyond) to a saturated u8
// via floor, per the clear-color contract ("min(255, floor(c*255))").
func toByte(c float32) byte {
	v := c * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Resize reallocates the framebuffer's planes for a new size and clears
// it to opaque black.
func (fb *Framebuffer) Resize(width, height int) {
	fb.Width = width
	fb.Height = height
	fb.Depth = make([]float32, width*height)
	fb.Color = make([]byte, width*height*4)
	fb.Clear(0, 0, 0, 1)
}
