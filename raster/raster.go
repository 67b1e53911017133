package raster

// edgeFunction is the linear form E(x,y) = (y-Vy)*dx - (x-Vx)*dy,
// positive on one side of the directed edge (Vx,Vy) -> (Vx+dx, Vy+dy).
type edgeFunction struct {
	vx, vy float32
	dx, dy float32
}

func newEdgeFunction(fromX, fromY, toX, toY float32) edgeFunction {
	return edgeFunction{vx: fromX, vy: fromY, dx: toX - fromX, dy: toY - fromY}
}

func (e edgeFunction) eval(x, y float32) float32 {
	return (y-e.vy)*e.dx - (x-e.vx)*e.dy
}

// Fragment is one covered pixel produced by the rasterizer: its pixel
// coordinate, linearly interpolated NDC depth (per the spec's deliberate
// choice not to perspective-correct depth), and perspective-correct
// vs→fs attributes.
type Fragment struct {
	X, Y       int
	Depth      float32
	Attributes [maxAttributes]Attribute
}

// RasterCallback is invoked once per covered pixel.
type RasterCallback func(Fragment)

// Rasterize scans the bounding box of tri, clamped to the viewport,
// evaluating the three edge functions incrementally per Pineda's
// algorithm. A pixel at its center (x+0.5, y+0.5) is covered when all
// three edge functions are non-negative; there is no top-left exclusion,
// so pixels exactly on a shared edge are covered by both adjoining
// triangles. Triangles of the opposite winding to the fixed convention
// here (E >= 0 inside) are not rasterized; degenerate (zero-area)
// triangles produce no fragments and are logged at debug level. vs2fs
// declares, per slot, the arity interpolateAttributes interpolates at.
func Rasterize(tri Triangle, vp Viewport, vs2fs [maxAttributes]AttributeType, cb RasterCallback) {
	v0, v1, v2 := tri.V0, tri.V1, tri.V2

	minXf := min3(v0.X, v1.X, v2.X)
	maxXf := max3(v0.X, v1.X, v2.X)
	minYf := min3(v0.Y, v1.Y, v2.Y)
	maxYf := max3(v0.Y, v1.Y, v2.Y)

	minX := clampInt(int(minXf), 0, vp.Width-1)
	maxX := clampInt(int(maxXf), 0, vp.Width-1)
	minY := clampInt(int(minYf), 0, vp.Height-1)
	maxY := clampInt(int(maxYf), 0, vp.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	e01 := newEdgeFunction(v0.X, v0.Y, v1.X, v1.Y)
	e12 := newEdgeFunction(v1.X, v1.Y, v2.X, v2.Y)
	e20 := newEdgeFunction(v2.X, v2.Y, v0.X, v0.Y)

	area := e01.eval(v2.X, v2.Y)
	if area == 0 {
		Logger().Debug("raster: dropping degenerate triangle", "area", area)
		return
	}
	invArea := 1 / area

	startX, startY := float32(minX)+0.5, float32(minY)+0.5

	row0 := e01.eval(startX, startY)
	row1 := e12.eval(startX, startY)
	row2 := e20.eval(startX, startY)

	for y := minY; y <= maxY; y++ {
		v0row, v1row, v2row := row0, row1, row2

		for x := minX; x <= maxX; x++ {
			if v0row >= 0 && v1row >= 0 && v2row >= 0 {
				// Barycentric weights: lambda_i is opposite vertex i, so
				// the edge function spanning the *other* two vertices
				// gives lambda for the remaining vertex.
				l2 := v0row * invArea // edge01 spans V0,V1 -> weight for V2
				l0 := v1row * invArea // edge12 spans V1,V2 -> weight for V0
				l1 := v2row * invArea // edge20 spans V2,V0 -> weight for V1

				corrected, linear := barycentricWeights(l0, l1, l2, tri)

				cb(Fragment{
					X:          x,
					Y:          y,
					Depth:      interpolateDepth(linear, tri),
					Attributes: interpolateAttributes(corrected, tri, vs2fs),
				})
			}

			v0row -= e01.dy
			v1row -= e12.dy
			v2row -= e20.dy
		}

		row0 += e01.dx
		row1 += e12.dx
		row2 += e20.dx
	}
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
