package raster

// clipIntersect computes the parameter t at which the segment from "from"
// to "to" crosses the near plane z = -w, and the interpolated OutVertex at
// that point. Both from and to are OutVertex values in clip space.
func clipIntersect(from, to OutVertex) OutVertex {
	pf, pt := from.GLPosition, to.GLPosition
	denom := (pt.W() - pf.W()) + (pt.Z() - pf.Z())
	t := (-pf.W() - pf.Z()) / denom

	var out OutVertex
	out.GLPosition = pf.Add(pt.Sub(pf).Mul(t))
	for i := 0; i < maxAttributes; i++ {
		if from.Attributes[i].Type == AttrEmpty {
			continue
		}
		out.Attributes[i] = lerpAttribute(from.Attributes[i], to.Attributes[i], t)
	}
	return out
}

func insideNearPlane(v OutVertex) bool {
	return v.GLPosition.Z() >= -v.GLPosition.W()
}

// ClipNearPlane clips a triangle against the near plane z >= -w and writes
// the surviving triangles into out, a stack-resident buffer of capacity
// 2 (near-plane clipping of a single triangle produces at most two). It
// returns how many of out's entries were written.
func ClipNearPlane(v0, v1, v2 OutVertex, out *[2][3]OutVertex) int {
	verts := [3]OutVertex{v0, v1, v2}
	inside := [3]bool{insideNearPlane(v0), insideNearPlane(v1), insideNearPlane(v2)}
	n := 0
	for _, b := range inside {
		if b {
			n++
		}
	}

	switch n {
	case 3:
		out[0] = verts
		return 1

	case 0:
		Logger().Debug("raster: dropping fully near-plane-clipped triangle")
		return 0

	case 1:
		// Find the single inside vertex I and the two outside A, B, in
		// their original winding order.
		var ii int
		for i, b := range inside {
			if b {
				ii = i
			}
		}
		i0, i1, i2 := verts[ii], verts[(ii+1)%3], verts[(ii+2)%3]
		a := clipIntersect(i0, i1)
		b := clipIntersect(i0, i2)
		out[0] = [3]OutVertex{i0, a, b}
		Logger().Debug("raster: near-plane clip subdivided triangle", "verticesInside", 1, "trianglesOut", 1)
		return 1

	default: // n == 2
		// Find the single outside vertex O; the winding order is O, I1, I0,
		// so that I0 precedes O and I1 follows it.
		var oi int
		for i, b := range inside {
			if !b {
				oi = i
			}
		}
		o, i0, i1 := verts[oi], verts[(oi+2)%3], verts[(oi+1)%3]
		a := clipIntersect(o, i0)
		b := clipIntersect(o, i1)
		// Quad (I0, A, B, I1) in winding order; split along diagonal
		// (I0, B) into (I0, A, B) and (I0, B, I1), preserving orientation.
		out[0] = [3]OutVertex{i0, a, b}
		out[1] = [3]OutVertex{i0, b, i1}
		Logger().Debug("raster: near-plane clip subdivided triangle", "verticesInside", 2, "trianglesOut", 2)
		return 2
	}
}
