package raster

// barycentricWeights turns three raw edge-function values (already scaled
// by 1/triangle-area) into perspective-corrected weights using the
// pre-divide w stored on each screen vertex, plus the uncorrected weights
// themselves (needed for depth, which is deliberately not
// perspective-corrected).
func barycentricWeights(l0, l1, l2 float32, tri Triangle) (corrected, linear [3]float32) {
	linear = [3]float32{l0, l1, l2}

	s := l0*tri.V0.W + l1*tri.V1.W + l2*tri.V2.W
	corrected = [3]float32{
		(l0 * tri.V0.W) / s,
		(l1 * tri.V1.W) / s,
		(l2 * tri.V2.W) / s,
	}
	return
}

// interpolateDepth linearly blends NDC z using the uncorrected
// barycentric weights — matching hardware's post-divide z interpolation,
// not a perspective-corrected blend.
func interpolateDepth(w [3]float32, tri Triangle) float32 {
	return w[0]*tri.V0.Z + w[1]*tri.V1.Z + w[2]*tri.V2.Z
}

// interpolateAttributes blends each active vs→fs attribute slot using
// perspective-corrected weights. vs2fs, not the attribute cells' own Type
// tags, is authoritative for which slots are live and at what arity: the
// tag written at fetch binds the vertex kernel's inputs, but vs2fs[i]
// governs interpretation at this, the interpolation stage.
func interpolateAttributes(w [3]float32, tri Triangle, vs2fs [maxAttributes]AttributeType) [maxAttributes]Attribute {
	var out [maxAttributes]Attribute
	for i := 0; i < maxAttributes; i++ {
		if vs2fs[i] == AttrEmpty {
			continue
		}
		out[i] = blendAttribute(
			vs2fs[i], tri.V0.Attributes[i], tri.V1.Attributes[i], tri.V2.Attributes[i], w[0], w[1], w[2])
	}
	return out
}
