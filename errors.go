package swrast

import "errors"

// ErrNilVertexKernel is returned by DrawTriangles when the bound program
// has no vertex kernel.
var ErrNilVertexKernel = errors.New("swrast: program has no vertex kernel")

// ErrNilFragmentKernel is returned by DrawTriangles when the bound
// program has no fragment kernel.
var ErrNilFragmentKernel = errors.New("swrast: program has no fragment kernel")

// ErrVertexCountNotMultipleOf3 is returned by DrawTriangles when the
// requested vertex count cannot be partitioned into whole triangles.
var ErrVertexCountNotMultipleOf3 = errors.New("swrast: vertex count is not a multiple of 3")
