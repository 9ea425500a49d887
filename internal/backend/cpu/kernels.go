package cpu

import "github.com/matfree-ml/matfree/internal/tensor"

// Element-wise kernels shared by all dtypes. Requires len(dst) == len(a) == len(b).

func addKernel[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func mulKernel[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func mulScalarKernel[T tensor.DType](dst, src []T, scalar T) {
	for i := range dst {
		dst[i] = src[i] * scalar
	}
}

// matmulKernel performs naive matrix multiplication.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmulKernel[T tensor.DType](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// transposeKernel permutes the axes of src into dst.
// dst must be sized for the permuted shape.
func transposeKernel[T tensor.DType](dst, src []T, shape tensor.Shape, axes []int) {
	ndim := len(shape)
	srcStrides := shape.ComputeStrides()

	// Compute destination shape and strides
	dstShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		dstShape[i] = shape[ax]
	}
	dstStrides := dstShape.ComputeStrides()

	n := shape.NumElements()
	coords := make([]int, ndim)
	for i := 0; i < n; i++ {
		// Multi-dimensional coordinates in source
		idx := i
		for dim := 0; dim < ndim; dim++ {
			coords[dim] = idx / srcStrides[dim]
			idx %= srcStrides[dim]
		}

		// Flat index in destination after permuting coordinates
		dstIdx := 0
		for dstDim, srcDim := range axes {
			dstIdx += coords[srcDim] * dstStrides[dstDim]
		}

		dst[dstIdx] = src[i]
	}
}
