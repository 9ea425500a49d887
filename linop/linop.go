// Copyright 2026 The matfree Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linop

import (
	"github.com/matfree-ml/matfree/internal/linop"
	"github.com/matfree-ml/matfree/tensor"
)

// Sentinel errors.
var (
	ErrInvalidAxes   = linop.ErrInvalidAxes
	ErrSizeMismatch  = linop.ErrSizeMismatch
	ErrDTypeMismatch = linop.ErrDTypeMismatch
	ErrNonSquare     = linop.ErrNonSquare
	ErrShapeMismatch = linop.ErrShapeMismatch
)

// Operator is a linear map applied through forward and adjoint
// multiplication without necessarily materializing a matrix.
type Operator = linop.Operator

// OpShape is the (rows, cols) pair of a linear operator.
type OpShape = linop.OpShape

// Matrix is the explicit matrix wrapped by a MatrixMult operator:
// either Dense or Sparse.
type Matrix = linop.Matrix

// Dense wraps a 2-D tensor as an explicit matrix.
type Dense = linop.Dense

// Sparse wraps a float64 CSR matrix as an explicit matrix.
type Sparse = linop.Sparse

// MatrixMult is a linear operator backed by an explicit matrix.
type MatrixMult = linop.MatrixMult

// Transpose is an axis-permutation operator.
type Transpose = linop.Transpose

// Identity is the n×n pass-through operator.
type Identity = linop.Identity

// Diagonal multiplies the model element-wise by a stored vector.
type Diagonal = linop.Diagonal

// MatrixMultOption configures a MatrixMult operator.
type MatrixMultOption = linop.MatrixMultOption

// Constructors and options.
var (
	NewDense           = linop.NewDense
	NewSparse          = linop.NewSparse
	SparseFromTriplets = linop.SparseFromTriplets
	NewMatrixMult      = linop.NewMatrixMult
	NewTranspose       = linop.NewTranspose
	NewIdentity        = linop.NewIdentity
	NewDiagonal        = linop.NewDiagonal
	WithOtherDims      = linop.WithOtherDims
	WithDType          = linop.WithDType
	WithLogger         = linop.WithLogger
)

// DenseFromSlice creates a Dense matrix from a row-major slice.
func DenseFromSlice[T tensor.DType, B tensor.Backend](data []T, r, c int, b B) (*Dense, error) {
	return linop.DenseFromSlice(data, r, c, b)
}

// Composition algebra.
var (
	// Adjoint returns the adjoint (conjugate-transpose) of op.
	Adjoint = linop.Adjoint
	// Scale returns alpha * op.
	Scale = linop.Scale
	// Add returns the operator sum a + b.
	Add = linop.Add
	// Compose returns the operator product a @ b (b applied first).
	Compose = linop.Compose
	// DotTest verifies the adjoint identity with random vectors.
	DotTest = linop.DotTest
)

// Apply is a type-safe convenience wrapper around Operator.Matvec.
func Apply[T tensor.DType, B tensor.Backend](op Operator, x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return linop.Apply(op, x)
}

// ApplyAdjoint is a type-safe convenience wrapper around Operator.Rmatvec.
func ApplyAdjoint[T tensor.DType, B tensor.Backend](op Operator, y *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return linop.ApplyAdjoint(op, y)
}
