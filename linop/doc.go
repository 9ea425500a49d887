// Copyright 2026 The matfree Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linop provides matrix-free linear operators: objects that
// behave like matrices but apply their forward and adjoint action
// through a function instead of a stored dense matrix, enabling
// matrix-free computation over large or structured data.
//
// # Operators
//
//   - MatrixMult: wraps an explicit dense or sparse matrix, with
//     optional broadcasting over extra trailing model dimensions and an
//     explicit-inverse accessor
//   - Transpose: permutes the axes of a multi-dimensional model; the
//     adjoint is the inverse permutation
//   - Identity, Diagonal: small building blocks for composition
//
// Operators compose through Adjoint, Scale, Add and Compose, and every
// operator can be checked with DotTest, which verifies the
// adjoint/inner-product identity with random vectors.
//
// # Basic Usage
//
//	backend := cpu.New()
//	a, _ := linop.DenseFromSlice([]float64{1, 2, 3, 4}, 2, 2, backend)
//	op, _ := linop.NewMatrixMult(a)
//
//	x, _ := tensor.FromSlice([]float64{1, 1}, tensor.Shape{2}, backend)
//	y, _ := linop.Apply(op, x) // y.Data() == [3, 7]
//
// # Thread Safety
//
// Operators are immutable after construction. Matvec and Rmatvec are
// pure functions of their input and are safe to call concurrently on
// the same instance.
package linop
