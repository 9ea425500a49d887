// Copyright 2026 The matfree Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32, Float64, Complex64 and Complex128 support
//   - The matrix-multiply, transpose and reshape primitives linear
//     operators delegate to
//
// # Basic Usage
//
//	import (
//	    "github.com/matfree-ml/matfree/backend/cpu"
//	    "github.com/matfree-ml/matfree/linop"
//	    "github.com/matfree-ml/matfree/tensor"
//	)
//
//	backend := cpu.New()
//	a, _ := linop.DenseFromSlice([]float64{1, 2, 3, 4}, 2, 2, backend)
//	op, _ := linop.NewMatrixMult(a)
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation is
// isolated and does not share mutable state.
package cpu
