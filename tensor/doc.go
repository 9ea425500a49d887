// Copyright 2026 The matfree Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the array substrate used by
// matfree linear operators.
//
// # Overview
//
// The package defines core types for type-safe flat-buffer arrays:
//   - Tensor[T, B]: High-level generic tensor with type safety
//   - RawTensor: Low-level dtype-tagged buffer
//   - Backend: Interface for device-specific compute implementations
//   - Shape, DataType, Device: Core type definitions
//
// Four element types are supported: float32, float64, complex64 and
// complex128. Complex support is first-class because linear-operator
// adjoints are conjugate transposes.
//
// # Basic Usage
//
//	import (
//	    "github.com/matfree-ml/matfree/backend/cpu"
//	    "github.com/matfree-ml/matfree/tensor"
//	)
//
//	backend := cpu.New()
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//
// # Thread Safety
//
// Tensors are plain value containers; concurrent reads are safe,
// concurrent writes to the same buffer are not synchronized.
package tensor
