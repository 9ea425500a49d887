// Copyright 2026 The matfree Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/matfree-ml/matfree/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// A backend is resolved once, at operator construction time, and carried
// by the operator for the rest of its life.
//
// Implementations:
//   - backend/cpu: Pure Go CPU backend
//   - backend/cuda, backend/webgpu: planned
//
// Example:
//
//	import (
//	    "github.com/matfree-ml/matfree/backend/cpu"
//	    "github.com/matfree-ml/matfree/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
type Backend = tensor.Backend
