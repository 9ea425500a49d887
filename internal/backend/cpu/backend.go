// Package cpu implements the pure Go CPU backend for tensor operations.
package cpu

import (
	"fmt"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition. Both tensors must have the same
// shape and dtype.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkElementwise("add", a, b)

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("add: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		addKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		addKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Complex64:
		addKernel(result.AsComplex64(), a.AsComplex64(), b.AsComplex64())
	case tensor.Complex128:
		addKernel(result.AsComplex128(), a.AsComplex128(), b.AsComplex128())
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s", a.DType()))
	}

	return result
}

// Mul performs element-wise multiplication. Both tensors must have the
// same shape and dtype.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkElementwise("mul", a, b)

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		mulKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		mulKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Complex64:
		mulKernel(result.AsComplex64(), a.AsComplex64(), b.AsComplex64())
	case tensor.Complex128:
		mulKernel(result.AsComplex128(), a.AsComplex128(), b.AsComplex128())
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %s", a.DType()))
	}

	return result
}

// Reshape returns a tensor with the same data but a different shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}

	copy(result.Data(), t.Data())
	return result
}

func checkElementwise(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}
}
