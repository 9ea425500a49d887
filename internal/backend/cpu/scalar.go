package cpu

import (
	"fmt"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// MulScalar multiplies each element of the tensor by a scalar value.
// The scalar must be assertable to the tensor's element type.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mulScalar: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		mulScalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32))
	case tensor.Float64:
		mulScalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64))
	case tensor.Complex64:
		mulScalarKernel(result.AsComplex64(), x.AsComplex64(), scalar.(complex64))
	case tensor.Complex128:
		mulScalarKernel(result.AsComplex128(), x.AsComplex128(), scalar.(complex128))
	default:
		panic(fmt.Sprintf("mulScalar: unsupported dtype %s", x.DType()))
	}

	return result
}
