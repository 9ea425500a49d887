package cpu

import (
	"fmt"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// Conj returns the element-wise complex conjugate of x.
// For real dtypes the input is returned as a shared-buffer clone.
func (cpu *CPUBackend) Conj(x *tensor.RawTensor) *tensor.RawTensor {
	if !x.DType().IsComplex() {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("conj: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Complex64:
		src := x.AsComplex64()
		dst := result.AsComplex64()
		for i := range dst {
			dst[i] = complex(real(src[i]), -imag(src[i]))
		}
	case tensor.Complex128:
		src := x.AsComplex128()
		dst := result.AsComplex128()
		for i := range dst {
			dst[i] = complex(real(src[i]), -imag(src[i]))
		}
	}

	return result
}

// Cast converts the tensor to a different data type.
// Casting a complex tensor to a real dtype keeps the real part.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: failed to create result tensor: %v", err))
	}

	// Widen through complex128, then narrow into the target dtype.
	vals := make([]complex128, x.NumElements())
	switch x.DType() {
	case tensor.Float32:
		for i, v := range x.AsFloat32() {
			vals[i] = complex(float64(v), 0)
		}
	case tensor.Float64:
		for i, v := range x.AsFloat64() {
			vals[i] = complex(v, 0)
		}
	case tensor.Complex64:
		for i, v := range x.AsComplex64() {
			vals[i] = complex128(v)
		}
	case tensor.Complex128:
		copy(vals, x.AsComplex128())
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", x.DType()))
	}

	switch dtype {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range vals {
			dst[i] = float32(real(v))
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range vals {
			dst[i] = real(v)
		}
	case tensor.Complex64:
		dst := result.AsComplex64()
		for i, v := range vals {
			dst[i] = complex64(v)
		}
	case tensor.Complex128:
		copy(result.AsComplex128(), vals)
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", dtype))
	}

	return result
}
