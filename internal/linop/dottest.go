package linop

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// DotTest verifies the adjoint identity <Op u, v> ≈ <u, Opᴴ v> for
// random vectors u and v, within relative tolerance rtol. A failing dot
// test means forward and adjoint do not implement the same linear map.
func DotTest(op Operator, rtol float64) error {
	u := randomRaw(tensor.Shape{op.Shape().Cols}, op.DType(), op.Backend().Device())
	v := randomRaw(tensor.Shape{op.Shape().Rows}, op.DType(), op.Backend().Device())

	y, err := op.Matvec(u)
	if err != nil {
		return fmt.Errorf("dottest: forward: %w", err)
	}
	x, err := op.Rmatvec(v)
	if err != nil {
		return fmt.Errorf("dottest: adjoint: %w", err)
	}

	lhs := dot(y, v) // <Op u, v>
	rhs := dot(u, x) // <u, Opᴴ v>

	scale := math.Max(cmplx.Abs(lhs), cmplx.Abs(rhs))
	if scale == 0 {
		return nil
	}
	if cmplx.Abs(lhs-rhs)/scale > rtol {
		return fmt.Errorf("dottest: adjoint identity violated: <Op u, v> = %v, <u, Opᴴ v> = %v", lhs, rhs)
	}
	return nil
}

// dot computes the inner product Σ a_i · conj(b_i) as complex128.
func dot(a, b *tensor.RawTensor) complex128 {
	var sum complex128
	switch a.DType() {
	case tensor.Float32:
		av, bv := a.AsFloat32(), b.AsFloat32()
		for i := range av {
			sum += complex(float64(av[i])*float64(bv[i]), 0)
		}
	case tensor.Float64:
		av, bv := a.AsFloat64(), b.AsFloat64()
		for i := range av {
			sum += complex(av[i]*bv[i], 0)
		}
	case tensor.Complex64:
		av, bv := a.AsComplex64(), b.AsComplex64()
		for i := range av {
			sum += complex128(av[i]) * cmplx.Conj(complex128(bv[i]))
		}
	case tensor.Complex128:
		av, bv := a.AsComplex128(), b.AsComplex128()
		for i := range av {
			sum += av[i] * cmplx.Conj(bv[i])
		}
	}
	return sum
}

// randomRaw fills a new tensor with standard normal samples (independent
// real and imaginary parts for complex dtypes).
func randomRaw(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("dottest: %v", err))
	}

	switch dtype {
	case tensor.Float32:
		dst := raw.AsFloat32()
		for i := range dst {
			dst[i] = float32(gaussSample())
		}
	case tensor.Float64:
		dst := raw.AsFloat64()
		for i := range dst {
			dst[i] = gaussSample()
		}
	case tensor.Complex64:
		dst := raw.AsComplex64()
		for i := range dst {
			dst[i] = complex(float32(gaussSample()), float32(gaussSample()))
		}
	case tensor.Complex128:
		dst := raw.AsComplex128()
		for i := range dst {
			dst[i] = complex(gaussSample(), gaussSample())
		}
	}
	return raw
}

// gaussSample draws one sample from N(0, 1) via Box-Muller.
func gaussSample() float64 {
	u1 := rand.Float64() //nolint:gosec // G404: math/rand is intentional for numerics
	for u1 == 0 {
		u1 = rand.Float64() //nolint:gosec // G404
	}
	u2 := rand.Float64() //nolint:gosec // G404
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}
