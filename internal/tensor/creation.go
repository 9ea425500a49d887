package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, T(1), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1). Uses the Box-Muller transform. For complex types, the
// real and imaginary parts are drawn independently.
// Note: uses math/rand (not crypto/rand), appropriate for numerical tests.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dst := any(data).([]float32)
		for i := range dst {
			dst[i] = float32(gauss())
		}
	case float64:
		dst := any(data).([]float64)
		for i := range dst {
			dst[i] = gauss()
		}
	case complex64:
		dst := any(data).([]complex64)
		for i := range dst {
			dst[i] = complex(float32(gauss()), float32(gauss()))
		}
	case complex128:
		dst := any(data).([]complex128)
		for i := range dst {
			dst[i] = complex(gauss(), gauss())
		}
	}
	return t
}

// gauss draws one sample from N(0, 1) via Box-Muller.
func gauss() float64 {
	u1 := rand.Float64() //nolint:gosec // G404: math/rand is intentional for numerics
	u2 := rand.Float64() //nolint:gosec // G404: math/rand is intentional for numerics
	for u1 == 0 {
		u1 = rand.Float64() //nolint:gosec // G404
	}
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye[float64](3, backend) // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	for i := 0; i < n; i++ {
		t.Set(T(1), i, i)
	}
	return t
}
