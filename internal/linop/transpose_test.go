package linop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matfree-ml/matfree/internal/backend/cpu"
	"github.com/matfree-ml/matfree/internal/tensor"
)

func TestTranspose_Matvec(t *testing.T) {
	op, err := NewTranspose(cpu.New(), []int{2, 3}, []int{1, 0}, tensor.Float64)
	require.NoError(t, err)

	assert.Equal(t, OpShape{Rows: 6, Cols: 6}, op.Shape())
	assert.False(t, op.Explicit())
	assert.True(t, op.CLinear())
	assert.Equal(t, tensor.Shape{2, 3}, op.Dims())
	assert.Equal(t, tensor.Shape{3, 2}, op.Dimsd())

	// [[0, 1, 2],
	//  [3, 4, 5]] transposed, flattened row-major.
	y, err := op.Matvec(rawFloat64(t, tensor.Shape{6}, []float64{0, 1, 2, 3, 4, 5}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, y.AsFloat64())
}

func TestTranspose_AdjointRoundTrip(t *testing.T) {
	op, err := NewTranspose(cpu.New(), []int{2, 3, 4}, []int{2, 0, 1}, tensor.Float64)
	require.NoError(t, err)

	in := make([]float64, 24)
	for i := range in {
		in[i] = float64(i)
	}

	y, err := op.Matvec(rawFloat64(t, tensor.Shape{24}, in))
	require.NoError(t, err)

	// The adjoint is the inverse permutation: exact recovery.
	x, err := op.Rmatvec(y)
	require.NoError(t, err)
	assert.Equal(t, in, x.AsFloat64())
}

func TestTranspose_NegativeAxes(t *testing.T) {
	op, err := NewTranspose(cpu.New(), []int{2, 3}, []int{-1, -2}, tensor.Float64)
	require.NoError(t, err)

	y, err := op.Matvec(rawFloat64(t, tensor.Shape{6}, []float64{0, 1, 2, 3, 4, 5}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, y.AsFloat64())
}

func TestTranspose_InvalidAxes(t *testing.T) {
	b := cpu.New()

	t.Run("Repeated", func(t *testing.T) {
		_, err := NewTranspose(b, []int{3, 4}, []int{0, 0}, tensor.Float64)
		assert.ErrorIs(t, err, ErrInvalidAxes)
	})

	t.Run("WrongLength", func(t *testing.T) {
		_, err := NewTranspose(b, []int{3, 4}, []int{0}, tensor.Float64)
		assert.ErrorIs(t, err, ErrInvalidAxes)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := NewTranspose(b, []int{3, 4}, []int{0, 2}, tensor.Float64)
		assert.Error(t, err)
	})

	t.Run("EmptyDims", func(t *testing.T) {
		_, err := NewTranspose(b, nil, nil, tensor.Float64)
		assert.Error(t, err)
	})
}

func TestTranspose_InputValidation(t *testing.T) {
	op, err := NewTranspose(cpu.New(), []int{2, 3}, []int{1, 0}, tensor.Float64)
	require.NoError(t, err)

	_, err = op.Matvec(rawFloat64(t, tensor.Shape{5}, []float64{0, 1, 2, 3, 4}))
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = op.Matvec(rawComplex128(t, tensor.Shape{6}, make([]complex128, 6)))
	assert.ErrorIs(t, err, ErrDTypeMismatch)
}

func TestTranspose_DotTest(t *testing.T) {
	t.Run("Real", func(t *testing.T) {
		op, err := NewTranspose(cpu.New(), []int{3, 4, 5}, []int{1, 2, 0}, tensor.Float64)
		require.NoError(t, err)
		require.NoError(t, DotTest(op, 1e-10))
	})

	t.Run("Complex", func(t *testing.T) {
		op, err := NewTranspose(cpu.New(), []int{4, 5}, []int{1, 0}, tensor.Complex128)
		require.NoError(t, err)
		require.NoError(t, DotTest(op, 1e-10))
	})
}
