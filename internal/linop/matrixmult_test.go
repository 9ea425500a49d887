package linop

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matfree-ml/matfree/internal/backend/cpu"
	"github.com/matfree-ml/matfree/internal/tensor"
)

func rawFloat64(t *testing.T, shape tensor.Shape, values []float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat64(), values)
	return raw
}

func rawComplex128(t *testing.T, shape tensor.Shape, values []complex128) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Complex128, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsComplex128(), values)
	return raw
}

func denseFloat64(t *testing.T, r, c int, values []float64) *Dense {
	t.Helper()
	d, err := NewDense(rawFloat64(t, tensor.Shape{r, c}, values), cpu.New())
	require.NoError(t, err)
	return d
}

func TestMatrixMult_Matvec(t *testing.T) {
	a := denseFloat64(t, 2, 2, []float64{1, 2, 3, 4})

	op, err := NewMatrixMult(a)
	require.NoError(t, err)

	assert.Equal(t, OpShape{Rows: 2, Cols: 2}, op.Shape())
	assert.True(t, op.Explicit())
	assert.True(t, op.CLinear())
	assert.False(t, op.Complex())
	assert.Equal(t, tensor.Float64, op.DType())

	y, err := op.Matvec(rawFloat64(t, tensor.Shape{2}, []float64{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y.AsFloat64())

	x, err := op.Rmatvec(rawFloat64(t, tensor.Shape{2}, []float64{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, x.AsFloat64())
}

func TestMatrixMult_InputValidation(t *testing.T) {
	a := denseFloat64(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	op, err := NewMatrixMult(a)
	require.NoError(t, err)

	_, err = op.Matvec(rawFloat64(t, tensor.Shape{2}, []float64{1, 1}))
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = op.Rmatvec(rawFloat64(t, tensor.Shape{3}, []float64{1, 1, 1}))
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = op.Matvec(rawComplex128(t, tensor.Shape{3}, []complex128{1, 1, 1}))
	assert.ErrorIs(t, err, ErrDTypeMismatch)
}

func TestMatrixMult_OtherDims(t *testing.T) {
	a := denseFloat64(t, 2, 2, []float64{1, 2, 3, 4})

	op, err := NewMatrixMult(a, WithOtherDims(3))
	require.NoError(t, err)

	// Model (2, 3) flattened to 6; A applied independently to each of
	// the 3 trailing columns.
	assert.Equal(t, OpShape{Rows: 6, Cols: 6}, op.Shape())
	assert.False(t, op.Explicit())
	assert.Equal(t, tensor.Shape{2, 3}, op.Dims())
	assert.Equal(t, tensor.Shape{2, 3}, op.Dimsd())

	// x = [[1, 0, 1],
	//      [1, 1, 0]] (row-major flat)
	y, err := op.Matvec(rawFloat64(t, tensor.Shape{6}, []float64{1, 0, 1, 1, 1, 0}))
	require.NoError(t, err)
	// Column-wise: A@[1,1]=[3,7], A@[0,1]=[2,4], A@[1,0]=[1,3].
	assert.Equal(t, []float64{3, 2, 1, 7, 4, 3}, y.AsFloat64())

	require.NoError(t, DotTest(op, 1e-10))
}

func TestMatrixMult_OtherDimsInvalid(t *testing.T) {
	a := denseFloat64(t, 2, 2, []float64{1, 2, 3, 4})

	_, err := NewMatrixMult(a, WithOtherDims(0))
	assert.Error(t, err)
}

func TestMatrixMult_ComplexPromotion(t *testing.T) {
	raw := rawComplex128(t, tensor.Shape{1, 1}, []complex128{1i})
	a, err := NewDense(raw, cpu.New())
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// Requested real dtype is promoted to the matrix dtype with a warning.
	op, err := NewMatrixMult(a, WithDType(tensor.Float64), WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, tensor.Complex128, op.DType())
	assert.True(t, op.Complex())
	assert.Contains(t, buf.String(), "matrix is complex")
}

func TestMatrixMult_ComplexAdjoint(t *testing.T) {
	raw := rawComplex128(t, tensor.Shape{1, 1}, []complex128{1i})
	a, err := NewDense(raw, cpu.New())
	require.NoError(t, err)

	op, err := NewMatrixMult(a, WithDType(tensor.Complex128))
	require.NoError(t, err)

	// Aᴴ = [[-i]], so Rmatvec([1]) = [-i].
	x, err := op.Rmatvec(rawComplex128(t, tensor.Shape{1}, []complex128{1}))
	require.NoError(t, err)
	assert.Equal(t, complex128(-1i), x.AsComplex128()[0])

	require.NoError(t, DotTest(op, 1e-10))
}

func TestMatrixMult_DTypeCastAtConstruction(t *testing.T) {
	a := denseFloat64(t, 2, 2, []float64{1, 2, 3, 4})

	op, err := NewMatrixMult(a, WithDType(tensor.Float32))
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, op.DType())

	x, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(x.AsFloat32(), []float32{1, 1})

	y, err := op.Matvec(x)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 7}, y.AsFloat32())
}

func TestMatrixMult_Inv(t *testing.T) {
	a := denseFloat64(t, 2, 2, []float64{1, 2, 3, 4})

	op, err := NewMatrixMult(a)
	require.NoError(t, err)

	inv, err := op.Inv()
	require.NoError(t, err)

	got := inv.(*Dense).Raw().AsFloat64()
	want := []float64{-2, 1, 1.5, -0.5}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

func TestMatrixMult_InvComplex(t *testing.T) {
	raw := rawComplex128(t, tensor.Shape{2, 2}, []complex128{1i, 0, 0, 2})
	a, err := NewDense(raw, cpu.New())
	require.NoError(t, err)

	inv, err := a.Inv()
	require.NoError(t, err)

	got := inv.(*Dense).Raw().AsComplex128()
	want := []complex128{-1i, 0, 0, 0.5}
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-12)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-12)
	}
}

func TestMatrixMult_InvErrors(t *testing.T) {
	t.Run("NonSquare", func(t *testing.T) {
		a := denseFloat64(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
		op, err := NewMatrixMult(a)
		require.NoError(t, err)

		_, err = op.Inv()
		assert.ErrorIs(t, err, ErrNonSquare)
	})

	t.Run("Singular", func(t *testing.T) {
		a := denseFloat64(t, 2, 2, []float64{1, 2, 2, 4})
		op, err := NewMatrixMult(a)
		require.NoError(t, err)

		_, err = op.Inv()
		assert.Error(t, err)
	})
}

func TestMatrixMult_Sparse(t *testing.T) {
	// [[2, 0],
	//  [1, 3]]
	s, err := SparseFromTriplets(2, 2,
		[]int{0, 1, 1}, []int{0, 0, 1}, []float64{2, 1, 3}, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, 3, s.NNZ())

	op, err := NewMatrixMult(s)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, op.DType())

	y, err := op.Matvec(rawFloat64(t, tensor.Shape{2}, []float64{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, y.AsFloat64())

	x, err := op.Rmatvec(rawFloat64(t, tensor.Shape{2}, []float64{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3}, x.AsFloat64())

	require.NoError(t, DotTest(op, 1e-10))
}

func TestMatrixMult_SparseInv(t *testing.T) {
	s, err := SparseFromTriplets(2, 2,
		[]int{0, 1}, []int{0, 1}, []float64{2, 4}, cpu.New())
	require.NoError(t, err)

	inv, err := s.Inv()
	require.NoError(t, err)

	got := inv.(*Dense).Raw().AsFloat64()
	want := []float64{0.5, 0, 0, 0.25}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

func TestMatrixMult_SparseRejectsNonFloat64DType(t *testing.T) {
	s, err := SparseFromTriplets(1, 1, []int{0}, []int{0}, []float64{1}, cpu.New())
	require.NoError(t, err)

	_, err = NewMatrixMult(s, WithDType(tensor.Float32))
	assert.Error(t, err)
}

func TestMatrixMult_DotTest(t *testing.T) {
	a := denseFloat64(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	op, err := NewMatrixMult(a)
	require.NoError(t, err)

	require.NoError(t, DotTest(op, 1e-10))
}
