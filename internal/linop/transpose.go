package linop

import (
	"fmt"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// Transpose is a linear operator that permutes the axes of a
// multi-dimensional model. It works on the flattened buffer: the input
// is reshaped to dims, its axes shuffled, and the result flattened
// again. The adjoint applies the inverse permutation, so a forward
// followed by an adjoint recovers the original layout exactly.
type Transpose struct {
	opMeta
	dims  tensor.Shape // model shape
	dimsd tensor.Shape // data shape (permuted model shape)
	axes  []int        // forward permutation
	axesd []int        // inverse permutation
}

// NewTranspose creates an axis-permutation operator over a model of
// shape dims. axes must be a permutation of the model's axis indices;
// negative indices count from the last axis. dtype selects the element
// type the operator works in.
func NewTranspose(b tensor.Backend, dims, axes []int, dtype tensor.DataType) (*Transpose, error) {
	model := tensor.Shape(dims).Clone()
	if len(model) == 0 {
		return nil, fmt.Errorf("transpose: dims must not be empty")
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("transpose: invalid dims: %w", err)
	}

	ndim := len(model)
	norm := make([]int, len(axes))
	for i, ax := range axes {
		a, err := tensor.NormalizeAxis(ax, ndim)
		if err != nil {
			return nil, fmt.Errorf("transpose: %w", err)
		}
		norm[i] = a
	}

	// Every direction must appear exactly once.
	if len(norm) != ndim {
		return nil, fmt.Errorf("transpose: %w", ErrInvalidAxes)
	}
	seen := make([]bool, ndim)
	for _, ax := range norm {
		if seen[ax] {
			return nil, fmt.Errorf("transpose: %w", ErrInvalidAxes)
		}
		seen[ax] = true
	}

	// Inverse permutation for adjoint mode.
	axesd := make([]int, ndim)
	for i, ax := range norm {
		axesd[ax] = i
	}

	dimsd := make(tensor.Shape, ndim)
	for i, ax := range norm {
		dimsd[i] = model[ax]
	}

	return &Transpose{
		opMeta: opMeta{
			shape:    OpShape{Rows: dimsd.NumElements(), Cols: model.NumElements()},
			dtype:    dtype,
			explicit: false,
			clinear:  true,
			backend:  b,
		},
		dims:  model,
		dimsd: dimsd,
		axes:  norm,
		axesd: axesd,
	}, nil
}

// Dims returns the model shape.
func (t *Transpose) Dims() tensor.Shape {
	return t.dims.Clone()
}

// Dimsd returns the data shape (the permuted model shape).
func (t *Transpose) Dimsd() tensor.Shape {
	return t.dimsd.Clone()
}

// Matvec reshapes x to the model shape, permutes its axes and flattens.
func (t *Transpose) Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkInput("matvec", x, t.shape.Cols, t.dtype); err != nil {
		return nil, err
	}

	y := t.backend.Reshape(x, t.dims)
	y = t.backend.Transpose(y, t.axes...)
	return t.backend.Reshape(y, tensor.Shape{t.shape.Rows}), nil
}

// Rmatvec applies the inverse permutation, recovering the model layout.
func (t *Transpose) Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkInput("rmatvec", y, t.shape.Rows, t.dtype); err != nil {
		return nil, err
	}

	x := t.backend.Reshape(y, t.dimsd)
	x = t.backend.Transpose(x, t.axesd...)
	return t.backend.Reshape(x, tensor.Shape{t.shape.Cols}), nil
}
