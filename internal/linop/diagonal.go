package linop

import (
	"fmt"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// Diagonal is a linear operator that multiplies the model element-wise
// by a stored vector, the matrix-free equivalent of a diagonal matrix.
type Diagonal struct {
	opMeta
	diag  *tensor.RawTensor
	diagH *tensor.RawTensor // conjugate of diag, used in adjoint mode
}

// NewDiagonal creates a diagonal operator from a flat vector.
// The operator dtype is the vector's dtype.
func NewDiagonal(b tensor.Backend, diag *tensor.RawTensor) (*Diagonal, error) {
	if len(diag.Shape()) != 1 {
		return nil, fmt.Errorf("diagonal: diag must be 1-D, got shape %v", diag.Shape())
	}

	n := diag.NumElements()
	return &Diagonal{
		opMeta: opMeta{
			shape:    OpShape{Rows: n, Cols: n},
			dtype:    diag.DType(),
			explicit: false,
			clinear:  true,
			backend:  b,
		},
		diag:  diag,
		diagH: b.Conj(diag),
	}, nil
}

// Matvec multiplies x element-wise by the diagonal.
func (d *Diagonal) Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkInput("matvec", x, d.shape.Cols, d.dtype); err != nil {
		return nil, err
	}
	return d.backend.Mul(x, d.diag), nil
}

// Rmatvec multiplies y element-wise by the conjugated diagonal.
func (d *Diagonal) Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkInput("rmatvec", y, d.shape.Rows, d.dtype); err != nil {
		return nil, err
	}
	return d.backend.Mul(y, d.diagH), nil
}
