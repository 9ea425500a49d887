package linop

import "github.com/matfree-ml/matfree/internal/tensor"

// Identity is the n×n pass-through operator.
type Identity struct {
	opMeta
}

// NewIdentity creates an identity operator of size n.
func NewIdentity(b tensor.Backend, n int, dtype tensor.DataType) *Identity {
	return &Identity{
		opMeta: opMeta{
			shape:    OpShape{Rows: n, Cols: n},
			dtype:    dtype,
			explicit: false,
			clinear:  true,
			backend:  b,
		},
	}
}

// Matvec returns the input unchanged (as a shared-buffer clone).
func (id *Identity) Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkInput("matvec", x, id.shape.Cols, id.dtype); err != nil {
		return nil, err
	}
	return x.Clone(), nil
}

// Rmatvec returns the input unchanged (as a shared-buffer clone).
func (id *Identity) Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkInput("rmatvec", y, id.shape.Rows, id.dtype); err != nil {
		return nil, err
	}
	return y.Clone(), nil
}
