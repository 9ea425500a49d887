package linop

import (
	"fmt"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// Adjoint returns the adjoint (conjugate-transpose) of op as an
// operator: forward and adjoint application swap places. Taking the
// adjoint twice returns the original operator.
func Adjoint(op Operator) Operator {
	if a, ok := op.(*adjointOp); ok {
		return a.op
	}
	return &adjointOp{
		opMeta: opMeta{
			shape:    op.Shape().Transposed(),
			dtype:    op.DType(),
			explicit: op.Explicit(),
			clinear:  op.CLinear(),
			backend:  op.Backend(),
		},
		op: op,
	}
}

type adjointOp struct {
	opMeta
	op Operator
}

func (a *adjointOp) Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return a.op.Rmatvec(x)
}

func (a *adjointOp) Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error) {
	return a.op.Matvec(y)
}

// Scale returns alpha * op. A scalar with a non-zero imaginary part
// requires a complex operator dtype.
func Scale(op Operator, alpha complex128) (Operator, error) {
	if imag(alpha) != 0 && !op.DType().IsComplex() {
		return nil, fmt.Errorf("scale: %w: complex scalar %v over %s operator",
			ErrDTypeMismatch, alpha, op.DType())
	}
	return &scaledOp{
		opMeta: opMeta{
			shape:    op.Shape(),
			dtype:    op.DType(),
			explicit: false,
			clinear:  op.CLinear(),
			backend:  op.Backend(),
		},
		op:    op,
		alpha: alpha,
	}, nil
}

type scaledOp struct {
	opMeta
	op    Operator
	alpha complex128
}

func (s *scaledOp) Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	y, err := s.op.Matvec(x)
	if err != nil {
		return nil, err
	}
	return s.backend.MulScalar(y, scalarFor(s.dtype, s.alpha)), nil
}

// Rmatvec scales by the conjugated scalar: (αA)ᴴ = conj(α) Aᴴ.
func (s *scaledOp) Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := s.op.Rmatvec(y)
	if err != nil {
		return nil, err
	}
	conj := complex(real(s.alpha), -imag(s.alpha))
	return s.backend.MulScalar(x, scalarFor(s.dtype, conj)), nil
}

// scalarFor converts a canonical complex128 scalar into the concrete
// value a backend expects for the given dtype.
func scalarFor(dt tensor.DataType, z complex128) any {
	switch dt {
	case tensor.Float32:
		return float32(real(z))
	case tensor.Float64:
		return real(z)
	case tensor.Complex64:
		return complex64(z)
	default:
		return z
	}
}

// Add returns the operator sum a + b. Both operators must share shape
// and dtype.
func Add(a, b Operator) (Operator, error) {
	if a.Shape() != b.Shape() {
		return nil, fmt.Errorf("add: %w: %s vs %s", ErrShapeMismatch, a.Shape(), b.Shape())
	}
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("add: %w: %s vs %s", ErrDTypeMismatch, a.DType(), b.DType())
	}
	return &sumOp{
		opMeta: opMeta{
			shape:    a.Shape(),
			dtype:    a.DType(),
			explicit: false,
			clinear:  a.CLinear() && b.CLinear(),
			backend:  a.Backend(),
		},
		a: a,
		b: b,
	}, nil
}

type sumOp struct {
	opMeta
	a Operator
	b Operator
}

func (s *sumOp) Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	ya, err := s.a.Matvec(x)
	if err != nil {
		return nil, err
	}
	yb, err := s.b.Matvec(x)
	if err != nil {
		return nil, err
	}
	return s.backend.Add(ya, yb), nil
}

func (s *sumOp) Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error) {
	xa, err := s.a.Rmatvec(y)
	if err != nil {
		return nil, err
	}
	xb, err := s.b.Rmatvec(y)
	if err != nil {
		return nil, err
	}
	return s.backend.Add(xa, xb), nil
}

// Compose returns the operator product a @ b: b is applied first, then
// a. Requires cols(a) == rows(b); dtypes must match.
func Compose(a, b Operator) (Operator, error) {
	if a.Shape().Cols != b.Shape().Rows {
		return nil, fmt.Errorf("compose: %w: %s @ %s", ErrShapeMismatch, a.Shape(), b.Shape())
	}
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("compose: %w: %s vs %s", ErrDTypeMismatch, a.DType(), b.DType())
	}
	return &chainOp{
		opMeta: opMeta{
			shape:    OpShape{Rows: a.Shape().Rows, Cols: b.Shape().Cols},
			dtype:    a.DType(),
			explicit: false,
			clinear:  a.CLinear() && b.CLinear(),
			backend:  a.Backend(),
		},
		a: a,
		b: b,
	}, nil
}

type chainOp struct {
	opMeta
	a Operator
	b Operator
}

func (c *chainOp) Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	y, err := c.b.Matvec(x)
	if err != nil {
		return nil, err
	}
	return c.a.Matvec(y)
}

// Rmatvec applies the adjoints in reverse order: (AB)ᴴ = Bᴴ Aᴴ.
func (c *chainOp) Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error) {
	x, err := c.a.Rmatvec(y)
	if err != nil {
		return nil, err
	}
	return c.b.Rmatvec(x)
}
