// Package linop implements matrix-free linear operators: objects that
// behave like matrices but apply their forward and adjoint action through
// a function instead of a stored dense matrix.
package linop

import (
	"errors"
	"fmt"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// Sentinel errors returned by operator constructors and appliers.
var (
	// ErrInvalidAxes is returned when a transpose axes argument does not
	// form a permutation of the input dimensions.
	ErrInvalidAxes = errors.New("axes must contain each direction once")

	// ErrSizeMismatch is returned when an input buffer does not hold the
	// number of elements the operator expects.
	ErrSizeMismatch = errors.New("input size mismatch")

	// ErrDTypeMismatch is returned when an input dtype differs from the
	// operator dtype.
	ErrDTypeMismatch = errors.New("input dtype mismatch")

	// ErrNonSquare is returned when an explicit inverse is requested for
	// a non-square matrix.
	ErrNonSquare = errors.New("matrix is not square")

	// ErrShapeMismatch is returned when operators with incompatible
	// shapes are combined.
	ErrShapeMismatch = errors.New("operator shape mismatch")
)

// OpShape is the (rows, cols) pair of a linear operator: a Matvec maps
// Cols input elements to Rows output elements.
type OpShape struct {
	Rows int
	Cols int
}

func (s OpShape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Transposed returns the shape of the adjoint operator.
func (s OpShape) Transposed() OpShape {
	return OpShape{Rows: s.Cols, Cols: s.Rows}
}

// Operator is a linear map applied through forward and adjoint
// multiplication without necessarily materializing a matrix.
//
// Operators are immutable after construction and safe for concurrent
// Matvec/Rmatvec calls on the same instance.
type Operator interface {
	// Matvec applies the forward map to a flat tensor of Shape().Cols
	// elements and returns a flat tensor of Shape().Rows elements.
	Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error)

	// Rmatvec applies the adjoint (conjugate-transpose) map to a flat
	// tensor of Shape().Rows elements and returns Shape().Cols elements.
	Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error)

	// Shape returns the operator's (rows, cols) pair.
	Shape() OpShape

	// DType returns the element type the operator works in.
	DType() tensor.DataType

	// Explicit reports whether a concrete, retrievable matrix realizes
	// the mapping.
	Explicit() bool

	// CLinear reports whether the operator is homogeneous with respect
	// to complex scalars.
	CLinear() bool

	// Backend returns the compute backend the operator was constructed
	// with.
	Backend() tensor.Backend
}

// opMeta carries the metadata every concrete operator embeds.
type opMeta struct {
	shape    OpShape
	dtype    tensor.DataType
	explicit bool
	clinear  bool
	backend  tensor.Backend
}

func (m opMeta) Shape() OpShape          { return m.shape }
func (m opMeta) DType() tensor.DataType  { return m.dtype }
func (m opMeta) Explicit() bool          { return m.explicit }
func (m opMeta) CLinear() bool           { return m.clinear }
func (m opMeta) Backend() tensor.Backend { return m.backend }

// checkInput validates a flat input buffer against the expected element
// count and dtype before it is handed to the underlying primitive.
func checkInput(op string, x *tensor.RawTensor, want int, dtype tensor.DataType) error {
	if x.NumElements() != want {
		return fmt.Errorf("%s: %w: got %d elements, operator expects %d",
			op, ErrSizeMismatch, x.NumElements(), want)
	}
	if x.DType() != dtype {
		return fmt.Errorf("%s: %w: got %s, operator expects %s",
			op, ErrDTypeMismatch, x.DType(), dtype)
	}
	return nil
}

// Apply is a type-safe convenience wrapper around Operator.Matvec.
// The input tensor is flattened; the result has the operator's output
// length as its single dimension.
func Apply[T tensor.DType, B tensor.Backend](op Operator, x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	raw, err := op.Matvec(x.Raw())
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](raw, x.Backend()), nil
}

// ApplyAdjoint is a type-safe convenience wrapper around Operator.Rmatvec.
func ApplyAdjoint[T tensor.DType, B tensor.Backend](op Operator, y *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	raw, err := op.Rmatvec(y.Raw())
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](raw, y.Backend()), nil
}
