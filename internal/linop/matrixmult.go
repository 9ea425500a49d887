package linop

import (
	"fmt"
	"log/slog"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// MatrixMult is a linear operator backed by an explicit matrix A.
//
// Without other dimensions the operator models plain matrix-vector
// multiplication and is explicit. With other dimensions it applies A
// independently to each column of a higher-dimensional model whose
// leading axis matches A, working on the flattened buffer.
type MatrixMult struct {
	opMeta
	a          Matrix
	complexMat bool
	dims       tensor.Shape // model shape before flattening
	dimsd      tensor.Shape // data shape before flattening
	dimsFlat   tensor.Shape // 2-D working shape of the model
	dimsdFlat  tensor.Shape // 2-D working shape of the data
	reshape    bool
}

type matrixMultConfig struct {
	otherDims []int
	dtype     tensor.DataType
	logger    *slog.Logger
}

// MatrixMultOption configures a MatrixMult operator.
type MatrixMultOption func(*matrixMultConfig)

// WithOtherDims declares extra trailing model dimensions the matrix is
// broadcast over: A is applied independently to each column of a model
// of shape (cols(A), otherdims...).
func WithOtherDims(dims ...int) MatrixMultOption {
	return func(cfg *matrixMultConfig) {
		cfg.otherDims = dims
	}
}

// WithDType sets the element type the operator works in.
// Defaults to Float64.
func WithDType(dt tensor.DataType) MatrixMultOption {
	return func(cfg *matrixMultConfig) {
		cfg.dtype = dt
	}
}

// WithLogger sets the logger used for construction-time advisories.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) MatrixMultOption {
	return func(cfg *matrixMultConfig) {
		cfg.logger = l
	}
}

// NewMatrixMult creates a matrix multiplication operator around A.
//
// If A holds complex values and the requested dtype is not complex, the
// dtype is promoted to A's dtype and a warning is logged; the promotion
// is advisory, not an error. A dense A whose storage dtype differs from
// the operator dtype is cast once, here, so every application runs in
// the operator dtype.
func NewMatrixMult(a Matrix, opts ...MatrixMultOption) (*MatrixMult, error) {
	cfg := matrixMultConfig{
		dtype:  tensor.Float64,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, cols := a.Dims()
	complexMat := a.DType().IsComplex()

	// Upcast to complex when A is complex.
	dtype := cfg.dtype
	if complexMat && !dtype.IsComplex() {
		dtype = a.DType()
		cfg.logger.Warn("matrix is complex, dtype cast", "dtype", dtype.String())
	}

	a, err := alignMatrixDType(a, dtype)
	if err != nil {
		return nil, err
	}

	m := &MatrixMult{
		a:          a,
		complexMat: complexMat,
	}

	if len(cfg.otherDims) == 0 {
		m.dims = tensor.Shape{cols}
		m.dimsd = tensor.Shape{rows}
		m.dimsFlat = tensor.Shape{cols, 1}
		m.dimsdFlat = tensor.Shape{rows, 1}
		m.reshape = false
		m.opMeta = opMeta{
			shape:    OpShape{Rows: rows, Cols: cols},
			dtype:    dtype,
			explicit: true,
			clinear:  true,
			backend:  a.Backend(),
		}
		return m, nil
	}

	other := tensor.Shape(cfg.otherDims).Clone()
	if err := other.Validate(); err != nil {
		return nil, fmt.Errorf("matrixmult: invalid otherdims: %w", err)
	}

	m.dims = append(tensor.Shape{cols}, other...)
	m.dimsd = append(tensor.Shape{rows}, other...)
	m.dimsFlat = tensor.Shape{cols, other.NumElements()}
	m.dimsdFlat = tensor.Shape{rows, other.NumElements()}
	m.reshape = true
	m.opMeta = opMeta{
		shape:    OpShape{Rows: m.dimsd.NumElements(), Cols: m.dims.NumElements()},
		dtype:    dtype,
		explicit: false,
		clinear:  true,
		backend:  a.Backend(),
	}
	return m, nil
}

// alignMatrixDType returns a matrix whose storage dtype equals the
// operator dtype. Dense matrices are cast through the backend; sparse
// matrices only support float64.
func alignMatrixDType(a Matrix, dtype tensor.DataType) (Matrix, error) {
	if a.DType() == dtype {
		return a, nil
	}
	d, ok := a.(*Dense)
	if !ok {
		return nil, fmt.Errorf("matrixmult: %s matrix cannot serve dtype %s; sparse matrices are float64 only",
			a.DType(), dtype)
	}
	return &Dense{raw: d.backend.Cast(d.raw, dtype), backend: d.backend}, nil
}

// A returns the wrapped matrix (in the operator's working dtype).
func (m *MatrixMult) A() Matrix {
	return m.a
}

// Complex reports whether the wrapped matrix holds complex values.
func (m *MatrixMult) Complex() bool {
	return m.complexMat
}

// Dims returns the model shape before flattening.
func (m *MatrixMult) Dims() tensor.Shape {
	return m.dims.Clone()
}

// Dimsd returns the data shape before flattening.
func (m *MatrixMult) Dimsd() tensor.Shape {
	return m.dimsd.Clone()
}

// Matvec computes A @ x on the flattened model buffer.
func (m *MatrixMult) Matvec(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkInput("matvec", x, m.shape.Cols, m.dtype); err != nil {
		return nil, err
	}

	xm := m.backend.Reshape(x, m.dimsFlat)
	y, err := m.a.Apply(xm, false)
	if err != nil {
		return nil, fmt.Errorf("matvec: %w", err)
	}
	return m.backend.Reshape(y, tensor.Shape{m.shape.Rows}), nil
}

// Rmatvec computes Aᴴ @ y on the flattened data buffer. For a real
// matrix the adjoint is the plain transpose.
func (m *MatrixMult) Rmatvec(y *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkInput("rmatvec", y, m.shape.Rows, m.dtype); err != nil {
		return nil, err
	}

	ym := m.backend.Reshape(y, m.dimsdFlat)
	x, err := m.a.Apply(ym, true)
	if err != nil {
		return nil, fmt.Errorf("rmatvec: %w", err)
	}
	return m.backend.Reshape(x, tensor.Shape{m.shape.Cols}), nil
}

// Inv returns the explicit inverse of A.
func (m *MatrixMult) Inv() (Matrix, error) {
	return m.a.Inv()
}
