package linop

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/matfree-ml/matfree/internal/tensor"
)

// Matrix is the explicit matrix wrapped by a MatrixMult operator.
// Two variants exist: Dense (any supported dtype, computed through the
// injected backend) and Sparse (float64 CSR storage, computed through
// gonum interop).
type Matrix interface {
	// Dims returns the number of rows and columns.
	Dims() (r, c int)

	// DType returns the element type of the matrix values.
	DType() tensor.DataType

	// Backend returns the compute backend the matrix was constructed with.
	Backend() tensor.Backend

	// Apply multiplies the matrix (adjoint=false) or its conjugate
	// transpose (adjoint=true) with a 2-D tensor of shape (c, k),
	// respectively (r, k).
	Apply(x *tensor.RawTensor, adjoint bool) (*tensor.RawTensor, error)

	// Inv returns the explicit inverse as a dense matrix. It fails for
	// non-square matrices and propagates the underlying linear-algebra
	// error for singular ones.
	Inv() (Matrix, error)
}

// Dense wraps a 2-D RawTensor as an explicit matrix.
type Dense struct {
	raw     *tensor.RawTensor
	backend tensor.Backend
}

// NewDense creates a Dense matrix from a 2-D raw tensor.
func NewDense(raw *tensor.RawTensor, b tensor.Backend) (*Dense, error) {
	if len(raw.Shape()) != 2 {
		return nil, fmt.Errorf("dense: matrix must be 2-D, got shape %v", raw.Shape())
	}
	return &Dense{raw: raw, backend: b}, nil
}

// DenseFromSlice creates a Dense matrix from a row-major slice.
func DenseFromSlice[T tensor.DType, B tensor.Backend](data []T, r, c int, b B) (*Dense, error) {
	t, err := tensor.FromSlice(data, tensor.Shape{r, c}, b)
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	return &Dense{raw: t.Raw(), backend: b}, nil
}

// Dims returns the number of rows and columns.
func (d *Dense) Dims() (r, c int) {
	return d.raw.Shape()[0], d.raw.Shape()[1]
}

// DType returns the element type of the matrix values.
func (d *Dense) DType() tensor.DataType {
	return d.raw.DType()
}

// Backend returns the compute backend.
func (d *Dense) Backend() tensor.Backend {
	return d.backend
}

// Raw returns the underlying 2-D tensor.
func (d *Dense) Raw() *tensor.RawTensor {
	return d.raw
}

// Apply multiplies the matrix or its conjugate transpose with x.
// For a complex matrix the adjoint is computed as conj(Aᵀ · conj(x)),
// which equals the Hermitian transpose applied to x.
func (d *Dense) Apply(x *tensor.RawTensor, adjoint bool) (*tensor.RawTensor, error) {
	if err := d.checkOperand(x, adjoint); err != nil {
		return nil, err
	}

	if !adjoint {
		return d.backend.MatMul(d.raw, x), nil
	}

	at := d.backend.Transpose(d.raw, 1, 0)
	if !d.raw.DType().IsComplex() {
		return d.backend.MatMul(at, x), nil
	}
	y := d.backend.MatMul(at, d.backend.Conj(x))
	return d.backend.Conj(y), nil
}

func (d *Dense) checkOperand(x *tensor.RawTensor, adjoint bool) error {
	r, c := d.Dims()
	want := c
	if adjoint {
		want = r
	}
	if len(x.Shape()) != 2 || x.Shape()[0] != want {
		return fmt.Errorf("dense: %w: operand shape %v, leading axis must be %d",
			ErrSizeMismatch, x.Shape(), want)
	}
	if x.DType() != d.raw.DType() {
		return fmt.Errorf("dense: %w: operand is %s, matrix is %s",
			ErrDTypeMismatch, x.DType(), d.raw.DType())
	}
	return nil
}

// Inv returns the explicit inverse of the matrix.
// Real matrices are inverted directly with gonum; complex matrices go
// through the real 2n×2n block embedding [[Re, -Im], [Im, Re]].
func (d *Dense) Inv() (Matrix, error) {
	r, c := d.Dims()
	if r != c {
		return nil, fmt.Errorf("dense: inv: %w: shape (%d, %d)", ErrNonSquare, r, c)
	}

	out, err := tensor.NewRaw(tensor.Shape{r, r}, d.raw.DType(), d.raw.Device())
	if err != nil {
		return nil, fmt.Errorf("dense: inv: %w", err)
	}

	switch d.raw.DType() {
	case tensor.Float64:
		inv, err := invertReal(d.raw.AsFloat64(), r)
		if err != nil {
			return nil, err
		}
		copy(out.AsFloat64(), inv)
	case tensor.Float32:
		wide := make([]float64, r*r)
		for i, v := range d.raw.AsFloat32() {
			wide[i] = float64(v)
		}
		inv, err := invertReal(wide, r)
		if err != nil {
			return nil, err
		}
		dst := out.AsFloat32()
		for i, v := range inv {
			dst[i] = float32(v)
		}
	case tensor.Complex128:
		inv, err := invertComplex(d.raw.AsComplex128(), r)
		if err != nil {
			return nil, err
		}
		copy(out.AsComplex128(), inv)
	case tensor.Complex64:
		wide := make([]complex128, r*r)
		for i, v := range d.raw.AsComplex64() {
			wide[i] = complex128(v)
		}
		inv, err := invertComplex(wide, r)
		if err != nil {
			return nil, err
		}
		dst := out.AsComplex64()
		for i, v := range inv {
			dst[i] = complex64(v)
		}
	default:
		return nil, fmt.Errorf("dense: inv: unsupported dtype %s", d.raw.DType())
	}

	return &Dense{raw: out, backend: d.backend}, nil
}

// invertReal inverts a row-major n×n float64 matrix with gonum.
// The singularity error from gonum is propagated unmodified.
func invertReal(data []float64, n int) ([]float64, error) {
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(n, n, data)); err != nil {
		return nil, err
	}

	out := make([]float64, n*n)
	rm := inv.RawMatrix()
	for i := 0; i < n; i++ {
		copy(out[i*n:(i+1)*n], rm.Data[i*rm.Stride:i*rm.Stride+n])
	}
	return out, nil
}

// invertComplex inverts a row-major n×n complex128 matrix through the
// real block embedding: for A = X + iY, the inverse of [[X, -Y], [Y, X]]
// carries A⁻¹ = U + iV in its first block column.
func invertComplex(data []complex128, n int) ([]complex128, error) {
	block := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := data[i*n+j]
			block.Set(i, j, real(v))
			block.Set(i, n+j, -imag(v))
			block.Set(n+i, j, imag(v))
			block.Set(n+i, n+j, real(v))
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(block); err != nil {
		return nil, err
	}

	out := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = complex(inv.At(i, j), inv.At(n+i, j))
		}
	}
	return out, nil
}

// Sparse wraps a compressed sparse row matrix as an explicit matrix.
// Sparse matrices are float64-valued and CPU-resident; products go
// through gonum's mat interop.
type Sparse struct {
	csr     *sparse.CSR
	backend tensor.Backend
	rows    int
	cols    int
}

// NewSparse creates a Sparse matrix from a CSR matrix.
func NewSparse(csr *sparse.CSR, b tensor.Backend) (*Sparse, error) {
	if csr == nil {
		return nil, fmt.Errorf("sparse: nil CSR matrix")
	}
	r, c := csr.Dims()
	return &Sparse{csr: csr, backend: b, rows: r, cols: c}, nil
}

// SparseFromTriplets creates a Sparse matrix from coordinate-format
// triplets (row index, column index, value).
func SparseFromTriplets(r, c int, rows, cols []int, vals []float64, b tensor.Backend) (*Sparse, error) {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, fmt.Errorf("sparse: triplet slices must have equal length, got %d/%d/%d",
			len(rows), len(cols), len(vals))
	}
	coo := sparse.NewCOO(r, c, rows, cols, vals)
	return NewSparse(coo.ToCSR(), b)
}

// Dims returns the number of rows and columns.
func (s *Sparse) Dims() (r, c int) {
	return s.rows, s.cols
}

// DType returns Float64; sparse storage is always real double precision.
func (s *Sparse) DType() tensor.DataType {
	return tensor.Float64
}

// Backend returns the compute backend.
func (s *Sparse) Backend() tensor.Backend {
	return s.backend
}

// NNZ returns the number of stored non-zero values.
func (s *Sparse) NNZ() int {
	return s.csr.NNZ()
}

// Apply multiplies the matrix or its transpose with x.
func (s *Sparse) Apply(x *tensor.RawTensor, adjoint bool) (*tensor.RawTensor, error) {
	want := s.cols
	if adjoint {
		want = s.rows
	}
	if len(x.Shape()) != 2 || x.Shape()[0] != want {
		return nil, fmt.Errorf("sparse: %w: operand shape %v, leading axis must be %d",
			ErrSizeMismatch, x.Shape(), want)
	}
	if x.DType() != tensor.Float64 {
		return nil, fmt.Errorf("sparse: %w: operand is %s, sparse matrices are float64",
			ErrDTypeMismatch, x.DType())
	}

	xm := mat.NewDense(x.Shape()[0], x.Shape()[1], x.AsFloat64())

	var y mat.Dense
	if adjoint {
		y.Mul(s.csr.T(), xm)
	} else {
		y.Mul(s.csr, xm)
	}

	yr, yc := y.Dims()
	out, err := tensor.NewRaw(tensor.Shape{yr, yc}, tensor.Float64, x.Device())
	if err != nil {
		return nil, fmt.Errorf("sparse: %w", err)
	}
	dst := out.AsFloat64()
	rm := y.RawMatrix()
	for i := 0; i < yr; i++ {
		copy(dst[i*yc:(i+1)*yc], rm.Data[i*rm.Stride:i*rm.Stride+yc])
	}
	return out, nil
}

// Inv returns the explicit inverse. The matrix is densified first; the
// wired stack has no sparse LU, and an inverse of a sparse matrix is
// generally dense anyway.
func (s *Sparse) Inv() (Matrix, error) {
	if s.rows != s.cols {
		return nil, fmt.Errorf("sparse: inv: %w: shape (%d, %d)", ErrNonSquare, s.rows, s.cols)
	}

	dm := mat.DenseCopyOf(s.csr)
	var inv mat.Dense
	if err := inv.Inverse(dm); err != nil {
		return nil, err
	}

	out, err := tensor.NewRaw(tensor.Shape{s.rows, s.rows}, tensor.Float64, s.backend.Device())
	if err != nil {
		return nil, fmt.Errorf("sparse: inv: %w", err)
	}
	dst := out.AsFloat64()
	rm := inv.RawMatrix()
	for i := 0; i < s.rows; i++ {
		copy(dst[i*s.rows:(i+1)*s.rows], rm.Data[i*rm.Stride:i*rm.Stride+s.rows])
	}
	return &Dense{raw: out, backend: s.backend}, nil
}
