package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// A backend is resolved once, at operator construction time, and carried
// by the operator for the rest of its life. Operators never infer the
// backend from the runtime type of their inputs.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
//   - CUDA, WebGPU: planned
type Backend interface {
	// Element-wise operations.
	Add(a, b *RawTensor) *RawTensor                // Element-wise addition (same shape).
	Mul(a, b *RawTensor) *RawTensor                // Element-wise multiplication (same shape).
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	Conj(x *RawTensor) *RawTensor                  // Element-wise complex conjugate.

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor // 2-D matrix multiplication.

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Permute dimensions.

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Cast to different data type.

	// Metadata.
	Name() string
	Device() Device
}
