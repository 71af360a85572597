package tensor

// Backend defines the compute operations a device implementation must
// provide. The set is intentionally small: it is exactly what the nn
// layers and the autodiff backward passes need.
//
// Implementations:
//   - internal/backend/cpu: pure Go CPU implementation
//   - internal/autodiff: decorator that wraps any Backend and records
//     operations on a gradient tape
//
// Contract: backends allocate fresh output tensors and never modify
// their inputs. The autodiff tape stores input RawTensors by pointer
// and replays them during the backward pass, so in-place updates would
// corrupt gradients.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// MulScalar multiplies every element by a scalar.
	MulScalar(x *RawTensor, scalar float64) *RawTensor

	// Reductions.
	Sum(x *RawTensor) *RawTensor                           // total sum, scalar result
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // sum along one dimension

	// Metadata.
	Name() string
}
