package ops

import "github.com/weft-ml/weft/internal/tensor"

// TanhOp records output = tanh(input).
//
// d(tanh(x))/dx = 1 - tanh²(x), computed from the stored output.
type TanhOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(input, output *tensor.RawTensor) *TanhOp {
	return &TanhOp{
		input:  input,
		output: output,
	}
}

// Backward computes grad * (1 - tanh²(x)).
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	ones := fill(op.output.Shape(), op.output.DType(), 1)
	local := backend.Sub(ones, backend.Mul(op.output, op.output))
	return []*tensor.RawTensor{backend.Mul(outputGrad, local)}
}

// Inputs returns the input tensor.
func (op *TanhOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the activated tensor.
func (op *TanhOp) Output() *tensor.RawTensor {
	return op.output
}
