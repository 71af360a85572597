package ops

import "github.com/weft-ml/weft/internal/tensor"

// SigmoidOp records output = σ(input) = 1 / (1 + exp(-input)).
//
// dσ/dx = σ(x)·(1 - σ(x)), computed from the stored output.
type SigmoidOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSigmoidOp creates a new SigmoidOp.
func NewSigmoidOp(input, output *tensor.RawTensor) *SigmoidOp {
	return &SigmoidOp{
		input:  input,
		output: output,
	}
}

// Backward computes grad * σ(x) * (1 - σ(x)).
func (op *SigmoidOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	ones := fill(op.output.Shape(), op.output.DType(), 1)
	local := backend.Mul(op.output, backend.Sub(ones, op.output))
	return []*tensor.RawTensor{backend.Mul(outputGrad, local)}
}

// Inputs returns the input tensor.
func (op *SigmoidOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the activated tensor.
func (op *SigmoidOp) Output() *tensor.RawTensor {
	return op.output
}
