package ops

import "github.com/weft-ml/weft/internal/tensor"

// SumOp records output = sum(input), a scalar.
//
// Every input element contributes with weight 1, so the backward pass
// broadcasts the scalar output gradient to the input shape.
type SumOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{
		input:  input,
		output: output,
	}
}

// Backward broadcasts the scalar gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	var v float64
	switch outputGrad.DType() {
	case tensor.Float32:
		v = float64(outputGrad.AsFloat32()[0])
	case tensor.Float64:
		v = outputGrad.AsFloat64()[0]
	}
	return []*tensor.RawTensor{fill(op.input.Shape(), op.input.DType(), v)}
}

// Inputs returns the input tensor.
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the scalar sum.
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}
