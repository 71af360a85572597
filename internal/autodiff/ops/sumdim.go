package ops

import "github.com/weft-ml/weft/internal/tensor"

// SumDimOp records output = sum(input, dim).
type SumDimOp struct {
	input   *tensor.RawTensor
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewSumDimOp creates a new SumDimOp.
func NewSumDimOp(input, output *tensor.RawTensor, dim int, keepDim bool) *SumDimOp {
	return &SumDimOp{
		input:   input,
		output:  output,
		dim:     dim,
		keepDim: keepDim,
	}
}

// Backward broadcasts the output gradient along the summed dimension.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := outputGrad
	if !op.keepDim {
		// Reinsert the summed dimension with size 1 so broadcasting
		// expands it back to the input shape.
		keepShape := op.input.Shape().Clone()
		keepShape[op.dim] = 1
		grad = backend.Reshape(grad, keepShape)
	}

	zeros := fill(op.input.Shape(), op.input.DType(), 0)
	return []*tensor.RawTensor{backend.Add(zeros, grad)}
}

// Inputs returns the input tensor.
func (op *SumDimOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the reduced tensor.
func (op *SumDimOp) Output() *tensor.RawTensor {
	return op.output
}
