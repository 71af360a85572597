package ops

import "github.com/weft-ml/weft/internal/tensor"

// ReLUOp records output = max(0, input).
//
// d(ReLU(x))/dx is 1 where x > 0 and 0 elsewhere, so the backward pass
// masks the output gradient with the sign of the stored input.
type ReLUOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(input, output *tensor.RawTensor) *ReLUOp {
	return &ReLUOp{
		input:  input,
		output: output,
	}
}

// Backward masks the output gradient where the input was non-positive.
func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	mask := fill(op.input.Shape(), op.input.DType(), 0)

	switch op.input.DType() {
	case tensor.Float32:
		in := op.input.AsFloat32()
		m := mask.AsFloat32()
		for i, v := range in {
			if v > 0 {
				m[i] = 1
			}
		}
	case tensor.Float64:
		in := op.input.AsFloat64()
		m := mask.AsFloat64()
		for i, v := range in {
			if v > 0 {
				m[i] = 1
			}
		}
	}

	return []*tensor.RawTensor{backend.Mul(outputGrad, mask)}
}

// Inputs returns the input tensor.
func (op *ReLUOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the activated tensor.
func (op *ReLUOp) Output() *tensor.RawTensor {
	return op.output
}
