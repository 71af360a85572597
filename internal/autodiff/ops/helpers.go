package ops

import "github.com/weft-ml/weft/internal/tensor"

// reduceBroadcast folds a gradient back to the shape of an input that
// was broadcast during the forward pass: summed along every dimension
// the input did not originally have, or had with size 1.
//
// Example:
//
//	Forward: a[1,4] + b[3,4] -> c[3,4]
//	Backward: grad_c[3,4] -> grad_a[1,4] (summed along dim 0)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()
	if gradShape.Equal(targetShape) {
		return grad
	}

	// Scalar target: collapse everything.
	if len(targetShape) == 0 {
		return backend.Sum(grad)
	}

	// Sum away leading dimensions the target does not have.
	result := grad
	for len(result.Shape()) > len(targetShape) {
		result = backend.SumDim(result, 0, false)
	}

	// Sum along dimensions where the target has size 1.
	for d := 0; d < len(targetShape); d++ {
		if targetShape[d] == 1 && result.Shape()[d] > 1 {
			result = backend.SumDim(result, d, true)
		}
	}

	if !result.Shape().Equal(targetShape) {
		result = backend.Reshape(result, targetShape)
	}
	return result
}

// fill creates a tensor of the given shape where every element is v.
func fill(shape tensor.Shape, dtype tensor.DataType, v float64) *tensor.RawTensor {
	t, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		panic(err)
	}
	switch dtype {
	case tensor.Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = float32(v)
		}
	case tensor.Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = v
		}
	}
	return t
}
