package cpu

import (
	"fmt"

	"github.com/weft-ml/weft/internal/tensor"
)

// Sum reduces the tensor to the scalar sum of all elements.
// The result has the empty shape.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sum: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var sum float32
		for _, v := range x.AsFloat32() {
			sum += v
		}
		result.AsFloat32()[0] = sum
	case tensor.Float64:
		var sum float64
		for _, v := range x.AsFloat64() {
			sum += v
		}
		result.AsFloat64()[0] = sum
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// SumDim sums along one dimension. With keepDim the reduced dimension
// is kept with size 1; otherwise it is removed from the result shape.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("sumdim: invalid dimension %d for shape %v", dim, shape))
	}

	outShape := shape.Clone()
	outShape[dim] = 1

	result, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sumdim: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		sumAlongDim(result.AsFloat32(), x.AsFloat32(), shape, dim)
	case tensor.Float64:
		sumAlongDim(result.AsFloat64(), x.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	if !keepDim {
		squeezed := append(tensor.Shape{}, outShape[:dim]...)
		squeezed = append(squeezed, outShape[dim+1:]...)
		view, err := result.WithShape(squeezed)
		if err != nil {
			panic(fmt.Sprintf("sumdim: %v", err))
		}
		return view
	}

	return result
}

// sumAlongDim accumulates src into dst, collapsing coordinate dim.
// The destination index is the source index with the dim coordinate
// zeroed out.
func sumAlongDim[T tensor.DType](dst, src []T, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	outShape := shape.Clone()
	outShape[dim] = 1
	outStrides := outShape.ComputeStrides()

	for i := range src {
		dstIdx := 0
		rem := i
		for d := 0; d < len(shape); d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			if d != dim {
				dstIdx += coord * outStrides[d]
			}
		}
		dst[dstIdx] += src[i]
	}
}
