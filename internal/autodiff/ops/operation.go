// Package ops defines the differentiable operations recorded by the
// gradient tape.
//
// Each operation captures its input and output RawTensors during the
// forward pass and knows how to turn the output gradient into input
// gradients during the backward pass. Inputs and outputs are held by
// pointer: tensor identity is what the tape uses to route and
// accumulate gradients, which is also what makes aliased (tied)
// parameters receive the sum of their use-site gradients.
package ops

import "github.com/weft-ml/weft/internal/tensor"

// Operation is one recorded step of the computation graph.
type Operation interface {
	// Backward computes gradients for the operation's inputs given the
	// gradient of its output. The returned slice is parallel to Inputs().
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors of this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
