package nn

import (
	"github.com/google/uuid"

	"github.com/weft-ml/weft/internal/tensor"
)

// ParamID is the stable identity of a Parameter. Layers that tie a
// parameter hold the same *Parameter (and therefore the same ID); the
// ParamStore arena is keyed by it.
type ParamID = uuid.UUID

// Parameter is a named tensor that participates in gradient-based
// optimization.
//
// A Parameter may be owned by a single layer or shared between several.
// Sharing is by identity: the layers hold the same *Parameter, so value
// mutations through one layer are visible through all of them, and the
// backward pass sums every use site's contribution into the one grad
// slot.
type Parameter[B tensor.Backend] struct {
	id        ParamID
	name      string
	tensor    *tensor.Tensor[float32, B]
	grad      *tensor.Tensor[float32, B]
	trainable bool
}

// NewParameter creates a trainable parameter wrapping the given tensor.
// The gradient slot starts empty; it is filled by the first backward
// pass.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		id:        uuid.New(),
		name:      name,
		tensor:    t,
		trainable: true,
	}
}

// ID returns the parameter's stable identifier.
func (p *Parameter[B]) ID() ParamID {
	return p.id
}

// Name returns the parameter name (e.g. "weight", "bias").
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before any backward pass.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient slot. Call between iterations to avoid
// carrying gradients across steps.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}

// Trainable reports whether the parameter participates in gradient
// computation.
func (p *Parameter[B]) Trainable() bool {
	return p.trainable
}

// SetTrainable sets the trainable flag.
func (p *Parameter[B]) SetTrainable(trainable bool) {
	p.trainable = trainable
}
