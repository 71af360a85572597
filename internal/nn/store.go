package nn

import (
	"fmt"

	"github.com/weft-ml/weft/internal/tensor"
)

// ParamStore is an arena of parameters keyed by their stable ParamID.
//
// The store makes parameter sharing an explicit ownership relation: a
// parameter is allocated once, registered under its ID, and every layer
// that ties it references that single allocation. After a backward
// pass, ApplyGradients moves the tape's accumulated gradients into the
// per-parameter slots; a parameter used at several sites receives the
// sum of its contributions because the tape already accumulates by
// tensor identity.
type ParamStore[B tensor.Backend] struct {
	params map[ParamID]*Parameter[B]
	order  []ParamID
}

// NewParamStore creates an empty parameter store.
func NewParamStore[B tensor.Backend]() *ParamStore[B] {
	return &ParamStore[B]{
		params: make(map[ParamID]*Parameter[B]),
	}
}

// NewParameter allocates a parameter in the arena and returns it.
func (s *ParamStore[B]) NewParameter(name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	p := NewParameter(name, t)
	s.params[p.ID()] = p
	s.order = append(s.order, p.ID())
	return p
}

// Register adds an existing parameter to the arena. Registering the
// same parameter twice is a no-op; the slot stays unique per ID.
func (s *ParamStore[B]) Register(p *Parameter[B]) {
	if _, ok := s.params[p.ID()]; ok {
		return
	}
	s.params[p.ID()] = p
	s.order = append(s.order, p.ID())
}

// RegisterModule adds every parameter of a module tree to the arena.
// Tied parameters appearing under several paths register once.
func (s *ParamStore[B]) RegisterModule(m Module[B]) {
	for _, np := range m.NamedParameters() {
		s.Register(np.Param)
	}
}

// Get returns the parameter with the given ID.
func (s *ParamStore[B]) Get(id ParamID) (*Parameter[B], bool) {
	p, ok := s.params[id]
	return p, ok
}

// Len returns the number of distinct parameters in the arena.
func (s *ParamStore[B]) Len() int {
	return len(s.order)
}

// Parameters returns the arena's parameters in registration order.
func (s *ParamStore[B]) Parameters() []*Parameter[B] {
	out := make([]*Parameter[B], 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.params[id])
	}
	return out
}

// ApplyGradients fills each registered parameter's grad slot from a
// backward-pass result, looking gradients up by the parameter tensor's
// identity. Parameters without a gradient (not used in the recorded
// computation, or not trainable) are left untouched.
func (s *ParamStore[B]) ApplyGradients(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, id := range s.order {
		p := s.params[id]
		if !p.Trainable() {
			continue
		}
		raw, ok := grads[p.Tensor().Raw()]
		if !ok {
			continue
		}
		p.SetGrad(tensor.New[float32, B](raw, p.Tensor().Backend()))
	}
}

// Gradient returns the gradient stored for the given parameter ID.
func (s *ParamStore[B]) Gradient(id ParamID) (*tensor.Tensor[float32, B], error) {
	p, ok := s.params[id]
	if !ok {
		return nil, fmt.Errorf("unknown parameter id %s", id)
	}
	if p.Grad() == nil {
		return nil, fmt.Errorf("parameter %q has no gradient", p.Name())
	}
	return p.Grad(), nil
}

// ZeroGrad clears every parameter's gradient slot.
func (s *ParamStore[B]) ZeroGrad() {
	for _, id := range s.order {
		s.params[id].ZeroGrad()
	}
}
