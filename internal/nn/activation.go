package nn

import (
	"github.com/weft-ml/weft/internal/tensor"
)

// ReLUBackend is a backend capable of the ReLU activation.
type ReLUBackend interface {
	ReLU(*tensor.RawTensor) *tensor.RawTensor
}

// SigmoidBackend is a backend capable of the Sigmoid activation.
type SigmoidBackend interface {
	Sigmoid(*tensor.RawTensor) *tensor.RawTensor
}

// TanhBackend is a backend capable of the Tanh activation.
type TanhBackend interface {
	Tanh(*tensor.RawTensor) *tensor.RawTensor
}

// ReLU applies f(x) = max(0, x) element-wise. It holds no parameters.
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies the activation.
func (r *ReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()
	if ab, ok := any(backend).(ReLUBackend); ok {
		return tensor.New[float32, B](ab.ReLU(input.Raw()), backend)
	}
	panic("ReLU: backend must implement the ReLU operation (use autodiff.AutodiffBackend)")
}

// Kind returns KindReLU.
func (r *ReLU[B]) Kind() Kind { return KindReLU }

// NamedParameters returns nil: ReLU has no parameters.
func (r *ReLU[B]) NamedParameters() []NamedParameter[B] { return nil }

// Children returns nil.
func (r *ReLU[B]) Children() []NamedModule[B] { return nil }

// StateDict returns an empty map.
func (r *ReLU[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{}
}

// LoadStateDict is a no-op for parameter-free modules.
func (r *ReLU[B]) LoadStateDict(map[string]*tensor.RawTensor) error { return nil }

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) element-wise.
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies the activation.
func (s *Sigmoid[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()
	if ab, ok := any(backend).(SigmoidBackend); ok {
		return tensor.New[float32, B](ab.Sigmoid(input.Raw()), backend)
	}
	panic("Sigmoid: backend must implement the Sigmoid operation (use autodiff.AutodiffBackend)")
}

// Kind returns KindSigmoid.
func (s *Sigmoid[B]) Kind() Kind { return KindSigmoid }

// NamedParameters returns nil: Sigmoid has no parameters.
func (s *Sigmoid[B]) NamedParameters() []NamedParameter[B] { return nil }

// Children returns nil.
func (s *Sigmoid[B]) Children() []NamedModule[B] { return nil }

// StateDict returns an empty map.
func (s *Sigmoid[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{}
}

// LoadStateDict is a no-op for parameter-free modules.
func (s *Sigmoid[B]) LoadStateDict(map[string]*tensor.RawTensor) error { return nil }

// Tanh applies the hyperbolic tangent element-wise.
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies the activation.
func (t *Tanh[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()
	if ab, ok := any(backend).(TanhBackend); ok {
		return tensor.New[float32, B](ab.Tanh(input.Raw()), backend)
	}
	panic("Tanh: backend must implement the Tanh operation (use autodiff.AutodiffBackend)")
}

// Kind returns KindTanh.
func (t *Tanh[B]) Kind() Kind { return KindTanh }

// NamedParameters returns nil: Tanh has no parameters.
func (t *Tanh[B]) NamedParameters() []NamedParameter[B] { return nil }

// Children returns nil.
func (t *Tanh[B]) Children() []NamedModule[B] { return nil }

// StateDict returns an empty map.
func (t *Tanh[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{}
}

// LoadStateDict is a no-op for parameter-free modules.
func (t *Tanh[B]) LoadStateDict(map[string]*tensor.RawTensor) error { return nil }
