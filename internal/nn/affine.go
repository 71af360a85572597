package nn

import (
	"fmt"

	"github.com/weft-ml/weft/internal/tensor"
)

// Affine applies an element-wise affine transform over the feature
// dimension: y = x * gain + bias, with gain and bias shaped [features]
// and broadcast across the batch.
//
// Like Linear, parameters are allocated zero-valued and filled by an
// explicit initializer configuration (the default policy sets gain to
// ones and bias to zeros, which makes the layer an identity).
type Affine[B tensor.Backend] struct {
	features int
	gain     *Parameter[B]
	bias     *Parameter[B]
	backend  B
}

// NewAffine creates an Affine layer with zero-valued parameters.
func NewAffine[B tensor.Backend](features int, backend B) *Affine[B] {
	return &Affine[B]{
		features: features,
		gain:     NewParameter("gain", tensor.Zeros[float32](tensor.Shape{features}, backend)),
		bias:     NewParameter("bias", tensor.Zeros[float32](tensor.Shape{features}, backend)),
		backend:  backend,
	}
}

// Forward computes y = x * gain + bias.
//
// Input shape: [batch, features]. Output shape: [batch, features].
func (a *Affine[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("Affine.Forward: expected 2D input [batch, features], got shape %v", inputShape))
	}
	if inputShape[1] != a.features {
		panic(fmt.Sprintf("Affine.Forward: expected input with %d features, got %d", a.features, inputShape[1]))
	}

	gain := a.gain.Tensor().Reshape(1, a.features)
	bias := a.bias.Tensor().Reshape(1, a.features)
	return input.Mul(gain).Add(bias)
}

// Kind returns KindAffine.
func (a *Affine[B]) Kind() Kind {
	return KindAffine
}

// NamedParameters returns the gain and bias parameters.
func (a *Affine[B]) NamedParameters() []NamedParameter[B] {
	return []NamedParameter[B]{
		{Path: "gain", Param: a.gain},
		{Path: "bias", Param: a.bias},
	}
}

// Children returns nil: Affine is a leaf module.
func (a *Affine[B]) Children() []NamedModule[B] {
	return nil
}

// Gain returns the gain parameter.
func (a *Affine[B]) Gain() *Parameter[B] {
	return a.gain
}

// Bias returns the bias parameter.
func (a *Affine[B]) Bias() *Parameter[B] {
	return a.bias
}

// Features returns the feature dimension.
func (a *Affine[B]) Features() int {
	return a.features
}

// StateDict returns the layer's parameters keyed by name.
func (a *Affine[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"gain": a.gain.Tensor().Raw(),
		"bias": a.bias.Tensor().Raw(),
	}
}

// LoadStateDict copies gain and bias values from a state dictionary.
func (a *Affine[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	want := tensor.Shape{a.features}
	if err := loadParam(a.gain, "gain", want, stateDict); err != nil {
		return err
	}
	return loadParam(a.bias, "bias", want, stateDict)
}
