package nn

import (
	"fmt"

	"github.com/weft-ml/weft/internal/tensor"
)

// Linear implements a fully connected layer: y = x @ Wᵀ + b, with
//   - x shaped [batch, in_features]
//   - W shaped [out_features, in_features]
//   - b shaped [out_features]
//
// Parameters are allocated zero-valued; initial values come from an
// explicit initializer configuration (see Initialize), never from a
// hidden default inside the constructor.
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B]
	bias        *Parameter[B] // nil when the layer has no bias
	backend     B
}

// NewLinear creates a Linear layer with zero-valued weight and bias.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	weight := NewParameter("weight", tensor.Zeros[float32](tensor.Shape{outFeatures, inFeatures}, backend))
	bias := NewParameter("bias", tensor.Zeros[float32](tensor.Shape{outFeatures}, backend))

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}
}

// NewLinearNoBias creates a Linear layer without a bias parameter.
func NewLinearNoBias[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	l := NewLinear(inFeatures, outFeatures, backend)
	l.bias = nil
	return l
}

// NewLinearShared creates a Linear layer that ties existing parameters
// instead of allocating its own. The weight must be 2D; bias may be
// nil. Every layer constructed from the same parameters shares storage
// and gradient slots with them.
func NewLinearShared[B tensor.Backend](weight, bias *Parameter[B], backend B) (*Linear[B], error) {
	shape := weight.Tensor().Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("shared weight must be 2D [out, in], got shape %v", shape)
	}
	if bias != nil {
		biasShape := bias.Tensor().Shape()
		if len(biasShape) != 1 || biasShape[0] != shape[0] {
			return nil, fmt.Errorf("shared bias shape %v does not match weight %v", biasShape, shape)
		}
	}

	return &Linear[B]{
		inFeatures:  shape[1],
		outFeatures: shape[0],
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}, nil
}

// Forward computes y = x @ Wᵀ + b.
//
// Input shape: [batch, in_features]. Output shape: [batch, out_features].
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [batch, features], got shape %v", inputShape))
	}
	if inputShape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, inputShape[1]))
	}

	// [batch, in] @ [in, out] = [batch, out]
	output := input.MatMul(l.weight.Tensor().T())

	if l.bias != nil {
		// Reshape bias [out] -> [1, out] so broadcasting expands it
		// across the batch.
		output = output.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
	}

	return output
}

// Kind returns KindLinear.
func (l *Linear[B]) Kind() Kind {
	return KindLinear
}

// NamedParameters returns the weight and, when present, the bias.
func (l *Linear[B]) NamedParameters() []NamedParameter[B] {
	params := []NamedParameter[B]{{Path: "weight", Param: l.weight}}
	if l.bias != nil {
		params = append(params, NamedParameter[B]{Path: "bias", Param: l.bias})
	}
	return params
}

// Children returns nil: Linear is a leaf module.
func (l *Linear[B]) Children() []NamedModule[B] {
	return nil
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter, or nil for a bias-free layer.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns the layer's parameters keyed by name.
func (l *Linear[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := map[string]*tensor.RawTensor{
		"weight": l.weight.Tensor().Raw(),
	}
	if l.bias != nil {
		stateDict["bias"] = l.bias.Tensor().Raw()
	}
	return stateDict
}

// LoadStateDict copies weight and bias values from a state dictionary.
func (l *Linear[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if err := loadParam(l.weight, "weight", tensor.Shape{l.outFeatures, l.inFeatures}, stateDict); err != nil {
		return err
	}
	if l.bias != nil {
		if err := loadParam(l.bias, "bias", tensor.Shape{l.outFeatures}, stateDict); err != nil {
			return err
		}
	}
	return nil
}

// loadParam validates and copies one entry of a state dictionary into a
// parameter's storage.
func loadParam[B tensor.Backend](p *Parameter[B], key string, want tensor.Shape, stateDict map[string]*tensor.RawTensor) error {
	raw, ok := stateDict[key]
	if !ok {
		return fmt.Errorf("missing %s in state dict", key)
	}
	if !raw.Shape().Equal(want) {
		return fmt.Errorf("%s shape mismatch: expected %v, got %v", key, want, raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		return fmt.Errorf("%s dtype mismatch: expected float32, got %v", key, raw.DType())
	}
	copy(p.Tensor().Data(), raw.AsFloat32())
	return nil
}
