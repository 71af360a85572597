// Copyright 2025 Weft ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/weft-ml/weft/internal/nn"
	"github.com/weft-ml/weft/tensor"
)

// Layers

// Linear represents a fully connected (dense) layer: y = x @ Wᵀ + b.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer with zero-valued parameters.
// Apply an initializer configuration with Initialize to fill them.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 128, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// NewLinearNoBias creates a linear layer without a bias parameter.
func NewLinearNoBias[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinearNoBias(inFeatures, outFeatures, backend)
}

// NewLinearShared creates a linear layer that ties existing parameters
// instead of allocating its own. The weight must be 2D [out, in]; bias
// may be nil.
//
// Example:
//
//	weight := nn.NewParameter("weight", tensor.Zeros[float32](tensor.Shape{8, 8}, backend))
//	first, _ := nn.NewLinearShared(weight, nil, backend)
//	second, _ := nn.NewLinearShared(weight, nil, backend)  // tied
func NewLinearShared[B tensor.Backend](weight, bias *Parameter[B], backend B) (*Linear[B], error) {
	return nn.NewLinearShared(weight, bias, backend)
}

// Affine represents an element-wise affine transform over the feature
// dimension: y = x * gain + bias.
type Affine[B tensor.Backend] = nn.Affine[B]

// NewAffine creates a new affine layer with zero-valued parameters.
// Under DefaultConfig the gain becomes ones and the bias zeros, making
// the layer an identity.
func NewAffine[B tensor.Backend](features int, backend B) *Affine[B] {
	return nn.NewAffine(features, backend)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a new ReLU activation layer.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// Sigmoid represents the Sigmoid activation function.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return nn.NewSigmoid[B]()
}

// Tanh represents the Tanh activation function.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// NewTanh creates a new Tanh activation layer.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// Sequential

// Sequential represents a sequential container of modules. Children are
// named: positional additions use their index, AddNamed attaches an
// explicit key. The same module may be inserted more than once; its
// parameters then appear under two paths while staying one identity.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(128, 10, backend),
//	)
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Initialization

// Initializer sets a parameter tensor's values in place.
type Initializer = nn.Initializer

// InitFunc adapts a plain function to the Initializer interface.
type InitFunc = nn.InitFunc

// Constant fills every element with a fixed value.
type Constant = nn.Constant

// Uniform draws every element independently from U(Low, High).
type Uniform = nn.Uniform

// Normal draws every element independently from N(Mean, Std²).
type Normal = nn.Normal

// XavierUniform draws from U(-bound, bound) with
// bound = sqrt(6 / (fanIn + fanOut)).
type XavierUniform = nn.XavierUniform

// Zeros returns the zero-fill policy, conventional for biases.
func Zeros() Initializer {
	return nn.Zeros()
}

// Ones returns the one-fill policy, conventional for gains.
func Ones() Initializer {
	return nn.Ones()
}

// Configuration

// PolicySpec names an initializer policy and its parameters.
type PolicySpec = nn.PolicySpec

// LinearPolicy configures initialization for Linear layers.
type LinearPolicy = nn.LinearPolicy

// AffinePolicy configures initialization for Affine layers.
type AffinePolicy = nn.AffinePolicy

// Config names the initializer policy per layer kind. Constructors
// leave parameters zero-valued; a model takes its initial values from
// an explicit Config passed to Initialize.
type Config = nn.Config

// DefaultConfig returns the conventional policy set: Xavier-uniform
// linear weights, zero biases, unit gains.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// ParseConfig reads a Config from YAML.
//
// Example:
//
//	linear:
//	  weight: {policy: xavier_uniform}
//	  bias: {policy: zeros}
//	affine:
//	  gain: {policy: ones}
//	  bias: {policy: constant, value: 0.1}
func ParseConfig(data []byte) (Config, error) {
	return nn.ParseConfig(data)
}

// Initialize walks the module tree and applies the configured policy to
// every layer whose kind the config names. Kinds without a policy are
// left untouched.
func Initialize[B tensor.Backend](m Module[B], cfg Config) error {
	return nn.Initialize(m, cfg)
}
