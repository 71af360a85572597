package nn

import (
	"math"
	"math/rand"

	"github.com/weft-ml/weft/internal/tensor"
)

// Initializer sets a parameter tensor's values in place.
//
// The built-in policies cover constant fill, uniform and normal random
// draws, and fan-scaled Xavier initialization. Anything else is a
// custom initializer: any value satisfying this interface, typically
// applied through Apply with a Kind check.
type Initializer interface {
	Init(t *tensor.RawTensor)
}

// InitFunc adapts a plain function to the Initializer interface.
type InitFunc func(t *tensor.RawTensor)

// Init calls the function.
func (f InitFunc) Init(t *tensor.RawTensor) {
	f(t)
}

// Constant fills every element with a fixed value.
type Constant struct {
	Value float64
}

// Init fills the tensor with the constant.
func (c Constant) Init(t *tensor.RawTensor) {
	fillValues(t, func() float64 { return c.Value })
}

// Zeros returns the zero-fill policy, conventional for biases.
func Zeros() Initializer {
	return Constant{Value: 0}
}

// Ones returns the one-fill policy, conventional for gains.
func Ones() Initializer {
	return Constant{Value: 1}
}

// Uniform draws every element independently from U(Low, High).
type Uniform struct {
	Low  float64
	High float64
}

// Init fills the tensor with uniform draws.
//
//nolint:gosec // math/rand is intentional for statistical initialization
func (u Uniform) Init(t *tensor.RawTensor) {
	fillValues(t, func() float64 {
		return u.Low + rand.Float64()*(u.High-u.Low)
	})
}

// Normal draws every element independently from N(Mean, Std²).
type Normal struct {
	Mean float64
	Std  float64
}

// Init fills the tensor with normal draws.
//
//nolint:gosec // math/rand is intentional for statistical initialization
func (n Normal) Init(t *tensor.RawTensor) {
	fillValues(t, func() float64 {
		return n.Mean + rand.NormFloat64()*n.Std
	})
}

// XavierUniform draws from U(-bound, bound) with
// bound = sqrt(6 / (fanIn + fanOut)).
//
// The fan-scaled range keeps activation variance roughly constant
// across layers (Glorot & Bengio, 2010).
type XavierUniform struct {
	FanIn  int
	FanOut int
}

// Init fills the tensor with fan-scaled uniform draws.
//
//nolint:gosec // math/rand is intentional for statistical initialization
func (x XavierUniform) Init(t *tensor.RawTensor) {
	bound := math.Sqrt(6.0 / float64(x.FanIn+x.FanOut))
	fillValues(t, func() float64 {
		return (rand.Float64()*2.0 - 1.0) * bound
	})
}

// fillValues writes next() into every element of the tensor.
func fillValues(t *tensor.RawTensor, next func() float64) {
	switch t.DType() {
	case tensor.Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = float32(next())
		}
	case tensor.Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = next()
		}
	}
}
