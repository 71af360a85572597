package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-ml/weft/internal/tensor"
)

func TestLinearStartsZeroValued(t *testing.T) {
	backend := testBackend()
	lin := NewLinear(3, 2, backend)

	for _, v := range lin.Weight().Tensor().Data() {
		assert.Zero(t, v, "weight must be zero before initialization")
	}
	for _, v := range lin.Bias().Tensor().Data() {
		assert.Zero(t, v, "bias must be zero before initialization")
	}
	assert.Equal(t, 3, lin.InFeatures())
	assert.Equal(t, 2, lin.OutFeatures())
}

func TestLinearForward(t *testing.T) {
	backend := testBackend()
	lin := NewLinear(2, 2, backend)

	// W = [[1, 2], [3, 4]], b = [10, 20]
	copy(lin.Weight().Tensor().Data(), []float32{1, 2, 3, 4})
	copy(lin.Bias().Tensor().Data(), []float32{10, 20})

	x := mustTensor(t, backend, []float32{1, 1, 2, 3}, tensor.Shape{2, 2})
	out := lin.Forward(x)

	// y = x @ W^T + b
	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	assert.InDelta(t, 13, out.At(0, 0), 1e-5) // 1*1 + 1*2 + 10
	assert.InDelta(t, 27, out.At(0, 1), 1e-5) // 1*3 + 1*4 + 20
	assert.InDelta(t, 18, out.At(1, 0), 1e-5) // 2*1 + 3*2 + 10
	assert.InDelta(t, 38, out.At(1, 1), 1e-5) // 2*3 + 3*4 + 20
}

func TestLinearNoBias(t *testing.T) {
	backend := testBackend()
	lin := NewLinearNoBias(2, 1, backend)
	copy(lin.Weight().Tensor().Data(), []float32{2, 3})

	assert.Nil(t, lin.Bias())
	assert.Equal(t, []string{"weight"}, paramPaths[Backend](lin))

	x := mustTensor(t, backend, []float32{4, 5}, tensor.Shape{1, 2})
	out := lin.Forward(x)
	assert.InDelta(t, 23, out.At(0, 0), 1e-5)
}

func TestLinearForwardShapeMismatchPanics(t *testing.T) {
	backend := testBackend()
	lin := NewLinear(3, 2, backend)
	x := mustTensor(t, backend, []float32{1, 2}, tensor.Shape{1, 2})

	assert.Panics(t, func() { lin.Forward(x) })
}

func TestNewLinearSharedValidation(t *testing.T) {
	backend := testBackend()

	badWeight := NewParameter("weight", tensor.Zeros[float32](tensor.Shape{4}, backend))
	_, err := NewLinearShared(badWeight, nil, backend)
	assert.Error(t, err, "1D weight must be rejected")

	weight := NewParameter("weight", tensor.Zeros[float32](tensor.Shape{2, 3}, backend))
	badBias := NewParameter("bias", tensor.Zeros[float32](tensor.Shape{3}, backend))
	_, err = NewLinearShared(weight, badBias, backend)
	assert.Error(t, err, "bias length must match out_features")

	lin, err := NewLinearShared(weight, nil, backend)
	require.NoError(t, err)
	assert.Equal(t, 3, lin.InFeatures())
	assert.Equal(t, 2, lin.OutFeatures())
	assert.Same(t, weight, lin.Weight())
}

func TestLinearStateDictRoundtrip(t *testing.T) {
	backend := testBackend()

	src := NewLinear(2, 2, backend)
	copy(src.Weight().Tensor().Data(), []float32{1, 2, 3, 4})
	copy(src.Bias().Tensor().Data(), []float32{5, 6})

	dst := NewLinear(2, 2, backend)
	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	assert.Equal(t, []float32{1, 2, 3, 4}, dst.Weight().Tensor().Data())
	assert.Equal(t, []float32{5, 6}, dst.Bias().Tensor().Data())

	// Loading copies values, not identity.
	assert.NotSame(t, src.Weight().Tensor().Raw(), dst.Weight().Tensor().Raw())
}

func TestLinearLoadStateDictErrors(t *testing.T) {
	backend := testBackend()
	lin := NewLinear(2, 2, backend)

	err := lin.LoadStateDict(map[string]*tensor.RawTensor{})
	assert.ErrorContains(t, err, "missing weight")

	wrongShape, _ := tensor.NewRaw(tensor.Shape{3, 3}, tensor.Float32)
	err = lin.LoadStateDict(map[string]*tensor.RawTensor{"weight": wrongShape})
	assert.ErrorContains(t, err, "shape mismatch")
}

func TestAffineForward(t *testing.T) {
	backend := testBackend()
	aff := NewAffine(3, backend)
	copy(aff.Gain().Tensor().Data(), []float32{1, 2, 3})
	copy(aff.Bias().Tensor().Data(), []float32{10, 10, 10})

	x := mustTensor(t, backend, []float32{1, 1, 1, 2, 2, 2}, tensor.Shape{2, 3})
	out := aff.Forward(x)

	assert.InDelta(t, 11, out.At(0, 0), 1e-5)
	assert.InDelta(t, 12, out.At(0, 1), 1e-5)
	assert.InDelta(t, 13, out.At(0, 2), 1e-5)
	assert.InDelta(t, 12, out.At(1, 0), 1e-5)
	assert.InDelta(t, 14, out.At(1, 1), 1e-5)
	assert.InDelta(t, 16, out.At(1, 2), 1e-5)
}

func TestAffineStateDictRoundtrip(t *testing.T) {
	backend := testBackend()

	src := NewAffine(2, backend)
	copy(src.Gain().Tensor().Data(), []float32{3, 4})
	copy(src.Bias().Tensor().Data(), []float32{5, 6})

	dst := NewAffine(2, backend)
	require.NoError(t, dst.LoadStateDict(src.StateDict()))
	assert.Equal(t, []float32{3, 4}, dst.Gain().Tensor().Data())
	assert.Equal(t, []float32{5, 6}, dst.Bias().Tensor().Data())
}

func TestActivationForward(t *testing.T) {
	backend := testBackend()
	x := mustTensor(t, backend, []float32{-2, 0, 3}, tensor.Shape{1, 3})

	relu := NewReLU[Backend]()
	out := relu.Forward(x)
	assert.Equal(t, []float32{0, 0, 3}, out.Data())

	assert.Empty(t, relu.NamedParameters())
	assert.Empty(t, relu.StateDict())
	assert.NoError(t, relu.LoadStateDict(nil))

	sig := NewSigmoid[Backend]()
	assert.InDelta(t, 0.5, sig.Forward(mustTensor(t, backend, []float32{0}, tensor.Shape{1, 1})).At(0, 0), 1e-6)

	tanh := NewTanh[Backend]()
	assert.InDelta(t, 0, tanh.Forward(mustTensor(t, backend, []float32{0}, tensor.Shape{1, 1})).At(0, 0), 1e-6)
}
