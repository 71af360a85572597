package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-ml/weft/internal/tensor"
)

func TestSequentialForwardChains(t *testing.T) {
	backend := testBackend()

	lin := NewLinear(2, 2, backend)
	copy(lin.Weight().Tensor().Data(), []float32{1, 0, 0, 1}) // identity
	copy(lin.Bias().Tensor().Data(), []float32{-1, -1})

	seq := NewSequential[Backend](lin, NewReLU[Backend]())

	x := mustTensor(t, backend, []float32{3, 0.5}, tensor.Shape{1, 2})
	out := seq.Forward(x)

	// identity @ x - 1, then relu.
	assert.InDelta(t, 2, out.At(0, 0), 1e-5)
	assert.InDelta(t, 0, out.At(0, 1), 1e-5)
}

func TestSequentialPositionalNames(t *testing.T) {
	backend := testBackend()
	seq := NewSequential[Backend](
		NewLinear(2, 2, backend),
		NewLinear(2, 2, backend),
	)

	assert.Equal(t, 2, seq.Len())
	m, ok := seq.ByName("1")
	require.True(t, ok)
	assert.Equal(t, KindLinear, m.Kind())

	_, ok = seq.ByName("2")
	assert.False(t, ok)
}

func TestSequentialAddNamed(t *testing.T) {
	backend := testBackend()
	seq := NewSequential[Backend]()

	require.NoError(t, seq.AddNamed("encoder", NewLinear(2, 3, backend)))
	assert.Error(t, seq.AddNamed("encoder", NewLinear(2, 3, backend)), "duplicate name")
	assert.Error(t, seq.AddNamed("", NewLinear(2, 3, backend)), "empty name")
	assert.Error(t, seq.AddNamed("a.b", NewLinear(2, 3, backend)), "dotted name")

	m, ok := seq.ByName("encoder")
	require.True(t, ok)
	assert.Equal(t, KindLinear, m.Kind())
}

func TestSequentialModuleOutOfBoundsPanics(t *testing.T) {
	backend := testBackend()
	seq := NewSequential[Backend](NewLinear(2, 2, backend))

	assert.NotNil(t, seq.Module(0))
	assert.Panics(t, func() { seq.Module(1) })
	assert.Panics(t, func() { seq.Module(-1) })
}

func TestSequentialStateDictRoundtrip(t *testing.T) {
	backend := testBackend()

	src := NewSequential[Backend](NewLinear(2, 2, backend))
	require.NoError(t, src.AddNamed("head", NewAffine(2, backend)))
	copy(src.Module(0).(*Linear[Backend]).Weight().Tensor().Data(), []float32{1, 2, 3, 4})
	copy(src.Module(1).(*Affine[Backend]).Gain().Tensor().Data(), []float32{5, 6})

	stateDict := src.StateDict()
	assert.Contains(t, stateDict, "0.weight")
	assert.Contains(t, stateDict, "head.gain")

	dst := NewSequential[Backend](NewLinear(2, 2, backend))
	require.NoError(t, dst.AddNamed("head", NewAffine(2, backend)))
	require.NoError(t, dst.LoadStateDict(stateDict))

	assert.Equal(t, []float32{1, 2, 3, 4}, dst.Module(0).(*Linear[Backend]).Weight().Tensor().Data())
	assert.Equal(t, []float32{5, 6}, dst.Module(1).(*Affine[Backend]).Gain().Tensor().Data())
}

func TestSequentialLoadStateDictWrapsChildError(t *testing.T) {
	backend := testBackend()
	seq := NewSequential[Backend](NewLinear(2, 2, backend))

	wrong, _ := tensor.NewRaw(tensor.Shape{5}, tensor.Float32)
	err := seq.LoadStateDict(map[string]*tensor.RawTensor{"0.weight": wrong})
	require.Error(t, err)
	assert.ErrorContains(t, err, `module "0"`)
}
