package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/weft-ml/weft/internal/tensor"
)

func TestParamStoreAllocateAndGet(t *testing.T) {
	backend := testBackend()
	store := NewParamStore[Backend]()

	p := store.NewParameter("weight", tensor.Zeros[float32](tensor.Shape{2, 2}, backend))
	require.Equal(t, 1, store.Len())

	got, ok := store.Get(p.ID())
	require.True(t, ok)
	assert.Same(t, p, got)

	_, ok = store.Get(uuid.New())
	assert.False(t, ok)
}

func TestParamStoreRegisterIdempotent(t *testing.T) {
	backend := testBackend()
	store := NewParamStore[Backend]()

	p := NewParameter("weight", tensor.Zeros[float32](tensor.Shape{2}, backend))
	store.Register(p)
	store.Register(p)
	assert.Equal(t, 1, store.Len())
}

func TestParamStoreRegistrationOrder(t *testing.T) {
	backend := testBackend()
	store := NewParamStore[Backend]()

	a := store.NewParameter("a", tensor.Zeros[float32](tensor.Shape{1}, backend))
	b := store.NewParameter("b", tensor.Zeros[float32](tensor.Shape{1}, backend))
	c := store.NewParameter("c", tensor.Zeros[float32](tensor.Shape{1}, backend))

	params := store.Parameters()
	require.Len(t, params, 3)
	assert.Same(t, a, params[0])
	assert.Same(t, b, params[1])
	assert.Same(t, c, params[2])
}

func TestParamStoreApplyGradients(t *testing.T) {
	backend := testBackend()
	store := NewParamStore[Backend]()

	p := store.NewParameter("weight", tensor.Zeros[float32](tensor.Shape{2}, backend))
	frozen := store.NewParameter("frozen", tensor.Zeros[float32](tensor.Shape{2}, backend))
	frozen.SetTrainable(false)

	gradP, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)
	gradF, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)
	store.ApplyGradients(map[*tensor.RawTensor]*tensor.RawTensor{
		p.Tensor().Raw():      gradP,
		frozen.Tensor().Raw(): gradF,
	})

	require.NotNil(t, p.Grad())
	assert.Same(t, gradP, p.Grad().Raw())
	assert.Nil(t, frozen.Grad(), "non-trainable parameters must be skipped")
}

func TestParamStoreGradientErrors(t *testing.T) {
	backend := testBackend()
	store := NewParamStore[Backend]()

	_, err := store.Gradient(uuid.New())
	assert.ErrorContains(t, err, "unknown parameter")

	p := store.NewParameter("weight", tensor.Zeros[float32](tensor.Shape{2}, backend))
	_, err = store.Gradient(p.ID())
	assert.ErrorContains(t, err, "no gradient")
}

func TestParameterDefaults(t *testing.T) {
	backend := testBackend()
	p := NewParameter("bias", tensor.Zeros[float32](tensor.Shape{3}, backend))

	assert.Equal(t, "bias", p.Name())
	assert.True(t, p.Trainable())
	assert.Nil(t, p.Grad())
	assert.NotEqual(t, uuid.Nil, p.ID())

	q := NewParameter("bias", tensor.Zeros[float32](tensor.Shape{3}, backend))
	assert.NotEqual(t, p.ID(), q.ID(), "each allocation gets its own identity")
}
