package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-ml/weft/internal/autodiff"
	"github.com/weft-ml/weft/internal/backend/cpu"
	"github.com/weft-ml/weft/internal/tensor"
)

type Backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func testBackend() Backend {
	return autodiff.New(cpu.New())
}

func mustTensor(t *testing.T, backend Backend, data []float32, shape tensor.Shape) *tensor.Tensor[float32, Backend] {
	t.Helper()
	tt, err := tensor.FromSlice(data, shape, backend)
	require.NoError(t, err)
	return tt
}

func paramPaths[B tensor.Backend](m Module[B]) []string {
	var paths []string
	for _, np := range m.NamedParameters() {
		paths = append(paths, np.Path)
	}
	return paths
}

func TestNamedParametersNestedPaths(t *testing.T) {
	backend := testBackend()

	inner := NewSequential[Backend](
		NewLinear(4, 3, backend),
		NewReLU[Backend](),
	)
	outer := NewSequential[Backend](
		NewLinear(2, 4, backend),
	)
	require.NoError(t, outer.AddNamed("body", inner))

	assert.Equal(t, []string{
		"0.weight",
		"0.bias",
		"body.0.weight",
		"body.0.bias",
	}, paramPaths[Backend](outer))
}

func TestApplyPreOrderVisitsEveryModuleOnce(t *testing.T) {
	backend := testBackend()

	inner := NewSequential[Backend](
		NewAffine(3, backend),
		NewTanh[Backend](),
	)
	root := NewSequential[Backend](NewLinear(2, 3, backend))
	require.NoError(t, root.AddNamed("inner", inner))

	var visited []Kind
	Apply[Backend](root, func(m Module[Backend]) {
		visited = append(visited, m.Kind())
	})

	// Parent before children, siblings in declaration order.
	assert.Equal(t, []Kind{
		KindSequential,
		KindLinear,
		KindSequential,
		KindAffine,
		KindTanh,
	}, visited)
}

func TestApplyVisitsSharedModuleAtEachSite(t *testing.T) {
	backend := testBackend()

	lin := NewLinear(3, 3, backend)
	root := NewSequential[Backend](lin, lin)

	count := 0
	Apply[Backend](root, func(m Module[Backend]) {
		if m.Kind() == KindLinear {
			count++
		}
	})

	// A module inserted twice is visited once per site.
	assert.Equal(t, 2, count)
}

func TestParametersDeduplicatesTied(t *testing.T) {
	backend := testBackend()

	lin := NewLinear(3, 3, backend)
	root := NewSequential[Backend](lin, lin)

	// Two sites, four named paths, but only two distinct parameters.
	assert.Len(t, root.NamedParameters(), 4)
	assert.Len(t, Parameters[Backend](root), 2)
}

func TestNamedParametersDeterministic(t *testing.T) {
	backend := testBackend()
	root := NewSequential[Backend](
		NewLinear(2, 3, backend),
		NewAffine(3, backend),
		NewLinearNoBias(3, 1, backend),
	)

	first := paramPaths[Backend](root)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, paramPaths[Backend](root))
	}
	assert.Equal(t, []string{"0.weight", "0.bias", "1.gain", "1.bias", "2.weight"}, first)
}

func TestNamedParametersEqualPrefixedChildUnion(t *testing.T) {
	backend := testBackend()
	root := NewSequential[Backend](NewLinear(2, 3, backend))
	require.NoError(t, root.AddNamed("norm", NewAffine(3, backend)))
	require.NoError(t, root.AddNamed("head", NewSequential[Backend](NewLinearNoBias(3, 1, backend))))

	var union []NamedParameter[Backend]
	for _, child := range root.Children() {
		for _, np := range child.Module.NamedParameters() {
			union = append(union, NamedParameter[Backend]{
				Path:  child.Name + "." + np.Path,
				Param: np.Param,
			})
		}
	}

	assert.Equal(t, union, root.NamedParameters())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Linear", KindLinear.String())
	assert.Equal(t, "Affine", KindAffine.String())
	assert.Equal(t, "ReLU", KindReLU.String())
	assert.Equal(t, "Sigmoid", KindSigmoid.String())
	assert.Equal(t, "Tanh", KindTanh.String())
	assert.Equal(t, "Sequential", KindSequential.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
