// Copyright 2025 Weft ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/weft-ml/weft/autodiff"
	"github.com/weft-ml/weft/backend/cpu"
	"github.com/weft-ml/weft/nn"
	"github.com/weft-ml/weft/tensor"
)

type Backend = *autodiff.Backend[*cpu.Backend]

// TestModuleInterface verifies that concrete types implement the Module
// interface through the public API.
func TestModuleInterface(t *testing.T) {
	backend := autodiff.New(cpu.New())

	tests := []struct {
		name   string
		module nn.Module[Backend]
		in     int
	}{
		{name: "Linear", module: nn.NewLinear(10, 5, backend), in: 10},
		{name: "Affine", module: nn.NewAffine(10, backend), in: 10},
		{
			name: "Sequential",
			module: nn.NewSequential[Backend](
				nn.NewLinear(10, 5, backend),
				nn.NewReLU[Backend](),
			),
			in: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tensor.Randn[float32](tensor.Shape{2, tt.in}, backend)
			out := tt.module.Forward(input)
			if out == nil {
				t.Fatal("Forward returned nil")
			}

			if stateDict := tt.module.StateDict(); stateDict == nil {
				t.Error("StateDict() returned nil")
			}
			for _, np := range tt.module.NamedParameters() {
				if np.Path == "" || np.Param == nil {
					t.Errorf("invalid named parameter %+v", np)
				}
			}
		})
	}
}

// TestTiedModelEndToEnd builds a model with a tied projection through
// the public API, initializes it, and checks gradient accumulation.
func TestTiedModelEndToEnd(t *testing.T) {
	backend := autodiff.New(cpu.New())

	proj := nn.NewParameter("weight", tensor.Zeros[float32](tensor.Shape{4, 4}, backend))
	first, err := nn.NewLinearShared(proj, nil, backend)
	if err != nil {
		t.Fatalf("NewLinearShared: %v", err)
	}
	second, err := nn.NewLinearShared(proj, nil, backend)
	if err != nil {
		t.Fatalf("NewLinearShared: %v", err)
	}
	model := nn.NewSequential[Backend](first, second)

	if err := nn.Initialize[Backend](model, nn.DefaultConfig()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	// Two named paths, one distinct parameter.
	if got := len(model.NamedParameters()); got != 2 {
		t.Errorf("NamedParameters: got %d paths, want 2", got)
	}
	if got := len(nn.Parameters[Backend](model)); got != 1 {
		t.Errorf("Parameters: got %d distinct, want 1", got)
	}

	store := nn.NewParamStore[Backend]()
	store.RegisterModule(model)
	if store.Len() != 1 {
		t.Fatalf("store.Len() = %d, want 1", store.Len())
	}

	backend.Tape().StartRecording()
	x := tensor.Ones[float32](tensor.Shape{1, 4}, backend)
	loss := model.Forward(x).Sum()

	grads := autodiff.Backward(loss, backend)
	store.ApplyGradients(grads)

	grad, err := store.Gradient(proj.ID())
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	if !grad.Shape().Equal(tensor.Shape{4, 4}) {
		t.Errorf("gradient shape = %v, want [4 4]", grad.Shape())
	}
}

// TestInitializeFromYAML parses a config and applies it through the
// public API.
func TestInitializeFromYAML(t *testing.T) {
	backend := autodiff.New(cpu.New())

	cfg, err := nn.ParseConfig([]byte(`
linear:
  weight: {policy: constant, value: 1}
  bias: {policy: constant, value: -0.5}
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	layer := nn.NewLinear(3, 2, backend)
	if err := nn.Initialize[Backend](layer, cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	for _, v := range layer.Weight().Tensor().Data() {
		if v != 1 {
			t.Fatalf("weight value %v, want 1", v)
		}
	}
	for _, v := range layer.Bias().Tensor().Data() {
		if v != -0.5 {
			t.Fatalf("bias value %v, want -0.5", v)
		}
	}
}
