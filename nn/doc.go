// Copyright 2025 Weft ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear, Affine
//   - Activations: ReLU, Sigmoid, Tanh
//   - Containers: Sequential, the Module interface
//   - Parameters: Parameter, ParamStore, weight tying by identity
//   - Initialization: explicit per-kind policies (Xavier, uniform,
//     normal, constant), loadable from YAML
//
// # Basic Usage
//
//	import (
//	    "github.com/weft-ml/weft/nn"
//	    "github.com/weft-ml/weft/autodiff"
//	    "github.com/weft-ml/weft/backend/cpu"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//
//	    // Build a simple MLP
//	    model := nn.NewSequential(
//	        nn.NewLinear(784, 128, backend),
//	        nn.NewReLU[*autodiff.Backend[*cpu.Backend]](),
//	        nn.NewLinear(128, 10, backend),
//	    )
//
//	    // Parameters are zero until a policy is applied
//	    if err := nn.Initialize(model, nn.DefaultConfig()); err != nil {
//	        panic(err)
//	    }
//
//	    // Forward pass
//	    output := model.Forward(input)
//	}
//
// # Parameter Paths
//
// Every parameter of a module tree is reachable under a dotted path:
// a Sequential's first Linear exposes "0.weight" and "0.bias", a child
// added under an explicit name prefixes that name instead. Paths are
// deterministic across runs, which makes them usable as state-dict
// keys.
//
// # Weight Tying
//
// Layers share a parameter by holding the same *Parameter. The tied
// parameter appears once per path it is reachable under, mutations
// through one site are visible through all, and a backward pass sums
// every site's gradient contribution into the one slot.
package nn
