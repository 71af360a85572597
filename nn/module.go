// Copyright 2025 Weft ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/weft-ml/weft/internal/nn"
	"github.com/weft-ml/weft/tensor"
)

// Module is the base interface for all neural network components.
//
// Every module can run a forward pass, report its layer Kind, expose
// its parameters under dotted paths, enumerate its children, and
// export/import a state dictionary.
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(128, 10, backend),
//	)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] = nn.Module[B]

// NamedParameter pairs a parameter with its dotted path inside a module
// tree (e.g. "0.weight").
type NamedParameter[B tensor.Backend] = nn.NamedParameter[B]

// NamedModule pairs a direct child module with its name.
type NamedModule[B tensor.Backend] = nn.NamedModule[B]

// Kind identifies a layer kind. Per-kind behavior (such as initializer
// policies) switches over Kind values instead of doing runtime type
// inspection.
type Kind = nn.Kind

// Layer kinds.
const (
	KindLinear     Kind = nn.KindLinear
	KindAffine     Kind = nn.KindAffine
	KindReLU       Kind = nn.KindReLU
	KindSigmoid    Kind = nn.KindSigmoid
	KindTanh       Kind = nn.KindTanh
	KindSequential Kind = nn.KindSequential
)

// Apply visits every module in the tree rooted at m exactly once, in
// pre-order: the parent before its children, siblings in declaration
// order.
//
// Example:
//
//	nn.Apply(model, func(m nn.Module[Backend]) {
//	    if m.Kind() == nn.KindLinear {
//	        // ...
//	    }
//	})
func Apply[B tensor.Backend](m Module[B], fn func(Module[B])) {
	nn.Apply(m, fn)
}

// Parameters returns the distinct parameters of a module tree in
// traversal order. A parameter tied into the tree at several paths is
// returned once.
func Parameters[B tensor.Backend](m Module[B]) []*Parameter[B] {
	return nn.Parameters(m)
}
