// Copyright 2025 Weft ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/weft-ml/weft/internal/nn"
	"github.com/weft-ml/weft/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters carry a stable identity (ParamID). Layers that tie a
// parameter hold the same *Parameter: its storage, identifier and
// gradient slot are shared between all use sites.
//
// Example:
//
//	// Create a weight parameter
//	weight := nn.NewParameter("weight", weightTensor)
//
//	// Access the tensor
//	w := weight.Tensor()
//
//	// Get gradient after backward pass
//	grad := weight.Grad()
//
// Note: Parameter is implemented as a type alias because it is used as
// a return type in the Module interface. Go's type system requires
// exact type matches for interface implementations, so we cannot use an
// interface here.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// ParamID is the stable identity of a Parameter.
type ParamID = nn.ParamID

// NewParameter creates a trainable parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// ParamStore is an arena of parameters keyed by their stable ParamID.
//
// The store makes sharing explicit: a parameter is allocated once,
// registered under its ID, and every layer that ties it references the
// single allocation. After a backward pass, ApplyGradients moves the
// accumulated gradients into the per-parameter slots.
//
// Example:
//
//	store := nn.NewParamStore[Backend]()
//	store.RegisterModule(model)
//
//	grads := autodiff.Backward(loss, backend)
//	store.ApplyGradients(grads)
type ParamStore[B tensor.Backend] = nn.ParamStore[B]

// NewParamStore creates an empty parameter store.
func NewParamStore[B tensor.Backend]() *ParamStore[B] {
	return nn.NewParamStore[B]()
}
