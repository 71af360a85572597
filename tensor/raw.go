// Copyright 2025 Weft ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/weft-ml/weft/internal/tensor"

// RawTensor is the low-level, untyped tensor representation.
//
// RawTensors carry storage, shape, strides and runtime type info, and
// they are the unit of identity for gradient bookkeeping: a parameter
// tied into a model at several places shares one *RawTensor, and the
// backward pass accumulates every use site's gradient into the slot
// keyed by that pointer.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-initialized raw tensor with the given shape and dtype.
//
// This is a low-level function. Most users should use the high-level
// creation functions instead.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}
