// Copyright 2025 Weft ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Weft library.
//
// # Overview
//
// Tensors are the fundamental data structure in Weft. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy views for reshape
//   - Identity-preserving raw tensors for gradient bookkeeping
//
// # Basic Usage
//
//	import (
//	    "github.com/weft-ml/weft/tensor"
//	    "github.com/weft-ml/weft/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    result := x.MatMul(y.Transpose())
//	}
//
// # Supported Data Types
//
// The tensor package supports floating-point element types via the
// DType constraint: float32 and float64. Gradient tracking only makes
// sense for floats, so the constraint is deliberately narrow.
//
// # Identity
//
// Every tensor wraps a RawTensor, which is the tensor's identity for
// gradient accumulation. Layers that tie a parameter hold the same
// RawTensor; the backward pass sums the gradient contributions of all
// its use sites into one slot. Clone breaks identity, Reshape keeps the
// storage but allocates a new identity that routes gradients back via
// the tape.
package tensor
