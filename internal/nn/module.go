// Package nn implements neural network modules for the Weft library.
//
// The package centers on parameter introspection: module trees expose
// their trainable parameters under stable dotted path names, visitors
// traverse the tree to apply initializer policies, and parameters can
// be tied between layers by identity so that gradients accumulate into
// one shared slot.
package nn

import (
	"github.com/weft-ml/weft/internal/tensor"
)

// NamedParameter pairs a parameter with its dotted path inside a module
// tree (e.g. "0.weight" for the weight of a Sequential's first child).
type NamedParameter[B tensor.Backend] struct {
	Path  string
	Param *Parameter[B]
}

// NamedModule pairs a direct child module with its name.
type NamedModule[B tensor.Backend] struct {
	Name   string
	Module Module[B]
}

// Module is the base interface for all neural network components.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Kind returns the module's layer kind.
	Kind() Kind

	// NamedParameters returns (path, parameter) pairs for this module
	// and everything below it, in deterministic pre-order following
	// declaration order. A tied parameter appears once per path it is
	// reachable under; the *Parameter is identical at every such path.
	NamedParameters() []NamedParameter[B]

	// Children returns the direct submodules with their names, in
	// declaration order. Leaf layers return nil.
	Children() []NamedModule[B]

	// StateDict returns a map of parameter paths to raw tensors.
	StateDict() map[string]*tensor.RawTensor

	// LoadStateDict copies parameter values in from a state dictionary.
	// Returns an error if a required parameter is missing or has the
	// wrong shape.
	LoadStateDict(stateDict map[string]*tensor.RawTensor) error
}

// Apply visits every module in the tree rooted at m exactly once, in
// pre-order: the parent before its children, siblings in declaration
// order. The visitor may mutate parameter values in place; it is
// expected to switch on Kind and ignore modules it does not handle.
func Apply[B tensor.Backend](m Module[B], fn func(Module[B])) {
	fn(m)
	for _, child := range m.Children() {
		Apply(child.Module, fn)
	}
}

// Parameters returns the distinct parameters of a module tree in
// traversal order. A parameter tied into the tree at several paths is
// returned once, which is what an optimizer wants to iterate over.
func Parameters[B tensor.Backend](m Module[B]) []*Parameter[B] {
	seen := make(map[ParamID]bool)
	var out []*Parameter[B]
	for _, np := range m.NamedParameters() {
		if seen[np.Param.ID()] {
			continue
		}
		seen[np.Param.ID()] = true
		out = append(out, np.Param)
	}
	return out
}

// prefixParameters prepends "name." to every path in params.
func prefixParameters[B tensor.Backend](name string, params []NamedParameter[B]) []NamedParameter[B] {
	out := make([]NamedParameter[B], len(params))
	for i, np := range params {
		out[i] = NamedParameter[B]{Path: name + "." + np.Path, Param: np.Param}
	}
	return out
}
