package nn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weft-ml/weft/internal/tensor"
)

// Sequential is a container that chains modules: each module's output
// becomes the next module's input.
//
// Children are named. Modules added positionally get their index as
// name ("0", "1", ...); AddNamed attaches an explicit string key.
// Names are unique within the container, which keeps every parameter
// path below it unique.
//
// The same module value may be inserted more than once; it then appears
// under two paths while its parameters stay one identity, which is the
// container-level form of weight tying.
type Sequential[B tensor.Backend] struct {
	children []NamedModule[B]
}

// NewSequential creates a Sequential from the given modules, named by
// their position.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	s := &Sequential[B]{}
	for _, m := range modules {
		s.Add(m)
	}
	return s
}

// Add appends a module under its positional name.
func (s *Sequential[B]) Add(module Module[B]) {
	s.children = append(s.children, NamedModule[B]{
		Name:   strconv.Itoa(len(s.children)),
		Module: module,
	})
}

// AddNamed appends a module under an explicit name. The name must not
// contain "." and must be unique within the container.
func (s *Sequential[B]) AddNamed(name string, module Module[B]) error {
	if name == "" || strings.Contains(name, ".") {
		return fmt.Errorf("invalid module name %q", name)
	}
	for _, child := range s.children {
		if child.Name == name {
			return fmt.Errorf("duplicate module name %q", name)
		}
	}
	s.children = append(s.children, NamedModule[B]{Name: name, Module: module})
	return nil
}

// Forward applies all modules in order.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output := input
	for _, child := range s.children {
		output = child.Module.Forward(output)
	}
	return output
}

// Kind returns KindSequential.
func (s *Sequential[B]) Kind() Kind {
	return KindSequential
}

// NamedParameters returns every parameter below the container, child
// name prefixed onto the child's own paths.
func (s *Sequential[B]) NamedParameters() []NamedParameter[B] {
	var params []NamedParameter[B]
	for _, child := range s.children {
		params = append(params, prefixParameters(child.Name, child.Module.NamedParameters())...)
	}
	return params
}

// Children returns the direct children in declaration order.
func (s *Sequential[B]) Children() []NamedModule[B] {
	return s.children
}

// Len returns the number of children.
func (s *Sequential[B]) Len() int {
	return len(s.children)
}

// Module returns the child at the given position.
// Panics if the index is out of bounds.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.children) {
		panic(fmt.Sprintf("Sequential.Module: index %d out of bounds (len %d)", index, len(s.children)))
	}
	return s.children[index].Module
}

// ByName returns the child with the given name.
func (s *Sequential[B]) ByName(name string) (Module[B], bool) {
	for _, child := range s.children {
		if child.Name == name {
			return child.Module, true
		}
	}
	return nil, false
}

// StateDict returns all parameters below the container, keyed by their
// prefixed paths.
func (s *Sequential[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	for _, child := range s.children {
		for name, raw := range child.Module.StateDict() {
			stateDict[child.Name+"."+name] = raw
		}
	}
	return stateDict
}

// LoadStateDict distributes entries to children by path prefix.
func (s *Sequential[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	for _, child := range s.children {
		prefix := child.Name + "."
		childDict := make(map[string]*tensor.RawTensor)
		for key, raw := range stateDict {
			if strings.HasPrefix(key, prefix) {
				childDict[strings.TrimPrefix(key, prefix)] = raw
			}
		}
		if len(childDict) == 0 {
			continue
		}
		if err := child.Module.LoadStateDict(childDict); err != nil {
			return fmt.Errorf("failed to load module %q: %w", child.Name, err)
		}
	}
	return nil
}
