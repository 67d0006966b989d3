package eval

import "sort"

// Environment is a single binding frame plus a link to the frame
// enclosing it. The outer link is fixed at construction and never
// re-pointed.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a frame chained onto outer; outer is nil
// for the root.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		store: map[string]Value{},
		outer: outer,
	}
}

// Outer returns the enclosing frame, nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// Define binds name to value in this frame, creating or overwriting
// the local binding. It never walks up: writing a name that already
// exists in an enclosing frame shadows it for the lifetime of this
// frame instead of mutating it.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Get resolves name against this frame, then each enclosing frame
// in turn. A name absent from the whole chain is a *NameError.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.store[name]; ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, &NameError{Name: name}
}

// Keys returns this frame's local bindings in sorted order, for
// deterministic display.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.store))
	for k := range e.store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
