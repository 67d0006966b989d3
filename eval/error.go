package eval

import "fmt"

// Both error kinds are fatal to the run: there is no handler
// mechanism, so they propagate unchanged out of Exec/Eval/Run.

// NameError reports a name absent from every frame in the chain.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name %q is not defined", e.Name)
}

// TypeError reports a value used where another kind is required:
// calling a non-function, or printing a non-integer.
type TypeError struct {
	Op   string // "call" or "print"
	Name string // the offending binding or expression
	Got  ValueType
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot %s %q: %s value", e.Op, e.Name, e.Got)
}
