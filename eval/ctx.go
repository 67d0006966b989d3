package eval

import (
	"fmt"
	"io"

	"skop/lang"
)

// Context executes statements against an environment chain. The
// scoping mode is fixed for the context's lifetime: running the same
// program under two contexts with different modes is the whole point
// of the exercise.
type Context struct {
	mode Mode
	out  io.Writer
}

// NewContext returns a context that resolves names under mode and
// emits printed integers to out, one per line.
func NewContext(mode Mode, out io.Writer) *Context {
	return &Context{mode: mode, out: out}
}

func (ctx *Context) Mode() Mode { return ctx.mode }

// Run executes the program's statements in order against a fresh
// global environment. The global environment is returned so that
// callers can keep executing against it, e.g. the demo driver calls
// g after the program has run.
func (ctx *Context) Run(program *lang.Program) (*Environment, error) {
	globals := NewEnvironment(nil)
	for _, stmt := range program.Body {
		if _, err := ctx.Exec(stmt, globals); err != nil {
			return nil, err
		}
	}
	return globals, nil
}

// Exec executes a single statement in env and returns the value it
// produced; a function body's result is the value of its last
// statement.
func (ctx *Context) Exec(stmt lang.Stmt, env *Environment) (Value, error) {
	switch stmt := stmt.(type) {
	case *lang.Assign:
		value, err := ctx.Eval(stmt.Value, env)
		if err != nil {
			return nil, err
		}
		env.Define(stmt.Name, value)
		return value, nil
	case *lang.Print:
		value, err := ctx.Eval(stmt.Value, env)
		if err != nil {
			return nil, err
		}
		n, ok := value.(Int)
		if !ok {
			return nil, &TypeError{Op: "print", Name: stmt.Value.String(), Got: value.Type()}
		}
		fmt.Fprintln(ctx.out, int64(n))
		return value, nil
	case *lang.Call:
		return ctx.call(stmt.Name, env)
	case *lang.Def:
		fn := newFunction(stmt.Name, stmt.Body, env)
		env.Define(stmt.Name, fn)
		return fn, nil
	}
	panic(fmt.Sprintf("unhandled statement %#+v", stmt))
}

// Eval evaluates an expression to a value.
func (ctx *Context) Eval(expr lang.Expr, env *Environment) (Value, error) {
	switch expr := expr.(type) {
	case *lang.IntLit:
		return Int(expr.Value), nil
	case *lang.Var:
		return env.Get(expr.Name)
	}
	panic(fmt.Sprintf("unhandled expression %#+v", expr))
}
