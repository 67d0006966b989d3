package lang

import (
	"errors"
	"fmt"
)

// Check walks a program ahead of execution and reports references
// that cannot resolve under lexical scoping. The walk mirrors
// execution order, so a def body is checked against the names
// visible at its definition point. That under-approximates what a
// call may see later (the global frame keeps growing, and dynamic
// scoping can bind anything through the caller chain), so callers
// should present these as warnings rather than refusing to run.

var TooManyIssues = errors.New("too many issues")

const maxIssues = 10

// CheckError describes one suspect reference.
type CheckError struct {
	Program string
	Where   string // enclosing function name, empty at top level
	Message string
}

func (ce CheckError) Error() string { return ce.String() }
func (ce CheckError) String() string {
	program := ce.Program
	if program == "" {
		program = "program"
	}
	where := ce.Where
	if where == "" {
		where = "top level"
	}
	return fmt.Sprintf("%s: %s: %s", program, where, ce.Message)
}

type scope map[string]bool

type checker struct {
	program *Program
	scopes  []scope
	issues  []error
	full    bool
}

// Check returns one error per suspect reference, in program order.
func Check(p *Program) []error {
	c := &checker{program: p}
	c.push() // the global scope.
	for _, stmt := range p.Body {
		c.stmt("", stmt)
	}
	return c.issues
}

func (c *checker) curr() scope { return c.scopes[len(c.scopes)-1] }
func (c *checker) push()       { c.scopes = append(c.scopes, scope{}) }
func (c *checker) pop()        { c.scopes = c.scopes[:len(c.scopes)-1] }

func (c *checker) declare(name string) {
	c.curr()[name] = true
}

func (c *checker) resolved(name string) bool {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if c.scopes[i][name] {
			return true
		}
	}
	return false
}

func (c *checker) report(where, format string, args ...interface{}) {
	if c.full {
		return
	}
	if len(c.issues) == maxIssues {
		c.issues = append(c.issues, TooManyIssues)
		c.full = true
		return
	}
	c.issues = append(c.issues, CheckError{
		Program: c.program.Name,
		Where:   where,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) stmt(where string, stmt Stmt) {
	switch stmt := stmt.(type) {
	case *Assign:
		c.expr(where, stmt.Value)
		c.declare(stmt.Name)
	case *Print:
		c.expr(where, stmt.Value)
	case *Call:
		if !c.resolved(stmt.Name) {
			c.report(where, "call to %q, which is not visible here", stmt.Name)
		}
	case *Def:
		c.declare(stmt.Name)
		c.push()
		for _, inner := range stmt.Body {
			c.stmt(stmt.Name, inner)
		}
		c.pop()
	}
}

func (c *checker) expr(where string, expr Expr) {
	if v, ok := expr.(*Var); ok && !c.resolved(v.Name) {
		c.report(where, "%q is not visible here", v.Name)
	}
}
