package eval

import (
	"fmt"
	"strconv"

	"skop/lang"
)

//go:generate stringer -type=ValueType -linecomment

type ValueType uint8

const (
	_ = ValueType(iota)
	VT_NIL      // nil
	VT_INT      // int
	VT_FUNCTION // function
)

// Value is implemented by every runtime value. The variant is
// closed: integers, function references, and the nil produced by an
// empty function body.
type Value interface {
	Type() ValueType
}

type Nil struct{}
type Int int64

// NIL is the "no value" result; there is only one.
var NIL = Nil{}

// Function pairs an executable body with the environment that was
// active when its def statement ran. The capture is unconditional --
// it is recorded in both scoping modes, and only the call protocol
// decides whether it is used (static) or ignored in favour of the
// caller's live frame (dynamic). The captured environment is not
// owned here: it is always an ancestor of every frame that exists
// while the function is callable.
type Function struct {
	Name   string
	Body   []lang.Stmt
	defEnv *Environment
}

func newFunction(name string, body []lang.Stmt, env *Environment) *Function {
	return &Function{Name: name, Body: body, defEnv: env}
}

func (Nil) Type() ValueType       { return VT_NIL }
func (Int) Type() ValueType       { return VT_INT }
func (*Function) Type() ValueType { return VT_FUNCTION }

func (Nil) String() string         { return "nil" }
func (v Int) String() string       { return strconv.FormatInt(int64(v), 10) }
func (f *Function) String() string { return fmt.Sprintf("function: %s", f.Name) }
