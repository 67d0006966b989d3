// Package lang defines the program representation executed by the
// evaluator. There is no textual syntax: programs arrive pre-built,
// either constructed directly or decoded from a YAML document.
package lang

type Node interface {
	String() string
	node()
}

type Expr interface {
	Node
	expr()
}

type Stmt interface {
	Node
	stmt()
}

// Program is an ordered sequence of top-level statements, executed
// in order against one shared global environment.
type Program struct {
	Name string
	Body []Stmt
}

// Expressions

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// Var is a reference to a variable by name.
type Var struct {
	Name string
}

// Statements

// Assign evaluates Value and binds it to Name in the current frame.
// It always creates or overwrites a local binding -- it never
// mutates a binding in an enclosing frame.
type Assign struct {
	Name  string
	Value Expr
}

// Print evaluates Value and emits the integer to the output sink.
type Print struct {
	Value Expr
}

// Call invokes the function bound to Name. Calls take no arguments;
// everything a body sees, it sees through its environment chain.
type Call struct {
	Name string
}

// Def constructs a function from Body, capturing the environment the
// def executes in, and binds it to Name.
type Def struct {
	Name string
	Body []Stmt
}

func (*IntLit) node() {}
func (*Var) node()    {}
func (*Assign) node() {}
func (*Print) node()  {}
func (*Call) node()   {}
func (*Def) node()    {}

func (*IntLit) expr() {}
func (*Var) expr()    {}

func (*Assign) stmt() {}
func (*Print) stmt()  {}
func (*Call) stmt()   {}
func (*Def) stmt()    {}
