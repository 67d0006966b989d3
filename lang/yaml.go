package lang

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Programs are stored as YAML documents:
//
//	name: demo
//	body:
//	  - assign: x
//	    value: 10
//	  - def: f
//	    body:
//	      - print: x
//	  - call: f
//
// A statement is a mapping whose discriminating key is one of
// assign, print, call or def. Expressions are scalars: an integer is
// a literal, a string is a variable reference. This is decoding of
// an already-structured program, not a syntax.

// LoadFile reads a program document from path.
func LoadFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("program: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, path)
}

// Load decodes a program document from r. name is used in error
// messages, and as the program name if the document has none.
func Load(r io.Reader, name string) (*Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc programFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("program: %s is empty", name)
		}
		return nil, fmt.Errorf("program: parse %s: %w", name, err)
	}

	prog := &Program{Name: doc.Name, Body: unwrap(doc.Body)}
	if prog.Name == "" {
		prog.Name = name
	}
	if err := prog.Validate(); err != nil {
		return nil, err
	}
	return prog, nil
}

type programFile struct {
	Name string     `yaml:"name"`
	Body []stmtNode `yaml:"body"`
}

// stmtNode and exprNode exist so that the union types can hang their
// yaml decoding off a concrete struct.
type stmtNode struct{ stmt Stmt }
type exprNode struct{ expr Expr }

func unwrap(nodes []stmtNode) []Stmt {
	out := make([]Stmt, len(nodes))
	for i, n := range nodes {
		out[i] = n.stmt
	}
	return out
}

func (s *stmtNode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		return s.UnmarshalYAML(node.Alias)
	}
	if node.Kind != yaml.MappingNode {
		return nodeErr(node, "statement must be a mapping")
	}

	var (
		kind    string
		name    string     // assign/call/def target
		operand *yaml.Node // the print expression
		value   *yaml.Node // the assign expression
		body    *yaml.Node // the def body
	)
	for i := 0; i < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "assign", "call", "def":
			if kind != "" {
				return nodeErr(key, "statement has both %q and %q", kind, key.Value)
			}
			n, err := scalarString(val)
			if err != nil {
				return err
			}
			kind, name = key.Value, n
		case "print":
			if kind != "" {
				return nodeErr(key, "statement has both %q and %q", kind, key.Value)
			}
			kind, operand = "print", val
		case "value":
			value = val
		case "body":
			body = val
		default:
			return nodeErr(key, "unknown statement field %q", key.Value)
		}
	}

	if kind == "" {
		return nodeErr(node, "statement needs one of assign, print, call or def")
	}
	if value != nil && kind != "assign" {
		return nodeErr(node, "%q statements take no value field", kind)
	}
	if body != nil && kind != "def" {
		return nodeErr(node, "%q statements take no body field", kind)
	}

	switch kind {
	case "assign":
		if value == nil {
			return nodeErr(node, "assign needs a value")
		}
		var e exprNode
		if err := e.UnmarshalYAML(value); err != nil {
			return err
		}
		s.stmt = &Assign{Name: name, Value: e.expr}
	case "print":
		var e exprNode
		if err := e.UnmarshalYAML(operand); err != nil {
			return err
		}
		s.stmt = &Print{Value: e.expr}
	case "call":
		s.stmt = &Call{Name: name}
	case "def":
		var inner []stmtNode
		if body != nil {
			if err := body.Decode(&inner); err != nil {
				return err
			}
		}
		s.stmt = &Def{Name: name, Body: unwrap(inner)}
	}
	return nil
}

func (e *exprNode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		return e.UnmarshalYAML(node.Alias)
	}
	if node.Kind != yaml.ScalarNode {
		return nodeErr(node, "expression must be a scalar")
	}
	switch node.Tag {
	case "!!int":
		v, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return nodeErr(node, "bad integer literal %q", node.Value)
		}
		e.expr = &IntLit{Value: v}
		return nil
	case "!!str":
		e.expr = &Var{Name: node.Value}
		return nil
	}
	return nodeErr(node, "expression must be an integer literal or a variable name")
}

func scalarString(node *yaml.Node) (string, error) {
	if node.Kind == yaml.AliasNode {
		return scalarString(node.Alias)
	}
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		return "", nodeErr(node, "expected a name")
	}
	return node.Value, nil
}

func nodeErr(node *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", node.Line, fmt.Sprintf(format, args...))
}

// ValidationError aggregates the structural problems found in a
// decoded program.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "program: invalid"
	}
	var b strings.Builder
	b.WriteString("program validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

// Validate checks the program for structural problems: empty names
// and missing expressions. Name resolution is Check's job.
func (p *Program) Validate() error {
	var errs ValidationError
	validateBody("body", p.Body, &errs)
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func validateBody(path string, body []Stmt, errs *ValidationError) {
	for i, stmt := range body {
		at := fmt.Sprintf("%s[%d]", path, i)
		switch stmt := stmt.(type) {
		case *Assign:
			if stmt.Name == "" {
				errs.Issues = append(errs.Issues, at+": assign has an empty name")
			}
			validateExpr(at, stmt.Value, errs)
		case *Print:
			validateExpr(at, stmt.Value, errs)
		case *Call:
			if stmt.Name == "" {
				errs.Issues = append(errs.Issues, at+": call has an empty name")
			}
		case *Def:
			if stmt.Name == "" {
				errs.Issues = append(errs.Issues, at+": def has an empty name")
			}
			validateBody(at+".body", stmt.Body, errs)
		}
	}
}

func validateExpr(path string, expr Expr, errs *ValidationError) {
	switch expr := expr.(type) {
	case nil:
		errs.Issues = append(errs.Issues, path+": missing expression")
	case *Var:
		if expr.Name == "" {
			errs.Issues = append(errs.Issues, path+": variable reference has an empty name")
		}
	}
}
