package lang

import (
	"bytes"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	stmts := []string{}
	for _, stmt := range p.Body {
		stmts = append(stmts, stmt.String())
	}
	return strings.Join(stmts, "\n")
}

// Expressions

func (e *IntLit) String() string {
	return strconv.FormatInt(e.Value, 10)
}

func (e *Var) String() string {
	return e.Name
}

// Statements

func (s *Assign) String() string {
	var buf bytes.Buffer
	buf.WriteString(s.Name)
	buf.WriteString(" = ")
	buf.WriteString(s.Value.String())
	return buf.String()
}

func (s *Print) String() string {
	var buf bytes.Buffer
	buf.WriteString("print(")
	buf.WriteString(s.Value.String())
	buf.WriteString(")")
	return buf.String()
}

func (s *Call) String() string {
	return s.Name + "()"
}

func (s *Def) String() string {
	var buf bytes.Buffer
	buf.WriteString("def ")
	buf.WriteString(s.Name)
	buf.WriteString("():")
	if len(s.Body) == 0 {
		buf.WriteString("\n    pass")
		return buf.String()
	}
	for _, stmt := range s.Body {
		for _, line := range strings.Split(stmt.String(), "\n") {
			buf.WriteString("\n    ")
			buf.WriteString(line)
		}
	}
	return buf.String()
}
