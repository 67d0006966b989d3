package lang

import (
	"errors"
	"strings"
	"testing"
)

const demoDoc = `
name: demo
body:
  - assign: x
    value: 10
  - def: f
    body:
      - print: x
  - def: g
    body:
      - assign: x
        value: 20
      - call: f
  - call: g
`

func mustLoad(t *testing.T, doc string) *Program {
	t.Helper()
	prog, err := Load(strings.NewReader(doc), "test")
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	return prog
}

func TestLoad(t *testing.T) {
	prog := mustLoad(t, demoDoc)
	if prog.Name != "demo" {
		t.Fatalf("expected=%q, got=%q", "demo", prog.Name)
	}
	if len(prog.Body) != 4 {
		t.Fatalf("expected 4 statements, got=%d", len(prog.Body))
	}

	a, ok := prog.Body[0].(*Assign)
	if !ok || a.Name != "x" {
		t.Fatalf("expected assign to x, got=%#+v", prog.Body[0])
	}
	lit, ok := a.Value.(*IntLit)
	if !ok || lit.Value != 10 {
		t.Fatalf("expected literal 10, got=%#+v", a.Value)
	}

	f, ok := prog.Body[1].(*Def)
	if !ok || f.Name != "f" || len(f.Body) != 1 {
		t.Fatalf("expected def f with one statement, got=%#+v", prog.Body[1])
	}
	p, ok := f.Body[0].(*Print)
	if !ok {
		t.Fatalf("expected print, got=%#+v", f.Body[0])
	}
	if v, ok := p.Value.(*Var); !ok || v.Name != "x" {
		t.Fatalf("expected a reference to x, got=%#+v", p.Value)
	}

	g, ok := prog.Body[2].(*Def)
	if !ok || g.Name != "g" || len(g.Body) != 2 {
		t.Fatalf("expected def g with two statements, got=%#+v", prog.Body[2])
	}
	if c, ok := g.Body[1].(*Call); !ok || c.Name != "f" {
		t.Fatalf("expected a call to f, got=%#+v", g.Body[1])
	}

	if c, ok := prog.Body[3].(*Call); !ok || c.Name != "g" {
		t.Fatalf("expected a call to g, got=%#+v", prog.Body[3])
	}
}

func TestLoadFile(t *testing.T) {
	prog, err := LoadFile("testdata/demo.yml")
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if prog.Name != "demo" || len(prog.Body) != 4 {
		t.Fatalf("unexpected program: %#+v", prog)
	}

	_, err = LoadFile("testdata/no_such_file.yml")
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestProgramString(t *testing.T) {
	prog := mustLoad(t, demoDoc)
	expected := strings.Join([]string{
		"x = 10",
		"def f():",
		"    print(x)",
		"def g():",
		"    x = 20",
		"    f()",
		"g()",
	}, "\n")
	if prog.String() != expected {
		t.Fatalf("expected=%q, got=%q", expected, prog.String())
	}
}

func TestEmptyDefString(t *testing.T) {
	d := &Def{Name: "f"}
	if d.String() != "def f():\n    pass" {
		t.Fatalf("got=%q", d.String())
	}
}

func TestLoadDefaultsName(t *testing.T) {
	prog := mustLoad(t, "body:\n  - call: f\n")
	if prog.Name != "test" {
		t.Fatalf("expected the loader name, got=%q", prog.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty document", "", "is empty"},
		{"unknown top-level field", "title: x\nbody: []\n", "not found"},
		{"statement not a mapping", "body:\n  - 42\n", "statement must be a mapping"},
		{"no discriminator", "body:\n  - value: 1\n", "statement needs one of"},
		{"two discriminators", "body:\n  - assign: x\n    print: y\n", "statement has both"},
		{"assign without value", "body:\n  - assign: x\n", "assign needs a value"},
		{"value on call", "body:\n  - call: f\n    value: 1\n", "take no value field"},
		{"body on print", "body:\n  - print: x\n    body: []\n", "take no body field"},
		{"expression not a scalar", "body:\n  - print: [1, 2]\n", "expression must be a scalar"},
		{"expression of wrong tag", "body:\n  - print: 1.5\n", "integer literal or a variable name"},
		{"name not a string", "body:\n  - call: 42\n", "expected a name"},
		{"unknown statement field", "body:\n  - call: f\n    when: now\n", "unknown statement field"},
	}
	for _, tt := range tests {
		_, err := Load(strings.NewReader(tt.doc), "test")
		if err == nil {
			t.Fatalf("%s: expected an error", tt.name)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%s: expected error to contain %q, got=%q", tt.name, tt.want, err.Error())
		}
	}
}

func TestValidate(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&Assign{Name: "", Value: &IntLit{Value: 1}},
		&Def{Name: "f", Body: []Stmt{
			&Print{Value: &Var{Name: ""}},
		}},
		&Call{Name: ""},
		&Print{},
	}}
	err := prog.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a *ValidationError, got=%#+v", err)
	}
	expected := []string{
		"body[0]: assign has an empty name",
		"body[1].body[0]: variable reference has an empty name",
		"body[2]: call has an empty name",
		"body[3]: missing expression",
	}
	if len(ve.Issues) != len(expected) {
		t.Fatalf("expected %d issues, got=%#+v", len(expected), ve.Issues)
	}
	for i, want := range expected {
		if ve.Issues[i] != want {
			t.Fatalf("issue %d: expected=%q, got=%q", i, want, ve.Issues[i])
		}
	}
}

func TestValidateOK(t *testing.T) {
	prog := mustLoad(t, demoDoc)
	if err := prog.Validate(); err != nil {
		t.Fatalf("expected no issues, got=%s", err)
	}
}
