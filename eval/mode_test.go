package eval

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		mode  Mode
		ok    bool
	}{
		{"static", Static, true},
		{"dynamic", Dynamic, true},
		{"", 0, false},
		{"Static", 0, false},
		{"lexical", 0, false},
	}
	for _, tt := range tests {
		mode, err := ParseMode(tt.input)
		if tt.ok && (err != nil || mode != tt.mode) {
			t.Fatalf("ParseMode(%q): expected=%s, got=%s (err=%v)", tt.input, tt.mode, mode, err)
		}
		if !tt.ok && err == nil {
			t.Fatalf("ParseMode(%q): expected an error", tt.input)
		}
	}
}

func TestModeString(t *testing.T) {
	if Static.String() != "static" {
		t.Fatalf("expected=%q, got=%q", "static", Static.String())
	}
	if Dynamic.String() != "dynamic" {
		t.Fatalf("expected=%q, got=%q", "dynamic", Dynamic.String())
	}
}

func TestValueTypeString(t *testing.T) {
	if VT_NIL.String() != "nil" || VT_INT.String() != "int" || VT_FUNCTION.String() != "function" {
		t.Fatalf("unexpected names: %s %s %s", VT_NIL, VT_INT, VT_FUNCTION)
	}
}
