package eval

import "fmt"

//go:generate stringer -type=Mode -linecomment

// Mode selects which environment becomes the parent of a call frame.
// It is the only place the two scoping policies differ.
type Mode uint8

const (
	// Static chains a call frame onto the environment captured when
	// the function was defined.
	Static Mode = iota // static
	// Dynamic chains a call frame onto the caller's live frame.
	Dynamic // dynamic
)

// ParseMode converts a mode name from the CLI or config boundary.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "static":
		return Static, nil
	case "dynamic":
		return Dynamic, nil
	}
	return 0, fmt.Errorf("unknown scoping mode %q (want static or dynamic)", s)
}
