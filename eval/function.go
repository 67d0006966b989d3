package eval

// call resolves name to a function and runs its body in a fresh
// frame. The frame's parent is the single point where the two
// scoping policies diverge: static chains onto the environment
// captured at definition time, dynamic chains onto the caller's
// live frame -- which may itself already be nested arbitrarily deep
// from earlier dynamic calls.
func (ctx *Context) call(name string, caller *Environment) (Value, error) {
	callee, err := caller.Get(name)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*Function)
	if !ok {
		return nil, &TypeError{Op: "call", Name: name, Got: callee.Type()}
	}

	var frame *Environment
	if ctx.mode == Static {
		frame = NewEnvironment(fn.defEnv)
	} else {
		frame = NewEnvironment(caller)
	}

	// The frame lives exactly as long as this invocation: it is
	// never handed out, so both the result path and the error path
	// drop the only reference on return.
	result := Value(NIL)
	for _, stmt := range fn.Body {
		result, err = ctx.Exec(stmt, frame)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
