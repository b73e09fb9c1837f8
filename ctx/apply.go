package ctx

import "github.com/cairn-lang/cairnc/types"

// Apply is [Γ]A (§4.B): rewrite every solved existential to its
// solution, recursing structurally, and iterate to a fixed point since
// a solution may itself mention another existential that Γ also
// solves.
func Apply(c *Context, a types.Type) types.Type {
	for {
		next := applyOnce(c, a)
		if typesEqualShallow(next, a) {
			return next
		}
		a = next
	}
}

func applyOnce(c *Context, a types.Type) types.Type {
	switch t := a.(type) {
	case types.TLit:
		return t
	case types.TVar:
		return t
	case types.TEVar:
		if mono, ok := c.FindSolved(t.ID); ok {
			return applyOnce(c, mono)
		}
		return t
	case types.TFun:
		return types.TFun{Arg: applyOnce(c, t.Arg), Res: applyOnce(c, t.Res)}
	case types.TAll:
		return types.TAll{Var: t.Var, Body: applyOnce(c, t.Body)}
	case types.TData:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = applyOnce(c, arg)
		}
		return types.TData{Name: t.Name, Args: args}
	default:
		panic("unreachable: unknown Type")
	}
}

// typesEqualShallow reports structural equality, used only to detect
// the fixed point of repeated Apply -- it does not need to be a general
// purpose type-equality (the checker never compares types for equality
// any other way; subtyping is the only comparison that matters).
func typesEqualShallow(a, b types.Type) bool {
	return a.String() == b.String()
}
