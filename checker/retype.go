package checker

import (
	"github.com/cairn-lang/cairnc/ctx"
	"github.com/cairn-lang/cairnc/typedir"
	"github.com/cairn-lang/cairnc/types"
)

// apply is shorthand for ctx.Apply against this checker's current context.
func (c *Checker) apply(a types.Type) types.Type {
	return ctx.Apply(c.Cxt.Context, a)
}

// withType re-tags a typed expression with a new final type, used by
// Check's TAll/subtype branches to annotate a node with the type it was
// checked against rather than the one infer happened to produce.
func withType(e typedir.Exp, t types.Type) typedir.Exp {
	switch v := e.(type) {
	case typedir.ELit:
		v.T = t
		return v
	case typedir.EVar:
		v.T = t
		return v
	case typedir.EInj:
		v.T = t
		return v
	case typedir.EApp:
		v.T = t
		return v
	case typedir.EAbs:
		v.T = t
		return v
	case typedir.ELet:
		v.T = t
		return v
	case typedir.EAdd:
		v.T = t
		return v
	case typedir.ECase:
		v.T = t
		return v
	default:
		panic("unreachable: unknown typedir.Exp")
	}
}

// unwrapAbs peels n outer EAbs layers from a typed function, returning
// its innermost body and the param names in order -- the inverse of
// surface.Bind.AsFunc, used to reconstitute a typedir.Bind from the
// typed foldr-EAbs expression infer/check actually produced.
func unwrapAbs(e typedir.Exp, n int) (typedir.Exp, []string) {
	args := make([]string, 0, n)
	cur := e
	for i := 0; i < n; i++ {
		abs, ok := cur.(typedir.EAbs)
		if !ok {
			panic("unreachable: typed binding has fewer EAbs layers than declared parameters")
		}
		args = append(args, abs.Param)
		cur = abs.Body
	}
	return cur, args
}
