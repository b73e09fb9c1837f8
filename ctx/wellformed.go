package ctx

import (
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/types"
)

// WellFormed is Γ ⊢ A (§4.B): A mentions only type variables and
// existentials actually in scope in Γ. It recurses structurally,
// pushing EnvTVar(α) onto a scratch copy of Γ when descending under a
// TAll so that the bound variable is in scope for the body only.
func WellFormed(c *Context, a types.Type) tcerr.TypeError {
	switch t := a.(type) {
	case types.TLit:
		return nil
	case types.TVar:
		if !c.HasTVar(t.Name) {
			return tcerr.New(tcerr.UnboundTypeVar{Name: t.Name})
		}
		return nil
	case types.TEVar:
		if c.HasTEVar(t.ID) {
			return nil
		}
		if _, ok := c.FindSolved(t.ID); ok {
			return nil
		}
		return tcerr.New(tcerr.UnknownExistential{ID: t.ID})
	case types.TFun:
		if err := WellFormed(c, t.Arg); err != nil {
			return err
		}
		return WellFormed(c, t.Res)
	case types.TAll:
		scoped := &Context{elems: append(append([]Elem{}, c.elems...), EnvTVar{Name: t.Var})}
		return WellFormed(scoped, t.Body)
	case types.TData:
		for _, arg := range t.Args {
			if err := WellFormed(c, arg); err != nil {
				return err
			}
		}
		return nil
	default:
		panic("unreachable: unknown Type")
	}
}
