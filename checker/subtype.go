package checker

import (
	"github.com/cairn-lang/cairnc/ctx"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/types"
)

// Subtype establishes A <: B (§4.D), trying cases in the priority order
// the spec lists. Occurs-check failures (an existential solving to a
// type that mentions itself) fall through to the catch-all mismatch,
// matching scenario 5 of §8 ("bad x = x x").
func (c *Checker) Subtype(a, b types.Type) tcerr.TypeError {
	c.logger("subtype").Debug("subtype", "a", a, "b", b)

	if la, ok := a.(types.TLit); ok {
		if lb, ok := b.(types.TLit); ok && la.Name == lb.Name {
			return nil
		}
	}
	if va, ok := a.(types.TVar); ok {
		if vb, ok := b.(types.TVar); ok && va.Name == vb.Name {
			return nil
		}
	}
	if ea, ok := a.(types.TEVar); ok {
		if eb, ok := b.(types.TEVar); ok && ea.ID == eb.ID {
			return nil
		}
	}

	if fa, ok := a.(types.TFun); ok {
		if fb, ok := b.(types.TFun); ok {
			if err := c.Subtype(fb.Arg, fa.Arg); err != nil {
				return err
			}
			return c.Subtype(ctx.Apply(c.Cxt.Context, fa.Res), ctx.Apply(c.Cxt.Context, fb.Res))
		}
	}

	if tb, ok := b.(types.TAll); ok {
		c.Cxt.Push(ctx.EnvTVar{Name: tb.Var})
		err := c.Subtype(a, tb.Body)
		c.Cxt.DropTrailingTVar(tb.Var)
		return err
	}

	if ta, ok := a.(types.TAll); ok {
		fresh := c.Cxt.Fresh()
		c.Cxt.PushAll(ctx.EnvMark{ID: fresh.ID}, ctx.EnvTEVar{ID: fresh.ID})
		substituted := types.SubstTVar(ta.Var, fresh, ta.Body)
		err := c.Subtype(substituted, b)
		c.Cxt.DropTrailingMark(fresh.ID)
		return err
	}

	if ea, ok := a.(types.TEVar); ok {
		if !types.Frees(b).Contains(ea.ID) {
			return c.InstantiateL(ea, b)
		}
	}

	if eb, ok := b.(types.TEVar); ok {
		if !types.Frees(a).Contains(eb.ID) {
			return c.InstantiateR(a, eb)
		}
	}

	if da, ok := a.(types.TData); ok {
		if db, ok := b.(types.TData); ok && da.Name == db.Name && len(da.Args) == len(db.Args) {
			for i := range da.Args {
				argA := ctx.Apply(c.Cxt.Context, da.Args[i])
				argB := ctx.Apply(c.Cxt.Context, db.Args[i])
				if err := c.Subtype(argA, argB); err != nil {
					return err
				}
			}
			return nil
		}
	}

	return tcerr.New(tcerr.TypeMismatch{A: a, B: b})
}
