package checker

import (
	"github.com/cairn-lang/cairnc/ctx"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/types"
)

// InstantiateL establishes ά <: A (§4.C), in rule priority order
// Solve > Reach > Arr > AllL.
func (c *Checker) InstantiateL(evar types.TEVar, a types.Type) tcerr.TypeError {
	c.logger("instantiate").Debug("instantiateL", "evar", evar, "a", a)

	if types.IsMonotype(a) {
		if left, _, ok := c.Cxt.SplitOnTEVar(evar.ID); ok {
			if err := ctx.WellFormed(ctx.FromPrefix(left), a); err == nil {
				c.Cxt.Solve(evar.ID, a)
				return nil
			}
		}
	}

	switch t := a.(type) {
	case types.TEVar:
		// Reach: t stands to the right of evar.
		if c.Cxt.IndexOfTEVar(t.ID) > c.Cxt.IndexOfTEVar(evar.ID) {
			c.Cxt.Solve(t.ID, evar)
			return nil
		}
		return tcerr.New(tcerr.UnknownExistential{ID: t.ID})

	case types.TFun:
		a1, a2 := c.Cxt.Fresh(), c.Cxt.Fresh()
		if !c.Cxt.ReplaceTEVar(evar.ID, ctx.EnvTEVar{ID: a2.ID}, ctx.EnvTEVar{ID: a1.ID},
			ctx.EnvSolved{ID: evar.ID, Mono: types.TFun{Arg: a1, Res: a2}}) {
			return tcerr.New(tcerr.UnknownExistential{ID: evar.ID})
		}
		if err := c.InstantiateR(t.Arg, a1); err != nil {
			return err
		}
		return c.InstantiateL(a2, ctx.Apply(c.Cxt.Context, t.Res))

	case types.TAll:
		c.Cxt.Push(ctx.EnvTVar{Name: t.Var})
		err := c.InstantiateL(evar, t.Body)
		c.Cxt.DropTrailingTVar(t.Var)
		return err

	default:
		return tcerr.New(tcerr.TypeMismatch{A: evar, B: a})
	}
}

// InstantiateR establishes A <: ά (§4.C), in the mirrored rule order.
func (c *Checker) InstantiateR(a types.Type, evar types.TEVar) tcerr.TypeError {
	c.logger("instantiate").Debug("instantiateR", "a", a, "evar", evar)

	if types.IsMonotype(a) {
		if left, _, ok := c.Cxt.SplitOnTEVar(evar.ID); ok {
			if err := ctx.WellFormed(ctx.FromPrefix(left), a); err == nil {
				c.Cxt.Solve(evar.ID, a)
				return nil
			}
		}
	}

	switch t := a.(type) {
	case types.TEVar:
		if c.Cxt.IndexOfTEVar(t.ID) > c.Cxt.IndexOfTEVar(evar.ID) {
			c.Cxt.Solve(t.ID, evar)
			return nil
		}
		return tcerr.New(tcerr.UnknownExistential{ID: t.ID})

	case types.TFun:
		a1, a2 := c.Cxt.Fresh(), c.Cxt.Fresh()
		if !c.Cxt.ReplaceTEVar(evar.ID, ctx.EnvTEVar{ID: a2.ID}, ctx.EnvTEVar{ID: a1.ID},
			ctx.EnvSolved{ID: evar.ID, Mono: types.TFun{Arg: a1, Res: a2}}) {
			return tcerr.New(tcerr.UnknownExistential{ID: evar.ID})
		}
		if err := c.InstantiateL(a1, t.Arg); err != nil {
			return err
		}
		return c.InstantiateR(ctx.Apply(c.Cxt.Context, t.Res), a2)

	case types.TAll:
		fresh := c.Cxt.Fresh()
		c.Cxt.PushAll(ctx.EnvMark{ID: fresh.ID}, ctx.EnvTEVar{ID: fresh.ID})
		substituted := types.SubstTVar(t.Var, fresh, t.Body)
		err := c.InstantiateR(substituted, evar)
		c.Cxt.DropTrailingMark(fresh.ID)
		return err

	default:
		return tcerr.New(tcerr.TypeMismatch{A: a, B: evar})
	}
}
