package checker

import (
	"github.com/cairn-lang/cairnc/ctx"
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/typedir"
	"github.com/cairn-lang/cairnc/types"
)

// Check is check(e, A) (§4.E): verify e against an expected type A,
// trying the two syntax-directed cases (TAll introduction, lambda
// against an arrow) before falling back to infer-then-subtype.
func (c *Checker) Check(e surface.Exp, a types.Type) (typedir.Exp, tcerr.TypeError) {
	c.logger("check").Debug("check", "exp", e, "against", a)

	if all, ok := a.(types.TAll); ok {
		c.Cxt.Push(ctx.EnvTVar{Name: all.Var})
		typed, err := c.Check(e, all.Body)
		c.Cxt.DropTrailingTVar(all.Var)
		if err != nil {
			return nil, err
		}
		return withType(typed, c.apply(a)), nil
	}

	if abs, ok := e.(surface.EAbs); ok {
		if fn, ok := a.(types.TFun); ok {
			c.Cxt.Push(ctx.EnvVar{Name: abs.Param, Type: fn.Arg})
			body, err := c.Check(abs.Body, fn.Res)
			c.Cxt.DropTrailingVar(abs.Param)
			if err != nil {
				return nil, err
			}
			return typedir.EAbs{Param: abs.Param, Body: body, T: c.apply(a)}, nil
		}
	}

	inferred, err := c.Infer(e)
	if err != nil {
		return nil, err
	}
	expected := c.apply(a)
	if err := c.Subtype(c.apply(inferred.Type()), expected); err != nil {
		return nil, err
	}
	return withType(inferred, c.apply(expected)), nil
}

// ApplyInfer is applyInfer(A, e) (§4.E): apply a (possibly
// polymorphic, possibly still-existential) function type A to
// argument e, checking e against the argument type and returning the
// result type -- the generalization of function application that
// EApp's infer rule delegates to once it has A from infer(fun).
func (c *Checker) ApplyInfer(a types.Type, e surface.Exp) (typedir.Exp, types.Type, tcerr.TypeError) {
	c.logger("applyInfer").Debug("applyInfer", "a", a, "exp", e)

	switch t := a.(type) {
	case types.TAll:
		fresh := c.Cxt.Fresh()
		c.Cxt.Push(ctx.EnvTEVar{ID: fresh.ID})
		substituted := types.SubstTVar(t.Var, fresh, t.Body)
		return c.ApplyInfer(substituted, e)

	case types.TEVar:
		a1, a2 := c.Cxt.Fresh(), c.Cxt.Fresh()
		if !c.Cxt.ReplaceTEVar(t.ID,
			ctx.EnvTEVar{ID: a2.ID}, ctx.EnvTEVar{ID: a1.ID},
			ctx.EnvSolved{ID: t.ID, Mono: types.TFun{Arg: a1, Res: a2}}) {
			return nil, nil, tcerr.New(tcerr.UnknownExistential{ID: t.ID})
		}
		arg, err := c.Check(e, a1)
		if err != nil {
			return nil, nil, err
		}
		return arg, a2, nil

	case types.TFun:
		arg, err := c.Check(e, t.Arg)
		if err != nil {
			return nil, nil, err
		}
		return arg, t.Res, nil

	default:
		return nil, nil, tcerr.New(tcerr.NotAFunction{A: a})
	}
}
