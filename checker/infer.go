package checker

import (
	"github.com/cairn-lang/cairnc/ctx"
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/typedir"
	"github.com/cairn-lang/cairnc/types"
)

// Infer is infer(e) (§4.E): synthesize a type for e with no expected
// type to check against. Every branch applies before returning, so
// every type any caller reads off the result is already substituted.
func (c *Checker) Infer(e surface.Exp) (typedir.Exp, tcerr.TypeError) {
	switch ex := e.(type) {
	case surface.ELit:
		return typedir.ELit{Lit: ex.Lit, T: ex.Lit.Type()}, nil

	case surface.EVar:
		return c.inferVar(ex)

	case surface.EInj:
		t, ok := c.Cxt.CtorType(ex.Ctor)
		if !ok {
			return nil, tcerr.New(tcerr.UnknownConstructor{Name: ex.Ctor})
		}
		return typedir.EInj{Ctor: ex.Ctor, T: c.apply(t)}, nil

	case surface.EAnn:
		if err := ctx.WellFormed(c.Cxt.Context, ex.Type); err != nil {
			return nil, err
		}
		return c.Check(ex.Exp, ex.Type)

	case surface.EApp:
		return c.inferApp(ex)

	case surface.EAbs:
		return c.inferAbs(ex)

	case surface.ELet:
		return c.inferLet(ex)

	case surface.EAdd:
		lhs, err := c.Check(ex.Lhs, types.TLit{Name: "Int"})
		if err != nil {
			return nil, err
		}
		rhs, err := c.Check(ex.Rhs, types.TLit{Name: "Int"})
		if err != nil {
			return nil, err
		}
		return typedir.EAdd{Lhs: lhs, Rhs: rhs, T: types.TLit{Name: "Int"}}, nil

	case surface.ECase:
		return c.inferCase(ex)

	default:
		panic("unreachable: unknown surface.Exp")
	}
}

// inferVar looks up a term variable in the local env, then in the
// top-level signatures, and otherwise auto-extends the context with a
// fresh existential -- the mechanism that lets a binding's own body
// refer to itself (or to a sibling bound later in the same group)
// before its real type is known.
func (c *Checker) inferVar(ex surface.EVar) (typedir.Exp, tcerr.TypeError) {
	c.logger("infer").Debug("var", "name", ex.Name)

	if elem, ok := c.Cxt.LookupVar(ex.Name); ok {
		return typedir.EVar{Name: ex.Name, T: c.apply(elem.(ctx.EnvVar).Type)}, nil
	}
	if t, ok := c.Cxt.Sig(ex.Name); ok {
		return typedir.EVar{Name: ex.Name, T: c.apply(t)}, nil
	}

	fresh := c.Cxt.Fresh()
	c.Cxt.PushAll(ctx.EnvTEVar{ID: fresh.ID}, ctx.EnvVar{Name: ex.Name, Type: fresh})
	return typedir.EVar{Name: ex.Name, T: fresh}, nil
}

func (c *Checker) inferApp(ex surface.EApp) (typedir.Exp, tcerr.TypeError) {
	fun, err := c.Infer(ex.Fun)
	if err != nil {
		return nil, err
	}
	arg, resT, err := c.ApplyInfer(c.apply(fun.Type()), ex.Arg)
	if err != nil {
		return nil, err
	}
	return typedir.EApp{Fun: fun, Arg: arg, T: c.apply(resT)}, nil
}

func (c *Checker) inferAbs(ex surface.EAbs) (typedir.Exp, tcerr.TypeError) {
	argV, resV := c.Cxt.Fresh(), c.Cxt.Fresh()
	c.Cxt.PushAll(ctx.EnvTEVar{ID: argV.ID}, ctx.EnvTEVar{ID: resV.ID}, ctx.EnvVar{Name: ex.Param, Type: argV})

	body, err := c.Check(ex.Body, resV)
	c.Cxt.DropTrailingVar(ex.Param)
	if err != nil {
		return nil, err
	}
	return typedir.EAbs{Param: ex.Param, Body: body, T: c.apply(types.TFun{Arg: argV, Res: resV})}, nil
}

// inferLet types `let f x1 .. xn = rhs in body` by inferring the
// curried right-hand side as a zero-argument term, binding it in the
// local env for body, then splicing that one binding back out -- the
// continuation's own existentials, solved or not, survive the splice.
func (c *Checker) inferLet(ex surface.ELet) (typedir.Exp, tcerr.TypeError) {
	rhs, err := c.Infer(ex.Bind.AsFunc())
	if err != nil {
		return nil, err
	}
	bindType := c.apply(rhs.Type())

	c.Cxt.Push(ctx.EnvVar{Name: ex.Bind.Name, Type: bindType})
	body, err := c.Infer(ex.Body)
	c.Cxt.RemoveVar(ex.Bind.Name)
	if err != nil {
		return nil, err
	}

	inner, args := unwrapAbs(rhs, len(ex.Bind.Args))
	return typedir.ELet{
		Bind: typedir.Bind{Name: ex.Bind.Name, Type: bindType, Args: args, Body: inner},
		Body: body,
		T:    c.apply(body.Type()),
	}, nil
}

// inferCase types each branch against the scrutinee's type in its own
// scope (pattern bindings and any existentials a polymorphic
// constructor's instantiation introduces are local to that branch),
// then requires every branch's fully-applied result type to be a
// subtype of the first branch's, which stands as the case's type.
func (c *Checker) inferCase(ex surface.ECase) (typedir.Exp, tcerr.TypeError) {
	scrutinee, err := c.Infer(ex.Scrutinee)
	if err != nil {
		return nil, err
	}
	scrutT := c.apply(scrutinee.Type())

	branches := make([]typedir.Branch, len(ex.Branches))
	branchTypes := make([]types.Type, len(ex.Branches))
	for i, b := range ex.Branches {
		mark := c.Cxt.Mark()
		typedBranch, bt, err := c.InferBranch(b, c.apply(scrutT))
		if err != nil {
			return nil, err
		}
		branches[i] = typedBranch
		branchTypes[i] = c.apply(bt)
		c.Cxt.TruncateTo(mark)
	}

	result := branchTypes[0]
	for i := 1; i < len(branchTypes); i++ {
		if err := c.Subtype(branchTypes[i], result); err != nil {
			return nil, err
		}
	}
	return typedir.ECase{Scrutinee: scrutinee, Branches: branches, T: c.apply(result)}, nil
}
