package checker

import (
	"github.com/cairn-lang/cairnc/ctx"
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/typedir"
	"github.com/cairn-lang/cairnc/types"
)

// instantiateCtor peels every leading TAll off a constructor's
// declared type, replacing each bound variable with a fresh
// existential pushed onto the ambient context, then peels the
// resulting TFun chain -- giving the constructor's argument types and
// final (data) type at this particular, freshly-instantiated use.
func instantiateCtor(c *Checker, ctorT types.Type) ([]types.Type, types.Type) {
	body := ctorT
	for {
		all, ok := body.(types.TAll)
		if !ok {
			break
		}
		fresh := c.Cxt.Fresh()
		c.Cxt.Push(ctx.EnvTEVar{ID: fresh.ID})
		body = types.SubstTVar(all.Var, fresh, all.Body)
	}

	var argTypes []types.Type
	for {
		fn, ok := body.(types.TFun)
		if !ok {
			break
		}
		argTypes = append(argTypes, fn.Arg)
		body = fn.Res
	}
	return argTypes, body
}

// CheckPattern is checkPattern(p, T) (§4.F): match pattern p against
// scrutinee type T, extending the local context with every variable p
// binds and returning the typed pattern.
func (c *Checker) CheckPattern(p surface.Pattern, t types.Type) (typedir.Pattern, tcerr.TypeError) {
	switch pt := p.(type) {
	case surface.PVar:
		c.Cxt.Push(ctx.EnvVar{Name: pt.Name, Type: t})
		return typedir.PVar{Name: pt.Name, T: t}, nil

	case surface.PCatch:
		return typedir.PCatch{T: t}, nil

	case surface.PLit:
		if err := c.Subtype(pt.Lit.Type(), t); err != nil {
			return nil, err
		}
		return typedir.PLit{Lit: pt.Lit, T: c.apply(t)}, nil

	case surface.PEnum:
		ctorT, ok := c.Cxt.CtorType(pt.Ctor)
		if !ok {
			return nil, tcerr.New(tcerr.UnknownConstructor{Name: pt.Ctor})
		}
		argTypes, resultT := instantiateCtor(c, ctorT)
		if len(argTypes) != 0 {
			return nil, tcerr.New(tcerr.ArityMismatch{Constructor: pt.Ctor, Expected: len(argTypes), Got: 0})
		}
		if err := c.Subtype(resultT, t); err != nil {
			return nil, err
		}
		return typedir.PEnum{Ctor: pt.Ctor, T: c.apply(t)}, nil

	case surface.PInj:
		ctorT, ok := c.Cxt.CtorType(pt.Ctor)
		if !ok {
			return nil, tcerr.New(tcerr.UnknownConstructor{Name: pt.Ctor})
		}
		argTypes, resultT := instantiateCtor(c, ctorT)
		if len(argTypes) != len(pt.Args) {
			return nil, tcerr.New(tcerr.ArityMismatch{Constructor: pt.Ctor, Expected: len(argTypes), Got: len(pt.Args)})
		}
		if err := c.Subtype(resultT, t); err != nil {
			return nil, err
		}
		typedArgs := make([]typedir.Pattern, len(pt.Args))
		for i, sub := range pt.Args {
			typedArg, err := c.CheckPattern(sub, c.apply(argTypes[i]))
			if err != nil {
				return nil, err
			}
			typedArgs[i] = typedArg
		}
		return typedir.PInj{Ctor: pt.Ctor, Args: typedArgs, T: c.apply(t)}, nil

	default:
		panic("unreachable: unknown surface.Pattern")
	}
}

// InferBranch is inferBranch(b, T) (§4.F): check the branch's pattern
// against the scrutinee type T, then infer the branch body in the
// resulting (pattern-extended) context.
func (c *Checker) InferBranch(b surface.Branch, scrutineeType types.Type) (typedir.Branch, types.Type, tcerr.TypeError) {
	pattern, err := c.CheckPattern(b.Pattern, scrutineeType)
	if err != nil {
		return typedir.Branch{}, nil, err
	}
	body, err := c.Infer(b.Exp)
	if err != nil {
		return typedir.Branch{}, nil, err
	}
	return typedir.Branch{Pattern: pattern, Exp: body}, body.Type(), nil
}
