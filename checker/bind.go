package checker

import (
	"github.com/cairn-lang/cairnc/internal/util"
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/typedir"
	"github.com/cairn-lang/cairnc/types"
)

// TypecheckBind is typecheckBind(name, b) (§4.E, step 3): check against
// an explicit signature if one was declared, else infer and demand
// completeness before the binding's type is recorded as its signature
// (no generalization step is applied to an inferred type).
// The local context is always reset to empty on return, win or lose.
func (c *Checker) TypecheckBind(name string, b surface.Bind) (typedir.Bind, tcerr.TypeError) {
	defer c.Cxt.ResetLocal()

	c.Cxt.SetBind(name, b)
	fn := b.AsFunc()

	var typed typedir.Exp
	var err tcerr.TypeError

	if sig, ok := c.Cxt.Sig(name); ok {
		typed, err = c.Check(fn, sig)
	} else {
		typed, err = c.Infer(fn)
		if err == nil && !c.Cxt.IsComplete() {
			err = tcerr.New(tcerr.AmbiguousPolymorphism{Bind: name})
		}
	}
	if err != nil {
		return typedir.Bind{}, err
	}

	bindType := c.apply(typed.Type())
	c.Cxt.SetSig(name, bindType)

	body, args := unwrapAbs(typed, len(b.Args))
	return typedir.Bind{Name: name, Type: bindType, Args: args, Body: body}, nil
}

// CheckDataDef validates a data declaration's shape (§6: the head must
// be TAll*(TData name [TVar ...]) with distinct bound variables, and
// every injection must re-quantify exactly those same variables) and
// registers each constructor's type for later lookup by EInj/PInj/PEnum.
func (c *Checker) CheckDataDef(d surface.Data) tcerr.TypeError {
	params, dataName, resultArgs, err := peelDataHead(d.Head)
	if err != nil {
		return err
	}
	if err := checkDistinct(dataName, params); err != nil {
		return err
	}
	if len(resultArgs) != len(params) {
		return tcerr.New(tcerr.BadDataDefinition{TypeName: dataName, Reason: "head arity does not match its own type parameters"})
	}
	for i, arg := range resultArgs {
		v, ok := arg.(types.TVar)
		if !ok || v.Name != params[i] {
			return tcerr.New(tcerr.BadDataDefinition{TypeName: dataName, Reason: "head is not applied to its own type parameters in order"})
		}
	}

	for _, inj := range d.Injs {
		injParams, rest := peelAllPrefix(inj.Type)
		if err := checkDistinct(inj.Ctor, injParams); err != nil {
			return err
		}
		if len(injParams) != len(params) {
			return tcerr.New(tcerr.BadDataDefinition{TypeName: dataName, Reason: "constructor '" + inj.Ctor + "' does not re-quantify the same parameters as the data head"})
		}

		argTypes, result := peelFunArgs(rest)
		resultData, ok := result.(types.TData)
		if !ok || resultData.Name != dataName || len(resultData.Args) != len(injParams) {
			return tcerr.New(tcerr.BadDataDefinition{TypeName: dataName, Reason: "constructor '" + inj.Ctor + "' does not return " + dataName + " applied to its own parameters"})
		}
		for i, a := range resultData.Args {
			v, ok := a.(types.TVar)
			if !ok || v.Name != injParams[i] {
				return tcerr.New(tcerr.BadDataDefinition{TypeName: dataName, Reason: "constructor '" + inj.Ctor + "' returns its type parameters out of order"})
			}
		}

		boundSet := util.NewStringSet(injParams)
		for _, arg := range argTypes {
			for _, free := range types.FreeVars(arg).Slice() {
				if !boundSet.Contains(free) {
					return tcerr.New(tcerr.UnboundDataParams{Constructor: inj.Ctor, Var: free})
				}
			}
		}
		c.Cxt.SetCtorType(inj.Ctor, inj.Type)
	}
	return nil
}

// peelFunArgs peels a TFun chain into its ordered argument types and
// final non-function result type.
func peelFunArgs(t types.Type) (args []types.Type, result types.Type) {
	result = t
	for {
		fn, ok := result.(types.TFun)
		if !ok {
			return args, result
		}
		args = append(args, fn.Arg)
		result = fn.Res
	}
}

// CheckProgram processes def in source order (§4.E step 3): data
// declarations are validated and registered first within their own
// appearance, top-level bindings are typechecked fail-fast, and
// o.OnDiagnostic -- if present -- does not change that; CheckProgram
// itself stops at the first error.
func (c *Checker) CheckProgram(prog surface.Program) (typedir.Program, tcerr.TypeError) {
	var out typedir.Program
	for _, def := range prog {
		switch d := def.(type) {
		case surface.DData:
			if err := c.CheckDataDef(d.Data); err != nil {
				return nil, err
			}
		case surface.DBind:
			if d.Sig != nil {
				c.Cxt.SetSig(d.Bind.Name, *d.Sig)
			}
			bind, err := c.TypecheckBind(d.Bind.Name, d.Bind)
			if err != nil {
				return nil, err
			}
			out = append(out, bind)
		default:
			panic("unreachable: unknown surface.Def")
		}
	}
	return out, nil
}

// peelDataHead expects TAll*(TData name args) and returns the bound
// parameter names in order, the data name, and the TData's own args.
func peelDataHead(head types.Type) (params []string, name string, args []types.Type, err tcerr.TypeError) {
	body := head
	for {
		all, ok := body.(types.TAll)
		if !ok {
			break
		}
		params = append(params, all.Var)
		body = all.Body
	}
	data, ok := body.(types.TData)
	if !ok {
		return nil, "", nil, tcerr.New(tcerr.BadDataDefinition{TypeName: body.String(), Reason: "head is not a data type application"})
	}
	return params, data.Name, data.Args, nil
}

func peelAllPrefix(t types.Type) (vars []string, body types.Type) {
	body = t
	for {
		all, ok := body.(types.TAll)
		if !ok {
			return vars, body
		}
		vars = append(vars, all.Var)
		body = all.Body
	}
}

func checkDistinct(subject string, names []string) tcerr.TypeError {
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			return tcerr.New(tcerr.BadDataDefinition{TypeName: subject, Reason: "repeated type parameter '" + n + "'"})
		}
		seen[n] = true
	}
	return nil
}

