package cairnc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cairn-lang/cairnc/checker"
	"github.com/cairn-lang/cairnc/mono"
	"github.com/cairn-lang/cairnc/monoir"
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/types"
)

// The six literal scenarios built directly as surface ASTs -- lexing
// and parsing are out of scope, so these trees are what a parser would
// have handed the checker.

func TestScenarioOneIdentityAtInt(t *testing.T) {
	var idSig types.Type = types.TAll{Var: "a", Body: types.TFun{Arg: types.TVar{Name: "a"}, Res: types.TVar{Name: "a"}}}
	prog := surface.Program{
		surface.DBind{Sig: &idSig, Bind: surface.Bind{Name: "id", Args: []string{"x"}, Rhs: surface.EVar{Name: "x"}}},
		surface.DBind{Bind: surface.Bind{Name: "main", Rhs: surface.EApp{
			Fun: surface.EVar{Name: "id"},
			Arg: surface.ELit{Lit: surface.LitInt{Value: 5}},
		}}},
	}

	typed, err := checker.New().CheckProgram(prog)
	assert.Nil(t, err)
	assert.Equal(t, types.TLit{Name: "Int"}, typed[len(typed)-1].Type)

	out, merr := mono.New(typed, nil, mono.Options{}).Run()
	assert.Nil(t, merr)

	byName := map[string]monoir.Bind{}
	for _, b := range out {
		byName[b.Name] = b
	}
	idOut, ok := byName["id$Int_Int"]
	assert.True(t, ok)
	assert.Equal(t, monoir.EAbs{Param: "x", Body: monoir.EVar{Name: "x", T: monoir.TLit{Name: "Int"}}, T: monoir.TFun{Arg: monoir.TLit{Name: "Int"}, Res: monoir.TLit{Name: "Int"}}}, idOut.Body)

	mainOut, ok := byName["main$Int"]
	assert.True(t, ok)
	app, ok := mainOut.Body.(monoir.EApp)
	assert.True(t, ok)
	assert.Equal(t, "id$Int_Int", app.Fun.(monoir.EVar).Name)
}

func TestScenarioTwoConstDropsSecondArg(t *testing.T) {
	// const is given an explicit signature: typecheckBind's unannotated
	// path asserts isComplete rather than generalizing (§4.E step 2),
	// so without a signature const's own existentials would stay open
	// and the binding would be AmbiguousPolymorphism (see checker's own
	// TestTypecheckBindWithoutSigAndNoConstraintIsAmbiguous).
	var constSig types.Type = types.TAll{Var: "a", Body: types.TAll{Var: "b", Body: types.TFun{
		Arg: types.TVar{Name: "a"},
		Res: types.TFun{Arg: types.TVar{Name: "b"}, Res: types.TVar{Name: "a"}},
	}}}
	prog := surface.Program{
		surface.DBind{Sig: &constSig, Bind: surface.Bind{Name: "const", Args: []string{"x", "y"}, Rhs: surface.EVar{Name: "x"}}},
		surface.DBind{Bind: surface.Bind{Name: "main", Rhs: surface.EApp{
			Fun: surface.EApp{Fun: surface.EVar{Name: "const"}, Arg: surface.ELit{Lit: surface.LitInt{Value: 3}}},
			Arg: surface.ELit{Lit: surface.LitInt{Value: 4}},
		}}},
	}

	typed, err := checker.New().CheckProgram(prog)
	assert.Nil(t, err)
	assert.Equal(t, constSig, typed[0].Type)
	assert.Equal(t, types.TLit{Name: "Int"}, typed[len(typed)-1].Type)

	out, merr := mono.New(typed, nil, mono.Options{}).Run()
	assert.Nil(t, merr)

	var names []string
	for _, b := range out {
		names = append(names, b.Name)
	}
	assert.Contains(t, names, "const$Int_Int_Int")
	assert.Contains(t, names, "main$Int")
}

func TestScenarioThreeBoolNotTypeChecks(t *testing.T) {
	// data Bool where False : Bool; True : Bool
	// not b = case b of { True => False ; False => True }
	// main = case (not True) of { True => 1 ; False => 0 }
	boolHead := types.TData{Name: "Bool"}
	data := surface.DData{Data: surface.Data{
		Head: boolHead,
		Injs: []surface.Inj{
			{Ctor: "False", Type: boolHead},
			{Ctor: "True", Type: boolHead},
		},
	}}

	notBind := surface.DBind{Bind: surface.Bind{
		Name: "not", Args: []string{"b"},
		Rhs: surface.ECase{
			Scrutinee: surface.EVar{Name: "b"},
			Branches: []surface.Branch{
				{Pattern: surface.PEnum{Ctor: "True"}, Exp: surface.EInj{Ctor: "False"}},
				{Pattern: surface.PEnum{Ctor: "False"}, Exp: surface.EInj{Ctor: "True"}},
			},
		},
	}}

	mainBind := surface.DBind{Bind: surface.Bind{
		Name: "main",
		Rhs: surface.ECase{
			Scrutinee: surface.EApp{Fun: surface.EVar{Name: "not"}, Arg: surface.EInj{Ctor: "True"}},
			Branches: []surface.Branch{
				{Pattern: surface.PEnum{Ctor: "True"}, Exp: surface.ELit{Lit: surface.LitInt{Value: 1}}},
				{Pattern: surface.PEnum{Ctor: "False"}, Exp: surface.ELit{Lit: surface.LitInt{Value: 0}}},
			},
		},
	}}

	typed, err := checker.New().CheckProgram(surface.Program{data, notBind, mainBind})
	assert.Nil(t, err)
	assert.Equal(t, types.TLit{Name: "Int"}, typed[len(typed)-1].Type)

	// case expressions are a documented monomorphization limitation
	// (§9): type-checking succeeds, but main's own body is a case, which
	// the core monomorphizer rejects before it ever reaches not.
	_, merr := mono.New(typed, nil, mono.Options{}).Run()
	assert.NotNil(t, merr)
	assert.Equal(t, tcerr.CodeCaseNotSupported, merr.Code())
}

func TestScenarioFourUnboundVariableSurfacesAtMonomorphization(t *testing.T) {
	// f : Int -> Int; f x = x + y (y unbound); main = f 1.
	var fSig types.Type = types.TFun{Arg: types.TLit{Name: "Int"}, Res: types.TLit{Name: "Int"}}
	prog := surface.Program{
		surface.DBind{Sig: &fSig, Bind: surface.Bind{
			Name: "f", Args: []string{"x"},
			Rhs: surface.EAdd{Lhs: surface.EVar{Name: "x"}, Rhs: surface.EVar{Name: "y"}},
		}},
		surface.DBind{Bind: surface.Bind{Name: "main", Rhs: surface.EApp{
			Fun: surface.EVar{Name: "f"},
			Arg: surface.ELit{Lit: surface.LitInt{Value: 1}},
		}}},
	}

	typed, err := checker.New().CheckProgram(prog)
	assert.Nil(t, err)

	_, merr := mono.New(typed, nil, mono.Options{}).Run()
	assert.NotNil(t, merr)
	assert.Equal(t, tcerr.CodeUnresolvedName, merr.Code())
}

func TestScenarioFiveSelfApplicationFailsOccursCheck(t *testing.T) {
	// bad x = x x: applying the unconstrained x to itself demands
	// x <: x -> ά, which fails the occurs check during instantiation.
	prog := surface.Program{
		surface.DBind{Bind: surface.Bind{
			Name: "bad", Args: []string{"x"},
			Rhs: surface.EApp{Fun: surface.EVar{Name: "x"}, Arg: surface.EVar{Name: "x"}},
		}},
	}

	_, err := checker.New().CheckProgram(prog)
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeTypeMismatch, err.Code())
}

func TestScenarioSixAddingCharToIntMismatches(t *testing.T) {
	prog := surface.Program{
		surface.DBind{Bind: surface.Bind{
			Name: "main",
			Rhs: surface.EAdd{
				Lhs: surface.ELit{Lit: surface.LitInt{Value: 1}},
				Rhs: surface.ELit{Lit: surface.LitChar{Value: 'a'}},
			},
		}},
	}

	_, err := checker.New().CheckProgram(prog)
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeTypeMismatch, err.Code())
}
