package mono

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cairn-lang/cairnc/monoir"
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/typedir"
	"github.com/cairn-lang/cairnc/types"
)

// idProgram builds the typed IR for scenario 1: id : forall a. a -> a;
// id x = x; main = id 5.
func idProgram() typedir.Program {
	idT := types.TAll{Var: "a", Body: types.TFun{Arg: types.TVar{Name: "a"}, Res: types.TVar{Name: "a"}}}
	idBind := typedir.Bind{
		Name: "id", Type: idT, Args: []string{"x"},
		Body: typedir.EVar{Name: "x", T: types.TVar{Name: "a"}},
	}
	mainBind := typedir.Bind{
		Name: "main", Type: types.TLit{Name: "Int"},
		Body: typedir.EApp{
			Fun: typedir.EVar{Name: "id", T: types.TFun{Arg: types.TLit{Name: "Int"}, Res: types.TLit{Name: "Int"}}},
			Arg: typedir.ELit{Lit: surface.LitInt{Value: 5}, T: types.TLit{Name: "Int"}},
			T:   types.TLit{Name: "Int"},
		},
	}
	return typedir.Program{idBind, mainBind}
}

func TestRunSpecializesIdentityAtInt(t *testing.T) {
	m := New(idProgram(), nil, Options{})
	out, err := m.Run()
	assert.Nil(t, err)

	byName := map[string]monoir.Bind{}
	for _, b := range out {
		byName[b.Name] = b
	}

	idSpecialized, ok := byName["id$Int_Int"]
	assert.True(t, ok)
	assert.Equal(t, monoir.TFun{Arg: monoir.TLit{Name: "Int"}, Res: monoir.TLit{Name: "Int"}}, idSpecialized.Type)

	abs, ok := idSpecialized.Body.(monoir.EAbs)
	assert.True(t, ok)
	assert.Equal(t, "x", abs.Param)
	assert.Equal(t, monoir.EVar{Name: "x", T: monoir.TLit{Name: "Int"}}, abs.Body)

	mainOut, ok := byName["main$Int"]
	assert.True(t, ok)
	app, ok := mainOut.Body.(monoir.EApp)
	assert.True(t, ok)
	assert.Equal(t, monoir.EVar{Name: "id$Int_Int", T: monoir.TFun{Arg: monoir.TLit{Name: "Int"}, Res: monoir.TLit{Name: "Int"}}}, app.Fun)
}

func TestRunSpecializesConstDroppingSecondArg(t *testing.T) {
	// const : forall a b. a -> b -> a; const x y = x; main = const 3 4.
	constT := types.TAll{Var: "a", Body: types.TAll{Var: "b", Body: types.TFun{
		Arg: types.TVar{Name: "a"},
		Res: types.TFun{Arg: types.TVar{Name: "b"}, Res: types.TVar{Name: "a"}},
	}}}
	constBind := typedir.Bind{
		Name: "const", Type: constT, Args: []string{"x", "y"},
		Body: typedir.EVar{Name: "x", T: types.TVar{Name: "a"}},
	}
	mainBind := typedir.Bind{
		Name: "main", Type: types.TLit{Name: "Int"},
		Body: typedir.EApp{
			Fun: typedir.EApp{
				Fun: typedir.EVar{Name: "const", T: types.TFun{
					Arg: types.TLit{Name: "Int"},
					Res: types.TFun{Arg: types.TLit{Name: "Int"}, Res: types.TLit{Name: "Int"}},
				}},
				Arg: typedir.ELit{Lit: surface.LitInt{Value: 3}, T: types.TLit{Name: "Int"}},
				T:   types.TFun{Arg: types.TLit{Name: "Int"}, Res: types.TLit{Name: "Int"}},
			},
			Arg: typedir.ELit{Lit: surface.LitInt{Value: 4}, T: types.TLit{Name: "Int"}},
			T:   types.TLit{Name: "Int"},
		},
	}

	m := New(typedir.Program{constBind, mainBind}, nil, Options{})
	out, err := m.Run()
	assert.Nil(t, err)

	names := make([]string, len(out))
	for i, b := range out {
		names[i] = b.Name
	}
	assert.Contains(t, names, "const$Int_Int_Int")
	assert.Contains(t, names, "main$Int")
}

func TestRunRejectsMissingMain(t *testing.T) {
	m := New(typedir.Program{}, nil, Options{})
	_, err := m.Run()
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeMissingMain, err.Code())
}

func TestRunRejectsUnresolvedName(t *testing.T) {
	// f : Int -> Int; f x = x + y (y unbound); main = f 1.
	fBind := typedir.Bind{
		Name: "f", Type: types.TFun{Arg: types.TLit{Name: "Int"}, Res: types.TLit{Name: "Int"}},
		Args: []string{"x"},
		Body: typedir.EAdd{
			Lhs: typedir.EVar{Name: "x", T: types.TLit{Name: "Int"}},
			Rhs: typedir.EVar{Name: "y", T: types.TLit{Name: "Int"}},
			T:   types.TLit{Name: "Int"},
		},
	}
	mainBind := typedir.Bind{
		Name: "main", Type: types.TLit{Name: "Int"},
		Body: typedir.EApp{
			Fun: typedir.EVar{Name: "f", T: types.TFun{Arg: types.TLit{Name: "Int"}, Res: types.TLit{Name: "Int"}}},
			Arg: typedir.ELit{Lit: surface.LitInt{Value: 1}, T: types.TLit{Name: "Int"}},
			T:   types.TLit{Name: "Int"},
		},
	}

	m := New(typedir.Program{fBind, mainBind}, nil, Options{})
	_, err := m.Run()
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeUnresolvedName, err.Code())
}

func TestRunRejectsNestedLet(t *testing.T) {
	mainBind := typedir.Bind{
		Name: "main", Type: types.TLit{Name: "Int"},
		Body: typedir.ELet{
			Bind: typedir.Bind{Name: "z", Type: types.TLit{Name: "Int"}, Body: typedir.ELit{Lit: surface.LitInt{Value: 1}, T: types.TLit{Name: "Int"}}},
			Body: typedir.EVar{Name: "z", T: types.TLit{Name: "Int"}},
			T:    types.TLit{Name: "Int"},
		},
	}
	m := New(typedir.Program{mainBind}, nil, Options{})
	_, err := m.Run()
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeLetNotSupported, err.Code())
}

func TestRunRejectsCaseExpression(t *testing.T) {
	mainBind := typedir.Bind{
		Name: "main", Type: types.TLit{Name: "Int"},
		Body: typedir.ECase{
			Scrutinee: typedir.ELit{Lit: surface.LitInt{Value: 1}, T: types.TLit{Name: "Int"}},
			Branches: []typedir.Branch{
				{Pattern: typedir.PCatch{T: types.TLit{Name: "Int"}}, Exp: typedir.ELit{Lit: surface.LitInt{Value: 0}, T: types.TLit{Name: "Int"}}},
			},
			T: types.TLit{Name: "Int"},
		},
	}
	m := New(typedir.Program{mainBind}, nil, Options{})
	_, err := m.Run()
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeCaseNotSupported, err.Code())
}

func TestRunBreaksCycleOnSelfRecursiveBinding(t *testing.T) {
	// f : forall a. a -> a; f x = f x; main = f 1. Every recursive call
	// specializes f at the exact same type as its enclosing call, so
	// without the Incomplete cycle-breaker morphBind would recurse into
	// itself forever trying to finish specializing "f$Int_Int" before
	// it can be referenced.
	idT := types.TAll{Var: "a", Body: types.TFun{Arg: types.TVar{Name: "a"}, Res: types.TVar{Name: "a"}}}
	fBind := typedir.Bind{
		Name: "f", Type: idT, Args: []string{"x"},
		Body: typedir.EApp{
			Fun: typedir.EVar{Name: "f", T: types.TFun{Arg: types.TVar{Name: "a"}, Res: types.TVar{Name: "a"}}},
			Arg: typedir.EVar{Name: "x", T: types.TVar{Name: "a"}},
			T:   types.TVar{Name: "a"},
		},
	}
	mainBind := typedir.Bind{
		Name: "main", Type: types.TLit{Name: "Int"},
		Body: typedir.EApp{
			Fun: typedir.EVar{Name: "f", T: types.TFun{Arg: types.TLit{Name: "Int"}, Res: types.TLit{Name: "Int"}}},
			Arg: typedir.ELit{Lit: surface.LitInt{Value: 1}, T: types.TLit{Name: "Int"}},
			T:   types.TLit{Name: "Int"},
		},
	}

	m := New(typedir.Program{fBind, mainBind}, nil, Options{})
	out, err := m.Run()
	assert.Nil(t, err)

	byName := map[string]monoir.Bind{}
	for _, b := range out {
		byName[b.Name] = b
	}

	fOut, ok := byName["f$Int_Int"]
	assert.True(t, ok)
	intFun := monoir.TFun{Arg: monoir.TLit{Name: "Int"}, Res: monoir.TLit{Name: "Int"}}
	assert.Equal(t, intFun, fOut.Type)

	abs, ok := fOut.Body.(monoir.EAbs)
	assert.True(t, ok)
	assert.Equal(t, "x", abs.Param)

	// The recursive call resolves back to "f$Int_Int" by name rather
	// than inlining another copy of f's body -- the cycle-breaker
	// short-circuited the second morphBind("f$Int_Int", ...) call.
	app, ok := abs.Body.(monoir.EApp)
	assert.True(t, ok)
	assert.Equal(t, monoir.EVar{Name: "f$Int_Int", T: intFun}, app.Fun)
	assert.Equal(t, monoir.EVar{Name: "x", T: monoir.TLit{Name: "Int"}}, app.Arg)

	assert.Contains(t, byName, "main$Int")
}

func TestMorphInjRejectsConstructorWithoutOptIn(t *testing.T) {
	m := New(typedir.Program{}, map[string]types.Type{"True": types.TData{Name: "Bool"}}, Options{})
	_, err := m.morphInj(monoir.TData{Name: "Bool", Args: []monoir.Type{}}, typedir.EInj{Ctor: "True", T: types.TData{Name: "Bool"}})
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeUnsupportedDataMono, err.Code())
}

func TestMorphInjMangleWithOptIn(t *testing.T) {
	m := New(typedir.Program{}, map[string]types.Type{"True": types.TData{Name: "Bool"}}, Options{AllowPolymorphicDataArgs: true})
	exp, err := m.morphInj(monoir.TData{Name: "Bool", Args: []monoir.Type{}}, typedir.EInj{Ctor: "True", T: types.TData{Name: "Bool"}})
	assert.Nil(t, err)
	assert.Equal(t, monoir.EVar{Name: "True$Bool", T: monoir.TData{Name: "Bool", Args: []monoir.Type{}}}, exp)
}
