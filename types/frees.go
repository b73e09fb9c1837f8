package types

import (
	"github.com/hashicorp/go-set/v3"
)

// Frees returns the set of existential-variable ids occurring free in A.
// TVar and TLit are ignored, matching the spec's frees(A) definition.
func Frees(a Type) *set.Set[int] {
	result := set.New[int](0)
	collectFrees(a, result)
	return result
}

func collectFrees(a Type, into *set.Set[int]) {
	switch t := a.(type) {
	case TLit, TVar:
		return
	case TEVar:
		into.Insert(t.ID)
	case TFun:
		collectFrees(t.Arg, into)
		collectFrees(t.Res, into)
	case TAll:
		collectFrees(t.Body, into)
	case TData:
		for _, arg := range t.Args {
			collectFrees(arg, into)
		}
	default:
		panic("unreachable: unknown Type")
	}
}

// FreeVars returns the set of rigid type-variable names occurring free
// in A, used by data-declaration validation to check that a
// constructor's type mentions no parameter the data head didn't bind.
func FreeVars(a Type) *set.Set[string] {
	result := set.New[string](0)
	collectFreeVars(a, result)
	return result
}

func collectFreeVars(a Type, into *set.Set[string]) {
	switch t := a.(type) {
	case TLit, TEVar:
		return
	case TVar:
		into.Insert(t.Name)
	case TFun:
		collectFreeVars(t.Arg, into)
		collectFreeVars(t.Res, into)
	case TAll:
		inner := set.New[string](0)
		collectFreeVars(t.Body, inner)
		inner.Remove(t.Var)
		into.InsertSet(inner)
	case TData:
		for _, arg := range t.Args {
			collectFreeVars(arg, into)
		}
	default:
		panic("unreachable: unknown Type")
	}
}
