// Package monoir is the ground-type-only IR the monomorphizer produces
// (§3, §6): no constructor here can express a TVar, TEVar or TAll, so
// the closure property that every other stage only checks at runtime
// is, for this package, enforced by the type system itself.
package monoir

import (
	"fmt"
	"strings"
)

// Type is the closed set of ground type formers: a literal base type,
// a function type, or a fully-applied data type whose arguments are
// themselves ground.
type Type interface {
	fmt.Stringer
	isType()
}

var (
	_ Type = TLit{}
	_ Type = TFun{}
	_ Type = TData{}
)

type TLit struct{ Name string }

func (TLit) isType()          {}
func (t TLit) String() string { return t.Name }

type TFun struct{ Arg, Res Type }

func (TFun) isType() {}
func (t TFun) String() string {
	argStr := t.Arg.String()
	if _, ok := t.Arg.(TFun); ok {
		argStr = "(" + argStr + ")"
	}
	return argStr + " -> " + t.Res.String()
}

type TData struct {
	Name string
	Args []Type
}

func (TData) isType() {}
func (t TData) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + " " + strings.Join(parts, " ")
}
