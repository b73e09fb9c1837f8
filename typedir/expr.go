// Package typedir is the typed IR outbound from the checker (§3, §6):
// surface.Exp/Pattern/Bind mirrored one-for-one, with every node paired
// with its final, `apply`-closed type.
package typedir

import (
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/types"
)

// Exp is the closed set of typed expression formers, mirroring surface.Exp.
type Exp interface {
	Type() types.Type
	isExp()
}

var (
	_ Exp = ELit{}
	_ Exp = EVar{}
	_ Exp = EInj{}
	_ Exp = EApp{}
	_ Exp = EAbs{}
	_ Exp = ELet{}
	_ Exp = EAdd{}
	_ Exp = ECase{}
)

type ELit struct {
	Lit surface.Lit
	T   types.Type
}

type EVar struct {
	Name string
	T    types.Type
}

type EInj struct {
	Ctor string
	T    types.Type
}

type EApp struct {
	Fun, Arg Exp
	T        types.Type
}

type EAbs struct {
	Param string
	Body  Exp
	T     types.Type
}

type ELet struct {
	Bind Bind
	Body Exp
	T    types.Type
}

type EAdd struct {
	Lhs, Rhs Exp
	T        types.Type
}

type ECase struct {
	Scrutinee Exp
	Branches  []Branch
	T         types.Type
}

func (e ELit) Type() types.Type  { return e.T }
func (e EVar) Type() types.Type  { return e.T }
func (e EInj) Type() types.Type  { return e.T }
func (e EApp) Type() types.Type  { return e.T }
func (e EAbs) Type() types.Type  { return e.T }
func (e ELet) Type() types.Type  { return e.T }
func (e EAdd) Type() types.Type  { return e.T }
func (e ECase) Type() types.Type { return e.T }

func (ELit) isExp()  {}
func (EVar) isExp()  {}
func (EInj) isExp()  {}
func (EApp) isExp()  {}
func (EAbs) isExp()  {}
func (ELet) isExp()  {}
func (EAdd) isExp()  {}
func (ECase) isExp() {}

// Branch is one typed arm of an ECase.
type Branch struct {
	Pattern Pattern
	Exp     Exp
}

// Bind is a top-level (or, before lambda lifting, a let-bound) binding
// annotated with its final, possibly-polymorphic type.
type Bind struct {
	Name string
	Type types.Type
	Args []string
	Body Exp
}
