// Package surface is the inbound data model: the parsed, desugared,
// renamed program the checker consumes (§6). It carries no position
// info -- the renamer's unique-name invariant is the only contract the
// core relies on.
package surface

import "github.com/cairn-lang/cairnc/types"

// Exp is the closed set of expression formers described by §6.
type Exp interface {
	isExp()
}

var (
	_ Exp = ELit{}
	_ Exp = EVar{}
	_ Exp = EInj{}
	_ Exp = EAnn{}
	_ Exp = EApp{}
	_ Exp = EAbs{}
	_ Exp = ELet{}
	_ Exp = EAdd{}
	_ Exp = ECase{}
)

// ELit is an integer or character literal.
type ELit struct{ Lit Lit }

// EVar is a reference to a term variable.
type EVar struct{ Name string }

// EInj is a reference to a data-constructor, used as a function value.
type EInj struct{ Ctor string }

// EAnn is a user-provided type ascription.
type EAnn struct {
	Exp  Exp
	Type types.Type
}

// EApp is function application.
type EApp struct {
	Fun, Arg Exp
}

// EAbs is lambda abstraction.
type EAbs struct {
	Param string
	Body  Exp
}

// ELet is a let-binding: `let f x1 .. xn = rhs in body`.
type ELet struct {
	Bind Bind
	Body Exp
}

// EAdd is integer addition.
type EAdd struct {
	Lhs, Rhs Exp
}

// ECase is pattern-match over a scrutinee.
type ECase struct {
	Scrutinee Exp
	Branches  []Branch
}

func (ELit) isExp()  {}
func (EVar) isExp()  {}
func (EInj) isExp()  {}
func (EAnn) isExp()  {}
func (EApp) isExp()  {}
func (EAbs) isExp()  {}
func (ELet) isExp()  {}
func (EAdd) isExp()  {}
func (ECase) isExp() {}

// Bind is a single (possibly curried) binding `name arg1 .. argn = rhs`.
type Bind struct {
	Name string
	Args []string
	Rhs  Exp
}

// AsFunc returns Rhs wrapped in foldr EAbs over Args, i.e. the
// expression a checker should infer/check as if Bind had zero
// arguments -- the "foldr EAbs rhs vars" step used throughout §4.E.
func (b Bind) AsFunc() Exp {
	e := b.Rhs
	for i := len(b.Args) - 1; i >= 0; i-- {
		e = EAbs{Param: b.Args[i], Body: e}
	}
	return e
}

// Branch is one arm of an ECase.
type Branch struct {
	Pattern Pattern
	Exp     Exp
}
