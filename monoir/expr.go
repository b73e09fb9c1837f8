package monoir

import "github.com/cairn-lang/cairnc/surface"

// Exp is the closed set of monomorphic expression formers -- typedir.Exp
// with EInj and ECase absent: constructors and pattern matches never
// survive specialization in the core (§9's documented open question),
// so this package simply has no node shape for them to occupy.
type Exp interface {
	Type() Type
	isExp()
}

var (
	_ Exp = ELit{}
	_ Exp = EVar{}
	_ Exp = EApp{}
	_ Exp = EAbs{}
	_ Exp = EAdd{}
)

type ELit struct {
	Lit surface.Lit
	T   Type
}

// EVar is a reference either to a local (an enclosing EAbs's
// parameter) or, after specialization, to a mangled top-level name.
type EVar struct {
	Name string
	T    Type
}

type EApp struct {
	Fun, Arg Exp
	T        Type
}

type EAbs struct {
	Param string
	Body  Exp
	T     Type
}

type EAdd struct {
	Lhs, Rhs Exp
	T        Type
}

func (e ELit) Type() Type { return e.T }
func (e EVar) Type() Type { return e.T }
func (e EApp) Type() Type { return e.T }
func (e EAbs) Type() Type { return e.T }
func (e EAdd) Type() Type { return e.T }

func (ELit) isExp() {}
func (EVar) isExp() {}
func (EApp) isExp() {}
func (EAbs) isExp() {}
func (EAdd) isExp() {}
