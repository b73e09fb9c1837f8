// Package ctx is the ordered context Γ of §3/§4.A-§4.B: the sequence of
// term-variable bindings, universal variables, existentials and their
// solutions, and scope markers that the checker thread through every
// judgment.
package ctx

import (
	"fmt"

	"github.com/cairn-lang/cairnc/types"
)

// Elem is the closed set of ordered-context element kinds.
type Elem interface {
	fmt.Stringer
	isElem()
}

var (
	_ Elem = EnvVar{}
	_ Elem = EnvTVar{}
	_ Elem = EnvTEVar{}
	_ Elem = EnvSolved{}
	_ Elem = EnvMark{}
)

// EnvVar binds a term variable to a type.
type EnvVar struct {
	Name string
	Type types.Type
}

// EnvTVar brings a universal type variable into scope.
type EnvTVar struct {
	Name string
}

// EnvTEVar declares an unsolved existential.
type EnvTEVar struct {
	ID int
}

// EnvSolved records that an existential has been solved to a monotype.
type EnvSolved struct {
	ID  int
	Mono types.Type
}

// EnvMark is a scope marker, pushed before entering a rank-n quantifier
// so that the context can be truncated precisely on exit.
type EnvMark struct {
	ID int
}

func (EnvVar) isElem()    {}
func (EnvTVar) isElem()   {}
func (EnvTEVar) isElem()  {}
func (EnvSolved) isElem() {}
func (EnvMark) isElem()   {}

func (e EnvVar) String() string    { return fmt.Sprintf("%s : %s", e.Name, e.Type) }
func (e EnvTVar) String() string   { return e.Name }
func (e EnvTEVar) String() string  { return fmt.Sprintf("'%d", e.ID) }
func (e EnvSolved) String() string { return fmt.Sprintf("'%d = %s", e.ID, e.Mono) }
func (e EnvMark) String() string   { return fmt.Sprintf("▶'%d", e.ID) }
