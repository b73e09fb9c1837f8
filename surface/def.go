package surface

import "github.com/cairn-lang/cairnc/types"

// Def is the closed set of top-level definition formers described by §6.
type Def interface {
	isDef()
}

var (
	_ Def = DData{}
	_ Def = DBind{}
)

// Inj is one constructor of a data declaration: `κ : ∀α⃗. A₁ → … → Aₙ → D α⃗`.
type Inj struct {
	Ctor string
	Type types.Type
}

// Data is a data-type declaration. Head must, per §6, be syntactically
// TAll*(TData name [TVar ...]) with distinct bound type variables; this
// is checked by checker.CheckDataDef rather than by this type.
type Data struct {
	Head types.Type
	Injs []Inj
}

// DData declares an algebraic data type and its constructors.
type DData struct{ Data Data }

// DBind declares a top-level binding, with an optional companion
// explicit signature.
type DBind struct {
	Bind Bind
	Sig  *types.Type
}

func (DData) isDef() {}
func (DBind) isDef() {}
