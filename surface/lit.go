package surface

import "github.com/cairn-lang/cairnc/types"

// Lit is the closed set of literal kinds the language has: integer and
// character literals.
type Lit interface {
	Type() types.Type
	isLit()
}

var (
	_ Lit = LitInt{}
	_ Lit = LitChar{}
)

type LitInt struct {
	Value int64
}

func (LitInt) isLit()               {}
func (LitInt) Type() types.Type     { return types.TLit{Name: "Int"} }

type LitChar struct {
	Value rune
}

func (LitChar) isLit()           {}
func (LitChar) Type() types.Type { return types.TLit{Name: "Char"} }
