package typedir

import (
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/types"
)

// Pattern is the closed set of typed pattern formers, mirroring surface.Pattern.
type Pattern interface {
	Type() types.Type
	isPattern()
}

var (
	_ Pattern = PVar{}
	_ Pattern = PCatch{}
	_ Pattern = PLit{}
	_ Pattern = PEnum{}
	_ Pattern = PInj{}
)

type PVar struct {
	Name string
	T    types.Type
}

type PCatch struct {
	T types.Type
}

type PLit struct {
	Lit surface.Lit
	T   types.Type
}

type PEnum struct {
	Ctor string
	T    types.Type
}

type PInj struct {
	Ctor string
	Args []Pattern
	T    types.Type
}

func (p PVar) Type() types.Type   { return p.T }
func (p PCatch) Type() types.Type { return p.T }
func (p PLit) Type() types.Type   { return p.T }
func (p PEnum) Type() types.Type  { return p.T }
func (p PInj) Type() types.Type   { return p.T }

func (PVar) isPattern()   {}
func (PCatch) isPattern() {}
func (PLit) isPattern()   {}
func (PEnum) isPattern()  {}
func (PInj) isPattern()   {}
