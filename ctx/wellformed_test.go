package ctx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/types"
)

func TestWellFormedAcceptsBoundVars(t *testing.T) {
	c := NewContext()
	c.Push(EnvTVar{Name: "a"})
	c.Push(EnvTEVar{ID: 1})

	err := WellFormed(c, types.TFun{Arg: types.TVar{Name: "a"}, Res: types.TEVar{ID: 1}})
	assert.Nil(t, err)
}

func TestWellFormedRejectsUnboundTVar(t *testing.T) {
	c := NewContext()
	err := WellFormed(c, types.TVar{Name: "a"})
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeUnboundTypeVar, err.Code())
}

func TestWellFormedRejectsUnknownExistential(t *testing.T) {
	c := NewContext()
	err := WellFormed(c, types.TEVar{ID: 99})
	assert.NotNil(t, err)
	assert.Equal(t, tcerr.CodeUnknownExistential, err.Code())
}

func TestWellFormedAcceptsSolvedExistential(t *testing.T) {
	c := NewContext()
	c.Push(EnvSolved{ID: 1, Mono: types.TLit{Name: "Int"}})
	err := WellFormed(c, types.TEVar{ID: 1})
	assert.Nil(t, err)
}

func TestWellFormedDescendsUnderTAll(t *testing.T) {
	c := NewContext()
	err := WellFormed(c, types.TAll{Var: "a", Body: types.TVar{Name: "a"}})
	assert.Nil(t, err)
}

func TestWellFormedOverTData(t *testing.T) {
	c := NewContext()
	c.Push(EnvTVar{Name: "a"})
	err := WellFormed(c, types.TData{Name: "Box", Args: []types.Type{types.TVar{Name: "a"}}})
	assert.Nil(t, err)

	err = WellFormed(c, types.TData{Name: "Box", Args: []types.Type{types.TVar{Name: "b"}}})
	assert.NotNil(t, err)
}
