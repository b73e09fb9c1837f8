package ctx

import (
	"github.com/cairn-lang/cairnc/surface"
	"github.com/cairn-lang/cairnc/types"
)

// Cxt is the top-level context described by §3: the transient ordered
// local context (embedded *Context, truncated to empty between
// bindings) plus the state that persists across the whole pass --
// signatures (monotonically growing with every binding's inferred
// type), the untyped right-hand sides (kept for reference only, as the
// spec notes the checker does not re-consult them once loaded), the
// constructor table, and the fresh-existential source backing
// next_tevar.
type Cxt struct {
	*Context

	sig       map[string]types.Type
	binds     map[string]surface.Bind
	dataInjs  map[string]types.Type
	evarSrc   *types.EVarSource
}

// NewCxt builds an empty top-level context with no declared signatures,
// binds or constructors yet.
func NewCxt() *Cxt {
	return &Cxt{
		Context:  NewContext(),
		sig:      map[string]types.Type{},
		binds:    map[string]surface.Bind{},
		dataInjs: map[string]types.Type{},
		evarSrc:  types.NewEVarSource(),
	}
}

// Fresh mints a brand-new existential variable.
func (c *Cxt) Fresh() types.TEVar { return c.evarSrc.Fresh() }

// Sig looks up a user-provided or previously-inferred top-level signature.
func (c *Cxt) Sig(name string) (types.Type, bool) {
	t, ok := c.sig[name]
	return t, ok
}

// SetSig records name's type, growing sig monotonically as bindings complete.
func (c *Cxt) SetSig(name string, t types.Type) {
	c.sig[name] = t
}

// SetBind records the untyped right-hand side of a top-level binding.
func (c *Cxt) SetBind(name string, b surface.Bind) {
	c.binds[name] = b
}

// Bind looks up a previously-recorded untyped binding.
func (c *Cxt) Bind(name string) (surface.Bind, bool) {
	b, ok := c.binds[name]
	return b, ok
}

// CtorType looks up a constructor's closed-over, fully-quantified type.
func (c *Cxt) CtorType(ctor string) (types.Type, bool) {
	t, ok := c.dataInjs[ctor]
	return t, ok
}

// SetCtorType registers a constructor's type.
func (c *Cxt) SetCtorType(ctor string, t types.Type) {
	c.dataInjs[ctor] = t
}

// ResetLocal truncates the local context to empty, as required between
// top-level bindings (§4.E, step 3).
func (c *Cxt) ResetLocal() {
	c.Context = NewContext()
}
