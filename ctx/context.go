package ctx

import (
	"github.com/cairn-lang/cairnc/types"
)

// Context is Γ: an ordered, append-mostly sequence of Elem, backed by a
// slice rather than a linked list for cache behaviour (§9) -- the only
// non-tail operation, insertion at a split point, is rare and bounded
// to the handful of elements an Arr/AllR instantiation step inserts.
type Context struct {
	elems []Elem
}

// NewContext returns an empty local context.
func NewContext() *Context {
	return &Context{}
}

// FromPrefix wraps a slice of elements (typically the left half of a
// SplitOnTEVar result) as a standalone Context, used by the Solve
// instantiation rule to well-formedness-check a candidate solution
// against the prefix that must contain every existential it mentions.
func FromPrefix(elems []Elem) *Context {
	return &Context{elems: elems}
}

func (c *Context) Len() int { return len(c.elems) }

// Elems exposes the underlying sequence for read-only inspection (tests,
// pretty-printing).
func (c *Context) Elems() []Elem {
	return c.elems
}

// Push appends an element to the right end of the context, growing scope.
func (c *Context) Push(e Elem) {
	c.elems = append(c.elems, e)
}

// PushAll appends a sequence of elements left to right.
func (c *Context) PushAll(es ...Elem) {
	c.elems = append(c.elems, es...)
}

func indexOfVar(elems []Elem, name string) int {
	for i, e := range elems {
		if v, ok := e.(EnvVar); ok && v.Name == name {
			return i
		}
	}
	return -1
}

func indexOfTVar(elems []Elem, name string) int {
	for i, e := range elems {
		if v, ok := e.(EnvTVar); ok && v.Name == name {
			return i
		}
	}
	return -1
}

func indexOfTEVar(elems []Elem, id int) int {
	for i, e := range elems {
		if v, ok := e.(EnvTEVar); ok && v.ID == id {
			return i
		}
	}
	return -1
}

func indexOfMark(elems []Elem, id int) int {
	for i, e := range elems {
		if v, ok := e.(EnvMark); ok && v.ID == id {
			return i
		}
	}
	return -1
}

// LookupVar returns the rightmost binding of name, if any -- local
// shadowing order, matching "lookup in local env (rightmost EnvVar)".
func (c *Context) LookupVar(name string) (Elem, bool) {
	for i := len(c.elems) - 1; i >= 0; i-- {
		if v, ok := c.elems[i].(EnvVar); ok && v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// HasTVar reports whether a universal variable is in scope.
func (c *Context) HasTVar(name string) bool {
	return indexOfTVar(c.elems, name) >= 0
}

// HasTEVar reports whether an existential is declared unsolved.
func (c *Context) HasTEVar(id int) bool {
	return indexOfTEVar(c.elems, id) >= 0
}

// FindSolved is findSolved(ά, Γ): a rightmost-to-leftmost search for
// EnvSolved(ά, τ). Solutions are looked up back-to-front because a
// later solve of the same existential (there should never be more than
// one, by the no-duplicates invariant) must win if it ever happened.
func (c *Context) FindSolved(id int) (types.Type, bool) {
	for i := len(c.elems) - 1; i >= 0; i-- {
		if s, ok := c.elems[i].(EnvSolved); ok && s.ID == id {
			return s.Mono, true
		}
	}
	return nil, false
}

// DropTrailingVar truncates the context to the prefix strictly before
// the EnvVar binding of name.
func (c *Context) DropTrailingVar(name string) {
	if i := indexOfVar(c.elems, name); i >= 0 {
		c.elems = c.elems[:i]
	}
}

// DropTrailingTVar truncates the context to the prefix strictly before
// the EnvTVar binding of name.
func (c *Context) DropTrailingTVar(name string) {
	if i := indexOfTVar(c.elems, name); i >= 0 {
		c.elems = c.elems[:i]
	}
}

// DropTrailingMark truncates the context to the prefix strictly before
// the EnvMark with the given id.
func (c *Context) DropTrailingMark(id int) {
	if i := indexOfMark(c.elems, id); i >= 0 {
		c.elems = c.elems[:i]
	}
}

// SplitOnTEVar is splitOn(EnvTEVar(ά), Γ): it returns the prefix before
// and the suffix after the (unique, by the no-duplicates invariant)
// EnvTEVar(ά) element, with that element itself dropped.
func (c *Context) SplitOnTEVar(id int) (left, right []Elem, ok bool) {
	i := indexOfTEVar(c.elems, id)
	if i < 0 {
		return nil, nil, false
	}
	left = append([]Elem{}, c.elems[:i]...)
	right = append([]Elem{}, c.elems[i+1:]...)
	return left, right, true
}

// ReplaceTEVar replaces the EnvTEVar(ά) element with the given
// replacement elements in order, used by the Arr/applyInfer
// instantiation steps that turn one existential into a chain of two
// plus a solution.
func (c *Context) ReplaceTEVar(id int, replacement ...Elem) bool {
	left, right, ok := c.SplitOnTEVar(id)
	if !ok {
		return false
	}
	newElems := make([]Elem, 0, len(left)+len(replacement)+len(right))
	newElems = append(newElems, left...)
	newElems = append(newElems, replacement...)
	newElems = append(newElems, right...)
	c.elems = newElems
	return true
}

// Solve replaces the EnvTEVar(ά) element in place with EnvSolved(ά, τ).
func (c *Context) Solve(id int, mono types.Type) bool {
	i := indexOfTEVar(c.elems, id)
	if i < 0 {
		return false
	}
	c.elems[i] = EnvSolved{ID: id, Mono: mono}
	return true
}

// IsComplete is isComplete(Γ): no EnvTEVar element remains.
func (c *Context) IsComplete() bool {
	for _, e := range c.elems {
		if _, ok := e.(EnvTEVar); ok {
			return false
		}
	}
	return true
}

// IndexOfTEVar exposes position lookup for instantiation's Reach rule,
// which needs to know whether one existential stands to the right of
// another.
func (c *Context) IndexOfTEVar(id int) int {
	return indexOfTEVar(c.elems, id)
}

// RemoveVar splices out exactly the EnvVar binding of name, keeping
// every element before and after it -- splitOn(EnvVar(x,A), Γ)
// recombined as ΓL++ΓR. Used by ELet, whose continuation may have
// solved existentials declared after x that must survive x going out
// of scope.
func (c *Context) RemoveVar(name string) bool {
	i := indexOfVar(c.elems, name)
	if i < 0 {
		return false
	}
	c.elems = append(c.elems[:i], c.elems[i+1:]...)
	return true
}

// Mark returns the current length of the context, to be paired with a
// later TruncateTo to discard everything pushed since -- used where a
// scope boundary is a plain length rather than a named EnvMark element
// (e.g. ECase's per-branch pattern bindings).
func (c *Context) Mark() int { return len(c.elems) }

// TruncateTo discards every element beyond the first n.
func (c *Context) TruncateTo(n int) {
	c.elems = c.elems[:n]
}
