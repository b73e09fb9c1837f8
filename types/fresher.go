package types

// EVarSource mints fresh existential variables from a monotonic counter,
// mirroring the teacher's Fresher (frontend/types/universe.go): fresh
// names are a counter bump away, collisions are impossible by
// construction.
type EVarSource struct {
	next int
}

// NewEVarSource returns a source with no existentials minted yet.
func NewEVarSource() *EVarSource {
	return &EVarSource{}
}

// Fresh returns a brand-new, never-before-seen existential variable.
func (f *EVarSource) Fresh() TEVar {
	id := f.next
	f.next++
	return TEVar{ID: id}
}

// Next reports the id that the following call to Fresh will return,
// without consuming it.
func (f *EVarSource) Next() int { return f.next }
