package monoir

// Bind is one specialized, ground-typed binding -- the monomorphizer's
// morphBind emits one of these per distinct (source binding,
// instantiation) pair. Formal arguments are not tracked separately:
// per §4.G's chosen convention they are erased into nested EAbs inside
// Body.
type Bind struct {
	Name string
	Type Type
	Body Exp
}

// Program is the fully-specialized, closed output: every Bind's Type
// and every Exp's Type in it is ground (no TVar/TEVar/TAll anywhere in
// this package's Type at all), and main$Int is present.
type Program []Bind
