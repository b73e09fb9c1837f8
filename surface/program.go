package surface

// Program is a flat list of definitions, already placed in dependency
// order by the (out-of-scope) definition-ordering pass that runs before
// the checker. The checker processes it front to back.
type Program []Def
