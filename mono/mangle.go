package mono

import "github.com/cairn-lang/cairnc/monoir"

// mangle renders a ground type into the suffix newName appends to a
// binding's name: mangle(TLit(s)) = s, mangle(TFun(a,b)) =
// mangle(a)_mangle(b). $ and _ are reserved by the renamer (§9), so a
// suffix never collides with a source name, but the suffix does not
// record how arrows are grouped: (Int -> Int) -> Int and
// Int -> Int -> Int both mangle to Int_Int_Int.
func mangle(t monoir.Type) string {
	switch v := t.(type) {
	case monoir.TLit:
		return v.Name
	case monoir.TFun:
		return mangle(v.Arg) + "_" + mangle(v.Res)
	case monoir.TData:
		name := v.Name
		for _, arg := range v.Args {
			name += "_" + mangle(arg)
		}
		return name
	default:
		panic("unreachable: unknown monoir.Type")
	}
}

// newName is newName(T, bind): the specialized name a (bind, T) pair
// mangles to.
func newName(t monoir.Type, bind string) string {
	return bind + "$" + mangle(t)
}
