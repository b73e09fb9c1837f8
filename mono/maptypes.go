package mono

import (
	"github.com/cairn-lang/cairnc/monoir"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/types"
)

// mapTypes is morphBind step 1's "structural pairing of TVar in
// declared with concrete type in expected": walk declared (a
// possibly-TAll-quantified type) and expected (ground) in lockstep,
// binding every TVar encountered to whatever sits at its position in
// expected. A shape mismatch is an internal bug -- the checker should
// never hand the monomorphizer a binding whose declared type disagrees
// with the concrete type it is asked to specialize to.
func mapTypes(bindName string, declared types.Type, expected monoir.Type) (map[string]monoir.Type, tcerr.TypeError) {
	body := declared
	for {
		all, ok := body.(types.TAll)
		if !ok {
			break
		}
		body = all.Body
	}
	polys := map[string]monoir.Type{}
	if err := walkTypes(bindName, body, expected, polys); err != nil {
		return nil, err
	}
	return polys, nil
}

func walkTypes(bindName string, d types.Type, e monoir.Type, into map[string]monoir.Type) tcerr.TypeError {
	mismatch := tcerr.New(tcerr.StructuralTypeMismatch{Bind: bindName})

	switch dt := d.(type) {
	case types.TVar:
		if existing, ok := into[dt.Name]; ok {
			if existing.String() != e.String() {
				return mismatch
			}
			return nil
		}
		into[dt.Name] = e
		return nil

	case types.TLit:
		if et, ok := e.(monoir.TLit); ok && et.Name == dt.Name {
			return nil
		}
		return mismatch

	case types.TFun:
		ef, ok := e.(monoir.TFun)
		if !ok {
			return mismatch
		}
		if err := walkTypes(bindName, dt.Arg, ef.Arg, into); err != nil {
			return err
		}
		return walkTypes(bindName, dt.Res, ef.Res, into)

	case types.TData:
		ed, ok := e.(monoir.TData)
		if !ok || ed.Name != dt.Name || len(ed.Args) != len(dt.Args) {
			return mismatch
		}
		for i := range dt.Args {
			if err := walkTypes(bindName, dt.Args[i], ed.Args[i], into); err != nil {
				return err
			}
		}
		return nil

	default:
		// TEVar (an unresolved existential) or a nested TAll reaching
		// this far both mean the checker handed the monomorphizer a
		// type that was never fully applied/generalized.
		return mismatch
	}
}

// mono is mono(t): apply polys to every TVar in t, producing a ground
// monoir.Type. TData is rejected unless the caller's Options opted into
// the extension (§9's documented open question); TAll is always
// rejected.
func mono(t types.Type, polys map[string]monoir.Type, allowData bool) (monoir.Type, tcerr.TypeError) {
	switch v := t.(type) {
	case types.TLit:
		return monoir.TLit{Name: v.Name}, nil

	case types.TVar:
		m, ok := polys[v.Name]
		if !ok {
			return nil, tcerr.New(tcerr.UnmappedTypeVariable{Var: v.Name})
		}
		return m, nil

	case types.TFun:
		arg, err := mono(v.Arg, polys, allowData)
		if err != nil {
			return nil, err
		}
		res, err := mono(v.Res, polys, allowData)
		if err != nil {
			return nil, err
		}
		return monoir.TFun{Arg: arg, Res: res}, nil

	case types.TData:
		if !allowData {
			return nil, tcerr.New(tcerr.UnsupportedDataMono{Type: v})
		}
		args := make([]monoir.Type, len(v.Args))
		for i, a := range v.Args {
			m, err := mono(a, polys, allowData)
			if err != nil {
				return nil, err
			}
			args[i] = m
		}
		return monoir.TData{Name: v.Name, Args: args}, nil

	case types.TEVar:
		return nil, tcerr.New(tcerr.UnmappedTypeVariable{Var: v.String()})

	case types.TAll:
		return nil, tcerr.New(tcerr.UnsupportedDataMono{Type: v})

	default:
		panic("unreachable: unknown types.Type")
	}
}
