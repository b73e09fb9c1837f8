// Package mono implements §4.G: specialize the typed IR's possibly
// polymorphic bindings into one closed, ground-typed copy per distinct
// call-site type.
package mono

import (
	"log/slog"

	"github.com/hashicorp/go-set/v3"

	ilog "github.com/cairn-lang/cairnc/internal/log"
	"github.com/cairn-lang/cairnc/internal/util"
	"github.com/cairn-lang/cairnc/monoir"
	"github.com/cairn-lang/cairnc/tcerr"
	"github.com/cairn-lang/cairnc/typedir"
	"github.com/cairn-lang/cairnc/types"
)

// Options mirrors checker.Options' monomorphizer-relevant knob without
// importing the checker package: AllowPolymorphicDataArgs turns on the
// TData specialization extension §9 leaves as an open question.
type Options struct {
	AllowPolymorphicDataArgs bool

	// DebugRules lists which judgments ("morphBind") should have their
	// trace records actually reach stdout; nil traces nothing. See
	// checker.Options.DebugRules for the rest of this convention.
	DebugRules []string
}

type outputEntry struct {
	complete bool
	bind     monoir.Bind
}

// Monomorphizer holds the read-only input program, the mutable
// Incomplete/Complete output map that breaks specialization cycles,
// and the constructor table -- state scoped to one monomorphization
// pass, not safe for concurrent use (mirrors Checker).
type Monomorphizer struct {
	input map[string]typedir.Bind
	ctors map[string]types.Type

	output map[string]outputEntry
	order  []string

	opts Options
	log  *slog.Logger
}

func (m *Monomorphizer) logger(rule string) *slog.Logger {
	return m.log.With("rule", rule)
}

// New builds a Monomorphizer over prog's top-level bindings and the
// given constructor table (only consulted when opts.AllowPolymorphicDataArgs).
func New(prog typedir.Program, ctors map[string]types.Type, opts Options) *Monomorphizer {
	input := make(map[string]typedir.Bind, len(prog))
	for _, b := range prog {
		input[b.Name] = b
	}
	return &Monomorphizer{
		input:  input,
		ctors:  ctors,
		output: map[string]outputEntry{},
		opts:   opts,
		log:    ilog.New("mono", opts.DebugRules),
	}
}

// Run is the monomorphizer's entry point: look up main, specialize it
// at Int, and return every binding that specialization reached.
func (m *Monomorphizer) Run() (monoir.Program, tcerr.TypeError) {
	mainBind, ok := m.input["main"]
	if !ok {
		return nil, tcerr.New(tcerr.MissingMain{})
	}

	if _, err := m.morphBind(monoir.TLit{Name: "Int"}, mainBind); err != nil {
		return nil, err
	}

	out := make(monoir.Program, 0, len(m.order))
	for _, name := range m.order {
		entry := m.output[name]
		if !entry.complete {
			panic("unreachable: monomorphization finished with an Incomplete entry for " + name)
		}
		out = append(out, entry.bind)
	}
	return out, nil
}

// morphBind is morphBind(expected, bind) (§4.G): compute the
// specialization mapping, short-circuit on an in-progress or already
// finished specialization (the Incomplete cycle-breaker), else
// specialize the body and erase the formal arguments into nested EAbs.
func (m *Monomorphizer) morphBind(expected monoir.Type, bind typedir.Bind) (string, tcerr.TypeError) {
	m.logger("morphBind").Debug("morphBind", "bind", bind.Name, "expected", expected)

	polys, err := mapTypes(bind.Name, bind.Type, expected)
	if err != nil {
		return "", err
	}

	name := newName(expected, bind.Name)
	if _, ok := m.output[name]; ok {
		return name, nil
	}
	m.output[name] = outputEntry{complete: false}

	argTypes, bodyExpected, err := peelMonoFunArgs(expected, len(bind.Args), bind.Name)
	if err != nil {
		return "", err
	}

	locals := util.NewStringSet(bind.Args)
	bodyExp, err := m.morphExp(bodyExpected, bind.Body, polys, locals)
	if err != nil {
		return "", err
	}

	wrapped := bodyExp
	for i := len(bind.Args) - 1; i >= 0; i-- {
		wrapped = monoir.EAbs{Param: bind.Args[i], Body: wrapped, T: monoir.TFun{Arg: argTypes[i], Res: wrapped.Type()}}
	}

	m.output[name] = outputEntry{complete: true, bind: monoir.Bind{Name: name, Type: expected, Body: wrapped}}
	m.order = append(m.order, name)
	return name, nil
}

// morphExp is morphExp(expected, e) (§4.G), rewriting every node's type
// through mono and resolving EVar against locals or the global table.
func (m *Monomorphizer) morphExp(expected monoir.Type, e typedir.Exp, polys map[string]monoir.Type, locals *set.Set[string]) (monoir.Exp, tcerr.TypeError) {
	switch ex := e.(type) {
	case typedir.ELit:
		return monoir.ELit{Lit: ex.Lit, T: expected}, nil

	case typedir.EVar:
		if locals.Contains(ex.Name) {
			return monoir.EVar{Name: ex.Name, T: expected}, nil
		}
		global, ok := m.input[ex.Name]
		if !ok {
			return nil, tcerr.New(tcerr.UnresolvedName{Name: ex.Name})
		}
		name, err := m.morphBind(expected, global)
		if err != nil {
			return nil, err
		}
		return monoir.EVar{Name: name, T: expected}, nil

	case typedir.EInj:
		return m.morphInj(expected, ex)

	case typedir.EApp:
		t2, err := mono(ex.Arg.Type(), polys, m.opts.AllowPolymorphicDataArgs)
		if err != nil {
			return nil, err
		}
		arg, err := m.morphExp(t2, ex.Arg, polys, locals)
		if err != nil {
			return nil, err
		}
		fun, err := m.morphExp(monoir.TFun{Arg: t2, Res: expected}, ex.Fun, polys, locals)
		if err != nil {
			return nil, err
		}
		return monoir.EApp{Fun: fun, Arg: arg, T: expected}, nil

	case typedir.EAbs:
		locals.Insert(ex.Param)
		tBody, err := mono(ex.Body.Type(), polys, m.opts.AllowPolymorphicDataArgs)
		if err != nil {
			return nil, err
		}
		body, err := m.morphExp(tBody, ex.Body, polys, locals)
		if err != nil {
			return nil, err
		}
		return monoir.EAbs{Param: ex.Param, Body: body, T: expected}, nil

	case typedir.EAdd:
		t1, err := mono(ex.Lhs.Type(), polys, m.opts.AllowPolymorphicDataArgs)
		if err != nil {
			return nil, err
		}
		t2, err := mono(ex.Rhs.Type(), polys, m.opts.AllowPolymorphicDataArgs)
		if err != nil {
			return nil, err
		}
		lhs, err := m.morphExp(t1, ex.Lhs, polys, locals)
		if err != nil {
			return nil, err
		}
		rhs, err := m.morphExp(t2, ex.Rhs, polys, locals)
		if err != nil {
			return nil, err
		}
		return monoir.EAdd{Lhs: lhs, Rhs: rhs, T: expected}, nil

	case typedir.ELet:
		return nil, tcerr.New(tcerr.LetNotSupported{Bind: ex.Bind.Name})

	case typedir.ECase:
		return nil, tcerr.New(tcerr.CaseNotSupported{Bind: "<case>"})

	default:
		panic("unreachable: unknown typedir.Exp")
	}
}

// morphInj specializes a constructor reference -- only implemented
// when Options.AllowPolymorphicDataArgs is set; constructors have no
// body to recurse into, so this only computes the mangled reference,
// it never adds an entry to output.
func (m *Monomorphizer) morphInj(expected monoir.Type, ex typedir.EInj) (monoir.Exp, tcerr.TypeError) {
	if !m.opts.AllowPolymorphicDataArgs {
		return nil, tcerr.New(tcerr.UnsupportedDataMono{Type: expected})
	}
	ctorT, ok := m.ctors[ex.Ctor]
	if !ok {
		return nil, tcerr.New(tcerr.UnresolvedName{Name: ex.Ctor})
	}
	if _, err := mapTypes(ex.Ctor, ctorT, expected); err != nil {
		return nil, err
	}
	return monoir.EVar{Name: newName(expected, ex.Ctor), T: expected}, nil
}

// peelMonoFunArgs peels n TFun layers off t, returning the n argument
// types in order and the remaining (body) type -- the mirror, on
// monoir.Type, of the TFun chain a bind's declared type peels into.
func peelMonoFunArgs(t monoir.Type, n int, bindName string) ([]monoir.Type, monoir.Type, tcerr.TypeError) {
	args := make([]monoir.Type, 0, n)
	cur := t
	for i := 0; i < n; i++ {
		fn, ok := cur.(monoir.TFun)
		if !ok {
			return nil, nil, tcerr.New(tcerr.StructuralTypeMismatch{Bind: bindName})
		}
		args = append(args, fn.Arg)
		cur = fn.Res
	}
	return args, cur, nil
}
