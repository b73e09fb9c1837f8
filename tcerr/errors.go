package tcerr

import "fmt"

// Unclassified wraps an error surfaced by an earlier, out-of-scope
// pipeline stage (lexing, parsing, renaming, desugaring) that the core
// only propagates without reinterpreting.
type Unclassified struct {
	From  error
	stack []byte
}

func (e Unclassified) Error() string           { return fmt.Sprintf("unclassified error: %v", e.From) }
func (e Unclassified) Code() Code               { return None }
func (e Unclassified) getStack() []byte         { return e.stack }
func (e Unclassified) withStack(s []byte) TypeError { e.stack = s; return e }

// UnboundTypeVar: TVar(α) has no EnvTVar(α) in scope.
type UnboundTypeVar struct {
	Name  string
	stack []byte
}

func (e UnboundTypeVar) Error() string           { return fmt.Sprintf("unbound type variable '%s'", e.Name) }
func (e UnboundTypeVar) Code() Code               { return CodeUnboundTypeVar }
func (e UnboundTypeVar) getStack() []byte         { return e.stack }
func (e UnboundTypeVar) withStack(s []byte) TypeError { e.stack = s; return e }

// UnknownExistential: TEVar(ά) has neither EnvTEVar(ά) nor EnvSolved(ά, _) in scope.
type UnknownExistential struct {
	ID    int
	stack []byte
}

func (e UnknownExistential) Error() string {
	return fmt.Sprintf("unknown existential variable '%d'", e.ID)
}
func (e UnknownExistential) Code() Code               { return CodeUnknownExistential }
func (e UnknownExistential) getStack() []byte         { return e.stack }
func (e UnknownExistential) withStack(s []byte) TypeError { e.stack = s; return e }

// UnknownConstructor: an EInj/PEnum/PInj references a constructor with
// no entry in data_injs.
type UnknownConstructor struct {
	Name  string
	stack []byte
}

func (e UnknownConstructor) Error() string {
	return fmt.Sprintf("unknown constructor '%s'", e.Name)
}
func (e UnknownConstructor) Code() Code               { return CodeUnknownConstructor }
func (e UnknownConstructor) getStack() []byte         { return e.stack }
func (e UnknownConstructor) withStack(s []byte) TypeError { e.stack = s; return e }

// UnresolvedName: the monomorphizer's EId(x) does not name an input bind
// and is not a local.
type UnresolvedName struct {
	Name  string
	stack []byte
}

func (e UnresolvedName) Error() string           { return fmt.Sprintf("unresolved name '%s'", e.Name) }
func (e UnresolvedName) Code() Code               { return CodeUnresolvedName }
func (e UnresolvedName) getStack() []byte         { return e.stack }
func (e UnresolvedName) withStack(s []byte) TypeError { e.stack = s; return e }

// TypeMismatch: A is not a subtype of B.
type TypeMismatch struct {
	A, B  fmt.Stringer
	stack []byte
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: expected '%v' but found '%v'", e.B, e.A)
}
func (e TypeMismatch) Code() Code               { return CodeTypeMismatch }
func (e TypeMismatch) getStack() []byte         { return e.stack }
func (e TypeMismatch) withStack(s []byte) TypeError { e.stack = s; return e }

// NotAFunction: applyInfer was asked to apply a non-function type to an argument.
type NotAFunction struct {
	A     fmt.Stringer
	stack []byte
}

func (e NotAFunction) Error() string           { return fmt.Sprintf("'%v' is not a function", e.A) }
func (e NotAFunction) Code() Code               { return CodeNotAFunction }
func (e NotAFunction) getStack() []byte         { return e.stack }
func (e NotAFunction) withStack(s []byte) TypeError { e.stack = s; return e }

// ArityMismatch: a PInj pattern supplied a different number of
// sub-patterns than the constructor's declared arity.
type ArityMismatch struct {
	Constructor    string
	Expected, Got  int
	stack          []byte
}

func (e ArityMismatch) Error() string {
	return fmt.Sprintf("constructor '%s' expects %d argument(s), got %d", e.Constructor, e.Expected, e.Got)
}
func (e ArityMismatch) Code() Code               { return CodeArityMismatch }
func (e ArityMismatch) getStack() []byte         { return e.stack }
func (e ArityMismatch) withStack(s []byte) TypeError { e.stack = s; return e }

// AmbiguousPolymorphism: an unannotated top-level binding left unsolved
// existentials in the context after inference.
type AmbiguousPolymorphism struct {
	Bind  string
	stack []byte
}

func (e AmbiguousPolymorphism) Error() string {
	return fmt.Sprintf("ambiguous polymorphism in binding '%s': add a type signature", e.Bind)
}
func (e AmbiguousPolymorphism) Code() Code               { return CodeAmbiguousPolymorphism }
func (e AmbiguousPolymorphism) getStack() []byte         { return e.stack }
func (e AmbiguousPolymorphism) withStack(s []byte) TypeError { e.stack = s; return e }

// BadDataDefinition: a data declaration's head type is not of the shape
// TAll*(TData name [TVar ...]) with distinct bound type variables.
type BadDataDefinition struct {
	TypeName string
	Reason   string
	stack    []byte
}

func (e BadDataDefinition) Error() string {
	return fmt.Sprintf("malformed data definition '%s': %s", e.TypeName, e.Reason)
}
func (e BadDataDefinition) Code() Code               { return CodeBadDataDefinition }
func (e BadDataDefinition) getStack() []byte         { return e.stack }
func (e BadDataDefinition) withStack(s []byte) TypeError { e.stack = s; return e }

// UnboundDataParams: an injection's declared type mentions a type
// variable that the enclosing data declaration did not bind.
type UnboundDataParams struct {
	Constructor string
	Var         string
	stack       []byte
}

func (e UnboundDataParams) Error() string {
	return fmt.Sprintf("constructor '%s' uses unbound type parameter '%s'", e.Constructor, e.Var)
}
func (e UnboundDataParams) Code() Code               { return CodeUnboundDataParams }
func (e UnboundDataParams) getStack() []byte         { return e.stack }
func (e UnboundDataParams) withStack(s []byte) TypeError { e.stack = s; return e }

// StructuralTypeMismatch: morphBind's structural pairing of a
// declared (possibly polymorphic) type against a concrete expected type
// failed -- an internal bug, since the checker should never produce
// typed IR whose shape disagrees with its own declared type.
type StructuralTypeMismatch struct {
	Bind  string
	stack []byte
}

func (e StructuralTypeMismatch) Error() string {
	return fmt.Sprintf("internal error: structural type mismatch specializing '%s'", e.Bind)
}
func (e StructuralTypeMismatch) Code() Code               { return CodeStructuralTypeMismatch }
func (e StructuralTypeMismatch) getStack() []byte         { return e.stack }
func (e StructuralTypeMismatch) withStack(s []byte) TypeError { e.stack = s; return e }

// UnmappedTypeVariable: mono(t) encountered a TVar with no entry in the
// current specialization mapping -- an internal bug from an earlier stage.
type UnmappedTypeVariable struct {
	Var   string
	stack []byte
}

func (e UnmappedTypeVariable) Error() string {
	return fmt.Sprintf("internal error: unmapped type variable '%s'", e.Var)
}
func (e UnmappedTypeVariable) Code() Code               { return CodeUnmappedTypeVariable }
func (e UnmappedTypeVariable) getStack() []byte         { return e.stack }
func (e UnmappedTypeVariable) withStack(s []byte) TypeError { e.stack = s; return e }

// MissingMain: the monomorphizer's input has no binding named "main".
type MissingMain struct {
	stack []byte
}

func (e MissingMain) Error() string           { return "program has no 'main' binding" }
func (e MissingMain) Code() Code               { return CodeMissingMain }
func (e MissingMain) getStack() []byte         { return e.stack }
func (e MissingMain) withStack(s []byte) TypeError { e.stack = s; return e }

// LetNotSupported: the monomorphizer found a nested ELet, which
// lambda-lifting is expected to have removed.
type LetNotSupported struct {
	Bind  string
	stack []byte
}

func (e LetNotSupported) Error() string {
	return fmt.Sprintf("nested let in '%s' is not supported by the monomorphizer; expected lambda lifting to remove it", e.Bind)
}
func (e LetNotSupported) Code() Code               { return CodeLetNotSupported }
func (e LetNotSupported) getStack() []byte         { return e.stack }
func (e LetNotSupported) withStack(s []byte) TypeError { e.stack = s; return e }

// CaseNotSupported: the monomorphizer found a pattern match in '%s',
// which it does not decompose -- it specializes function application
// and arithmetic only, symmetric to LetNotSupported.
type CaseNotSupported struct {
	Bind  string
	stack []byte
}

func (e CaseNotSupported) Error() string {
	return fmt.Sprintf("case expression in '%s' is not supported by the monomorphizer", e.Bind)
}
func (e CaseNotSupported) Code() Code               { return CodeCaseNotSupported }
func (e CaseNotSupported) getStack() []byte         { return e.stack }
func (e CaseNotSupported) withStack(s []byte) TypeError { e.stack = s; return e }

// UnsupportedDataMono: mono(t) hit a TData while
// Options.AllowPolymorphicDataArgs is off, or a TAll, which the core
// monomorphizer never specializes.
type UnsupportedDataMono struct {
	Type  fmt.Stringer
	stack []byte
}

func (e UnsupportedDataMono) Error() string {
	return fmt.Sprintf("monomorphization of data type '%v' is not supported (AllowPolymorphicDataArgs is off)", e.Type)
}
func (e UnsupportedDataMono) Code() Code               { return CodeUnsupportedDataMono }
func (e UnsupportedDataMono) getStack() []byte         { return e.stack }
func (e UnsupportedDataMono) withStack(s []byte) TypeError { e.stack = s; return e }
