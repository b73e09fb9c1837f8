// Package tcerr is the closed, tagged error hierarchy surfaced by the
// checker and the monomorphizer, modeled on the teacher's frontend/ilerr.
package tcerr

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their capture site when printed.
const enableDebugErrorPrinting = true

// Code identifies the kind of a TypeError without inspecting its payload.
type Code int

const (
	None Code = iota
	CodeUnboundTypeVar
	CodeUnknownExistential
	CodeUnknownConstructor
	CodeUnresolvedName
	CodeTypeMismatch
	CodeNotAFunction
	CodeArityMismatch
	CodeAmbiguousPolymorphism
	CodeBadDataDefinition
	CodeUnboundDataParams
	CodeStructuralTypeMismatch
	CodeUnmappedTypeVariable
	CodeMissingMain
	CodeLetNotSupported
	CodeCaseNotSupported
	CodeUnsupportedDataMono
)

// TypeError is the interface every error kind in this package implements.
type TypeError interface {
	error
	Code() Code

	withStack([]byte) TypeError
	getStack() []byte
}

// New stamps err with its capture site and returns it as a TypeError.
func New[E TypeError](err E) TypeError {
	return err.withStack(debug.Stack())
}

// FormatWithCode renders an (Ennn) prefixed message, including the
// capture site when debug printing is enabled.
func FormatWithCode(e TypeError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		lines := strings.Split(string(e.getStack()), "\n")
		site := ""
		if len(lines) > 6 {
			site = strings.TrimSpace(lines[6])
		}
		return fmt.Sprintf("%s: (E%03d) %s", site, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// Errors accumulates TypeError values when the driver chooses to
// collect errors across bindings instead of failing fast.
type Errors struct {
	errs []TypeError
}

func (r *Errors) With(err ...TypeError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Errors() []TypeError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	return r != nil && len(r.errs) > 0
}

func (r *Errors) LogValue() slog.Value {
	var attrs []slog.Attr
	for i, e := range r.Errors() {
		attrs = append(attrs, slog.Attr{
			Key:   fmt.Sprint("e", i),
			Value: slog.StringValue(FormatWithCode(e)),
		})
	}
	return slog.GroupValue(attrs...)
}
