package checker

import "github.com/cairn-lang/cairnc/tcerr"

// Options configures a Checker, passed explicitly at construction
// rather than read from globals or files -- the core has no file/CLI
// configuration surface of its own.
type Options struct {
	// AllowPolymorphicDataArgs mirrors mono.Options.AllowPolymorphicDataArgs,
	// which decides whether the monomorphizer's mono(TData) specializes a
	// data type at all; with it off, every TData is rejected with an
	// explicit UnsupportedDataMono error, and a TAll is rejected either
	// way. The checker itself does not read this field, and it is not
	// passed on to the monomorphizer.
	AllowPolymorphicDataArgs bool

	// OnDiagnostic, if set, is called with every non-fatal TypeError a
	// driver chooses to keep processing past (CheckProgram itself is
	// fail-fast per binding and never calls this; it exists for
	// callers -- e.g. a future language server -- that want to keep
	// going after a single bad binding to report more than one error
	// per run).
	OnDiagnostic func(tcerr.TypeError)

	// DebugRules lists which judgments ("infer", "check", "subtype",
	// "instantiate", "applyInfer") should have their trace records
	// actually reach stdout. Nil (the zero value) traces nothing; a
	// caller chasing down a specific subtype or instantiation bug sets
	// just that rule rather than drowning in every judgment's output.
	DebugRules []string
}

func (o Options) diagnose(err tcerr.TypeError) {
	if o.OnDiagnostic != nil && err != nil {
		o.OnDiagnostic(err)
	}
}
