package log

import (
	"context"
	"log/slog"
	"os"
	"slices"
)

// Opts is the slog.HandlerOptions every judgment-tracing logger in
// this module shares: source-tagged, debug-level, and timestamp-free
// (a repeatable trace of a single Checker/Monomorphizer run does not
// need wall-clock noise in it).
var Opts = &slog.HandlerOptions{
	AddSource: true,
	Level:     slog.LevelDebug,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

// New builds a logger for one Checker or Monomorphizer run, tagged
// with component ("checker", "mono") and gated by rules: a debug/info
// record only reaches stdout when a later .With("rule", name) call
// tagged it with one of rules (checker.go's and monomorphizer.go's
// per-judgment loggers all do this -- "infer", "subtype",
// "instantiate", "morphBind", and so on). Warnings and above always
// pass through regardless of rules.
//
// A nil or empty rules mutes every debug/info record: tracing is
// opt-in per run via Options.DebugRules, not a source-level switch a
// caller has to edit and recompile to flip.
func New(component string, rules []string) *slog.Logger {
	handler := &ruleFilter{underlying: slog.NewTextHandler(os.Stdout, Opts), rules: rules}
	return slog.New(handler).With("component", component)
}

var _ slog.Handler = &ruleFilter{}

// ruleFilter drops debug/info records whose "rule" attribute -- bound
// via Logger.With, not passed to an individual Debug/Info call -- is
// not in rules. Matching has to happen in WithAttrs rather than
// Handle, because slog hands Handle only the attributes a specific
// call added, not the ones already bound onto the logger.
type ruleFilter struct {
	underlying slog.Handler
	rules      []string
	matched    bool
}

func (f *ruleFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.underlying.Enabled(ctx, level)
}

func (f *ruleFilter) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn || f.matched {
		return f.underlying.Handle(ctx, record)
	}
	return nil
}

func (f *ruleFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	matched := f.matched
	for _, attr := range attrs {
		if attr.Key == "rule" && slices.Contains(f.rules, attr.Value.String()) {
			matched = true
		}
	}
	return &ruleFilter{underlying: f.underlying.WithAttrs(attrs), rules: f.rules, matched: matched}
}

func (f *ruleFilter) WithGroup(name string) slog.Handler {
	return &ruleFilter{underlying: f.underlying.WithGroup(name), rules: f.rules, matched: f.matched}
}
