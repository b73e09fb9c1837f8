// Package checker implements §4.C-§4.F: instantiation, subtyping,
// bidirectional inference/checking, and pattern-match typing, all as
// methods on a single Checker mutually recursing over a shared
// *ctx.Cxt, in line with §9's "pass it explicitly ... rather than as a
// hidden global."
package checker

import (
	"log/slog"

	"github.com/cairn-lang/cairnc/ctx"
	ilog "github.com/cairn-lang/cairnc/internal/log"
)

// Checker is not safe for concurrent use: it owns one *ctx.Cxt and
// mutates it in place across every judgment. Check one program per
// Checker; build a new Checker for another.
type Checker struct {
	Cxt  *ctx.Cxt
	log  *slog.Logger
	opts Options
}

// New returns a Checker over a fresh, empty top-level context.
func New() *Checker {
	return NewWithOptions(Options{})
}

// NewWithOptions is New with explicit Options.
func NewWithOptions(opts Options) *Checker {
	return &Checker{
		Cxt:  ctx.NewCxt(),
		log:  ilog.New("checker", opts.DebugRules),
		opts: opts,
	}
}

func (c *Checker) logger(section string) *slog.Logger {
	return c.log.With("rule", section)
}
