// Package dialect turns grammar specs into named commit-message dialects.
//
// A dialect is a concrete value implementing Dialect. Dialects are registered
// explicitly in a Registry; nothing is discovered at runtime.
package dialect

import (
	"github.com/wlame/mkcommit/internal/grammar"
	"github.com/wlame/mkcommit/internal/keyword"
	"github.com/wlame/mkcommit/internal/lint"
	"github.com/wlame/mkcommit/internal/validate"
)

// Dialect validates commit subject lines against one named grammar
type Dialect interface {
	// Name identifies the dialect ("semantic", "conventional", ...)
	Name() string

	// Keywords returns the type tokens the dialect recognizes
	Keywords() keyword.Set

	// Validate returns nil when line conforms, or a lint error naming the dialect
	Validate(line string) error

	// Example returns a line that conforms to the dialect
	Example() string
}

// mergeExempter is implemented by dialects that accept merge messages as is
type mergeExempter interface {
	IsMerge(line string) bool
}

// Grammar is a dialect backed by one compiled grammar plus secondary checks
type Grammar struct {
	grammar *grammar.Grammar
	checks  validate.Validator
}

// New compiles spec into a dialect. The checks run after the grammar matched,
// in order (e.g. validate.SubjectNoLongerThan).
//
// When spec.Preamble is set the result is a *Composite that validates the
// bracketed preamble first and the rest of the line with the grammar.
func New(spec grammar.Spec, checks ...validate.Validator) (Dialect, error) {
	preamble := spec.Preamble
	spec.Preamble = nil

	g, err := grammar.Compile(spec)
	if err != nil {
		return nil, err
	}
	inner := &Grammar{
		grammar: g,
		checks:  validate.Chain(checks...),
	}

	if preamble == nil {
		return inner, nil
	}
	return Compose(spec.Name, *preamble, inner)
}

// Name returns the dialect name
func (d *Grammar) Name() string {
	return d.grammar.Name()
}

// Keywords returns the dialect vocabulary
func (d *Grammar) Keywords() keyword.Set {
	return d.grammar.Spec().Keywords
}

// Spec returns the grammar spec the dialect was built from
func (d *Grammar) Spec() grammar.Spec {
	return d.grammar.Spec()
}

// Pattern returns the compiled pattern, mostly useful for debugging
func (d *Grammar) Pattern() string {
	return d.grammar.Pattern()
}

// IsMerge reports whether line is an exempted merge message
func (d *Grammar) IsMerge(line string) bool {
	return d.grammar.IsMerge(line)
}

// Validate runs the grammar, then the secondary checks.
// Merge messages exempted by the grammar skip the secondary checks.
func (d *Grammar) Validate(line string) error {
	if err := d.grammar.Validate(line); err != nil {
		return lint.Attribute(err, d.Name())
	}
	if d.IsMerge(line) {
		return nil
	}
	if err := d.checks.Validate(line); err != nil {
		return lint.Attribute(err, d.Name())
	}
	return nil
}

// Example returns a conforming line, e.g. "feat: did X"
func (d *Grammar) Example() string {
	return d.grammar.Example()
}
