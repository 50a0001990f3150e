package dialect

import (
	"errors"
	"strings"

	"github.com/wlame/mkcommit/internal/grammar"
	"github.com/wlame/mkcommit/internal/keyword"
	"github.com/wlame/mkcommit/internal/lint"
	"github.com/wlame/mkcommit/internal/validate"
)

// Composite layers a bracketed "[initials/ticket]" preamble on top of an inner
// dialect, e.g. "[KrCz/PROJECT-1234] feat: did X".
type Composite struct {
	name     string
	preamble grammar.PreambleSpec
	initials validate.Validator
	ticket   validate.Validator
	inner    Dialect
}

// Compose builds a composite dialect named name
//
// Returns:
//   - *Composite: The composite dialect
//   - error: *lint.ConfigurationError if the preamble shape is invalid
func Compose(name string, preamble grammar.PreambleSpec, inner Dialect) (*Composite, error) {
	initials, err := validate.Initials(preamble.Initials)
	if err != nil {
		return nil, err
	}

	if preamble.TicketExample == "" {
		preamble.TicketExample = grammar.DefaultPreamble().TicketExample
	}
	ticket, err := validate.Ticket(preamble.Ticket, preamble.TicketExample)
	if err != nil {
		return nil, err
	}

	return &Composite{
		name:     name,
		preamble: preamble,
		initials: initials,
		ticket:   ticket,
		inner:    inner,
	}, nil
}

// ValidateTechnica checks line against a one-off composite of preamble and inner
func ValidateTechnica(line string, preamble grammar.PreambleSpec, inner Dialect) error {
	c, err := Compose(TechnicaName, preamble, inner)
	if err != nil {
		return err
	}
	return c.Validate(line)
}

// Name returns the dialect name
func (c *Composite) Name() string {
	return c.name
}

// Keywords returns the vocabulary of the inner dialect
func (c *Composite) Keywords() keyword.Set {
	return c.inner.Keywords()
}

// Preamble returns the preamble spec of the dialect
func (c *Composite) Preamble() grammar.PreambleSpec {
	return c.preamble
}

// Inner returns the dialect that validates the part after the preamble
func (c *Composite) Inner() Dialect {
	return c.inner
}

// Example returns a conforming line, e.g. "[AbCd/PROJECT-1234] feat: did X"
func (c *Composite) Example() string {
	return c.preamble.Example() + " " + c.inner.Example()
}

// Validate checks, in order: closing bracket, "/" separator, initials,
// ticket and finally the trimmed remainder against the inner dialect.
// The first failing check is reported.
func (c *Composite) Validate(line string) error {
	err := c.validate(line)
	if err == nil {
		return nil
	}

	var (
		mismatch *lint.GrammarMismatchError
		length   *lint.LengthExceededError
	)
	switch {
	case errors.As(err, &mismatch) && mismatch.Field == "":
		mismatch.Text = line
		mismatch.Example = c.Example()
	case errors.As(err, &length) && length.Example != "":
		// The inner example lacks the preamble, take it from the line
		head, _, _ := strings.Cut(line, "]")
		length.Example = head + "] " + length.Example
	}
	return lint.Attribute(err, c.name)
}

func (c *Composite) validate(line string) error {
	if m, ok := c.inner.(mergeExempter); ok && m.IsMerge(line) {
		return nil
	}

	head, rest, found := strings.Cut(line, "]")
	if !found {
		return &lint.MalformedPreambleError{Text: line, Reason: `could not split on "]"`}
	}

	interior, bracketed := strings.CutPrefix(strings.TrimSpace(head), "[")
	if !bracketed {
		return &lint.MalformedPreambleError{Text: line, Reason: `preamble must start with "["`}
	}

	first, second, found := strings.Cut(interior, "/")
	if !found {
		return &lint.MalformedPreambleError{Text: line, Reason: `could not split the preamble on "/"`}
	}

	initials, ticket := first, second
	if c.preamble.Order == grammar.TicketFirst {
		initials, ticket = second, first
	}

	if err := c.initials.Validate(initials); err != nil {
		return err
	}
	if err := c.ticket.Validate(ticket); err != nil {
		return err
	}
	return c.inner.Validate(strings.TrimSpace(rest))
}
