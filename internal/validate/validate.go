// Package validate composes checks that run against a single commit subject line.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/wlame/mkcommit/internal/grammar"
	"github.com/wlame/mkcommit/internal/lint"
)

// Validator checks one line and returns nil when it passes
type Validator interface {
	Validate(line string) error
}

// Func adapts a plain function to the Validator interface
type Func func(line string) error

// Validate calls f(line)
func (f Func) Validate(line string) error {
	return f(line)
}

// Chain runs validators in order and returns the first failure
func Chain(validators ...Validator) Validator {
	return Func(func(line string) error {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if err := v.Validate(line); err != nil {
				return err
			}
		}
		return nil
	})
}

// Grammar validates lines against a compiled grammar
func Grammar(g *grammar.Grammar) Validator {
	return Func(g.Validate)
}

// Line validates line against g. It is the free-function form of g.Validate.
func Line(line string, g *grammar.Grammar) error {
	return g.Validate(line)
}

// Subject returns the part of line after the first colon, with one leading
// space removed. A line without a colon is returned as is.
//
// The first colon of the raw string is used even when the real separator
// comes later (for example inside a scope), matching the historic behavior.
func Subject(line string) string {
	_, rest, found := strings.Cut(line, ":")
	if !found {
		return line
	}
	return strings.TrimPrefix(rest, " ")
}

// SubjectNoLongerThan fails with *lint.LengthExceededError when the subject
// has more than limit characters. A limit of zero or less disables the check.
func SubjectNoLongerThan(limit int) Validator {
	return Func(func(line string) error {
		if limit <= 0 {
			return nil
		}
		subject := Subject(line)
		length := utf8.RuneCountInString(subject)
		if length > limit {
			return &lint.LengthExceededError{
				Subject: subject,
				Length:  length,
				Limit:   limit,
				Example: strings.TrimSuffix(line, subject) + string([]rune(subject)[:limit]),
			}
		}
		return nil
	})
}

// Pattern validates a whole value (not a prefix) against a grammar tree.
// field and example are reported in the *lint.GrammarMismatchError.
func Pattern(field string, node grammar.Node, example string) (Validator, error) {
	re, err := grammar.CompileExact(node)
	if err != nil {
		return nil, &lint.ConfigurationError{Reason: fmt.Sprintf("%s pattern: %v", field, err)}
	}
	return matcher(field, re, example), nil
}

func matcher(field string, re *regexp.Regexp, example string) Validator {
	return Func(func(value string) error {
		if re.MatchString(value) {
			return nil
		}
		return &lint.GrammarMismatchError{
			Field:   field,
			Text:    value,
			Example: example,
		}
	})
}

// Initials validates the fixed-width, alternating-case initials field
func Initials(shape grammar.InitialsShape) (Validator, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return Pattern("initials", shape.Node(), shape.Example())
}

// Ticket validates the ticket field of a preamble
func Ticket(node grammar.Node, example string) (Validator, error) {
	if node == nil {
		node = grammar.DefaultTicketShape
	}
	return Pattern("ticket", node, example)
}
