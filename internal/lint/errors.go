// Package lint defines the failure kinds reported while checking commit messages.
// Every check in this module is deterministic, so a failure is reported to the
// caller and never retried. The caller decides whether to abort a commit,
// re-prompt, or reject a hook invocation.
package lint

import (
	"errors"
	"fmt"
)

// Sentinel errors used to classify failures with errors.Is
var (
	// ErrConfiguration marks an invalid dialect definition (e.g. empty keyword set)
	ErrConfiguration = errors.New("invalid dialect configuration")

	// ErrMalformedPreamble marks a bracketed preamble that cannot be split
	ErrMalformedPreamble = errors.New("malformed preamble")

	// ErrGrammarMismatch marks a line that does not match a dialect grammar
	ErrGrammarMismatch = errors.New("grammar mismatch")

	// ErrLengthExceeded marks a subject that is longer than allowed
	ErrLengthExceeded = errors.New("subject too long")
)

// ConfigurationError is returned when a keyword set or grammar definition is invalid.
// It is raised when dialects are built, never while validating a message.
type ConfigurationError struct {
	// Reason describes what is wrong with the definition
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) work
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// MalformedPreambleError is returned when a composite dialect cannot find
// the closing bracket or the "/" separator of its preamble.
type MalformedPreambleError struct {
	Dialect string
	Text    string
	Reason  string
}

func (e *MalformedPreambleError) Error() string {
	return fmt.Sprintf("%s: malformed preamble in %q: %s", dialectLabel(e.Dialect), e.Text, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedPreamble) work
func (e *MalformedPreambleError) Is(target error) bool {
	return target == ErrMalformedPreamble
}

// GrammarMismatchError is returned when a line (or one field of a line) does
// not conform to a dialect grammar. Example always holds a conforming value.
type GrammarMismatchError struct {
	Dialect string

	// Field names the checked part of the line ("initials", "ticket").
	// It is empty when the whole line was checked.
	Field string

	Text    string
	Example string
}

func (e *GrammarMismatchError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s %q does not match the expected shape (e.g. %q)",
			dialectLabel(e.Dialect), e.Field, e.Text, e.Example)
	}
	return fmt.Sprintf("%s: %q is not a valid commit message (e.g. %q)",
		dialectLabel(e.Dialect), e.Text, e.Example)
}

// Is makes errors.Is(err, ErrGrammarMismatch) work
func (e *GrammarMismatchError) Is(target error) bool {
	return target == ErrGrammarMismatch
}

// LengthExceededError is returned when the subject part of a line is too long
type LengthExceededError struct {
	Dialect string
	Subject string
	Length  int
	Limit   int

	// Example is the line with its subject cut down to Limit characters
	Example string
}

func (e *LengthExceededError) Error() string {
	msg := fmt.Sprintf("%s: subject is %d characters long, maximum is %d",
		dialectLabel(e.Dialect), e.Length, e.Limit)
	if e.Example != "" {
		msg += fmt.Sprintf(" (e.g. %q)", e.Example)
	}
	return msg
}

// Is makes errors.Is(err, ErrLengthExceeded) work
func (e *LengthExceededError) Is(target error) bool {
	return target == ErrLengthExceeded
}

// Attribute stamps the dialect name onto a failure, replacing the name of any
// nested dialect that produced it. Errors of other types are returned unchanged.
func Attribute(err error, dialect string) error {
	var (
		mismatch  *GrammarMismatchError
		length    *LengthExceededError
		malformed *MalformedPreambleError
	)
	switch {
	case errors.As(err, &mismatch):
		mismatch.Dialect = dialect
	case errors.As(err, &length):
		length.Dialect = dialect
	case errors.As(err, &malformed):
		malformed.Dialect = dialect
	}
	return err
}

func dialectLabel(name string) string {
	if name == "" {
		return "commit"
	}
	return name
}
