package grammar

import (
	"fmt"
	"strings"

	"github.com/wlame/mkcommit/internal/lint"
)

// Order decides which preamble field comes first inside the brackets
type Order int

const (
	// InitialsFirst reads "[AbCd/PROJECT-1234]"
	InitialsFirst Order = iota

	// TicketFirst reads "[PROJECT-1234/AbCd]"
	TicketFirst
)

// String returns the configuration spelling of the order
func (o Order) String() string {
	switch o {
	case InitialsFirst:
		return "initials-first"
	case TicketFirst:
		return "ticket-first"
	default:
		return "unknown"
	}
}

// ParseOrder parses "initials-first" or "ticket-first"
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "initials-first":
		return InitialsFirst, nil
	case "ticket-first":
		return TicketFirst, nil
	default:
		return InitialsFirst, &lint.ConfigurationError{
			Reason: fmt.Sprintf("invalid preamble order %q (must be initials-first or ticket-first)", s),
		}
	}
}

// InitialsShape is the fixed-width initials format: FirstNameChars letters of
// the first name followed by LastNameChars letters of the last name, each part
// starting with one uppercase letter followed by lowercase ones ("KrCz").
type InitialsShape struct {
	FirstNameChars int
	LastNameChars  int
}

// Validate checks that both parts have at least one character
func (s InitialsShape) Validate() error {
	if s.FirstNameChars < 1 || s.LastNameChars < 1 {
		return &lint.ConfigurationError{
			Reason: fmt.Sprintf("initials need at least one character per name, got %d/%d",
				s.FirstNameChars, s.LastNameChars),
		}
	}
	return nil
}

// Node returns the grammar tree for the shape
func (s InitialsShape) Node() Node {
	return Seq{
		Upper, Exactly(Lower, s.FirstNameChars-1),
		Upper, Exactly(Lower, s.LastNameChars-1),
	}
}

// Example returns conforming initials, "AbCd" for a 2/2 shape
func (s InitialsShape) Example() string {
	return "A" + strings.Repeat("b", max(s.FirstNameChars-1, 0)) +
		"C" + strings.Repeat("d", max(s.LastNameChars-1, 0))
}

// Sentinel ticket values meaning "no ticket"
const (
	NoTicket     = "-"
	NoTicketLong = "---"
)

// DefaultTicketShape accepts "PROJECTNAME-1234" or one of the no-ticket sentinels
var DefaultTicketShape Node = Alt{
	Seq{OneOrMore(WordChar), Literal("-"), OneOrMore(Digit)},
	Literal(NoTicketLong),
	Literal(NoTicket),
}

// ProjectTicketShape accepts "<project>-<number>" for the given project keys
// only, plus the no-ticket sentinels. With no projects it is DefaultTicketShape.
func ProjectTicketShape(projects ...string) Node {
	if len(projects) == 0 {
		return DefaultTicketShape
	}
	keys := make(Alt, len(projects))
	for i, p := range projects {
		keys[i] = Literal(p)
	}
	return Alt{
		Seq{keys, Literal("-"), OneOrMore(Digit)},
		Literal(NoTicketLong),
		Literal(NoTicket),
	}
}

// PreambleSpec describes the "[initials/ticket]" prefix of composite dialects
type PreambleSpec struct {
	Initials InitialsShape

	// Ticket is the tree the ticket field must match completely
	Ticket Node

	// TicketExample is shown when the ticket does not match
	TicketExample string

	Order Order
}

// DefaultPreamble returns the 2/2 initials, "PROJECT-1234" ticket, initials-first preamble
func DefaultPreamble() PreambleSpec {
	return PreambleSpec{
		Initials:      InitialsShape{FirstNameChars: 2, LastNameChars: 2},
		Ticket:        DefaultTicketShape,
		TicketExample: "PROJECT-1234",
		Order:         InitialsFirst,
	}
}

// Wrap puts initials and ticket into brackets in the configured order
func (p PreambleSpec) Wrap(initials, ticket string) string {
	if p.Order == TicketFirst {
		return "[" + ticket + "/" + initials + "]"
	}
	return "[" + initials + "/" + ticket + "]"
}

// Example returns a conforming preamble, e.g. "[AbCd/PROJECT-1234]"
func (p PreambleSpec) Example() string {
	ticket := p.TicketExample
	if ticket == "" {
		ticket = "PROJECT-1234"
	}
	return p.Wrap(p.Initials.Example(), ticket)
}
