// Package message models a commit message and builds subject lines from parts.
package message

import (
	"strings"

	"github.com/wlame/mkcommit/internal/grammar"
	"github.com/wlame/mkcommit/internal/keyword"
	"github.com/wlame/mkcommit/internal/trailer"
)

// DefaultSeparator separates the first line from the body
const DefaultSeparator = "\n\n"

// CommitMessage is a first line plus an optional free-text body
type CommitMessage struct {
	FirstLine string
	Body      string
}

// Make joins first line and body with sep. Without a body only the first line is returned.
func (m CommitMessage) Make(sep string) string {
	if m.Body == "" {
		return m.FirstLine
	}
	return m.FirstLine + sep + m.Body
}

// String renders the message with DefaultSeparator
func (m CommitMessage) String() string {
	return m.Make(DefaultSeparator)
}

// Parse splits raw text (e.g. the file a commit-msg hook receives) into the
// first line and the body. Leading "#" comment lines are skipped; the body is
// every line after the first one, unchanged.
func Parse(raw string) CommitMessage {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	first := 0
	for first < len(lines) && strings.HasPrefix(lines[first], "#") {
		first++
	}
	if first == len(lines) {
		return CommitMessage{}
	}

	return CommitMessage{
		FirstLine: lines[first],
		Body:      strings.Join(lines[first+1:], "\n"),
	}
}

// Header holds the parts of a subject line: "feat, fix(scope)!: subject"
type Header struct {
	Keywords []string
	Scope    string
	Breaking bool
	Subject  string

	// NoSpace joins keywords as "feat,fix" instead of "feat, fix"
	NoSpace bool
}

// String renders the header
func (h Header) String() string {
	var b strings.Builder
	b.WriteString(keyword.Join(h.Keywords, h.NoSpace))
	if h.Scope != "" {
		b.WriteString("(" + h.Scope + ")")
	}
	if h.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(h.Subject)
	return b.String()
}

// ApplyBreaking records a breaking change. Without a description only the "!"
// marker is set; with one, a BREAKING CHANGE trailer is attached to body instead.
func ApplyBreaking(h *Header, description, body string) string {
	if description == "" {
		h.Breaking = true
		return body
	}
	return trailer.Attach(body, trailer.BreakingChange(description))
}

// Preamble holds the fields of a "[initials/ticket]" prefix
type Preamble struct {
	Initials string
	Ticket   string
}

// Wrap prefixes header with the bracketed preamble, in the field order of layout
func (p Preamble) Wrap(layout grammar.PreambleSpec, header string) string {
	ticket := p.Ticket
	if ticket == "" {
		ticket = grammar.NoTicket
	}
	return layout.Wrap(p.Initials, ticket) + " " + header
}

// Initials derives initials from a full name: the first firstChars letters of
// the first word and the first lastChars letters of the last word.
// "Krzysztof Czarnecki" with 2/2 gives "KrCz".
func Initials(fullName string, firstChars, lastChars int) string {
	words := strings.Fields(fullName)
	if len(words) == 0 {
		return ""
	}
	return prefix(words[0], firstChars) + prefix(words[len(words)-1], lastChars)
}

func prefix(word string, n int) string {
	runes := []rune(word)
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}
