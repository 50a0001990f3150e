// Package grammar compiles dialect definitions into line matchers.
//
// A grammar is described as a small tree of nodes (literals, character
// classes, sequences, alternations, optional parts and repetitions) and
// rendered to an RE2 pattern exactly once. Literals are escaped when they are
// rendered, so keyword tokens never need manual quoting.
package grammar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Node is one element of a grammar tree
type Node interface {
	render(b *strings.Builder)
}

// Literal matches its text verbatim
type Literal string

// Class is a single-character class in RE2 syntax, e.g. `[^,\s()]` or `\p{Lu}`.
// It is rendered as is.
type Class string

// Seq matches its children one after another
type Seq []Node

// Alt matches the first child that matches, trying children in order
type Alt []Node

// Optional matches its child zero or one time
type Optional struct {
	Node Node
}

// Repeat matches its child between Min and Max times.
// A negative Max means there is no upper bound.
type Repeat struct {
	Node Node
	Min  int
	Max  int
}

// Character classes shared by the built-in grammars
const (
	AnyChar   Class = `[^\n]`
	NoComma   Class = `[^,\n]`
	ScopeChar Class = `[^,\s()]`
	Upper     Class = `\p{Lu}`
	Lower     Class = `\p{Ll}`
	WordChar  Class = `[\p{L}\p{N}_]`
	Digit     Class = `[0-9]`
)

// OneOrMore is shorthand for Repeat{Node: n, Min: 1, Max: -1}
func OneOrMore(n Node) Repeat {
	return Repeat{Node: n, Min: 1, Max: -1}
}

// ZeroOrMore is shorthand for Repeat{Node: n, Min: 0, Max: -1}
func ZeroOrMore(n Node) Repeat {
	return Repeat{Node: n, Min: 0, Max: -1}
}

// Exactly is shorthand for Repeat{Node: n, Min: count, Max: count}
func Exactly(n Node, count int) Repeat {
	return Repeat{Node: n, Min: count, Max: count}
}

func (l Literal) render(b *strings.Builder) {
	b.WriteString(regexp.QuoteMeta(string(l)))
}

func (c Class) render(b *strings.Builder) {
	b.WriteString(string(c))
}

func (s Seq) render(b *strings.Builder) {
	for _, n := range s {
		n.render(b)
	}
}

func (a Alt) render(b *strings.Builder) {
	b.WriteString("(?:")
	for i, n := range a {
		if i > 0 {
			b.WriteByte('|')
		}
		n.render(b)
	}
	b.WriteByte(')')
}

func (o Optional) render(b *strings.Builder) {
	group(b, o.Node)
	b.WriteByte('?')
}

func (r Repeat) render(b *strings.Builder) {
	if r.Max == 0 {
		// {0} matches nothing, leave it out entirely
		return
	}
	group(b, r.Node)
	switch {
	case r.Min == 0 && r.Max < 0:
		b.WriteByte('*')
	case r.Min == 1 && r.Max < 0:
		b.WriteByte('+')
	case r.Max < 0:
		b.WriteString("{" + strconv.Itoa(r.Min) + ",}")
	case r.Min == r.Max:
		if r.Min != 1 {
			b.WriteString("{" + strconv.Itoa(r.Min) + "}")
		}
	default:
		b.WriteString(fmt.Sprintf("{%d,%d}", r.Min, r.Max))
	}
}

// group wraps n in a non-capturing group unless it is a single character class
func group(b *strings.Builder, n Node) {
	if c, ok := n.(Class); ok {
		c.render(b)
		return
	}
	b.WriteString("(?:")
	n.render(b)
	b.WriteByte(')')
}

// Render returns the RE2 fragment for a node
func Render(n Node) string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

// CompileExact compiles n so that it must match the whole input
func CompileExact(n Node) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + Render(n) + `)$`)
}
