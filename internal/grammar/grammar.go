package grammar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wlame/mkcommit/internal/keyword"
	"github.com/wlame/mkcommit/internal/lint"
)

// MergePrefix starts the default message git writes for merge commits
const MergePrefix = "Merge branch"

// Spec describes a dialect grammar. It is built once and treated as read-only.
type Spec struct {
	// Name identifies the dialect in error messages
	Name string

	// Keywords is the vocabulary of type tokens
	Keywords keyword.Set

	// AllowScope permits "feat(scope): ..."
	AllowScope bool

	// AllowBreaking permits the "!" marker: "feat!: ..."
	AllowBreaking bool

	// AllowMultipleKeywords permits "feat, fix: ..." and "feat,fix: ..."
	AllowMultipleKeywords bool

	// ExemptMergeCommits accepts any line starting with "Merge branch"
	ExemptMergeCommits bool

	// Preamble, when set, requires a "[initials/ticket]" prefix in front of
	// the line. It is applied by composite dialects, not by Compile.
	Preamble *PreambleSpec
}

// Grammar is a compiled Spec. It is safe for concurrent use.
type Grammar struct {
	spec    Spec
	tree    Node
	pattern *regexp.Regexp
}

// Compile builds the matcher for one commit subject line.
// The whole line must match, so the subject runs to the end of the line.
//
// Returns:
//   - *Grammar: The compiled grammar
//   - error: *lint.ConfigurationError if the keyword set is empty
func Compile(spec Spec) (*Grammar, error) {
	if spec.Keywords.Len() == 0 {
		return nil, &lint.ConfigurationError{Reason: fmt.Sprintf("dialect %q has no keywords", spec.Name)}
	}

	tree := spec.Tree()
	pattern, err := CompileExact(tree)
	if err != nil {
		// Every literal is escaped, so this only happens on a broken Class
		return nil, &lint.ConfigurationError{Reason: fmt.Sprintf("dialect %q: %v", spec.Name, err)}
	}

	return &Grammar{
		spec:    spec,
		tree:    tree,
		pattern: pattern,
	}, nil
}

// Tree returns the grammar tree for the spec:
//
//	line           := mergeException | typeClause ": " subject
//	typeClause     := repeatedClause* finalClause
//	finalClause    := TOKEN scope? breaking?
//	repeatedClause := TOKEN scope? breaking? "," " "?
func (s Spec) Tree() Node {
	clause := Seq{tokenAlternation(s.Keywords.Tokens())}
	if s.AllowScope {
		clause = append(clause, Optional{Seq{Literal("("), OneOrMore(ScopeChar), Literal(")")}})
	}
	if s.AllowBreaking {
		clause = append(clause, Optional{Literal("!")})
	}

	var typeClause Node = clause
	subject := AnyChar
	if s.AllowMultipleKeywords {
		repeated := Seq{clause, Literal(","), Optional{Literal(" ")}}
		typeClause = Seq{ZeroOrMore(repeated), clause}
		// Commas belong to the type clause; a subject may not start a new one
		subject = NoComma
	}

	line := Seq{typeClause, Literal(": "), OneOrMore(subject)}
	if !s.ExemptMergeCommits {
		return line
	}
	return Alt{Seq{Literal(MergePrefix), ZeroOrMore(AnyChar)}, line}
}

// tokenAlternation keeps the keyword order, except that a token is moved in
// front of any shorter token that is a prefix of it ("fixup" before "fix").
func tokenAlternation(tokens []string) Alt {
	ordered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		pos := len(ordered)
		for i, placed := range ordered {
			if len(placed) < len(t) && strings.HasPrefix(t, placed) {
				pos = i
				break
			}
		}
		ordered = append(ordered, "")
		copy(ordered[pos+1:], ordered[pos:])
		ordered[pos] = t
	}

	alt := make(Alt, len(ordered))
	for i, t := range ordered {
		alt[i] = Literal(t)
	}
	return alt
}

// Name returns the dialect name the grammar was compiled for
func (g *Grammar) Name() string {
	return g.spec.Name
}

// Spec returns the spec the grammar was compiled from
func (g *Grammar) Spec() Spec {
	return g.spec
}

// Pattern returns the compiled RE2 pattern
func (g *Grammar) Pattern() string {
	return g.pattern.String()
}

// Match reports whether line conforms to the grammar
func (g *Grammar) Match(line string) bool {
	return g.pattern.MatchString(line)
}

// IsMerge reports whether line is a merge message exempted by the grammar
func (g *Grammar) IsMerge(line string) bool {
	return g.spec.ExemptMergeCommits && strings.HasPrefix(line, MergePrefix)
}

// Validate checks line against the grammar
//
// Returns:
//   - error: nil on success, *lint.GrammarMismatchError otherwise
func (g *Grammar) Validate(line string) error {
	if g.Match(line) {
		return nil
	}
	return &lint.GrammarMismatchError{
		Dialect: g.spec.Name,
		Text:    line,
		Example: g.Example(),
	}
}

// Example returns a conforming line built from the first keyword, e.g. "feat: did X"
func (g *Grammar) Example() string {
	first, _ := g.spec.Keywords.First()
	return first.Token + ": did X"
}
