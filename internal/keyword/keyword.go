// Package keyword holds the type tokens a dialect recognizes ("feat", "fix", ...).
// A Set is built once when a dialect is defined and never changes afterwards.
// Derived vocabularies are built with Extend, which copies the base set.
package keyword

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wlame/mkcommit/internal/lint"
)

// Keyword is a single type token with a human-readable description
type Keyword struct {
	// Token is the bare identifier used in commit subjects (e.g. "feat")
	Token string `mapstructure:"token" yaml:"token"`

	// Description explains when the token should be used
	Description string `mapstructure:"description" yaml:"description"`
}

// String renders the keyword the way it is listed to users: "feat - A new feature"
func (k Keyword) String() string {
	if k.Description == "" {
		return k.Token
	}
	return k.Token + " - " + k.Description
}

// Set is an ordered, immutable collection of keywords with unique tokens.
// The zero value is an empty set; use NewSet to build a usable one.
type Set struct {
	keywords []Keyword
}

// NewSet builds a keyword set, keeping the given order
//
// Returns:
//   - Set: The keyword set
//   - error: *lint.ConfigurationError if the set is empty, a token is blank or
//     contains whitespace, or a token appears twice
func NewSet(keywords ...Keyword) (Set, error) {
	if len(keywords) == 0 {
		return Set{}, &lint.ConfigurationError{Reason: "keyword set is empty"}
	}

	seen := make(map[string]struct{}, len(keywords))
	for i, k := range keywords {
		if k.Token == "" {
			return Set{}, &lint.ConfigurationError{Reason: fmt.Sprintf("keyword[%d] has an empty token", i)}
		}
		if strings.IndexFunc(k.Token, unicode.IsSpace) >= 0 {
			return Set{}, &lint.ConfigurationError{Reason: fmt.Sprintf("keyword %q contains whitespace", k.Token)}
		}
		if _, dup := seen[k.Token]; dup {
			return Set{}, &lint.ConfigurationError{Reason: fmt.Sprintf("keyword %q is defined twice", k.Token)}
		}
		seen[k.Token] = struct{}{}
	}

	// Copy so later changes to the caller's slice don't leak into the set
	owned := make([]Keyword, len(keywords))
	copy(owned, keywords)

	return Set{keywords: owned}, nil
}

// MustSet is like NewSet but panics on error.
// It is meant for package-level vocabularies that are known to be valid.
func MustSet(keywords ...Keyword) Set {
	s, err := NewSet(keywords...)
	if err != nil {
		panic(err)
	}
	return s
}

// Extend derives a new set from base followed by additions.
// base is left untouched.
func Extend(base Set, additions ...Keyword) (Set, error) {
	all := make([]Keyword, 0, base.Len()+len(additions))
	all = append(all, base.keywords...)
	all = append(all, additions...)
	return NewSet(all...)
}

// Len returns the number of keywords in the set
func (s Set) Len() int {
	return len(s.keywords)
}

// Keywords returns a copy of the keywords in order
func (s Set) Keywords() []Keyword {
	out := make([]Keyword, len(s.keywords))
	copy(out, s.keywords)
	return out
}

// Tokens returns the bare tokens in order
func (s Set) Tokens() []string {
	tokens := make([]string, len(s.keywords))
	for i, k := range s.keywords {
		tokens[i] = k.Token
	}
	return tokens
}

// First returns the first keyword of the set.
// The boolean is false for an empty set.
func (s Set) First() (Keyword, bool) {
	if len(s.keywords) == 0 {
		return Keyword{}, false
	}
	return s.keywords[0], true
}

// Lookup finds a keyword by token
func (s Set) Lookup(token string) (Keyword, bool) {
	for _, k := range s.keywords {
		if k.Token == token {
			return k, true
		}
	}
	return Keyword{}, false
}

// Contains reports whether token belongs to the set
func (s Set) Contains(token string) bool {
	_, ok := s.Lookup(token)
	return ok
}

// Join renders tokens as a comma-separated list.
// With noSpace the tokens are joined as "feat,fix", otherwise as "feat, fix".
func Join(tokens []string, noSpace bool) string {
	if noSpace {
		return strings.Join(tokens, ",")
	}
	return strings.Join(tokens, ", ")
}
