package dialect

import (
	"fmt"

	"github.com/wlame/mkcommit/internal/grammar"
	"github.com/wlame/mkcommit/internal/keyword"
	"github.com/wlame/mkcommit/internal/validate"
)

// Names of the built-in dialects
const (
	SemanticName     = "semantic"
	ConventionalName = "conventional"
	TechnicaName     = "technica"
)

// DefaultSubjectLength is the subject limit of the semantic and technica dialects
const DefaultSubjectLength = 55

// SemanticKeywords is the semantic commit vocabulary
var SemanticKeywords = keyword.MustSet(
	keyword.Keyword{Token: "feat", Description: "New Feature"},
	keyword.Keyword{Token: "fix", Description: "Bug Fix"},
	keyword.Keyword{Token: "chore", Description: "Generic task"},
	keyword.Keyword{Token: "wip", Description: "Work in progress"},
	keyword.Keyword{Token: "doc", Description: "Documentation updated"},
	keyword.Keyword{Token: "refactor", Description: "Refactoring something"},
	keyword.Keyword{Token: "test", Description: "Added a test, tested an element"},
	keyword.Keyword{Token: "revert", Description: "Revert a previous change"},
	keyword.Keyword{Token: "style", Description: "Improved code style"},
	keyword.Keyword{Token: "clean", Description: "Cleaned up unnecessary stuff"},
)

// ConventionalKeywords is the Conventional Commits vocabulary
var ConventionalKeywords = keyword.MustSet(
	keyword.Keyword{Token: "feat", Description: "A new feature"},
	keyword.Keyword{Token: "fix", Description: "A bug fix"},
	keyword.Keyword{Token: "docs", Description: "Documentation only changes"},
	keyword.Keyword{Token: "style", Description: "Changes that do not affect the meaning of the code"},
	keyword.Keyword{Token: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
	keyword.Keyword{Token: "perf", Description: "A code change that improves performance"},
	keyword.Keyword{Token: "test", Description: "Adding missing tests or correcting existing tests"},
	keyword.Keyword{Token: "build", Description: "Changes that affect the build system or external dependencies"},
	keyword.Keyword{Token: "ci", Description: "Changes to our CI configuration files and scripts"},
	keyword.Keyword{Token: "chore", Description: "Other changes that don't modify src or test files"},
	keyword.Keyword{Token: "revert", Description: "Reverts a previous commit"},
)

// SemanticSpec returns the grammar of the semantic dialect
func SemanticSpec() grammar.Spec {
	return grammar.Spec{
		Name:                  SemanticName,
		Keywords:              SemanticKeywords,
		AllowScope:            true,
		AllowBreaking:         true,
		AllowMultipleKeywords: true,
		ExemptMergeCommits:    true,
	}
}

// ConventionalSpec returns the grammar of the conventional dialect
func ConventionalSpec() grammar.Spec {
	return grammar.Spec{
		Name:               ConventionalName,
		Keywords:           ConventionalKeywords,
		AllowScope:         true,
		AllowBreaking:      true,
		ExemptMergeCommits: true,
	}
}

// TechnicaSpec returns the semantic grammar behind a "[initials/ticket]" preamble
func TechnicaSpec(preamble grammar.PreambleSpec) grammar.Spec {
	spec := SemanticSpec()
	spec.Name = TechnicaName
	spec.Preamble = &preamble
	return spec
}

// Options tune the built-in dialects
type Options struct {
	// MaxSubjectLength overrides the subject limit of every built-in dialect.
	// Zero keeps the defaults (55 for semantic and technica, none for conventional).
	MaxSubjectLength int

	// Preamble configures technica. Nil means grammar.DefaultPreamble().
	Preamble *grammar.PreambleSpec
}

func (o Options) limit(def int) int {
	if o.MaxSubjectLength > 0 {
		return o.MaxSubjectLength
	}
	return def
}

// Builtin returns a registry holding the semantic, conventional and technica dialects
func Builtin(opts Options) (*Registry, error) {
	preamble := grammar.DefaultPreamble()
	if opts.Preamble != nil {
		preamble = *opts.Preamble
	}

	specs := []struct {
		spec  grammar.Spec
		limit int
	}{
		{SemanticSpec(), opts.limit(DefaultSubjectLength)},
		{ConventionalSpec(), opts.limit(0)},
		{TechnicaSpec(preamble), opts.limit(DefaultSubjectLength)},
	}

	r := NewRegistry()
	for _, s := range specs {
		d, err := New(s.spec, validate.SubjectNoLongerThan(s.limit))
		if err != nil {
			return nil, fmt.Errorf("failed to build %s dialect: %w", s.spec.Name, err)
		}
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}
