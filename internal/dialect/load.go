package dialect

import (
	"fmt"

	"github.com/wlame/mkcommit/internal/config"
	"github.com/wlame/mkcommit/internal/grammar"
	"github.com/wlame/mkcommit/internal/keyword"
	"github.com/wlame/mkcommit/internal/validate"
)

// PreambleFromConfig converts the technica settings into a preamble spec
func PreambleFromConfig(cfg config.TechnicaConfig) (grammar.PreambleSpec, error) {
	order, err := grammar.ParseOrder(cfg.Order)
	if err != nil {
		return grammar.PreambleSpec{}, err
	}

	preamble := grammar.DefaultPreamble()
	preamble.Order = order
	preamble.Initials = grammar.InitialsShape{
		FirstNameChars: cfg.FirstNameChars,
		LastNameChars:  cfg.LastNameChars,
	}
	if len(cfg.Projects) > 0 {
		preamble.Ticket = grammar.ProjectTicketShape(cfg.Projects...)
		preamble.TicketExample = cfg.Projects[0] + "-1234"
	}
	return preamble, nil
}

// Load builds the registry described by cfg: the built-in dialects followed
// by the custom ones, in the order they are defined.
func Load(cfg *config.Config) (*Registry, error) {
	preamble, err := PreambleFromConfig(cfg.Technica)
	if err != nil {
		return nil, fmt.Errorf("technica config: %w", err)
	}

	r, err := Builtin(Options{
		MaxSubjectLength: cfg.MaxSubjectLength,
		Preamble:         &preamble,
	})
	if err != nil {
		return nil, err
	}

	for _, dc := range cfg.Dialects {
		d, err := fromConfig(r, dc, preamble)
		if err != nil {
			return nil, fmt.Errorf("dialect %s: %w", dc.Name, err)
		}
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func fromConfig(r *Registry, dc config.DialectConfig, preamble grammar.PreambleSpec) (Dialect, error) {
	var (
		keywords keyword.Set
		err      error
	)
	if dc.Extends != "" {
		base, err := r.Lookup(dc.Extends)
		if err != nil {
			return nil, err
		}
		keywords, err = keyword.Extend(base.Keywords(), dc.Keywords...)
		if err != nil {
			return nil, err
		}
	} else {
		keywords, err = keyword.NewSet(dc.Keywords...)
		if err != nil {
			return nil, err
		}
	}

	spec := grammar.Spec{
		Name:                  dc.Name,
		Keywords:              keywords,
		AllowScope:            dc.AllowScope,
		AllowBreaking:         dc.AllowBreaking,
		AllowMultipleKeywords: dc.AllowMultipleKeywords,
		ExemptMergeCommits:    dc.ExemptMergeCommits,
	}
	if dc.Preamble {
		spec.Preamble = &preamble
	}

	return New(spec, validate.SubjectNoLongerThan(dc.MaxSubjectLength))
}
