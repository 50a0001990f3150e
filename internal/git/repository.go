// Package git wraps the go-git library for the few repository operations
// mkcommit needs: reading commit history, reading the author identity and
// creating commits.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/wlame/mkcommit/internal/config"
)

// ErrNotARepository is returned when no .git directory is found
var ErrNotARepository = errors.New("not a git repository")

// Repository represents a Git repository
// This wraps the go-git Repository type and adds convenience methods
type Repository struct {
	// repo is the underlying go-git repository
	repo *git.Repository

	// config is the Git configuration
	config *config.GitConfig
}

// Open opens the repository containing path
// Parent directories are searched for the .git directory, like the git CLI does
//
// Parameters:
//   - cfg: Git configuration (Path, author settings)
//
// Returns:
//   - *Repository: The opened repository
//   - error: ErrNotARepository if no repository is found, other errors on failure
func Open(cfg *config.GitConfig) (*Repository, error) {
	path := cfg.Path
	if path == "" {
		path = "."
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		// DetectDotGit walks up the directory tree until it finds .git
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, path)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}

	return New(repo, cfg), nil
}

// New wraps an already opened go-git repository
// This is mostly used by tests with in-memory repositories
func New(repo *git.Repository, cfg *config.GitConfig) *Repository {
	if cfg == nil {
		cfg = &config.GitConfig{}
	}
	return &Repository{
		repo:   repo,
		config: cfg,
	}
}

// Author returns the name and email to commit with
//
// The configured author wins. Missing values are taken from the repository
// config first, then from the global git config (user.name, user.email).
func (r *Repository) Author() (name, email string, err error) {
	name, email = r.config.AuthorName, r.config.AuthorEmail
	if name != "" && email != "" {
		return name, email, nil
	}

	for _, scope := range []gitconfig.Scope{gitconfig.LocalScope, gitconfig.GlobalScope} {
		cfg, err := r.repo.ConfigScoped(scope)
		if err != nil {
			// A missing global config file is not an error worth reporting
			continue
		}
		if name == "" {
			name = cfg.User.Name
		}
		if email == "" {
			email = cfg.User.Email
		}
	}

	if name == "" || email == "" {
		return name, email, fmt.Errorf("commit author is not configured (set git.author_name/git.author_email or user.name/user.email)")
	}
	return name, email, nil
}

// GetRepository returns the underlying go-git repository
// This is an "escape hatch" for operations we haven't wrapped yet
func (r *Repository) GetRepository() *git.Repository {
	return r.repo
}
