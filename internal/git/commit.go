package git

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// ErrNothingStaged is returned by Commit when the index has no changes
var ErrNothingStaged = errors.New("no changes added to commit")

// Commit is one entry of the commit history
type Commit struct {
	// Hash is the abbreviated (7 characters) commit hash
	Hash string

	Author string
	Date   time.Time

	// Message is the full commit message
	Message string
}

// Subject returns the first line of the commit message
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return subject
}

// History returns the commits reachable from HEAD, newest first
//
// Parameters:
//   - limit: Maximum number of commits to return (0 for unlimited)
//
// Returns:
//   - []Commit: The commits
//   - error: Any error encountered
func (r *Repository) History(limit int) ([]Commit, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			// Fresh repository without commits
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(commits) >= limit {
			// storer.ErrStop ends the iteration without an error
			return storer.ErrStop
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String()[:7],
			Author:  c.Author.Name,
			Date:    c.Author.When,
			Message: c.Message,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history: %w", err)
	}

	return commits, nil
}

// GetLastCommitMessage returns the message of the last commit
//
// Returns:
//   - string: The commit message
//   - error: Any error encountered
func (r *Repository) GetLastCommitMessage() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to get commit: %w", err)
	}

	return commit.Message, nil
}

// HasStagedChanges reports whether the index differs from HEAD
func (r *Repository) HasStagedChanges() (bool, error) {
	w, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := w.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}

	for _, fileStatus := range status {
		if fileStatus.Staging != git.Unmodified && fileStatus.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

// Commit creates a commit of the staged changes
// This is equivalent to "git commit -m <message>"
//
// Parameters:
//   - message: Commit message
//
// Returns:
//   - string: The commit hash (SHA)
//   - error: ErrNothingStaged if nothing is staged, other errors on failure
func (r *Repository) Commit(message string) (string, error) {
	staged, err := r.HasStagedChanges()
	if err != nil {
		return "", err
	}
	if !staged {
		return "", ErrNothingStaged
	}

	name, email, err := r.Author()
	if err != nil {
		return "", err
	}

	w, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	hash, err := w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  name,
			Email: email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create commit: %w", err)
	}

	return hash.String(), nil
}
