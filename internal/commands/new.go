package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wlame/mkcommit/internal/config"
	"github.com/wlame/mkcommit/internal/dialect"
	gitpkg "github.com/wlame/mkcommit/internal/git"
	"github.com/wlame/mkcommit/internal/message"
	"github.com/wlame/mkcommit/internal/trailer"
)

var (
	newTypes           []string
	newScope           string
	newSubject         string
	newBreaking        bool
	newBreakingMessage string
	newBody            string
	newBodyFile        string
	newTrailers        []string
	newInitials        string
	newTicket          string
	newNoSpace         bool
	newCommit          bool
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Build a commit message from its parts",
	Long: `Build a commit message from flags, validate it against the dialect and
print it. With --commit the staged changes are committed with the message.

For dialects with a preamble (technica) the initials default to the ones
derived from the git author name, and the ticket defaults to "-" (no ticket).

Examples:
  mkcommit new -t feat -s auth -m "add login form"
  mkcommit new -t feat -t fix -m "handle empty input" --dialect semantic
  mkcommit new -t feat -m "drop v1 API" --breaking-message "v1 endpoints are gone"
  mkcommit new -t fix -m "typo" --ticket PROJECT-1234 --dialect technica --commit`,
	Args: cobra.NoArgs,
	RunE: newRun,
}

func init() {
	newCmd.Flags().StringSliceVarP(&newTypes, "type", "t", nil, "Type keyword (repeat for several)")
	newCmd.Flags().StringVarP(&newScope, "scope", "s", "", "Scope of the change")
	newCmd.Flags().StringVarP(&newSubject, "subject", "m", "", "Short, imperative description of the change")
	newCmd.Flags().BoolVar(&newBreaking, "breaking", false, "Mark the change as breaking with \"!\"")
	newCmd.Flags().StringVar(&newBreakingMessage, "breaking-message", "", "Describe the breaking change in a BREAKING CHANGE trailer")
	newCmd.Flags().StringVar(&newBody, "body", "", "Longer description of the change")
	newCmd.Flags().StringVar(&newBodyFile, "body-file", "", "Read the longer description from a file")
	newCmd.Flags().StringArrayVar(&newTrailers, "trailer", nil, "Trailer as \"Token: value\" (repeatable)")
	newCmd.Flags().StringVar(&newInitials, "initials", "", "Initials for the preamble (default: from git author)")
	newCmd.Flags().StringVar(&newTicket, "ticket", "", "Ticket for the preamble (default: \"-\")")
	newCmd.Flags().BoolVar(&newNoSpace, "no-space", false, "Join keywords without a space (\"feat,fix\")")
	newCmd.Flags().BoolVar(&newCommit, "commit", false, "Commit the staged changes with the message")

	_ = newCmd.MarkFlagRequired("type")
	_ = newCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(newCmd)
}

func newRun(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadDialect()
	if err != nil {
		return err
	}

	body, err := readBody()
	if err != nil {
		return err
	}

	// Given in order, each insert lands on top of the block, so go backwards
	for i := len(newTrailers) - 1; i >= 0; i-- {
		t, ok := trailer.Parse(newTrailers[i])
		if !ok {
			return fmt.Errorf("invalid trailer %q (expected \"Token: value\")", newTrailers[i])
		}
		body = trailer.Attach(body, t)
	}

	header := message.Header{
		Keywords: newTypes,
		Scope:    newScope,
		Breaking: newBreaking,
		Subject:  newSubject,
		NoSpace:  newNoSpace,
	}
	if newBreakingMessage != "" {
		body = message.ApplyBreaking(&header, newBreakingMessage, body)
	}

	firstLine := header.String()
	if composite, ok := d.(*dialect.Composite); ok {
		firstLine, err = withPreamble(cfg, composite, firstLine)
		if err != nil {
			return err
		}
	}

	if err := d.Validate(firstLine); err != nil {
		return err
	}

	msg := message.CommitMessage{FirstLine: firstLine, Body: body}
	fmt.Fprintln(cmd.OutOrStdout(), msg.String())

	if !newCommit {
		return nil
	}

	repo, err := gitpkg.Open(&cfg.Git)
	if err != nil {
		return err
	}
	hash, err := repo.Commit(msg.String())
	if err != nil {
		return err
	}
	PrintSuccess(fmt.Sprintf("Created commit %s", hash[:7]))
	return nil
}

// withPreamble puts the "[initials/ticket]" prefix in front of header
func withPreamble(cfg *config.Config, d *dialect.Composite, header string) (string, error) {
	layout := d.Preamble()

	initials := newInitials
	if initials == "" {
		repo, err := gitpkg.Open(&cfg.Git)
		if err != nil {
			return "", fmt.Errorf("initials are required outside a git repository: %w", err)
		}
		name, err := authorName(repo)
		if err != nil {
			return "", err
		}
		initials = message.Initials(name, layout.Initials.FirstNameChars, layout.Initials.LastNameChars)
		log.WithField("initials", initials).Debug("initials derived from git author")
	}

	p := message.Preamble{Initials: initials, Ticket: newTicket}
	return p.Wrap(layout, header), nil
}

// authorName returns the commit author name used to derive initials.
// A missing email does not matter here, only the name does.
func authorName(repo *gitpkg.Repository) (string, error) {
	name, _, err := repo.Author()
	if name != "" {
		return name, nil
	}
	if err != nil {
		return "", fmt.Errorf("cannot derive initials from git author: %w", err)
	}
	return "", fmt.Errorf("cannot derive initials from git author: name is not configured")
}

// readBody returns the body from --body-file or --body
func readBody() (string, error) {
	if newBodyFile == "" {
		return newBody, nil
	}
	content, err := os.ReadFile(newBodyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", newBodyFile, err)
	}
	return strings.TrimRight(string(content), "\n"), nil
}
