package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wlame/mkcommit/internal/dialect"
	gitpkg "github.com/wlame/mkcommit/internal/git"
	"github.com/wlame/mkcommit/internal/lint"
	"github.com/wlame/mkcommit/internal/message"
)

var (
	lintFile    string
	lintHead    bool
	lintHistory int
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint [message|-]",
	Short: "Validate a commit message against the dialect",
	Long: `Validate the first line of a commit message against the selected dialect.

The message can be given as an argument, read from stdin ("-"), read from a
file (as git passes it to a commit-msg hook), or taken from the repository.

Examples:
  # Validate a message
  mkcommit lint "feat(auth): add login form"

  # commit-msg hook
  mkcommit lint --file "$1"

  # Validate the last commit
  mkcommit lint --head

  # Validate the subjects of the last 20 commits
  mkcommit lint --history 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: lintRun,
}

func init() {
	lintCmd.Flags().StringVarP(&lintFile, "file", "f", "", "Read the message from a file (commit-msg hook)")
	lintCmd.Flags().BoolVar(&lintHead, "head", false, "Validate the message of the HEAD commit")
	lintCmd.Flags().IntVar(&lintHistory, "history", 0, "Validate the subjects of the last N commits")

	rootCmd.AddCommand(lintCmd)
}

func lintRun(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadDialect()
	if err != nil {
		return err
	}

	if lintHistory > 0 {
		repo, err := gitpkg.Open(&cfg.Git)
		if err != nil {
			return err
		}
		return lintCommits(cmd.OutOrStdout(), repo, d, lintHistory)
	}

	raw, err := readMessage(cmd, args, func() (string, error) {
		repo, err := gitpkg.Open(&cfg.Git)
		if err != nil {
			return "", err
		}
		return repo.GetLastCommitMessage()
	})
	if err != nil {
		return err
	}

	msg := message.Parse(raw)
	result := lint.Check(d.Name(), msg.FirstLine, d.Validate)
	if !result.Passed() {
		return result.Err
	}

	PrintSuccess(fmt.Sprintf("%q is a valid %s commit message", msg.FirstLine, d.Name()))
	return nil
}

// readMessage picks the message source: --file, --head, "-" (stdin) or the argument
func readMessage(cmd *cobra.Command, args []string, head func() (string, error)) (string, error) {
	switch {
	case lintFile != "":
		content, err := os.ReadFile(lintFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", lintFile, err)
		}
		return string(content), nil
	case lintHead:
		return head()
	case len(args) == 1 && args[0] == "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("no message given (pass it as an argument, \"-\" for stdin, --file, --head or --history)")
	}
}

// lintCommits validates the subjects of the last limit commits
// All failures are reported together
func lintCommits(w io.Writer, repo *gitpkg.Repository, d dialect.Dialect, limit int) error {
	commits, err := repo.History(limit)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	if len(commits) == 0 {
		PrintWarning("No commits found in repository")
		return nil
	}

	var result *multierror.Error
	for _, c := range commits {
		r := lint.Check(d.Name(), c.Subject(), d.Validate)
		log.WithFields(logrus.Fields{
			"hash":   c.Hash,
			"passed": r.Passed(),
		}).Debug("checked commit")

		if r.Passed() {
			fmt.Fprintf(w, "ok   %s %s\n", c.Hash, c.Subject())
			continue
		}
		fmt.Fprintf(w, "FAIL %s %s\n", c.Hash, c.Subject())
		result = multierror.Append(result, fmt.Errorf("%s: %w", c.Hash, r.Err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%d of %d commits are not valid %s commits: %w",
			len(result.Errors), len(commits), d.Name(), err)
	}

	PrintSuccess(fmt.Sprintf("All %d commits are valid %s commits", len(commits), d.Name()))
	return nil
}
