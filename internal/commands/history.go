package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	gitpkg "github.com/wlame/mkcommit/internal/git"
	"github.com/wlame/mkcommit/internal/lint"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent commits and whether they follow the dialect",
	Long: `Display the commit history one line per commit, marking every subject
that does not conform to the selected dialect.

Unlike "lint --history" this is a report: it never fails because of
non-conforming commits.

Examples:
  # Show the last 20 commits
  mkcommit history

  # Show the last 50 commits checked against conventional commits
  mkcommit history --limit 50 --dialect conventional`,
	Args: cobra.NoArgs,
	RunE: historyRun,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of commits to show (0 for unlimited)")

	rootCmd.AddCommand(historyCmd)
}

func historyRun(cmd *cobra.Command, args []string) error {
	cfg, d, err := loadDialect()
	if err != nil {
		return err
	}

	repo, err := gitpkg.Open(&cfg.Git)
	if err != nil {
		return err
	}

	commits, err := repo.History(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	if len(commits) == 0 {
		PrintWarning("No commits found in repository")
		return nil
	}

	failed := 0
	for _, c := range commits {
		mark := " "
		if r := lint.Check(d.Name(), c.Subject(), d.Validate); !r.Passed() {
			mark = "x"
			failed++
		}
		// One-line format: date hash mark subject
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", formatDate(c.Date), c.Hash, mark, c.Subject())
	}

	if failed > 0 {
		PrintInfo(fmt.Sprintf("%d of %d commits do not follow %s", failed, len(commits), d.Name()))
	}
	return nil
}

// formatDate formats a time.Time into YYYY-MM-DD HH:MM format
func formatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
