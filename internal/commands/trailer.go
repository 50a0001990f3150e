package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wlame/mkcommit/internal/trailer"
)

var (
	trailerFile    string
	trailerInPlace bool
)

// trailerCmd groups the trailer subcommands
var trailerCmd = &cobra.Command{
	Use:   "trailer",
	Short: "Work with trailers at the end of a message body",
}

// trailerAddCmd inserts a trailer into a message body
var trailerAddCmd = &cobra.Command{
	Use:   "add <token> <value>",
	Short: "Insert a trailer into a message body",
	Long: `Insert "<token>: <value>" at the top of the trailer block of a message body.
Existing trailers and comments are kept below it. Without --file the body
is read from stdin.

Examples:
  mkcommit trailer add Reviewed-by "Jane Doe" --file body.txt
  mkcommit trailer add "BREAKING CHANGE" "config format changed" --file body.txt --in-place
  git log -1 --format=%b | mkcommit trailer add Refs PROJECT-1234`,
	Args: cobra.ExactArgs(2),
	RunE: trailerAddRun,
}

// trailerListCmd prints the trailers found at the end of a message body
var trailerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the trailers of a message body",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readTrailerBody(cmd)
		if err != nil {
			return err
		}
		for _, t := range trailer.Block(body) {
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
		}
		return nil
	},
}

func init() {
	trailerCmd.PersistentFlags().StringVarP(&trailerFile, "file", "f", "", "Message body file (default: stdin)")
	trailerAddCmd.Flags().BoolVarP(&trailerInPlace, "in-place", "i", false, "Write the result back to --file")

	trailerCmd.AddCommand(trailerAddCmd)
	trailerCmd.AddCommand(trailerListCmd)
	rootCmd.AddCommand(trailerCmd)
}

func trailerAddRun(cmd *cobra.Command, args []string) error {
	t := trailer.Trailer{Token: strings.TrimSpace(args[0]), Value: strings.TrimSpace(args[1])}
	if t.Token == "" {
		return fmt.Errorf("trailer token must not be empty")
	}
	if trailerInPlace && trailerFile == "" {
		return fmt.Errorf("--in-place requires --file")
	}

	body, err := readTrailerBody(cmd)
	if err != nil {
		return err
	}

	result := trailer.Attach(body, t)
	log.WithField("trailer", t.String()).Debug("trailer inserted")

	if trailerInPlace {
		if err := os.WriteFile(trailerFile, []byte(result), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", trailerFile, err)
		}
		PrintSuccess(fmt.Sprintf("Added %q to %s", t.String(), trailerFile))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), result)
	return nil
}

// readTrailerBody reads the body from --file or stdin
func readTrailerBody(cmd *cobra.Command) (string, error) {
	if trailerFile != "" {
		content, err := os.ReadFile(trailerFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", trailerFile, err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), nil
}
