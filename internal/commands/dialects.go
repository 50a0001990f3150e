package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wlame/mkcommit/internal/dialect"
)

// dialectsCmd lists the available dialects
var dialectsCmd = &cobra.Command{
	Use:   "dialects [name]",
	Short: "List dialects or show the keywords of one dialect",
	Long: `Without arguments, list every available dialect (built-in and from the
config file) with an example message. With a dialect name, list its keywords.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		registry, err := dialect.Load(cfg)
		if err != nil {
			return fmt.Errorf("failed to build dialects: %w", err)
		}

		if len(args) == 1 {
			d, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			renderKeywords(cmd.OutOrStdout(), d)
			return nil
		}

		renderDialects(cmd.OutOrStdout(), registry, cfg.Dialect)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}

func renderDialects(w io.Writer, registry *dialect.Registry, defaultName string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Dialect", "Keywords", "Example"})

	for _, name := range registry.List() {
		d, _ := registry.Get(name)
		label := d.Name()
		if name == defaultName {
			label += " (default)"
		}
		t.AppendRow(table.Row{label, d.Keywords().Len(), d.Example()})
	}
	t.Render()
}

func renderKeywords(w io.Writer, d dialect.Dialect) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(d.Name())
	t.AppendHeader(table.Row{"Keyword", "Description"})

	for _, k := range d.Keywords().Keywords() {
		t.AppendRow(table.Row{k.Token, k.Description})
	}
	t.Render()
}
