package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/csheth/algoscout/internal/compare"
	"github.com/csheth/algoscout/internal/export"
)

type compareFlags struct {
	json bool
	out  string
}

func newCompareCmd(root *rootFlags) *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare <id>...",
		Short: "Compare up to four algorithms",
		Long: `Print the comparison table for the given algorithms.

Ids are added in order. Duplicates and anything past the fourth id are
ignored, as are ids the catalog does not know.`,
		Example: `  algoscout compare bubble-sort quick-sort merge-sort
  algoscout compare stack queue --json
  algoscout compare bubble-sort insertion-sort --out comparisons.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.OutOrStdout(), cmd.ErrOrStderr(), root, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "Print JSON instead of a table")
	cmd.Flags().StringVar(&flags.out, "out", "", "Append the table to this export file")

	return cmd
}

func runCompare(out, errOut io.Writer, root *rootFlags, flags *compareFlags, ids []string) error {
	cfg, err := root.settings()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	var selection compare.Selection
	for _, id := range ids {
		if _, ok := cat.Algorithm(id); !ok {
			fmt.Fprintf(errOut, "skipping %q: not in catalog\n", id)
			continue
		}
		if selection.Contains(id) {
			continue
		}
		if !selection.Add(id) {
			fmt.Fprintf(errOut, "skipping %q: at most %d algorithms\n", id, compare.MaxSelected)
		}
	}
	if selection.Empty() {
		return fmt.Errorf("nothing to compare")
	}

	table := compare.BuildTable(cat, selection.IDs())
	if flags.out != "" {
		if err := export.Save(flags.out, export.NewSnapshot(table)); err != nil {
			return fmt.Errorf("export comparison: %w", err)
		}
	}

	if flags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}

	rows := make([][]string, 0, len(table.Rows)+1)
	header := []string{"項目"}
	for _, col := range table.Columns {
		header = append(header, col.Name)
	}
	rows = append(rows, header)
	for _, row := range table.Rows {
		line := []string{row.Label}
		for _, cell := range row.Cells {
			line = append(line, cell.Text)
		}
		rows = append(rows, line)
	}
	writeColumns(out, rows)
	if flags.out != "" {
		fmt.Fprintf(out, "\nsaved to %s\n", flags.out)
	}
	return nil
}
