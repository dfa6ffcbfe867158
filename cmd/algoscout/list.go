package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/csheth/algoscout/internal/catalog"
	"github.com/csheth/algoscout/internal/classify"
	"github.com/csheth/algoscout/internal/listing"
)

type listFlags struct {
	search   string
	category string
	json     bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog algorithms",
		Long:  `List algorithms in catalog order, optionally narrowed by a search term and a category.`,
		Example: `  algoscout list
  algoscout list --search ソート
  algoscout list --category data-structures
  algoscout list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "Case-insensitive match on name and description")
	cmd.Flags().StringVar(&flags.category, "category", string(catalog.AllCategories), "Category id or all")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print JSON instead of a table")

	return cmd
}

func runList(out io.Writer, root *rootFlags, flags *listFlags) error {
	category := catalog.CategoryID(strings.TrimSpace(flags.category))
	if category == "" {
		category = catalog.AllCategories
	}
	if category != catalog.AllCategories && !slices.Contains(catalog.KnownCategories, category) {
		return fmt.Errorf("unknown category %q", flags.category)
	}

	cfg, err := root.settings()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	results := listing.Filter(cat.Algorithms(), flags.search, category)
	if flags.json {
		if results == nil {
			results = []catalog.Algorithm{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "アルゴリズムが見つかりません")
		return nil
	}

	rows := [][]string{{"ID", "NAME", "CATEGORY", "AVERAGE", "SPACE"}}
	for _, alg := range results {
		rows = append(rows, []string{
			alg.ID,
			alg.Name,
			classify.CategoryName(alg.Category),
			orDash(alg.TimeComplexity.Average),
			alg.SpaceComplexity,
		})
	}
	writeColumns(out, rows)
	fmt.Fprintf(out, "\n%d 個のアルゴリズムが見つかりました\n", len(results))
	return nil
}

// writeColumns pads cells by display width so CJK names line up.
func writeColumns(out io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
