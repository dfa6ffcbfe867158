package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/csheth/algoscout/internal/classify"
	"github.com/csheth/algoscout/internal/detail"
)

const showWrapWidth = 78

type showFlags struct {
	tab string
}

func newShowCmd(root *rootFlags) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one algorithm page",
		Long: `Print the facts and one tab of an algorithm page as plain text.

Tabs: overview, implementation, explanation, usage.`,
		Example: `  algoscout show quick-sort
  algoscout show bubble-sort --tab implementation > bubble.c`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), root, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.tab, "tab", detail.TabOverview.String(), "Tab to print")

	return cmd
}

func runShow(out io.Writer, root *rootFlags, flags *showFlags, id string) error {
	tab, err := detail.ParseTab(flags.tab)
	if err != nil {
		return err
	}
	cfg, err := root.settings()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	page, err := detail.Resolve(cat, id)
	if err != nil {
		return err
	}

	alg := page.Algorithm
	fmt.Fprintf(out, "%s [%s]\n", page.Title(), classify.CategoryName(alg.Category))
	fmt.Fprintln(out, wordwrap.String(alg.Description, showWrapWidth))
	fmt.Fprintln(out)
	for _, entry := range alg.TimeComplexity.Entries() {
		fmt.Fprintf(out, "  %-10s %s\n", entry.Key, entry.Label)
	}
	fmt.Fprintf(out, "  %-10s %s\n", "space", alg.SpaceComplexity)
	if alg.Stable != nil {
		fmt.Fprintf(out, "  %-10s %t\n", "stable", *alg.Stable)
	}
	if alg.InPlace != nil {
		fmt.Fprintf(out, "  %-10s %t\n", "in-place", *alg.InPlace)
	}

	fmt.Fprintf(out, "\n== %s ==\n", tab.Label())
	writeSections(out, page.Sections(tab))
	return nil
}

func writeSections(out io.Writer, sections []detail.Section) {
	for _, section := range sections {
		fmt.Fprintf(out, "\n## %s\n", section.Heading)
		switch {
		case section.Code:
			fmt.Fprintln(out, strings.TrimRight(section.Body, "\n"))
		case len(section.Items) > 0:
			for _, item := range section.Items {
				fmt.Fprintln(out, "- "+wordwrap.String(item, showWrapWidth-2))
			}
		default:
			fmt.Fprintln(out, wordwrap.String(strings.TrimSpace(section.Body), showWrapWidth))
		}
	}
}
