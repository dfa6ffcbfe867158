package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type validateFlags struct {
	strict bool
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog payload",
		Long: `Load and cross-check the catalog. Entries without a content page are
reported but only fail the check with --strict.`,
		Example: `  algoscout validate
  algoscout validate --content ./data --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), root, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail when an algorithm has no content page")

	return cmd
}

func runValidate(out io.Writer, root *rootFlags, flags *validateFlags) error {
	cfg, err := root.settings()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d algorithms in %d categories\n", cat.Len(), len(cat.Categories()))
	missing := cat.MissingContent()
	if len(missing) == 0 {
		fmt.Fprintln(out, "ok")
		return nil
	}
	fmt.Fprintf(out, "missing content: %s\n", strings.Join(missing, ", "))
	if flags.strict {
		return fmt.Errorf("%d algorithms without content", len(missing))
	}
	return nil
}
