package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/ffgraph/filters"
	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/schema"
	"github.com/five82/ffgraph/internal/util"
)

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters [NAME]",
		Short: "List the supported filters, or the options of one filter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width := 100
			if cmd.OutOrStdout() == os.Stdout {
				width = util.TerminalWidth(os.Stdout, width)
			}
			if len(args) == 0 {
				printCatalog(cmd.OutOrStdout(), filters.Catalog(), width)
				return nil
			}
			f, ok := filters.Catalog().Lookup(args[0])
			if !ok {
				return ferrors.NewUnknownFilterError(args[0])
			}
			printFilter(cmd.OutOrStdout(), f, width)
			return nil
		},
	}
}

func printCatalog(w io.Writer, c *schema.Catalog, width int) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	nameWidth := 0
	for _, f := range c.Filters {
		nameWidth = max(nameWidth, len(f.Name))
	}

	for _, f := range c.Filters {
		name := fmt.Sprintf("%-*s", nameWidth, f.Name)
		media := fmt.Sprintf("%-10s", f.Media)
		prefix := nameWidth + 10 + 4
		fmt.Fprintf(w, "  %s %s %s\n", bold.Sprint(name), faint.Sprint(media), truncate(f.Description, width-prefix))
	}
}

func printFilter(w io.Writer, f *schema.Filter, width int) {
	cyan := color.New(color.FgCyan, color.Bold)
	bold := color.New(color.Bold)

	_, _ = cyan.Fprintln(w, f.Name)
	fmt.Fprintf(w, "  %s\n", f.Description)
	media := string(f.Media)
	if f.MultiInput {
		media += ", multiple inputs"
	}
	fmt.Fprintf(w, "  %s %s\n\n", bold.Sprint("Media:"), media)

	keyWidth := 0
	for _, o := range f.Options {
		keyWidth = max(keyWidth, len(o.Key))
	}
	for _, o := range f.Options {
		key := fmt.Sprintf("%-*s", keyWidth, o.Key)
		fmt.Fprintf(w, "  %s  %s\n", bold.Sprint(key), truncate(o.Description, width-keyWidth-4))
	}
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if n < 10 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
