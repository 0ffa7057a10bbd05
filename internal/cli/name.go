package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huepoint/internal/colour"
	"github.com/jmylchreest/huepoint/internal/names"
	"github.com/jmylchreest/huepoint/internal/resolver"
)

type nameOptions struct {
	format   string
	preview  bool
	maxWidth int
}

func newNameCmd(a *app) *cobra.Command {
	opts := &nameOptions{}

	cmd := &cobra.Command{
		Use:   "name <hex>...",
		Short: "Name colours given as hex",
		Long: `Resolve each colour against the configured name tables. Exact table hits
win; otherwise the nearest entry is used, so every colour gets a name.

Examples:
  huepoint name 808040
  huepoint name '#7FFFD4' FFBF00 --sources html
  huepoint name 123456 --metric ciede2000 --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runName(a, opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", isTerminal(os.Stdout), "show colour swatches")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "truncate names wider than this many columns (0 = no limit)")

	return cmd
}

func runName(a *app, opts *nameOptions, cmd *cobra.Command, args []string) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("invalid format: %s (valid: text, json)", opts.format)
	}
	if opts.maxWidth < 0 {
		return fmt.Errorf("invalid max width: %d", opts.maxWidth)
	}

	r, err := buildResolver(a.cfg, a.logger)
	if err != nil {
		return err
	}

	results := make([]resolver.Resolved, 0, len(args))
	for _, arg := range args {
		resolved, err := r.ResolveHex(arg)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", arg, err)
		}
		results = append(results, resolved)
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(out, results)
	}

	sources := r.Sources()
	headers := []string{"COLOUR"}
	for _, src := range sources {
		headers = append(headers, strings.ToUpper(src))
	}
	headers = append(headers, "OBJECT")

	table := NewTable(headers)
	for i := range sources {
		table.SetColumnMaxWidth(i+1, opts.maxWidth)
	}
	for _, res := range results {
		row := []string{colourCell(res.RGB, opts.preview)}
		for _, src := range sources {
			row = append(row, res.Name(src))
		}
		row = append(row, res.Object)
		table.AddRow(row)
	}
	fmt.Fprint(out, table.Render())
	return nil
}

type namesOptions struct {
	source   string
	format   string
	preview  bool
	maxWidth int
}

func newNamesCmd(a *app) *cobra.Command {
	opts := &namesOptions{}

	cmd := &cobra.Command{
		Use:   "names",
		Short: "List a colour name table",
		Long: `List every entry of a name table in table order.

The source is a built-in table (ntc or html) or a path to a table file with
one "RRGGBB Name" entry per line, optionally xz-compressed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNames(a, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", names.SourceNTC, "table to list (ntc, html, or a file path)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", isTerminal(os.Stdout), "show colour swatches")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "truncate names wider than this many columns (0 = no limit)")

	return cmd
}

func runNames(a *app, opts *namesOptions, cmd *cobra.Command) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("invalid format: %s (valid: text, json)", opts.format)
	}
	if opts.maxWidth < 0 {
		return fmt.Errorf("invalid max width: %d", opts.maxWidth)
	}

	table, err := loadTable(opts.source)
	if err != nil {
		return err
	}
	a.logger.Debug("listing name table", "source", table.Source(), "entries", table.Len())

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(out, table.Entries())
	}

	objects := names.DefaultObjects()
	t := NewTable([]string{"COLOUR", "NAME", "OBJECT"})
	t.SetColumnMaxWidth(1, opts.maxWidth)
	table.All()(func(_ int, e names.Entry) bool {
		object, _ := objects.Lookup(e.Name)
		t.AddRow([]string{colourCell(e.RGB(), opts.preview), e.Name, object})
		return true
	})
	fmt.Fprint(out, t.Render())
	return nil
}

// colourCell renders a colour as hex, or as a swatch labelled with its hex.
func colourCell(c colour.RGB, preview bool) string {
	if preview {
		return colour.SwatchWithText(c, c.Hex(), swatchWidth)
	}
	return c.Hex()
}
