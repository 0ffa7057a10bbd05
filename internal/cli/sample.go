package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huepoint/internal/colour"
	"github.com/jmylchreest/huepoint/internal/position"
	"github.com/jmylchreest/huepoint/internal/resolver"
	"github.com/jmylchreest/huepoint/internal/session"
)

const (
	formatText = "text"
	formatJSON = "json"

	swatchWidth = 9
)

type sampleOptions struct {
	width   float64
	height  float64
	commit  bool
	format  string
	preview bool
}

// sampleReport is the JSON form of one pipeline pass.
type sampleReport struct {
	Sample   position.Sample     `json:"sample"`
	Bounds   position.Rect       `json:"bounds"`
	Occluder position.Occluder   `json:"occluder"`
	Target   position.Sample     `json:"target"`
	Fraction position.Normalized `json:"fraction"`
	Colour   colour.RGB          `json:"colour"`
	Resolved *resolver.Resolved  `json:"resolved,omitempty"`
}

func newSampleCmd(a *app) *cobra.Command {
	opts := &sampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample <x> <y>",
		Short: "Map one pointer position to its colour",
		Long: `Run a single pointer sample through the pipeline: clamp it so the marker
stays inside the surface, blend the corner colours, and optionally commit the
colour to resolve its names.

Examples:
  # The centre of a 400x300 surface
  huepoint sample 200 150 --width 400 --height 300

  # Commit and name the colour
  huepoint sample 200 150 --width 400 --height 300 --half-size 10 --commit

  # Machine-readable output
  huepoint sample 0 0 --width 400 --height 300 --commit --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(a, opts, cmd, args)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", 0, "surface width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "surface height")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "freeze the colour and resolve its names")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", isTerminal(os.Stdout), "show a colour swatch")
	a.cfg.RegisterGeometryFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func runSample(a *app, opts *sampleOptions, cmd *cobra.Command, args []string) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("invalid format: %s (valid: text, json)", opts.format)
	}

	sample, err := parseSample(args[0], args[1])
	if err != nil {
		return err
	}
	bounds := position.Rect{Width: opts.width, Height: opts.height}
	occ := position.Occluder{HalfSize: a.cfg.HalfSize}

	r, err := buildResolver(a.cfg, a.logger)
	if err != nil {
		return err
	}

	s := session.New(r, occ, a.logger.Named("session"))
	u, err := s.Move(sample, bounds)
	if err != nil {
		return fmt.Errorf("failed to map sample: %w", err)
	}

	report := sampleReport{
		Sample:   sample,
		Bounds:   bounds,
		Occluder: occ,
		Target:   u.Position.Target,
		Fraction: u.Position.Fraction,
		Colour:   u.Colour,
	}

	if opts.commit {
		resolved, err := s.Commit()
		if err != nil {
			return fmt.Errorf("failed to commit colour: %w", err)
		}
		report.Resolved = &resolved
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(out, report)
	}
	writeSampleText(out, report, opts.preview)
	return nil
}

func parseSample(xs, ys string) (position.Sample, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return position.Sample{}, fmt.Errorf("invalid x coordinate %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return position.Sample{}, fmt.Errorf("invalid y coordinate %q: %w", ys, err)
	}
	return position.Sample{X: x, Y: y}, nil
}

func writeSampleText(w io.Writer, r sampleReport, preview bool) {
	fmt.Fprintf(w, "%-9s %s, %s\n", "target", formatFloat(r.Target.X), formatFloat(r.Target.Y))
	fmt.Fprintf(w, "%-9s %s, %s\n", "fraction", formatFloat(r.Fraction.X), formatFloat(r.Fraction.Y))

	col := fmt.Sprintf("%s  %s", r.Colour.Hex(), r.Colour.String())
	if preview {
		col = colour.Swatch(r.Colour, swatchWidth) + " " + col
	}
	fmt.Fprintf(w, "%-9s %s\n", "colour", col)

	if r.Resolved == nil {
		return
	}
	for _, m := range r.Resolved.Names {
		line := m.Name
		if m.Hex != "" && !m.Exact {
			line = fmt.Sprintf("%s (#%s)", m.Name, m.Hex)
		}
		fmt.Fprintf(w, "%-9s %s\n", m.Source, line)
	}
	fmt.Fprintf(w, "%-9s %s\n", "object", r.Resolved.Object)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
