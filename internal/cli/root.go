// Package cli provides the command-line interface for huepoint.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huepoint/internal/config"
	"github.com/jmylchreest/huepoint/internal/version"
)

// app holds state shared by all commands of one root command.
type app struct {
	cfg    *config.Config
	cfgErr error

	verbose bool
	quiet   bool

	logger hclog.Logger
}

// NewRootCmd builds the huepoint command tree. Configuration is read from
// HUEPOINT_* environment variables; flags override it.
func NewRootCmd() *cobra.Command {
	a := &app{}
	a.cfg, a.cfgErr = config.NewBuilder().WithEnv().Build()
	if a.cfg == nil {
		defaults := config.Default()
		a.cfg = &defaults
	}

	rootCmd := &cobra.Command{
		Use:   "huepoint",
		Short: "Pick a colour by pointing at it",
		Long: `huepoint blends four corner colours (red, blue, green and yellow) under
your pointer. Freeze a colour to learn its names and what it reminds us of.

Run "huepoint play" in a terminal with mouse support, or use the sample and
name commands for one-off lookups.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	a.cfg.RegisterLogFlags(rootCmd.PersistentFlags())
	a.cfg.RegisterResolverFlags(rootCmd.PersistentFlags())

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPlayCmd(a))
	rootCmd.AddCommand(newSampleCmd(a))
	rootCmd.AddCommand(newNameCmd(a))
	rootCmd.AddCommand(newNamesCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	if a.cfgErr != nil {
		return fmt.Errorf("failed to read environment: %w", a.cfgErr)
	}
	if a.verbose && a.quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.logger = a.newLogger(cmd.ErrOrStderr())
	return nil
}

// level returns the effective log level after --verbose and --quiet.
func (a *app) level() hclog.Level {
	switch {
	case a.verbose:
		return hclog.Debug
	case a.quiet:
		return hclog.Error
	}
	level, err := a.cfg.Level()
	if err != nil {
		return hclog.Warn
	}
	return level
}

func (a *app) newLogger(out io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huepoint",
		Output: out,
		Level:  a.level(),
	})
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
