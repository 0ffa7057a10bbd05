package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huepoint/internal/host"
	"github.com/jmylchreest/huepoint/internal/motion"
	"github.com/jmylchreest/huepoint/internal/position"
	"github.com/jmylchreest/huepoint/internal/session"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Point at colours in the terminal",
		Long: `Turn the terminal into a colour surface. Move the mouse to blend the corner
colours; the marker follows the pointer and never leaves the screen.

Controls:
  left click, enter, space    freeze the colour and show its names
  right click, r, backspace   resume tracking
  esc, q, ctrl-c              quit

The screen owns the terminal while playing, so logs are discarded unless
--log-file is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(a, cmd)
		},
	}

	a.cfg.RegisterGeometryFlags(cmd.Flags())
	a.cfg.RegisterMotionFlags(cmd.Flags())
	a.cfg.RegisterLogFileFlag(cmd.Flags())

	return cmd
}

func runPlay(a *app, cmd *cobra.Command) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("play requires an interactive terminal")
	}

	logger, closeLog, err := a.playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	r, err := buildResolver(a.cfg, logger)
	if err != nil {
		return err
	}
	easeFn, err := motion.Ease(a.cfg.Ease)
	if err != nil {
		return fmt.Errorf("invalid ease: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}

	s := session.New(r, position.Occluder{HalfSize: a.cfg.HalfSize}, logger.Named("session"))
	h := host.New(screen, s, motion.NewMarker(a.cfg.TweenDuration, easeFn), logger.Named("host"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := h.Run(ctx)
	screen.Fini()
	if runErr != nil {
		return fmt.Errorf("terminal session failed: %w", runErr)
	}

	if resolved, ok := s.Resolved(); ok && !a.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%s)\n", resolved.RGB.Hex(), resolved.Label(), resolved.Object)
	}
	return nil
}

// playLogger returns a logger that never writes to the terminal, since the
// screen owns it. The returned func closes the log file, if any.
func (a *app) playLogger() (hclog.Logger, func(), error) {
	if a.cfg.LogFile == "" {
		return hclog.NewNullLogger(), func() {}, nil
	}

	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return a.newLogger(f), func() { _ = f.Close() }, nil
}
