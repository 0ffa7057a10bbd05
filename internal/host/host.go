// Package host runs the interactive terminal surface on top of tcell.
//
// The whole screen is the surface. Mouse motion moves the marker and
// recolours the background; a primary click or Enter freezes the colour and
// shows its names; a secondary click or r resumes tracking.
package host

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/jmylchreest/huepoint/internal/motion"
	"github.com/jmylchreest/huepoint/internal/position"
	"github.com/jmylchreest/huepoint/internal/session"
)

const (
	// DefaultFrameInterval is the redraw period while the marker is moving.
	DefaultFrameInterval = 16 * time.Millisecond

	eventBuffer = 64
)

// Action is what a key or button press asks the host to do.
type Action int

const (
	// ActionNone ignores the input.
	ActionNone Action = iota
	// ActionCommit freezes the current colour.
	ActionCommit
	// ActionReset resumes tracking.
	ActionReset
	// ActionQuit leaves the loop.
	ActionQuit
)

// Host drives a session from terminal events. All state is owned by the
// goroutine calling Run.
type Host struct {
	screen  tcell.Screen
	session *session.Session
	marker  *motion.Marker
	logger  hclog.Logger
	frame   time.Duration

	bounds  position.Rect
	pointer position.Sample
	moved   bool
	buttons tcell.ButtonMask
	dirty   bool
}

// New creates a host. The caller owns screen initialisation and Fini.
func New(screen tcell.Screen, s *session.Session, marker *motion.Marker, logger hclog.Logger) *Host {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	h := &Host{
		screen:  screen,
		session: s,
		marker:  marker,
		logger:  logger,
		frame:   DefaultFrameInterval,
		dirty:   true,
	}
	h.Resize()
	return h
}

// WithFrameInterval overrides the redraw period.
func (h *Host) WithFrameInterval(d time.Duration) *Host {
	if d > 0 {
		h.frame = d
	}
	return h
}

// Run processes events until ctx is cancelled or the user quits.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.HideCursor()
	h.Resize()
	h.Draw()

	h.logger.Info("surface ready", "width", h.bounds.Width, "height", h.bounds.Height, "session", h.session.ID())

	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.frame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("context cancelled")
			return nil

		case ev := <-events:
			if h.HandleEvent(ev) {
				h.logger.Info("quit requested")
				return nil
			}

		case now := <-ticker.C:
			if h.Tick(now.Sub(last)) {
				h.dirty = true
			}
			last = now
		}

		if h.dirty {
			h.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether the host
// should quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.Resize()
		h.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		h.Move(float64(x), float64(y))

		pressed := ev.Buttons() &^ h.buttons
		h.buttons = ev.Buttons()
		switch {
		case pressed&tcell.Button1 != 0:
			h.Apply(ActionCommit)
		case pressed&(tcell.Button2|tcell.Button3) != 0:
			h.Apply(ActionReset)
		}

	case *tcell.EventKey:
		return h.Apply(KeyAction(ev.Key(), ev.Rune()))
	}
	return false
}

// KeyAction maps a key press to an action.
func KeyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionCommit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionReset
	case tcell.KeyRune:
		switch r {
		case ' ':
			return ActionCommit
		case 'r', 'R':
			return ActionReset
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// Apply performs an action and reports whether the host should quit.
func (h *Host) Apply(a Action) bool {
	switch a {
	case ActionCommit:
		if h.session.State() == session.Frozen {
			return false
		}
		if _, err := h.session.Commit(); err != nil {
			h.logger.Error("commit failed", "error", err)
			return false
		}
		h.dirty = true
	case ActionReset:
		if h.session.Reset() {
			h.dirty = true
		}
	case ActionQuit:
		return true
	}
	return false
}

// Move feeds a pointer sample in cell coordinates to the session.
func (h *Host) Move(x, y float64) {
	h.pointer = position.Sample{X: x, Y: y}
	h.moved = true

	u, err := h.session.Move(h.pointer, h.bounds)
	switch {
	case errors.Is(err, position.ErrInvalidBounds):
		h.logger.Debug("skipping frame", "reason", err)
		return
	case err != nil:
		h.logger.Warn("pointer sample rejected", "error", err)
		return
	case u.Ignored:
		return
	}

	h.marker.MoveTo(u.Position.Target.X, u.Position.Target.Y)
	h.dirty = true
}

// Resize reads the screen size and re-clamps the marker to the new surface.
func (h *Host) Resize() {
	w, ht := h.screen.Size()
	h.bounds = position.Rect{Width: float64(w), Height: float64(ht)}
	h.dirty = true

	target := h.pointer
	if !h.moved {
		target = position.Sample{X: h.bounds.Width / 2, Y: h.bounds.Height / 2}
	}

	if h.session.State() == session.Live && h.moved {
		h.Move(target.X, target.Y)
		return
	}

	res, err := position.ClampAndNormalize(target, h.bounds, h.session.Occluder())
	if err != nil {
		h.logger.Debug("skipping resize", "reason", err)
		return
	}
	h.marker.Jump(res.Target.X, res.Target.Y)
}

// Tick advances the marker animation by dt and reports whether it moved.
func (h *Host) Tick(dt time.Duration) bool {
	if !h.marker.Animating() {
		return false
	}
	h.marker.Update(dt)
	return true
}

// Bounds returns the current surface size.
func (h *Host) Bounds() position.Rect {
	return h.bounds
}

// markerCells returns the half-open cell range covered by the marker.
func (h *Host) markerCells() (x0, y0, x1, y1 int) {
	mx, my := h.marker.Position()
	half := h.session.Occluder().HalfSize

	x0 = int(math.Round(mx - half))
	y0 = int(math.Round(my - half))
	x1 = int(math.Round(mx + half))
	y1 = int(math.Round(my + half))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}
