// Package session holds the live/frozen state of one interactive surface.
//
// A session starts Live: every pointer sample is mapped and blended into
// the live colour. Commit freezes the current colour and resolves it once;
// while Frozen, samples are accepted but never mapped or blended. Reset
// discards the snapshot and resumes tracking.
package session

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/jmylchreest/huepoint/internal/colour"
	"github.com/jmylchreest/huepoint/internal/position"
	"github.com/jmylchreest/huepoint/internal/resolver"
)

// State is the session's tracking state.
type State int

const (
	// Live tracks the pointer.
	Live State = iota
	// Frozen holds a committed colour.
	Frozen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Live:
		return "live"
	case Frozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// InitialColour is the background before the first pointer sample.
var InitialColour = colour.CornerOrigin

// Update describes the effect of a pointer sample.
type Update struct {
	// Ignored is true when the session was frozen and the sample was dropped.
	Ignored bool

	// Position is the mapped sample. Zero when Ignored.
	Position position.Result

	// Colour is the live colour after the sample.
	Colour colour.RGB
}

// Session is the state machine for one surface. It is not safe for
// concurrent use; hosts deliver events one at a time.
type Session struct {
	id       string
	state    State
	occluder position.Occluder
	resolver *resolver.ColorResolver
	logger   hclog.Logger

	live     colour.RGB
	last     position.Result
	hasLast  bool
	resolved *resolver.Resolved
}

// New creates a Live session.
func New(r *resolver.ColorResolver, occ position.Occluder, logger hclog.Logger) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		state:    Live,
		occluder: occ,
		resolver: r,
		logger:   logger.With("session", id),
		live:     InitialColour,
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Colour returns the colour the host should display.
func (s *Session) Colour() colour.RGB {
	return s.live
}

// Position returns the last mapped position, if any sample has been mapped.
func (s *Session) Position() (position.Result, bool) {
	return s.last, s.hasLast
}

// Resolved returns the committed snapshot while Frozen.
func (s *Session) Resolved() (resolver.Resolved, bool) {
	if s.resolved == nil {
		return resolver.Resolved{}, false
	}
	return *s.resolved, true
}

// Occluder returns the marker geometry used for clamping.
func (s *Session) Occluder() position.Occluder {
	return s.occluder
}

// Move handles a pointer sample. While Frozen the sample is dropped without
// mapping or blending. Mapping errors leave the session unchanged.
func (s *Session) Move(sample position.Sample, bounds position.Rect) (Update, error) {
	if s.state == Frozen {
		return Update{Ignored: true, Colour: s.live}, nil
	}

	res, err := position.ClampAndNormalize(sample, bounds, s.occluder)
	if err != nil {
		return Update{Colour: s.live}, errors.Wrap(err, "map pointer sample")
	}

	s.last = res
	s.hasLast = true
	s.live = s.resolver.Live(res)

	return Update{Position: res, Colour: s.live}, nil
}

// Commit freezes the live colour and resolves it. Committing while already
// Frozen returns the existing snapshot.
func (s *Session) Commit() (resolver.Resolved, error) {
	if s.state == Frozen && s.resolved != nil {
		return *s.resolved, nil
	}

	resolved, err := s.resolver.Resolve(s.live)
	if err != nil {
		return resolver.Resolved{}, errors.Wrap(err, "commit colour")
	}

	s.resolved = &resolved
	s.state = Frozen
	s.logger.Info("colour frozen", "hex", resolved.Hex, "names", resolved.Label(), "object", resolved.Object)

	return resolved, nil
}

// Reset discards the snapshot and returns to Live. It reports whether the
// session was Frozen.
func (s *Session) Reset() bool {
	if s.state != Frozen {
		return false
	}
	s.state = Live
	s.resolved = nil
	s.logger.Info("colour released")
	return true
}

// Toggle commits when Live and resets when Frozen, matching a single
// click/tap affordance.
func (s *Session) Toggle() (State, error) {
	if s.state == Frozen {
		s.Reset()
		return s.state, nil
	}
	if _, err := s.Commit(); err != nil {
		return s.state, err
	}
	return s.state, nil
}
