// Package motion animates the pointer marker towards its clamped target.
package motion

import (
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEase is the easing used when none is configured.
const DefaultEase = "linear"

// DefaultDuration is how long the marker takes to reach a new target.
const DefaultDuration = 100 * time.Millisecond

// ErrUnknownEase is returned for easing names that are not registered.
var ErrUnknownEase = errors.New("unknown ease")

var eases = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-bounce":   ease.OutBounce,
}

// Ease returns the easing function registered under name. Matching is
// case-insensitive; "none" is an alias for linear.
func Ease(name string) (ease.TweenFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "none":
		key = DefaultEase
	}
	fn, ok := eases[key]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEase, "%q (valid: %s)", name, strings.Join(EaseNames(), ", "))
	}
	return fn, nil
}

// EaseNames returns the registered easing names, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(eases))
	for name := range eases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Marker tracks an animated 2D position. It is not safe for concurrent use.
type Marker struct {
	x, y     float64
	toX, toY float64
	tweenX   *gween.Tween
	tweenY   *gween.Tween
	duration float32
	fn       ease.TweenFunc
}

// NewMarker creates a marker at the origin. A non-positive duration makes
// every move instant; a nil fn means linear.
func NewMarker(duration time.Duration, fn ease.TweenFunc) *Marker {
	if fn == nil {
		fn = ease.Linear
	}
	return &Marker{
		duration: float32(duration.Seconds()),
		fn:       fn,
	}
}

// Position returns the current animated position.
func (m *Marker) Position() (float64, float64) {
	return m.x, m.y
}

// Animating reports whether a move is in progress.
func (m *Marker) Animating() bool {
	return m.tweenX != nil
}

// Jump places the marker at (x, y) and cancels any move in progress.
func (m *Marker) Jump(x, y float64) {
	m.x, m.y = x, y
	m.toX, m.toY = x, y
	m.tweenX, m.tweenY = nil, nil
}

// MoveTo starts a move from the current position to (x, y). A move in
// progress is replaced, starting from wherever the marker is now.
func (m *Marker) MoveTo(x, y float64) {
	if m.duration <= 0 || (x == m.x && y == m.y) {
		m.Jump(x, y)
		return
	}
	m.toX, m.toY = x, y
	m.tweenX = gween.New(float32(m.x), float32(x), m.duration, m.fn)
	m.tweenY = gween.New(float32(m.y), float32(y), m.duration, m.fn)
}

// Update advances the move by dt and reports whether the marker is still
// animating afterwards.
func (m *Marker) Update(dt time.Duration) bool {
	if m.tweenX == nil {
		return false
	}

	step := float32(dt.Seconds())
	vx, doneX := m.tweenX.Update(step)
	vy, doneY := m.tweenY.Update(step)
	m.x, m.y = float64(vx), float64(vy)

	if doneX && doneY {
		m.Jump(m.toX, m.toY)
		return false
	}
	return true
}
