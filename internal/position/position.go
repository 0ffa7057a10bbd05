// Package position maps raw pointer coordinates onto a bounded surface.
package position

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidBounds is returned when the surface has a non-positive width or height.
	ErrInvalidBounds = errors.New("surface bounds must be positive")

	// ErrInvalidOccluder is returned when the marker half-size is negative.
	ErrInvalidOccluder = errors.New("marker half-size must not be negative")

	// ErrInvalidSample is returned when a pointer coordinate is not a number.
	ErrInvalidSample = errors.New("pointer sample is not a number")
)

// Rect is the bounding box of the interactive surface.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sample is a raw pointer coordinate in surface space.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Occluder describes the tracked marker. HalfSize is half its width.
type Occluder struct {
	HalfSize float64 `json:"half_size"`
}

// Normalized holds the clamped position as fractions of the surface size.
type Normalized struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result is the outcome of mapping a sample: where to draw the marker and
// the fractions that drive the colour.
type Result struct {
	Target   Sample     `json:"target"`
	Fraction Normalized `json:"fraction"`
}

// ClampAndNormalize clamps sample so the whole marker stays inside bounds,
// then expresses the clamped point as fractions of the bounds.
//
// When the marker is wider than the surface the clamp range is inverted;
// the lower bound wins and the target sits at HalfSize on that axis.
func ClampAndNormalize(sample Sample, bounds Rect, occ Occluder) (Result, error) {
	if !(bounds.Width > 0) || !(bounds.Height > 0) {
		return Result{}, errors.Wrapf(ErrInvalidBounds, "%vx%v", bounds.Width, bounds.Height)
	}
	if !(occ.HalfSize >= 0) {
		return Result{}, errors.Wrapf(ErrInvalidOccluder, "half-size %v", occ.HalfSize)
	}
	if math.IsNaN(sample.X) || math.IsNaN(sample.Y) {
		return Result{}, errors.Wrapf(ErrInvalidSample, "(%v, %v)", sample.X, sample.Y)
	}

	x := clamp(sample.X, occ.HalfSize, bounds.Width-occ.HalfSize)
	y := clamp(sample.Y, occ.HalfSize, bounds.Height-occ.HalfSize)

	return Result{
		Target: Sample{X: x, Y: y},
		Fraction: Normalized{
			X: x / bounds.Width,
			Y: y / bounds.Height,
		},
	}, nil
}

// clamp applies the upper bound first so lo wins when lo > hi.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
