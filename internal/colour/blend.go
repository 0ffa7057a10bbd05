package colour

import "math"

// Corner colours of the surface. Yellow at the far corner boosts red and
// green but never blue.
var (
	CornerOrigin   = RGB{R: 255}
	CornerRight    = RGB{B: 255}
	CornerBottom   = RGB{G: 255}
	CornerDiagonal = RGB{R: 255, G: 255}
)

// Weights holds the bilinear weight of each corner. The four weights sum to
// 1 for any fraction pair in [0,1]².
type Weights struct {
	Origin   float64
	Right    float64
	Bottom   float64
	Diagonal float64
}

// CornerWeights computes the bilinear corner weights for the fractions x
// and y. Fractions outside [0,1] are clamped.
func CornerWeights(x, y float64) Weights {
	x = clampUnit(x)
	y = clampUnit(y)
	return Weights{
		Origin:   (1 - x) * (1 - y),
		Right:    x * (1 - y),
		Bottom:   (1 - x) * y,
		Diagonal: x * y,
	}
}

// Blend maps a normalised position to the background colour.
//
// Each corner contributes round(255*weight) to its channel and the yellow
// diagonal contribution is added to both red and green. Red and green are
// capped at 255; blue cannot exceed it since its weight is at most 1.
func Blend(x, y float64) RGB {
	w := CornerWeights(x, y)

	r := scale(w.Origin)
	b := scale(w.Right)
	g := scale(w.Bottom)
	yellow := scale(w.Diagonal)

	return RGB{
		R: uint8(min(255, r+yellow)),
		G: uint8(min(255, g+yellow)),
		B: uint8(b),
	}
}

// scale converts a weight in [0,1] to a channel contribution. math.Round
// rounds half away from zero, which matches round-half-up for the
// non-negative weights used here.
func scale(w float64) int {
	return int(math.Round(255 * w))
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
