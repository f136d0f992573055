package pathfunc

import (
	"math"

	"github.com/katalvlaran/ift/grid"
)

// AbsDiff weighs (s, t) by |I(s) − I(t)| on channel 0.
func AbsDiff[T grid.Number](img *grid.Image[T]) Weight {
	return func(s, t grid.Node) float64 {
		return math.Abs(img.Float(s) - img.Float(t))
	}
}

// TargetValue weighs (s, t) by I(t). Over a gradient image this is the
// watershed arc weight.
func TargetValue[T grid.Number](img *grid.Image[T]) Weight {
	return func(_, t grid.Node) float64 {
		return img.Float(t)
	}
}

// SumValues weighs (s, t) by I(s) + I(t).
func SumValues[T grid.Number](img *grid.Image[T]) Weight {
	return func(s, t grid.Node) float64 {
		return img.Float(s) + img.Float(t)
	}
}

// FeatureDistance weighs (s, t) by the Euclidean distance of their
// feature vectors over every channel.
func FeatureDistance[T grid.Number](img *grid.Image[T]) Weight {
	return img.Distance
}

// Values weighs (s, t) by v[t]. It adapts precomputed per-node maps such
// as densities or gradients.
func Values(v []float64) Weight {
	return func(_, t grid.Node) float64 {
		return v[t]
	}
}
