package stats

import (
	"context"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/grid"
)

// MaxArcWeight returns the largest feature distance between adjacent
// nodes, 0 for an image without arcs.
func MaxArcWeight[T grid.Number](ctx context.Context, img *grid.Image[T], rel *adjacency.Relation, opts ...Option) (float64, error) {
	cfg := apply(opts)
	partial := make([]float64, max(cfg.Shards, 1))
	err := scan(ctx, img.Domain(), rel, cfg, func(it *adjacency.Iterator, shard int, n grid.Node) {
		for _, t := range it.Neighbors(n) {
			if d := img.Distance(n, t); d > partial[shard] {
				partial[shard] = d
			}
		}
	})
	if err != nil {
		return 0, err
	}

	return floats.Max(partial), nil
}

// ArcWeights returns the distinct feature distances between adjacent
// nodes, ascending. Each shard sorts its own weights; the shards are then
// merged and deduplicated.
func ArcWeights[T grid.Number](ctx context.Context, img *grid.Image[T], rel *adjacency.Relation, opts ...Option) ([]float64, error) {
	cfg := apply(opts)
	partial := make([][]float64, max(cfg.Shards, 1))
	err := scan(ctx, img.Domain(), rel, cfg, func(it *adjacency.Iterator, shard int, n grid.Node) {
		for _, t := range it.Neighbors(n) {
			partial[shard] = append(partial[shard], img.Distance(n, t))
		}
	})
	if err != nil {
		return nil, err
	}
	var weights []float64
	for _, p := range partial {
		slices.Sort(p)
		weights = append(weights, slices.Compact(p)...)
	}
	slices.Sort(weights)

	return slices.Compact(weights), nil
}

// Resolution returns the smallest gap between consecutive values of an
// ascending slice, or 0 when it holds fewer than two distinct values.
// Bucket widths below it keep distinct values in distinct buckets.
func Resolution(sorted []float64) float64 {
	res := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i] - sorted[i-1]; d > 0 && d < res {
			res = d
		}
	}
	if math.IsInf(res, 1) {
		return 0
	}

	return res
}

// Gradient returns, per node, the sum of feature distances to its
// in-domain neighbors.
func Gradient[T grid.Number](ctx context.Context, img *grid.Image[T], rel *adjacency.Relation, opts ...Option) ([]float64, error) {
	grad := make([]float64, img.Len())
	err := scan(ctx, img.Domain(), rel, apply(opts), func(it *adjacency.Iterator, _ int, n grid.Node) {
		var sum float64
		for _, t := range it.Neighbors(n) {
			sum += img.Distance(n, t)
		}
		grad[n] = sum
	})
	if err != nil {
		return nil, err
	}

	return grad, nil
}

// Density returns the Gaussian density of every node over its
// neighborhood:
//
//	density(n) = (1 + Σ exp(−d(n,t)/σ)) / (1 + |neighbors(n)|)
//
// Returns ErrBadSigma unless sigma is finite and positive.
func Density[T grid.Number](ctx context.Context, img *grid.Image[T], rel *adjacency.Relation, sigma float64, opts ...Option) ([]float64, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadSigma, sigma)
	}
	dens := make([]float64, img.Len())
	err := scan(ctx, img.Domain(), rel, apply(opts), func(it *adjacency.Iterator, _ int, n grid.Node) {
		sum, count := 1.0, 1
		for _, t := range it.Neighbors(n) {
			sum += math.Exp(-img.Distance(n, t) / sigma)
			count++
		}
		dens[n] = sum / float64(count)
	})
	if err != nil {
		return nil, err
	}

	return dens, nil
}

// Sigma returns the density bandwidth for a maximum arc weight: 2w/9, or 1
// when w is 0.
func Sigma(maxWeight float64) float64 {
	if s := 2 * maxWeight / 9; s > 0 {
		return s
	}

	return 1
}

// Describe summarizes values. An empty map yields a zero Summary.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}

	return Summary{
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   mean,
		StdDev: std,
	}
}
