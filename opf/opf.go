package opf

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
	"github.com/katalvlaran/ift/stats"
)

// SpatialClustering groups the nodes of img into density clusters over rel.
// fraction ∈ [0, 1] scales the largest arc weight into the bandwidth.
//
// Returns ErrBadFraction, adjacency.ErrDimensionMismatch, stats errors or
// context errors.
// Complexity: O(N·|A|) for the scans and the run.
func SpatialClustering[T grid.Number](ctx context.Context, img *grid.Image[T], rel *adjacency.Relation, fraction float64, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if !(fraction >= 0 && fraction <= 1) {
		return nil, fmt.Errorf("%w: %g", ErrBadFraction, fraction)
	}

	maxWeight, err := stats.MaxArcWeight(ctx, img, rel, cfg.Stats...)
	if err != nil {
		return nil, err
	}
	sigma := stats.Sigma(fraction * maxWeight)
	dens, err := stats.Density(ctx, img, rel, sigma, cfg.Stats...)
	if err != nil {
		return nil, err
	}
	summary := stats.Describe(dens)
	delta := (summary.Max - summary.Min) / plateauSteps
	if delta == 0 {
		delta = math.Max(summary.Max, 1) / plateauSteps
	}

	strength := make([]float64, len(dens))
	seeds := make([]engine.Seed, len(dens))
	for n, d := range dens {
		strength[n] = -(d + delta)
		seeds[n] = engine.Seed{Node: grid.Node(n), Cost: -d}
	}
	mp, err := pathfunc.NewMinPath(pathfunc.Values(strength))
	if err != nil {
		return nil, err
	}
	f, err := engine.Transform(img.Domain(), rel, densityPath{mp, strength}, seeds,
		engine.WithLogger(cfg.Logger),
		engine.WithTieBreak(cfg.TieBreak),
		engine.WithBucketSize(delta/2),
		engine.WithCompetingSeeds(),
		engine.WithSequentialLabels(),
	)
	if err != nil {
		return nil, err
	}
	clusters := f.LabelCount()
	cfg.Logger.Debug("opf clustered",
		zap.Int("nodes", len(dens)),
		zap.Int("clusters", clusters),
		zap.Float64("sigma", sigma),
		zap.Float64("delta", delta),
		zap.Float64("density_min", summary.Min),
		zap.Float64("density_max", summary.Max),
		zap.Float64("density_mean", summary.Mean),
		zap.Float64("density_stddev", summary.StdDev),
	)

	return &Result{Label: f.Label, Clusters: clusters, Density: dens, Sigma: sigma, Forest: f}, nil
}

// densityPath is the maximin density connectivity in negated form. Roots
// settle at their plateau strength −(density + δ).
type densityPath struct {
	*pathfunc.MinPath
	strength []float64
}

// RootCost implements pathfunc.RootCoster.
func (p densityPath) RootCost(n grid.Node) float64 { return p.strength[n] }
