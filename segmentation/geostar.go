package segmentation

import (
	"context"
	"math"
	"slices"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
)

// GeodesicStar segments img from object and background seeds with the
// oriented geodesic star.
//
// The first run grows SumPath(α, β) from the object seeds alone; its
// predecessor forest is the star. The second run is OrientedExtern (α ≥ 0)
// or OrientedIntern (α < 0) with strength |α| from all seeds, and an arc of
// the star costs nothing to the side that follows it: object paths walking
// toward the star roots, background paths walking away from them.
//
// α ∈ [−1, 1], β ∈ [0, 4].
// Returns ErrNoObjectSeeds, ErrNoBackgroundSeeds, pathfunc.ErrBadAlpha,
// pathfunc.ErrBadBeta, engine seed errors or context errors.
func GeodesicStar[T grid.Number](ctx context.Context, img *grid.Image[T], obj, bkg []grid.Node, alpha, beta float64, opts ...Option) (*Result, error) {
	sd, err := prepare(ctx, img, obj, bkg, opts)
	if err != nil {
		return nil, err
	}
	cfg, dom := sd.cfg, img.Domain()

	sum, err := pathfunc.NewSumPath(sd.handicap, sd.intensity, alpha, beta)
	if err != nil {
		return nil, err
	}
	w := math.Round(2*maxHandicap(sd.handicap)*(1+math.Abs(alpha))) + 1
	dist := sd.rel.Distances(dom.PixelSizes())
	span := math.Pow(w, beta) + floats.Max(dist)
	objSeeds := make([]engine.Seed, len(obj))
	for i, n := range obj {
		objSeeds[i] = engine.Seed{Node: n, Label: Object}
	}
	// every arc adds at least its physical length
	star, err := engine.Transform(dom, sd.rel, sum, objSeeds, schedule(cfg, floats.Min(dist), span)...)
	if err != nil {
		return nil, err
	}

	// background seeds never hang below a star node
	restriction := slices.Clone(star.Predecessor)
	for _, n := range bkg {
		if dom.Contains(n) {
			restriction[n] = grid.NoNode
		}
	}
	orient := pathfunc.Extern
	if alpha < 0 {
		orient = pathfunc.Intern
	}
	fn, err := pathfunc.NewOriented(orient, sd.handicap, sd.intensity, math.Abs(alpha), pathfunc.WithRestriction(restriction))
	if err != nil {
		return nil, err
	}
	f, err := engine.Transform(dom, sd.rel, fn, seeds(obj, bkg), schedule(cfg, 1, w)...)
	if err != nil {
		return nil, err
	}
	res := result(f)
	cfg.Logger.Debug("geodesic star segmented",
		zap.Int("nodes", dom.Len()),
		zap.Int("object_seeds", len(obj)),
		zap.Int("background_seeds", len(bkg)),
		zap.Float64("alpha", alpha),
		zap.Float64("beta", beta),
		zap.Uint64("object", res.Object.GetCardinality()),
	)

	return res, nil
}
