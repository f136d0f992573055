package segmentation

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
)

// OrientedWatershed segments img with one oriented run over its gradient:
// object seeds carry Object, background seeds Background, and arcs whose
// intensity transition goes against orient cost more by the given
// strength. Strength 0 is the plain seeded watershed on h(s)+h(t).
//
// Returns ErrNoObjectSeeds, ErrNoBackgroundSeeds, pathfunc.ErrBadStrength,
// pathfunc.ErrBadOrientation, engine seed errors or context errors.
func OrientedWatershed[T grid.Number](ctx context.Context, img *grid.Image[T], obj, bkg []grid.Node, strength float64, orient pathfunc.Orientation, opts ...Option) (*Result, error) {
	sd, err := prepare(ctx, img, obj, bkg, opts)
	if err != nil {
		return nil, err
	}
	fn, err := pathfunc.NewOriented(orient, sd.handicap, sd.intensity, strength)
	if err != nil {
		return nil, err
	}
	span := math.Round(2*maxHandicap(sd.handicap)*(1+strength)) + 1
	f, err := engine.Transform(img.Domain(), sd.rel, fn, seeds(obj, bkg), schedule(sd.cfg, 1, span)...)
	if err != nil {
		return nil, err
	}
	res := result(f)
	sd.cfg.Logger.Debug("oriented watershed segmented",
		zap.Stringer("orientation", orient),
		zap.Float64("strength", strength),
		zap.Uint64("object", res.Object.GetCardinality()),
	)

	return res, nil
}
