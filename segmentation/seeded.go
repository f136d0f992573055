package segmentation

import (
	"context"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/stats"
)

// seeded holds what every seeded method derives from its input image.
type seeded struct {
	cfg       Options
	rel       *adjacency.Relation
	handicap  []float64
	intensity []float64
}

func prepare[T grid.Number](ctx context.Context, img *grid.Image[T], obj, bkg []grid.Node, opts []Option) (*seeded, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if len(obj) == 0 {
		return nil, ErrNoObjectSeeds
	}
	if len(bkg) == 0 {
		return nil, ErrNoBackgroundSeeds
	}
	rel, err := relation(cfg, img.Domain())
	if err != nil {
		return nil, err
	}
	grad, err := stats.Gradient(ctx, img, rel, cfg.Stats...)
	if err != nil {
		return nil, err
	}

	return &seeded{cfg: cfg, rel: rel, handicap: grad, intensity: img.Floats()}, nil
}

func relation(cfg Options, dom grid.Domain) (*adjacency.Relation, error) {
	if cfg.Relation != nil {
		return cfg.Relation, nil
	}

	return adjacency.HyperSpheric(1.5, dom.Dims())
}

// seeds labels obj as Object and bkg as Background, all at cost 0.
func seeds(obj, bkg []grid.Node) []engine.Seed {
	out := make([]engine.Seed, 0, len(obj)+len(bkg))
	for _, n := range obj {
		out = append(out, engine.Seed{Node: n, Label: Object})
	}
	for _, n := range bkg {
		out = append(out, engine.Seed{Node: n, Label: Background})
	}

	return out
}

// schedule returns the engine options of a run whose arcs add at least
// step to a path cost and at most span. Buckets step wide settle nodes in
// exact cost order; when span needs more than spanBuckets of them the
// buckets widen and keep their nodes sorted instead. Integer costs pass
// step 1.
func schedule(cfg Options, step, span float64) []engine.Option {
	opts := []engine.Option{
		engine.WithLogger(cfg.Logger),
		engine.WithTieBreak(cfg.TieBreak),
	}
	if step > 0 && !math.IsInf(step, 0) && span/step <= spanBuckets {
		return append(opts, engine.WithBucketSize(step))
	}

	return append(opts, engine.WithBucketSize(bucketFor(span)), engine.WithOrderedBuckets())
}

// bucketFor returns the bucket width that keeps an arc of cost span within
// spanBuckets buckets.
func bucketFor(span float64) float64 {
	if math.IsNaN(span) || span <= spanBuckets {
		return 1
	}

	return math.Ceil(span / spanBuckets)
}

// maxHandicap returns the largest handicap value.
func maxHandicap(h []float64) float64 {
	if len(h) == 0 {
		return 0
	}

	return floats.Max(h)
}

func result(f *engine.Forest) *Result {
	return &Result{Label: f.Label, Object: f.Mask(Object), Forest: f}
}
