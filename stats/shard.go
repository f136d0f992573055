package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/grid"
)

// checkEvery is how many nodes a worker scans between context checks.
const checkEvery = 4096

// Range is the half-open node interval [Lo, Hi) of one shard.
type Range struct {
	Lo, Hi int
}

// Ranges cuts [0, n) into parts contiguous ranges whose sizes differ by at
// most one. Empty ranges are kept so that shard i always maps to index i.
func Ranges(n, parts int) []Range {
	out := make([]Range, parts)
	for i := range out {
		out[i] = Range{Lo: i * n / parts, Hi: (i + 1) * n / parts}
	}

	return out
}

// scanFunc visits node n of a shard. it belongs to the calling worker.
type scanFunc func(it *adjacency.Iterator, shard int, n grid.Node)

// scan runs visit over every node of dom, one errgroup task per shard.
func scan(ctx context.Context, dom grid.Domain, rel *adjacency.Relation, cfg Options, visit scanFunc) error {
	if cfg.Shards < 1 {
		return ErrBadShards
	}
	if cfg.Workers < 1 {
		return ErrBadWorkers
	}
	// fail on a dimension mismatch before starting any worker
	if _, err := adjacency.NewIterator(dom, rel); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for shard, r := range Ranges(dom.Len(), cfg.Shards) {
		g.Go(func() error {
			it, err := adjacency.NewIterator(dom, rel)
			if err != nil {
				return err
			}
			for n := r.Lo; n < r.Hi; n++ {
				if (n-r.Lo)%checkEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				visit(it, shard, grid.Node(n))
			}
			return nil
		})
	}

	return g.Wait()
}

func apply(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
