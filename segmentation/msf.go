package segmentation

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
	"github.com/katalvlaran/ift/stats"
)

// MinimumSpanningForest splits img into regions parts. An ArcPath run from
// node 0 builds the minimum spanning tree of the feature distances; the
// regions−1 heaviest tree arcs are cut and every node takes the label of
// the root above it. Roots are numbered by ascending node index. Equal
// weights are cut at the higher node index first.
//
// The run is scheduled on the rank of each distance among the distinct arc
// weights, so fractional distances settle in exact order. Forest.Cost
// holds the distances themselves.
//
// Returns ErrBadRegions, ErrDisconnected when the adjacency leaves nodes
// unreachable from node 0, stats scan errors, context errors or engine
// errors.
// Complexity: O(N·|A|·log W) for the tree over W distinct weights,
// O(N·|A| log(N·|A|)) to rank them, O(N log N) for the cut.
func MinimumSpanningForest[T grid.Number](ctx context.Context, img *grid.Image[T], regions int, opts ...Option) (*Partition, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	dom := img.Domain()
	n := dom.Len()
	if regions < 1 || regions > n {
		return nil, fmt.Errorf("%w: %d regions for %d nodes", ErrBadRegions, regions, n)
	}
	rel, err := relation(cfg, dom)
	if err != nil {
		return nil, err
	}
	weights, err := stats.ArcWeights(ctx, img, rel, cfg.Stats...)
	if err != nil {
		return nil, err
	}
	fn, err := pathfunc.NewArcPath(func(s, t grid.Node) float64 {
		i, _ := slices.BinarySearch(weights, img.Distance(s, t))
		return float64(i)
	})
	if err != nil {
		return nil, err
	}
	tree, err := engine.Transform(dom, rel, fn, []engine.Seed{{Node: 0}},
		engine.WithLogger(cfg.Logger),
		engine.WithTieBreak(cfg.TieBreak),
		engine.WithMaxBuckets(max(len(weights)+1, engine.DefaultOptions().MaxBuckets)),
	)
	if err != nil {
		return nil, err
	}
	if len(tree.Order) != n {
		return nil, fmt.Errorf("%w: %d of %d nodes reached", ErrDisconnected, len(tree.Order), n)
	}
	for v, p := range tree.Predecessor {
		if p != grid.NoNode {
			tree.Cost[v] = weights[int(tree.Cost[v])]
		}
	}

	// tree arcs, lightest first; the last regions-1 are cut
	arcs := make([]grid.Node, 0, n-1)
	for v := 1; v < n; v++ {
		arcs = append(arcs, grid.Node(v))
	}
	slices.SortStableFunc(arcs, func(a, b grid.Node) int {
		return cmp.Compare(tree.Cost[a], tree.Cost[b])
	})
	for _, v := range arcs[len(arcs)-(regions-1):] {
		tree.Predecessor[v] = grid.NoNode
	}

	label := make([]int32, n)
	var next int32
	for v := range label {
		label[v] = engine.NoLabel
		if tree.Predecessor[v] == grid.NoNode {
			label[v] = next
			next++
		}
	}
	var chain []grid.Node
	for v := range label {
		u := grid.Node(v)
		for label[u] == engine.NoLabel {
			chain = append(chain, u)
			u = tree.Predecessor[u]
		}
		for _, c := range chain {
			label[c] = label[u]
		}
		chain = chain[:0]
	}
	copy(tree.Label, label)
	cfg.Logger.Debug("minimum spanning forest cut",
		zap.Int("nodes", n),
		zap.Int("regions", regions),
		zap.Int("weights", len(weights)),
		zap.Float64("resolution", stats.Resolution(weights)),
	)

	return &Partition{Label: label, Count: regions, Forest: tree}, nil
}
