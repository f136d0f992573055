package segmentation

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/pathfunc"
	"github.com/katalvlaran/ift/stats"
)

func TestSchedule_Widths(t *testing.T) {
	cases := []struct {
		name    string
		step    float64
		span    float64
		width   float64
		ordered bool
	}{
		{"integer arcs", 1, 255, 1, false},
		{"fractional lengths", 0.3, 40, 0.3, false},
		{"span past the budget", 1, 3 * spanBuckets, 3, true},
		{"zero step", 0, 10, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := engine.DefaultOptions()
			for _, opt := range schedule(DefaultOptions(), tc.step, tc.span) {
				opt(&cfg)
			}
			assert.Equal(t, tc.width, cfg.BucketSize)
			assert.Equal(t, tc.ordered, cfg.OrderedBuckets)
		})
	}
}

// TestSchedule_SumPathExact: with pixels shorter than one unit the star run
// still reaches the costs of a run in exact cost order.
func TestSchedule_SumPathExact(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rows := make([][]int, 10)
	for y := range rows {
		rows[y] = make([]int, 10)
		for x := range rows[y] {
			rows[y][x] = rng.Intn(50)
		}
	}
	img, err := grid.From2D(rows, grid.WithPixelSize(0.3, 0.7))
	require.NoError(t, err)
	rel, err := adjacency.HyperSpheric(1.5, 2)
	require.NoError(t, err)
	grad, err := stats.Gradient(context.Background(), img, rel)
	require.NoError(t, err)
	dist := rel.Distances(img.Domain().PixelSizes())

	run := func(opts ...engine.Option) []float64 {
		sum, err := pathfunc.NewSumPath(grad, img.Floats(), 0.5, 1)
		require.NoError(t, err)
		f, err := engine.Transform(img.Domain(), rel, sum, []engine.Seed{{Node: 0, Label: Object}}, opts...)
		require.NoError(t, err)
		return f.Cost
	}
	w := math.Round(2*floats.Max(grad)*1.5) + 1
	want := run(engine.WithOrderedBuckets())
	got := run(schedule(DefaultOptions(), floats.Min(dist), w+floats.Max(dist))...)
	assert.InDeltaSlice(t, want, got, 1e-9)
}
