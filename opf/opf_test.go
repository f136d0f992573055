package opf_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/ift"
	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/bucketqueue"
	"github.com/katalvlaran/ift/engine"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/opf"
	"github.com/katalvlaran/ift/stats"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func lineRel(t *testing.T) *adjacency.Relation {
	t.Helper()
	rel, err := adjacency.HyperSpheric(1, 1)
	require.NoError(t, err)
	return rel
}

// ------------------------------------------------------------------------
// 1. Clusters
// ------------------------------------------------------------------------

func TestSpatialClustering_FlatIsOneCluster(t *testing.T) {
	rows := make([][]int, 5)
	for y := range rows {
		rows[y] = []int{7, 7, 7, 7, 7}
	}
	img, err := grid.From2D(rows)
	require.NoError(t, err)
	rel, err := adjacency.Circular(1.5)
	require.NoError(t, err)

	res, err := opf.SpatialClustering(context.Background(), img, rel, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Clusters)
	assert.Equal(t, 1.0, res.Sigma)
	for n, l := range res.Label {
		assert.Equalf(t, int32(0), l, "node %d", n)
	}
	assert.Equal(t, []grid.Node{0}, res.Forest.Roots())
}

func TestSpatialClustering_TwoPlateaus(t *testing.T) {
	img, err := grid.From1D([]int{0, 0, 0, 0, 50, 50, 50, 50})
	require.NoError(t, err)

	res, err := opf.SpatialClustering(context.Background(), img, lineRel(t), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Clusters)
	assert.Equal(t, []int32{0, 0, 0, 0, 1, 1, 1, 1}, res.Label)
	assert.Equal(t, []grid.Node{0, 5}, res.Forest.Roots())
	assert.InDelta(t, 100.0/9, res.Sigma, 1e-12)

	// the boundary nodes are the least dense
	assert.InDelta(t, (2+math.Exp(-4.5))/3, res.Density[3], 1e-12)
	assert.InDelta(t, res.Density[3], res.Density[4], 1e-12)
	assert.Equal(t, 1.0, res.Density[0])
}

// TestSpatialClustering_DensityMatchesStats: the returned density is the
// stats estimate at the derived bandwidth.
func TestSpatialClustering_DensityMatchesStats(t *testing.T) {
	img := noise(t, 16, 16, 3)
	rel, err := adjacency.Circular(1.5)
	require.NoError(t, err)
	ctx := context.Background()

	res, err := opf.SpatialClustering(ctx, img, rel, 0.3)
	require.NoError(t, err)
	w, err := stats.MaxArcWeight(ctx, img, rel)
	require.NoError(t, err)
	want, err := stats.Density(ctx, img, rel, stats.Sigma(0.3*w))
	require.NoError(t, err)
	assert.Equal(t, want, res.Density)
	assert.GreaterOrEqual(t, res.Clusters, 1)
	assert.Equal(t, res.Clusters, len(res.Forest.Roots()))
}

// TestSpatialClustering_Deterministic: shard layout does not change the
// clustering.
func TestSpatialClustering_Deterministic(t *testing.T) {
	img := noise(t, 20, 12, 11)
	rel, err := adjacency.Circular(1.5)
	require.NoError(t, err)
	ctx := context.Background()

	a, err := opf.SpatialClustering(ctx, img, rel, 0.5)
	require.NoError(t, err)
	b, err := opf.SpatialClustering(ctx, img, rel, 0.5,
		opf.WithStatsOptions(stats.WithShards(3), stats.WithWorkers(1)))
	require.NoError(t, err)
	if diff := cmp.Diff(a.Label, b.Label); diff != "" {
		t.Fatalf("labels differ (-default +sharded):\n%s", diff)
	}
}

func TestSpatialClustering_EveryNodeLabeled(t *testing.T) {
	img := noise(t, 9, 9, 5)
	rel, err := adjacency.Circular(1)
	require.NoError(t, err)
	for _, tie := range []bucketqueue.TieBreak{bucketqueue.FIFO, bucketqueue.LIFO} {
		res, err := opf.SpatialClustering(context.Background(), img, rel, 0.2, opf.WithTieBreak(tie))
		require.NoError(t, err)
		for n, l := range res.Label {
			require.NotEqualf(t, engine.NoLabel, l, "node %d", n)
			require.Less(t, int(l), res.Clusters)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Errors and logging
// ------------------------------------------------------------------------

func TestSpatialClustering_Errors(t *testing.T) {
	img, err := grid.From1D([]int{0, 1, 2})
	require.NoError(t, err)
	ctx := context.Background()

	for _, f := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := opf.SpatialClustering(ctx, img, lineRel(t), f)
		assert.ErrorIs(t, err, opf.ErrBadFraction)
		assert.ErrorIs(t, err, ift.ErrConfiguration)
	}

	rel2, err := adjacency.Circular(1)
	require.NoError(t, err)
	_, err = opf.SpatialClustering(ctx, img, rel2, 0.5)
	assert.ErrorIs(t, err, adjacency.ErrDimensionMismatch)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = opf.SpatialClustering(cancelled, img, lineRel(t), 0.5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSpatialClustering_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	img, err := grid.From1D([]int{0, 0, 0, 0, 50, 50, 50, 50})
	require.NoError(t, err)

	_, err = opf.SpatialClustering(context.Background(), img, lineRel(t), 1, opf.WithLogger(zap.New(core)))
	require.NoError(t, err)
	entries := logs.FilterMessage("opf clustered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["clusters"])
	assert.Equal(t, 1.0, fields["density_max"])
	assert.Equal(t, 1, logs.FilterMessage("ift run settled").Len())
}

func noise(tb testing.TB, w, h int, seed int64) *grid.Image[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = rng.Intn(32) + 64*(x/(w/2))
		}
	}
	img, err := grid.From2D(rows)
	require.NoError(tb, err)
	return img
}
