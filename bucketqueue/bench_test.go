package bucketqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ift/bucketqueue"
	"github.com/katalvlaran/ift/grid"
)

// BenchmarkQueue_InsertRemove measures a full fill and drain of 1<<16 nodes
// with costs in [0, 256).
func BenchmarkQueue_InsertRemove(b *testing.B) {
	const n = 1 << 16
	rng := rand.New(rand.NewSource(1))
	costs := make([]float64, n)
	for i := range costs {
		costs[i] = float64(rng.Intn(256))
	}
	q, _ := bucketqueue.New(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Reset()
		for v, c := range costs {
			_ = q.Insert(grid.Node(v), c)
		}
		for !q.Empty() {
			_, _ = q.RemoveMin()
		}
	}
}
