package bucketqueue

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ift/grid"
)

// Queue is a bucket queue over the nodes [0, size). It is not safe for
// concurrent use.
type Queue struct {
	nodes   []record
	ring    []bucket
	minKey  int64
	maxKey  int64
	count   int
	delta   float64
	tie     TieBreak
	maxRing int
	ordered bool
	grows   int
}

// New allocates a Queue for size nodes.
// Returns ErrBadSize, ErrTooManyNodes, ErrBadBucketSize or ErrBadMaxBuckets.
// Complexity: O(size + InitialBuckets).
func New(size int, opts ...Option) (*Queue, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if size < 0 {
		return nil, ErrBadSize
	}
	if size > grid.MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes", ErrTooManyNodes, size)
	}
	if !(cfg.BucketSize > 0) || math.IsInf(cfg.BucketSize, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadBucketSize, cfg.BucketSize)
	}
	if cfg.MaxBuckets < 1 {
		return nil, ErrBadMaxBuckets
	}
	initial := min(max(cfg.InitialBuckets, 1), cfg.MaxBuckets)

	q := &Queue{
		nodes:   make([]record, size),
		ring:    make([]bucket, initial),
		delta:   cfg.BucketSize,
		tie:     cfg.TieBreak,
		maxRing: cfg.MaxBuckets,
		ordered: cfg.Ordered,
	}
	q.Reset()

	return q, nil
}

// Reset returns every node to NotVisited and empties the ring. The ring
// keeps its current capacity.
// Complexity: O(size + ring).
func (q *Queue) Reset() {
	for i := range q.nodes {
		q.nodes[i] = record{prev: grid.NoNode, next: grid.NoNode, cost: math.Inf(1)}
	}
	for i := range q.ring {
		q.ring[i] = emptyBucket
	}
	q.count = 0
	q.minKey, q.maxKey = 0, 0
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return q.count }

// Empty reports whether no node is queued.
func (q *Queue) Empty() bool { return q.count == 0 }

// Size returns the node capacity.
func (q *Queue) Size() int { return len(q.nodes) }

// Buckets returns the current ring size.
func (q *Queue) Buckets() int { return len(q.ring) }

// Grows returns how many times the ring was renormalized since New.
func (q *Queue) Grows() int { return q.grows }

// TieBreak returns the in-bucket order policy.
func (q *Queue) TieBreak() TieBreak { return q.tie }

// Status returns the lifecycle state of n. Out-of-range nodes report NotVisited.
func (q *Queue) Status(n grid.Node) Status {
	if int(n) >= len(q.nodes) {
		return NotVisited
	}

	return q.nodes[n].status
}

// Cost returns the cost n was last queued with, or +Inf if it never was.
func (q *Queue) Cost(n grid.Node) float64 {
	if int(n) >= len(q.nodes) {
		return math.Inf(1)
	}

	return q.nodes[n].cost
}

// Insert queues a NotVisited node with cost.
// Returns ErrNodeRange, ErrBadCost, ErrDuplicate (already queued),
// ErrSettled, or ErrRange when the live range outgrows MaxBuckets.
// Complexity: O(1) amortized.
func (q *Queue) Insert(n grid.Node, cost float64) error {
	if err := q.check(n, cost); err != nil {
		return err
	}
	switch q.nodes[n].status {
	case InQueue:
		return fmt.Errorf("%w: node %d", ErrDuplicate, n)
	case Settled:
		return fmt.Errorf("%w: node %d", ErrSettled, n)
	}
	k := q.key(cost)
	if err := q.fit(k); err != nil {
		return err
	}
	q.nodes[n].cost = cost
	q.link(n, k)
	q.nodes[n].status = InQueue
	q.count++

	return nil
}

// DecreaseKey moves a queued node to the bucket of newCost, or inserts it if
// it was never queued. Returns ErrIncrease if newCost is above the recorded
// cost, ErrSettled for settled nodes, plus the errors of Insert.
// Complexity: O(1) amortized.
func (q *Queue) DecreaseKey(n grid.Node, newCost float64) error {
	if err := q.check(n, newCost); err != nil {
		return err
	}
	rec := &q.nodes[n]
	switch rec.status {
	case NotVisited:
		return q.Insert(n, newCost)
	case Settled:
		return fmt.Errorf("%w: node %d", ErrSettled, n)
	}
	if newCost > rec.cost {
		return fmt.Errorf("%w: node %d from %g to %g", ErrIncrease, n, rec.cost, newCost)
	}
	k := q.key(newCost)
	if err := q.fit(k); err != nil {
		return err
	}
	q.unlink(n, q.key(rec.cost))
	rec.cost = newCost
	q.link(n, k)

	return nil
}

// RemoveMin pops the head of the lowest non-empty bucket and marks it
// Settled. Returns ErrEmpty when nothing is queued.
// Complexity: O(1) amortized; the minimum pointer only moves forward
// between decreases.
func (q *Queue) RemoveMin() (grid.Node, error) {
	if q.count == 0 {
		return grid.NoNode, ErrEmpty
	}
	slot := q.slot(q.minKey)
	for q.ring[slot].first == grid.NoNode {
		q.minKey++
		slot = q.slot(q.minKey)
	}
	n := q.ring[slot].first
	q.unlink(n, q.minKey)
	q.nodes[n].status = Settled
	q.count--

	return n, nil
}

// Finish marks n Settled without popping it, unlinking it first if it is
// queued. Settled nodes are never queued again until Reset; the engine uses
// this to fence off nodes outside its mask.
func (q *Queue) Finish(n grid.Node) error {
	if int(n) >= len(q.nodes) {
		return fmt.Errorf("%w: node %d of %d", ErrNodeRange, n, len(q.nodes))
	}
	rec := &q.nodes[n]
	if rec.status == InQueue {
		q.unlink(n, q.key(rec.cost))
		q.count--
	}
	rec.status = Settled

	return nil
}

// Ordered reports whether buckets are kept sorted by exact cost.
func (q *Queue) Ordered() bool { return q.ordered }

// PeekMin returns the node RemoveMin would return, without removing it.
func (q *Queue) PeekMin() (grid.Node, error) {
	if q.count == 0 {
		return grid.NoNode, ErrEmpty
	}
	for k := q.minKey; ; k++ {
		if first := q.ring[q.slot(k)].first; first != grid.NoNode {
			return first, nil
		}
	}
}

func (q *Queue) check(n grid.Node, cost float64) error {
	if int(n) >= len(q.nodes) {
		return fmt.Errorf("%w: node %d of %d", ErrNodeRange, n, len(q.nodes))
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: node %d cost %g", ErrBadCost, n, cost)
	}
	if k := cost / q.delta; !(math.Abs(k) < MaxKey) {
		return fmt.Errorf("%w: node %d cost %g is %g buckets from zero", ErrRange, n, cost, k)
	}

	return nil
}

// key quantizes a cost. check bounds the quotient, so keys and the spans
// between them never overflow int64.
func (q *Queue) key(cost float64) int64 {
	return int64(math.Floor(cost / q.delta))
}

// slot maps a key onto the ring, also for negative keys.
func (q *Queue) slot(k int64) int {
	n := int64(len(q.ring))
	s := k % n
	if s < 0 {
		s += n
	}

	return int(s)
}

// fit widens the live range to include k, renormalizing the ring if needed.
func (q *Queue) fit(k int64) error {
	if q.count == 0 {
		q.minKey, q.maxKey = k, k
		return nil
	}
	lo, hi := min(q.minKey, k), max(q.maxKey, k)
	span := hi - lo + 1
	if span > int64(q.maxRing) {
		return fmt.Errorf("%w: keys [%d, %d] need %d buckets, budget %d", ErrRange, lo, hi, span, q.maxRing)
	}
	if span > int64(len(q.ring)) {
		q.grow(int(span))
	}
	q.minKey, q.maxKey = lo, hi

	return nil
}

// grow renormalizes the ring so that span consecutive keys fit. Buckets of
// the current live range are moved to their slots in the new ring.
func (q *Queue) grow(span int) {
	size := len(q.ring)
	for size < span {
		size *= 2
	}
	size = min(size, q.maxRing)
	ring := make([]bucket, size)
	for i := range ring {
		ring[i] = emptyBucket
	}
	for k := q.minKey; k <= q.maxKey; k++ {
		s := k % int64(size)
		if s < 0 {
			s += int64(size)
		}
		ring[s] = q.ring[q.slot(k)]
	}
	q.ring = ring
	q.grows++
}

// link adds n to bucket k at its tie-break end. Ordered queues walk in
// from that end past every node of strictly worse cost.
func (q *Queue) link(n grid.Node, k int64) {
	b := &q.ring[q.slot(k)]
	rec := &q.nodes[n]
	if b.first == grid.NoNode {
		rec.prev, rec.next = grid.NoNode, grid.NoNode
		b.first, b.last = n, n
		return
	}
	if q.ordered {
		q.linkOrdered(b, n)
		return
	}
	if q.tie == LIFO {
		rec.prev, rec.next = grid.NoNode, b.first
		q.nodes[b.first].prev = n
		b.first = n
		return
	}
	rec.prev, rec.next = b.last, grid.NoNode
	q.nodes[b.last].next = n
	b.last = n
}

func (q *Queue) linkOrdered(b *bucket, n grid.Node) {
	rec := &q.nodes[n]
	if q.tie == LIFO {
		// before the first node whose cost is not lower
		next := b.first
		for next != grid.NoNode && q.nodes[next].cost < rec.cost {
			next = q.nodes[next].next
		}
		q.insertBefore(b, n, next)
		return
	}
	// after the last node whose cost is not higher
	prev := b.last
	for prev != grid.NoNode && q.nodes[prev].cost > rec.cost {
		prev = q.nodes[prev].prev
	}
	if prev == grid.NoNode {
		q.insertBefore(b, n, b.first)
		return
	}
	q.insertBefore(b, n, q.nodes[prev].next)
}

// insertBefore links n in front of next, or at the tail when next is NoNode.
func (q *Queue) insertBefore(b *bucket, n, next grid.Node) {
	rec := &q.nodes[n]
	rec.next = next
	if next == grid.NoNode {
		rec.prev = b.last
		b.last = n
	} else {
		rec.prev = q.nodes[next].prev
		q.nodes[next].prev = n
	}
	if rec.prev == grid.NoNode {
		b.first = n
	} else {
		q.nodes[rec.prev].next = n
	}
}

func (q *Queue) unlink(n grid.Node, k int64) {
	b := &q.ring[q.slot(k)]
	rec := &q.nodes[n]
	if rec.prev == grid.NoNode {
		b.first = rec.next
	} else {
		q.nodes[rec.prev].next = rec.next
	}
	if rec.next == grid.NoNode {
		b.last = rec.prev
	} else {
		q.nodes[rec.next].prev = rec.prev
	}
	rec.prev, rec.next = grid.NoNode, grid.NoNode
}
