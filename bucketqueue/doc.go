// Package bucketqueue implements a growing bucket queue: an amortized O(1)
// priority queue over quantized costs, used to schedule IFT relaxation.
//
// What:
//
//   - An arena of records, one per node, addressed by node index. Records
//     link the nodes of one bucket into a doubly linked list.
//   - A ring of bucket heads. Cost c lives in key k = ⌊c/BucketSize⌋ and in
//     ring slot k mod len(ring).
//   - The live key range [minKey, maxKey] always fits the ring. A key below
//     minKey lowers minKey; when the range outgrows the ring, the ring is
//     renormalized into a larger one, doubling until it fits.
//
// Tie-break:
//
//   - FIFO appends at a bucket's tail, LIFO pushes at its head. RemoveMin
//     always pops the head.
//   - Nodes sharing a bucket leave in tie-break order even when their costs
//     differ. WithOrdered keeps each bucket sorted by exact cost instead,
//     walking in from the tie-break end; only true ties follow the policy.
//
// DecreaseKey policy:
//
//   - Remove-then-reinsert. The node is unlinked and linked into the target
//     bucket as if freshly inserted, even when the key does not change.
//     Under FIFO a re-offered node goes behind every node already waiting in
//     that bucket. Raising a cost is an error.
//
// Complexity:
//
//   - Insert, DecreaseKey, Finish: O(1) amortized; O(bucket) for ordered
//     buckets that hold different costs.
//   - RemoveMin: O(1) amortized over a monotone run; the minimum pointer
//     only moves forward between decreases.
//   - Memory: O(size + live key range).
//   - Costs more than 2^62 buckets away from zero are rejected with ErrRange.
//
// Errors:
//
//   - ErrBadSize, ErrBadBucketSize, ErrBadMaxBuckets, ErrBadCost,
//     ErrNodeRange wrap ift.ErrConfiguration.
//   - ErrTooManyNodes, ErrRange wrap ift.ErrResource.
//   - ErrDuplicate, ErrSettled, ErrIncrease, ErrEmpty wrap ift.ErrLogic.
package bucketqueue
