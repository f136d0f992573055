package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/ift/grid"
)

// Forest is the result of one run. It owns its arrays; the engine never
// touches them again.
//
// Cost        – optimum path cost per node, +Inf where unreached.
// Predecessor – parent in the forest, grid.NoNode for roots and unreached nodes.
// Label       – label per node, NoLabel where unreached.
// Order       – nodes in settle order.
type Forest struct {
	Cost        []float64
	Predecessor []grid.Node
	Label       []int32
	Order       []grid.Node

	dom grid.Domain
}

// Domain returns the domain the forest spans.
func (f *Forest) Domain() grid.Domain { return f.dom }

// Len returns the node count.
func (f *Forest) Len() int { return len(f.Cost) }

// Reached reports whether some seed reached n.
func (f *Forest) Reached(n grid.Node) bool {
	return int(n) < len(f.Cost) && !math.IsInf(f.Cost[n], 1)
}

// Roots returns the reached nodes without a predecessor, ascending.
func (f *Forest) Roots() []grid.Node {
	var roots []grid.Node
	for n, p := range f.Predecessor {
		if p == grid.NoNode && !math.IsInf(f.Cost[n], 1) {
			roots = append(roots, grid.Node(n))
		}
	}

	return roots
}

// Root returns the root of the tree that holds n.
// Returns ErrNodeRange, ErrUnreached or ErrCycle.
func (f *Forest) Root(n grid.Node) (grid.Node, error) {
	if err := f.reachable(n); err != nil {
		return grid.NoNode, err
	}
	for steps := 0; ; steps++ {
		if steps > len(f.Predecessor) {
			return grid.NoNode, fmt.Errorf("%w: from node %d", ErrCycle, n)
		}
		p := f.Predecessor[n]
		if p == grid.NoNode {
			return n, nil
		}
		n = p
	}
}

// ReconstructPath returns the optimum path from its root to n, both ends
// included. Returns ErrNodeRange, ErrUnreached or ErrCycle.
// Complexity: O(depth).
func (f *Forest) ReconstructPath(n grid.Node) ([]grid.Node, error) {
	if err := f.reachable(n); err != nil {
		return nil, err
	}
	path := []grid.Node{n}
	for p := f.Predecessor[n]; p != grid.NoNode; p = f.Predecessor[p] {
		if len(path) > len(f.Predecessor) {
			return nil, fmt.Errorf("%w: from node %d", ErrCycle, n)
		}
		path = append(path, p)
	}
	slices.Reverse(path)

	return path, nil
}

// ExtractPartition groups reached nodes by label.
// Complexity: O(N).
func (f *Forest) ExtractPartition() map[int32]*roaring.Bitmap {
	parts := make(map[int32]*roaring.Bitmap)
	for n, l := range f.Label {
		if l == NoLabel {
			continue
		}
		bm, ok := parts[l]
		if !ok {
			bm = roaring.New()
			parts[l] = bm
		}
		bm.Add(uint32(n))
	}
	for _, bm := range parts {
		bm.RunOptimize()
	}

	return parts
}

// Mask returns the nodes carrying label l.
func (f *Forest) Mask(l int32) *roaring.Bitmap {
	bm := roaring.New()
	for n, v := range f.Label {
		if v == l {
			bm.Add(uint32(n))
		}
	}

	return bm
}

// Labels returns the distinct labels in use, ascending, NoLabel excluded.
func (f *Forest) Labels() []int32 {
	seen := make(map[int32]struct{})
	for _, l := range f.Label {
		if l != NoLabel {
			seen[l] = struct{}{}
		}
	}
	out := make([]int32, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}

// LabelCount returns the number of distinct labels in use.
func (f *Forest) LabelCount() int { return len(f.Labels()) }

func (f *Forest) reachable(n grid.Node) error {
	if int(n) >= len(f.Cost) {
		return fmt.Errorf("%w: node %d of %d", ErrNodeRange, n, len(f.Cost))
	}
	if math.IsInf(f.Cost[n], 1) {
		return fmt.Errorf("%w: node %d", ErrUnreached, n)
	}

	return nil
}
