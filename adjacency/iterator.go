package adjacency

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ift/grid"
)

// Iterator binds a Relation to a Domain and enumerates in-domain neighbors.
// Offsets that leave the domain are skipped; coordinates never wrap.
//
// An Iterator keeps a scratch coordinate buffer, so a single Iterator must
// not be shared between goroutines. Create one per worker; they are cheap.
type Iterator struct {
	dom     grid.Domain
	rel     *Relation
	delta   []int // flat-index displacement per offset
	neg     []int // most negative component per axis
	pos     []int // most positive component per axis
	scratch []int
}

// NewIterator binds rel to dom. Returns ErrDimensionMismatch if their
// dimensionalities differ.
func NewIterator(dom grid.Domain, rel *Relation) (*Iterator, error) {
	if rel == nil || rel.Dims() != dom.Dims() {
		got := 0
		if rel != nil {
			got = rel.Dims()
		}
		return nil, fmt.Errorf("%w: image has %d axes, relation has %d", ErrDimensionMismatch, dom.Dims(), got)
	}
	delta := make([]int, rel.Len())
	for k := range delta {
		for axis := 0; axis < rel.Dims(); axis++ {
			delta[k] += rel.Component(k, axis) * dom.Stride(axis)
		}
	}
	neg, pos := rel.Reach()

	return &Iterator{
		dom:     dom,
		rel:     rel,
		delta:   delta,
		neg:     neg,
		pos:     pos,
		scratch: make([]int, dom.Dims()),
	}, nil
}

// Domain returns the bound domain.
func (it *Iterator) Domain() grid.Domain { return it.dom }

// Relation returns the bound relation.
func (it *Iterator) Relation() *Relation { return it.rel }

// Len returns the number of offsets.
func (it *Iterator) Len() int { return len(it.delta) }

// Neighbors yields (offset index, neighbor) for every offset of the relation
// whose target lies inside the domain, in relation order.
// The sequence shares the iterator's scratch buffer: do not call Neighbors
// or Neighbor on the same Iterator while consuming it.
// Complexity: O(|relation|·D) on the border, O(|relation|) in the interior.
func (it *Iterator) Neighbors(n grid.Node) iter.Seq2[int, grid.Node] {
	return func(yield func(int, grid.Node) bool) {
		coords := it.dom.Coordinate(n, it.scratch)
		if it.interior(coords) {
			for k, d := range it.delta {
				if !yield(k, grid.Node(int(n)+d)) {
					return
				}
			}
			return
		}
		for k, d := range it.delta {
			if !it.fits(coords, k) {
				continue
			}
			if !yield(k, grid.Node(int(n)+d)) {
				return
			}
		}
	}
}

// Neighbor returns the target of offset k from n, or (NoNode, false) when
// it falls outside the domain.
func (it *Iterator) Neighbor(n grid.Node, k int) (grid.Node, bool) {
	coords := it.dom.Coordinate(n, it.scratch)
	if !it.fits(coords, k) {
		return grid.NoNode, false
	}

	return grid.Node(int(n) + it.delta[k]), true
}

// interior reports whether every offset from coords stays in the domain.
func (it *Iterator) interior(coords []int) bool {
	for axis, c := range coords {
		if c+it.neg[axis] < 0 || c+it.pos[axis] >= it.dom.Size(axis) {
			return false
		}
	}

	return true
}

func (it *Iterator) fits(coords []int, k int) bool {
	for axis, c := range coords {
		v := c + it.rel.Component(k, axis)
		if v < 0 || v >= it.dom.Size(axis) {
			return false
		}
	}

	return true
}
