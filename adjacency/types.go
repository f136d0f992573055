// Package adjacency defines neighbor shapes over N-dimensional domains and
// iterates the in-domain neighbors of a node.
package adjacency

import (
	"fmt"

	"github.com/katalvlaran/ift"
)

// Sentinel errors for relation construction and binding.
var (
	// ErrBadDims indicates a relation with fewer than one axis.
	ErrBadDims = fmt.Errorf("%w: adjacency: dimensionality must be positive", ift.ErrConfiguration)
	// ErrBadRadius indicates a negative or non-finite radius.
	ErrBadRadius = fmt.Errorf("%w: adjacency: radius must be finite and non-negative", ift.ErrConfiguration)
	// ErrEmptyRelation indicates a shape with no non-central offsets.
	ErrEmptyRelation = fmt.Errorf("%w: adjacency: relation has no offsets", ift.ErrConfiguration)
	// ErrBadOffset indicates an offset of the wrong arity or the central offset.
	ErrBadOffset = fmt.Errorf("%w: adjacency: offsets must be non-zero and match dimensionality", ift.ErrConfiguration)
	// ErrBadAxis indicates an axis outside [0, dims).
	ErrBadAxis = fmt.Errorf("%w: adjacency: axis out of range", ift.ErrConfiguration)
	// ErrDimensionMismatch indicates a relation bound to a domain of different dimensionality.
	ErrDimensionMismatch = fmt.Errorf("%w: adjacency: relation and image dimensions do not match", ift.ErrConfiguration)
)

// Relation is an ordered, immutable, deduplicated list of relative offsets.
// The central (all-zero) offset is never part of a relation.
//
// Offsets are stored flat: offset k occupies offsets[k*dims : (k+1)*dims].
type Relation struct {
	dims    int
	offsets []int
}

// Dims returns the dimensionality of the offsets.
func (r *Relation) Dims() int { return r.dims }

// Len returns the number of offsets.
func (r *Relation) Len() int { return len(r.offsets) / r.dims }

// Offset returns a copy of offset k.
func (r *Relation) Offset(k int) []int {
	return append([]int(nil), r.offsets[k*r.dims:(k+1)*r.dims]...)
}

// Component returns coordinate axis of offset k.
func (r *Relation) Component(k, axis int) int { return r.offsets[k*r.dims+axis] }
