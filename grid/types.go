// Package grid defines the node domain of an N-dimensional image: its
// shape, its stride table, its physical pixel sizes, and the bijection
// between flat node indices and integer coordinates.
package grid

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/ift"
)

// Sentinel errors for grid construction and indexing.
var (
	// ErrEmptyDims indicates a domain with zero axes.
	ErrEmptyDims = fmt.Errorf("%w: grid: domain must have at least one axis", ift.ErrConfiguration)
	// ErrBadDim indicates an axis whose size is not positive.
	ErrBadDim = fmt.Errorf("%w: grid: every axis size must be positive", ift.ErrConfiguration)
	// ErrBadPixelSize indicates a pixel size list of the wrong length or with non-positive entries.
	ErrBadPixelSize = fmt.Errorf("%w: grid: pixel sizes must be positive, one per axis", ift.ErrConfiguration)
	// ErrEmptyGrid indicates the input rows are empty.
	ErrEmptyGrid = fmt.Errorf("%w: grid: input must have at least one row and one column", ift.ErrConfiguration)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: grid: all rows must have the same length", ift.ErrConfiguration)
	// ErrValueCount indicates a value buffer whose length is not nodes × channels.
	ErrValueCount = fmt.Errorf("%w: grid: value buffer length does not match domain", ift.ErrConfiguration)
	// ErrBadChannels indicates a channel count below one.
	ErrBadChannels = fmt.Errorf("%w: grid: channel count must be positive", ift.ErrConfiguration)
	// ErrCoordinate indicates a coordinate outside the domain or of the wrong arity.
	ErrCoordinate = fmt.Errorf("%w: grid: coordinate outside domain", ift.ErrConfiguration)
	// ErrTooLarge indicates a domain with more nodes than a Node can address.
	ErrTooLarge = fmt.Errorf("%w: grid: node count exceeds addressable range", ift.ErrResource)
)

// errNoValues is returned by reductions over an empty image.
var errNoValues = errors.New("grid: image has no values")

// Node is a flat index into an image buffer. Node n and its coordinate
// vector are bijective through the domain's stride table.
type Node uint32

// NoNode is the sentinel used for "no node": roots in predecessor maps and
// out-of-domain neighbors.
const NoNode Node = math.MaxUint32

// MaxNodes is the largest node count a Domain accepts.
const MaxNodes = int(NoNode)

// Number constrains image element types to integer and floating kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// Domain is an immutable N-dimensional box of nodes. Axis 0 varies fastest:
// node = x0 + x1·d0 + x2·d0·d1 + …
//
// Domain values are cheap to copy; the slices are never exposed for writing.
type Domain struct {
	dims      []int
	strides   []int
	pixelSize []float64
	size      int
}

// Options configures domain construction.
type Options struct {
	// PixelSize holds the physical extent of a node along each axis.
	// Empty means unit size on every axis.
	PixelSize []float64
}

// Option represents a functional option for NewDomain.
type Option func(*Options)

// WithPixelSize sets per-axis physical pixel sizes (e.g. millimetres).
func WithPixelSize(sizes ...float64) Option {
	return func(o *Options) {
		o.PixelSize = append([]float64(nil), sizes...)
	}
}

// DefaultOptions returns unit pixel sizes.
func DefaultOptions() Options {
	return Options{}
}
