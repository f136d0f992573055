package grid

import (
	"fmt"
	"math"
)

// Image is a scalar or small-vector field over a Domain. Values are stored
// node-major: the channels of node n occupy Values()[n*C : (n+1)*C].
type Image[T Number] struct {
	dom      Domain
	channels int
	values   []T
}

// NewImage allocates a zero-valued image with the given channel count.
func NewImage[T Number](dom Domain, channels int) (*Image[T], error) {
	if channels < 1 {
		return nil, ErrBadChannels
	}

	return &Image[T]{
		dom:      dom,
		channels: channels,
		values:   make([]T, dom.Len()*channels),
	}, nil
}

// FromValues wraps values without copying. Returns ErrValueCount when
// len(values) != dom.Len()*channels.
func FromValues[T Number](dom Domain, channels int, values []T) (*Image[T], error) {
	if channels < 1 {
		return nil, ErrBadChannels
	}
	if len(values) != dom.Len()*channels {
		return nil, fmt.Errorf("%w: %d values for %d nodes × %d channels",
			ErrValueCount, len(values), dom.Len(), channels)
	}

	return &Image[T]{dom: dom, channels: channels, values: values}, nil
}

// From1D builds a single-channel 1-D image, copying values.
func From1D[T Number](values []T, opts ...Option) (*Image[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyGrid
	}
	dom, err := NewDomain([]int{len(values)}, opts...)
	if err != nil {
		return nil, err
	}

	return FromValues(dom, 1, append([]T(nil), values...))
}

// From2D builds a single-channel 2-D image from rows (rows[y][x]), copying values.
// Returns ErrEmptyGrid if there are no rows or no columns, ErrNonRectangular
// if any row length differs.
// Complexity: O(W×H).
func From2D[T Number](rows [][]T, opts ...Option) (*Image[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	dom, err := NewDomain([]int{w, h}, opts...)
	if err != nil {
		return nil, err
	}
	values := make([]T, 0, w*h)
	for _, row := range rows {
		values = append(values, row...)
	}

	return FromValues(dom, 1, values)
}

// Domain returns the image domain.
func (im *Image[T]) Domain() Domain { return im.dom }

// Channels returns the number of values per node.
func (im *Image[T]) Channels() int { return im.channels }

// Len returns the number of nodes.
func (im *Image[T]) Len() int { return im.dom.Len() }

// Values returns the backing buffer. Writes are visible to the image.
func (im *Image[T]) Values() []T { return im.values }

// At returns channel 0 of node n.
func (im *Image[T]) At(n Node) T { return im.values[int(n)*im.channels] }

// Set stores v into channel 0 of node n.
func (im *Image[T]) Set(n Node, v T) { im.values[int(n)*im.channels] = v }

// Feature returns the channel values of node n as a sub-slice of the buffer.
func (im *Image[T]) Feature(n Node) []T {
	base := int(n) * im.channels

	return im.values[base : base+im.channels : base+im.channels]
}

// Float returns channel 0 of node n as float64.
func (im *Image[T]) Float(n Node) float64 { return float64(im.values[int(n)*im.channels]) }

// Distance returns the Euclidean distance between the features of a and b.
// For single-channel images this is |I(a) − I(b)|.
func (im *Image[T]) Distance(a, b Node) float64 {
	if im.channels == 1 {
		return math.Abs(float64(im.values[a]) - float64(im.values[b]))
	}
	fa, fb := im.Feature(a), im.Feature(b)
	var sum float64
	for c := range fa {
		diff := float64(fa[c]) - float64(fb[c])
		sum += diff * diff
	}

	return math.Sqrt(sum)
}

// Max returns the largest value over all nodes and channels.
func (im *Image[T]) Max() (T, error) {
	var zero T
	if len(im.values) == 0 {
		return zero, errNoValues
	}
	m := im.values[0]
	for _, v := range im.values[1:] {
		if v > m {
			m = v
		}
	}

	return m, nil
}

// Min returns the smallest value over all nodes and channels.
func (im *Image[T]) Min() (T, error) {
	var zero T
	if len(im.values) == 0 {
		return zero, errNoValues
	}
	m := im.values[0]
	for _, v := range im.values[1:] {
		if v < m {
			m = v
		}
	}

	return m, nil
}

// Clone returns a deep copy.
func (im *Image[T]) Clone() *Image[T] {
	return &Image[T]{
		dom:      im.dom,
		channels: im.channels,
		values:   append([]T(nil), im.values...),
	}
}

// Floats returns channel 0 of every node as a fresh float64 slice.
func (im *Image[T]) Floats() []float64 {
	out := make([]float64, im.dom.Len())
	for n := range out {
		out[n] = float64(im.values[n*im.channels])
	}

	return out
}
