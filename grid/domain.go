package grid

import "fmt"

// NewDomain builds a Domain with the given axis sizes.
// Returns ErrEmptyDims, ErrBadDim, ErrBadPixelSize, or ErrTooLarge.
// Complexity: O(D).
func NewDomain(dims []int, opts ...Option) (Domain, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(dims) == 0 {
		return Domain{}, ErrEmptyDims
	}
	size := 1
	for axis, d := range dims {
		if d <= 0 {
			return Domain{}, fmt.Errorf("%w: axis %d has size %d", ErrBadDim, axis, d)
		}
		if size > MaxNodes/d {
			return Domain{}, fmt.Errorf("%w: shape %v", ErrTooLarge, dims)
		}
		size *= d
	}

	pixel := make([]float64, len(dims))
	switch {
	case len(cfg.PixelSize) == 0:
		for axis := range pixel {
			pixel[axis] = 1
		}
	case len(cfg.PixelSize) != len(dims):
		return Domain{}, fmt.Errorf("%w: got %d sizes for %d axes", ErrBadPixelSize, len(cfg.PixelSize), len(dims))
	default:
		for axis, s := range cfg.PixelSize {
			if !(s > 0) {
				return Domain{}, fmt.Errorf("%w: axis %d has size %g", ErrBadPixelSize, axis, s)
			}
			pixel[axis] = s
		}
	}

	strides := make([]int, len(dims))
	stride := 1
	for axis, d := range dims {
		strides[axis] = stride
		stride *= d
	}

	return Domain{
		dims:      append([]int(nil), dims...),
		strides:   strides,
		pixelSize: pixel,
		size:      size,
	}, nil
}

// MustDomain is NewDomain that panics on error. Intended for tests and
// package-level fixtures with literal shapes.
func MustDomain(dims ...int) Domain {
	d, err := NewDomain(dims)
	if err != nil {
		panic(err)
	}

	return d
}

// Dims returns the number of axes.
func (d Domain) Dims() int { return len(d.dims) }

// Len returns the number of nodes.
func (d Domain) Len() int { return d.size }

// Size returns the extent of one axis.
func (d Domain) Size(axis int) int { return d.dims[axis] }

// Shape returns a copy of all axis extents.
func (d Domain) Shape() []int { return append([]int(nil), d.dims...) }

// Stride returns the flat-index step of one axis.
func (d Domain) Stride(axis int) int { return d.strides[axis] }

// PixelSize returns the physical extent of a node along one axis.
func (d Domain) PixelSize(axis int) float64 { return d.pixelSize[axis] }

// PixelSizes returns a copy of all per-axis pixel sizes.
func (d Domain) PixelSizes() []float64 { return append([]float64(nil), d.pixelSize...) }

// Equal reports whether two domains have the same shape.
// Pixel sizes are not compared.
func (d Domain) Equal(o Domain) bool {
	if len(d.dims) != len(o.dims) {
		return false
	}
	for axis := range d.dims {
		if d.dims[axis] != o.dims[axis] {
			return false
		}
	}

	return true
}

// Contains reports whether n addresses a node of the domain.
// Complexity: O(1).
func (d Domain) Contains(n Node) bool {
	return n != NoNode && int(n) < d.size
}

// InBounds reports whether coords lies inside the domain.
// Complexity: O(D).
func (d Domain) InBounds(coords []int) bool {
	if len(coords) != len(d.dims) {
		return false
	}
	for axis, c := range coords {
		if c < 0 || c >= d.dims[axis] {
			return false
		}
	}

	return true
}

// Index maps coords to its node. Returns ErrCoordinate if coords is outside
// the domain or has the wrong arity.
// Complexity: O(D).
func (d Domain) Index(coords ...int) (Node, error) {
	if !d.InBounds(coords) {
		return NoNode, fmt.Errorf("%w: %v in shape %v", ErrCoordinate, coords, d.dims)
	}

	return d.index(coords), nil
}

// index assumes coords is in bounds.
func (d Domain) index(coords []int) Node {
	idx := 0
	for axis, c := range coords {
		idx += c * d.strides[axis]
	}

	return Node(idx)
}

// Coordinate writes the coordinates of n into dst (reallocated when too
// short) and returns it. The result for an out-of-domain node is undefined.
// Complexity: O(D).
func (d Domain) Coordinate(n Node, dst []int) []int {
	if cap(dst) < len(d.dims) {
		dst = make([]int, len(d.dims))
	}
	dst = dst[:len(d.dims)]
	rem := int(n)
	for axis := len(d.dims) - 1; axis >= 0; axis-- {
		dst[axis] = rem / d.strides[axis]
		rem -= dst[axis] * d.strides[axis]
	}

	return dst
}
