package adjacency

import (
	"fmt"
	"math"
	"slices"
)

// HyperSpheric returns every integer offset o with 0 < |o|² ≤ ⌊radius²⌋ in
// dims dimensions. radius 1 gives the 2·dims face neighbors; radius 1.5 in
// 2-D gives the 8-neighborhood.
//
// Offsets are ordered by squared length, then by angle (2-D) or by
// coordinates from the slowest axis down (other dimensionalities).
// Complexity: O((2r+1)^dims · log).
func HyperSpheric(radius float64, dims int) (*Relation, error) {
	if dims < 1 {
		return nil, ErrBadDims
	}
	if radius < 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: %g", ErrBadRadius, radius)
	}
	reach := int(radius)
	limit := int(radius * radius)

	return build(dims, reach, func(o []int) bool {
		return squared(o) <= limit
	})
}

// Circular is HyperSpheric in 2-D.
func Circular(radius float64) (*Relation, error) { return HyperSpheric(radius, 2) }

// Spheric is HyperSpheric in 3-D.
func Spheric(radius float64) (*Relation, error) { return HyperSpheric(radius, 3) }

// Ellipsoid returns every integer offset inside the axis-aligned ellipsoid
// with the given per-axis radii. A zero radius flattens that axis.
func Ellipsoid(radii ...float64) (*Relation, error) {
	if len(radii) == 0 {
		return nil, ErrBadDims
	}
	reach := 0
	for _, r := range radii {
		if r < 0 || math.IsInf(r, 0) || math.IsNaN(r) {
			return nil, fmt.Errorf("%w: %g", ErrBadRadius, r)
		}
		reach = max(reach, int(r))
	}

	return build(len(radii), reach, func(o []int) bool {
		var sum float64
		for axis, c := range o {
			if c == 0 {
				continue
			}
			if int(radii[axis]) < abs(c) {
				return false
			}
			sum += float64(c*c) / (radii[axis] * radii[axis])
		}
		return sum <= 1
	})
}

// Box returns every offset with Chebyshev length in (0, radius].
// Box(1, 2) is the 8-neighborhood, Box(1, 3) the 26-neighborhood.
func Box(radius, dims int) (*Relation, error) {
	if dims < 1 {
		return nil, ErrBadDims
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}

	return build(dims, radius, func([]int) bool { return true })
}

// Directional returns the 2-point stencil {a·e_axis, b·e_axis}. Use (-1, 1)
// for a symmetric pair along one axis, or e.g. (1, 2) for a one-sided one.
func Directional(dims, axis, a, b int) (*Relation, error) {
	if dims < 1 {
		return nil, ErrBadDims
	}
	if axis < 0 || axis >= dims {
		return nil, fmt.Errorf("%w: axis %d of %d", ErrBadAxis, axis, dims)
	}
	oa := make([]int, dims)
	ob := make([]int, dims)
	oa[axis], ob[axis] = a, b

	return FromOffsets(dims, oa, ob)
}

// FromOffsets builds a relation from explicit offsets, keeping their order
// and dropping duplicates after the first occurrence.
// Returns ErrBadOffset for the central offset or a wrong arity.
func FromOffsets(dims int, offsets ...[]int) (*Relation, error) {
	if dims < 1 {
		return nil, ErrBadDims
	}
	flat := make([]int, 0, len(offsets)*dims)
	seen := make(map[string]struct{}, len(offsets))
	for i, o := range offsets {
		if len(o) != dims || squared(o) == 0 {
			return nil, fmt.Errorf("%w: offset %d = %v", ErrBadOffset, i, o)
		}
		key := fmt.Sprint(o)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		flat = append(flat, o...)
	}
	if len(flat) == 0 {
		return nil, ErrEmptyRelation
	}

	return &Relation{dims: dims, offsets: flat}, nil
}

// Distances returns the Euclidean length of every offset in physical
// units, scaling axis a by pixelSize[a]. A nil pixelSize means unit size.
func (r *Relation) Distances(pixelSize []float64) []float64 {
	out := make([]float64, r.Len())
	for k := range out {
		var sum float64
		for axis := 0; axis < r.dims; axis++ {
			c := float64(r.Component(k, axis))
			if pixelSize != nil {
				c *= pixelSize[axis]
			}
			sum += c * c
		}
		out[k] = math.Sqrt(sum)
	}

	return out
}

// Reach returns, per axis, the most negative and the most positive
// component over all offsets.
func (r *Relation) Reach() (neg, pos []int) {
	neg = make([]int, r.dims)
	pos = make([]int, r.dims)
	for k := 0; k < r.Len(); k++ {
		for axis := 0; axis < r.dims; axis++ {
			c := r.Component(k, axis)
			neg[axis] = min(neg[axis], c)
			pos[axis] = max(pos[axis], c)
		}
	}

	return neg, pos
}

// build enumerates the cube [-reach, reach]^dims, keeps offsets accepted by
// keep (central offset excluded), and orders them.
func build(dims, reach int, keep func([]int) bool) (*Relation, error) {
	var kept [][]int
	o := make([]int, dims)
	for axis := range o {
		o[axis] = -reach
	}
	for {
		if squared(o) > 0 && keep(o) {
			kept = append(kept, append([]int(nil), o...))
		}
		// odometer step, axis 0 fastest
		axis := 0
		for ; axis < dims; axis++ {
			if o[axis] < reach {
				o[axis]++
				break
			}
			o[axis] = -reach
		}
		if axis == dims {
			break
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmptyRelation
	}

	slices.SortStableFunc(kept, func(a, b []int) int {
		if d := squared(a) - squared(b); d != 0 {
			return d
		}
		if dims == 2 {
			return cmpFloat(angle(a), angle(b))
		}
		for axis := dims - 1; axis >= 0; axis-- {
			if a[axis] != b[axis] {
				return a[axis] - b[axis]
			}
		}
		return 0
	})

	flat := make([]int, 0, len(kept)*dims)
	for _, k := range kept {
		flat = append(flat, k...)
	}

	return &Relation{dims: dims, offsets: flat}, nil
}

// angle returns the direction of a 2-D offset in [0, 2π), x = axis 0.
func angle(o []int) float64 {
	a := math.Atan2(float64(o[1]), float64(o[0]))
	if a < 0 {
		a += 2 * math.Pi
	}

	return a
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func squared(o []int) int {
	s := 0
	for _, c := range o {
		s += c * c
	}

	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
