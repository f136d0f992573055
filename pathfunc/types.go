package pathfunc

import (
	"fmt"

	"github.com/katalvlaran/ift"
	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/bucketqueue"
	"github.com/katalvlaran/ift/grid"
)

// Sentinel errors for connectivity function construction.
var (
	// ErrBadAlpha indicates an orientation bias outside [-1, 1].
	ErrBadAlpha = fmt.Errorf("%w: pathfunc: alpha must lie in [-1, 1]", ift.ErrConfiguration)
	// ErrBadBeta indicates a sum exponent outside [0, 4].
	ErrBadBeta = fmt.Errorf("%w: pathfunc: beta must lie in [0, 4]", ift.ErrConfiguration)
	// ErrBadStrength indicates an orientation strength outside [0, 1].
	ErrBadStrength = fmt.Errorf("%w: pathfunc: orientation strength must lie in [0, 1]", ift.ErrConfiguration)
	// ErrNilWeight indicates a missing arc weight.
	ErrNilWeight = fmt.Errorf("%w: pathfunc: arc weight is nil", ift.ErrConfiguration)
	// ErrSizeMismatch indicates per-node values whose length differs from the domain.
	ErrSizeMismatch = fmt.Errorf("%w: pathfunc: value map does not cover the domain", ift.ErrConfiguration)
	// ErrBadOrientation indicates an Orientation other than Extern or Intern.
	ErrBadOrientation = fmt.Errorf("%w: pathfunc: unknown orientation", ift.ErrConfiguration)
)

// State is the read-only view of a run that a Function may consult.
// Implementations are owned by the engine; functions must not retain it.
type State interface {
	// Cost returns the current path cost of n (+Inf if unreached).
	Cost(n grid.Node) float64
	// Label returns the current label of n.
	Label(n grid.Node) int32
	// Predecessor returns the current predecessor of n, or grid.NoNode.
	Predecessor(n grid.Node) grid.Node
	// Status returns the scheduler state of n.
	Status(n grid.Node) bucketqueue.Status
}

// Function computes the cost a settled node s offers its neighbor t over
// the arc with adjacency offset index k. improved reports whether the
// offer beats the current cost of t; only then does the engine apply it.
type Function interface {
	Propagate(s, t grid.Node, k int, st State) (cost float64, improved bool)
}

// Preparer is implemented by functions that precompute per-run data from
// the domain and the relation, such as physical offset lengths. The engine
// calls Prepare once, before its first run.
type Preparer interface {
	Prepare(dom grid.Domain, rel *adjacency.Relation) error
}

// Relabeler is implemented by functions that choose the label t receives
// when s conquers it, instead of inheriting the label of s.
type Relabeler interface {
	Relabel(s, t grid.Node, st State) int32
}

// RootCoster is implemented by functions that lower the cost of a node
// when it settles unconquered, as a root. The engine applies the returned
// cost only when it is below the node's seed cost.
type RootCoster interface {
	RootCost(n grid.Node) float64
}

// Weight returns the weight of the arc (s, t).
type Weight func(s, t grid.Node) float64

// Orientation selects which brightness transitions oriented functions favor.
type Orientation int

const (
	// Extern penalizes bright→dark arcs on object paths and dark→bright
	// arcs on background paths.
	Extern Orientation = iota
	// Intern is the reverse of Extern.
	Intern
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Extern:
		return "extern"
	case Intern:
		return "intern"
	}

	return fmt.Sprintf("Orientation(%d)", int(o))
}

// OrientedOptions configures the oriented functions.
//
// Restriction – predecessor map of a previous forest (usually a geodesic
// star). Arcs along it cost nothing: s→pred(s) on object paths and
// pred(t)=s on background paths. Nil disables it.
type OrientedOptions struct {
	Restriction []grid.Node
}

// OrientedOption represents a functional option for the oriented functions.
type OrientedOption func(*OrientedOptions)

// WithRestriction makes the arcs of pred free of charge.
func WithRestriction(pred []grid.Node) OrientedOption {
	return func(o *OrientedOptions) {
		o.Restriction = pred
	}
}
