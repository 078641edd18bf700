// Package rigid defines the core assembly-graph types, sentinel errors,
// and functional options shared by the cleaning and unification passes.
package rigid

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for rigid-graph operations.
var (
	// ErrNilResults is returned if a nil *Results pointer is passed.
	ErrNilResults = errors.New("rigid: results is nil")

	// ErrNoGroundedGroup is returned when no group has Grounded set; there
	// is no mechanical way to infer a ground, so the whole synthesis aborts.
	ErrNoGroundedGroup = errors.New("rigid: no grounded group in results")
)

// Occurrence is the opaque handle to a part instance inside the external
// CAD model. Groups and entries hold non-owning references; the only query
// this core needs is the suppressed state.
type Occurrence interface {
	// Suppressed reports whether the part instance is suppressed in the
	// assembly and must be ignored by every pipeline stage.
	Suppressed() bool
}

// JointType tags a mechanical joint entry with its kind of permitted motion.
type JointType string

// Joint-type tags as extracted from the CAD assembly. Rigid is the one kind
// that permits no relative motion; every other kind is movable.
const (
	Rigid       JointType = "rigid"
	Revolute    JointType = "revolute"
	Slider      JointType = "slider"
	Cylindrical JointType = "cylindrical"
	PinSlot     JointType = "pin-slot"
	Planar      JointType = "planar"
	Ball        JointType = "ball"
)

// Movable reports whether the joint type permits relative motion between
// its two groups.
func (t JointType) Movable() bool { return t != Rigid }

// Joint is a single movable mechanical joint entry on an Edge.
type Joint struct {
	// Type is the kind of permitted motion.
	Type JointType

	// Suppressed marks the entry as disabled in the assembly.
	Suppressed bool

	// OccOne and OccTwo are the endpoint part instances the joint is
	// defined between; the exporter derives relative transforms from them.
	OccOne, OccTwo Occurrence
}

// Constraint is a single rigid-constraint entry on an Edge: a relation that
// permits no relative motion between its endpoints.
type Constraint struct {
	// Type is the constraint kind as named by the CAD system.
	Type string

	// Suppressed marks the entry as disabled in the assembly.
	Suppressed bool

	// OccOne and OccTwo are the endpoint part instances.
	OccOne, OccTwo Occurrence
}

// GroupID is the arena handle of a Group inside a Results. Handles are
// small integers assigned in insertion order and stay valid for the life of
// the Results, even after the group is merged away and emptied.
type GroupID int

// NoGroup is the invalid GroupID sentinel.
const NoGroup GroupID = -1

// Group is a mutable rigid body: the set of part occurrences that move
// together, plus the grounded flag marking it fixed to the world frame.
//
// Groups are never deleted; a group emptied by a merge simply leaves the
// active view (see Results.GroupIDs).
type Group struct {
	Occurrences []Occurrence
	Grounded    bool
}

// Empty reports whether the group holds no occurrences and is therefore
// outside the active result set.
func (g *Group) Empty() bool { return len(g.Occurrences) == 0 }

// Edge connects exactly two groups. The pair is semantically unordered, but
// both fields are mutable: merge fix-up redirects endpoints in place.
//
// Joints and Constraints are independent lists; an edge may carry both
// populated, or either empty.
type Edge struct {
	One, Two GroupID

	Joints      []Joint
	Constraints []Constraint
}

// Connects reports whether the edge joins groups a and b, in either order.
func (e *Edge) Connects(a, b GroupID) bool {
	return (e.One == a && e.Two == b) || (e.One == b && e.Two == a)
}

// Other returns the endpoint opposite to id, or NoGroup if id is not an
// endpoint of this edge.
func (e *Edge) Other(id GroupID) GroupID {
	switch id {
	case e.One:
		return e.Two
	case e.Two:
		return e.One
	}
	return NoGroup
}

// FirstMovable returns the first joint entry, in list order, whose type
// permits motion. The second return is false when the edge has none.
func (e *Edge) FirstMovable() (Joint, bool) {
	for _, j := range e.Joints {
		if j.Type.Movable() {
			return j, true
		}
	}
	return Joint{}, false
}

// Option configures cleaning and unification behavior via functional
// arguments.
type Option func(*Options)

// Options holds tunable parameters for the rigid-graph passes.
type Options struct {
	// Logger receives diagnostics about permissively excluded anomalies
	// (unknown edge endpoints, suppressed entries, ground merges).
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger installs a diagnostics logger. A nil logger leaves the no-op
// default in place.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
