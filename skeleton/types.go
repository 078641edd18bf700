// Package skeleton defines the output tree model, sentinel errors, and
// functional options for kinematic-tree synthesis.
package skeleton

import (
	"errors"

	"go.uber.org/zap"

	"github.com/kinemech/skeletal/rigid"
)

// ErrNilResults is returned if a nil *rigid.Results is passed to Synthesize.
var ErrNilResults = errors.New("skeleton: results is nil")

// NodeID is the arena handle of a Node inside a Tree.
type NodeID int

// NoNode is the invalid NodeID sentinel.
const NoNode NodeID = -1

// JointDesc is the label on a tree edge: everything the exporter needs to
// compute the relative transform between a node and its child. Group fields
// carry post-merge identities — a merged-away group never appears here.
type JointDesc struct {
	// Type is the kind of permitted motion of the backing joint entry.
	Type rigid.JointType

	// OccOne and OccTwo are the endpoint part instances the joint was
	// extracted between.
	OccOne, OccTwo rigid.Occurrence

	// One and Two are the backing edge's endpoint groups after merge
	// fix-up.
	One, Two rigid.GroupID

	// Reference is the parent node's group: the reference frame the
	// exporter resolves the joint transform against.
	Reference rigid.GroupID
}

// Child links a node to one of its children together with the synthesized
// joint description for that tree edge.
type Child struct {
	Node  NodeID
	Joint JointDesc
}

// Node is one body of the kinematic tree: the rigid group it represents
// (with all merged occurrences) plus its ordered child links.
type Node struct {
	Group    rigid.GroupID
	Children []Child
}

// Tree is the synthesized kinematic tree: an arena of nodes addressed by
// NodeID, rooted at the grounded group. The structure is connected and
// acyclic; each group appears in at most one node.
type Tree struct {
	nodes []Node
}

// Root returns the handle of the root node, or NoNode for an empty tree.
// The root's group is the canonical grounded group.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Node returns the node addressed by id. The pointer stays valid for the
// life of the Tree.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk visits every node reachable from the root in pre-order, children in
// attachment order, calling fn with the node handle and its depth.
func (t *Tree) Walk(fn func(id NodeID, depth int)) {
	if len(t.nodes) == 0 {
		return
	}
	var rec func(id NodeID, depth int)
	rec = func(id NodeID, depth int) {
		fn(id, depth)
		for _, c := range t.nodes[id].Children {
			rec(c.Node, depth+1)
		}
	}
	rec(0, 0)
}

// addNode appends a node wrapping g and returns its handle.
func (t *Tree) addNode(g rigid.GroupID) NodeID {
	t.nodes = append(t.nodes, Node{Group: g})
	return NodeID(len(t.nodes) - 1)
}

// Option configures synthesis behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize synthesis.
type Options struct {
	// Logger receives diagnostics: ambiguous edge classifications, groups
	// unreachable from the root, extraction inconsistencies.
	Logger *zap.Logger

	// OnMerge is called when a rigid-equivalent neighbor is scheduled to
	// collapse into its branch target, in discovery order.
	OnMerge func(source, target rigid.GroupID)

	// OnAttach is called when a tree edge is materialized, in deferral
	// order. Group handles reflect post-merge identities.
	OnAttach func(parent, child rigid.GroupID, jt rigid.JointType)
}

// DefaultOptions returns Options with a no-op logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		OnMerge:  func(rigid.GroupID, rigid.GroupID) {},
		OnAttach: func(rigid.GroupID, rigid.GroupID, rigid.JointType) {},
	}
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

// WithOnMerge registers a callback fired per scheduled rigid-equivalent
// collapse.
func WithOnMerge(fn func(source, target rigid.GroupID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// WithOnAttach registers a callback fired per materialized tree edge.
func WithOnAttach(fn func(parent, child rigid.GroupID, jt rigid.JointType)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAttach = fn
		}
	}
}
