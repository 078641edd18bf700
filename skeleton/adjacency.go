package skeleton

import (
	"go.uber.org/zap"

	"github.com/kinemech/skeletal/rigid"
)

// edgeClass is the traversal classification of a single edge.
type edgeClass int

const (
	// classNone: the edge carries no entries at all; nothing backs it.
	classNone edgeClass = iota
	// classMovable: at least one joint entry permits motion.
	classMovable
	// classRigidEq: constraints, or several rigid-type joints, lock the
	// two groups together.
	classRigidEq
	// classAmbiguous: exactly one rigid-type joint entry and no
	// constraints. The source algorithm leaves this edge out of both maps;
	// the branch is kept explicit (and logged) rather than folded into
	// classRigidEq, so the behavior stays observable. See package docs.
	classAmbiguous
)

// AdjacencyMaps holds the two undirected neighbor maps over active groups:
// one for movable edges, one for rigid-equivalent edges. Neighbor lists are
// deduplicated and preserve edge-scan order; every active group has an
// entry in both maps, possibly empty.
type AdjacencyMaps struct {
	Movable map[rigid.GroupID][]rigid.GroupID
	RigidEq map[rigid.GroupID][]rigid.GroupID
}

// Adjacency classifies every edge of res and builds the two neighbor maps.
//
// Classification per edge:
//  1. at least one joint entry with a non-rigid type → movable;
//  2. otherwise any constraint entries, or more than one rigid-type joint
//     entry → rigid-equivalent;
//  3. otherwise (exactly one rigid-type joint, no constraints) the edge is
//     ambiguous: excluded from both maps and reported on the logger.
//
// Edges naming unknown or empty groups are skipped. Returns nil for a nil
// res.
//
// Complexity: O(V + E·d) where d is the (small) maximum group degree.
func Adjacency(res *rigid.Results, opts ...Option) *AdjacencyMaps {
	if res == nil {
		return nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := res.GroupIDs()
	m := &AdjacencyMaps{
		Movable: make(map[rigid.GroupID][]rigid.GroupID, len(ids)),
		RigidEq: make(map[rigid.GroupID][]rigid.GroupID, len(ids)),
	}
	for _, id := range ids {
		m.Movable[id] = nil
		m.RigidEq[id] = nil
	}

	for i, e := range res.Edges() {
		if !valid(res, e.One) || !valid(res, e.Two) || e.One == e.Two {
			continue
		}
		switch classify(e) {
		case classMovable:
			addUndirected(m.Movable, e.One, e.Two)
		case classRigidEq:
			addUndirected(m.RigidEq, e.One, e.Two)
		case classAmbiguous:
			o.Logger.Warn("Ambiguous edge left out of traversal",
				zap.Int("edge", i),
				zap.Int("one", int(e.One)), zap.Int("two", int(e.Two)))
		case classNone:
		}
	}
	return m
}

// classify applies the per-edge classification rule.
func classify(e *rigid.Edge) edgeClass {
	rigidJoints := 0
	for _, j := range e.Joints {
		if j.Type.Movable() {
			return classMovable
		}
		rigidJoints++
	}
	if len(e.Constraints) > 0 || rigidJoints > 1 {
		return classRigidEq
	}
	if rigidJoints == 1 {
		return classAmbiguous
	}
	return classNone
}

// valid reports whether id addresses an active group of res.
func valid(res *rigid.Results, id rigid.GroupID) bool {
	return res.Contains(id) && !res.Group(id).Empty()
}

// addUndirected records a↔b in adj, deduplicated, preserving insertion
// order. Group degrees are small, so a linear membership scan beats a side
// set.
func addUndirected(adj map[rigid.GroupID][]rigid.GroupID, a, b rigid.GroupID) {
	adj[a] = appendUnique(adj[a], b)
	adj[b] = appendUnique(adj[b], a)
}

func appendUnique(list []rigid.GroupID, id rigid.GroupID) []rigid.GroupID {
	for _, g := range list {
		if g == id {
			return list
		}
	}
	return append(list, id)
}
