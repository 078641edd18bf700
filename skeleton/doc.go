// Package skeleton synthesizes the rooted kinematic tree from a cleaned
// rigid-graph: adjacency classification, frontier breadth-first
// merge/expand, and deferred joint materialization.
//
// What
//
//   - Adjacency classifies every edge as movable or rigid-equivalent and
//     builds two undirected neighbor maps over the active groups.
//   - Synthesize runs the whole pipeline — pruning, ground unification,
//     adjacency, BFS expansion, merge application, edge redirection, joint
//     materialization — and returns the Tree rooted at the grounded group.
//   - Tree is an arena of nodes addressed by NodeID; each node stores its
//     group handle and an ordered list of (child, JointDesc) links.
//
// Algorithm
//
//	Expansion walks a frontier of (current, branchTarget) pairs outward from
//	the grounded root. A movable neighbor gets its own tree node and starts a
//	new branch; a rigid-equivalent neighbor is scheduled to merge into the
//	branch target and continues the same branch without a node. A closed set
//	guarantees each group is processed exactly once — first discovery wins.
//	Joint creation is deferred until every merge is applied and every edge
//	endpoint redirected, so a joint description can never name a merged-away
//	group.
//
//	Because edges are unweighted this is plain BFS: every node sits at its
//	minimum joint-count distance from the root.
//
// Determinism
//
//	Neighbor lists preserve edge-scan order and frontier levels are iterated
//	in discovery order, so ties at equal depth are broken by the order groups
//	and edges appear in the input collections. The same input always yields
//	the same tree.
//
// Edge classification
//
//	An edge with at least one non-rigid joint entry is movable. Otherwise an
//	edge with any constraint entries, or with more than one rigid-type joint
//	entry, is rigid-equivalent. An edge with exactly one rigid-type joint
//	entry and no constraints matches neither rule: it is left out of both
//	maps and reported on the diagnostics logger. See Adjacency for why this
//	branch is deliberate.
//
// Complexity (V = active groups, E = edges)
//
//   - Time:   O(V + E) expansion plus O(E) per-edge classification;
//     locating the backing edge of a movable link is O(E) per link,
//     O(V·E) worst case on dense star graphs, negligible at CAD scale.
//   - Memory: O(V + E) for adjacency, closed set, merge map, and tree.
//
// Errors
//
//   - ErrNilResults            if the results pointer is nil.
//   - rigid.ErrNoGroundedGroup propagated untouched from ground
//     unification; fatal, no partial tree is returned.
//
// Groups unreachable from the grounded root are silently excluded from the
// tree (their count is reported on the diagnostics logger); callers that
// require full coverage must validate it themselves.
package skeleton
