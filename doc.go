// Package skeletal turns a CAD assembly's rigid-body contact graph into a
// single-rooted kinematic tree suitable for robot-simulation export.
//
// An assembly is decomposed externally into rigid groups (sets of parts that
// move together) and rigid edges (pairwise relations between groups, backed
// either by movable mechanical joints or by rigid constraints). The packages
// here clean that noisy, possibly cyclic, possibly redundant graph and
// synthesize a rooted tree where every edge is a single well-defined movable
// joint and every node is a merged rigid body.
//
// Subpackages:
//
//	rigid/    — graph model (groups, edges, joint/constraint entries),
//	            meaningless-element pruning, ground unification
//	skeleton/ — movable / rigid-equivalent adjacency classification,
//	            frontier BFS merge/expand, tree materialization
//
// Quick ASCII example:
//
//	ground ──rev── arm ──rigid── bracket ──rev── wrist
//
// synthesizes to a three-node tree: bracket is collapsed into arm, and
// ground→arm→wrist remain connected by the two revolute joints.
//
// Everything is single-threaded and deterministic: groups and edges live in
// order-preserving collections, and every tie is broken by input order.
// CAD extraction and mesh serialization are external collaborators; this
// module has no I/O surface.
package skeletal
