// Package rigid defines the assembly-graph model shared by every pipeline
// stage — groups, edges, joint and constraint entries — together with the
// two cleaning passes that run over it: meaningless-element pruning (Clean)
// and ground unification (UnifyGround).
//
// What
//
//   - Group: a mutable rigid body, a list of part-occurrence handles plus a
//     grounded flag. Identity is its arena index (GroupID), never pointer
//     equality.
//   - Edge: a pairwise relation between two groups carrying independent
//     lists of movable-joint entries and rigid-constraint entries.
//   - Results: the ordered group arena plus the ordered edge list; the full
//     assembly graph at any pipeline stage, mutated in place by every pass.
//   - Clean: drops suppressed occurrences and entries, self-loop and empty
//     edges, and retires emptied groups from the active view.
//   - UnifyGround: folds every grounded group into the first one, making it
//     the canonical root for tree synthesis.
//
// Arena model
//
//	Groups are appended to an arena and addressed by GroupID. A merged-away
//	group is emptied in place and filtered from GroupIDs(); its arena slot
//	persists, so an edge redirected after a merge can never dangle.
//
// Determinism
//
//	Groups and edges live in order-preserving slices. Every scan — pruning,
//	ground unification, adjacency classification downstream — iterates in
//	input order, so results are fully reproducible.
//
// Errors
//
//   - ErrNilResults      if a nil *Results is passed to UnifyGround.
//   - ErrNoGroundedGroup if no group is grounded; fatal to the pipeline,
//     surfaced untouched to the caller.
//
// Clean never fails: anomalies (edges naming unknown group ids, suppressed
// entries) are excluded permissively and reported on the optional zap
// diagnostics logger installed via WithLogger.
package rigid
