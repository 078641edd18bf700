package rigid

import "go.uber.org/zap"

// Clean removes every meaningless element from res, in place and in a fixed
// order:
//
//  1. suppressed occurrences are dropped from every group;
//  2. suppressed joint and constraint entries are dropped from every edge,
//     as is any entry whose either endpoint occurrence is suppressed;
//  3. edges that are self-loops, reference an unknown or now-empty group,
//     or carry zero entries of either kind are dropped;
//  4. groups left empty retire from the active view (their arena slots
//     persist, see Results.GroupIDs).
//
// Clean is idempotent and never fails; anomalies are excluded permissively
// and reported on the WithLogger diagnostics channel.
//
// Complexity: O(V + E) over groups, edges, and their entry lists.
func Clean(res *Results, opts ...Option) {
	if res == nil {
		return
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, g := range res.groups {
		g.dropSuppressed()
	}
	for _, e := range res.edges {
		e.dropSuppressed()
	}

	kept := res.edges[:0]
	for _, e := range res.edges {
		switch {
		case !res.Contains(e.One) || !res.Contains(e.Two):
			// Extraction-layer inconsistency: tolerate, flag, exclude.
			o.Logger.Warn("Dropping edge with unknown group id",
				zap.Int("one", int(e.One)), zap.Int("two", int(e.Two)))
		case e.One == e.Two:
			// Self-loop.
		case res.Group(e.One).Empty() || res.Group(e.Two).Empty():
			// Dangling endpoint.
		case len(e.Joints) == 0 && len(e.Constraints) == 0:
			// Nothing backs the relation.
		default:
			kept = append(kept, e)
		}
	}
	// Release the tail so dropped edges do not linger in the backing array.
	for i := len(kept); i < len(res.edges); i++ {
		res.edges[i] = nil
	}
	res.edges = kept
}

// dropSuppressed filters suppressed occurrences out of the group, keeping
// input order.
func (g *Group) dropSuppressed() {
	kept := g.Occurrences[:0]
	for _, occ := range g.Occurrences {
		if suppressed(occ) {
			continue
		}
		kept = append(kept, occ)
	}
	for i := len(kept); i < len(g.Occurrences); i++ {
		g.Occurrences[i] = nil
	}
	g.Occurrences = kept
}

// dropSuppressed filters out entries that are suppressed themselves or
// reference a suppressed endpoint occurrence, keeping input order.
func (e *Edge) dropSuppressed() {
	joints := e.Joints[:0]
	for _, j := range e.Joints {
		if j.Suppressed || suppressed(j.OccOne) || suppressed(j.OccTwo) {
			continue
		}
		joints = append(joints, j)
	}
	e.Joints = joints

	constraints := e.Constraints[:0]
	for _, c := range e.Constraints {
		if c.Suppressed || suppressed(c.OccOne) || suppressed(c.OccTwo) {
			continue
		}
		constraints = append(constraints, c)
	}
	e.Constraints = constraints
}

// suppressed treats a nil occurrence handle as active: a missing reference
// is an extraction anomaly, not a suppression.
func suppressed(occ Occurrence) bool {
	return occ != nil && occ.Suppressed()
}
