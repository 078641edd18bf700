package rigid

import "go.uber.org/zap"

// UnifyGround merges every grounded group into one canonical root before
// tree synthesis.
//
// Groups are scanned in arena order; the first active grounded one becomes
// the root. Each later grounded group has its occurrences appended to the root
// and is emptied in place. Every edge whose endpoint group is now empty has
// that endpoint redirected to the root, then Clean drops the degenerate
// leftovers (self-loops at the root, emptied groups).
//
// Returns the root's handle. If no group is grounded, returns
// ErrNoGroundedGroup before any mutation — this is fatal to the pipeline;
// there is no mechanical way to infer a ground.
//
// Complexity: O(V + E).
func UnifyGround(res *Results, opts ...Option) (GroupID, error) {
	if res == nil {
		return NoGroup, ErrNilResults
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// An emptied group has left the active set; its grounded flag no longer
	// qualifies it as root.
	root := NoGroup
	for i, g := range res.groups {
		if g.Grounded && !g.Empty() {
			root = GroupID(i)
			break
		}
	}
	if root == NoGroup {
		return NoGroup, ErrNoGroundedGroup
	}

	rg := res.Group(root)
	merged := 0
	for i := int(root) + 1; i < len(res.groups); i++ {
		g := res.groups[i]
		if !g.Grounded || g.Empty() {
			continue
		}
		rg.Occurrences = append(rg.Occurrences, g.Occurrences...)
		g.Occurrences = nil
		merged++
	}
	if merged > 0 {
		o.Logger.Info("Unified grounded groups into canonical root",
			zap.Int("root", int(root)), zap.Int("merged", merged))
	}

	// Redirect edges left pointing at an emptied group. An edge between two
	// emptied grounded groups becomes a self-loop at the root; Clean drops it.
	for _, e := range res.edges {
		if res.Contains(e.One) && res.Group(e.One).Empty() {
			e.One = root
		}
		if res.Contains(e.Two) && res.Group(e.Two).Empty() {
			e.Two = root
		}
	}

	Clean(res, opts...)
	return root, nil
}
