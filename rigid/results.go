package rigid

// Results is the top-level assembly-graph container: an ordered arena of
// groups plus an ordered list of edges. The external extraction layer
// populates it; every pipeline stage mutates it in place.
//
// Results is not safe for concurrent use; the pipeline assumes exclusive
// ownership of the instance for the duration of a synthesis call.
type Results struct {
	groups []*Group
	edges  []*Edge
}

// NewResults returns an empty Results ready for population.
func NewResults() *Results {
	return &Results{}
}

// AddGroup appends g to the group arena and returns its handle.
func (r *Results) AddGroup(g Group) GroupID {
	r.groups = append(r.groups, &g)
	return GroupID(len(r.groups) - 1)
}

// AddEdge appends e to the edge list.
func (r *Results) AddEdge(e Edge) {
	r.edges = append(r.edges, &e)
}

// Contains reports whether id addresses a slot in the group arena. Edges
// coming from external extraction may name ids outside the arena; callers
// use Contains to exclude them instead of panicking.
func (r *Results) Contains(id GroupID) bool {
	return id >= 0 && int(id) < len(r.groups)
}

// Group returns the arena slot for id. The pointer stays valid for the life
// of the Results. id must satisfy Contains.
func (r *Results) Group(id GroupID) *Group {
	return r.groups[id]
}

// GroupIDs returns the handles of all active (non-empty) groups in arena
// order. Emptied groups — suppressed away or merged away — are filtered out
// but keep their arena slots.
func (r *Results) GroupIDs() []GroupID {
	ids := make([]GroupID, 0, len(r.groups))
	for i, g := range r.groups {
		if !g.Empty() {
			ids = append(ids, GroupID(i))
		}
	}
	return ids
}

// Edges returns the live edge list in input order. Callers may mutate the
// edges (redirection during merge fix-up) but not the slice itself.
func (r *Results) Edges() []*Edge {
	return r.edges
}

// NumGroups returns the number of active groups.
func (r *Results) NumGroups() int {
	return len(r.GroupIDs())
}

// NumEdges returns the number of edges currently in the graph.
func (r *Results) NumEdges() int {
	return len(r.edges)
}
