package skeleton

import (
	"go.uber.org/zap"

	"github.com/kinemech/skeletal/rigid"
)

// frontierItem pairs the group being expanded with the branch target: the
// group owning the tree node that anything merged along this branch folds
// into.
type frontierItem struct {
	current rigid.GroupID
	branch  rigid.GroupID
}

// jointRecord defers joint creation until merges are applied and edge
// endpoints redirected, so the description is built from post-merge data.
type jointRecord struct {
	edge   *rigid.Edge
	parent NodeID
	child  NodeID
}

// synthesizer encapsulates mutable expansion state.
type synthesizer struct {
	res  *rigid.Results
	opts Options
	adj  *AdjacencyMaps

	closed    map[rigid.GroupID]bool
	mergeInto map[rigid.GroupID]rigid.GroupID
	nodeOf    map[rigid.GroupID]NodeID
	deferred  []jointRecord
	tree      *Tree
}

// Synthesize runs the full pipeline over res and returns the kinematic
// tree rooted at the canonical grounded group:
//
//	Clean → UnifyGround (→ Clean) → Adjacency → frontier BFS merge/expand →
//	merge application → edge redirection → joint materialization → Clean.
//
// res is mutated in place at every stage; after the call it holds the
// merge-consistent graph backing the returned tree. Groups unreachable from
// the grounded root are excluded from the tree but left in res.
//
// Returns ErrNilResults for nil input, or rigid.ErrNoGroundedGroup
// (untouched) when the assembly has no grounded group.
func Synthesize(res *rigid.Results, opts ...Option) (*Tree, error) {
	if res == nil {
		return nil, ErrNilResults
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rigid.Clean(res, rigid.WithLogger(o.Logger))
	root, err := rigid.UnifyGround(res, rigid.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}

	s := &synthesizer{
		res:       res,
		opts:      o,
		adj:       Adjacency(res, opts...),
		closed:    map[rigid.GroupID]bool{},
		mergeInto: map[rigid.GroupID]rigid.GroupID{},
		nodeOf:    map[rigid.GroupID]NodeID{},
		tree:      &Tree{},
	}

	s.expand(root)
	s.reportUnreached()
	s.applyMerges()
	s.redirectEdges()
	s.materialize()
	rigid.Clean(res, rigid.WithLogger(o.Logger))

	return s.tree, nil
}

// expand runs the frontier BFS from the grounded root. Each frontier level
// is processed in discovery order; within one item, movable neighbors are
// expanded before rigid-equivalent ones, each in edge-scan order. The
// closed set makes first discovery win, so every group is processed exactly
// once and ties at equal depth resolve by input order.
func (s *synthesizer) expand(root rigid.GroupID) {
	s.closed[root] = true
	s.nodeOf[root] = s.tree.addNode(root)

	frontier := []frontierItem{{current: root, branch: root}}
	for len(frontier) > 0 {
		var next []frontierItem
		for _, it := range frontier {
			next = s.expandMovable(it, next)
			next = s.expandRigidEq(it, next)
		}
		frontier = next
	}
}

// expandMovable gives every unvisited movable neighbor its own tree node
// and defers the joint against the branch target's node. The neighbor
// starts a new branch.
func (s *synthesizer) expandMovable(it frontierItem, next []frontierItem) []frontierItem {
	for _, m := range s.adj.Movable[it.current] {
		if s.closed[m] {
			continue
		}
		e := s.movableEdgeBetween(it.current, m)
		if e == nil {
			// Adjacency and edge list disagree; extraction anomaly.
			s.opts.Logger.Warn("No backing movable edge for adjacency pair",
				zap.Int("current", int(it.current)), zap.Int("neighbor", int(m)))
			continue
		}
		s.closed[m] = true
		child := s.tree.addNode(m)
		s.nodeOf[m] = child
		s.deferred = append(s.deferred, jointRecord{
			edge:   e,
			parent: s.nodeOf[it.branch],
			child:  child,
		})
		next = append(next, frontierItem{current: m, branch: m})
	}
	return next
}

// expandRigidEq schedules every unvisited rigid-equivalent neighbor to
// merge into the branch target. The neighbor continues the same branch and
// gets no node of its own. Merge targets are always node owners, never
// merge sources, so the merge map resolves in a single step.
func (s *synthesizer) expandRigidEq(it frontierItem, next []frontierItem) []frontierItem {
	for _, c := range s.adj.RigidEq[it.current] {
		if s.closed[c] {
			continue
		}
		s.closed[c] = true
		s.mergeInto[c] = it.branch
		s.opts.OnMerge(c, it.branch)
		next = append(next, frontierItem{current: c, branch: it.branch})
	}
	return next
}

// movableEdgeBetween returns the first edge, in edge-list order, that joins
// a and b and carries a qualifying movable-joint entry.
func (s *synthesizer) movableEdgeBetween(a, b rigid.GroupID) *rigid.Edge {
	for _, e := range s.res.Edges() {
		if !e.Connects(a, b) {
			continue
		}
		if _, ok := e.FirstMovable(); ok {
			return e
		}
	}
	return nil
}

// reportUnreached flags groups the expansion never closed: a disconnected
// component with no path from the root. They stay in the graph but get no
// tree node.
func (s *synthesizer) reportUnreached() {
	unreached := 0
	for _, id := range s.res.GroupIDs() {
		if !s.closed[id] {
			unreached++
		}
	}
	if unreached > 0 {
		s.opts.Logger.Warn("Excluding groups unreachable from the grounded root",
			zap.Int("groups", unreached))
	}
}

// applyMerges folds every scheduled merge source into its target: the
// occurrences move, the source empties, the grounded flag carries over.
// Sources are visited in arena order, so target occurrence lists come out
// deterministic.
func (s *synthesizer) applyMerges() {
	for _, id := range s.res.GroupIDs() {
		target, ok := s.mergeInto[id]
		if !ok {
			continue
		}
		src, dst := s.res.Group(id), s.res.Group(target)
		dst.Occurrences = append(dst.Occurrences, src.Occurrences...)
		if src.Grounded {
			dst.Grounded = true
		}
		src.Occurrences = nil
	}
}

// redirectEdges rewrites every edge endpoint naming a merge source to its
// target. Single-step lookup suffices: targets never appear as merge
// sources.
func (s *synthesizer) redirectEdges() {
	for _, e := range s.res.Edges() {
		if t, ok := s.mergeInto[e.One]; ok {
			e.One = t
		}
		if t, ok := s.mergeInto[e.Two]; ok {
			e.Two = t
		}
	}
}

// materialize turns every deferred record into a tree edge, building the
// joint description from the now merge-consistent edge data. The first
// movable entry of the backing edge, in list order, labels the link.
func (s *synthesizer) materialize() {
	for _, rec := range s.deferred {
		j, ok := rec.edge.FirstMovable()
		if !ok {
			// The qualifying entry was present at deferral time; losing it
			// here means the graph was mutated behind our back.
			s.opts.Logger.Warn("Dropping deferred joint with no movable entry",
				zap.Int("parent", int(s.tree.Node(rec.parent).Group)))
			continue
		}
		parent := s.tree.Node(rec.parent)
		child := s.tree.Node(rec.child)
		parent.Children = append(parent.Children, Child{
			Node: rec.child,
			Joint: JointDesc{
				Type:      j.Type,
				OccOne:    j.OccOne,
				OccTwo:    j.OccTwo,
				One:       rec.edge.One,
				Two:       rec.edge.Two,
				Reference: parent.Group,
			},
		})
		s.opts.OnAttach(parent.Group, child.Group, j.Type)
	}
}
