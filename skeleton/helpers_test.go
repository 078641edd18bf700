package skeleton_test

import (
	"fmt"

	"github.com/kinemech/skeletal/rigid"
)

// occ is a stub part-occurrence handle for tests.
type occ struct {
	name       string
	suppressed bool
}

func (o *occ) Suppressed() bool { return o.suppressed }

func part(name string) *occ { return &occ{name: name} }

// assembly builds rigid.Results fixtures with one named part per group, the
// way the extraction layer would populate them.
type assembly struct {
	res *rigid.Results
}

func newAssembly() *assembly {
	return &assembly{res: rigid.NewResults()}
}

// group adds a group holding the named parts; the first assembly group is
// typically the grounded one.
func (a *assembly) group(grounded bool, parts ...string) rigid.GroupID {
	g := rigid.Group{Grounded: grounded}
	for _, p := range parts {
		g.Occurrences = append(g.Occurrences, part(p))
	}
	return a.res.AddGroup(g)
}

// movable links two groups with a single joint entry of the given type.
func (a *assembly) movable(one, two rigid.GroupID, jt rigid.JointType) {
	a.res.AddEdge(rigid.Edge{One: one, Two: two,
		Joints: []rigid.Joint{{
			Type:   jt,
			OccOne: a.firstOcc(one),
			OccTwo: a.firstOcc(two),
		}}})
}

// constrained links two groups with a single rigid-constraint entry.
func (a *assembly) constrained(one, two rigid.GroupID) {
	a.res.AddEdge(rigid.Edge{One: one, Two: two,
		Constraints: []rigid.Constraint{{
			Type:   "mate",
			OccOne: a.firstOcc(one),
			OccTwo: a.firstOcc(two),
		}}})
}

// rigidJoints links two groups with n rigid-type joint entries and no
// constraints. n == 1 produces the ambiguous classification.
func (a *assembly) rigidJoints(one, two rigid.GroupID, n int) {
	e := rigid.Edge{One: one, Two: two}
	for i := 0; i < n; i++ {
		e.Joints = append(e.Joints, rigid.Joint{
			Type:   rigid.Rigid,
			OccOne: a.firstOcc(one),
			OccTwo: a.firstOcc(two),
		})
	}
	a.res.AddEdge(e)
}

func (a *assembly) firstOcc(id rigid.GroupID) rigid.Occurrence {
	g := a.res.Group(id)
	if len(g.Occurrences) == 0 {
		return nil
	}
	return g.Occurrences[0]
}

// chain builds root–g1–…–gn connected by revolute joints and returns all
// handles, root first.
func (a *assembly) chain(n int) []rigid.GroupID {
	ids := []rigid.GroupID{a.group(true, "root")}
	for i := 1; i <= n; i++ {
		id := a.group(false, fmt.Sprintf("link%d", i))
		a.movable(ids[i-1], id, rigid.Revolute)
		ids = append(ids, id)
	}
	return ids
}
