package rigid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kinemech/skeletal/rigid"
)

// TestUnifyGround_MergesGroundedGroups verifies two grounded groups fold
// into one canonical root holding all occurrences, in order.
func TestUnifyGround_MergesGroundedGroups(t *testing.T) {
	res := rigid.NewResults()
	g1 := addGroup(res, true, part("a"), part("b"))
	g2 := addGroup(res, true, part("c"))

	root, err := rigid.UnifyGround(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != g1 {
		t.Errorf("root = %v; want %v", root, g1)
	}
	if got, want := names(res.Group(g1).Occurrences), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("root occurrences = %v; want %v", got, want)
	}
	if !res.Group(g2).Empty() {
		t.Errorf("merged group should be empty")
	}
	if got, want := res.GroupIDs(), []rigid.GroupID{g1}; !reflect.DeepEqual(got, want) {
		t.Errorf("active groups = %v; want %v", got, want)
	}
}

// TestUnifyGround_NoGroundedGroup verifies the invalid-state error and that
// the input is left untouched.
func TestUnifyGround_NoGroundedGroup(t *testing.T) {
	res := rigid.NewResults()
	a := addGroup(res, false, part("a"))
	b := addGroup(res, false, part("b"))

	root, err := rigid.UnifyGround(res)
	if !errors.Is(err, rigid.ErrNoGroundedGroup) {
		t.Fatalf("err = %v; want ErrNoGroundedGroup", err)
	}
	if root != rigid.NoGroup {
		t.Errorf("root = %v; want NoGroup", root)
	}
	if got, want := names(res.Group(a).Occurrences), []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("group a occurrences modified: %v", got)
	}
	if got, want := names(res.Group(b).Occurrences), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("group b occurrences modified: %v", got)
	}
}

// TestUnifyGround_RedirectsEdges verifies an edge whose endpoint was merged
// away gets redirected to the canonical root, while an edge between two
// merged grounded groups degenerates to a self-loop and is cleaned.
func TestUnifyGround_RedirectsEdges(t *testing.T) {
	res := rigid.NewResults()
	pa, pb, pc, pm := part("a"), part("b"), part("c"), part("m")
	g1 := addGroup(res, true, pa)
	g2 := addGroup(res, true, pb)
	g3 := addGroup(res, true, pc)
	m := addGroup(res, false, pm)

	// survives, endpoint redirected g2 → g1
	res.AddEdge(rigid.Edge{One: g2, Two: m,
		Joints: []rigid.Joint{{Type: rigid.Revolute, OccOne: pb, OccTwo: pm}}})
	// degenerates: both endpoints redirect to g1
	res.AddEdge(rigid.Edge{One: g2, Two: g3,
		Constraints: []rigid.Constraint{{Type: "mate", OccOne: pb, OccTwo: pc}}})

	root, err := rigid.UnifyGround(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != g1 {
		t.Fatalf("root = %v; want %v", root, g1)
	}
	if res.NumEdges() != 1 {
		t.Fatalf("NumEdges = %d; want 1", res.NumEdges())
	}
	if e := res.Edges()[0]; !e.Connects(g1, m) {
		t.Errorf("surviving edge connects %v–%v; want %v–%v", e.One, e.Two, g1, m)
	}
}

// TestUnifyGround_FirstGroundedWins verifies arena order decides the
// canonical root.
func TestUnifyGround_FirstGroundedWins(t *testing.T) {
	res := rigid.NewResults()
	addGroup(res, false, part("free"))
	g2 := addGroup(res, true, part("x"))
	addGroup(res, true, part("y"))

	root, err := rigid.UnifyGround(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != g2 {
		t.Errorf("root = %v; want %v", root, g2)
	}
	if got, want := names(res.Group(g2).Occurrences), []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("root occurrences = %v; want %v", got, want)
	}
}

// TestUnifyGround_NilResults verifies the nil-input sentinel.
func TestUnifyGround_NilResults(t *testing.T) {
	if _, err := rigid.UnifyGround(nil); !errors.Is(err, rigid.ErrNilResults) {
		t.Errorf("err = %v; want ErrNilResults", err)
	}
}
