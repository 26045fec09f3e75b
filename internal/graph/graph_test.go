package graph

import "testing"

func makeView() *View {
	nodes := []Node{
		{ID: PersonNodeID(1), Kind: KindPerson, Label: "Jane Doe"},
		{ID: PersonNodeID(2), Kind: KindPerson, Label: "John Smith"},
		{ID: PersonNodeID(3), Kind: KindPerson, Label: "Loner Lee"},
		{ID: OrgNodeID(1), Kind: KindOrganization, Label: "Acme"},
	}
	edges := []Edge{
		{ID: "pp:1", Source: PersonNodeID(1), Target: PersonNodeID(2), Kind: KindPersonPerson},
		{ID: "op:1", Source: OrgNodeID(1), Target: PersonNodeID(1), Kind: KindOrgPerson},
	}
	return New(nodes, edges)
}

func TestNamespacedIDs(t *testing.T) {
	// Person 1 and organization 1 must be distinct nodes.
	if PersonNodeID(1) == OrgNodeID(1) {
		t.Fatal("person and organization ids collide")
	}
}

func TestNeighbors(t *testing.T) {
	v := makeView()

	n := v.Neighbors(PersonNodeID(1))
	if len(n) != 2 {
		t.Fatalf("person 1 has %d neighbors, want 2: %v", len(n), n)
	}
	// Adjacency is undirected.
	back := v.Neighbors(OrgNodeID(1))
	if len(back) != 1 || back[0] != PersonNodeID(1) {
		t.Errorf("org 1 neighbors = %v", back)
	}
}

func TestDanglingEdgeDropped(t *testing.T) {
	nodes := []Node{{ID: PersonNodeID(1), Kind: KindPerson, Label: "Jane"}}
	edges := []Edge{{ID: "pp:9", Source: PersonNodeID(1), Target: PersonNodeID(99), Kind: KindPersonPerson}}

	v := New(nodes, edges)
	if len(v.Edges) != 0 {
		t.Errorf("edge with missing endpoint kept: %+v", v.Edges)
	}
}

func TestIsolated(t *testing.T) {
	v := makeView()

	iso := v.Isolated()
	if len(iso) != 1 || iso[0].Label != "Loner Lee" {
		t.Errorf("isolated = %+v, want just Loner Lee", iso)
	}
}

func TestSummary(t *testing.T) {
	v := makeView()

	st := v.Summary()
	want := Stats{People: 3, Organizations: 1, PersonEdges: 1, OrgEdges: 1, Isolated: 1}
	if st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}
