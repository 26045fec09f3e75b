package graph

import (
	"testing"

	"go.uber.org/zap"

	"rolo/internal/store"
)

func TestFromStore(t *testing.T) {
	s, err := store.Open(":memory:", zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	jane, err := s.CreatePerson(&store.Person{FirstName: "Jane", LastName: "Doe"})
	if err != nil {
		t.Fatal(err)
	}
	john, err := s.CreatePerson(&store.Person{FirstName: "John", LastName: "Smith"})
	if err != nil {
		t.Fatal(err)
	}
	types, err := s.OrgTypes()
	if err != nil {
		t.Fatal(err)
	}
	acme, err := s.CreateOrganization("Acme", types[0].ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.LinkPeople(jane.ID, john.ID, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.LinkOrgPerson(acme.ID, jane.ID, nil); err != nil {
		t.Fatal(err)
	}

	v, err := FromStore(s)
	if err != nil {
		t.Fatal(err)
	}

	if len(v.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(v.Nodes))
	}
	if len(v.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(v.Edges))
	}

	kinds := map[string]int{}
	for _, e := range v.Edges {
		kinds[e.Kind]++
	}
	if kinds[KindPersonPerson] != 1 || kinds[KindOrgPerson] != 1 {
		t.Errorf("edge kinds = %v", kinds)
	}

	// Every node id must carry its namespace prefix.
	for _, n := range v.Nodes {
		switch n.Kind {
		case KindPerson:
			if n.ID[:2] != "p:" {
				t.Errorf("person node id %q not namespaced", n.ID)
			}
		case KindOrganization:
			if n.ID[:2] != "o:" {
				t.Errorf("organization node id %q not namespaced", n.ID)
			}
		}
	}
}
