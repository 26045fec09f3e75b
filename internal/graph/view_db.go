package graph

import (
	"sort"
	"strconv"

	"rolo/internal/store"
)

// FromStore loads the full graph view from the database.
func FromStore(s *store.Store) (*View, error) {
	people, err := s.AllPeopleBrief()
	if err != nil {
		return nil, err
	}
	orgs, err := s.AllOrganizationsBrief()
	if err != nil {
		return nil, err
	}
	personRels, err := s.AllPersonRelationships()
	if err != nil {
		return nil, err
	}
	orgRels, err := s.AllOrgPersonRelationships()
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(people)+len(orgs))
	for id, name := range people {
		nodes = append(nodes, Node{ID: PersonNodeID(id), Kind: KindPerson, Label: name})
	}
	for id, name := range orgs {
		nodes = append(nodes, Node{ID: OrgNodeID(id), Kind: KindOrganization, Label: name})
	}
	// Map iteration order is random; keep the output stable.
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	edges := make([]Edge, 0, len(personRels)+len(orgRels))
	for _, r := range personRels {
		edges = append(edges, Edge{
			ID:     "pp:" + strconv.FormatInt(r.ID, 10),
			Source: PersonNodeID(r.Person1ID),
			Target: PersonNodeID(r.Person2ID),
			Kind:   KindPersonPerson,
			Label:  r.Label,
		})
	}
	for _, r := range orgRels {
		edges = append(edges, Edge{
			ID:     "op:" + strconv.FormatInt(r.ID, 10),
			Source: OrgNodeID(r.OrganizationID),
			Target: PersonNodeID(r.PersonID),
			Kind:   KindOrgPerson,
			Label:  r.Label,
		})
	}

	return New(nodes, edges), nil
}
