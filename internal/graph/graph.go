// Package graph builds the node/edge view of the network: one node per
// person and organization, one edge per relationship row, tagged with
// kind discriminators so a renderer needs no further queries.
package graph

import (
	"sort"
	"strconv"
)

// Node kinds.
const (
	KindPerson       = "person"
	KindOrganization = "organization"
)

// Edge kinds.
const (
	KindPersonPerson = "person_person"
	KindOrgPerson    = "organization_person"
)

// Node is one graph vertex. IDs are namespaced ("p:12", "o:3") so the
// two entity id spaces cannot collide in a single view.
type Node struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// Edge is one relationship row.
type Edge struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Kind   string  `json:"kind"`
	Label  *string `json:"label"`
}

// View holds the full graph with a precomputed undirected adjacency list.
type View struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	adj map[string][]string
}

// PersonNodeID returns the namespaced node id for a person row.
func PersonNodeID(id int64) string {
	return "p:" + strconv.FormatInt(id, 10)
}

// OrgNodeID returns the namespaced node id for an organization row.
func OrgNodeID(id int64) string {
	return "o:" + strconv.FormatInt(id, 10)
}

// New builds a View from nodes and edges. Edges referencing a missing
// endpoint are dropped rather than rendered dangling.
func New(nodes []Node, edges []Edge) *View {
	adj := make(map[string][]string, len(nodes))
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n.ID] = true
		adj[n.ID] = nil
	}

	kept := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !known[e.Source] || !known[e.Target] {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
		kept = append(kept, e)
	}

	return &View{Nodes: nodes, Edges: kept, adj: adj}
}

// Neighbors returns the node ids adjacent to id.
func (v *View) Neighbors(id string) []string {
	return v.adj[id]
}

// Isolated returns nodes with no edges at all, sorted by label. In a
// network tracker these are the people and organizations not yet
// connected to anything.
func (v *View) Isolated() []Node {
	var out []Node
	for _, n := range v.Nodes {
		if len(v.adj[n.ID]) == 0 {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Stats summarizes the view.
type Stats struct {
	People        int `json:"people"`
	Organizations int `json:"organizations"`
	PersonEdges   int `json:"person_edges"`
	OrgEdges      int `json:"org_edges"`
	Isolated      int `json:"isolated"`
}

// Summary counts nodes and edges by kind.
func (v *View) Summary() Stats {
	var st Stats
	for _, n := range v.Nodes {
		if n.Kind == KindPerson {
			st.People++
		} else {
			st.Organizations++
		}
	}
	for _, e := range v.Edges {
		if e.Kind == KindPersonPerson {
			st.PersonEdges++
		} else {
			st.OrgEdges++
		}
	}
	st.Isolated = len(v.Isolated())
	return st
}
