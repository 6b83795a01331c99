// Package graph derives a renderable node/edge set from a list of people.
//
// The deriver is a pure function over already-fetched (and possibly
// UI-filtered) data: it never talks to the store and never fails. Each
// person's stored connections text is parsed on demand; whatever cannot be
// parsed contributes zero edges.
package graph

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Person is the minimal view of a contact the deriver needs. Callers map
// their own person type (API model, client DTO) onto it.
type Person struct {
	ID     int64
	Name   string
	Type   string
	Status string
	// Connections is the raw stored text: a JSON-encoded array of person
	// ids, e.g. "[2,3]".
	Connections string
}

// Node is one renderable person. Type and Status drive node color/border
// in the map view.
type Node struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// Edge is a directed connection. Identity is the ordered (Source, Target)
// pair; duplicates in a person's list stay duplicated here.
type Edge struct {
	Source int64 `json:"source"`
	Target int64 `json:"target"`
}

// Graph is the derived node and edge set.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Derive builds the graph for the given people.
//
// One node per person. One directed edge per entry of each person's
// well-formed connections list, in list order, whether or not the target
// exists in the input: dangling edges are the renderer's problem to drop,
// not the deriver's. Malformed connections are absorbed (logged, zero
// edges), never returned as an error. No symmetry is inferred: an edge
// A->B does not create B->A.
func Derive(people []Person) Graph {
	g := Graph{
		Nodes: make([]Node, 0, len(people)),
		Edges: make([]Edge, 0),
	}

	for _, p := range people {
		g.Nodes = append(g.Nodes, Node{
			ID:     p.ID,
			Name:   p.Name,
			Type:   p.Type,
			Status: p.Status,
		})

		for _, target := range parseConnections(p.ID, p.Connections) {
			g.Edges = append(g.Edges, Edge{Source: p.ID, Target: target})
		}
	}

	return g
}

// parseConnections parses the stored connections text into target ids.
// Missing, empty or malformed content yields no targets and no error -
// the store never validated the column, so readers must tolerate anything.
func parseConnections(personID int64, raw string) []int64 {
	if raw == "" {
		return nil
	}

	var targets []int64
	if err := json.Unmarshal([]byte(raw), &targets); err != nil {
		log.Warn().
			Int64("person_id", personID).
			Str("connections", raw).
			Err(err).
			Msg("Malformed connections, skipping edges")
		return nil
	}

	return targets
}
