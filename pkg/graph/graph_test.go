package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_WellFormedConnections(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "Alice Johnson", Type: "colleague", Status: "best-friend", Connections: "[2,3]"},
	}

	g := Derive(people)

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, Node{ID: 1, Name: "Alice Johnson", Type: "colleague", Status: "best-friend"}, g.Nodes[0])
	assert.Equal(t, []Edge{{Source: 1, Target: 2}, {Source: 1, Target: 3}}, g.Edges)
}

func TestDerive_MalformedConnectionsAbsorbed(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "Alice", Type: "colleague", Status: "friend", Connections: "not json"},
	}

	var g Graph
	require.NotPanics(t, func() { g = Derive(people) })

	assert.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Edges)
}

func TestDerive_NonIntegerElementsAbsorbed(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "Alice", Type: "colleague", Status: "friend", Connections: `[2,"x"]`},
	}

	g := Derive(people)

	// The whole list is rejected, not partially applied.
	assert.Empty(t, g.Edges)
}

func TestDerive_EmptyAndMissingConnections(t *testing.T) {
	people := []Person{
		{ID: 6, Name: "Frank", Type: "colleague", Status: "acquaintance", Connections: "[]"},
		{ID: 7, Name: "Grace", Type: "groupmate", Status: "friend", Connections: ""},
	}

	g := Derive(people)

	assert.Len(t, g.Nodes, 2)
	assert.Empty(t, g.Edges)
}

func TestDerive_DuplicateTargetsKept(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "Alice", Type: "colleague", Status: "friend", Connections: "[2,2]"},
	}

	g := Derive(people)

	assert.Equal(t, []Edge{{Source: 1, Target: 2}, {Source: 1, Target: 2}}, g.Edges)
}

func TestDerive_NoSymmetryInferred(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "Alice", Type: "colleague", Status: "friend", Connections: "[3]"},
		{ID: 3, Name: "Carol", Type: "colleague", Status: "friend", Connections: "[]"},
	}

	g := Derive(people)

	assert.Equal(t, []Edge{{Source: 1, Target: 3}}, g.Edges)
}

func TestDerive_DanglingEdgesPreserved(t *testing.T) {
	// Seed scenario: person 1 points at 2 and 3; deleting person 3 from
	// the input must keep the dangling 1->3 edge. Dropping it is the
	// renderer's job, not the deriver's.
	people := []Person{
		{ID: 1, Name: "Alice", Type: "colleague", Status: "best-friend", Connections: "[2,3]"},
		{ID: 2, Name: "Bob", Type: "groupmate", Status: "best-friend", Connections: "[1]"},
	}

	g := Derive(people)

	assert.Len(t, g.Nodes, 2)
	assert.Contains(t, g.Edges, Edge{Source: 1, Target: 2})
	assert.Contains(t, g.Edges, Edge{Source: 1, Target: 3})
	assert.Contains(t, g.Edges, Edge{Source: 2, Target: 1})
	assert.Len(t, g.Edges, 3)
}

func TestDerive_EmptyInput(t *testing.T) {
	g := Derive(nil)

	assert.NotNil(t, g.Nodes)
	assert.NotNil(t, g.Edges)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}
