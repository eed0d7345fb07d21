package model

import "github.com/bibbank/signalgraph/internal/domain/valueobject"

// GraphNode is a vertex handed to the graph renderer.
type GraphNode struct {
	ID    string
	Label string
	Kind  valueobject.NodeKind
}

// GraphEdge links the candidate to one selected signal.
type GraphEdge struct {
	From   string
	To     string
	Weight int
}

// Graph is the star-shaped view of an evaluation: one entity node and one
// node and edge per selected signal.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}
