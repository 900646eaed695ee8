package gridgraph

import "fmt"

// Vertex is one cell: its identity and terrain. Vertices are values;
// changing terrain means building a new Graph with a replacement Vertex.
type Vertex struct {
	ID   VertexID
	Type Terrain
}

// NewVertex creates the vertex born at column x, row y.
// The identity is derived from the birth coordinate, so it is reproducible
// and unique within a Graph: cells never move once created.
func NewVertex(t Terrain, x, y int) Vertex {
	return Vertex{ID: vertexID(x, y), Type: t}
}

// IsImpassable reports whether v can never be part of an edge.
func (v Vertex) IsImpassable() bool { return !v.Type.Passable() }

// vertexID formats the identity for the cell created at (x,y).
func vertexID(x, y int) VertexID {
	return VertexID(fmt.Sprintf("%d,%d", x, y))
}
