// Package route is the single entry point a map consumer needs: it derives
// the adjacency map of a gridgraph snapshot under the requested movement
// rules and runs Dijkstra between two cells.
package route

import (
	"github.com/katalvlaran/gridroute/adjacency"
	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// Result is a computed route; see dijkstra.Result.
type Result = dijkstra.Result

// Unreachable is the cost reported for a route that does not exist.
const Unreachable = dijkstra.Unreachable

// Find computes the cheapest route from start to finish in g.
//
// The route is empty (Cost == Unreachable) when g is nil, when either
// identity is not a vertex of g, when either endpoint is a Boulder (even if
// start == finish), or when no route exists. g is not modified.
// Complexity: O(W×H×d) to build arcs plus O((V + E) log V) for the search.
func Find(g *gridgraph.Graph, start, finish gridgraph.VertexID, opts ...adjacency.Option) Result {
	return FindWithin(g, start, finish, Unreachable, opts...)
}

// FindWithin is Find with a cost cap: a finish that costs more than maxCost
// to reach is reported as unreachable, and cells beyond the cap are not
// explored. A negative maxCost yields the empty route.
func FindWithin(g *gridgraph.Graph, start, finish gridgraph.VertexID, maxCost int64, opts ...adjacency.Option) Result {
	if g == nil || maxCost < 0 || !passable(g, start) || !passable(g, finish) {
		return unreachable()
	}
	res, err := dijkstra.ShortestPath(adjacency.Build(g, opts...), start, finish, dijkstra.WithMaxCost(maxCost))
	if err != nil {
		return unreachable()
	}
	return res
}

// FindAt is Find addressed by board coordinates.
func FindAt(g *gridgraph.Graph, from, to gridgraph.Coord, opts ...adjacency.Option) Result {
	if g == nil {
		return unreachable()
	}
	start, ok := g.At(from.X, from.Y)
	if !ok {
		return unreachable()
	}
	finish, ok := g.At(to.X, to.Y)
	if !ok {
		return unreachable()
	}
	return Find(g, start, finish, opts...)
}

// Compute returns only the ordered cells of the route from start to finish,
// both inclusive, or an empty slice.
func Compute(g *gridgraph.Graph, start, finish gridgraph.VertexID, opts ...adjacency.Option) []gridgraph.VertexID {
	return Find(g, start, finish, opts...).Path
}

// passable reports whether id is a vertex of g that may be stood on.
func passable(g *gridgraph.Graph, id gridgraph.VertexID) bool {
	v, ok := g.Vertex(id)
	return ok && !v.IsImpassable()
}

func unreachable() Result {
	return Result{Cost: Unreachable, Path: []gridgraph.VertexID{}}
}
