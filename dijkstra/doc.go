// Package dijkstra computes minimum-cost routes over an adjacency.Map with
// Dijkstra's algorithm.
//
// Overview:
//
//   - ShortestPath relaxes the whole component reachable from the start and
//     then rebuilds the route to the finish from predecessor links.
//   - The frontier is a min-priority queue keyed by (tentative cost,
//     discovery order). Among equal costs the vertex discovered first is
//     settled first, so identical inputs always give identical routes.
//   - Arcs leading back to the start are ignored; a self-loop or wormhole
//     into the start can never corrupt its cost.
//   - A neighbor is updated only on a strictly lower cost, so on ties the
//     route discovered first is kept.
//
// Unreachable finish:
//
//	Not an error. Result.Cost is Unreachable and Result.Path is empty.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with lazy decrease-key.
//   - Space: O(V + E) for costs, predecessors and stale queue entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilAdjacency: the adjacency map is nil.
//   - ErrBadMaxCost:   WithMaxCost was given a negative bound (panics).
//
// Thread safety:
//
//   - ShortestPath holds no shared state. An adjacency.Map is read-only once
//     built, so concurrent queries over the same map are safe.
package dijkstra
