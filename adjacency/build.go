package adjacency

import "github.com/katalvlaran/gridroute/gridgraph"

// Neighbor offsets in emission order: W, E, N, S, then NW, SE, SW, NE.
// Route tie-breaks depend on this order; keep it stable.
var (
	orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [4][2]int{{-1, -1}, {1, 1}, {-1, 1}, {1, -1}}
)

// Build derives the adjacency map of g under the given movement rules.
//
// For every passable cell, in row-major board order:
//  1. A wormhole entrance gets an arc to its exit with WormholeWeight.
//     Unless AllowPassByWormhole is set, that is the only arc it gets.
//  2. Otherwise it gets an arc to each passable orthogonal neighbor, and to
//     each passable diagonal neighbor when AllowDiagonal is set. The weight
//     is the terrain cost of the source plus the terrain cost of the
//     destination.
//
// No arc ever touches a Boulder. g is not modified.
// Complexity: O(W×H×d) time, O(V + E) memory, d = 4 or 8.
func Build(g *gridgraph.Graph, opts ...Option) *Map {
	cfg := Resolve(opts...)
	m := NewMap()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			id, _ := g.At(x, y)
			from, _ := g.Vertex(id)
			if from.IsImpassable() {
				continue
			}
			if exit, ok := g.WormholeExit(id); ok {
				if to, ok := g.Vertex(exit); ok && !to.IsImpassable() {
					m.AddArc(id, exit, WormholeWeight)
				}
				if !cfg.AllowPassByWormhole {
					continue
				}
			}
			addSteps(m, g, from, x, y, orthogonal[:])
			if cfg.AllowDiagonal {
				addSteps(m, g, from, x, y, diagonal[:])
			}
		}
	}

	return m
}

// addSteps adds the on-foot arcs from the cell at (x,y) for each offset.
func addSteps(m *Map, g *gridgraph.Graph, from gridgraph.Vertex, x, y int, offsets [][2]int) {
	for _, d := range offsets {
		id, ok := g.At(x+d[0], y+d[1])
		if !ok {
			continue
		}
		to, _ := g.Vertex(id)
		if to.IsImpassable() {
			continue
		}
		m.AddArc(from.ID, to.ID, from.Type.Cost()+to.Type.Cost())
	}
}
