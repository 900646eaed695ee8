package adjacency

import "github.com/katalvlaran/gridroute/gridgraph"

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{arcs: make(map[gridgraph.VertexID][]Arc)}
}

// AddArc records from→to with weight w. If the arc already exists its
// weight is replaced by w and its position is unchanged.
func (m *Map) AddArc(from, to gridgraph.VertexID, w int64) {
	list, ok := m.arcs[from]
	if !ok {
		m.sources = append(m.sources, from)
	}
	for i := range list {
		if list[i].To == to {
			list[i].Weight = w
			return
		}
	}
	m.arcs[from] = append(list, Arc{To: to, Weight: w})
}

// Arcs returns the outgoing arcs of from in insertion order.
// The slice is shared with m and must not be modified.
func (m *Map) Arcs(from gridgraph.VertexID) []Arc {
	return m.arcs[from]
}

// Weight returns the weight of from→to.
func (m *Map) Weight(from, to gridgraph.VertexID) (int64, bool) {
	for _, a := range m.arcs[from] {
		if a.To == to {
			return a.Weight, true
		}
	}
	return 0, false
}

// HasSource reports whether from has at least one outgoing arc.
func (m *Map) HasSource(from gridgraph.VertexID) bool {
	_, ok := m.arcs[from]
	return ok
}

// Sources returns every vertex with outgoing arcs, in insertion order.
func (m *Map) Sources() []gridgraph.VertexID {
	return append([]gridgraph.VertexID(nil), m.sources...)
}

// Len returns the number of sources.
func (m *Map) Len() int { return len(m.sources) }

// EdgeCount returns the total number of arcs.
func (m *Map) EdgeCount() int {
	n := 0
	for _, list := range m.arcs {
		n += len(list)
	}
	return n
}
