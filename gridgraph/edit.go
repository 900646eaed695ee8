package gridgraph

import "fmt"

// Edits never touch the receiver. Board rows are never written after a
// snapshot is built, so snapshots that keep the board share it; the maps
// an edit changes are copied first.

// Resize returns a width×height copy of g.
//
// Growing keeps every existing identity, terrain and wormhole and fills the
// new cells with fresh Normal vertices. Shrinking drops the rows and columns
// beyond the new bounds, then prunes every wormhole whose entrance or exit
// was dropped.
//
// Returns ErrInvalidSize if either dimension is below MinSize; g stays the
// authoritative snapshot in that case.
// Complexity: O(W×H + K), K = number of wormholes.
func (g *Graph) Resize(width, height int) (*Graph, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	next := &Graph{
		board:     make([][]VertexID, height),
		vertices:  make(map[VertexID]Vertex, width*height),
		wormholes: make(map[VertexID]VertexID, len(g.wormholes)),
	}
	for y := 0; y < height; y++ {
		if y >= len(g.board) {
			next.board[y] = next.newRow(y, 0, width)
			continue
		}
		old := g.board[y]
		keep := min(width, len(old))
		row := make([]VertexID, keep, width)
		for x := 0; x < keep; x++ {
			row[x] = old[x]
			next.vertices[old[x]] = g.vertices[old[x]]
		}
		next.board[y] = append(row, next.newRow(y, keep, width)...)
	}

	for from, to := range g.wormholes {
		if next.Has(from) && next.Has(to) {
			next.wormholes[from] = to
		}
	}

	return next, nil
}

// SetVertexType returns a copy of g where id has terrain t.
// Returns ErrUnknownVertex if id is not in g.
// Complexity: O(V) for the vertex index copy.
func (g *Graph) SetVertexType(id VertexID, t Terrain) (*Graph, error) {
	if !g.Has(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	next := &Graph{
		board:     g.board,
		vertices:  copyVertices(g.vertices),
		wormholes: g.wormholes,
	}
	next.vertices[id] = Vertex{ID: id, Type: t}

	return next, nil
}

// SetTypeAt is SetVertexType addressed by coordinate.
// Returns ErrOutOfBounds if (x,y) is outside the board.
func (g *Graph) SetTypeAt(x, y int, t Terrain) (*Graph, error) {
	id, ok := g.At(x, y)
	if !ok {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return g.SetVertexType(id, t)
}

// AddWormhole returns a copy of g with a wormhole entering at from and
// exiting at to. An existing wormhole entered at from is replaced, and any
// other wormhole exiting at to is dropped. from == to is accepted; such a
// wormhole only ever yields a self-loop.
//
// Returns ErrUnknownVertex if either endpoint is not in g.
// Complexity: O(V + K).
func (g *Graph) AddWormhole(from, to VertexID) (*Graph, error) {
	if !g.Has(from) {
		return nil, fmt.Errorf("%w: wormhole entrance %q", ErrUnknownVertex, from)
	}
	if !g.Has(to) {
		return nil, fmt.Errorf("%w: wormhole exit %q", ErrUnknownVertex, to)
	}
	next := &Graph{
		board:     g.board,
		vertices:  g.vertices,
		wormholes: copyWormholes(g.wormholes),
	}
	linkWormhole(next.wormholes, from, to)

	return next, nil
}

// RemoveWormhole returns a copy of g without the wormhole that id takes
// part in. The wormhole entered at id is removed first; failing that, the
// wormhole exiting at id is removed, so either endpoint may be passed.
//
// Returns ErrUnknownWormhole if id is neither an entrance nor an exit.
// Complexity: O(K).
func (g *Graph) RemoveWormhole(id VertexID) (*Graph, error) {
	entrance := id
	if _, ok := g.wormholes[id]; !ok {
		var found bool
		if entrance, found = g.WormholeEntrance(id); !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWormhole, id)
		}
	}
	next := &Graph{
		board:     g.board,
		vertices:  g.vertices,
		wormholes: copyWormholes(g.wormholes),
	}
	delete(next.wormholes, entrance)

	return next, nil
}

func copyVertices(src map[VertexID]Vertex) map[VertexID]Vertex {
	dst := make(map[VertexID]Vertex, len(src))
	for id, v := range src {
		dst[id] = v
	}
	return dst
}

func copyWormholes(src map[VertexID]VertexID) map[VertexID]VertexID {
	dst := make(map[VertexID]VertexID, len(src)+1)
	for from, to := range src {
		dst[from] = to
	}
	return dst
}
