package gridgraph

import (
	"fmt"
	"strings"
)

// FromTextMap builds a Graph from a text map and a list of wormhole pairs.
//
// Rows are the trimmed, non-empty lines of text; each rune becomes one
// Vertex (see TerrainFromRune). Wormhole pairs with an endpoint outside the
// board are skipped without failing the construction; later pairs win over
// earlier ones sharing an entrance or an exit.
//
// Returns ErrEmptyMap if no row remains, ErrNonRectangular if row lengths
// differ. Both wrap ErrInvalidMap.
// Complexity: O(W×H + P) time, O(W×H) memory.
func FromTextMap(text string, pairs []WormholePair) (*Graph, error) {
	var rows [][]rune
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	g := &Graph{
		board:     make([][]VertexID, len(rows)),
		vertices:  make(map[VertexID]Vertex, len(rows)*w),
		wormholes: make(map[VertexID]VertexID, len(pairs)),
	}
	for y, row := range rows {
		line := make([]VertexID, w)
		for x, r := range row {
			v := NewVertex(TerrainFromRune(r), x, y)
			g.vertices[v.ID] = v
			line[x] = v.ID
		}
		g.board[y] = line
	}

	for _, p := range pairs {
		from, ok := g.At(p.From.X, p.From.Y)
		if !ok {
			continue
		}
		to, ok := g.At(p.To.X, p.To.Y)
		if !ok {
			continue
		}
		linkWormhole(g.wormholes, from, to)
	}

	return g, nil
}

// New returns a width×height Graph of Normal cells without wormholes.
// Returns ErrInvalidSize if either dimension is below MinSize.
// Complexity: O(W×H).
func New(width, height int) (*Graph, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	g := &Graph{
		board:     make([][]VertexID, height),
		vertices:  make(map[VertexID]Vertex, width*height),
		wormholes: make(map[VertexID]VertexID),
	}
	for y := 0; y < height; y++ {
		g.board[y] = g.newRow(y, 0, width)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Graph) Width() int {
	if len(g.board) == 0 {
		return 0
	}
	return len(g.board[0])
}

// Height returns the number of rows.
func (g *Graph) Height() int { return len(g.board) }

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// InBounds reports whether (x,y) lies within the board.
// Complexity: O(1).
func (g *Graph) InBounds(x, y int) bool {
	return y >= 0 && y < len(g.board) && x >= 0 && x < len(g.board[y])
}

// At returns the identity occupying column x, row y.
// ok is false when (x,y) is out of bounds.
func (g *Graph) At(x, y int) (id VertexID, ok bool) {
	if !g.InBounds(x, y) {
		return "", false
	}
	return g.board[y][x], true
}

// Vertex returns the vertex behind id.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// Has reports whether id is a vertex of g.
func (g *Graph) Has(id VertexID) bool {
	_, ok := g.vertices[id]
	return ok
}

// Type returns the terrain of id, or ErrUnknownVertex.
func (g *Graph) Type(id VertexID) (Terrain, error) {
	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	return v.Type, nil
}

// Locate returns the board coordinate of id.
// Complexity: O(W×H).
func (g *Graph) Locate(id VertexID) (Coord, bool) {
	if !g.Has(id) {
		return Coord{}, false
	}
	for y, row := range g.board {
		for x, cell := range row {
			if cell == id {
				return Coord{X: x, Y: y}, true
			}
		}
	}
	return Coord{}, false
}

// Board returns a copy of the board, rows first.
func (g *Graph) Board() [][]VertexID {
	out := make([][]VertexID, len(g.board))
	for y, row := range g.board {
		out[y] = append([]VertexID(nil), row...)
	}
	return out
}

// WormholeExit returns the exit of the wormhole entered at id.
func (g *Graph) WormholeExit(id VertexID) (VertexID, bool) {
	to, ok := g.wormholes[id]
	return to, ok
}

// WormholeEntrance returns the entrance of the wormhole exiting at id.
func (g *Graph) WormholeEntrance(id VertexID) (VertexID, bool) {
	for from, to := range g.wormholes {
		if to == id {
			return from, true
		}
	}
	return "", false
}

// Wormholes lists every wormhole ordered by the board position of its
// entrance (row-major).
func (g *Graph) Wormholes() []Wormhole {
	out := make([]Wormhole, 0, len(g.wormholes))
	for _, row := range g.board {
		for _, id := range row {
			if to, ok := g.wormholes[id]; ok {
				out = append(out, Wormhole{Entrance: id, Exit: to})
			}
		}
	}
	return out
}

// newRow creates Normal vertices for columns [from,to) of row y, registers
// them in g.vertices and returns their identities.
func (g *Graph) newRow(y, from, to int) []VertexID {
	row := make([]VertexID, 0, to-from)
	for x := from; x < to; x++ {
		v := NewVertex(Normal, x, y)
		g.vertices[v.ID] = v
		row = append(row, v.ID)
	}
	return row
}

// linkWormhole sets from→to in m, dropping any other wormhole that already
// exits at to so that every cell stays the exit of at most one wormhole.
func linkWormhole(m map[VertexID]VertexID, from, to VertexID) {
	for in, out := range m {
		if out == to && in != from {
			delete(m, in)
		}
	}
	m[from] = to
}

func validateSize(width, height int) error {
	if width < MinSize || height < MinSize {
		return fmt.Errorf("%w: %dx%d, minimum is %dx%d", ErrInvalidSize, width, height, MinSize, MinSize)
	}
	return nil
}
