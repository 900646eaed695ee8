package gridgraph

import "strings"

// TextMap serializes the terrain of g back to a text map, one line per row
// and no trailing newline. Wormholes are not represented. For maps written
// with '.', 'G' and '#' only, FromTextMap(g.TextMap(), nil) reproduces g's
// terrain.
func (g *Graph) TextMap() string {
	var sb strings.Builder
	sb.Grow(g.Height() * (g.Width() + 1))
	for y, row := range g.board {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, id := range row {
			sb.WriteRune(g.vertices[id].Type.Rune())
		}
	}
	return sb.String()
}

// String implements fmt.Stringer for debugging; see TextMap.
func (g *Graph) String() string { return g.TextMap() }
