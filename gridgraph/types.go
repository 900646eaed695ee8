package gridgraph

import "fmt"

// MinSize is the smallest width or height accepted by New and Resize.
const MinSize = 2

// Terrain selects the traversal behavior of a cell.
type Terrain uint8

const (
	// Normal is open ground, cost contribution 1.
	Normal Terrain = iota
	// Gravel is rough ground, cost contribution 2.
	Gravel
	// Boulder is impassable: never the source or destination of an edge.
	Boulder
)

// Cost returns the contribution of t to the weight of a step that starts
// or ends on it. Boulder contributes nothing since it never joins an edge.
func (t Terrain) Cost() int64 {
	switch t {
	case Normal:
		return 1
	case Gravel:
		return 2
	default:
		return 0
	}
}

// Passable reports whether t may appear on an edge.
func (t Terrain) Passable() bool { return t == Normal || t == Gravel }

// Rune returns the text map rune for t.
func (t Terrain) Rune() rune {
	switch t {
	case Normal:
		return '.'
	case Gravel:
		return 'G'
	default:
		return '#'
	}
}

// String implements fmt.Stringer.
func (t Terrain) String() string {
	switch t {
	case Normal:
		return "normal"
	case Gravel:
		return "gravel"
	case Boulder:
		return "boulder"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
}

// TerrainFromRune maps a text map rune to its Terrain.
// Unrecognized runes are walls.
func TerrainFromRune(r rune) Terrain {
	switch r {
	case '.':
		return Normal
	case 'G':
		return Gravel
	default:
		return Boulder
	}
}

// VertexID is the opaque identity of a cell. Compare with ==; do not parse.
type VertexID string

// Coord is a board position: column X, row Y.
type Coord struct {
	X, Y int
}

// String implements fmt.Stringer.
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// WormholePair describes a wormhole by coordinates: entering at From
// teleports to To.
type WormholePair struct {
	From, To Coord
}

// Wormhole is a resolved wormhole: Entrance teleports to Exit.
type Wormhole struct {
	Entrance, Exit VertexID
}

// Graph is an immutable snapshot of a tile map.
//
// board[y][x] holds the identity at column x, row y; vertices holds the
// Vertex behind every identity on the board; wormholes maps an entrance
// identity to its exit identity. Methods that edit the map return a new
// Graph and leave the receiver untouched, so a *Graph may be shared freely.
type Graph struct {
	board     [][]VertexID
	vertices  map[VertexID]Vertex
	wormholes map[VertexID]VertexID
}
