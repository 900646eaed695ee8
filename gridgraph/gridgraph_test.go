package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridgraph"
)

//----------------------------------------------------------------------------//
// FromTextMap and lookup Tests
//----------------------------------------------------------------------------//

// TestFromTextMap_Errors verifies that FromTextMap rejects empty or ragged maps.
func TestFromTextMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyMap},
		{"OnlyBlankLines", "\n   \n\t\n", gridgraph.ErrEmptyMap},
		{"NonRectangular", "..\n.", gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.FromTextMap(tc.text, nil)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, gridgraph.ErrInvalidMap)
		})
	}
}

// TestFromTextMap_Terrain checks the rune table, including the unknown-is-wall rule.
func TestFromTextMap_Terrain(t *testing.T) {
	g, err := gridgraph.FromTextMap("  .G#x  \n\n ~... \n", nil)
	require.NoError(t, err)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, 8, g.Len())

	want := [][]gridgraph.Terrain{
		{gridgraph.Normal, gridgraph.Gravel, gridgraph.Boulder, gridgraph.Boulder},
		{gridgraph.Boulder, gridgraph.Normal, gridgraph.Normal, gridgraph.Normal},
	}
	for y, row := range want {
		for x, tt := range row {
			id, ok := g.At(x, y)
			require.True(t, ok)
			got, err := g.Type(id)
			require.NoError(t, err)
			require.Equalf(t, tt, got, "terrain at (%d,%d)", x, y)
		}
	}
}

// TestFromTextMap_IdentityUnique checks that every cell has its own identity
// and that the board and the vertex index agree.
func TestFromTextMap_IdentityUnique(t *testing.T) {
	g, err := gridgraph.FromTextMap("...\n.G.\n#..", nil)
	require.NoError(t, err)

	seen := make(map[gridgraph.VertexID]gridgraph.Coord)
	for y, row := range g.Board() {
		for x, id := range row {
			_, dup := seen[id]
			require.Falsef(t, dup, "duplicate identity %q", id)
			seen[id] = gridgraph.Coord{X: x, Y: y}

			v, ok := g.Vertex(id)
			require.True(t, ok)
			require.Equal(t, id, v.ID)

			at, ok := g.Locate(id)
			require.True(t, ok)
			require.Equal(t, gridgraph.Coord{X: x, Y: y}, at)
		}
	}
	require.Len(t, seen, g.Len())
}

// TestFromTextMap_Wormholes checks pair resolution and silent skipping of
// out-of-bounds pairs.
func TestFromTextMap_Wormholes(t *testing.T) {
	g, err := gridgraph.FromTextMap(".#.\n...", []gridgraph.WormholePair{
		{From: gridgraph.Coord{X: 0, Y: 0}, To: gridgraph.Coord{X: 2, Y: 0}},
		{From: gridgraph.Coord{X: 5, Y: 0}, To: gridgraph.Coord{X: 1, Y: 1}},
		{From: gridgraph.Coord{X: 1, Y: 1}, To: gridgraph.Coord{X: 0, Y: -1}},
	})
	require.NoError(t, err)

	a, _ := g.At(0, 0)
	c, _ := g.At(2, 0)
	require.Equal(t, []gridgraph.Wormhole{{Entrance: a, Exit: c}}, g.Wormholes())

	exit, ok := g.WormholeExit(a)
	require.True(t, ok)
	require.Equal(t, c, exit)
	entrance, ok := g.WormholeEntrance(c)
	require.True(t, ok)
	require.Equal(t, a, entrance)
}

// TestFromTextMap_SharedExit checks that a later pair takes over an exit.
func TestFromTextMap_SharedExit(t *testing.T) {
	g, err := gridgraph.FromTextMap("...", []gridgraph.WormholePair{
		{From: gridgraph.Coord{X: 0, Y: 0}, To: gridgraph.Coord{X: 2, Y: 0}},
		{From: gridgraph.Coord{X: 1, Y: 0}, To: gridgraph.Coord{X: 2, Y: 0}},
	})
	require.NoError(t, err)

	b, _ := g.At(1, 0)
	c, _ := g.At(2, 0)
	require.Equal(t, []gridgraph.Wormhole{{Entrance: b, Exit: c}}, g.Wormholes())
}

// TestAt_OutOfBounds checks the coordinate lookup at the edges.
func TestAt_OutOfBounds(t *testing.T) {
	g, err := gridgraph.FromTextMap("...\n...", nil)
	require.NoError(t, err)

	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {2, -1}} {
		_, ok := g.At(xy[0], xy[1])
		require.Falsef(t, ok, "At(%d,%d)", xy[0], xy[1])
	}
	_, ok := g.At(2, 1)
	require.True(t, ok)
}

// TestTextMap_RoundTrip checks that serialization is the inverse of parsing.
func TestTextMap_RoundTrip(t *testing.T) {
	maps := []string{
		"..",
		".#.",
		"..G#\nG#..\n#..G",
		"GGGG\nGGGG",
	}
	for _, m := range maps {
		g, err := gridgraph.FromTextMap(m, nil)
		require.NoError(t, err)
		require.Equal(t, m, g.TextMap())
		require.Equal(t, m, g.String())
	}
}

// TestNew checks the blank-board constructor.
func TestNew(t *testing.T) {
	g, err := gridgraph.New(3, 2)
	require.NoError(t, err)
	require.Equal(t, "...\n...", g.TextMap())
	require.Empty(t, g.Wormholes())

	_, err = gridgraph.New(1, 5)
	require.True(t, errors.Is(err, gridgraph.ErrInvalidSize))
}

// TestTerrain covers the cost table and rune mapping.
func TestTerrain(t *testing.T) {
	require.Equal(t, int64(1), gridgraph.Normal.Cost())
	require.Equal(t, int64(2), gridgraph.Gravel.Cost())
	require.Equal(t, int64(0), gridgraph.Boulder.Cost())
	require.True(t, gridgraph.Gravel.Passable())
	require.False(t, gridgraph.Boulder.Passable())
	require.True(t, gridgraph.NewVertex(gridgraph.Boulder, 0, 0).IsImpassable())
	require.False(t, gridgraph.NewVertex(gridgraph.Normal, 0, 0).IsImpassable())
	for _, tt := range []gridgraph.Terrain{gridgraph.Normal, gridgraph.Gravel, gridgraph.Boulder} {
		require.Equal(t, tt, gridgraph.TerrainFromRune(tt.Rune()))
	}
	require.Equal(t, gridgraph.Boulder, gridgraph.TerrainFromRune('?'))
}
