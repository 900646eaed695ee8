package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/adjacency"
	"github.com/katalvlaran/gridroute/gridgraph"
)

func mustGraph(t *testing.T, text string, pairs ...gridgraph.WormholePair) *gridgraph.Graph {
	t.Helper()
	g, err := gridgraph.FromTextMap(text, pairs)
	require.NoError(t, err)
	return g
}

func at(t *testing.T, g *gridgraph.Graph, x, y int) gridgraph.VertexID {
	t.Helper()
	id, ok := g.At(x, y)
	require.Truef(t, ok, "no cell at (%d,%d)", x, y)
	return id
}

func pair(x1, y1, x2, y2 int) gridgraph.WormholePair {
	return gridgraph.WormholePair{From: gridgraph.Coord{X: x1, Y: y1}, To: gridgraph.Coord{X: x2, Y: y2}}
}

// TestBuild_Weights checks the source+destination terrain cost rule.
func TestBuild_Weights(t *testing.T) {
	g := mustGraph(t, ".G\nGG")
	m := adjacency.Build(g)

	n, g1 := at(t, g, 0, 0), at(t, g, 1, 0)
	g2, g3 := at(t, g, 0, 1), at(t, g, 1, 1)
	cases := []struct {
		from, to gridgraph.VertexID
		want     int64
	}{
		{n, g1, 3},
		{g1, n, 3},
		{n, g3, 3},
		{g1, g2, 4},
		{g2, g3, 4},
	}
	for _, tc := range cases {
		w, ok := m.Weight(tc.from, tc.to)
		require.Truef(t, ok, "missing arc %s→%s", tc.from, tc.to)
		require.Equal(t, tc.want, w)
	}
	require.Equal(t, 12, m.EdgeCount())
}

// TestBuild_Orthogonal checks that diagonals disappear when disabled.
func TestBuild_Orthogonal(t *testing.T) {
	g := mustGraph(t, "..\n..")
	diag := adjacency.Build(g)
	orth := adjacency.Build(g, adjacency.WithDiagonal(false))

	require.Equal(t, 12, diag.EdgeCount())
	require.Equal(t, 8, orth.EdgeCount())
	_, ok := orth.Weight(at(t, g, 0, 0), at(t, g, 1, 1))
	require.False(t, ok)
	w, ok := diag.Weight(at(t, g, 0, 0), at(t, g, 1, 1))
	require.True(t, ok)
	require.Equal(t, int64(2), w)
}

// TestBuild_NeighborOrder checks the fixed W, E, N, S, NW, SE, SW, NE order.
func TestBuild_NeighborOrder(t *testing.T) {
	g := mustGraph(t, "...\n...\n...")
	m := adjacency.Build(g)

	var got []gridgraph.VertexID
	for _, a := range m.Arcs(at(t, g, 1, 1)) {
		got = append(got, a.To)
	}
	want := []gridgraph.VertexID{
		at(t, g, 0, 1), at(t, g, 2, 1), at(t, g, 1, 0), at(t, g, 1, 2),
		at(t, g, 0, 0), at(t, g, 2, 2), at(t, g, 0, 2), at(t, g, 2, 0),
	}
	require.Equal(t, want, got)
	require.Equal(t, at(t, g, 0, 0), m.Sources()[0])
	require.Equal(t, 9, m.Len())
}

// TestBuild_BoulderIsolation checks that no arc touches a Boulder.
func TestBuild_BoulderIsolation(t *testing.T) {
	g := mustGraph(t, ".#.\n#G#\n.#.", pair(0, 0, 1, 0), pair(2, 2, 0, 0))
	for _, opts := range []adjacency.Options{
		{AllowDiagonal: true, AllowPassByWormhole: true},
		{AllowDiagonal: false, AllowPassByWormhole: false},
	} {
		m := adjacency.Build(g, adjacency.WithOptions(opts))
		for _, src := range m.Sources() {
			v, _ := g.Vertex(src)
			require.False(t, v.IsImpassable(), "boulder source %s", src)
			for _, a := range m.Arcs(src) {
				v, _ := g.Vertex(a.To)
				require.False(t, v.IsImpassable(), "boulder destination %s", a.To)
			}
		}
	}
}

// TestBuild_ForcedTeleport checks that an entrance only leads to its exit.
func TestBuild_ForcedTeleport(t *testing.T) {
	g := mustGraph(t, "...\n...", pair(0, 0, 2, 1))
	m := adjacency.Build(g)

	arcs := m.Arcs(at(t, g, 0, 0))
	require.Equal(t, []adjacency.Arc{{To: at(t, g, 2, 1), Weight: 1}}, arcs)
}

// TestBuild_PassByWormhole checks that on-foot arcs are added after the teleport.
func TestBuild_PassByWormhole(t *testing.T) {
	g := mustGraph(t, "...\n...", pair(0, 0, 2, 1))
	m := adjacency.Build(g, adjacency.WithPassByWormhole(true))

	arcs := m.Arcs(at(t, g, 0, 0))
	require.Len(t, arcs, 4)
	require.Equal(t, adjacency.Arc{To: at(t, g, 2, 1), Weight: 1}, arcs[0])
}

// TestBuild_AdjacentExitWalkingWeightWins: when a wormhole exit is also a
// walking neighbor, the on-foot arc added later replaces the teleport weight
// and the arc keeps the teleport's position.
func TestBuild_AdjacentExitWalkingWeightWins(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
	}{
		{"Normal", "..", 2},
		{"Gravel", ".G", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.text, pair(0, 0, 1, 0))
			m := adjacency.Build(g, adjacency.WithPassByWormhole(true))
			require.Equal(t, []adjacency.Arc{{To: at(t, g, 1, 0), Weight: tc.want}}, m.Arcs(at(t, g, 0, 0)))

			// Without pass-by only the teleport exists.
			forced := adjacency.Build(g)
			require.Equal(t, []adjacency.Arc{{To: at(t, g, 1, 0), Weight: adjacency.WormholeWeight}}, forced.Arcs(at(t, g, 0, 0)))
		})
	}
}

// TestMap_AddArcReplacesWeight: re-adding an arc overwrites its weight in place.
func TestMap_AddArcReplacesWeight(t *testing.T) {
	m := adjacency.NewMap()
	m.AddArc("a", "b", 1)
	m.AddArc("a", "c", 4)
	m.AddArc("a", "b", 5)

	require.Equal(t, []adjacency.Arc{{To: "b", Weight: 5}, {To: "c", Weight: 4}}, m.Arcs("a"))
	require.Equal(t, []gridgraph.VertexID{"a"}, m.Sources())
	require.Equal(t, 2, m.EdgeCount())
}

// TestBuild_WormholeIntoBoulder: a wormhole exiting on a Boulder yields no arc,
// and without pass-by the entrance is a dead end.
func TestBuild_WormholeIntoBoulder(t *testing.T) {
	g := mustGraph(t, "..#", pair(0, 0, 2, 0))
	m := adjacency.Build(g)
	require.False(t, m.HasSource(at(t, g, 0, 0)))
	require.Empty(t, m.Arcs(at(t, g, 0, 0)))
}

// TestBuild_EntranceOnBoulder: a Boulder entrance is skipped entirely.
func TestBuild_EntranceOnBoulder(t *testing.T) {
	g := mustGraph(t, "#..", pair(0, 0, 2, 0))
	m := adjacency.Build(g)
	require.False(t, m.HasSource(at(t, g, 0, 0)))
}

// TestBuild_SelfWormhole: entrance == exit produces a single self-loop.
func TestBuild_SelfWormhole(t *testing.T) {
	g := mustGraph(t, "..", pair(0, 0, 0, 0))
	m := adjacency.Build(g)
	a := at(t, g, 0, 0)
	require.Equal(t, []adjacency.Arc{{To: a, Weight: 1}}, m.Arcs(a))
}

// TestBuild_Deterministic checks that two builds produce the same ordering.
func TestBuild_Deterministic(t *testing.T) {
	g := mustGraph(t, ".G.#\n..G.\n#...", pair(1, 1, 3, 2))
	a, b := adjacency.Build(g), adjacency.Build(g)
	require.Equal(t, a.Sources(), b.Sources())
	for _, src := range a.Sources() {
		require.Equal(t, a.Arcs(src), b.Arcs(src))
	}
}

// TestResolve checks default options and overrides.
func TestResolve(t *testing.T) {
	require.Equal(t, adjacency.DefaultOptions(), adjacency.Resolve())
	require.Equal(t, adjacency.Options{AllowDiagonal: false, AllowPassByWormhole: true},
		adjacency.Resolve(adjacency.WithDiagonal(false), adjacency.WithPassByWormhole(true)))
}
