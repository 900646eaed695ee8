package render_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/render"
	"github.com/katalvlaran/gridroute/route"
)

func TestBoard_Route(t *testing.T) {
	g, err := gridgraph.FromTextMap("...G\n.##.\n....", nil)
	require.NoError(t, err)
	res := route.FindAt(g, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 3, Y: 2})
	require.True(t, res.Reachable())

	var buf bytes.Buffer
	require.NoError(t, render.Board(&buf, g, res.Path, render.WithProfile(termenv.Ascii)))
	// Both the upper and the lower route cost 8; the upper one is discovered first.
	require.Equal(t, int64(8), res.Cost)
	require.Equal(t, "S**G\n.##*\n...F\n", buf.String())
}

func TestBoard_Wormholes(t *testing.T) {
	g, err := gridgraph.FromTextMap(".#.\n...", []gridgraph.WormholePair{
		{From: gridgraph.Coord{X: 0, Y: 1}, To: gridgraph.Coord{X: 2, Y: 0}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Board(&buf, g, nil, render.WithProfile(termenv.Ascii)))
	require.Equal(t, ".#o\n@..\n", buf.String())
}
